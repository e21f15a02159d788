// Package normalisers contains document normalisers that convert raw
// policy files into clean text documents for indexing. Each normaliser
// handles a set of file extensions; selection is by extension in the
// index service.
package normalisers
