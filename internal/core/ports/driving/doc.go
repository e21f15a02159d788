// Package driving provides interfaces exposed to external actors
// (primary/inbound ports): context assembly, answer generation and index
// construction.
package driving
