// Package mcp provides an MCP (Model Context Protocol) server adapter
// for helix-hr. It lets AI assistants assemble grounded HR context and
// search the policy index directly.
package mcp

import "errors"

// ErrMissingContextService is returned when the context service is not provided.
var ErrMissingContextService = errors.New("mcp: context service is required")

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
