// Package domain contains the core business entities and pure business
// rules for the HR context pipeline: employee records, leave and attendance
// data, intents, context blocks, citations, and the deterministic leave
// calculations. It has no I/O and no dependencies on adapters.
package domain
