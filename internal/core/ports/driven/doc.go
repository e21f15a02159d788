// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): the structured record store, the policy
// index, embedding and LLM services, and configuration.
package driven
