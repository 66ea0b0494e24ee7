// Package observability provides event logging, metrics calculation, and
// notification delivery for shakshuka. It uses structured JSON Lines (JSONL)
// for event persistence and derives metrics on-demand from the event log.
package observability
