// Package stats computes usage statistics over recorded command events.
// All functions are pure transformations over an immutable event
// snapshot: same events, clock, and window always produce the same
// output, which keeps them testable without a store.
package stats
