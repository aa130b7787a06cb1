// Package args turns the raw argument vector into Options and decides whether
// the run is interactive.
//
// Every boolean switch is a TriState accepting a --no-<name> form, so "not
// given" stays distinguishable from an explicit false. Unknown flags are
// ignored and a --template without a value counts as not given.
package args
