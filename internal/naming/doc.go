// Package naming normalizes user-supplied directory and package names.
// Every function here is total: bad input degrades to an empty string or a
// safe default rather than an error.
package naming
