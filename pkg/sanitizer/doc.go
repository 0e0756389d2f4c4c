// Package sanitizer normalizes user-supplied text before validation and storage.
//
// All functions are idempotent: applying them twice yields the same result as
// applying them once. They never fail; invalid input collapses to an empty string
// and is left for the validator to reject.
package sanitizer
