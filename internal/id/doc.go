// Package id provides request identifier generation.
// This is the canonical source for ID generation across the codebase.
package id
