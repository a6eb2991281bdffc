// Package cli implements the faultd command-line interface.
package cli
