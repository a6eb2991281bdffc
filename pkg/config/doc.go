// Package config provides configuration types and utilities for the failure
// simulation server.
package config
