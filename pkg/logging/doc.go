// Package logging provides slog.Logger construction for faultd.
//
// All operational logging in faultd goes through *slog.Logger instances
// built here. Components receive their logger explicitly (typically via a
// functional option) and default to Nop when none is supplied, so library
// use stays silent unless the caller opts in.
package logging
