// Package logging provides the shared zap logger for kasactl.
//
// Logging is silent by default so CLI output stays clean. Set the
// KASACTL_LOG_LEVEL environment variable (debug, info, warn, error) to
// enable diagnostic output, including hex dumps of the wire frames at
// debug level.
package logging
