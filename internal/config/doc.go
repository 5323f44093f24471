// Package config stores the user's registry of known plugs.
//
// The registry is a YAML file in the OS-appropriate configuration
// directory mapping a short alias to a plug address and optional
// per-plug settings, so CLI invocations can say "--device bathroom"
// instead of an IP address. No protocol state is ever persisted here.
package config
