package config

import (
	"fmt"
	"sort"
)

// CurrentVersion is the registry file format version.
const CurrentVersion = 1

// Plug is a user-registered smart plug.
type Plug struct {
	// Address is the plug's host[:port]; the default port is applied by
	// the device layer when absent.
	Address string `yaml:"address"`

	// Nickname is a free-form description ("bathroom heater").
	Nickname string `yaml:"nickname,omitempty"`

	// TimeoutSeconds overrides the default network timeout for this
	// plug. Zero means use the preference default.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// Preferences holds registry-wide defaults.
type Preferences struct {
	// DefaultTimeoutSeconds bounds each network operation when a plug
	// has no override. Zero means no timeout.
	DefaultTimeoutSeconds int `yaml:"default_timeout_seconds,omitempty"`
}

// Registry is the root of the configuration file.
type Registry struct {
	Version     int              `yaml:"version"`
	Plugs       map[string]*Plug `yaml:"plugs"`
	Preferences *Preferences     `yaml:"preferences,omitempty"`
}

// NewRegistry creates an empty registry with defaults.
func NewRegistry() *Registry {
	return &Registry{
		Version: CurrentVersion,
		Plugs:   make(map[string]*Plug),
		Preferences: &Preferences{
			DefaultTimeoutSeconds: 5,
		},
	}
}

// Lookup resolves an alias to a registered plug.
func (r *Registry) Lookup(alias string) (*Plug, bool) {
	plug, ok := r.Plugs[alias]
	return plug, ok
}

// Add registers a plug under an alias, replacing any existing entry.
func (r *Registry) Add(alias string, plug *Plug) error {
	if alias == "" {
		return fmt.Errorf("plug alias must not be empty")
	}
	if plug == nil || plug.Address == "" {
		return fmt.Errorf("plug %q must have an address", alias)
	}
	if r.Plugs == nil {
		r.Plugs = make(map[string]*Plug)
	}
	r.Plugs[alias] = plug
	return nil
}

// Remove deletes an alias. Returns false when the alias was not
// registered.
func (r *Registry) Remove(alias string) bool {
	if _, ok := r.Plugs[alias]; !ok {
		return false
	}
	delete(r.Plugs, alias)
	return true
}

// Aliases returns the registered aliases in stable order.
func (r *Registry) Aliases() []string {
	aliases := make([]string, 0, len(r.Plugs))
	for alias := range r.Plugs {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
