package config

import _ "embed"

// defaultConfig is the embedded default configuration. User config files
// layer on top of it; it is also what `dotstrap genconfig` prints.
//
//go:embed dotstrap.toml
var defaultConfig []byte

// DefaultTOML returns the embedded default configuration file verbatim
func DefaultTOML() []byte {
	return defaultConfig
}
