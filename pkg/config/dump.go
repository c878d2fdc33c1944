package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dotstrap/pkg/errors"
)

// Dump renders a merged configuration back to TOML. Used by
// `dotstrap genconfig --effective` to show what a run would actually use
// after user file and environment overrides.
func Dump(cfg *Config) ([]byte, error) {
	out, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal config")
	}
	return out, nil
}
