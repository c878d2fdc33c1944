package genconfig

// Message constants
const (
	MsgShort = "Print the default configuration"
	MsgLong  = `Prints the default configuration as TOML. Redirect it to
~/.config/dotstrap/dotstrap.toml as a starting point for customization.

With --effective, prints the merged configuration after the user config
file and DOTSTRAP_* environment overrides are applied.`

	MsgExample = `  # Write a starter config
  dotstrap genconfig > ~/.config/dotstrap/dotstrap.toml

  # Inspect what a run would actually use
  dotstrap genconfig --effective`
)
