package main

// Message constants
const (
	MsgRootShort = "Bootstrap a development machine"
	MsgRootLong  = `dotstrap installs developer tooling through Homebrew, clones plugin
managers, and links your dotfiles into the home directory with GNU Stow.

Runs are idempotent: anything already present is skipped, so re-running
after a failure or on an already bootstrapped machine is safe.`

	// MsgUsageTemplate restyles cobra's default usage output with the
	// bold/boldUpper template functions from formatting.go. Section headers
	// render uppercase, bold on a terminal.
	MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{bold .UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{bold .CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Available Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
)
