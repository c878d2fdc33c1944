package up

// Message constants
const (
	MsgShort = "Install packages, clone plugin managers and link dotfiles"
	MsgLong  = `The 'up' command performs the full bootstrap:
  - Installs Homebrew formulas, and casks on macOS
  - Clones plugin-manager repositories (oh-my-zsh, tpm)
  - Installs the terminal font (cask on macOS, download on Linux)
  - Links dotfiles into the home directory with stow

Anything already present is skipped. If stow reports conflicts, the known
conflict files are moved to a timestamped backup directory and the link is
retried once.`

	MsgExample = `  # Full bootstrap
  dotstrap up

  # Preview without touching the system
  dotstrap up --dry-run`
)
