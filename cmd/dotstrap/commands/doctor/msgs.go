package doctor

// Message constants
const (
	MsgShort = "Check bootstrap prerequisites"
	MsgLong  = `Probes everything a bootstrap run needs before it starts: Homebrew,
git, and on macOS the Xcode command line tools. Exits non-zero when any
prerequisite is missing.`

	MsgExample = `  dotstrap doctor`
)
