package plan

// Message constants
const (
	MsgShort = "Show what a bootstrap run would do"
	MsgLong  = `Builds the bootstrap plan for this platform and prints it without
executing anything. Planning never touches the system, so this is safe to
run anywhere.`

	MsgExample = `  dotstrap plan`
)
