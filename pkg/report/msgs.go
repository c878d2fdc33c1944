package report

// Message constants
const (
	MsgSummaryHeader    = "dotstrap summary"
	MsgPlanHeader       = "dotstrap plan"
	MsgInstalledSection = "installed"
	MsgSkippedSection   = "skipped"
	MsgNextStepsSection = "next steps"
	MsgBackupNotice     = "moved %d conflicting file(s) to %s"
)

// Post-install manual steps. These are static by design: dotstrap cannot
// verify them, it can only remind.
var (
	nextStepsCommon = []string{
		"open a new terminal so the linked shell config takes effect",
		"in tmux, press prefix + I to install plugins through tpm",
	}

	nextStepsDarwin = []string{
		"grant amethyst accessibility permissions in System Settings",
		"set your terminal font to JetBrainsMono Nerd Font",
		"run `brew services start sketchybar` to launch the status bar",
	}

	nextStepsLinux = []string{
		"set your terminal font to JetBrainsMono Nerd Font",
	}
)
