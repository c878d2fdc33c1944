// Package report renders the end-of-run summary: what was installed, what
// was skipped, where backups went, and the manual steps that remain.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dotstrap/pkg/bootstrap"
	"github.com/arthur-debert/dotstrap/pkg/platform"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer writes the run summary
type Renderer struct {
	out    io.Writer
	styled bool
}

// New creates a renderer that styles output only when it goes to a color
// terminal
func New(out io.Writer) *Renderer {
	return &Renderer{out: out, styled: shouldStyle(out)}
}

// NewPlain creates a renderer that never styles, for tests and pipes
func NewPlain(out io.Writer) *Renderer {
	return &Renderer{out: out, styled: false}
}

func shouldStyle(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// render applies the named style when styling is on
func (r *Renderer) render(style, s string) string {
	if !r.styled {
		return s
	}
	return styleFor(style).Render(s)
}

// Summary prints the ledger, backup notice and next steps for the platform
func (r *Renderer) Summary(result *bootstrap.RunResult, p platform.Platform) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.render("Header", MsgSummaryHeader))
	fmt.Fprintln(r.out)

	r.list(MsgInstalledSection, result.Ledger.Installed, "Success")
	r.list(MsgSkippedSection, result.Ledger.Skipped, "Muted")

	if result.Link != nil && result.Link.BackupDir != "" && len(result.Link.BackedUp) > 0 {
		fmt.Fprintln(r.out, r.render("Warning",
			fmt.Sprintf(MsgBackupNotice, len(result.Link.BackedUp), result.Link.BackupDir)))
		fmt.Fprintln(r.out)
	}

	r.nextSteps(p)
}

// Plan prints a dry-run preview of the steps a run would take
func (r *Renderer) Plan(steps []bootstrap.Step) {
	fmt.Fprintln(r.out, r.render("Header", MsgPlanHeader))
	fmt.Fprintln(r.out)
	for _, step := range steps {
		fmt.Fprintln(r.out, r.render("Item", "- "+step.Describe()))
	}
}

// Checks prints doctor results; returns false when any probe failed
func (r *Renderer) Checks(checks []bootstrap.Check) bool {
	ok := true
	for _, check := range checks {
		if check.OK {
			fmt.Fprintln(r.out, r.render("Success", "ok   ")+check.Name)
			continue
		}
		ok = false
		fmt.Fprintln(r.out, r.render("Warning", "miss ")+check.Name+" — "+check.Hint)
	}
	return ok
}

func (r *Renderer) list(header string, items []string, style string) {
	fmt.Fprintln(r.out, r.render("Section", fmt.Sprintf("%s (%d)", header, len(items))))
	for _, item := range items {
		fmt.Fprintln(r.out, r.render("Item", r.render(style, item)))
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) nextSteps(p platform.Platform) {
	fmt.Fprintln(r.out, r.render("Section", MsgNextStepsSection))

	steps := nextStepsCommon
	if p.IsDarwin() {
		steps = append(append([]string{}, nextStepsDarwin...), nextStepsCommon...)
	} else if p.IsLinux() {
		steps = append(append([]string{}, nextStepsLinux...), nextStepsCommon...)
	}

	for _, step := range steps {
		fmt.Fprintln(r.out, r.render("Item", "- "+step))
	}
}
