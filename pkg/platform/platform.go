// Package platform detects the host operating system from its kernel name
// and maps it to the two platforms dotstrap knows how to bootstrap.
package platform

import (
	"context"
	"strings"

	"github.com/arthur-debert/dotstrap/pkg/execx"
	"github.com/arthur-debert/dotstrap/pkg/logging"
)

// Tag identifies a supported platform
type Tag string

const (
	// Darwin is macOS, where packages install through Homebrew formulas and casks
	Darwin Tag = "darwin"

	// Linux installs formulas only; GUI packages and fonts take other paths
	Linux Tag = "linux"

	// Unknown is any kernel dotstrap has no bootstrap recipe for
	Unknown Tag = "unknown"
)

// Platform is the result of OS detection
type Platform struct {
	Tag Tag

	// Kernel is the raw kernel name the tag was derived from, kept so an
	// unknown platform can be reported with the original string
	Kernel string
}

// IsDarwin reports whether this is macOS
func (p Platform) IsDarwin() bool { return p.Tag == Darwin }

// IsLinux reports whether this is Linux
func (p Platform) IsLinux() bool { return p.Tag == Linux }

// String returns the tag, with the raw kernel name attached for unknowns
func (p Platform) String() string {
	if p.Tag == Unknown {
		return string(Unknown) + " (" + p.Kernel + ")"
	}
	return string(p.Tag)
}

// Detect maps a kernel name to a platform. Pure; never fails — an
// unrecognized kernel yields the Unknown tag carrying the raw string.
func Detect(kernel string) Platform {
	switch strings.TrimSpace(kernel) {
	case "Darwin":
		return Platform{Tag: Darwin, Kernel: kernel}
	case "Linux":
		return Platform{Tag: Linux, Kernel: kernel}
	default:
		return Platform{Tag: Unknown, Kernel: kernel}
	}
}

// DetectHost detects the platform of the machine dotstrap is running on
// by asking `uname -s` through the given runner.
func DetectHost(ctx context.Context, runner execx.Runner) (Platform, error) {
	logger := logging.GetLogger("platform")

	result, err := runner.Run(ctx, "", "uname", "-s")
	if err != nil {
		return Platform{Tag: Unknown}, err
	}

	p := Detect(strings.TrimSpace(result.Stdout))
	logger.Debug().Str("kernel", p.Kernel).Str("tag", string(p.Tag)).Msg("Detected platform")
	return p, nil
}
