package execx

import (
	"context"
	"fmt"
	"strings"
)

// Call records a single invocation made through a FakeRunner
type Call struct {
	WorkDir string
	Name    string
	Args    []string
}

// String renders the call the way it would appear on a shell command line
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// FakeRunner is a Runner for tests. Results are matched by command-line
// prefix, the most specific prefix winning when several match; unmatched
// commands succeed with empty output.
type FakeRunner struct {
	Calls   []Call
	Results map[string]Result
	Errors  map[string]error
	// Missing lists command names LookPath should report as absent
	Missing []string

	// ResultsSeq queues results per prefix, consumed in order. Used when the
	// same command must fail first and succeed on retry.
	ResultsSeq map[string][]Result
}

// NewFakeRunner creates an empty fake runner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Results:    make(map[string]Result),
		Errors:     make(map[string]error),
		ResultsSeq: make(map[string][]Result),
	}
}

// Run implements Runner
func (f *FakeRunner) Run(_ context.Context, workDir string, name string, args ...string) (Result, error) {
	call := Call{WorkDir: workDir, Name: name, Args: args}
	f.Calls = append(f.Calls, call)

	line := call.String()

	seq := make([]string, 0, len(f.ResultsSeq))
	for prefix, queue := range f.ResultsSeq {
		if len(queue) > 0 {
			seq = append(seq, prefix)
		}
	}
	if prefix, ok := bestMatch(line, seq); ok {
		queue := f.ResultsSeq[prefix]
		res := queue[0]
		f.ResultsSeq[prefix] = queue[1:]
		return res, nil
	}

	errPrefixes := make([]string, 0, len(f.Errors))
	for prefix := range f.Errors {
		errPrefixes = append(errPrefixes, prefix)
	}
	if prefix, ok := bestMatch(line, errPrefixes); ok {
		return Result{ExitCode: -1}, f.Errors[prefix]
	}

	resPrefixes := make([]string, 0, len(f.Results))
	for prefix := range f.Results {
		resPrefixes = append(resPrefixes, prefix)
	}
	if prefix, ok := bestMatch(line, resPrefixes); ok {
		return f.Results[prefix], nil
	}

	return Result{}, nil
}

// bestMatch picks the longest registered prefix matching line, so a more
// specific expectation always beats a broader one regardless of map
// iteration order. Equal lengths tie-break lexicographically.
func bestMatch(line string, prefixes []string) (string, bool) {
	best, found := "", false
	for _, prefix := range prefixes {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		if !found || len(prefix) > len(best) || (len(prefix) == len(best) && prefix < best) {
			best, found = prefix, true
		}
	}
	return best, found
}

// LookPath implements Runner
func (f *FakeRunner) LookPath(name string) bool {
	for _, m := range f.Missing {
		if m == name {
			return false
		}
	}
	return true
}

// CallLines returns all recorded calls rendered as command lines
func (f *FakeRunner) CallLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.String())
	}
	return lines
}

// CountCalls returns how many recorded calls start with the given prefix
func (f *FakeRunner) CountCalls(prefix string) int {
	count := 0
	for _, c := range f.Calls {
		if strings.HasPrefix(c.String(), prefix) {
			count++
		}
	}
	return count
}

var _ Runner = (*FakeRunner)(nil)
var _ fmt.Stringer = Call{}
