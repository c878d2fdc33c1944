package bootstrap

// Ledger tracks what a run did. Every item a step handles lands in exactly
// one of the two lists, in execution order; the summary report reads them
// once at the end of the run.
type Ledger struct {
	Installed []string
	Skipped   []string
}

// RecordInstalled marks an item as newly installed this run
func (l *Ledger) RecordInstalled(name string) {
	l.Installed = append(l.Installed, name)
}

// RecordSkipped marks an item as already present
func (l *Ledger) RecordSkipped(name string) {
	l.Skipped = append(l.Skipped, name)
}
