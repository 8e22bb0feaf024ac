package prthrottler

import (
	"fmt"
	"os"
)

// Outcome is the terminal state of one enforcement run.
type Outcome string

const (
	OutcomeOK              Outcome = "ok"
	OutcomeSkipped         Outcome = "skipped"
	OutcomeClosed          Outcome = "closed"
	OutcomeRevertedToDraft Outcome = "reverted_to_draft"
)

// Decision is the externally observable result of one run. OpenCount is the
// effective count, excluding the pull request under evaluation; the numeric
// fields stay zero when the run skips before the counts are fetched.
type Decision struct {
	Outcome     Outcome
	OpenCount   int
	AllowedOpen int
	MergedCount int
}

// WriteOutputs appends the decision to the runner's output file. An empty
// path is not an error so local runs stay quiet.
func (d Decision) WriteOutputs(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "decision=%s\nopen_count=%d\nallowed_open=%d\nmerged_count=%d\n",
		d.Outcome, d.OpenCount, d.AllowedOpen, d.MergedCount)
	if err != nil {
		return fmt.Errorf("writing outputs: %w", err)
	}
	return nil
}
