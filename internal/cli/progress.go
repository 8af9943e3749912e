package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressRefreshRate is the spinner animation interval.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner abstracts the terminal spinner so tests can observe it.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// Progress reports which function is being benchmarked. A nil *Progress is
// valid and does nothing, so callers need not check whether it is enabled.
type Progress struct {
	spinner Spinner
	total   int
	done    int
}

// NewProgress starts a spinner on out for total functions. It returns nil
// when enabled is false.
func NewProgress(out io.Writer, enabled bool, total int) *Progress {
	if !enabled {
		return nil
	}
	p := &Progress{spinner: newSpinner(out), total: total}
	p.spinner.UpdateSuffix(" Starting...")
	p.spinner.Start()
	return p
}

// Step announces the next function.
func (p *Progress) Step(function string) {
	if p == nil {
		return
	}
	p.done++
	p.spinner.UpdateSuffix(fmt.Sprintf(" Benchmarking %s (%d/%d)", function, p.done, p.total))
}

// Stop halts the spinner.
func (p *Progress) Stop() {
	if p == nil {
		return
	}
	p.spinner.Stop()
}
