package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate is the animation period of the preparation spinner.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner abstracts the terminal spinner so tests can observe it without a
// terminal.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner adapts briandowns/spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// WithSpinner runs fn while a spinner labelled msg animates on out. The
// spinner is always stopped before WithSpinner returns, so nothing it draws
// can interleave with the report.
func WithSpinner(out io.Writer, msg string, fn func() error) error {
	s := newSpinner(out)
	s.UpdateSuffix(" " + msg)
	s.Start()
	defer s.Stop()
	return fn()
}
