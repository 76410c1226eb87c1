package cli

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/procbench/internal/errors"
	"github.com/agbru/procbench/internal/orchestration"
	"github.com/agbru/procbench/internal/ui"
)

// CLIResultPresenter implements the orchestration presentation interfaces
// for terminal output.
type CLIResultPresenter struct {
	Quiet bool
}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentResult writes the report, or only the CSV line in quiet mode.
func (p CLIResultPresenter) PresentResult(result orchestration.BenchmarkResult, out io.Writer) {
	if p.Quiet {
		DisplayQuietResult(result, out)
		return
	}
	DisplayResult(result, out)
}

// HandleError prints a one-line failure message and returns the exit code
// for err. No CSV line is written for a failed run.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(out, "%sError:%s %v\n", ui.ColorRed(), ui.ColorReset(), err)
	return apperrors.ExitCodeFor(err)
}
