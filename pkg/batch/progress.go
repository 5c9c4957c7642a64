package batch

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/wlanops/apvlan/pkg/cli"
)

// ProgressReporter receives lifecycle callbacks while the batch runs. The
// console log file carries the full detail; this is the terser operator
// echo of the same events.
type ProgressReporter interface {
	RunStart(csvPath string, dryRun bool)
	RowConfigured(row int, pa *PortAssignment)
	RowPlanned(row int, pa *PortAssignment)
	RowSkipped(row int, record []string, reason string)
	RowFailed(row int, pa *PortAssignment, err error)
	RunEnd(rep *Report, duration time.Duration)
}

// consoleProgress is an append-only terminal progress reporter. It never
// uses ANSI cursor rewriting, so output is safe for pipes, CI, and
// scrollback buffers.
type consoleProgress struct {
	W io.Writer
}

// NewConsoleProgress creates a consoleProgress writing to stdout.
func NewConsoleProgress() ProgressReporter {
	return &consoleProgress{W: os.Stdout}
}

func (p *consoleProgress) RunStart(csvPath string, dryRun bool) {
	if dryRun {
		fmt.Fprintf(p.W, "apvlan: %s (dry run, no changes will be made)\n", csvPath)
		return
	}
	fmt.Fprintf(p.W, "apvlan: %s\n", csvPath)
}

func (p *consoleProgress) RowConfigured(row int, pa *PortAssignment) {
	fmt.Fprintf(p.W, "  [%d] %s  %s\n", row, cli.Green("configured"), pa)
}

func (p *consoleProgress) RowPlanned(row int, pa *PortAssignment) {
	fmt.Fprintf(p.W, "  [%d] %s  %s\n", row, cli.Dim("would configure"), pa)
}

func (p *consoleProgress) RowSkipped(row int, record []string, reason string) {
	fmt.Fprintf(p.W, "  [%d] %s  %s  %s\n", row, cli.Yellow("skipped"), reason,
		cli.Dim(strings.Join(record, ",")))
}

func (p *consoleProgress) RowFailed(row int, pa *PortAssignment, err error) {
	fmt.Fprintf(p.W, "  [%d] %s  %s: %v\n", row, cli.Red("failed"), pa, err)
}

func (p *consoleProgress) RunEnd(rep *Report, duration time.Duration) {
	fmt.Fprintf(p.W, "\n%d rows: %d configured, %d skipped, %d failed (%s)\n",
		rep.Total, rep.Configured, rep.Skipped, rep.Failed, duration.Round(time.Millisecond))
}

// NopProgress discards all callbacks.
type NopProgress struct{}

func (NopProgress) RunStart(string, bool)                 {}
func (NopProgress) RowConfigured(int, *PortAssignment)    {}
func (NopProgress) RowPlanned(int, *PortAssignment)       {}
func (NopProgress) RowSkipped(int, []string, string)      {}
func (NopProgress) RowFailed(int, *PortAssignment, error) {}
func (NopProgress) RunEnd(*Report, time.Duration)         {}
