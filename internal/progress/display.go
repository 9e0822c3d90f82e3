package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display shows step progress on a terminal. Without a TTY it writes nothing,
// so piped and redirected runs stay quiet.
type Display struct {
	capabilities TerminalCapabilities
	out          io.Writer
	spinner      *spinner.Spinner
	symbols      ProgressSymbols
}

// NewDisplay creates a display writing to out (normally stderr).
func NewDisplay(caps TerminalCapabilities, out io.Writer) *Display {
	return &Display{
		capabilities: caps,
		out:          out,
		symbols:      SelectSymbols(caps),
	}
}

// Enabled reports whether the display produces any output.
func (d *Display) Enabled() bool {
	return d.capabilities.IsTTY
}

// StartStep begins displaying progress for a step
func (d *Display) StartStep(step StepInfo) error {
	if err := step.Validate(); err != nil {
		return err
	}
	d.StopSpinner()
	if !d.Enabled() {
		return nil
	}

	d.spinner = spinner.New(
		spinner.CharSets[d.symbols.SpinnerSet],
		100*time.Millisecond,
		writerOption(d.out),
	)
	d.spinner.Suffix = " " + buildStepMessage(step)
	d.spinner.Start()
	return nil
}

// CompleteStep stops the spinner and displays completion status. A non-empty
// detail is appended in parentheses.
func (d *Display) CompleteStep(step StepInfo, detail string) {
	d.StopSpinner()
	if !d.Enabled() {
		return
	}

	mark := checkmark(d.symbols, d.capabilities.SupportsColor)
	counter := formatStepCounter(step.Number, step.TotalSteps)
	if detail != "" {
		fmt.Fprintf(d.out, "%s %s %s (%s)\n", mark, counter, capitalize(step.Name), detail)
		return
	}
	fmt.Fprintf(d.out, "%s %s %s\n", mark, counter, capitalize(step.Name))
}

// FailStep stops the spinner and displays failure status
func (d *Display) FailStep(step StepInfo, err error) {
	d.StopSpinner()
	if !d.Enabled() {
		return
	}

	mark := failureMark(d.symbols, d.capabilities.SupportsColor)
	counter := formatStepCounter(step.Number, step.TotalSteps)
	fmt.Fprintf(d.out, "%s %s %s failed: %v\n", mark, counter, capitalize(step.Name), err)
}

// writerOption points the spinner at out. The spinner checks for a terminal on
// its file writer, so a file must be passed as one.
func writerOption(out io.Writer) spinner.Option {
	if f, ok := out.(*os.File); ok {
		return spinner.WithWriterFile(f)
	}
	return spinner.WithWriter(out)
}

// StopSpinner stops the spinner without showing completion/failure
func (d *Display) StopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
