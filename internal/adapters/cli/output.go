package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	grayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
)

type Output struct {
	out          io.Writer
	errOut       io.Writer
	enableColors bool
}

func NewOutput() *Output {
	return &Output{
		out:          os.Stdout,
		errOut:       os.Stderr,
		enableColors: isTerminal(os.Stdout),
	}
}

// NewWriterOutput writes everything to w without colours.
func NewWriterOutput(w io.Writer) *Output {
	return &Output{
		out:    w,
		errOut: w,
	}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) style(s lipgloss.Style, text string) string {
	if !o.enableColors {
		return text
	}
	return s.Render(text)
}

func (o *Output) Green(text string) string {
	return o.style(greenStyle, text)
}

func (o *Output) Yellow(text string) string {
	return o.style(yellowStyle, text)
}

func (o *Output) Red(text string) string {
	return o.style(redStyle, text)
}

func (o *Output) Gray(text string) string {
	return o.style(grayStyle, text)
}

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.out, o.style(boldStyle, msg))
	fmt.Fprintln(o.out)
}

func (o *Output) PrintStep(emoji, msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	if emoji != "" {
		formatted = emoji + " " + formatted
	}
	fmt.Fprintf(o.out, "  %s\n", formatted)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.out, "  "+o.Green("✓ ")+"%s\n", formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.out, "  "+o.Yellow("⚠ ")+"%s\n", formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.errOut, "  "+o.Red("✗ ")+"%s\n", formatted)
}

func (o *Output) PrintFile(path string) {
	fmt.Fprintf(o.out, "    • %s\n", path)
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.out)
	fmt.Fprintln(o.out, msg)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
