package cli

import (
	"fmt"
	"time"
)

type PageOutcome struct {
	Page    string
	Success bool
	Output  string
	Error   string
}

// GenerateReport collects per-page outcomes of a generation run and prints
// the closing summary.
type GenerateReport struct {
	out       *Output
	outcomes  []PageOutcome
	startTime time.Time
	pageCount int
}

func NewGenerateReport(out *Output) *GenerateReport {
	return &GenerateReport{
		out:       out,
		outcomes:  make([]PageOutcome, 0),
		startTime: time.Now(),
	}
}

func (r *GenerateReport) SetPageCount(count int) {
	r.pageCount = count
}

func (r *GenerateReport) Add(outcome PageOutcome) {
	r.outcomes = append(r.outcomes, outcome)
}

func (r *GenerateReport) Succeeded() int {
	n := 0
	for _, o := range r.outcomes {
		if o.Success {
			n++
		}
	}
	return n
}

func (r *GenerateReport) Failures() []PageOutcome {
	var failed []PageOutcome
	for _, o := range r.outcomes {
		if !o.Success {
			failed = append(failed, o)
		}
	}
	return failed
}

func (r *GenerateReport) HasFailures() bool {
	return r.Succeeded() != r.pageCount
}

func (r *GenerateReport) Render() {
	duration := time.Since(r.startTime)
	fmt.Fprintln(r.out.out)

	failed := r.Failures()
	if len(failed) > 0 {
		fmt.Fprintf(r.out.errOut, "  "+r.out.Red("✗ ")+"Failed pages (%d):\n", len(failed))
		for _, f := range failed {
			fmt.Fprintf(r.out.errOut, "    %s %s\n", r.out.Red("✗"), f.Page)
			fmt.Fprintf(r.out.errOut, "      %s\n", f.Error)
		}
		fmt.Fprintln(r.out.out)
	}

	fmt.Fprintf(r.out.out, "  ✨ Generated %d/%d pages successfully! %s\n",
		r.Succeeded(), r.pageCount, r.out.Gray("("+formatDuration(duration)+")"))
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
