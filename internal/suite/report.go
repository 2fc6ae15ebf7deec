package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

type Report struct {
	Suite     string        `json:"suite"`
	Version   string        `json:"version,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Results   []CaseResult  `json:"results"`
}

// CaseResult holds values formatted as text so that Inf and NaN survive JSON.
type CaseResult struct {
	ID         string        `json:"id"`
	Expression string        `json:"expression"`
	WantValid  bool          `json:"want_valid"`
	Valid      bool          `json:"valid"`
	Want       string        `json:"want,omitempty"`
	Got        string        `json:"got,omitempty"`
	Passed     bool          `json:"passed"`
	Message    string        `json:"message,omitempty"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== %s ===\n\n", r.Suite)

	header := []string{"Case", "Expression", "Want", "Got", "Status", "Note"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		row := []string{
			res.ID,
			res.Expression,
			orDash(wantText(res)),
			orDash(gotText(res)),
			status,
			res.Message,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\n%d passed, %d failed in %s\n", r.Passed, r.Failed, r.Duration.Round(time.Microsecond))
	tw.Flush()
}

func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func wantText(res CaseResult) string {
	if !res.WantValid {
		return "invalid"
	}
	return res.Want
}

func gotText(res CaseResult) string {
	if !res.Valid {
		return "invalid"
	}
	return res.Got
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
