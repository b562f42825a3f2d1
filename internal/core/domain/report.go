package domain

import (
	"fmt"
	"strconv"
)

// Report is the ordered list of findings from one check.
// It is built once by the engine and not modified afterwards.
type Report struct {
	Findings []Finding `json:"findings"`
}

// NewReport wraps findings in a report.
func NewReport(findings []Finding) *Report {
	if findings == nil {
		findings = []Finding{}
	}
	return &Report{Findings: findings}
}

// Counts tallies findings per severity.
type Counts struct {
	OK    int `json:"ok"`
	Warn  int `json:"warn"`
	Error int `json:"error"`
}

// Total returns the number of findings.
func (c Counts) Total() int {
	return c.OK + c.Warn + c.Error
}

// Counts returns per-severity totals.
func (r *Report) Counts() Counts {
	var c Counts
	if r == nil {
		return c
	}
	for _, f := range r.Findings {
		switch f.Severity {
		case SeverityOK:
			c.OK++
		case SeverityWarn:
			c.Warn++
		case SeverityError:
			c.Error++
		}
	}
	return c
}

// OverallStatus is the most serious severity present, or OK when there
// are no findings.
func (r *Report) OverallStatus() Severity {
	status := SeverityOK
	if r == nil {
		return status
	}
	for _, f := range r.Findings {
		status = status.Max(f.Severity)
	}
	return status
}

// Problems returns the WARN and ERROR findings in order.
func (r *Report) Problems() []Finding {
	if r == nil {
		return nil
	}
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityWarn || f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}

// TableRow is one printable report line.
// Paragraph is the 0-based index as text, or "-" for document findings.
type TableRow struct {
	Severity  Severity
	RuleID    string
	Paragraph string
	Message   string
	Context   string
}

// Table returns one row per finding in report order.
func (r *Report) Table() []TableRow {
	if r == nil {
		return []TableRow{}
	}
	rows := make([]TableRow, 0, len(r.Findings))
	for _, f := range r.Findings {
		rows = append(rows, TableRow{
			Severity:  f.Severity,
			RuleID:    f.RuleID,
			Paragraph: paragraphLabel(f.ParagraphIndex),
			Message:   f.Message,
			Context:   f.Context,
		})
	}
	return rows
}

// Record is the machine-readable form of a finding tagged with its file.
type Record struct {
	File           string   `json:"file"`
	RuleID         string   `json:"rule_id"`
	Severity       Severity `json:"severity"`
	ParagraphIndex *int     `json:"paragraph_index"`
	Message        string   `json:"message"`
	Context        string   `json:"context"`
}

// Records returns one record per finding in report order.
func (r *Report) Records(file string) []Record {
	if r == nil {
		return []Record{}
	}
	out := make([]Record, 0, len(r.Findings))
	for _, f := range r.Findings {
		out = append(out, Record{
			File:           file,
			RuleID:         f.RuleID,
			Severity:       f.Severity,
			ParagraphIndex: f.ParagraphIndex,
			Message:        f.Message,
			Context:        f.Context,
		})
	}
	return out
}

// Summary is a one-line description such as "ERROR (2 errors, 1 warning)".
func (r *Report) Summary() string {
	c := r.Counts()
	return fmt.Sprintf("%s (%s, %s)", r.OverallStatus(), plural(c.Error, "error"), plural(c.Warn, "warning"))
}

func paragraphLabel(idx *int) string {
	if idx == nil {
		return "-"
	}
	return strconv.Itoa(*idx)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
