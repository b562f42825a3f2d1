package domain

import "time"

// CheckRun records one check of one file.
// The report itself stays free of ids and timestamps; they live here.
type CheckRun struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Digest    string    `json:"digest"`
	StyleName string    `json:"style"`
	CheckedAt time.Time `json:"checked_at"`
	Status    Severity  `json:"status"`
	Report    *Report   `json:"report"`

	// AnnotatedPath is empty when no annotated copy was written.
	AnnotatedPath string `json:"annotated_path,omitempty"`
}

// FileResult is the outcome of checking one input file in a batch.
// Exactly one of Run and Err is set.
type FileResult struct {
	Path string
	Run  *CheckRun

	// Err is a load failure. The file has no report.
	Err error

	// AnnotateErr is set when the report exists but the copy failed to save.
	AnnotateErr error
}

// Status returns the file's status. Load failures count as ERROR.
func (r FileResult) Status() Severity {
	if r.Err != nil || r.Run == nil {
		return SeverityError
	}
	return r.Run.Report.OverallStatus()
}

// Failed reports whether loading or annotating failed.
func (r FileResult) Failed() bool {
	return r.Err != nil || r.AnnotateErr != nil
}

// Records returns the machine-readable records for this file.
// A load failure becomes one ERROR record with rule id "load".
func (r FileResult) Records() []Record {
	if r.Err != nil || r.Run == nil {
		msg := "document could not be checked"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		return []Record{{
			File:     r.Path,
			RuleID:   LoadRuleID,
			Severity: SeverityError,
			Message:  msg,
		}}
	}
	return r.Run.Report.Records(r.Path)
}

// LoadRuleID tags records for files that failed to load.
const LoadRuleID = "load"
