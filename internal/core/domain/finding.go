package domain

// Severity grades a finding. The zero value is not a valid severity.
type Severity string

// Severities in increasing order of seriousness.
const (
	SeverityOK    Severity = "OK"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// IsValid returns true if the severity is recognised.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityOK, SeverityWarn, SeverityError:
		return true
	default:
		return false
	}
}

// Rank orders severities: OK < WARN < ERROR. Unknown severities rank below OK.
func (s Severity) Rank() int {
	switch s {
	case SeverityOK:
		return 0
	case SeverityWarn:
		return 1
	case SeverityError:
		return 2
	default:
		return -1
	}
}

// Max returns the more serious of s and other.
func (s Severity) Max(other Severity) Severity {
	if other.Rank() > s.Rank() {
		return other
	}
	return s
}

// String returns the string representation.
func (s Severity) String() string {
	return string(s)
}

// Description returns a human-readable description of the severity.
func (s Severity) Description() string {
	switch s {
	case SeverityOK:
		return "Passes the house style"
	case SeverityWarn:
		return "Near the limit; review advised"
	case SeverityError:
		return "Violates the house style"
	default:
		return unknownDescription
	}
}

const unknownDescription = "Unknown"

// Violation is what a rule returns when it finds a problem.
// Rules return nil when satisfied.
type Violation struct {
	Severity Severity
	Message  string

	// Anchor re-targets a document-level violation at a paragraph.
	// Paragraph rules leave it nil.
	Anchor *int
}

// Warn builds a WARN violation.
func Warn(message string) *Violation {
	return &Violation{Severity: SeverityWarn, Message: message}
}

// Error builds an ERROR violation.
func Error(message string) *Violation {
	return &Violation{Severity: SeverityError, Message: message}
}

// At anchors the violation at paragraph index i and returns it.
func (v *Violation) At(i int) *Violation {
	v.Anchor = &i
	return v
}

// Finding is one outcome of a rule, attached to a paragraph or to the
// whole document when ParagraphIndex is nil.
type Finding struct {
	RuleID         string   `json:"rule_id"`
	ParagraphIndex *int     `json:"paragraph_index"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`

	// Context is the preview of the related paragraph, or empty.
	Context string `json:"context"`
}

// IsDocumentLevel reports whether the finding is not tied to a paragraph.
func (f Finding) IsDocumentLevel() bool {
	return f.ParagraphIndex == nil
}

// IntPtr returns a pointer to i.
func IntPtr(i int) *int {
	return &i
}
