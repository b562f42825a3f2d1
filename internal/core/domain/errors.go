package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent checking failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnreadableDocument indicates the file is missing or cannot be opened.
	ErrUnreadableDocument = errors.New("document unreadable")

	// ErrCorruptDocument indicates the package opened but its XML could not be
	// parsed or has no document body.
	ErrCorruptDocument = errors.New("document corrupt")

	// ErrAnnotationWrite indicates the annotated copy could not be saved.
	ErrAnnotationWrite = errors.New("annotation write failed")

	// ErrUnknownRule indicates a rule id that is not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrUnknownProfile indicates a style profile that does not exist.
	ErrUnknownProfile = errors.New("unknown style profile")

	// ErrHistoryDisabled indicates no history store is configured.
	ErrHistoryDisabled = errors.New("check history disabled")

	// ErrAmbiguousID indicates an ID prefix that matches several entities.
	ErrAmbiguousID = errors.New("ambiguous id")
)

// RuleFault records a rule that panicked during evaluation.
// The engine turns it into an ERROR finding and carries on.
type RuleFault struct {
	RuleID         string
	ParagraphIndex *int
	Cause          any
}

// Error implements error.
func (f *RuleFault) Error() string {
	if f.ParagraphIndex != nil {
		return fmt.Sprintf("rule %s failed on paragraph %d: %v", f.RuleID, *f.ParagraphIndex, f.Cause)
	}
	return fmt.Sprintf("rule %s failed: %v", f.RuleID, f.Cause)
}
