package services

import (
	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
	"github.com/custodia-labs/docstyle/internal/logger"
)

// FaultMessage is the message of findings produced by a failing rule.
const FaultMessage = "rule could not be evaluated"

// Evaluator applies a rule set to a document.
// It holds no state, so one Evaluator may serve many goroutines.
type Evaluator struct{}

// NewEvaluator creates an evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate runs the context pre-pass once, then every paragraph rule on
// every paragraph in document order, then every document rule.
// A rule that panics yields one ERROR finding and evaluation continues.
func (e *Evaluator) Evaluate(doc *domain.Document, set driven.RuleSet) *domain.Report {
	rc := set.Prepare(doc)
	preview := set.PreviewLength()

	var findings []domain.Finding
	for _, p := range doc.Paragraphs {
		for _, rule := range set.ParagraphRules() {
			v, fault := checkParagraph(rule, p, rc)
			if fault != nil {
				logger.Warn("%s: %v", doc.Path, fault)
				v = domain.Error(FaultMessage)
			}
			if v == nil {
				continue
			}
			findings = append(findings, domain.Finding{
				RuleID:         rule.ID(),
				ParagraphIndex: domain.IntPtr(p.Index),
				Severity:       v.Severity,
				Message:        v.Message,
				Context:        domain.Preview(p.Text, preview),
			})
		}
	}

	for _, rule := range set.DocumentRules() {
		v, fault := checkDocument(rule, doc, rc)
		if fault != nil {
			logger.Warn("%s: %v", doc.Path, fault)
			v = domain.Error(FaultMessage)
		}
		if v == nil {
			continue
		}
		f := domain.Finding{
			RuleID:   rule.ID(),
			Severity: v.Severity,
			Message:  v.Message,
		}
		if p, ok := doc.Paragraph(anchor(v)); ok {
			f.ParagraphIndex = domain.IntPtr(p.Index)
			f.Context = domain.Preview(p.Text, preview)
		}
		findings = append(findings, f)
	}

	return domain.NewReport(findings)
}

func anchor(v *domain.Violation) int {
	if v.Anchor == nil {
		return -1
	}
	return *v.Anchor
}

func checkParagraph(rule driven.ParagraphRule, p domain.Paragraph, rc *domain.RuleContext) (v *domain.Violation, fault *domain.RuleFault) {
	defer func() {
		if r := recover(); r != nil {
			v, fault = nil, &domain.RuleFault{RuleID: rule.ID(), ParagraphIndex: domain.IntPtr(p.Index), Cause: r}
		}
	}()
	return sanitize(rule.CheckParagraph(p, rc)), nil
}

func checkDocument(rule driven.DocumentRule, doc *domain.Document, rc *domain.RuleContext) (v *domain.Violation, fault *domain.RuleFault) {
	defer func() {
		if r := recover(); r != nil {
			v, fault = nil, &domain.RuleFault{RuleID: rule.ID(), Cause: r}
		}
	}()
	return sanitize(rule.CheckDocument(doc, rc)), nil
}

// sanitize drops explicit OK verdicts so reports only hold things to look at.
func sanitize(v *domain.Violation) *domain.Violation {
	if v == nil || v.Severity == domain.SeverityOK {
		return nil
	}
	if !v.Severity.IsValid() {
		c := *v
		c.Severity = domain.SeverityError
		return &c
	}
	return v
}
