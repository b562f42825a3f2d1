package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

const indentPt = 0.5 * pointsPerCM

type hit struct {
	rule     string
	index    int
	severity domain.Severity
	message  string
}

func para(text string, align domain.Alignment, size float64, bold, italic bool) domain.Paragraph {
	return domain.Paragraph{
		Text:      text,
		Alignment: align,
		FontName:  "Times New Roman",
		FontSize:  size,
		Bold:      bold,
		Italic:    italic,
		Runs: []domain.Run{{
			Text: text, FontName: "Times New Roman", FontSize: size, Bold: bold, Italic: italic,
		}},
	}
}

func bodyPara(text string) domain.Paragraph {
	p := para(text, domain.AlignmentJustify, 10, false, false)
	p.Indent.FirstLine = indentPt
	return p
}

func blank() domain.Paragraph {
	return domain.Paragraph{}
}

// compliantDocument passes every default rule.
func compliantDocument() *domain.Document {
	paras := []domain.Paragraph{
		para("Иванов И.И., Петров П.П.", domain.AlignmentRight, 10, true, true),
		blank(),
		para("Исследование свойств материалов", domain.AlignmentCenter, 13, false, false),
		blank(),
		bodyPara("Аннотация. В работе рассмотрены свойства материалов."),
		bodyPara("Введение. Материалы широко применяются в технике."),
		para("Рис. 1 Схема установки", domain.AlignmentCenter, 9, false, false),
		para("Литература", domain.AlignmentLeft, 9, true, false),
		para("1. Иванов И.И. Материалы. М.: Наука, 2020.", domain.AlignmentJustify, 9, false, false),
	}
	return newDocument(paras...)
}

func newDocument(paras ...domain.Paragraph) *domain.Document {
	for i := range paras {
		paras[i].Index = i
		paras[i].TextPreview = domain.Preview(paras[i].Text, 80)
	}
	return &domain.Document{
		Path:       "paper.docx",
		Paragraphs: paras,
		Sections: []domain.Section{{
			PageWidthMM: 148, PageHeightMM: 210,
			MarginTopCM: 1.6, MarginBottomCM: 1.4, MarginLeftCM: 1.5, MarginRightCM: 1.5,
		}},
	}
}

func defaultSet(t *testing.T) *Set {
	t.Helper()
	s, err := New(domain.DefaultHouseStyle())
	require.NoError(t, err)
	return s
}

// run applies every rule of s to doc. Document hits without an anchor have index -1.
func run(s *Set, doc *domain.Document) []hit {
	rc := s.Prepare(doc)
	var hits []hit
	for _, p := range doc.Paragraphs {
		for _, r := range s.ParagraphRules() {
			if v := r.CheckParagraph(p, rc); v != nil {
				hits = append(hits, hit{rule: r.ID(), index: p.Index, severity: v.Severity, message: v.Message})
			}
		}
	}
	for _, r := range s.DocumentRules() {
		if v := r.CheckDocument(doc, rc); v != nil {
			idx := -1
			if v.Anchor != nil {
				idx = *v.Anchor
			}
			hits = append(hits, hit{rule: r.ID(), index: idx, severity: v.Severity, message: v.Message})
		}
	}
	return hits
}

func hitsFor(hits []hit, rule string) []hit {
	var out []hit
	for _, h := range hits {
		if h.rule == rule {
			out = append(out, h)
		}
	}
	return out
}
