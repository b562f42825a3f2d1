package rules

// RegisterDefaults registers the built-in rules in report order:
// paragraph rules first, then document rules.
func RegisterDefaults(r *Registry) {
	r.Register("font-family", buildFontFamily)
	r.Register("font-size", buildFontSize)
	r.Register("caption-font-size", buildCaptionFontSize)
	r.Register("body-alignment", buildBodyAlignment)
	r.Register("first-line-indent", buildFirstLineIndent)
	r.Register("indent-by-whitespace", buildIndentByWhitespace)
	r.Register("line-spacing", buildLineSpacing)
	r.Register("figure-caption-dot", buildFigureCaptionDot)
	r.Register("heading-numbering", buildHeadingNumbering)
	r.Register("tabs-in-text", buildTabsInText)
	r.Register("leading-spaces", buildLeadingSpaces)
	r.Register("nonbreaking-space", buildNonbreakingSpace)
	r.Register("hyphen-dash", buildHyphenDash)

	r.Register("page-size", buildPageSize)
	r.Register("margins", buildMargins)
	r.Register("page-count", buildPageCount)
	r.Register("last-page-fill", buildLastPageFill)
	r.Register("authors-line", buildAuthorsLine)
	r.Register("title-format", buildTitleFormat)
	r.Register("title-layout", buildTitleLayout)
	r.Register("title-spacing", buildTitleSpacing)
	r.Register("abstract-present", buildAbstractPresent)
	r.Register("structure-order", buildStructureOrder)
	r.Register("body-start", buildBodyStart)
	r.Register("literature-header", buildLiteratureHeader)
	r.Register("literature-items", buildLiteratureItems)
}
