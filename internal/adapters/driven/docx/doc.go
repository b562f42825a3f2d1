// Package docx reads and annotates WordprocessingML (.docx) packages.
//
// The Loader turns word/document.xml into domain paragraph records with
// fully resolved formatting. Resolution merges, per attribute, the first
// layer that sets it:
//
//	run properties > paragraph properties > style chain > document defaults
//
// The style chain walks w:basedOn from the closest style outwards; for runs
// the character style (w:rStyle) chain comes before the paragraph style chain.
//
// The SourceDocument returned alongside holds the original bytes only. Every
// Copy re-parses them, so the annotated copy can never leak back into the
// original. Only top-level body paragraphs are addressable; tables, headers
// and footnotes are carried through untouched.
package docx
