// Package domain defines the core business entities for docstyle.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Paragraph: A body paragraph with its effective formatting
//   - Document: Paragraphs plus page geometry
//   - Finding: One rule outcome, tied to a paragraph or the whole document
//   - Report: The ordered findings of one check
//   - HouseStyle: The configurable expectations rules check against
//   - CheckRun: A recorded check of one file
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
