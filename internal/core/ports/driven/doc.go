// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentLoader: Opens a document and resolves paragraph formatting
//   - SourceDocument / DocumentCopy: Read-only original and mutable copy
//   - RuleSet: Ordered paragraph and document rules plus the context pre-pass
//   - StyleLoader: House-style profiles
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ReportStore: Check-run history. Without it, runs are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
