// Package services implements the driving port interfaces.
// Services contain the checking logic and orchestrate
// calls to driven ports (adapters).
//
// The Evaluator and Annotator are the two engines of a check: the first
// turns a document into a report, the second marks a copy of the
// document with that report. CheckService runs both for each file.
package services
