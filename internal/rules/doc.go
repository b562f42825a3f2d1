// Package rules implements the house-style rule set.
//
// Every rule is a pure function of one paragraph (or the whole document)
// and a domain.RuleContext computed once by Set.Prepare. Rules never keep
// state between calls, so one Set can check many documents concurrently.
//
// Rules are built by name from a Registry. RegisterDefaults adds the
// built-in rules in report order; New builds the default set for a style.
package rules
