// Package style loads house-style profiles.
//
// A profile is a TOML or YAML file holding any subset of the house-style
// fields; whatever it leaves out keeps the built-in conference-a5 value.
// Profiles live in ~/.docstyle/styles/<name>.toml (or .yaml/.yml), or can
// be given as a file path.
package style
