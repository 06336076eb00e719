// Package control defines the read-only view of a text-entry control that
// admission decisions are made against, plus Buffer, an in-memory control
// used by tests and terminal hosts.
//
// The decision core only ever reads a control: its current value and its
// max attribute, and — when the control supports it — its selection range.
// Mutation lives exclusively on concrete implementations like Buffer; the
// evaluators return verdicts and the host applies them.
package control
