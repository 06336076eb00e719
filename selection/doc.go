// Package selection resolves the length of the text currently selected in
// a control.
//
// Hosts disagree about where selection state lives: some controls report
// their range directly, some environments only expose an ambient
// "current selection" object, and some only a legacy range factory. The
// resolver walks an ordered chain of sources and takes the first usable
// answer. A source that is inapplicable, reports zero, or panics simply
// passes the turn to the next one; when the whole chain comes up empty the
// resolver answers 0, the safe "no selection" default.
package selection
