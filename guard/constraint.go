package guard

import "unicode/utf8"

// Constraint is a max attribute interpreted as a digit-length bound.
// The zero value is a disabled constraint.
type Constraint struct {
	raw string
	ok  bool
}

// ParseConstraint interprets a max attribute value. An empty or non-digit
// value yields a disabled constraint; enforcement is silently off rather
// than an error, so a misconfigured attribute never breaks the control.
func ParseConstraint(attr string) Constraint {
	if !digitString(attr) {
		return Constraint{}
	}
	return Constraint{raw: attr, ok: true}
}

// Enabled returns true when the constraint will be enforced.
func (c Constraint) Enabled() bool {
	return c.ok
}

// DigitLength returns the digit count the constraint bounds values to,
// or 0 when the constraint is disabled.
func (c Constraint) DigitLength() int {
	if !c.ok {
		return 0
	}
	return utf8.RuneCountInString(c.raw)
}

// String returns the raw attribute value, empty when disabled.
func (c Constraint) String() string {
	if !c.ok {
		return ""
	}
	return c.raw
}

// digitString reports whether s is one or more ASCII digits.
func digitString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
