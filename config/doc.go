// Package config loads the demo application's TOML configuration and
// watches it for changes.
//
// The configuration names the form fields to present and the guard
// defaults applied to them. A missing file is not an error — the demo
// runs with defaults — and a field with a malformed max simply has
// constraint enforcement disabled, consistent with how the evaluator
// treats malformed max attributes.
package config
