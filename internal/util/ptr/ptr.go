// Package ptr provides helpers for taking the address of literal values.
package ptr

// String returns a pointer to the given string value.
func String(s string) *string { return &s }

// Bool returns a pointer to the given bool value.
func Bool(b bool) *bool { return &b }
