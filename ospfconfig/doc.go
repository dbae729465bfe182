// Package ospfconfig holds router and interface configuration records,
// the Go-native replacement for the original implementation's
// dictionary-based ConfigDict (spec.md §9): explicit structs with
// functional-option defaults rather than a dict with "unknown keys
// ignored" semantics.
package ospfconfig
