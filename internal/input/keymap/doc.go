// Package keymap maps decoded key events to named editor actions.
//
// A Keymap is a list of Bindings written as key specs (see key.Parse).
// Parsing a keymap resolves every spec once so lookups during editing are
// a single map access. Printable characters are not bound; callers insert
// them when no binding matches.
package keymap
