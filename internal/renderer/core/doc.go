// Package core provides the terminal output vocabulary shared by the
// renderer packages: cursor positioning, erase sequences and SGR styles.
//
// Sequence bodies come from termenv so the editor speaks the same dialect as
// the rest of the terminal tooling it is built with.
package core
