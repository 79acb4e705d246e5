// Package screens contains concrete overlay flows rendered on top of the
// dashboard.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (the provider picker)
// - modal-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
