// Package view projects read-only snapshots of the session and directory
// into displayable pages. Render functions are pure: they never touch the
// repository or the session, so every mutation has to flow back through
// those components from the event handlers.
package view

// Page is the displayable result of a render function: a styled body plus
// the interactive regions the page exposes, which the caller wires to
// commands.
type Page struct {
	Title   string
	Body    string
	Regions []string
}
