// Package ui provides the drawing primitives shared by dashboard panels.
//
// Core abstractions:
//   - Frame: a fixed-size canvas of styled lines, one per terminal row
//   - Rect: a region of the frame assigned to one panel
//   - Layout: splits the frame into cells (Grid, Quad)
//   - Panel: anything that can draw itself into a Rect
//   - InputHandler: a panel that also reacts to keys
//
// Box and HelpLine give panels a common bordered look with a key hint
// footer.
package ui
