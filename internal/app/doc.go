// Package app runs the atom visualizer's two-state loop.
//
//   - Selecting: the atomic-number prompt. Keystrokes edit the field; Enter
//     accepts a number in [1,30] and anything else clears the field silently.
//   - Running: the animated atom with the "Change Element" control, which
//     returns to Selecting.
//
// [App.Frame] performs exactly one cycle against a [surface.Surface] and
// reports false once a quit event has been seen. Nothing of the animation
// is drawn or advanced while Selecting is active.
package app
