// Package viz renders the atom visualizer in a terminal.
//
// The package hosts the same render loop as the window front-end inside a
// Bubble Tea program:
//
//   - [Canvas]: braille dot grid with per-cell color and a text layer
//   - [Surface]: the render surface, scaling the virtual window onto the canvas
//   - [Model]: Bubble Tea model that feeds terminal input to the loop
//   - Side panel themes matching the palette presets
//
// # Key Bindings
//
//	0-9       - Type an atomic number at the prompt
//	Enter     - Submit
//	Backspace - Erase
//	C         - Change element (also clicking the button)
//	T         - Cycle panel themes
//	Q / Esc   - Quit
package viz
