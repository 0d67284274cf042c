// Package viz draws the orrery in a terminal.
//
// The package implements the live view using the Bubble Tea framework:
//
//   - [Model]: the scene on a Braille [Canvas] plus a stats panel
//   - [RunInteractive]: a preset menu that launches the live view
//   - Theme selection with 4 built-in colour schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to frame zero
//	T     - Cycle colour themes
//	G     - Toggle GIF recording
//	O     - Toggle orbit guides
//	?     - Show help overlay
//	+/-   - Change speed
//
// Hovering a body with the mouse shows its facts; clicking pins them.
//
// # Recording
//
// G starts capturing every drawn frame and a second G writes them as an
// animated GIF, orrery.gif unless [Options].GIFPath says otherwise.
package viz
