// Package tui is the terminal backend. A Bubble Tea program owns the
// terminal on its own goroutine; the game loop hands it finished frames and
// drains the key events it collects.
package tui

// frameMsg carries a rendered frame to the program.
type frameMsg string

