// Package window is the native backend: an SDL2 window and accelerated
// renderer. It is compiled only with the sdl2 build tag, since it needs the
// SDL2 development libraries:
//
//	go build -tags sdl2 ./cmd/breakout
package window

const (
	name        = "window"
	description = "SDL2 window and renderer (build with -tags sdl2)"
)
