//go:build !ebiten

package main

import (
	"snek/config"
	"snek/game"
	"snek/ui"
)

// raylib and ebiten each link their own copy of GLFW, so a binary carries
// exactly one window frontend.
const windowFrontend = config.FrontendRaylib

func runWindow(sess *game.Session, cfg config.Config) error {
	return ui.Run(sess, cfg)
}
