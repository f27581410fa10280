//go:build ebiten

package main

import (
	"snek/config"
	"snek/game"
	"snek/ui/ebitenui"
)

const windowFrontend = config.FrontendEbiten

func runWindow(sess *game.Session, cfg config.Config) error {
	return ebitenui.Run(sess, cfg)
}
