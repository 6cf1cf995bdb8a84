package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and event logging")
	watch := flag.Bool("watch", false, "reload prefabs and levels on file change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelPath := flag.String("level", "", "path to a level JSON file (defaults to the embedded map)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle(common.Title)

	game, err := NewGame(*levelPath, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}

	runErr := ebiten.RunGame(game)
	game.Close()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
