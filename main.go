package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/chargejump/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	autopilot := flag.Bool("autopilot", false, "drive the character with prefabs/scripts/autopilot.tengo")
	watch := flag.Bool("watch", false, "reload prefab specs and scripts when they change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional) or a path to a level file")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("chargejump")

	game := NewGame(Options{
		LevelName: *levelName,
		Debug:     *debug,
		Autopilot: *autopilot,
		Watch:     *watch,
	})
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
