package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/chargejump/common"
	"github.com/milk9111/chargejump/levels"
	"github.com/milk9111/chargejump/obj"
	"github.com/milk9111/chargejump/prefabs"
	"golang.org/x/image/colornames"
)

const (
	autopilotScript = "autopilot.tengo"
	hitFlashSeconds = 0.4
)

type Options struct {
	LevelName string
	Debug     bool
	Autopilot bool
	Watch     bool
}

type Game struct {
	frames int
	debug  bool
	paused bool

	keyboard  *obj.Keyboard
	autopilot *obj.Autopilot
	character *obj.Character
	world     *obj.CollisionWorld
	sim       *obj.Simulation
	levelView *obj.LevelView
	surface   *obj.ImageSurface
	watcher   *prefabs.Watcher
	pauseUI   *ebitenui.UI
	flash     *obj.HitFlash
}

func NewGame(opts Options) *Game {
	lvl := loadLevel(opts.LevelName)

	charSpec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		log.Printf("failed to load character spec, using defaults: %v", err)
	}
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Printf("failed to load world spec, using defaults: %v", err)
	}
	wt, timeScale := obj.WorldTuningFromSpec(worldSpec)

	spawnX, spawnY := lvl.SpawnPoint(common.TileSize)
	spawn := obj.Point{X: spawnX, Y: spawnY}

	g := &Game{
		debug:     opts.Debug,
		keyboard:  obj.NewKeyboard(),
		character: obj.NewCharacter(spawn, obj.TuningFromSpec(charSpec)),
		world:     obj.NewCollisionWorld(lvl, common.TileSize, wt),
		levelView: obj.NewLevelView(lvl, common.TileSize),
		surface:   obj.NewImageSurface(nil),
		flash:     obj.NewHitFlash(color.NRGBA{R: 0xc0, G: 0x20, B: 0x20, A: 0x90}),
	}
	g.sim = obj.NewSimulation(g.character, g.world, spawn)
	g.sim.TimeScale = timeScale
	if g.sim.SpawnBlocked() {
		log.Printf("level %s: spawn overlaps solid tiles", lvl.Name)
	}
	g.watchHealth()
	g.pauseUI = NewPauseUI(g)

	if opts.Autopilot {
		g.loadAutopilot()
	}
	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts"))
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

// loadLevel tries the embedded levels first, then the disk, then falls back
// to the default level.
func loadLevel(name string) *levels.Level {
	if name != "" {
		if lvl, err := levels.LoadLevelFromFS(name); err == nil {
			return lvl
		}
		lvl, err := levels.LoadLevel(name)
		if err == nil {
			return lvl
		}
		log.Printf("failed to load level %s: %v", name, err)
	}
	lvl, err := levels.LoadLevelFromFS(levels.DefaultLevel)
	if err != nil {
		log.Fatalf("failed to load default level: %v", err)
	}
	return lvl
}

func (g *Game) loadAutopilot() {
	src, err := prefabs.LoadScript(autopilotScript)
	if err != nil {
		log.Printf("autopilot: load: %v", err)
		return
	}
	ap, err := obj.NewAutopilot(src)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	g.autopilot = ap
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.reloadPrefabs()

	in := g.keyboard.Poll()
	if g.keyboard.DebugPressed {
		g.debug = !g.debug
	}
	if g.keyboard.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.tick(in)
	return nil
}

// watchHealth hooks the hit flash and the debug trace to life loss.
func (g *Game) watchHealth() {
	g.character.OnLifeLost(func(remaining int) {
		g.flash.Trigger(hitFlashSeconds)
		if g.debug {
			fmt.Printf("game: frame=%d lost a life, health=%d\n", g.frames, remaining)
		}
	})
	g.character.OnDeath(func() {
		log.Printf("game: no lives left after %d frames", g.sim.Frames())
	})
}

// tick advances one unpaused frame. The flash keeps fading after death so the
// tint does not freeze on screen.
func (g *Game) tick(in obj.InputState) {
	g.flash.Update(float32(g.sim.TimeScale / float64(ebiten.TPS())))
	if g.character.IsDead() {
		return
	}

	if g.autopilot != nil {
		scripted, err := g.autopilot.Next(g.character)
		if err != nil {
			log.Printf("%v; autopilot disabled", err)
			g.autopilot = nil
		} else {
			in = scripted
		}
	}

	g.sim.Step(in)
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefabs: watcher: %v", err)
		}
	default:
	}

	for _, path := range g.watcher.Drain() {
		switch filepath.Base(path) {
		case prefabs.CharacterSpecFile:
			spec, err := prefabs.LoadCharacterSpec()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", path, err)
				continue
			}
			g.character.SetTuning(obj.TuningFromSpec(spec))
		case prefabs.WorldSpecFile:
			spec, err := prefabs.LoadWorldSpec()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", path, err)
				continue
			}
			wt, scale := obj.WorldTuningFromSpec(spec)
			g.world.SetTuning(wt)
			g.sim.TimeScale = scale
		case autopilotScript:
			if g.autopilot == nil {
				continue
			}
			g.loadAutopilot()
		default:
			continue
		}
		log.Printf("prefabs: reloaded %s", path)
	}
}

// restart puts the character back at the level spawn with full health.
func (g *Game) restart() {
	g.sim.Restart()
	if g.autopilot != nil {
		g.loadAutopilot()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightskyblue)

	g.surface.Image = screen
	g.levelView.Draw(g.surface)
	g.character.Render(g.surface)
	g.flash.Draw(g.surface, common.BaseWidth, common.BaseHeight)

	if g.debug {
		g.world.DebugDraw(g.surface)
		c := g.character
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  frame: %d\nstate: %s  charge: %.1f  jumped: %t\npos: (%.1f, %.1f)  vel: (%.2f, %.2f)\nhealth: %d  grounded: %t  hazard: %t",
			ebiten.ActualFPS(), g.frames,
			c.JumpState(), c.JumpCharge(), c.IsJumped(),
			c.X(), c.Y(), c.VelocityX(), c.VelocityY(),
			c.Health(), g.sim.LastContact().Grounded, g.sim.LastContact().Hazard,
		))
	} else {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("health: %d", g.character.Health()))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
