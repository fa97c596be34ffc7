// Command jumpsim runs the autopilot headless over a level and prints a
// YAML trace of the character.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/milk9111/chargejump/common"
	"github.com/milk9111/chargejump/levels"
	"github.com/milk9111/chargejump/obj"
	"github.com/milk9111/chargejump/prefabs"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Frame    int     `yaml:"frame"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	VX       float64 `yaml:"vx"`
	VY       float64 `yaml:"vy"`
	State    string  `yaml:"state"`
	Health   int     `yaml:"health"`
	Grounded bool    `yaml:"grounded"`
}

type summary struct {
	RunID   string   `yaml:"run_id"`
	Level   string   `yaml:"level"`
	Frames  int      `yaml:"frames"`
	Jumps   int      `yaml:"jumps"`
	Hits    int      `yaml:"hits"`
	MinY    float64  `yaml:"min_y"`
	Dead    bool     `yaml:"dead"`
	Samples []sample `yaml:"samples,omitempty"`
}

type config struct {
	level  string
	script string
	frames int
	every  int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.level, "level", levels.DefaultLevel, "level to simulate")
	flag.StringVar(&cfg.script, "script", "autopilot", "autopilot script under prefabs/scripts")
	flag.IntVar(&cfg.frames, "frames", 600, "number of frames to run")
	flag.IntVar(&cfg.every, "every", 30, "sample every N frames (0 disables samples)")
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, out io.Writer) error {
	lvl, err := levels.LoadLevelFromFS(cfg.level)
	if err != nil {
		return err
	}
	charSpec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		return err
	}
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return err
	}
	src, err := prefabs.LoadScript(cfg.script)
	if err != nil {
		return fmt.Errorf("jumpsim: load script: %w", err)
	}
	pilot, err := obj.NewAutopilot(src)
	if err != nil {
		return err
	}

	sx, sy := lvl.SpawnPoint(common.TileSize)
	spawn := obj.Point{X: sx, Y: sy}
	wt, timeScale := obj.WorldTuningFromSpec(worldSpec)
	world := obj.NewCollisionWorld(lvl, common.TileSize, wt)
	sim := obj.NewSimulation(obj.NewCharacter(spawn, obj.TuningFromSpec(charSpec)), world, spawn)
	sim.TimeScale = timeScale
	if sim.SpawnBlocked() {
		return fmt.Errorf("jumpsim: level %s: spawn overlaps solid tiles", lvl.Name)
	}

	sum := simulate(sim, pilot, cfg)
	sum.RunID = uuid.NewString()
	sum.Level = lvl.Name

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(sum)
}

func simulate(sim *obj.Simulation, pilot *obj.Autopilot, cfg config) summary {
	c := sim.Character
	sum := summary{MinY: c.Y()}
	for i := 0; i < cfg.frames && !c.IsDead(); i++ {
		in, err := pilot.Next(c)
		if err != nil {
			log.Printf("jumpsim: %v", err)
			break
		}
		wasJumped := c.IsJumped()
		contact := sim.Step(in)

		if c.IsJumped() && !wasJumped {
			sum.Jumps++
		}
		if contact.Hazard || contact.OutOfWorld {
			sum.Hits++
		}
		sum.MinY = min(sum.MinY, c.Y())
		if cfg.every > 0 && sim.Frames()%cfg.every == 0 {
			sum.Samples = append(sum.Samples, sample{
				Frame:    sim.Frames(),
				X:        c.X(),
				Y:        c.Y(),
				VX:       c.VelocityX(),
				VY:       c.VelocityY(),
				State:    c.JumpState(),
				Health:   c.Health(),
				Grounded: contact.Grounded,
			})
		}
	}
	sum.Frames = sim.Frames()
	sum.Dead = c.IsDead()
	return sum
}
