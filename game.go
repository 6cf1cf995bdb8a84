package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

const defaultLevel = "map.json"

var defaultBackground = color.RGBA{R: 0x2a, G: 0x2a, B: 0x2e, A: 0xff}

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	levelPath string
	level     *levels.Level
	world     *ecs.World
	scheduler *ecs.Scheduler

	background color.Color
	pauseUI    *ebitenui.UI
	watcher    *prefabs.Watcher
}

func NewGame(levelPath string, debug, watch bool) (*Game, error) {
	g := &Game{
		debug:     debug,
		levelPath: levelPath,
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		watcher, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			log.Printf("game: watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	if err := g.setup(); err != nil {
		return nil, fmt.Errorf("game: setup: %w", err)
	}
	return g, nil
}

// setup (re)builds the world from scratch: level, player at spawn, camera,
// and HUD. The score starts back at zero.
func (g *Game) setup() error {
	lvl := g.loadLevel()
	g.level = lvl

	g.background = defaultBackground
	if lvl.BackgroundColor != "" {
		g.background = entity.ParseHexColor(lvl.BackgroundColor)
	}

	w := ecs.NewWorld()
	if _, err := entity.NewLevel(w, lvl); err != nil {
		return err
	}
	spawnX, spawnY := entity.SpawnPosition(lvl)
	if _, err := entity.NewPlayerAt(w, spawnX, spawnY); err != nil {
		return err
	}
	if _, err := entity.NewCamera(w); err != nil {
		return err
	}
	if _, err := entity.NewScoreCounter(w); err != nil {
		return err
	}

	g.world = w
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPlayerControllerSystem(),
		system.NewPhysicsSystem(lvl),
		system.NewPickupHoverSystem(),
		system.NewAudioSystem(),
		system.NewPickupCollectSystem(),
		system.NewTTLSystem(),
		system.NewCameraSystem(),
		system.NewScoreCounterSystem(),
		system.NewRenderSystem(),
	)
	return nil
}

// loadLevel resolves -level against disk, falling back to the embedded map
// when the override is missing or malformed.
func (g *Game) loadLevel() *levels.Level {
	if g.levelPath != "" {
		lvl, err := levels.LoadFile(g.levelPath)
		if err == nil {
			return lvl
		}
		log.Printf("game: load level %s: %v (falling back to embedded map)", g.levelPath, err)
	}
	lvl, err := levels.Load(defaultLevel)
	if err != nil {
		// The embedded map is validated at build time; this only happens
		// if it's edited into an invalid state.
		log.Fatalf("game: load embedded level: %v", err)
	}
	return lvl
}

func (g *Game) Update() error {
	g.frames++

	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollWatcher()

	g.scheduler.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		if g.debug {
			log.Printf("game: event %s: %+v", evt.Type, evt.Data)
		}
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name := <-g.watcher.Events:
			log.Printf("game: %s changed, rebuilding", name)
			changed = true
			continue
		case err := <-g.watcher.Errors:
			log.Printf("game: watcher: %v", err)
			continue
		default:
		}
		break
	}
	if changed {
		if err := g.setup(); err != nil {
			log.Printf("game: reload failed: %v", err)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	g.scheduler.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
