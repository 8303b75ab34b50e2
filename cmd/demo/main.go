// Command demo presents the engine's frames in an ebiten window. It is the
// presentation layer the engine core treats as an external collaborator: the
// engine hands it a finished frame buffer each draw, nothing more.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/spritestage/engine"
	"github.com/milk9111/spritestage/engine/config"
	"github.com/milk9111/spritestage/scenes"
)

type Game struct {
	eng       *engine.Engine
	sceneFile string
	watcher   *scenes.Watcher
}

func (g *Game) Update() error {
	if g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events():
			if ok {
				log.Printf("demo: %s changed, reloading scene", name)
				g.reloadScene()
			}
		case err, ok := <-g.watcher.Errors():
			if ok {
				log.Printf("demo: watcher error: %v", err)
			}
		default:
		}
	}

	g.eng.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.eng.Render()
	screen.WritePixels(frame.Pix)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	res := g.eng.Config().Resolution
	return res.Width, res.Height
}

func (g *Game) reloadScene() {
	spec, err := scenes.LoadSpec(g.sceneFile)
	if err != nil {
		log.Printf("demo: reload %s: %v", g.sceneFile, err)
		return
	}
	s, err := scenes.Build(spec)
	if err != nil {
		log.Printf("demo: rebuild %s: %v", g.sceneFile, err)
		return
	}
	g.eng.SetScene(s)
}

func main() {
	configFile := flag.String("config", "", "engine config YAML (defaults to 200x200 black)")
	sceneFile := flag.String("scene", "demo.yaml", "scene spec in scenes/")
	watch := flag.Bool("watch", false, "reload the scene when its files change")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		c, err := config.Load(*configFile)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}
	if cfg.Scene != "" {
		*sceneFile = cfg.Scene
	}

	spec, err := scenes.LoadSpec(*sceneFile)
	if err != nil {
		log.Fatal(err)
	}
	s, err := scenes.Build(spec)
	if err != nil {
		log.Fatal(err)
	}

	eng, err := engine.New(cfg, s)
	if err != nil {
		log.Fatal(err)
	}

	game := &Game{eng: eng, sceneFile: *sceneFile}
	if *watch {
		w, err := scenes.NewWatcher("scenes", "scenes/scripts")
		if err != nil {
			log.Printf("demo: watch disabled: %v", err)
		} else {
			game.watcher = w
			defer w.Close()
		}
	}

	res := cfg.Resolution
	ebiten.SetWindowSize(res.Width*2, res.Height*2)
	ebiten.SetWindowTitle("spritestage")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
