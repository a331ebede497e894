package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/fonts"
	"github.com/pandaescape/panda/scenes"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	cfg   *config.Config
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	configPath := flag.String("config", config.DefaultFile, "YAML tuning file")
	level := flag.Int("level", 0, "first level to play (1-based)")
	skipMenu := flag.Bool("skip-menu", false, "start playing immediately")
	debug := flag.Bool("debug", false, "show the debug overlay and log state changes")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	flag.Parse()

	load := func() (*config.Config, error) {
		return config.Load(*configPath, os.Getenv,
			config.WithDebug(*debug),
			config.WithSkipMenu(*skipMenu),
			config.WithStartLevel(*level),
			config.WithWatch(*watch),
		)
	}

	cfg, err := load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.FPS)

	game := &Game{
		cfg:   cfg,
		scene: scenes.NewGameScene(cfg, *configPath, load),
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
