package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/automoto/downhill/config"
	"github.com/automoto/downhill/core"
	"github.com/automoto/downhill/scenes"
	"github.com/automoto/downhill/scores"
	"github.com/automoto/downhill/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(board *scores.Board) *Game {
	seed := config.Debug.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Game{
		scene: scenes.NewSlopeScene(core.Options{
			Board:     board,
			Seed:      seed,
			Debug:     config.Debug.Enabled,
			Collision: config.Debug.Collision,
			SkipMenu:  config.Debug.SkipMenu,
		}),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		systems.ToggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		systems.ToggleMute()
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var (
	configPath     string
	debug          bool
	skipMenu       bool
	leaderboardURL string
	seed           uint64
	noMusic        bool
	noCollision    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "downhill",
		Short:        "Arcade downhill skiing",
		SilenceUsage: true,
		RunE:         runGame,
	}

	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultConfigPath(), "path to a TOML config file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "show the debug overlay and enable the collision toggle (F2)")
	rootCmd.Flags().BoolVar(&skipMenu, "skip-menu", false, "start straight into the countdown")
	rootCmd.Flags().StringVar(&leaderboardURL, "leaderboard-url", "", "leaderboard server endpoint, e.g. http://localhost:8080/scores")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "obstacle seed (0 picks one from the clock)")
	rootCmd.Flags().BoolVar(&noMusic, "no-music", false, "disable the race music")
	rootCmd.Flags().BoolVar(&noCollision, "no-collision", false, "start with collisions disabled")

	return rootCmd
}

func runGame(cmd *cobra.Command, _ []string) error {
	fc, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fc.Apply()

	// Explicit flags beat the file
	flags := cmd.Flags()
	if flags.Changed("leaderboard-url") {
		config.Scores.URL = leaderboardURL
	}
	config.Debug.Enabled = debug
	config.Debug.SkipMenu = skipMenu
	config.Debug.Seed = seed
	config.Debug.NoMusic = noMusic
	config.Debug.Collision = !noCollision

	systems.SetMusicVolume(config.Audio.DefaultMusicVol)
	systems.SetSFXVolume(config.Audio.DefaultSFXVol)
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	return ebiten.RunGame(NewGame(newBoard()))
}

// newBoard builds the leaderboard client. A missing save directory only
// costs persistence across runs.
func newBoard() *scores.Board {
	var cache scores.Cache
	gc, err := scores.OpenGDataCache(config.Scores.AppName, config.Scores.CacheKey)
	if err != nil {
		log.Printf("Warning: leaderboard cache unavailable: %v", err)
		cache = &scores.MemoryCache{}
	} else {
		cache = gc
	}

	store := scores.NewHTTPStore(config.Scores.URL, config.Scores.Timeout)
	return scores.NewBoard(store, cache, config.Scores.Limit, config.Scores.Timeout)
}
