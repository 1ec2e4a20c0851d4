package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Feline-Finances/internal/config"
	"github.com/Garsondee/Feline-Finances/internal/game"
	"github.com/Garsondee/Feline-Finances/internal/save"
	"github.com/Garsondee/Feline-Finances/internal/ui"
)

func main() {
	logger := log.New(os.Stderr, "feline: ", log.LstdFlags)

	env, err := config.LoadEnv()
	if err != nil {
		logger.Fatal(err)
	}
	balance, err := config.LoadBalance(env.BalancePath)
	if err != nil {
		logger.Fatal(err)
	}

	store := save.NewFileStore(env.SavePath)
	st, resumed, err := store.Resume(logger)
	if err != nil {
		logger.Fatal(err)
	}

	seed := env.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []game.Option{
		game.WithBalance(balance),
		game.WithSaver(store),
		game.WithLogger(logger),
		game.WithRand(rand.New(rand.NewSource(seed))), // #nosec G404 -- gameplay only
		game.WithJournal(game.NewBoundedJournal(2000, env.Verbose)),
	}
	if resumed {
		opts = append(opts, game.WithState(st))
		logger.Printf("resumed %s from %s", st.Pet.Name, store.Path())
	}
	g, err := game.New(opts...)
	if err != nil {
		logger.Fatal(err)
	}

	ebiten.SetWindowTitle("Feline Finances")
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetTPS(env.TPS)
	ebiten.SetWindowClosingHandled(true)

	app := ui.NewApp(g, ui.NewSounds(), env.TPS, logger)
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal(err)
	}
}
