package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/castaway-games/angler/internal/catalog"
	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/orchestrators/cast"
	"github.com/castaway-games/angler/internal/orchestrators/progression"
	"github.com/castaway-games/angler/internal/orchestrators/quests"
	"github.com/castaway-games/angler/internal/orchestrators/session"
	"github.com/castaway-games/angler/internal/orchestrators/skillcheck"
	"github.com/castaway-games/angler/internal/pkg/dice"
	"github.com/castaway-games/angler/internal/pkg/idgen"
	"github.com/castaway-games/angler/internal/redis"
	"github.com/castaway-games/angler/internal/repositories/gamestate"
)

var (
	savePath  string
	redisAddr string
	seed      int64
	verbose   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume a game",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&savePath, "save", defaultSavePath(), "save file location")
	playCmd.Flags().StringVar(&redisAddr, "redis", "", "store saves in Redis at this address instead of the save file")
	playCmd.Flags().Int64Var(&seed, "seed", 0, "seed the random source (0 means non-deterministic)")
	playCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

func defaultSavePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "angler-save.json"
	}
	return filepath.Join(home, ".angler", "save.json")
}

func runPlay(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cat, err := catalog.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load game data")
	}

	roller := dice.New()
	if seed != 0 {
		roller = dice.NewSeeded(seed)
	}

	repo, err := newRepository()
	if err != nil {
		return err
	}

	input := newStdinInput()
	defer input.Close()

	checker, err := skillcheck.New(&skillcheck.Config{
		Poller: input,
		Roller: roller,
	})
	if err != nil {
		return err
	}

	caster, err := cast.New(&cast.Config{
		Catalog: cat,
		Checker: checker,
		Roller:  roller,
		IDGen:   idgen.NewUUID("catch"),
	})
	if err != nil {
		return err
	}

	ledger, err := progression.New(&progression.Config{Catalog: cat})
	if err != nil {
		return err
	}

	questSvc, err := quests.New(&quests.Config{
		Catalog: cat,
		Roller:  roller,
		IDGen:   idgen.NewUUID("quest"),
	})
	if err != nil {
		return err
	}

	engine, err := session.New(&session.Config{
		Catalog: cat,
		Caster:  caster,
		Ledger:  ledger,
		Quests:  questSvc,
		Repo:    repo,
		Roller:  roller,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := engine.Start(ctx); err != nil {
		return err
	}

	game := &game{engine: engine, input: input}
	return game.run(ctx)
}

func newRepository() (gamestate.Repository, error) {
	if redisAddr != "" {
		client, err := redis.NewClient(redisAddr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		return gamestate.NewRedis(&gamestate.RedisConfig{Client: client})
	}
	return gamestate.NewFile(&gamestate.FileConfig{Path: savePath})
}
