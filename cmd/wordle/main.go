package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/cli"
	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

func main() {
	dailyMode := flag.Bool("daily", false, "play today's word once instead of endless random games")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dict, err := words.Load(words.Source{
		AnswersFile: cfg.Words.AnswersFile,
		AllowedFile: cfg.Words.AllowedFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	answers, allowed := dict.Stats()
	log.Info().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	results, closeStore := openStore(ctx, cfg.DBPath)
	defer closeStore()

	opts := []cli.Option{cli.WithColor(!cfg.NoColor && !color.NoColor)}
	if *dailyMode {
		opts = append(opts, cli.WithDaily(cfg.DailySalt))
	}
	if err := cli.New(dict, results, opts...).Run(ctx); err != nil {
		log.Error().Err(err).Msg("game exited")
		closeStore()
		os.Exit(1)
	}
}

// openStore returns the SQLite store at path, or a memory store when path is
// config.MemoryDB or the file cannot be opened.
func openStore(ctx context.Context, path string) (store.Store, func()) {
	if path == config.MemoryDB {
		return store.NewMemoryStore(), func() {}
	}
	db, err := store.OpenSQLite(ctx, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("results database unavailable, keeping stats in memory")
		return store.NewMemoryStore(), func() {}
	}
	return db, func() { _ = db.Close() }
}
