package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/viant/vecstore"
	"github.com/viant/vecstore/config"
	"github.com/viant/vecstore/internal/logging"
)

var sampleDocuments = []string{"I like apples", "I like pears", "I like dogs", "I like cats"}

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "config yaml (optional)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config and "+config.EnvDB+")")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if *dbPath != "" {
		cfg.Store.Path = *dbPath
	}
	if err := logging.Init(cfg.Log); err != nil {
		log.Fatalf("failed to init log: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		logging.Logger("main").Error("vecstore failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store, err := vecstore.OpenConfig(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	for _, text := range sampleDocuments {
		if err := store.Upsert(ctx, text); err != nil {
			return err
		}
	}
	for _, q := range []struct {
		query string
		n     int
	}{{"I like apples", 1}, {"animal", 2}} {
		matches, err := store.TopN(ctx, q.query, q.n)
		if err != nil {
			return err
		}
		fmt.Println(format(matches))
	}
	return nil
}

func format(matches []vecstore.Match) string {
	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = fmt.Sprintf("%s=%v", m.Text, m.Score)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
