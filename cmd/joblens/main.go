package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"joblens/internal/app"
	"joblens/internal/bootstrap"
	"joblens/internal/config"
	"joblens/internal/jobs"
	"joblens/internal/storage"
	"joblens/internal/ui"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 joblens Usage Examples 📋")

	fmt.Println("\n1. Browse the job listings interactively:")
	fmt.Println("   joblens")

	fmt.Println("\n2. One-shot search for \"frontend\" jobs, without the banner:")
	fmt.Println("   joblens -search \"frontend\" -silence")

	fmt.Println("\n3. Filter by tags (must all match) on top of a search:")
	fmt.Println("   joblens -search \"remote\" -tags \"Senior,JavaScript\"")

	fmt.Println("\n4. Show the favorites list:")
	fmt.Println("   joblens -favorites")

	fmt.Println("\n5. Load the bootstrap feed from a URL instead of the local file:")
	fmt.Println("   joblens -data https://example.com/jobs/data.json")

	fmt.Println("\n6. Persist state in Redis instead of the data dir:")
	fmt.Println("   joblens -store redis -redis redis://localhost:6379/0")

	os.Exit(0)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Command line flags
	configPath := flag.String("config", "", "Path to config file (default: joblens.yaml, ~/.joblens/config.yaml)")
	dataSource := flag.String("data", "", "Bootstrap data source: URL or local JSON file")
	proxyURL := flag.String("proxy", "", "Proxy URL for the bootstrap fetch")
	storeBackend := flag.String("store", "", "Persistence backend (file, redis)")
	dataDir := flag.String("data-dir", "", "Data directory for the file backend")
	redisURL := flag.String("redis", "", "Redis URL for the redis backend")
	search := flag.String("search", "", "One-shot: print jobs matching this search text")
	tags := flag.String("tags", "", "One-shot: comma-separated manual filter tags")
	favorites := flag.Bool("favorites", false, "One-shot: print the favorites list")
	manage := flag.Bool("manage", false, "One-shot: print the management list")
	debug := flag.Bool("debug", false, "Enable debug logging")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	// Display banner (skip if either -silence or -nobanner is set)
	ui.PrintBanner(*silence || *noBanner)

	if *examples {
		printExamples()
		return
	}

	setupLogging(*debug)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	applyFlags(cfg, *dataSource, *proxyURL, *storeBackend, *dataDir, *redisURL)
	if !config.ValidBackend(cfg.Store.Backend) {
		log.Fatal("Invalid store backend. Must be one of: file, redis")
	}
	if cfg.Store.Backend == "redis" && cfg.Store.RedisURL == "" {
		log.Fatal("Redis backend requires -redis or JOBLENS_REDIS_URL")
	}

	oneShot := *search != "" || *tags != "" || *favorites || *manage

	ctx := context.Background()
	store, lastSaved, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}

	source := bootstrap.NewClient(cfg.Data.Source, cfg.Data.Proxy, cfg.Display.Progress && !oneShot)
	session, err := app.NewSession(store, source)
	if err != nil {
		log.Fatalf("Error initializing session: %v", err)
	}

	if err := session.Start(ctx); err != nil {
		if errors.Is(err, jobs.ErrDataUnavailable) {
			ui.RenderDataUnavailable()
		} else {
			log.Fatalf("Error loading jobs: %v", err)
		}
	}

	if oneShot {
		runOneShot(session, *search, *tags, *favorites, *manage, lastSaved)
		return
	}

	ui.NewBrowser(session, os.Stdin, lastSaved).Run()
}

// runOneShot applies the flag-driven filters and prints once.
func runOneShot(session *app.Session, search, tags string, favorites, manage bool, lastSaved func() time.Time) {
	if favorites {
		ui.RenderFavorites(session.FavoriteJobs(), session.FavoriteCount(), session.IsFavorite)
		return
	}
	if manage {
		var saved time.Time
		if lastSaved != nil {
			saved = lastSaved()
		}
		ui.RenderManageList(session.Jobs(), saved)
		return
	}

	if search != "" {
		session.SetSearch(search)
	}
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			session.AddTag(tag)
		}
	}

	result := session.Current()
	ui.RenderFilterBar(session.SearchText(), session.ManualTags())
	ui.RenderJobs(result, session.IsFavorite)
	ui.RenderStats(result.MatchCount, result.TotalCount)
}

// openStore builds the configured persistence backend. The second
// return value reports the collection's last-saved time when the
// backend can tell, nil otherwise.
func openStore(ctx context.Context, cfg *config.AppConfig) (storage.Store, func() time.Time, error) {
	switch cfg.Store.Backend {
	case "redis":
		store, err := storage.NewRedisStore(ctx, cfg.Store.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	default:
		store, err := storage.NewFileStore(cfg.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() time.Time { return store.LastSaved(storage.KeyJobs) }, nil
	}
}

func applyFlags(cfg *config.AppConfig, dataSource, proxyURL, storeBackend, dataDir, redisURL string) {
	if dataSource != "" {
		cfg.Data.Source = dataSource
	}
	if proxyURL != "" {
		cfg.Data.Proxy = proxyURL
	}
	if storeBackend != "" {
		cfg.Store.Backend = storeBackend
	}
	if dataDir != "" {
		cfg.Store.Dir = dataDir
	}
	if redisURL != "" {
		cfg.Store.RedisURL = redisURL
	}
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
