package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/icewatch/icewatch/internal/cache"
	"github.com/icewatch/icewatch/internal/classify"
	"github.com/icewatch/icewatch/internal/geo"
	"github.com/icewatch/icewatch/internal/llm"
	"github.com/icewatch/icewatch/internal/model"
	"github.com/icewatch/icewatch/internal/normalize"
	"github.com/icewatch/icewatch/internal/pipeline"
	"github.com/icewatch/icewatch/internal/source"
	"github.com/icewatch/icewatch/internal/store"
	"github.com/icewatch/icewatch/internal/util"
)

var (
	dbPath      string
	runTimeout  time.Duration
	onlySources []string
	dryRun      bool
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run one ingestion pass over all configured sources",
	Long: `Ingest fetches candidate articles from every enabled source, keeps
those that describe an ICE enforcement action, extracts date, type,
location, and affected count, deduplicates against the database, and
inserts what is new.

A failing source does not abort the run; its error is reported in the
result. The run fails only when storage fails.

Example:
  icewatch ingest
  icewatch ingest --db ./icewatch.db --timeout 10m
  icewatch ingest --source googlenews --dry-run`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default: store.path from config)")
	ingestCmd.Flags().DurationVar(&runTimeout, "timeout", 15*time.Minute, "overall run timeout")
	ingestCmd.Flags().StringSliceVar(&onlySources, "source", nil, "restrict to named sources (newsapi, googlenews, wayback); repeatable")
	ingestCmd.Flags().BoolVar(&dryRun, "dry-run", false, "classify and deduplicate but do not write to the database")
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.Store.Path = dbPath
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	classifier, err := buildClassifier(ctx, cfg)
	if err != nil {
		return err
	}

	adapters, err := buildAdapters(cfg)
	if err != nil {
		return err
	}
	if len(adapters) == 0 {
		return fmt.Errorf("no sources enabled")
	}

	p := pipeline.New(adapters, normalize.New(classifier), st, pipeline.Options{
		AdapterTimeout: cfg.Concurrency.AdapterTimeout,
		DryRun:         dryRun,
		Verbose:        cfg.Verbose,
	})

	result := p.Run(ctx)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))

	if result.Failed() {
		return fmt.Errorf("run failed: %s", result.Err)
	}
	return nil
}

// loadConfig layers the config file and ICEWATCH_* environment over the
// built-in defaults. API keys come from the environment only.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Verbose = cfg.Verbose || verbose

	if key := os.Getenv("NEWSAPI_KEY"); key != "" {
		cfg.Sources.NewsAPI.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Classifier.APIKey = key
	}

	if cfg.Cache.Dir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.Cache.Dir = filepath.Join(home, ".icewatch", "cache")
		} else {
			cfg.Cache.Enabled = false
		}
	}
	return cfg, nil
}

// openStore opens the SQLite database. A dry run against a database that
// does not exist yet keeps everything in memory instead of creating a
// file nobody asked for.
func openStore(ctx context.Context, cfg *model.Config) (store.Store, error) {
	if dryRun {
		if _, err := os.Stat(cfg.Store.Path); os.IsNotExist(err) {
			return store.NewMemory(), nil
		}
	}
	return store.OpenSQLite(ctx, cfg.Store.Path)
}

func buildClassifier(ctx context.Context, cfg *model.Config) (classify.Classifier, error) {
	rules := classify.NewRules(geo.Static())

	provider, err := llm.NewProvider(llm.Config{
		Provider: cfg.Classifier.Provider,
		Model:    cfg.Classifier.Model,
		APIKey:   cfg.Classifier.APIKey,
		BaseURL:  cfg.Classifier.BaseURL,
		Timeout:  time.Duration(cfg.Classifier.Timeout) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return rules, nil
	}
	return llm.NewClassifier(ctx, rules, provider, cfg.Verbose), nil
}

func buildAdapters(cfg *model.Config) ([]source.Adapter, error) {
	var fetchCache cache.Cache
	if cfg.Cache.Enabled {
		fetchCache = cache.NewLayered(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	fetcher := source.NewFetcher(cfg.HTTP, fetchCache)

	var robots *util.RobotsChecker
	if cfg.Sources.Wayback.RespectRobots {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	all := []source.Adapter{}
	if cfg.Sources.NewsAPI.Enabled {
		all = append(all, source.NewNewsAPI(cfg.Sources.NewsAPI, fetcher))
	}
	if cfg.Sources.GoogleNews.Enabled {
		all = append(all, source.NewGoogleNews(cfg.Sources.GoogleNews, fetcher))
	}
	if cfg.Sources.Wayback.Enabled {
		all = append(all, source.NewWayback(cfg.Sources.Wayback, fetcher, robots, cfg.Concurrency.FetchWorkers))
	}

	if len(onlySources) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(onlySources))
	for _, name := range onlySources {
		want[name] = true
	}
	var picked []source.Adapter
	for _, a := range all {
		if want[a.Name()] {
			picked = append(picked, a)
			delete(want, a.Name())
		}
	}
	for name := range want {
		return nil, fmt.Errorf("unknown or disabled source: %s", name)
	}
	return picked, nil
}
