package model

import "time"

// Config is the full runtime configuration, loadable from
// ~/.icewatch/config.yaml, ICEWATCH_* environment variables, or flags.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Store       StoreConfig       `yaml:"store" mapstructure:"store"`
	Sources     SourcesConfig     `yaml:"sources" mapstructure:"sources"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Classifier  ClassifierConfig  `yaml:"classifier" mapstructure:"classifier"`
	Verbose     bool              `yaml:"verbose" mapstructure:"verbose"`
}

// HTTPConfig configures the shared outbound HTTP client.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// CacheConfig configures the layered fetch cache. Only the archive adapter
// reads through it; archived snapshots never change, so the TTLs are long.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// StoreConfig locates the incident database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ConcurrencyConfig bounds per-run parallelism.
type ConcurrencyConfig struct {
	// FetchWorkers bounds parallel page fetches inside the archive adapter.
	FetchWorkers int `yaml:"fetch_workers" mapstructure:"fetch_workers"`
	// AdapterTimeout caps each adapter's whole Fetch call.
	AdapterTimeout time.Duration `yaml:"adapter_timeout" mapstructure:"adapter_timeout"`
}

// ClassifierConfig selects the classifier implementation. The default rule
// classifier needs no configuration; "openai" delegates incident type and
// affected count to a model, with rule fallback on any error.
type ClassifierConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider"` // "", "rules", "openai"
	Model    string `yaml:"model" mapstructure:"model"`
	APIKey   string `yaml:"-" mapstructure:"-"`
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"`
	Timeout  int    `yaml:"timeout" mapstructure:"timeout"` // seconds
}

// SourcesConfig holds per-adapter settings.
type SourcesConfig struct {
	NewsAPI    NewsAPIConfig    `yaml:"newsapi" mapstructure:"newsapi"`
	GoogleNews GoogleNewsConfig `yaml:"googlenews" mapstructure:"googlenews"`
	Wayback    WaybackConfig    `yaml:"wayback" mapstructure:"wayback"`
}

// NewsAPIConfig configures the keyword-search adapter. The adapter is
// skipped (with a per-source error) when APIKey is empty.
type NewsAPIConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	APIKey  string `yaml:"-" mapstructure:"-"`
	// Queries run against the national outlet whitelist; LocalQueries run
	// against all English-language sources to catch local affiliates.
	Queries      []string `yaml:"queries" mapstructure:"queries"`
	LocalQueries []string `yaml:"local_queries" mapstructure:"local_queries"`
	Outlets      []string `yaml:"outlets" mapstructure:"outlets"`
	From         string   `yaml:"from" mapstructure:"from"` // YYYY-MM-DD
	PageSize     int      `yaml:"page_size" mapstructure:"page_size"`
}

// GoogleNewsConfig configures the RSS feed adapter.
type GoogleNewsConfig struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
	BaseURL    string        `yaml:"base_url" mapstructure:"base_url"`
	Queries    []string      `yaml:"queries" mapstructure:"queries"`
	QueryDelay time.Duration `yaml:"query_delay" mapstructure:"query_delay"`
}

// WaybackConfig configures the web-archive adapter.
type WaybackConfig struct {
	Enabled       bool          `yaml:"enabled" mapstructure:"enabled"`
	CDXBaseURL    string        `yaml:"cdx_base_url" mapstructure:"cdx_base_url"`
	WebBaseURL    string        `yaml:"web_base_url" mapstructure:"web_base_url"`
	Sites         []string      `yaml:"sites" mapstructure:"sites"`
	Patterns      []string      `yaml:"patterns" mapstructure:"patterns"`
	From          string        `yaml:"from" mapstructure:"from"` // YYYYMMDD
	To            string        `yaml:"to" mapstructure:"to"`     // YYYYMMDD, empty = today
	PerSiteLimit  int           `yaml:"per_site_limit" mapstructure:"per_site_limit"`
	FetchDelay    time.Duration `yaml:"fetch_delay" mapstructure:"fetch_delay"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// DefaultConfig returns the built-in defaults. Query and site lists mirror
// the feeds the project has tracked from the start; they are data, not
// behavior, and fully overridable from the config file.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "icewatch/1.0 (+https://github.com/icewatch/icewatch)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.icewatch/cache by the CLI
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   30 * 24 * time.Hour,
		},
		Store: StoreConfig{
			Path: "icewatch.db",
		},
		Concurrency: ConcurrencyConfig{
			FetchWorkers:   4,
			AdapterTimeout: 5 * time.Minute,
		},
		Classifier: ClassifierConfig{
			Provider: "rules",
			Model:    "gpt-4o-mini",
			Timeout:  30,
		},
		Sources: SourcesConfig{
			NewsAPI: NewsAPIConfig{
				Enabled: true,
				BaseURL: "https://newsapi.org/v2",
				Queries: []string{
					"ICE raid",
					"ICE arrests",
					"ICE detention",
					"ICE operation",
					"ICE enforcement",
					"immigration enforcement",
					"immigration raid",
					"deportation raid",
				},
				LocalQueries: []string{
					"ICE raid",
					"ICE arrests immigration",
					"immigration enforcement arrest",
					"deportation raid local",
					"ICE detention center",
				},
				Outlets: []string{
					"cnn", "fox-news", "abc-news", "cbs-news", "nbc-news",
					"associated-press", "reuters", "the-washington-post",
					"usa-today", "the-wall-street-journal", "msnbc",
					"the-new-york-times", "politico", "the-hill",
					"newsweek", "time", "npr",
				},
				From:     "2025-09-01",
				PageSize: 100,
			},
			GoogleNews: GoogleNewsConfig{
				Enabled: true,
				BaseURL: "https://news.google.com/rss/search",
				Queries: []string{
					"ICE raid",
					"ICE arrests",
					"ICE detention",
					"immigration raid",
					"immigration enforcement arrest",
					"deportation raid",
					"ICE operation",
					"border patrol arrest",
					"CBP arrest",
					"immigration crackdown",
					"ICE agents arrest",
					"workplace immigration raid",
					"undocumented workers arrested",
					"immigration sweep",
				},
				QueryDelay: 200 * time.Millisecond,
			},
			Wayback: WaybackConfig{
				Enabled:    true,
				CDXBaseURL: "https://web.archive.org/cdx/search/cdx",
				WebBaseURL: "https://web.archive.org/web",
				Sites: []string{
					"cnn.com", "foxnews.com", "nbcnews.com", "abcnews.go.com",
					"cbsnews.com", "reuters.com", "apnews.com",
					"washingtonpost.com", "nytimes.com", "usatoday.com",
				},
				Patterns: []string{
					"%s/*ice*",
					"%s/*immigration*arrest*",
					"%s/*immigration*raid*",
					"%s/*deportation*",
					"%s/*/ice-*",
					"%s/news/*ice*",
					"%s/us/*ice*",
					"%s/politics/*immigration*",
				},
				From:          "20250120",
				PerSiteLimit:  15,
				FetchDelay:    100 * time.Millisecond,
				RespectRobots: true,
			},
		},
	}
}
