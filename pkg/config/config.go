package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:topicscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		Cron string `yaml:"cron" json:"cron" jsonschema:"description=Cron expression for periodic research runs in server mode (empty disables)"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	YouTube YouTubeConfig `yaml:"youtube" json:"youtube" jsonschema:"description=YouTube Data API configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for topic evaluation"`

	Research ResearchConfig `yaml:"research" json:"research" jsonschema:"description=Research pipeline settings"`
}

// YouTubeConfig holds video data provider settings
type YouTubeConfig struct {
	APIKey            string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=YouTube Data API key (can use environment variable)"`
	Endpoint          string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=Override of the YouTube Data API base URL"`
	FeedURL           string        `yaml:"feed_url" json:"feed_url" jsonschema:"default=https://www.youtube.com/feeds/videos.xml,description=Base URL of channel RSS feeds"`
	ChannelID         string        `yaml:"channel_id" json:"channel_id" jsonschema:"description=Your channel ID, used to build the channel context"`
	RegionCode        string        `yaml:"region_code" json:"region_code" jsonschema:"default=US,description=Region code for trending videos"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second" jsonschema:"default=5,description=Maximum API requests per second"`
	Burst             int           `yaml:"burst" json:"burst" jsonschema:"default=1,description=Rate limiter burst size"`
	RetryAttempts     int           `yaml:"retry_attempts" json:"retry_attempts" jsonschema:"default=5,description=Attempts for quota and server errors"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP timeout per API request"`
}

// LLMConfig holds LLM configuration for topic evaluation
type LLMConfig struct {
	Endpoint        string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.openai.com/v1,description=OpenAI-compatible API endpoint"`
	APIKey          string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model           string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature     float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for topic evaluation"`
	IdeaTemperature float64       `yaml:"idea_temperature" json:"idea_temperature" jsonschema:"default=0.8,description=Temperature for topic idea generation"`
	MaxTokens       int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Maximum tokens in response"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	SystemPrompt    string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	UseJSONMode     bool          `yaml:"use_json_mode" json:"use_json_mode" jsonschema:"default=false,description=Request JSON evaluations (not all models support this)"`
}

// ResearchConfig holds research pipeline settings
type ResearchConfig struct {
	MaxTopicsPerRun  int      `yaml:"max_topics_per_run" json:"max_topics_per_run" jsonschema:"default=50,minimum=1,description=Maximum candidates evaluated per run"`
	MinTotalScore    float64  `yaml:"min_total_score" json:"min_total_score" jsonschema:"default=60,minimum=0,maximum=100,description=Minimum total score of reported topics"`
	AIIdeas          int      `yaml:"ai_ideas" json:"ai_ideas" jsonschema:"default=20,description=Number of AI generated topic ideas per run"`
	SearchResults    int      `yaml:"search_results" json:"search_results" jsonschema:"default=10,description=Search results per query"`
	TrendingMax      int      `yaml:"trending_max" json:"trending_max" jsonschema:"default=20,description=Trending videos fetched per run"`
	ChannelVideos    int      `yaml:"channel_videos" json:"channel_videos" jsonschema:"default=20,description=Own uploads analyzed for the channel context"`
	LookbackDays     int      `yaml:"lookback_days" json:"lookback_days" jsonschema:"default=90,description=Lookback period for channel and competitor uploads"`
	SkipRecentDays   int      `yaml:"skip_recent_days" json:"skip_recent_days" jsonschema:"default=0,description=Skip topics already researched within this many days (0 disables)"`
	Competitors      []string `yaml:"competitors" json:"competitors" jsonschema:"description=Competitor channel IDs"`
	CompetitorTitles int      `yaml:"competitor_titles" json:"competitor_titles" jsonschema:"default=5,description=Recent titles per competitor used as evaluation context"`
	TrendRegions     []string `yaml:"trend_regions" json:"trend_regions" jsonschema:"description=Region codes tracked by trend snapshots (default US GB CA AU)"`
	TrendPerRegion   int      `yaml:"trend_per_region" json:"trend_per_region" jsonschema:"default=20,description=Trending videos fetched per region for trend snapshots"`
}

// LoadEnv loads variables from .env files if present, existing environment wins
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env.local", ".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			lgr.Printf("[WARN] failed to load env file %s: %v", f, err)
			continue
		}
		lgr.Printf("[DEBUG] loaded env file %s", f)
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:topicscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// youtube
	if cfg.YouTube.FeedURL == "" {
		cfg.YouTube.FeedURL = "https://www.youtube.com/feeds/videos.xml"
	}
	if cfg.YouTube.RegionCode == "" {
		cfg.YouTube.RegionCode = "US"
	}
	if cfg.YouTube.RequestsPerSecond == 0 {
		cfg.YouTube.RequestsPerSecond = 5
	}
	if cfg.YouTube.Burst == 0 {
		cfg.YouTube.Burst = 1
	}
	if cfg.YouTube.RetryAttempts == 0 {
		cfg.YouTube.RetryAttempts = 5
	}
	if cfg.YouTube.Timeout == 0 {
		cfg.YouTube.Timeout = 30 * time.Second
	}

	// llm
	if cfg.LLM.Endpoint == "" {
		cfg.LLM.Endpoint = "https://api.openai.com/v1"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}
	if cfg.LLM.IdeaTemperature == 0 {
		cfg.LLM.IdeaTemperature = 0.8
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 2000
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}

	// research
	if cfg.Research.MaxTopicsPerRun == 0 {
		cfg.Research.MaxTopicsPerRun = 50
	}
	if cfg.Research.MinTotalScore == 0 {
		cfg.Research.MinTotalScore = 60
	}
	if cfg.Research.AIIdeas == 0 {
		cfg.Research.AIIdeas = 20
	}
	if cfg.Research.SearchResults == 0 {
		cfg.Research.SearchResults = 10
	}
	if cfg.Research.TrendingMax == 0 {
		cfg.Research.TrendingMax = 20
	}
	if cfg.Research.ChannelVideos == 0 {
		cfg.Research.ChannelVideos = 20
	}
	if cfg.Research.LookbackDays == 0 {
		cfg.Research.LookbackDays = 90
	}
	if cfg.Research.CompetitorTitles == 0 {
		cfg.Research.CompetitorTitles = 5
	}
	if len(cfg.Research.TrendRegions) == 0 {
		cfg.Research.TrendRegions = []string{"US", "GB", "CA", "AU"}
	}
	if cfg.Research.TrendPerRegion == 0 {
		cfg.Research.TrendPerRegion = 20
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate youtube config
	if cfg.YouTube.APIKey == "" {
		return fmt.Errorf("youtube.api_key is required")
	}
	if cfg.YouTube.RequestsPerSecond < 0 {
		return fmt.Errorf("youtube.requests_per_second must be positive")
	}

	// validate LLM config
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.IdeaTemperature < 0 || cfg.LLM.IdeaTemperature > 2 {
		return fmt.Errorf("llm.idea_temperature must be between 0 and 2")
	}

	// validate research config
	if cfg.Research.MinTotalScore < 0 || cfg.Research.MinTotalScore > 100 {
		return fmt.Errorf("research.min_total_score must be between 0 and 100")
	}
	if cfg.Research.MaxTopicsPerRun < 1 {
		return fmt.Errorf("research.max_topics_per_run must be at least 1")
	}
	if cfg.Research.SearchResults > 50 {
		return fmt.Errorf("research.search_results must not exceed 50")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetResearchConfig returns research pipeline configuration
func (c *Config) GetResearchConfig() ResearchConfig {
	return c.Research
}
