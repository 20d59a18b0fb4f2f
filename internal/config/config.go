package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
// Values are read from environment variables with sensible defaults; a local
// .env file is loaded by the command layer before Config is built.
//
// Environment Variables:
//
// Workbook Configuration:
// - TERMGLOT_INPUT_FILE: source workbook path (default: english.xlsx)
// - TERMGLOT_OUTPUT_FILE: output workbook path (default: glossary.xlsx)
//
// Translation Configuration:
// - TERMGLOT_API_URL: translation endpoint (default: Google web endpoint)
// - TERMGLOT_TIMEOUT: request timeout in seconds (default: 30)
// - TERMGLOT_CHUNK_SIZE: values per batched request (default: 50)
// - TERMGLOT_MAX_WORKERS: concurrent language workers (default: 1)
// - TERMGLOT_REQUEST_DELAY: pause between batches (default: 1.5s)
// - TERMGLOT_LANGS: language selection, "all" or comma-separated ids (optional)
//
// Font Configuration:
// - TERMGLOT_FONTS_DIR: local font directory to scan (default: fonts)
// - TERMGLOT_SYSTEM_FONTS_DIR: system font directory, scanned non-recursively
//   (default: C:\Windows\Fonts on Windows, empty elsewhere)
//
// Schedule Configuration:
// - TERMGLOT_CRON_EXPR: cron expression for unattended re-runs (optional)
type Config struct {
	Workbook  WorkbookConfig  `json:"workbook"`
	Translate TranslateConfig `json:"translate"`
	Fonts     FontsConfig     `json:"fonts"`
	Schedule  ScheduleConfig  `json:"schedule"`
}

// WorkbookConfig holds input and output workbook paths.
type WorkbookConfig struct {
	InputFile  string `json:"input_file"`
	OutputFile string `json:"output_file"`
}

// TranslateConfig holds the configuration for the translation provider and
// the chunking/throttling policy.
type TranslateConfig struct {
	APIURL       string        `json:"api_url"`
	Timeout      int           `json:"timeout"`
	ChunkSize    int           `json:"chunk_size"`
	MaxWorkers   int           `json:"max_workers"`
	RequestDelay time.Duration `json:"request_delay"`
	Languages    string        `json:"languages"`
}

// FontsConfig holds the font directories consulted by the index scan.
type FontsConfig struct {
	Dir       string `json:"dir"`
	SystemDir string `json:"system_dir"`
}

// ScheduleConfig holds the optional cron schedule for unattended runs.
type ScheduleConfig struct {
	CronExpr string `json:"cron_expr"`
}

// Option is a function type for configuring Config.
type Option func(*Config)

// WithInputFile overrides the source workbook path.
func WithInputFile(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.Workbook.InputFile = path
		}
	}
}

// WithOutputFile overrides the output workbook path.
func WithOutputFile(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.Workbook.OutputFile = path
		}
	}
}

// WithFontsDir overrides the local font directory.
func WithFontsDir(dir string) Option {
	return func(c *Config) {
		if dir != "" {
			c.Fonts.Dir = dir
		}
	}
}

// WithLanguages overrides the language selection.
func WithLanguages(selection string) Option {
	return func(c *Config) {
		if selection != "" {
			c.Translate.Languages = selection
		}
	}
}

// WithCronExpr overrides the cron schedule.
func WithCronExpr(expr string) Option {
	return func(c *Config) {
		if expr != "" {
			c.Schedule.CronExpr = expr
		}
	}
}

// NewFromEnv creates a new Config instance with values from environment
// variables and options.
func NewFromEnv(opts ...Option) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("termglot")
	v.AutomaticEnv()

	v.SetDefault("input_file", "english.xlsx")
	v.SetDefault("output_file", "glossary.xlsx")
	v.SetDefault("api_url", "https://translate.googleapis.com/translate_a/single")
	v.SetDefault("timeout", 30)
	v.SetDefault("chunk_size", 50)
	v.SetDefault("max_workers", 1)
	v.SetDefault("request_delay", 1500*time.Millisecond)
	v.SetDefault("langs", "")
	v.SetDefault("fonts_dir", "fonts")
	v.SetDefault("system_fonts_dir", defaultSystemFontsDir())
	v.SetDefault("cron_expr", "")

	config := &Config{
		Workbook: WorkbookConfig{
			InputFile:  v.GetString("input_file"),
			OutputFile: v.GetString("output_file"),
		},
		Translate: TranslateConfig{
			APIURL:       v.GetString("api_url"),
			Timeout:      v.GetInt("timeout"),
			ChunkSize:    v.GetInt("chunk_size"),
			MaxWorkers:   v.GetInt("max_workers"),
			RequestDelay: v.GetDuration("request_delay"),
			Languages:    v.GetString("langs"),
		},
		Fonts: FontsConfig{
			Dir:       v.GetString("fonts_dir"),
			SystemDir: v.GetString("system_fonts_dir"),
		},
		Schedule: ScheduleConfig{
			CronExpr: v.GetString("cron_expr"),
		},
	}

	// Apply custom options
	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks if all required configuration is properly set.
func (c *Config) validate() error {
	if c.Workbook.InputFile == "" {
		return fmt.Errorf("TERMGLOT_INPUT_FILE is required")
	}
	if c.Workbook.OutputFile == "" {
		return fmt.Errorf("TERMGLOT_OUTPUT_FILE is required")
	}
	if c.Translate.ChunkSize < 1 {
		return fmt.Errorf("TERMGLOT_CHUNK_SIZE must be at least 1")
	}
	if c.Translate.MaxWorkers < 1 {
		return fmt.Errorf("TERMGLOT_MAX_WORKERS must be at least 1")
	}
	if c.Translate.RequestDelay < 0 {
		return fmt.Errorf("TERMGLOT_REQUEST_DELAY must not be negative")
	}
	return nil
}

// defaultSystemFontsDir returns the platform font folder worth scanning in
// addition to the local fonts directory. Only Windows keeps families like
// Mangal or Leelawadee in a flat, predictable place.
func defaultSystemFontsDir() string {
	if runtime.GOOS == "windows" {
		return `C:\Windows\Fonts`
	}
	return ""
}
