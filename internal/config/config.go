package config

// Config is the full configuration of a run. It is loaded once at
// startup, validated, and passed read-only into every component.
type Config struct {
	Bench   BenchConfig   `yaml:"bench"`
	Fit     FitConfig     `yaml:"fit"`
	Ingest  IngestConfig  `yaml:"ingest"`
	Report  ReportConfig  `yaml:"report"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// BenchConfig controls the built-in benchmark runner.
type BenchConfig struct {
	// Sizes are the input sizes to measure, ascending.
	Sizes []int `yaml:"sizes"`
	// Repetitions is how many times each (method, size) cell is timed.
	Repetitions int `yaml:"repetitions"`
	// Methods restricts the run to the named transformation methods.
	// Empty means every registered method.
	Methods []string `yaml:"methods"`
	// WarmupRuns are untimed executions before measurement starts.
	WarmupRuns int `yaml:"warmup_runs"`
	// Seed fixes the input generator so runs are reproducible.
	Seed int64 `yaml:"seed"`
}

// FitConfig bounds the least-squares search.
type FitConfig struct {
	// MaxEvaluations caps model-function evaluations per fit attempt.
	MaxEvaluations int `yaml:"max_evaluations"`
	// Tolerance is the relative residual change treated as converged.
	Tolerance float64 `yaml:"tolerance"`
	// ResamplePoints is the sample count of each fitted curve exported
	// for plotting.
	ResamplePoints int `yaml:"resample_points"`
}

// IngestConfig locates and decodes benchmark CSV files.
type IngestConfig struct {
	// Dir is searched when no explicit input file is given.
	Dir string `yaml:"dir"`
	// Pattern is the glob matched against file names in Dir; the most
	// recently modified match wins.
	Pattern string `yaml:"pattern"`
	// Columns maps the CSV header names onto the observation fields.
	Columns ColumnsConfig `yaml:"columns"`
	// TimeUnit is the unit of the time column: ns, us, ms or s.
	// Values are converted to milliseconds before analysis.
	TimeUnit string `yaml:"time_unit"`
}

// ColumnsConfig names the CSV columns carrying each observation field.
type ColumnsConfig struct {
	Method string `yaml:"method"`
	Size   string `yaml:"size"`
	Time   string `yaml:"time"`
	Run    string `yaml:"run"`
}

// ReportConfig controls where and how results are written.
type ReportConfig struct {
	// OutputDir receives the text report and the CSV exports.
	OutputDir string `yaml:"output_dir"`
	// Color enables lipgloss styling in the terminal report.
	Color bool `yaml:"color"`
}

// ServerConfig configures the optional HTTP API.
type ServerConfig struct {
	Host         string          `yaml:"host"`
	Port         int             `yaml:"port"`
	MaxBodyBytes int64           `yaml:"max_body_bytes"`
	// DataDir holds the archive of analysis results.
	DataDir   string          `yaml:"data_dir"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig configures token-bucket request limiting.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
