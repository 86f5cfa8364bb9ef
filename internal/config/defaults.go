package config

// Default returns the configuration used when no file is given.
// The size ladder mirrors a ten-step ramp to the full dataset size.
func Default() *Config {
	return &Config{
		Bench: BenchConfig{
			Sizes:       []int{1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000},
			Repetitions: 3,
			WarmupRuns:  1,
			Seed:        1,
		},
		Fit: FitConfig{
			MaxEvaluations: 10000,
			Tolerance:      1e-10,
			ResamplePoints: 100,
		},
		Ingest: IngestConfig{
			Dir:     "output",
			Pattern: "complexity_benchmark_*.csv",
			Columns: ColumnsConfig{
				Method: "method",
				Size:   "num_instances",
				Time:   "time_ms",
				Run:    "run",
			},
			TimeUnit: "ms",
		},
		Report: ReportConfig{
			OutputDir: "output/complexity",
			Color:     true,
		},
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         8090,
			MaxBodyBytes: 4 << 20,
			DataDir:      "data",
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerSecond: 50,
				Burst:             100,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
