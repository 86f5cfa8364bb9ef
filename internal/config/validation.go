package config

import (
	"errors"
	"fmt"
)

var validTimeUnits = map[string]bool{"ns": true, "us": true, "ms": true, "s": true}

func (c *Config) Validate() error {
	var errs []error

	if err := c.Bench.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("bench: %w", err))
	}

	if err := c.Fit.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("fit: %w", err))
	}

	if err := c.Ingest.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ingest: %w", err))
	}

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("server: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

func (b *BenchConfig) Validate() error {
	var errs []error

	if len(b.Sizes) == 0 {
		errs = append(errs, fmt.Errorf("sizes must not be empty"))
	}
	prev := 0
	for _, s := range b.Sizes {
		if s < 1 {
			errs = append(errs, fmt.Errorf("sizes must be positive, got %d", s))
			break
		}
		if s <= prev {
			errs = append(errs, fmt.Errorf("sizes must be strictly ascending"))
			break
		}
		prev = s
	}

	if b.Repetitions < 1 {
		errs = append(errs, fmt.Errorf("repetitions must be at least 1, got %d", b.Repetitions))
	}

	if b.WarmupRuns < 0 {
		errs = append(errs, fmt.Errorf("warmup_runs must be non-negative, got %d", b.WarmupRuns))
	}

	return errors.Join(errs...)
}

func (f *FitConfig) Validate() error {
	var errs []error

	if f.MaxEvaluations < 1 {
		errs = append(errs, fmt.Errorf("max_evaluations must be at least 1, got %d", f.MaxEvaluations))
	}

	if f.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("tolerance must be positive, got %g", f.Tolerance))
	}

	if f.ResamplePoints < 2 {
		errs = append(errs, fmt.Errorf("resample_points must be at least 2, got %d", f.ResamplePoints))
	}

	return errors.Join(errs...)
}

func (i *IngestConfig) Validate() error {
	var errs []error

	if i.Pattern == "" {
		errs = append(errs, fmt.Errorf("pattern must not be empty"))
	}

	if !validTimeUnits[i.TimeUnit] {
		errs = append(errs, fmt.Errorf("time_unit must be one of ns, us, ms, s; got %q", i.TimeUnit))
	}

	if i.Columns.Method == "" || i.Columns.Size == "" || i.Columns.Time == "" {
		errs = append(errs, fmt.Errorf("columns.method, columns.size and columns.time are required"))
	}

	return errors.Join(errs...)
}

func (s *ServerConfig) Validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", s.Port))
	}

	if s.MaxBodyBytes < 0 {
		errs = append(errs, fmt.Errorf("max_body_bytes must be non-negative, got %d", s.MaxBodyBytes))
	}

	if s.RateLimit.Enabled {
		if s.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.requests_per_second must be positive"))
		}
		if s.RateLimit.Burst < 1 {
			errs = append(errs, fmt.Errorf("rate_limit.burst must be at least 1"))
		}
	}

	return errors.Join(errs...)
}

func (l *LoggingConfig) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error; got %q", l.Level)
	}

	switch l.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json, got %q", l.Format)
	}

	return nil
}
