package cli

import (
	"testing"
)

func TestGetServerURL(t *testing.T) {
	origHost, origPort := host, port
	defer func() { host, port = origHost, origPort }()

	host = "example.com"
	port = 9000

	if got := GetServerURL(); got != "http://example.com:9000" {
		t.Errorf("unexpected server URL %s", got)
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")

	if Version != "1.2.3" {
		t.Errorf("expected 1.2.3, got %s", Version)
	}

	if rootCmd.Version != "1.2.3" {
		t.Errorf("expected root command version 1.2.3, got %s", rootCmd.Version)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"bench":   false,
		"analyze": false,
		"models":  false,
		"report":  false,
		"serve":   false,
		"tui":     false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("command %s is not registered", name)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	origCfg, origVerbose := cfgFile, verbose
	defer func() { cfgFile, verbose = origCfg, origVerbose }()

	cfgFile = ""
	verbose = true

	cfg := loadConfig()

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected verbose to force debug logging, got %s", cfg.Logging.Level)
	}

	if len(cfg.Bench.Sizes) == 0 {
		t.Error("expected default sizes")
	}
}
