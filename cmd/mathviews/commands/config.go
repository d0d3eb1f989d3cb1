package commands

import (
	"errors"
	"mathviews/internal/components/configutil"
	"mathviews/internal/fetch"
	"mathviews/internal/popularity"
	"os"
	"time"

	"dario.cat/mergo"
)

const defaultConfigPath = "mathviews.json5"

// the user agent browsers send, some wikimedia hosted tools refuse
// requests from unknown clients
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type HttpConfig struct {
	TimeoutSeconds   int    `json:"timeout_seconds"`
	UserAgent        string `json:"user_agent"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
}

type ReportConfig struct {
	Top   int  `json:"top"`
	Table bool `json:"table"`
}

type Config struct {
	Http    HttpConfig   `json:"http"`
	Report  ReportConfig `json:"report"`
	Verbose bool         `json:"verbose"`
}

func defaultConfig() Config {
	return Config{
		Http: HttpConfig{
			TimeoutSeconds: 30,
			UserAgent:      defaultUserAgent,
		},
		Report: ReportConfig{
			Top: popularity.DefaultTop,
		},
	}
}

// readConfig reads the config at `path`, a missing file is the same as an
// empty one.
func readConfig(path string) (Config, error) {
	cfg := defaultConfig()
	file, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	err = mergo.Merge(&cfg, file, mergo.WithOverride)
	return cfg, err
}

func (c Config) FetchOptions() fetch.Options {
	return fetch.Options{
		Timeout:          time.Duration(c.Http.TimeoutSeconds) * time.Second,
		UserAgent:        c.Http.UserAgent,
		CloudflareBypass: c.Http.CloudflareBypass,
	}
}

func (c Config) ReportOptions() popularity.ReportOptions {
	return popularity.ReportOptions{
		Top:   c.Report.Top,
		Table: c.Report.Table,
	}
}
