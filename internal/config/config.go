// Package config loads server and store settings from an ini file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Server holds HTTP server settings.
type Server struct {
	Listen    string
	LogLevel  string
	LogFormat string // json or console
}

// Store holds the object store connection settings.
type Store struct {
	Endpoint  string // e.g. "<account>.r2.cloudflarestorage.com"
	AccessKey string
	SecretKey string
	Region    string // "auto" for R2
	UseSSL    bool
}

// Config is the full application configuration.
type Config struct {
	Server Server
	Store  Store
	// Domains maps bucket names to public domains for public URL
	// construction, e.g. "assets" -> "cdn.example.com".
	Domains map[string]string
}

// Load reads configuration from path. If path is empty, the standard
// locations are tried in order: ./quay.conf, ~/.quay.conf, /etc/quay.conf.
// QUAY_ENDPOINT, QUAY_ACCESS_KEY, and QUAY_SECRET_KEY override the file.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: Server{
			Listen:    ":8080",
			LogLevel:  "info",
			LogFormat: "json",
		},
		Store: Store{
			Region: "auto",
			UseSSL: true,
		},
		Domains: make(map[string]string),
	}

	if path == "" {
		path = findConfig()
	}
	if path != "" {
		file, err := ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		server := file.Section("server")
		cfg.Server.Listen = server.Key("listen").MustString(cfg.Server.Listen)
		cfg.Server.LogLevel = server.Key("log_level").MustString(cfg.Server.LogLevel)
		cfg.Server.LogFormat = server.Key("log_format").MustString(cfg.Server.LogFormat)

		st := file.Section("store")
		cfg.Store.Endpoint = st.Key("endpoint").String()
		cfg.Store.AccessKey = st.Key("access_key").String()
		cfg.Store.SecretKey = st.Key("secret_key").String()
		cfg.Store.Region = st.Key("region").MustString(cfg.Store.Region)
		cfg.Store.UseSSL = st.Key("use_ssl").MustBool(cfg.Store.UseSSL)

		for _, key := range file.Section("domains").Keys() {
			cfg.Domains[key.Name()] = key.String()
		}
	}

	if v := os.Getenv("QUAY_ENDPOINT"); v != "" {
		cfg.Store.Endpoint = v
	}
	if v := os.Getenv("QUAY_ACCESS_KEY"); v != "" {
		cfg.Store.AccessKey = v
	}
	if v := os.Getenv("QUAY_SECRET_KEY"); v != "" {
		cfg.Store.SecretKey = v
	}

	if cfg.Store.Endpoint == "" {
		return nil, fmt.Errorf("store endpoint must be set (config file or QUAY_ENDPOINT)")
	}
	if cfg.Store.AccessKey == "" || cfg.Store.SecretKey == "" {
		return nil, fmt.Errorf("store credentials must be set (config file or QUAY_ACCESS_KEY/QUAY_SECRET_KEY)")
	}

	return cfg, nil
}

func findConfig() string {
	paths := []string{
		"quay.conf",
		filepath.Join(os.Getenv("HOME"), ".quay.conf"),
		"/etc/quay.conf",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
