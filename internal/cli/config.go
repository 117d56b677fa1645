package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	apierr "github.com/matzehuels/graphml/pkg/errors"
)

const configFileName = "config.toml"

// fileConfig is the content of the config file:
//
//	pretty = true
//	node_weights = "display"
//	edge_weights = "none"
//
//	[server]
//	addr = ":8080"
//	redis_url = "redis://localhost:6379/0"
//	cache_ttl = "24h"
type fileConfig struct {
	Pretty      bool         `toml:"pretty"`
	NodeWeights string       `toml:"node_weights"`
	EdgeWeights string       `toml:"edge_weights"`
	Server      serverConfig `toml:"server"`
}

type serverConfig struct {
	Addr     string   `toml:"addr"`
	RedisURL string   `toml:"redis_url"`
	CacheTTL duration `toml:"cache_ttl"`
}

// duration decodes TOML strings such as "90s" or "24h".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// loadConfig reads the config file at path. An empty path means the default
// location, where a missing file is not an error.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFileName)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if !explicit {
				return fileConfig{}, nil
			}
			return cfg, apierr.Wrap(apierr.ErrCodeFileNotFound, err, "load config %s", path)
		}
		return cfg, apierr.Wrap(apierr.ErrCodeInvalidInput, err, "load config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, apierr.New(apierr.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := apierr.ValidateExporterName(cfg.NodeWeights); err != nil {
		return cfg, apierr.Wrap(apierr.ErrCodeInvalidExporter, err, "config %s: node_weights", path)
	}
	if err := apierr.ValidateExporterName(cfg.EdgeWeights); err != nil {
		return cfg, apierr.Wrap(apierr.ErrCodeInvalidExporter, err, "config %s: edge_weights", path)
	}
	if cfg.Server.RedisURL != "" {
		if err := apierr.ValidateRedisURL(cfg.Server.RedisURL); err != nil {
			return cfg, apierr.Wrap(apierr.ErrCodeInvalidInput, err, "config %s: server.redis_url", path)
		}
	}
	return cfg, nil
}
