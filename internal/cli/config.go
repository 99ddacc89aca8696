package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/seedpacket/pkg/assets"
	"github.com/matzehuels/seedpacket/pkg/cache"
	"github.com/matzehuels/seedpacket/pkg/server"
)

// configFileName is the name of the config file inside the config directory.
const configFileName = "config.toml"

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the on-disk configuration.
//
// Example:
//
//	image_dir = "~/Pictures/seeds"
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	ttl = "72h"
//
//	[server]
//	addr = ":9000"
type Config struct {
	ImageDir          string       `toml:"image_dir"`
	MaxImageDimension int          `toml:"max_image_dimension"`
	Cache             CacheConfig  `toml:"cache"`
	Server            ServerConfig `toml:"server"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Backend  string   `toml:"backend"` // file (default), redis or none
	Dir      string   `toml:"dir"`     // file backend; default ~/.cache/seedpacket
	TTL      Duration `toml:"ttl"`
	RedisURL string   `toml:"redis_url"`
	Prefix   string   `toml:"prefix"` // key namespace, for shared Redis databases
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Duration is a time.Duration written as a string such as "90s" or "72h".
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		MaxImageDimension: assets.DefaultMaxDimension,
		Cache: CacheConfig{
			Backend:  CacheFile,
			TTL:      Duration(cache.TTLArtifact),
			RedisURL: "redis://localhost:6379/0",
		},
		Server: ServerConfig{
			Addr:         server.DefaultAddr,
			ReadTimeout:  Duration(server.DefaultReadTimeout),
			WriteTimeout: Duration(server.DefaultWriteTimeout),
		},
	}
}

// LoadConfig decodes path on top of [DefaultConfig]. A missing file yields
// the defaults unless mustExist is set. Unknown keys are an error so typos
// do not go unnoticed.
func LoadConfig(path string, mustExist bool) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.ImageDir = expandHome(cfg.ImageDir)
	cfg.Cache.Dir = expandHome(cfg.Cache.Dir)
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case CacheFile, CacheRedis, CacheNone:
	default:
		return fmt.Errorf("cache.backend %q must be one of %s, %s, %s", c.Cache.Backend, CacheFile, CacheRedis, CacheNone)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	return nil
}

// serverConfig converts the [server] table.
func (c Config) serverConfig() server.Config {
	return server.Config{
		Addr:         c.Server.Addr,
		ReadTimeout:  time.Duration(c.Server.ReadTimeout),
		WriteTimeout: time.Duration(c.Server.WriteTimeout),
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
