package storage

import (
	"fmt"
	"net/url"
	"strings"

	"boscoin.io/votebank/lib/errors"
)

// Config is parsed from a storage uri:
//   - `memory://`: in-memory leveldb, lost on close
//   - `file:///path/to/db`: leveldb files under the given path
type Config struct {
	Raw    string
	Scheme string
	Path   string
}

func NewConfigFromString(s string) (*Config, error) {
	parsed, err := url.Parse(s)
	if err != nil {
		return nil, errors.StorageInvalidConfig.Clone().SetData("error", err.Error())
	}

	config := &Config{Raw: s, Scheme: strings.ToLower(parsed.Scheme)}

	switch config.Scheme {
	case "memory":
	case "file":
		config.Path = parsed.Path
		if len(config.Path) < 1 {
			return nil, errors.StorageInvalidConfig.Clone().SetData("error", "empty path")
		}
	default:
		return nil, errors.StorageInvalidConfig.Clone().SetData(
			"error",
			fmt.Sprintf("unknown scheme, '%s'", parsed.Scheme),
		)
	}

	return config, nil
}

func (c *Config) String() string {
	return c.Raw
}
