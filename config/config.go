package config

import (
	"io/ioutil"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var log = logging.MustGetLogger("config")

const (
	SEED_MODE_PREPEND = "prepend" // 追加到表尾，保持配置顺序
	SEED_MODE_APPEND  = "append"  // 插入到表头，顺序反转
)

type Config struct {
	LogFile  string   `yaml:"log-file"`
	LogLevel string   `yaml:"log-level"`
	Initial  []string `yaml:"initial,flow"`
	SeedMode string   `yaml:"seed-mode"`
	Table    bool     `yaml:"table"`
}

func (c *Config) Validate() error {
	level := strings.ToLower(c.LogLevel)
	c.LogLevel = "info"
	for _, l := range []string{"error", "warning", "info", "debug"} {
		if level == l {
			c.LogLevel = l
		}
	}
	if level != "" && level != c.LogLevel {
		log.Warningf("unknown log-level %s, use %s", level, c.LogLevel)
	}

	switch strings.ToLower(c.SeedMode) {
	case "", SEED_MODE_PREPEND:
		c.SeedMode = SEED_MODE_PREPEND
	case SEED_MODE_APPEND:
		c.SeedMode = SEED_MODE_APPEND
	default:
		return errors.Errorf("seed-mode %q invalid, should be %s or %s", c.SeedMode, SEED_MODE_PREPEND, SEED_MODE_APPEND)
	}
	return nil
}

func DefaultConfig() Config {
	config := Config{}
	config.Validate()
	return config
}

// path为空时返回默认配置
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	configBytes, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config file")
	}
	config := Config{}
	if err = yaml.Unmarshal(configBytes, &config); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal yaml")
	}
	if err = config.Validate(); err != nil {
		return Config{}, errors.WithMessage(err, path)
	}
	return config, nil
}
