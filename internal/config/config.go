package config

import (
	"os"
	"time"

	"github.com/flavioheleno/ledmatrix/transport"
	"gopkg.in/yaml.v3"
)

type Line struct {
	BaudRate      int `yaml:"baud_rate"`       // e.g. 115200
	ReadTimeoutMs int `yaml:"read_timeout_ms"` // e.g. 1000
}

type Config struct {
	Transport string `yaml:"transport"` // "serial" | "tty" | "uart"
	Port      string `yaml:"port"`      // e.g. /dev/ttyACM0; empty to discover
	LogLevel  string `yaml:"log_level"` // zerolog level name

	Line         Line `yaml:"line,omitempty"`
	StageRetries int  `yaml:"stage_retries"`
	Brightness   int  `yaml:"brightness"` // 1..255, 0 leaves it alone
}

// TransportConfig converts the line settings; zero values keep the
// transport defaults.
func (c *Config) TransportConfig() transport.Config {
	return transport.Config{
		BaudRate:    c.Line.BaudRate,
		ReadTimeout: time.Duration(c.Line.ReadTimeoutMs) * time.Millisecond,
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
