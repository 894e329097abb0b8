package config

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"gopkg.in/yaml.v3"
)

const (
	OUTPUT_HUMAN = "human"
	OUTPUT_RESP  = "resp"
)

type Config struct {
	Prompt  string     `yaml:"prompt"`
	Output  string     `yaml:"output"`
	Log     *LogConfig `yaml:"log"`
	Preload []string   `yaml:"preload"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Prompt: "godlist> ",
		Output: OUTPUT_HUMAN,
		Log:    &LogConfig{Level: "info"},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Substitute from environmental vars
	confContent := []byte(os.ExpandEnv(string(data)))

	config := Default()

	err = yaml.Unmarshal(confContent, config)
	if err != nil {
		return nil, err
	}
	if config.Log == nil {
		config.Log = Default().Log
	}
	if _, err := config.Log.Lvl(); err != nil {
		return nil, err
	}
	if config.Output != OUTPUT_HUMAN && config.Output != OUTPUT_RESP {
		return nil, fmt.Errorf("output: unknown mode %q", config.Output)
	}

	return config, nil
}

func (c *LogConfig) Lvl() (log15.Lvl, error) {
	lvl, err := log15.LvlFromString(c.Level)
	if err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// Handler builds the log15 handler described by c.
func (c *LogConfig) Handler() (log15.Handler, error) {
	lvl, err := c.Lvl()
	if err != nil {
		return nil, err
	}
	handler := log15.StderrHandler
	if c.File != "" {
		handler, err = log15.FileHandler(c.File, log15.LogfmtFormat())
		if err != nil {
			return nil, err
		}
	}
	return log15.LvlFilterHandler(lvl, handler), nil
}
