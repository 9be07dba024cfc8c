package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

type Config struct {
	UniverseFile         string `json:"universeFile"`
	ApiPort              int    `json:"apiPort"`
	QuoteCacheTtlSeconds int    `json:"quoteCacheTtlSeconds"`
}

func defaultConfig() *Config {
	return &Config{
		UniverseFile:         "tickers.csv",
		ApiPort:              3009,
		QuoteCacheTtlSeconds: 300,
	}
}

// LoadConfig reads the env-specific config file. A missing file is not
// an error - the CLI should work off flags and defaults alone.
func LoadConfig() (*Config, error) {
	configFile := "config.json"
	if os.Getenv("STOCKALLOC_ENV") == "dev" {
		configFile = "config-dev.json"
	} else if os.Getenv("STOCKALLOC_ENV") == "test" {
		configFile = "config-test.json"
	}

	f, err := os.ReadFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil
	} else if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", configFile, err)
	}

	config := defaultConfig()
	err = json.Unmarshal(f, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
