// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".bidtree.yaml"

type DataConfig struct {
	CSVPath string `yaml:"csv_path"`
	BidKey  string `yaml:"bid_key"`
}

type DisplayConfig struct {
	Order    string `yaml:"order"` // in, pre or post
	Currency string `yaml:"currency"`
}

type LookupConfig struct {
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	BloomBits   uint          `yaml:"bloom_bits"`
	BloomHashes uint          `yaml:"bloom_hashes"`
}

type Config struct {
	Data     DataConfig    `yaml:"data"`
	Display  DisplayConfig `yaml:"display"`
	Lookup   LookupConfig  `yaml:"lookup"`
	LogLevel string        `yaml:"log_level"`
}

var defaultConfig = Config{
	Data: DataConfig{
		CSVPath: "eBid_Monthly_Sales.csv",
		BidKey:  "98109",
	},
	Display: DisplayConfig{
		Order:    "in",
		Currency: "$",
	},
	Lookup: LookupConfig{
		CacheTTL:    30 * time.Minute,
		BloomBits:   1 << 16,
		BloomHashes: 5,
	},
	LogLevel: "warn",
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.bidtree.yaml. Any problem reading it falls back to the
// defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at path. Keys missing from the file keep
// their default values. A missing or unreadable file yields the defaults; a
// file that is not valid YAML yields the defaults and the parse error.
func LoadConfigFrom(path string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		config = defaultConfig
		return &config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	config.fillDefaults()
	return &config, nil
}

// fillDefaults repairs values that would leave a component unusable.
func (c *Config) fillDefaults() {
	if c.Data.CSVPath == "" {
		c.Data.CSVPath = defaultConfig.Data.CSVPath
	}
	if c.Display.Currency == "" {
		c.Display.Currency = defaultConfig.Display.Currency
	}
	if c.Lookup.CacheTTL <= 0 {
		c.Lookup.CacheTTL = defaultConfig.Lookup.CacheTTL
	}
	if c.Lookup.BloomBits == 0 {
		c.Lookup.BloomBits = defaultConfig.Lookup.BloomBits
	}
	if c.Lookup.BloomHashes == 0 {
		c.Lookup.BloomHashes = defaultConfig.Lookup.BloomHashes
	}
}

func writeConfigFile(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}
	cfg := defaultConfig
	return writeConfigFile(configPath, &cfg)
}

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Fprintf(w, "🔧 Bid Tree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")
	fmt.Fprintf(w, "  • %scsv_path%s: %s\n", Green, Reset, config.Data.CSVPath)
	fmt.Fprintf(w, "  • %sbid_key%s: %s\n", Green, Reset, config.Data.BidKey)
	fmt.Fprintf(w, "  • %sorder%s: %s\n", Green, Reset, config.Display.Order)
	fmt.Fprintf(w, "  • %scurrency%s: %s\n", Green, Reset, config.Display.Currency)
	fmt.Fprintf(w, "  • %scache_ttl%s: %s\n", Green, Reset, config.Lookup.CacheTTL)
	fmt.Fprintf(w, "  • %sbloom_bits%s: %d (%d hashes)\n", Green, Reset, config.Lookup.BloomBits, config.Lookup.BloomHashes)
	fmt.Fprintf(w, "  • %slog_level%s: %s\n\n", Green, Reset, config.LogLevel)

	fmt.Fprintf(w, "💡 Positional arguments override the data section: bidtree <csv-path> <bid-key>\n")
}
