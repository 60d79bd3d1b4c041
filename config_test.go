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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromMissingFile(t *testing.T) {
	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bidtree.yaml")
	yaml := `
data:
  bid_key: "12345"
display:
  order: post
lookup:
  cache_ttl: 90s
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "12345", config.Data.BidKey)
	assert.Equal(t, defaultConfig.Data.CSVPath, config.Data.CSVPath)
	assert.Equal(t, "post", config.Display.Order)
	assert.Equal(t, "$", config.Display.Currency)
	assert.Equal(t, 90*time.Second, config.Lookup.CacheTTL)
	assert.Equal(t, defaultConfig.Lookup.BloomBits, config.Lookup.BloomBits)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigFromBlankValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bidtree.yaml")
	yaml := `
data:
  csv_path: ""
display:
  currency: ""
lookup:
  bloom_bits: 0
  bloom_hashes: 0
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig.Data.CSVPath, config.Data.CSVPath)
	assert.Equal(t, "$", config.Display.Currency)
	assert.Equal(t, defaultConfig.Lookup.BloomBits, config.Lookup.BloomBits)
	assert.Equal(t, defaultConfig.Lookup.BloomHashes, config.Lookup.BloomHashes)
}

func TestLoadConfigFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bidtree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [unclosed"), 0644))

	config, err := LoadConfigFrom(path)
	assert.Error(t, err)
	require.NotNil(t, config)
	assert.Equal(t, defaultConfig, *config)
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bidtree.yaml")
	want := defaultConfig
	want.Data.BidKey = "97990"
	want.Lookup.CacheTTL = 5 * time.Minute

	require.NoError(t, writeConfigFile(path, &want))

	got, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}
