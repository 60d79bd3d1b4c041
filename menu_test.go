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
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMenu(t *testing.T) (*Menu, *bytes.Buffer) {
	t.Helper()
	config := defaultConfig
	config.Data.CSVPath = writeSampleCSV(t)
	config.Lookup = testLookup

	var out bytes.Buffer
	menu := NewMenu(NewCatalog(config.Lookup), &out, &config)
	fixed := time.Date(2017, 4, 1, 9, 30, 0, 0, time.UTC)
	menu.clock = func() time.Time { return fixed }
	return menu, &out
}

func dispatch(t *testing.T, m *Menu, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	quit, err := m.Dispatch(line)
	require.NoError(t, err, "Dispatch(%q)", line)
	require.False(t, quit, "Dispatch(%q) quit", line)
	return out.String()
}

func TestMenuLoadAndFind(t *testing.T) {
	m, out := newTestMenu(t)

	got := dispatch(t, m, out, "1")
	assert.Contains(t, got, "ArticleTitle | ArticleID")
	assert.Contains(t, got, "2 inserted")
	assert.Contains(t, got, "time: 0 clock ticks")
	assert.Contains(t, got, "time: 0 seconds")

	got = dispatch(t, m, out, "3")
	assert.Contains(t, got, "98109: Hoover Steam Vac | $27.00 | Enterprise")
	assert.Contains(t, got, "time: 0 clock ticks")

	got = dispatch(t, m, out, `3 "97990"`)
	assert.Contains(t, got, "97990: Table | $1,234.50 | General Fund")

	got = dispatch(t, m, out, "3 5")
	assert.Contains(t, got, "Bid Id 5 not found.")
}

func TestMenuRemove(t *testing.T) {
	m, out := newTestMenu(t)
	dispatch(t, m, out, "1")

	got := dispatch(t, m, out, "4")
	assert.Contains(t, got, "Bid Id 98109 removed.")

	got = dispatch(t, m, out, "3")
	assert.Contains(t, got, "Bid Id 98109 not found.")

	// Removing again is silent.
	assert.Empty(t, dispatch(t, m, out, "4"))
}

func TestMenuDisplay(t *testing.T) {
	m, out := newTestMenu(t)
	dispatch(t, m, out, "1")

	got := dispatch(t, m, out, "2")
	assert.Equal(t,
		"bid ID: 97990 | Table | $1,234.50 | General Fund\n"+
			"bid ID: 98109 | Hoover Steam Vac | $27.00 | Enterprise\n",
		got)

	// 98109 was loaded first, so it is the root.
	got = dispatch(t, m, out, "2 pre")
	assert.Equal(t,
		"bid ID: 98109 | Hoover Steam Vac | $27.00 | Enterprise\n"+
			"bid ID: 97990 | Table | $1,234.50 | General Fund\n",
		got)

	_, err := m.Dispatch("2 sideways")
	assert.Error(t, err)
}

func TestMenuLoadMissingFile(t *testing.T) {
	m, out := newTestMenu(t)
	got := dispatch(t, m, out, "1 /nonexistent/bids.csv")
	assert.Contains(t, got, "not found")
}

func TestMenuExit(t *testing.T) {
	m, out := newTestMenu(t)
	dispatch(t, m, out, "1")
	require.NotNil(t, m.catalog.Index().Root())

	out.Reset()
	quit, err := m.Dispatch("9")
	require.NoError(t, err)
	assert.True(t, quit)
	assert.Equal(t, "Good bye.\n", out.String())

	// Exit tears the index down.
	assert.Nil(t, m.catalog.Index().Root())
	_, found := m.catalog.Find("98109")
	assert.False(t, found)
}

func TestMenuBadChoices(t *testing.T) {
	m, out := newTestMenu(t)

	for _, line := range []string{"x", "7", "0"} {
		quit, err := m.Dispatch(line)
		assert.False(t, quit)
		assert.True(t, errors.Is(err, errUnknownChoice), "Dispatch(%q) = %v", line, err)
	}

	_, err := m.Dispatch(`3 "unterminated`)
	assert.Error(t, err)

	assert.Empty(t, dispatch(t, m, out, "   "))
}
