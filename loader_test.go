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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/bidtree/bidtree"
)

const sampleCSV = `ArticleTitle,ArticleID,Department,CloseDate,WinningBid,InventoryID,VehicleID,ReceiptNumber,Fund
Hoover Steam Vac,98109,General Services,4/1/2017,$27.00,,,,Enterprise
Table,97990,General Services,4/1/2017,"$1,234.50",,,,General Fund
Second Steam Vac,98109,General Services,4/1/2017,$1.00,,,,General Fund
Chair,12a,General Services,4/1/2017,$1.00,,,,General Fund
Desk,100,General Services,4/1/2017,$abc,,,,General Fund
Lamp,101,General Services
`

// writeSampleCSV puts sampleCSV in a temp dir and returns its path.
func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bids.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))
	return path
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"$27.00", 27},
		{"$1,234.50", 1234.5},
		{" 12 ", 12},
		{"", 0},
		{"$", 0},
	}

	for _, tc := range tests {
		got, err := parseAmount(tc.input, "$")
		require.NoError(t, err, "parseAmount(%q)", tc.input)
		assert.Equal(t, tc.expected, got, "parseAmount(%q)", tc.input)
	}

	_, err := parseAmount("$abc", "$")
	assert.Error(t, err)
}

func TestParseBidRowShortRow(t *testing.T) {
	_, err := parseBidRow([]string{"Lamp", "101", "General Services"}, "$")
	require.Error(t, err)
	assert.ErrorIs(t, err, errShortRow)
	assert.Equal(t, 3, merry.Value(err, "column"))
}

func TestParseBidRowBadAmount(t *testing.T) {
	row := strings.Split("Desk,100,x,x,$abc,,,,General Fund", ",")
	_, err := parseBidRow(row, "$")
	require.Error(t, err)
	assert.Equal(t, colAmount, merry.Value(err, "column"))
}

func TestLoadBidsFrom(t *testing.T) {
	index := bidtree.New()
	var header bytes.Buffer

	report, err := loadBidsFrom(strings.NewReader(sampleCSV), index, LoadOptions{
		Currency: "$",
		Header:   &header,
	})
	require.NoError(t, err)

	assert.Equal(t, "ArticleTitle | ArticleID | Department | CloseDate | WinningBid | InventoryID | VehicleID | ReceiptNumber | Fund\n",
		header.String())
	assert.Equal(t, 4, report.Read)
	assert.Equal(t, 2, report.Inserted)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 1, report.Malformed)
	assert.Equal(t, 2, report.RowErrors)

	// The first bid loaded for an id wins.
	bid, ok := index.Search("98109")
	require.True(t, ok)
	assert.Equal(t, bidtree.Bid{ID: "98109", Title: "Hoover Steam Vac", Fund: "Enterprise", Amount: 27}, bid)

	bid, ok = index.Search("97990")
	require.True(t, ok)
	assert.Equal(t, 1234.5, bid.Amount)
}

func TestLoadBidsFromEmptyInput(t *testing.T) {
	report, err := loadBidsFrom(strings.NewReader(""), bidtree.New(), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, LoadReport{}, report)
}

func TestLoadBidsWithProgress(t *testing.T) {
	var progress bytes.Buffer
	report, err := loadBidsFrom(strings.NewReader(sampleCSV), bidtree.New(), LoadOptions{
		Currency:     "$",
		ShowProgress: true,
		Progress:     &progress,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Inserted)
}

func TestLoadBidsMissingFile(t *testing.T) {
	_, err := loadBids(filepath.Join(t.TempDir(), "missing.csv"), bidtree.New(), LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadReportString(t *testing.T) {
	r := LoadReport{Read: 4, Inserted: 2, Duplicates: 1, Malformed: 1, RowErrors: 2}
	assert.Equal(t, "4 bids read, 2 inserted, 1 duplicates, 1 malformed ids, 2 bad rows", r.String())
	assert.Equal(t, 4, r.Skipped())
	assert.Zero(t, LoadReport{Read: 3, Inserted: 3}.Skipped())
}
