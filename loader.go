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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"

	"github.com/cybrota/bidtree/bidtree"
)

// Column positions in the eBid monthly sales export.
const (
	colTitle  = 0
	colID     = 1
	colAmount = 4
	colFund   = 8
)

var errShortRow = errors.New("row has too few columns")

// bidInserter is satisfied by *bidtree.Index and *Catalog.
type bidInserter interface {
	Insert(bid bidtree.Bid) error
}

type LoadOptions struct {
	Currency     string    // symbol stripped from the amount column
	Header       io.Writer // receives the header line, nil to skip
	ShowProgress bool
	Progress     io.Writer // progress bar output, stderr if nil
}

// LoadReport summarises one CSV load.
type LoadReport struct {
	Read       int
	Inserted   int
	Duplicates int
	Malformed  int
	RowErrors  int
	Header     []string
}

// Skipped is the number of rows that did not make it into the index.
func (r LoadReport) Skipped() int {
	return r.Duplicates + r.Malformed + r.RowErrors
}

func (r LoadReport) String() string {
	return fmt.Sprintf("%d bids read, %d inserted, %d duplicates, %d malformed ids, %d bad rows",
		r.Read, r.Inserted, r.Duplicates, r.Malformed, r.RowErrors)
}

// parseAmount strips the currency symbol and thousands separators and parses
// what is left. An empty amount is zero.
func parseAmount(s, symbol string) (float64, error) {
	s = strings.TrimSpace(s)
	if symbol != "" {
		s = strings.ReplaceAll(s, symbol, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseBidRow builds a bid from one CSV row. Errors carry the offending
// column as the merry value "column".
func parseBidRow(row []string, symbol string) (bidtree.Bid, error) {
	if len(row) <= colFund {
		return bidtree.Bid{}, merry.WithValue(errShortRow, "column", len(row))
	}

	amount, err := parseAmount(row[colAmount], symbol)
	if err != nil {
		return bidtree.Bid{}, merry.WithValue(
			merry.Errorf("bad amount %q: %v", row[colAmount], err), "column", colAmount)
	}

	return bidtree.Bid{
		ID:     strings.TrimSpace(row[colID]),
		Title:  strings.TrimSpace(row[colTitle]),
		Fund:   strings.TrimSpace(row[colFund]),
		Amount: amount,
	}, nil
}

// loadBidsFrom reads a bid CSV with a header row from r and inserts every
// row into dst. Bad rows, malformed IDs and duplicates are logged and
// counted; only a failure to read the CSV itself is returned.
func loadBidsFrom(r io.Reader, dst bidInserter, opts LoadOptions) (LoadReport, error) {
	var report LoadReport

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return report, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return report, nil
	}

	report.Header = rows[0]
	if opts.Header != nil {
		fmt.Fprintln(opts.Header, strings.Join(report.Header, " | "))
	}
	rows = rows[1:]

	var bar *progressbar.ProgressBar
	if opts.ShowProgress && len(rows) > 0 {
		out := opts.Progress
		if out == nil {
			out = os.Stderr
		}
		bar = progressbar.NewOptions(len(rows),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("📥 Loading bids..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerPadding: "░",
				BarStart:      "▕",
				BarEnd:        "▏",
			}),
			progressbar.OptionClearOnFinish(),
		)
	}

	for i, row := range rows {
		if bar != nil {
			bar.Add(1)
		}
		line := i + 2 // 1-based, after the header

		bid, err := parseBidRow(row, opts.Currency)
		if err != nil {
			err = merry.WithValue(err, "row", line)
			log.WithFields(log.Fields{
				"row":    merry.Value(err, "row"),
				"column": merry.Value(err, "column"),
			}).WithError(err).Warn("skipping bad CSV row")
			report.RowErrors++
			continue
		}
		report.Read++

		switch err := dst.Insert(bid); {
		case err == nil:
			report.Inserted++
		case errors.Is(err, bidtree.ErrDuplicateKey):
			report.Duplicates++
			log.WithField("row", line).WithError(err).Debug("bid already loaded")
		case errors.Is(err, bidtree.ErrMalformedKey):
			report.Malformed++
			log.WithField("row", line).WithError(err).Warn("skipping bid with malformed id")
		default:
			return report, fmt.Errorf("row %d: %w", line, err)
		}
	}

	if bar != nil {
		bar.Finish()
	}
	if report.Duplicates > 0 {
		log.WithField("duplicates", report.Duplicates).Warn("some bids were already loaded and were kept as they were")
	}
	return report, nil
}

// loadBids opens csvPath and loads it into dst.
func loadBids(csvPath string, dst bidInserter, opts LoadOptions) (LoadReport, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadReport{}, fmt.Errorf("bid file %s not found", csvPath)
		}
		return LoadReport{}, err
	}
	defer file.Close()

	log.WithField("path", csvPath).Info("loading bids")
	return loadBidsFrom(file, dst, opts)
}
