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
	"iter"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/cybrota/bidtree/bidtree"
)

// Styles holds the lipgloss styles for line-oriented output
type Styles struct {
	Heading  lipgloss.Style
	Key      lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Failure  lipgloss.Style
	MenuItem lipgloss.Style
}

func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		Heading:  lipgloss.NewStyle().Foreground(scheme.Primary).Bold(true),
		Key:      lipgloss.NewStyle().Foreground(scheme.Accent).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(scheme.TextMuted),
		Success:  lipgloss.NewStyle().Foreground(scheme.Success),
		Warning:  lipgloss.NewStyle().Foreground(scheme.Warning),
		Failure:  lipgloss.NewStyle().Foreground(scheme.Error).Bold(true),
		MenuItem: lipgloss.NewStyle().Foreground(scheme.Text),
	}
}

// formatAmount renders an amount as currency, e.g. "$1,234.50".
func formatAmount(amount float64, symbol string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	return sign + symbol + humanize.FormatFloat("#,###.##", amount)
}

// formatBid is the single-bid form: "<id>: <title> | <amount> | <fund>".
func formatBid(bid bidtree.Bid, symbol string) string {
	return fmt.Sprintf("%s: %s | %s | %s", bid.ID, bid.Title, formatAmount(bid.Amount, symbol), bid.Fund)
}

// formatBidRow is the listing form: "bid ID: <id> | <title> | <amount> | <fund>".
func formatBidRow(bid bidtree.Bid, symbol string) string {
	return fmt.Sprintf("bid ID: %s | %s | %s | %s", bid.ID, bid.Title, formatAmount(bid.Amount, symbol), bid.Fund)
}

func displayBid(w io.Writer, bid bidtree.Bid, symbol string) {
	fmt.Fprintln(w, formatBid(bid, symbol))
}

// displayBids writes every bid in seq and returns how many were written.
func displayBids(w io.Writer, seq iter.Seq[bidtree.Bid], symbol string) int {
	n := 0
	for bid := range seq {
		fmt.Fprintln(w, formatBidRow(bid, symbol))
		n++
	}
	return n
}

// bidMarkdown describes one bid for the browse view's detail pane.
func bidMarkdown(bid bidtree.Bid, symbol string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Bid %s\n\n", bid.ID)
	fmt.Fprintf(&b, "**%s**\n\n", bid.Title)
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Amount | %s |\n", formatAmount(bid.Amount, symbol))
	fmt.Fprintf(&b, "| Fund | %s |\n", bid.Fund)
	return b.String()
}
