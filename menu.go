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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/mattn/go-shellwords"
	log "github.com/sirupsen/logrus"

	"github.com/cybrota/bidtree/bidtree"
)

const (
	choiceLoad    = 1
	choiceDisplay = 2
	choiceFind    = 3
	choiceRemove  = 4
	choiceExit    = 9
)

var errUnknownChoice = errors.New("unknown menu choice")

// Menu is the numbered console menu. Each input line is a choice number
// optionally followed by an argument: "3 98109" finds bid 98109 instead of
// the default key, "2 pre" lists in pre-order.
type Menu struct {
	catalog  *Catalog
	out      io.Writer
	styles   *Styles
	csvPath  string
	bidKey   string
	order    bidtree.Order
	currency string
	progress bool
	clock    func() time.Time
}

func NewMenu(catalog *Catalog, out io.Writer, config *Config) *Menu {
	order, err := bidtree.ParseOrder(config.Display.Order)
	if err != nil {
		log.WithError(err).Warn("using in-order listing")
	}
	return &Menu{
		catalog:  catalog,
		out:      out,
		styles:   NewStyles(),
		csvPath:  config.Data.CSVPath,
		bidKey:   config.Data.BidKey,
		order:    order,
		currency: config.Display.Currency,
		clock:    time.Now,
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, m.styles.Heading.Render("Menu:"))
	fmt.Fprintln(m.out, m.styles.MenuItem.Render("  1. Load Bids"))
	fmt.Fprintln(m.out, m.styles.MenuItem.Render("  2. Display All Bids"))
	fmt.Fprintln(m.out, m.styles.MenuItem.Render("  3. Find Bid"))
	fmt.Fprintln(m.out, m.styles.MenuItem.Render("  4. Remove Bid"))
	fmt.Fprintln(m.out, m.styles.MenuItem.Render("  9. Exit"))
}

func (m *Menu) printTiming(sw *Stopwatch) {
	for _, line := range timingLines(sw) {
		fmt.Fprintln(m.out, m.styles.Muted.Render(line))
	}
}

// Dispatch runs one menu line. quit is true once the user chose Exit.
func (m *Menu) Dispatch(line string) (quit bool, err error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return false, fmt.Errorf("failed to parse %q: %v", line, err)
	}
	if len(args) == 0 {
		return false, nil
	}

	choice, err := strconv.Atoi(args[0])
	if err != nil {
		return false, fmt.Errorf("%w: %q", errUnknownChoice, args[0])
	}
	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}

	switch choice {
	case choiceLoad:
		m.load(arg)
	case choiceDisplay:
		return false, m.display(arg)
	case choiceFind:
		m.find(arg)
	case choiceRemove:
		m.remove(arg)
	case choiceExit:
		m.exit()
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d", errUnknownChoice, choice)
	}
	return false, nil
}

func (m *Menu) load(path string) {
	if path == "" {
		path = m.csvPath
	}
	fmt.Fprintf(m.out, "Loading CSV file %s\n", path)

	sw := startStopwatchWith(m.clock)
	report, err := m.catalog.Load(path, LoadOptions{
		Currency:     m.currency,
		Header:       m.out,
		ShowProgress: m.progress,
	})
	sw.Stop()
	if err != nil {
		fmt.Fprintln(m.out, m.styles.Failure.Render(err.Error()))
		return
	}
	if report.Skipped() > 0 {
		fmt.Fprintln(m.out, m.styles.Warning.Render(report.String()))
	} else {
		fmt.Fprintln(m.out, m.styles.Success.Render(report.String()))
	}
	m.printTiming(sw)
}

func (m *Menu) display(orderArg string) error {
	order := m.order
	if orderArg != "" {
		var err error
		if order, err = bidtree.ParseOrder(orderArg); err != nil {
			return err
		}
	}
	displayBids(m.out, m.catalog.Walk(order), m.currency)
	return nil
}

func (m *Menu) find(id string) {
	if id == "" {
		id = m.bidKey
	}

	sw := startStopwatchWith(m.clock)
	bid, ok := m.catalog.Find(id)
	sw.Stop()

	if ok {
		displayBid(m.out, bid, m.currency)
	} else {
		fmt.Fprintln(m.out, m.styles.Failure.Render(fmt.Sprintf("Bid Id %s not found.", id)))
	}
	m.printTiming(sw)
}

func (m *Menu) remove(id string) {
	if id == "" {
		id = m.bidKey
	}
	if m.catalog.Remove(id) {
		fmt.Fprintln(m.out, m.styles.Success.Render(fmt.Sprintf("Bid Id %s removed.", id)))
		return
	}
	log.WithField("id", id).Debug("remove of absent bid")
}

// exit releases every loaded bid before saying goodbye.
func (m *Menu) exit() {
	n := m.catalog.Reset()
	log.WithField("released", n).Debug("bid index cleared")
	fmt.Fprintln(m.out, "Good bye.")
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("1"),
	readline.PcItem("2",
		readline.PcItem("in"),
		readline.PcItem("pre"),
		readline.PcItem("post"),
	),
	readline.PcItem("3"),
	readline.PcItem("4"),
	readline.PcItem("9"),
)

func menuHistoryFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".bidtree_history")
}

// Run reads menu lines until Exit, end of input or an interrupt.
func (m *Menu) Run() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "Enter choice: ",
		HistoryFile:     menuHistoryFile(),
		AutoComplete:    completer,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return err
	}
	defer l.Close()

	m.out = l.Stdout()
	m.progress = true
	fmt.Fprintln(m.out, m.styles.Muted.Render(FormatDateTime(m.clock())))

	for {
		m.printMenu()
		line, err := l.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			m.exit()
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := m.Dispatch(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.out, m.styles.Failure.Render(err.Error()))
			continue
		}
		if quit {
			return nil
		}
	}
}
