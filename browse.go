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
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/bidtree/bidtree"
)

// browseStyles holds the pane styling for the browse view
type browseStyles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	Status        lipgloss.Style
}

func newBrowseStyles() *browseStyles {
	scheme := GetColorScheme()
	return &browseStyles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Primary).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		Status: lipgloss.NewStyle().
			Foreground(scheme.Accent),
	}
}

// bidItem is one row of the bids list
type bidItem struct {
	bid      bidtree.Bid
	currency string
}

func (i bidItem) FilterValue() string { return i.bid.ID }
func (i bidItem) Title() string       { return fmt.Sprintf("%s: %s", i.bid.ID, i.bid.Title) }
func (i bidItem) Description() string {
	return fmt.Sprintf("%s | %s", formatAmount(i.bid.Amount, i.currency), i.bid.Fund)
}

// BrowseModel is the bubbletea state for the browse subcommand
type BrowseModel struct {
	ready bool

	idInput  textinput.Model
	bidsList list.Model
	detail   viewport.Model

	catalog  *Catalog
	order    bidtree.Order
	currency string

	lastQuery string
	status    string
	copy      func(string) error

	styles          *browseStyles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

func newBrowseModel(catalog *Catalog, config *Config, renderOpts ...glamour.TermRendererOption) BrowseModel {
	order, _ := bidtree.ParseOrder(config.Display.Order)

	ti := textinput.New()
	ti.Placeholder = "Type a bid id..."
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 30

	bids := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	bids.SetShowTitle(false)
	bids.SetShowHelp(false)
	bids.SetFilteringEnabled(false)

	detail := viewport.New(0, 0)
	detail.SetContent("Select a bid to see its details...")

	if len(renderOpts) == 0 {
		renderOpts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	renderOpts = append(renderOpts, glamour.WithWordWrap(72))
	renderer, _ := glamour.NewTermRenderer(renderOpts...)

	m := BrowseModel{
		idInput:         ti,
		bidsList:        bids,
		detail:          detail,
		catalog:         catalog,
		order:           order,
		currency:        config.Display.Currency,
		copy:            clipboard.WriteAll,
		styles:          newBrowseStyles(),
		glamourRenderer: renderer,
	}
	m.refreshBids()
	return m
}

func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.order = m.order.Next()
			m.status = fmt.Sprintf("Listing bids %s-order", m.order)
			m.refreshBids()
			return m, nil
		case "enter":
			m.findInput()
			return m, nil
		case "ctrl+d":
			m.removeSelected()
			return m, nil
		case "ctrl+y":
			bid, ok := m.selected()
			if !ok {
				return m, nil
			}
			line := formatBid(bid, m.currency)
			if err := m.copy(line); err != nil {
				m.status = fmt.Sprintf("Copy failed: %v", err)
			} else {
				m.status = fmt.Sprintf("Copied bid %s to clipboard.", bid.ID)
			}
			return m, nil
		case "up", "down", "pgup", "pgdown":
			m.bidsList, cmd = m.bidsList.Update(msg)
			m.showSelected()
			return m, cmd
		}

		m.idInput, cmd = m.idInput.Update(msg)
		if query := strings.TrimSpace(m.idInput.Value()); query != m.lastQuery {
			m.lastQuery = query
			m.refreshBids()
		}
		return m, cmd
	}

	return m, nil
}

// refreshBids lists the bids whose id starts with the current query, in the
// current traversal order.
func (m *BrowseModel) refreshBids() {
	var items []list.Item
	for bid := range m.catalog.Walk(m.order) {
		if strings.HasPrefix(bid.ID, m.lastQuery) {
			items = append(items, bidItem{bid: bid, currency: m.currency})
		}
	}
	m.bidsList.SetItems(items)
	m.showSelected()
}

func (m BrowseModel) selected() (bidtree.Bid, bool) {
	item, ok := m.bidsList.SelectedItem().(bidItem)
	if !ok {
		return bidtree.Bid{}, false
	}
	return item.bid, true
}

func (m *BrowseModel) showSelected() {
	bid, ok := m.selected()
	if !ok {
		m.detail.SetContent("No bids to show.")
		return
	}
	m.showBid(bid)
}

func (m *BrowseModel) showBid(bid bidtree.Bid) {
	content := bidMarkdown(bid, m.currency)
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			m.detail.SetContent(rendered)
			return
		}
	}
	m.detail.SetContent(content)
}

func (m *BrowseModel) findInput() {
	id := strings.TrimSpace(m.idInput.Value())
	if id == "" {
		return
	}
	bid, ok := m.catalog.Find(id)
	if !ok {
		m.status = fmt.Sprintf("Bid Id %s not found.", id)
		return
	}
	m.status = ""
	for i, item := range m.bidsList.Items() {
		if it, ok := item.(bidItem); ok && it.bid.ID == bid.ID {
			m.bidsList.Select(i)
			break
		}
	}
	m.showBid(bid)
}

func (m *BrowseModel) removeSelected() {
	bid, ok := m.selected()
	if !ok {
		return
	}
	index := m.bidsList.Index()
	if m.catalog.Remove(bid.ID) {
		m.status = fmt.Sprintf("Bid Id %s removed.", bid.ID)
	}
	m.refreshBids()
	if n := len(m.bidsList.Items()); n > 0 {
		m.bidsList.Select(min(index, n-1))
		m.showSelected()
	}
}

func (m *BrowseModel) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 7
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	m.idInput.Width = leftWidth - 4
	m.bidsList.SetSize(leftWidth-2, listHeight-2)
	m.detail.Width = rightWidth - 2
	m.detail.Height = listHeight + inputHeight
}

func (m BrowseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 7
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.styles.BorderFocused.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" 🔍 Find Bid"),
			m.idInput.View(),
		))

	listBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(fmt.Sprintf(" 📋 Bids (%s-order) ", m.order)),
			m.bidsList.View(),
		))

	detailBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(listHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(" 📄 Bid Details "),
			m.detail.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox),
		detailBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.styles.Status.Padding(0, 0, 0, 2).Render(m.status),
		m.renderHelp(),
	)
}

func (m BrowseModel) renderHelp() string {
	keys := []string{"enter", "↑/↓", "tab", "ctrl+d", "ctrl+y", "esc"}
	descs := []string{"find id", "select", "change order", "remove bid", "copy bid", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBrowse starts the browse view
func runBrowse(catalog *Catalog, config *Config) error {
	InitializeColors()

	program := tea.NewProgram(
		newBrowseModel(catalog, config),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sbrowse failed: %v%s\n", Error, err, Reset)
	}
	return err
}
