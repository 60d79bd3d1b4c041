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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cybrota/bidtree/bidtree"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

// applyArgs overrides the configured CSV path and bid key with the
// positional arguments [csv-path [bid-key]].
func applyArgs(config *Config, args []string) {
	if len(args) > 0 {
		config.Data.CSVPath = args[0]
	}
	if len(args) > 1 {
		config.Data.BidKey = args[1]
	}
}

// loadCatalog builds a catalog and loads the configured CSV into it.
func loadCatalog(config *Config, showProgress bool) (*Catalog, error) {
	catalog := NewCatalog(config.Lookup)
	report, err := catalog.Load(config.Data.CSVPath, LoadOptions{
		Currency:     config.Display.Currency,
		ShowProgress: showProgress,
	})
	if err != nil {
		return nil, err
	}
	log.WithField("report", report.String()).Info("bids loaded")
	return catalog, nil
}

const asciiLogo = `
██████╗ ██╗██████╗ ████████╗██████╗ ███████╗███████╗
██╔══██╗██║██╔══██╗╚══██╔══╝██╔══██╗██╔════╝██╔════╝
██████╔╝██║██║  ██║   ██║   ██████╔╝█████╗  █████╗
██╔══██╗██║██║  ██║   ██║   ██╔══██╗██╔══╝  ██╔══╝
██████╔╝██║██████╔╝   ██║   ██║  ██║███████╗███████╗
╚═════╝ ╚═╝╚═════╝    ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Ordered bid index for eBid monthly sales exports [Version: %s%s%s]

Copyright @ Naren Yellavula

`

// newRootCommand builds the command tree. One-shot commands write to out.
func newRootCommand(out io.Writer) *cobra.Command {
	logo := fmt.Sprintf(asciiLogo, Green, version, Reset)

	var config *Config
	var verbose bool
	var order string

	var rootCmd = &cobra.Command{
		Use:     "bidtree [csv-path [bid-key]]",
		Version: version,
		Long:    logo,
		Args:    cobra.MaximumNArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			config, err = LoadConfig()
			configureLogging(os.Stderr, config.LogLevel, verbose)
			if err != nil {
				log.WithError(err).Warn("failed to load configuration, using default settings")
			}
			if cmd.Flags().Changed("order") {
				config.Display.Order = order
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every insert step")
	rootCmd.PersistentFlags().StringVar(&order, "order", "in", "traversal order for listings: in, pre or post")

	runMenu := func(cmd *cobra.Command, args []string) {
		applyArgs(config, args)
		InitializeColors()
		menu := NewMenu(NewCatalog(config.Lookup), out, config)
		if err := menu.Run(); err != nil {
			log.WithError(err).Fatal("menu failed")
		}
	}
	rootCmd.Run = runMenu

	var cmdMenu = &cobra.Command{
		Use:   "menu [csv-path [bid-key]]",
		Short: "Numbered menu to load, display, find and remove bids",
		Args:  cobra.MaximumNArgs(2),
		Run:   runMenu,
	}

	var cmdList = &cobra.Command{
		Use:   "list [csv-path]",
		Short: "Print every bid in the chosen traversal order",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			applyArgs(config, args)
			listOrder, err := bidtree.ParseOrder(config.Display.Order)
			if err != nil {
				log.WithError(err).Fatal("bad --order")
			}
			catalog, err := loadCatalog(config, false)
			if err != nil {
				log.WithError(err).Fatal("failed to load bids")
			}
			displayBids(out, catalog.Walk(listOrder), config.Display.Currency)
		},
	}

	var cmdFind = &cobra.Command{
		Use:   "find [csv-path [bid-key]]",
		Short: "Print one bid by id",
		Args:  cobra.MaximumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			applyArgs(config, args)
			catalog, err := loadCatalog(config, false)
			if err != nil {
				log.WithError(err).Fatal("failed to load bids")
			}

			id := config.Data.BidKey
			sw := StartStopwatch()
			bid, ok := catalog.Find(id)
			sw.Stop()
			if !ok {
				fmt.Fprintf(out, "Bid Id %s not found.\n", id)
				os.Exit(1)
			}
			displayBid(out, bid, config.Display.Currency)
			for _, line := range timingLines(sw) {
				fmt.Fprintln(out, line)
			}
		},
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse [csv-path]",
		Short: "Interactive view to search, inspect and remove bids",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			applyArgs(config, args)
			catalog, err := loadCatalog(config, true)
			if err != nil {
				log.WithError(err).Fatal("failed to load bids")
			}
			if err := runBrowse(catalog, config); err != nil {
				os.Exit(1)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print bidtree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Create the default config file if missing and print the active settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(out)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print bidtree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, version)
		},
	}

	for _, c := range []*cobra.Command{cmdMenu, cmdList, cmdFind, cmdBrowse} {
		c.Long = fmt.Sprintf("%s\n%s", logo, c.Short)
	}

	rootCmd.AddCommand(cmdMenu, cmdList, cmdFind, cmdBrowse, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func main() {
	InitializeColors()
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
