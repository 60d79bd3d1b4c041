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
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/cybrota/bidtree/bidtree"
)

// configureLogging points logrus at w and sets the level from the config.
// verbose forces debug level, which includes per-node insert tracing.
func configureLogging(w io.Writer, level string, verbose bool) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: Translate(DefaultTimeFormat),
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
		if level != "" {
			defer log.WithField("log_level", level).Warn("unknown log level, using warn")
		}
	}
	if verbose {
		lvl = log.DebugLevel
	}
	log.SetLevel(lvl)

	bidtree.SetLogger(log.WithField("pkg", "bidtree"))
}
