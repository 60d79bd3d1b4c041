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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getUsageMarkdown() string {
	return fmt.Sprintf(`

 **Bidtree %s**

Load the eBid monthly sales export into an ordered index and look bids up by id.

Built with Go %s

# 1. Commands
* menu: numbered console menu (the default)
* list: print every bid, *--order in|pre|post*
* find: print one bid by id
* browse: interactive search and detail view
* settings: show the active configuration

# 2. Menu
* 1 [path]: load bids from the CSV file
* 2 [in|pre|post]: display all bids
* 3 [id]: find a bid, reports the time taken
* 4 [id]: remove a bid
* 9: exit

# 3. Bid ids
Ids are compared as numbers, so *007* and *7* name the same bid.
Loading a bid whose id is already present keeps the first one.

# Configuration
Settings live in *~/.bidtree.yaml*. Run *bidtree settings* to see them.

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
}

func getHelpMessage() string {
	return string(markdown.Render(getUsageMarkdown(), 80, 3))
}
