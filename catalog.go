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
	"iter"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"github.com/willf/bloom"

	"github.com/cybrota/bidtree/bidtree"
)

// Clean up expired lookups every 5 minutes
const lookupCacheCleanup = 5 * time.Minute

// NewLookupCache creates a cache for recently found bids
func NewLookupCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, lookupCacheCleanup)
}

func CacheBid(c *cache.Cache, key string, bid bidtree.Bid) {
	c.Set(key, bid, cache.DefaultExpiration)
}

func GetCachedBid(c *cache.Cache, key string) (bidtree.Bid, bool) {
	val, ok := c.Get(key)
	if !ok {
		return bidtree.Bid{}, false
	}
	return val.(bidtree.Bid), true
}

// Catalog is what the menu and the browse view talk to: a bid index with a
// bloom filter of every ID ever inserted and a cache of recent hits in front
// of Find. Like the index, it is meant for one goroutine.
type Catalog struct {
	index  *bidtree.Index
	filter *bloom.BloomFilter
	hits   *cache.Cache
	config LookupConfig
}

func NewCatalog(config LookupConfig) *Catalog {
	return &Catalog{
		index:  bidtree.New(),
		filter: bloom.New(config.BloomBits, config.BloomHashes),
		hits:   NewLookupCache(config.CacheTTL),
		config: config,
	}
}

// canonicalKey maps equivalent IDs ("007", "7") to one filter and cache key.
func canonicalKey(id string) (string, bool) {
	key, err := bidtree.ParseKey(id)
	if err != nil {
		return "", false
	}
	return strconv.FormatInt(key, 10), true
}

func (c *Catalog) Index() *bidtree.Index {
	return c.index
}

func (c *Catalog) Insert(bid bidtree.Bid) error {
	if err := c.index.Insert(bid); err != nil {
		return err
	}
	key, _ := canonicalKey(bid.ID)
	c.filter.AddString(key)
	return nil
}

// Load reads a bid CSV into the catalog. Bids already present are kept.
func (c *Catalog) Load(csvPath string, opts LoadOptions) (LoadReport, error) {
	c.hits.Flush()
	return loadBids(csvPath, c, opts)
}

// Find looks a bid up by ID.
func (c *Catalog) Find(id string) (bidtree.Bid, bool) {
	key, ok := canonicalKey(id)
	if !ok {
		return bidtree.Bid{}, false
	}
	if !c.filter.TestString(key) {
		log.WithField("id", id).Debug("bloom filter rules the bid out")
		return bidtree.Bid{}, false
	}
	if bid, ok := GetCachedBid(c.hits, key); ok {
		return bid, true
	}

	bid, ok := c.index.Search(id)
	if ok {
		CacheBid(c.hits, key, bid)
	}
	return bid, ok
}

// Remove deletes a bid and reports whether it was there. The bloom filter
// keeps the ID; a later Find falls through to the tree.
func (c *Catalog) Remove(id string) bool {
	if _, ok := c.Find(id); !ok {
		return false
	}
	key, _ := canonicalKey(id)
	c.hits.Delete(key)
	c.index.Remove(id)
	return true
}

func (c *Catalog) Walk(order bidtree.Order) iter.Seq[bidtree.Bid] {
	return c.index.Walk(order)
}

// Reset empties the catalog and returns how many bids were released.
func (c *Catalog) Reset() int {
	c.hits.Flush()
	c.filter.ClearAll()
	return c.index.Clear()
}
