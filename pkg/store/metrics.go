// Copyright (c) 2026, the modelver authors.
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

package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Directory scan metrics
	scanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "modelver_store_scan_duration_seconds",
			Help:    "Duration of store directory scans in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	// History cache metrics
	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "modelver_store_cache_hits_total",
			Help: "Total number of history reads served from cache",
		},
	)
	cacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "modelver_store_cache_misses_total",
			Help: "Total number of history reads that scanned the directory",
		},
	)

	// Mutation metrics
	versionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "modelver_store_versions_created_total",
			Help: "Total number of version directories created",
		},
	)
)
