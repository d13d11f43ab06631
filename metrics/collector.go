// Package metrics exposes the counters of a fallible.Instantiator to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Pure-Company/fallible"
)

// Collector is a prometheus.Collector reading an Instantiator's Stats on
// every scrape.
//
// Example:
//
//	prometheus.MustRegister(metrics.NewCollector(fallible.Default(), "myapp"))
type Collector struct {
	inst *fallible.Instantiator

	resolutions          *prometheus.Desc
	resolutionFailures   *prometheus.Desc
	cacheHits            *prometheus.Desc
	constructions        *prometheus.Desc
	constructionFailures *prometheus.Desc
}

// NewCollector creates a Collector for inst. An empty namespace leaves the
// metric names unprefixed.
func NewCollector(inst *fallible.Instantiator, namespace string) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, nil)
	}
	return &Collector{
		inst: inst,
		resolutions: desc("failure_type_resolutions_total",
			"Total number of failure type resolutions attempted"),
		resolutionFailures: desc("failure_type_resolution_failures_total",
			"Total number of failure types that could not be resolved"),
		cacheHits: desc("failure_type_cache_hits_total",
			"Total number of constructions served by a cached strategy"),
		constructions: desc("failure_constructions_total",
			"Total number of failures successfully constructed"),
		constructionFailures: desc("failure_construction_failures_total",
			"Total number of failure constructions that failed"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.resolutions
	ch <- c.resolutionFailures
	ch <- c.cacheHits
	ch <- c.constructions
	ch <- c.constructionFailures
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.inst.Stats()
	counter := func(d *prometheus.Desc, v int64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	counter(c.resolutions, stats.Resolutions)
	counter(c.resolutionFailures, stats.ResolutionFailures)
	counter(c.cacheHits, stats.CacheHits)
	counter(c.constructions, stats.Constructions)
	counter(c.constructionFailures, stats.ConstructionFailures)
}
