package fetcher

import (
	"bytes"
	"fmt"

	"endofind-updater/config"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// CollyFetcher implements the Fetcher interface using colly. One instance is
// shared by every source so the politeness delay applies across the whole
// run, not per source.
type CollyFetcher struct {
	collector *colly.Collector
	logger    *zap.Logger

	// Filled by the OnResponse handler during a Fetch call. The collector
	// runs synchronously and the run is single-threaded, so one slot is
	// enough.
	doc      *goquery.Document
	parseErr error
}

// NewCollyFetcher creates a collector carrying the client identity, the
// per-request timeout and the inter-request delay from the config.
func NewCollyFetcher(cfg *config.Config, logger *zap.Logger) *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(cfg.RequestTimeout())

	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       cfg.RequestDelay(),
	})

	f := &CollyFetcher{
		collector: c,
		logger:    logger,
	}

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml")
	})

	c.OnResponse(func(r *colly.Response) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			f.parseErr = fmt.Errorf("failed to parse %s: %w", r.Request.URL, err)
			return
		}
		f.doc = doc
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.Warn("fetch failed",
			zap.String("url", r.Request.URL.String()),
			zap.Error(err))
	})

	return f
}

// Fetch retrieves and parses a single page.
func (f *CollyFetcher) Fetch(url string) (*goquery.Document, error) {
	f.doc = nil
	f.parseErr = nil

	if err := f.collector.Visit(url); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	if f.doc == nil {
		return nil, fmt.Errorf("no response received from %s", url)
	}
	return f.doc, nil
}
