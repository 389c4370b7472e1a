package fetcher

import "github.com/PuerkitoBio/goquery"

// Fetcher resolves a URL to a parsed document. Implementations identify
// themselves with the configured client identity, honor a bounded per-request
// timeout, and rate-limit outbound requests. Network errors, timeouts and
// non-2xx statuses all come back as errors; there is no retry.
type Fetcher interface {
	Fetch(url string) (*goquery.Document, error)
}
