package scraper

import (
	"fmt"
	"regexp"

	"endofind-updater/fetcher"
	"endofind-updater/models"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	endofEndoURL     = "https://endofendoproject.org/physician-directory"
	endofEndoEntries = `div.physician, div.doctor, div[class*="physician"], div[class*="doctor"]`

	// fallbackEntryCap bounds the generic scan so a markup change on the
	// site cannot flood a run with noise.
	fallbackEntryCap = 100
)

// drMentionRe spots elements that mention a doctor at all; the full name
// pattern is applied per entry afterwards.
var drMentionRe = regexp.MustCompile(`Dr\. \w`)

// EndofEndo scrapes the EndofEndo Project physician directory, a single
// page of patient-rated excision specialists.
type EndofEndo struct {
	fetcher fetcher.Fetcher
	logger  *zap.Logger
	url     string
}

func NewEndofEndo(f fetcher.Fetcher, logger *zap.Logger) *EndofEndo {
	return &EndofEndo{fetcher: f, logger: logger, url: endofEndoURL}
}

// Name returns the source tag used for summaries and merge attribution.
func (s *EndofEndo) Name() string {
	return "EndofEndo"
}

func (s *EndofEndo) Scrape() ([]models.Candidate, error) {
	s.logger.Info("fetching directory",
		zap.String("source", s.Name()),
		zap.String("url", s.url))

	doc, err := s.fetcher.Fetch(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape %s: %w", s.Name(), err)
	}

	var candidates []models.Candidate
	s.findEntries(doc).Each(func(_ int, entry *goquery.Selection) {
		if c, ok := s.extractEntry(entry); ok {
			candidates = append(candidates, c)
		}
	})

	s.logger.Info("scrape complete",
		zap.String("source", s.Name()),
		zap.Int("entries", len(candidates)))
	return candidates, nil
}

// findEntries tries the known entry containers first and falls back to any
// element with a doctor mention in its own text, capped at fallbackEntryCap.
func (s *EndofEndo) findEntries(doc *goquery.Document) *goquery.Selection {
	entries := doc.Find(endofEndoEntries)
	if entries.Length() > 0 {
		return entries
	}
	entries = doc.Find("*").FilterFunction(func(_ int, el *goquery.Selection) bool {
		return hasTextMention(el, drMentionRe)
	})
	if entries.Length() > fallbackEntryCap {
		entries = entries.Slice(0, fallbackEntryCap)
	}
	return entries
}

// extractEntry parses one entry's flattened text. Entries without a full
// doctor name are skipped.
func (s *EndofEndo) extractEntry(entry *goquery.Selection) (models.Candidate, bool) {
	text := joinedText(entry)

	name := extractName(text)
	if name == "" {
		return models.Candidate{}, false
	}

	city, state := extractLocation(text, cityStateRe)
	web, _ := entry.Find(`a[href*="http"]`).First().Attr("href")

	return models.Candidate{
		Name:   name,
		City:   city,
		State:  state,
		Phone:  extractPhone(text),
		Web:    web,
		Source: s.Name(),
		Specs:  []string{"Excision Surgery"},
	}, true
}
