package scraper

import (
	"fmt"
	"regexp"

	"endofind-updater/fetcher"
	"endofind-updater/models"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

const (
	pelvicRehabURL    = "https://pelvicrehabilitation.com/nationwide-endometriosis-excision-surgeons"
	pelvicRehabWeb    = "https://pelvicrehabilitation.com/request-an-appointment/"
	pelvicRehabSource = "Pelvic Rehabilitation Medicine"
	pelvicRehabNotes  = "Fellowship-trained excision surgeon listed by Pelvic Rehabilitation Medicine."
)

var drTitledRe = regexp.MustCompile(`Dr\. [A-Z]`)

// PelvicRehab scrapes the Pelvic Rehabilitation Medicine static page of
// fellowship-trained excision surgeons. The page has no record markup, so
// every doctor mention in the text is treated as an entry.
type PelvicRehab struct {
	fetcher fetcher.Fetcher
	logger  *zap.Logger
	url     string
}

func NewPelvicRehab(f fetcher.Fetcher, logger *zap.Logger) *PelvicRehab {
	return &PelvicRehab{fetcher: f, logger: logger, url: pelvicRehabURL}
}

// Name returns the source tag used for summaries. Candidates carry the
// full organization name instead.
func (s *PelvicRehab) Name() string {
	return "Pelvic Rehab"
}

func (s *PelvicRehab) Scrape() ([]models.Candidate, error) {
	s.logger.Info("fetching directory",
		zap.String("source", s.Name()),
		zap.String("url", s.url))

	doc, err := s.fetcher.Fetch(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape %s: %w", s.Name(), err)
	}

	var candidates []models.Candidate
	doc.Find("*").Each(func(_ int, el *goquery.Selection) {
		for c := el.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.TextNode || !drTitledRe.MatchString(c.Data) {
				continue
			}
			name := extractName(c.Data)
			if name == "" {
				continue
			}
			city, state := extractLocation(joinedText(el), cityRegionRe)
			candidates = append(candidates, models.Candidate{
				Name:   name,
				City:   city,
				State:  state,
				Web:    pelvicRehabWeb,
				Source: pelvicRehabSource,
				Specs:  []string{"Excision Surgery"},
				Notes:  pelvicRehabNotes,
			})
		}
	})

	s.logger.Info("scrape complete",
		zap.String("source", s.Name()),
		zap.Int("entries", len(candidates)))
	return candidates, nil
}
