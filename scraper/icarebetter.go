package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"endofind-updater/fetcher"
	"endofind-updater/models"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	icareBetterBase = "https://icarebetter.com/endometriosis/specialist"

	// icareBetterCards lists the card containers seen on the site so far.
	// Update the selector if the site HTML changes.
	icareBetterCards = `div.doctor-card, article.doctor, div.specialist-card, div[class*="doctor"]`
	icareBetterNext  = `a.next, a[rel="next"], .pagination .next`
)

// locationClassRe matches class names the directory uses for location text.
var locationClassRe = regexp.MustCompile(`(?i)location|city|state`)

// ICareBetter scrapes the iCareBetter vetted excision surgeon directory,
// paginated at /endometriosis/specialist/page/N/.
type ICareBetter struct {
	fetcher  fetcher.Fetcher
	logger   *zap.Logger
	baseURL  string
	maxPages int
}

func NewICareBetter(f fetcher.Fetcher, logger *zap.Logger, maxPages int) *ICareBetter {
	return &ICareBetter{
		fetcher:  f,
		logger:   logger,
		baseURL:  icareBetterBase,
		maxPages: maxPages,
	}
}

// Name returns the source tag used for summaries and merge attribution.
func (s *ICareBetter) Name() string {
	return "iCareBetter"
}

// Scrape walks directory pages until no next link is advertised, no cards
// are found, or the page cap is reached. A failure on the first page fails
// the scrape; a failure on a later page keeps the pages already collected.
func (s *ICareBetter) Scrape() ([]models.Candidate, error) {
	var candidates []models.Candidate

	for page := 1; page <= s.maxPages; page++ {
		url := s.pageURL(page)
		s.logger.Info("fetching directory page",
			zap.String("source", s.Name()),
			zap.Int("page", page),
			zap.String("url", url))

		doc, err := s.fetcher.Fetch(url)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("failed to scrape %s: %w", s.Name(), err)
			}
			s.logger.Warn("page fetch failed, keeping earlier pages",
				zap.Int("page", page),
				zap.Error(err))
			break
		}

		cards := s.findCards(doc)
		if cards.Length() == 0 {
			s.logger.Info("no cards found, stopping", zap.Int("page", page))
			break
		}

		cards.Each(func(_ int, card *goquery.Selection) {
			if c, ok := s.extractCard(card); ok {
				candidates = append(candidates, c)
			}
		})

		if doc.Find(icareBetterNext).Length() == 0 {
			break
		}
	}

	s.logger.Info("scrape complete",
		zap.String("source", s.Name()),
		zap.Int("entries", len(candidates)))
	return candidates, nil
}

func (s *ICareBetter) pageURL(page int) string {
	if page == 1 {
		return s.baseURL
	}
	return fmt.Sprintf("%s/page/%d/", s.baseURL, page)
}

// findCards tries the known card containers first and falls back to
// headings that start with a doctor title when the markup has changed.
func (s *ICareBetter) findCards(doc *goquery.Document) *goquery.Selection {
	cards := doc.Find(icareBetterCards)
	if cards.Length() > 0 {
		return cards
	}
	return doc.Find("h2, h3, h4").FilterFunction(func(_ int, h *goquery.Selection) bool {
		return strings.HasPrefix(strings.TrimSpace(h.Text()), "Dr.")
	}).Parent()
}

// extractCard pulls a candidate out of one card. Cards without a titled
// doctor name are skipped.
func (s *ICareBetter) extractCard(card *goquery.Selection) (models.Candidate, bool) {
	name := strings.TrimSpace(card.Find("h2, h3, h4, a").First().Text())
	if !strings.HasPrefix(name, "Dr.") {
		return models.Candidate{}, false
	}

	location := s.findLocationText(card)
	city, state := extractLocation(location, cityStateRe)

	profile, _ := card.Find("a[href]").First().Attr("href")

	return models.Candidate{
		Name:       name,
		City:       city,
		State:      state,
		Location:   location,
		ProfileURL: profile,
		Source:     s.Name(),
		Specs:      []string{"Excision Surgery"},
	}, true
}

// findLocationText returns text from the first element whose class hints
// at a location, e.g. <span class="doctor-location">.
func (s *ICareBetter) findLocationText(card *goquery.Selection) string {
	var location string
	card.Find("[class]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		class, _ := el.Attr("class")
		if locationClassRe.MatchString(class) {
			location = strings.TrimSpace(el.Text())
			return false
		}
		return true
	})
	return location
}
