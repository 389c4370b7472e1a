package scraper

import (
	"regexp"
	"strings"

	"endofind-updater/models"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Source scrapes one public directory and returns raw surgeon candidates.
// Implementations skip entries they cannot parse rather than failing the
// whole scrape; an error means the directory itself was unreachable.
type Source interface {
	Name() string
	Scrape() ([]models.Candidate, error)
}

var (
	// fullNameRe matches a doctor title followed by at least two
	// capitalized name words, e.g. "Dr. Jane Smith".
	fullNameRe = regexp.MustCompile(`Dr\. [A-Z][a-z]+(?: [A-Z][a-z]+)+`)

	// phoneRe matches US phone numbers like (503) 555-0142 or 512-555-0100.
	phoneRe = regexp.MustCompile(`\(?\d{3}\)?[\s.-]\d{3}[\s.-]\d{4}`)

	// cityStateRe matches "City, ST" with a two-letter state code.
	cityStateRe = regexp.MustCompile(`([A-Z][a-z]+(?: [A-Z][a-z]+)*),\s*([A-Z]{2})`)

	// cityRegionRe also accepts spelled-out regions, e.g. "Toronto, Ontario".
	cityRegionRe = regexp.MustCompile(`([A-Z][a-z]+(?: [A-Z][a-z]+)*),\s*([A-Z]{2}|\w+)`)
)

// extractName returns the first full doctor name in text, or "".
func extractName(text string) string {
	return fullNameRe.FindString(text)
}

// extractPhone returns the first phone number in text, or "".
func extractPhone(text string) string {
	return phoneRe.FindString(text)
}

// extractLocation splits the first "City, State" occurrence in text.
func extractLocation(text string, re *regexp.Regexp) (city, state string) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}

// hasTextMention reports whether any direct text node of sel's first
// element matches re. Text inside child elements does not count, so a
// container is only matched when the mention is its own.
func hasTextMention(sel *goquery.Selection, re *regexp.Regexp) bool {
	if len(sel.Nodes) == 0 {
		return false
	}
	for c := sel.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && re.MatchString(c.Data) {
			return true
		}
	}
	return false
}

// joinedText flattens sel into a single line: every text fragment
// trimmed and joined with one space, mirroring how the directories
// scatter a record across nested tags.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		var walk func(*html.Node)
		walk = func(n *html.Node) {
			if n.Type == html.TextNode {
				if t := strings.TrimSpace(n.Data); t != "" {
					parts = append(parts, t)
				}
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(node)
	}
	return strings.Join(parts, " ")
}
