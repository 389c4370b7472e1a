package merge

import (
	"fmt"
	"strings"

	"endofind-updater/models"
	"endofind-updater/names"

	"go.uber.org/zap"
)

// Merger folds scraped candidates into the surgeon list. Existing records
// are never modified; a candidate whose normalized name is already present
// is dropped, so the first source to list a surgeon wins.
type Merger struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Merger {
	return &Merger{logger: logger}
}

// Merge appends new records built from candidates and returns the grown
// list with the number added. Candidates without a "Dr." title are skipped.
func (m *Merger) Merge(surgeons []models.Surgeon, candidates []models.Candidate) ([]models.Surgeon, int) {
	seen := make(map[string]bool, len(surgeons))
	for _, s := range surgeons {
		seen[names.Normalize(s.Name)] = true
	}

	added := 0
	for _, c := range candidates {
		name := strings.TrimSpace(c.Name)
		if name == "" || !strings.HasPrefix(name, "Dr.") {
			continue
		}
		key := names.Normalize(name)
		if seen[key] {
			continue
		}

		surgeons = append(surgeons, m.buildRecord(name, c))
		seen[key] = true
		added++
		m.logger.Info("added surgeon",
			zap.String("name", name),
			zap.String("source", c.Source))
	}

	return surgeons, added
}

// buildRecord synthesizes a full record from a partial candidate. Fields
// the sources cannot provide get "Verify directly" sentinels and the
// record is flagged unverified for manual review.
func (m *Merger) buildRecord(name string, c models.Candidate) models.Surgeon {
	first, last := names.Parts(name)

	var phone *string
	if c.Phone != "" {
		phone = &c.Phone
	}

	web := c.Web
	if web == "" {
		web = c.ProfileURL
	}

	specs := c.Specs
	if len(specs) == 0 {
		specs = []string{"Excision Surgery"}
	}

	notes := c.Notes
	if notes == "" {
		via := c.Source
		if via == "" {
			via = "monthly update"
		}
		notes = fmt.Sprintf("Added via %s. Verify details directly.", via)
	}

	source := c.Source
	if source == "" {
		source = "Monthly Update"
	}

	return models.Surgeon{
		ID:        names.MakeID(name),
		Name:      name,
		FirstName: first,
		LastName:  last,
		Creds:     []string{"MD"},
		Org:       "Verify directly",
		City:      c.City,
		State:     c.State,
		Phone:     phone,
		Web:       web,
		Specs:     specs,
		Ins:       "Verify directly",
		Accepting: true,
		Notes:     notes,
		Stars:     4,
		Source:    source,
		Verified:  false,
	}
}
