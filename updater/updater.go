package updater

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"endofind-updater/merge"
	"endofind-updater/models"
	"endofind-updater/scraper"
	"endofind-updater/store"

	"go.uber.org/zap"
)

// Updater runs one full update: load the current list, scrape every
// source, merge, sort, and persist the result with a run summary.
type Updater struct {
	store   *store.Store
	merger  *merge.Merger
	sources []scraper.Source
	logger  *zap.Logger
}

func New(st *store.Store, m *merge.Merger, sources []scraper.Source, logger *zap.Logger) *Updater {
	return &Updater{
		store:   st,
		merger:  m,
		sources: sources,
		logger:  logger,
	}
}

// Run executes the monthly update. A failing source is recorded in the
// summary and skipped; load or persistence failures abort the run.
func (u *Updater) Run() (models.RunSummary, error) {
	surgeons, err := u.store.Load()
	if err != nil {
		return models.RunSummary{}, fmt.Errorf("failed to load existing data: %w", err)
	}
	if len(surgeons) == 0 {
		u.logger.Info("no existing data, starting fresh")
	} else {
		u.logger.Info("loaded existing surgeons", zap.Int("count", len(surgeons)))
	}

	totalAdded := 0
	outcomes := make(map[string]models.SourceOutcome, len(u.sources))

	for _, src := range u.sources {
		u.logger.Info("scraping source", zap.String("source", src.Name()))

		candidates, err := src.Scrape()
		if err != nil {
			u.logger.Error("source failed",
				zap.String("source", src.Name()),
				zap.Error(err))
			outcomes[src.Name()] = models.SourceFailure(err)
			continue
		}

		var added int
		surgeons, added = u.merger.Merge(surgeons, candidates)
		totalAdded += added
		outcomes[src.Name()] = models.SourceResult(len(candidates), added)
		u.logger.Info("source merged",
			zap.String("source", src.Name()),
			zap.Int("scraped", len(candidates)),
			zap.Int("added", added))
	}

	sortSurgeons(surgeons)

	if err := u.store.Save(surgeons); err != nil {
		return models.RunSummary{}, err
	}
	u.logger.Info("saved surgeon list", zap.Int("total", len(surgeons)))

	summary := models.RunSummary{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		TotalSurgeons: len(surgeons),
		AddedThisRun:  totalAdded,
		Sources:       outcomes,
	}
	if err := u.store.AppendRunSummary(summary); err != nil {
		return summary, err
	}

	u.logger.Info("update complete", zap.Int("added", totalAdded))
	u.logger.Info("new entries are marked unverified, review before promoting")
	return summary, nil
}

// sortSurgeons orders the list by state, then case-insensitive last name.
func sortSurgeons(surgeons []models.Surgeon) {
	sort.SliceStable(surgeons, func(i, j int) bool {
		if surgeons[i].State != surgeons[j].State {
			return surgeons[i].State < surgeons[j].State
		}
		return strings.ToLower(surgeons[i].LastName) < strings.ToLower(surgeons[j].LastName)
	})
}
