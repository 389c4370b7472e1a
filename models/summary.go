package models

// RunSummary is one entry in the bounded update history kept in
// data/update_log.json.
type RunSummary struct {
	Timestamp     string                   `json:"timestamp"`
	TotalSurgeons int                      `json:"total_surgeons"`
	AddedThisRun  int                      `json:"added_this_run"`
	Sources       map[string]SourceOutcome `json:"sources"`
}

// SourceOutcome records what one source contributed to a run. Successful
// sources serialize their counts, failed ones only the error message.
type SourceOutcome struct {
	Scraped *int   `json:"scraped,omitempty"`
	Added   *int   `json:"added,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SourceResult builds the outcome for a source that was scraped.
func SourceResult(scraped, added int) SourceOutcome {
	return SourceOutcome{Scraped: &scraped, Added: &added}
}

// SourceFailure builds the outcome for a source that could not be scraped.
func SourceFailure(err error) SourceOutcome {
	return SourceOutcome{Error: err.Error()}
}
