package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSourceOutcomeJSON(t *testing.T) {
	ok, err := json.Marshal(SourceResult(12, 3))
	if err != nil {
		t.Fatalf("Marshal(SourceResult) error = %v", err)
	}
	if got, want := string(ok), `{"scraped":12,"added":3}`; got != want {
		t.Errorf("SourceResult JSON = %s, want %s", got, want)
	}

	fail, err := json.Marshal(SourceFailure(errors.New("connection timed out")))
	if err != nil {
		t.Fatalf("Marshal(SourceFailure) error = %v", err)
	}
	if got, want := string(fail), `{"error":"connection timed out"}`; got != want {
		t.Errorf("SourceFailure JSON = %s, want %s", got, want)
	}
}
