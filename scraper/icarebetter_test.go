package scraper

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"endofind-updater/models"

	"go.uber.org/zap"
)

const icbCardsPage = `<html><body>
<div class="doctor-card">
  <h2>Dr. Jane Smith</h2>
  <span class="location">Portland, OR</span>
  <a href="https://icarebetter.com/doctor/jane-smith">Profile</a>
</div>
<div class="doctor-card">
  <h3>Dr. John Doe</h3>
  <a href="/doctor/john-doe">View profile</a>
</div>
<div class="doctor-card">
  <p>Coming soon</p>
</div>
<div class="doctor-card">
  <h3>Meet Our Team</h3>
</div>
</body></html>`

const icbFallbackPage = `<html><body>
<section>
  <h2>Dr. Amy Lee</h2>
  <p>Specialist in excision surgery.</p>
</section>
<section>
  <h2>Our Mission</h2>
  <p>Compassionate endometriosis care.</p>
</section>
</body></html>`

const icbCardWithNext = `<html><body>
<div class="doctor-card"><h2>Dr. Jane Smith</h2></div>
<a class="next" href="/page/2/">Next</a>
</body></html>`

func TestICareBetterScrapeCards(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{icareBetterBase: icbCardsPage}}
	s := NewICareBetter(f, zap.NewNop(), 40)

	got, err := s.Scrape()
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	want := []models.Candidate{
		{
			Name:       "Dr. Jane Smith",
			City:       "Portland",
			State:      "OR",
			Location:   "Portland, OR",
			ProfileURL: "https://icarebetter.com/doctor/jane-smith",
			Source:     "iCareBetter",
			Specs:      []string{"Excision Surgery"},
		},
		{
			Name:       "Dr. John Doe",
			ProfileURL: "/doctor/john-doe",
			Source:     "iCareBetter",
			Specs:      []string{"Excision Surgery"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scrape() = %+v, want %+v", got, want)
	}
	if len(f.calls) != 1 {
		t.Errorf("Scrape() fetched %d pages, want 1 when no next link", len(f.calls))
	}
}

func TestICareBetterScrapeHeadingFallback(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{icareBetterBase: icbFallbackPage}}
	s := NewICareBetter(f, zap.NewNop(), 40)

	got, err := s.Scrape()
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Scrape() returned %d candidates, want 1", len(got))
	}
	if got[0].Name != "Dr. Amy Lee" {
		t.Errorf("Scrape()[0].Name = %q, want %q", got[0].Name, "Dr. Amy Lee")
	}
}

func TestICareBetterScrapePagination(t *testing.T) {
	page2 := icareBetterBase + "/page/2/"
	f := &stubFetcher{pages: map[string]string{
		icareBetterBase: icbCardWithNext,
		page2: `<html><body>
<div class="doctor-card"><h2>Dr. John Doe</h2></div>
</body></html>`,
	}}
	s := NewICareBetter(f, zap.NewNop(), 40)

	got, err := s.Scrape()
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	wantCalls := []string{icareBetterBase, page2}
	if !reflect.DeepEqual(f.calls, wantCalls) {
		t.Errorf("Scrape() fetched %v, want %v", f.calls, wantCalls)
	}

	var names []string
	for _, c := range got {
		names = append(names, c.Name)
	}
	wantNames := []string{"Dr. Jane Smith", "Dr. John Doe"}
	if !reflect.DeepEqual(names, wantNames) {
		t.Errorf("Scrape() names = %v, want %v", names, wantNames)
	}
}

func TestICareBetterScrapePageCap(t *testing.T) {
	page := `<html><body>
<div class="doctor-card"><h2>Dr. Jane Smith</h2></div>
<a rel="next" href="#">Next</a>
</body></html>`

	pages := map[string]string{icareBetterBase: page}
	for n := 2; n <= 5; n++ {
		pages[fmt.Sprintf("%s/page/%d/", icareBetterBase, n)] = page
	}
	f := &stubFetcher{pages: pages}
	s := NewICareBetter(f, zap.NewNop(), 3)

	got, err := s.Scrape()
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(f.calls) != 3 {
		t.Errorf("Scrape() fetched %d pages, want 3 with page cap 3", len(f.calls))
	}
	if len(got) != 3 {
		t.Errorf("Scrape() returned %d candidates, want 3", len(got))
	}
}

func TestICareBetterScrapeFirstPageFailure(t *testing.T) {
	f := &stubFetcher{errs: map[string]error{icareBetterBase: errors.New("connection refused")}}
	s := NewICareBetter(f, zap.NewNop(), 40)

	if _, err := s.Scrape(); err == nil {
		t.Fatal("Scrape() expected error when the first page is unreachable, got nil")
	}
}

func TestICareBetterScrapeLaterPageFailureKeepsPartial(t *testing.T) {
	page2 := icareBetterBase + "/page/2/"
	f := &stubFetcher{
		pages: map[string]string{icareBetterBase: icbCardWithNext},
		errs:  map[string]error{page2: errors.New("timeout")},
	}
	s := NewICareBetter(f, zap.NewNop(), 40)

	got, err := s.Scrape()
	if err != nil {
		t.Fatalf("Scrape() error = %v, want partial results", err)
	}
	if len(got) != 1 {
		t.Errorf("Scrape() returned %d candidates, want 1 from the first page", len(got))
	}
}

func TestICareBetterScrapeStopsWhenNoCards(t *testing.T) {
	page2 := icareBetterBase + "/page/2/"
	f := &stubFetcher{pages: map[string]string{
		icareBetterBase: icbCardWithNext,
		page2: `<html><body>
<p>No more specialists.</p>
<a class="next" href="#">Next</a>
</body></html>`,
	}}
	s := NewICareBetter(f, zap.NewNop(), 40)

	got, err := s.Scrape()
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Scrape() returned %d candidates, want 1", len(got))
	}
	if len(f.calls) != 2 {
		t.Errorf("Scrape() fetched %d pages, want 2", len(f.calls))
	}
}
