package models

// Surgeon is one canonical directory record as persisted in
// data/surgeons.json. Records created by the updater always carry
// Verified=false until a human reviews them; the updater itself never
// modifies or deletes a record once it exists.
type Surgeon struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	FirstName string   `json:"fn"`
	LastName  string   `json:"ln"`
	Creds     []string `json:"creds"`
	Org       string   `json:"org"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Phone     *string  `json:"phone"`
	Web       string   `json:"web"`
	Specs     []string `json:"specs"`
	Ins       string   `json:"ins"`
	Accepting bool     `json:"accepting"`
	Notes     string   `json:"notes"`
	Stars     int      `json:"stars"`
	Source    string   `json:"source"`
	Verified  bool     `json:"verified"`
}

// Candidate is a partial record extracted from one source page. It carries
// whatever that source happened to expose; missing fields stay empty and the
// merge step fills in sentinels. Candidates are never persisted.
type Candidate struct {
	Name       string
	City       string
	State      string
	Location   string // raw location fragment when the source exposes one
	Phone      string
	Web        string
	ProfileURL string
	Source     string
	Specs      []string
	Notes      string
}
