package app

import "time"

// Record is one spreadsheet row keyed by the text of its first column.
type Record struct {
	Title     string `json:"title"`
	SheetName string `json:"sheet_name"`
	Row       Row    `json:"row"`
}

// Catalog is an immutable snapshot of the loaded collection. Every committed
// load produces a new snapshot with a higher Generation.
type Catalog struct {
	FileName   string    `json:"file_name"`
	Records    []Record  `json:"-"`
	LoadedAt   time.Time `json:"loaded_at"`
	Generation uint64    `json:"generation"`
}

func (this *Catalog) Len() int {
	if this == nil {
		return 0
	}
	return len(this.Records)
}

type CatalogStatus struct {
	FileName    string    `json:"file_name"`
	RecordCount int       `json:"record_count"`
	LoadedAt    time.Time `json:"loaded_at"`
	Generation  uint64    `json:"generation"`
	Warning     string    `json:"warning,omitempty"`
}

// Workbook is a parsed multi-sheet document. Rows returns the rows of one
// sheet top to bottom; a nil cell is absent.
type Workbook interface {
	SheetNames() []string
	Rows(sheet string) ([][]any, error)
}

type ExtractOptions struct {
	// HeaderRow treats the first row of each sheet as column labels and
	// produces NamedRow records for the rows below it.
	HeaderRow bool
}

// SearchResult is the outcome of one search. Insight belongs to Matches[0].
type SearchResult struct {
	Query       string   `json:"query"`
	Found       bool     `json:"found"`
	Matches     []Record `json:"matches,omitempty"`
	Insight     string   `json:"insight,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Seq         uint64   `json:"seq"`
	Generation  uint64   `json:"generation"`
}

type SearchState string

const (
	SearchStateIdle      SearchState = "idle"
	SearchStateSearching SearchState = "searching"
	SearchStateFound     SearchState = "found"
	SearchStateNotFound  SearchState = "not-found"
)
