package dtos

import "github.com/init-pkg/cinecheck/domain/app"

type SearchRequest struct {
	Query string `form:"query" json:"query" validate:"required,max=256"`
}

type MatchView struct {
	Title     string      `json:"title"`
	SheetName string      `json:"sheet_name"`
	RowKind   app.RowKind `json:"row_kind"`
	Cells     []app.Cell  `json:"cells"`
	Insight   string      `json:"insight,omitempty"`
}

type SearchResponse struct {
	Query       string      `json:"query"`
	Found       bool        `json:"found"`
	Matches     []MatchView `json:"matches,omitempty"`
	Suggestions []string    `json:"suggestions"`
	Seq         uint64      `json:"seq"`
}

type SearchStateResponse struct {
	State app.SearchState `json:"state"`
}

// NewSearchResponse attaches the insight to the first match only.
func NewSearchResponse(r *app.SearchResult) SearchResponse {
	res := SearchResponse{
		Query:       r.Query,
		Found:       r.Found,
		Suggestions: []string{},
		Seq:         r.Seq,
	}
	for i, m := range r.Matches {
		view := MatchView{
			Title:     m.Title,
			SheetName: m.SheetName,
			Cells:     []app.Cell{},
		}
		if m.Row != nil {
			view.RowKind = m.Row.Kind()
			view.Cells = m.Row.Cells()
		}
		if i == 0 {
			view.Insight = r.Insight
		}
		res.Matches = append(res.Matches, view)
	}
	if !r.Found && r.Suggestions != nil {
		res.Suggestions = r.Suggestions
	}
	return res
}
