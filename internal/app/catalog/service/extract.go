package catalog_service

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/init-pkg/cinecheck/domain/app"
)

// Extract flattens every sheet of wb into records, in sheet order and then row
// order. Rows whose first cell is absent or blank after trimming are skipped.
func Extract(wb app.Workbook, opts app.ExtractOptions) ([]app.Record, error) {
	records := make([]app.Record, 0)

	for _, sheet := range wb.SheetNames() {
		rows, err := wb.Rows(sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", app.ErrCorruptWorkbook, sheet, err)
		}

		var labels *columnLabels
		if opts.HeaderRow && len(rows) > 0 {
			labels = newColumnLabels(rows[0])
			rows = rows[1:]
		}

		for _, row := range rows {
			title, ok := rowTitle(row)
			if !ok {
				continue
			}

			record := app.Record{Title: title, SheetName: sheet}
			if labels != nil {
				record.Row = labels.namedRow(row)
			} else {
				record.Row = app.IndexedRow(slices.Clone(row))
			}
			records = append(records, record)
		}
	}

	return records, nil
}

func rowTitle(row []any) (string, bool) {
	if len(row) == 0 {
		return "", false
	}
	text, ok := app.CellText(row[0])
	if !ok {
		return "", false
	}
	title := strings.TrimSpace(text)
	return title, title != ""
}

// columnLabels names the columns of one sheet from its header row.
type columnLabels struct {
	names []string
	seen  map[string]int
}

func newColumnLabels(header []any) *columnLabels {
	l := &columnLabels{seen: make(map[string]int, len(header))}
	for i, v := range header {
		text, _ := app.CellText(v)
		text = strings.TrimSpace(text)
		if text == "" {
			text = app.ColumnLabel(i)
		}
		l.names = append(l.names, l.unique(text))
	}
	return l
}

func (l *columnLabels) unique(base string) string {
	n, dup := l.seen[base]
	l.seen[base] = n + 1
	if !dup {
		return base
	}
	name := base + "_" + strconv.Itoa(n)
	for {
		if _, taken := l.seen[name]; !taken {
			l.seen[name] = 1
			return name
		}
		n++
		name = base + "_" + strconv.Itoa(n)
	}
}

func (l *columnLabels) label(i int) string {
	for len(l.names) <= i {
		l.names = append(l.names, l.unique(app.ColumnLabel(len(l.names))))
	}
	return l.names[i]
}

// Absent cells are left out of named rows.
func (l *columnLabels) namedRow(row []any) app.NamedRow {
	named := app.NewNamedRow()
	for i, v := range row {
		label := l.label(i)
		if v == nil {
			continue
		}
		named.Set(label, v)
	}
	return named
}
