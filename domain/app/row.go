package app

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"github.com/xuri/excelize/v2"
)

type RowKind string

const (
	RowKindIndexed RowKind = "indexed"
	RowKindNamed   RowKind = "named"
)

// Placeholder rendered for absent cell values.
const EmptyCellText = "-"

// Cell is one labelled value of a row, ready for display.
type Cell struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Row is the original content of a spreadsheet row. It is either an
// IndexedRow or a NamedRow; consumers branch on Kind.
type Row interface {
	Kind() RowKind
	Len() int
	Cells() []Cell
	json.Marshaler
}

// IndexedRow keeps the cell values in column order. A nil value is an absent cell.
type IndexedRow []any

var _ Row = IndexedRow(nil)

func (this IndexedRow) Kind() RowKind { return RowKindIndexed }

func (this IndexedRow) Len() int { return len(this) }

func (this IndexedRow) Cells() []Cell {
	cells := make([]Cell, 0, len(this))
	for i, v := range this {
		cells = append(cells, Cell{Label: ColumnLabel(i), Value: displayText(v)})
	}
	return cells
}

func (this IndexedRow) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any(this))
}

// NamedRow maps column labels to values, keeping the column order of the source.
type NamedRow struct {
	m *orderedmap.OrderedMap[string, any]
}

var _ Row = NamedRow{}

func NewNamedRow() NamedRow {
	return NamedRow{orderedmap.New[string, any]()}
}

func (this NamedRow) Set(label string, value any) {
	this.m.Set(label, value)
}

func (this NamedRow) Get(label string) (any, bool) {
	if this.m == nil {
		return nil, false
	}
	return this.m.Get(label)
}

func (this NamedRow) Kind() RowKind { return RowKindNamed }

func (this NamedRow) Len() int {
	if this.m == nil {
		return 0
	}
	return this.m.Len()
}

func (this NamedRow) Cells() []Cell {
	cells := make([]Cell, 0, this.Len())
	if this.m == nil {
		return cells
	}
	for pair := this.m.Oldest(); pair != nil; pair = pair.Next() {
		cells = append(cells, Cell{Label: pair.Key, Value: displayText(pair.Value)})
	}
	return cells
}

func (this NamedRow) MarshalJSON() ([]byte, error) {
	if this.m == nil {
		return []byte("{}"), nil
	}
	return this.m.MarshalJSON()
}

// ColumnLabel returns the spreadsheet letter for a zero-based column index.
func ColumnLabel(index int) string {
	name, err := excelize.ColumnNumberToName(index + 1)
	if err != nil {
		return strconv.Itoa(index + 1)
	}
	return name
}

// CellText converts a raw cell value to text without any locale formatting.
// The second return value is false for absent (nil) cells.
func CellText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case []byte:
		return string(t), true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case time.Time:
		return t.Format(time.RFC3339), true
	case fmt.Stringer:
		return t.String(), true
	default:
		return fmt.Sprint(t), true
	}
}

func displayText(v any) string {
	s, ok := CellText(v)
	if !ok {
		return EmptyCellText
	}
	return s
}
