package column

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Column is an immutable (logical_type, name) pair (§3). Construction
// validates logical_type against the registry; StrictValueTransform
// threads through to the converter for variable-width columns.
type Column struct {
	Name      string
	conv      Converter
	fieldType arrow.DataType
}

// NewColumn resolves logicalType against the registry and binds it to
// name. Fails fast with ErrUnsupportedType for an unknown logical type
// (§4.5).
func NewColumn(logicalType, name string, strictValueTransform bool) (Column, error) {
	conv, err := Lookup(logicalType)
	if err != nil {
		return Column{}, err
	}
	if vw, ok := conv.(*varWidthConverter); ok && strictValueTransform {
		strict := *vw
		strict.StrictValueTransform = true
		conv = &strict
	}
	return Column{Name: name, conv: conv, fieldType: conv.ArrowFieldType()}, nil
}

// Converter returns the column's bound converter.
func (c Column) Converter() Converter { return c.conv }

// ArrowField builds the Arrow Field this column contributes to a Schema
// message: the field type, the name, and an empty children list (§4.4
// "Schema producer").
func (c Column) ArrowField() arrow.Field {
	return arrow.Field{Name: c.Name, Type: c.fieldType, Nullable: true}
}

// Page is an ordered tuple of blocks with identical position count (§3).
type Page struct {
	Columns []Column
	Blocks  []Block
	n       int
}

// NewPage builds a Page from aligned columns/blocks slices, validating that
// every block reports the same PositionCount.
func NewPage(columns []Column, blocks []Block) (*Page, error) {
	if len(columns) != len(blocks) {
		return nil, fmt.Errorf("ipcstream/column: %d columns but %d blocks", len(columns), len(blocks))
	}
	n := -1
	for i, b := range blocks {
		if n == -1 {
			n = b.PositionCount()
			continue
		}
		if b.PositionCount() != n {
			return nil, fmt.Errorf("ipcstream/column: block %d has position count %d, page is %d",
				i, b.PositionCount(), n)
		}
	}
	if n == -1 {
		n = 0
	}
	return &Page{Columns: columns, Blocks: blocks, n: n}, nil
}

// PositionCount returns the page's common row count.
func (p *Page) PositionCount() int { return p.n }

// Schema builds the Arrow Schema these columns describe.
func Schema(columns []Column) *arrow.Schema {
	fields := make([]arrow.Field, len(columns))
	for i, c := range columns {
		fields[i] = c.ArrowField()
	}
	return arrow.NewSchema(fields, nil)
}
