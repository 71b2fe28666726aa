package docxgen

import (
	"fmt"
	"strconv"
)

// Cell is a table cell. A zero Width takes the width of the grid columns the
// cell covers; ColumnSpan zero means one column.
type Cell struct {
	Width      Measurement
	ColumnSpan int
	Borders    *BorderSpec
	Shading    Color
	Margins    *CellMargins
	VAlign     VerticalAlignment
	Paragraphs []*Paragraph
}

// NewCell returns a single-column cell holding one paragraph with one text
// run. opts are paragraph options, so alignment is accepted.
func NewCell(text string, opts Options) (*Cell, error) {
	p, err := NewParagraph(opts)
	if err != nil {
		return nil, err
	}
	if text != "" {
		if err := p.AddText(text, nil); err != nil {
			return nil, err
		}
	}
	return &Cell{ColumnSpan: 1, Paragraphs: []*Paragraph{p}}, nil
}

// MustCell is NewCell for literal options known to be valid
func MustCell(text string, opts Options) *Cell {
	c, err := NewCell(text, opts)
	if err != nil {
		panic(err)
	}
	return c
}

// Span sets the column span and returns the cell
func (c *Cell) Span(n int) *Cell {
	c.ColumnSpan = n
	return c
}

func (c *Cell) span() int {
	if c.ColumnSpan == 0 {
		return 1
	}
	return c.ColumnSpan
}

// AddParagraph appends a paragraph to the cell
func (c *Cell) AddParagraph(p *Paragraph) {
	c.Paragraphs = append(c.Paragraphs, p)
}

// Validate checks the cell's formatting values and paragraphs
func (c *Cell) Validate() error {
	if c.ColumnSpan < 0 {
		return NewFormatValueError("column span", c.ColumnSpan, "must be positive")
	}
	if !c.Width.IsZero() {
		if err := c.Width.Validate(); err != nil {
			return err
		}
	}
	if c.Borders != nil {
		if err := c.Borders.Validate(); err != nil {
			return err
		}
	}
	if c.Shading != "" {
		if _, err := ParseColor(string(c.Shading)); err != nil {
			return err
		}
	}
	if c.Margins != nil {
		if err := c.Margins.Validate(); err != nil {
			return err
		}
	}
	if c.VAlign != "" {
		if _, err := ParseVerticalAlignment(string(c.VAlign)); err != nil {
			return err
		}
	}
	for i, p := range c.Paragraphs {
		if p == nil {
			return NewStructuralError("paragraph %d is nil", i+1)
		}
		if err := p.Validate(); err != nil {
			return wrapPosition("paragraph", i+1, err)
		}
	}
	return nil
}

// Row is an ordered cell sequence
type Row struct {
	Cells     []*Cell
	CantSplit bool
	// Header repeats the row at the top of every page the table spans
	Header bool
}

// NewRow returns a row of the given cells
func NewRow(cells ...*Cell) *Row {
	return &Row{Cells: cells}
}

// TableProperties holds table-level layout
type TableProperties struct {
	Alignment   Alignment
	Indent      *Measurement
	Borders     *BorderSpec
	CellMargins *CellMargins
}

// CellDefaults apply to every cell that does not set its own value
type CellDefaults struct {
	Borders *BorderSpec
	Shading Color
	Margins *CellMargins
	VAlign  VerticalAlignment
}

// Table is a column grid plus header, body and optional footer rows
type Table struct {
	Grid         []Measurement
	Properties   TableProperties
	CellDefaults CellDefaults
	Header       *Row
	Body         []*Row
	Footer       *Row
}

func (t *Table) isBlock() {}

// Rows returns header, body and footer in render order
func (t *Table) Rows() []*Row {
	rows := make([]*Row, 0, len(t.Body)+2)
	if t.Header != nil {
		rows = append(rows, t.Header)
	}
	rows = append(rows, t.Body...)
	if t.Footer != nil {
		rows = append(rows, t.Footer)
	}
	return rows
}

// Width returns the sum of the grid in twips
func (t *Table) Width() int {
	total := 0
	for _, col := range t.Grid {
		total += col.Value
	}
	return total
}

// Validate checks the grid, the table properties and every row. A row whose
// spans cover more columns than the grid has is a structural error.
func (t *Table) Validate() error {
	if len(t.Grid) == 0 {
		return NewStructuralError("table has no grid columns")
	}
	for i, col := range t.Grid {
		if col.Unit != UnitDxa {
			return NewFormatValueError("grid column", fmt.Sprintf("%d %s", col.Value, col.Unit), "grid columns must be dxa")
		}
		if err := col.Validate(); err != nil {
			return wrapPosition("grid column", i+1, err)
		}
	}

	switch t.Properties.Alignment {
	case "", AlignStart, AlignCenter, AlignEnd:
	default:
		return NewFormatValueError(optAlignment, string(t.Properties.Alignment), "tables align start, center or end")
	}
	if t.Properties.Indent != nil {
		if err := t.Properties.Indent.validateOffset(); err != nil {
			return err
		}
	}
	if t.Properties.Borders != nil {
		if err := t.Properties.Borders.Validate(); err != nil {
			return err
		}
	}
	if t.Properties.CellMargins != nil {
		if err := t.Properties.CellMargins.Validate(); err != nil {
			return err
		}
	}

	defaults := &Cell{
		Borders: t.CellDefaults.Borders,
		Shading: t.CellDefaults.Shading,
		Margins: t.CellDefaults.Margins,
		VAlign:  t.CellDefaults.VAlign,
	}
	if err := defaults.Validate(); err != nil {
		return fmt.Errorf("cell defaults: %w", err)
	}

	for i, row := range t.Rows() {
		if err := t.validateRow(row); err != nil {
			return wrapPosition("row", i+1, err)
		}
	}
	return nil
}

func (t *Table) validateRow(row *Row) error {
	if row == nil {
		return NewStructuralError("row is nil")
	}
	columns := 0
	for i, c := range row.Cells {
		if c == nil {
			return NewStructuralError("cell %d is nil", i+1)
		}
		if err := c.Validate(); err != nil {
			return wrapPosition("cell", i+1, err)
		}
		columns += c.span()
	}
	if columns > len(t.Grid) {
		return NewStructuralError("row spans %d columns but the grid has %d", columns, len(t.Grid))
	}
	return nil
}

// TableSpec describes the fixed parts of a table built from records
type TableSpec struct {
	Grid   []Measurement
	Header []*Cell
	// NumberRows prepends a 1-based position cell to every body row. Header
	// must still cover the whole grid.
	NumberRows   bool
	NumberFormat Options
	RepeatHeader bool
	CantSplit    bool
	Properties   TableProperties
	CellDefaults CellDefaults
}

// BuildTable assembles a table with one body row per record. rowFn returns one
// cell per grid column, minus the numbering column when NumberRows is set.
// aggregate receives every record and returns the footer cells; a nil
// aggregate means no footer. The table is validated before it is returned.
func BuildTable[R any](spec TableSpec, records []R, rowFn func(R) ([]*Cell, error), aggregate func([]R) ([]*Cell, error)) (*Table, error) {
	if rowFn == nil && len(records) > 0 {
		return nil, NewStructuralError("records given without a row function")
	}

	t := &Table{
		Grid:         spec.Grid,
		Properties:   spec.Properties,
		CellDefaults: spec.CellDefaults,
	}
	if len(spec.Header) > 0 {
		t.Header = &Row{Cells: spec.Header, CantSplit: spec.CantSplit, Header: spec.RepeatHeader}
	}

	for i, record := range records {
		cells, err := rowFn(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if spec.NumberRows {
			number, err := NewCell(strconv.Itoa(i+1), spec.NumberFormat)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i+1, err)
			}
			cells = append([]*Cell{number}, cells...)
		}
		t.Body = append(t.Body, &Row{Cells: cells, CantSplit: spec.CantSplit})
	}

	if aggregate != nil {
		cells, err := aggregate(records)
		if err != nil {
			return nil, fmt.Errorf("footer: %w", err)
		}
		t.Footer = &Row{Cells: cells, CantSplit: spec.CantSplit}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
