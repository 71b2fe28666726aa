package blueprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benjaminschreck/go-docxgen/pkg/docxgen"
)

// Document builds the described document
func (bp *Blueprint) Document(opts ...docxgen.Option) (*docxgen.Document, error) {
	doc := docxgen.New(bp.Identity, opts...)

	for i, b := range bp.Blocks {
		var err error
		switch {
		case b.Paragraph != nil:
			err = addParagraph(doc, b.Paragraph)
		case b.Table != nil:
			err = addTable(doc, b.Table)
		default:
			err = fmt.Errorf("needs a paragraph or a table")
		}
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
	}
	return doc, nil
}

func addParagraph(doc *docxgen.Document, p *Paragraph) error {
	return doc.AddParagraph(p.Options, func(par *docxgen.Paragraph) error {
		for i, r := range p.Runs {
			switch {
			case r.Newline:
				if r.Text != "" || len(r.Options) > 0 {
					return fmt.Errorf("run %d: a newline takes no text or options", i+1)
				}
				par.AddNewline()
			case r.NoSpace && r.Text == "":
				par.NoSpace()
			default:
				if r.NoSpace {
					par.NoSpace()
				}
				if err := par.AddText(r.Text, r.Options); err != nil {
					return fmt.Errorf("run %d: %w", i+1, err)
				}
			}
		}
		return nil
	})
}

func addTable(doc *docxgen.Document, t *Table) error {
	spec, err := tableSpec(t)
	if err != nil {
		return err
	}

	rowFn := func(values []string) ([]*docxgen.Cell, error) {
		cells := make([]*docxgen.Cell, 0, len(values))
		for _, v := range values {
			c, err := docxgen.NewCell(v, t.CellOptions)
			if err != nil {
				return nil, err
			}
			cells = append(cells, c)
		}
		return cells, nil
	}

	var aggregate func([][]string) ([]*docxgen.Cell, error)
	if t.Footer != nil {
		if aggregate, err = footer(t); err != nil {
			return err
		}
	}

	return docxgen.AddTableFrom(doc, spec, t.Rows, rowFn, aggregate)
}

func tableSpec(t *Table) (docxgen.TableSpec, error) {
	spec := docxgen.TableSpec{
		NumberRows:   t.NumberRows,
		NumberFormat: t.CellOptions,
		RepeatHeader: t.RepeatHeader,
		CantSplit:    t.CantSplit,
	}

	for _, w := range t.Grid {
		spec.Grid = append(spec.Grid, docxgen.Twips(w))
	}

	for _, label := range t.Header {
		c, err := docxgen.NewCell(label, t.HeaderOptions)
		if err != nil {
			return spec, fmt.Errorf("header: %w", err)
		}
		spec.Header = append(spec.Header, c)
	}

	if t.Alignment != "" {
		a, err := docxgen.ParseAlignment(t.Alignment)
		if err != nil {
			return spec, err
		}
		spec.Properties.Alignment = a
	}
	if t.Indent != nil {
		indent := docxgen.Twips(*t.Indent)
		spec.Properties.Indent = &indent
	}
	if t.Borders != nil {
		borders, err := t.Borders.spec()
		if err != nil {
			return spec, err
		}
		spec.Properties.Borders = borders
		spec.CellDefaults.Borders = borders
	}
	if t.CellMargins != nil {
		spec.Properties.CellMargins = t.CellMargins.spec()
	}
	if t.Shading != "" {
		c, err := docxgen.ParseColor(t.Shading)
		if err != nil {
			return spec, err
		}
		spec.CellDefaults.Shading = c
	}
	return spec, nil
}

func (b *Borders) spec() (*docxgen.BorderSpec, error) {
	border, err := docxgen.NewBorder(b.Style, b.Width, b.Color)
	if err != nil {
		return nil, err
	}
	spec := docxgen.UniformBorders(border)
	for _, edge := range b.None {
		switch strings.ToLower(edge) {
		case "top":
			spec.Top = docxgen.NoBorder()
		case "left":
			spec.Left = docxgen.NoBorder()
		case "bottom":
			spec.Bottom = docxgen.NoBorder()
		case "right":
			spec.Right = docxgen.NoBorder()
		case "insideh", "inside_h":
			spec.InsideH = docxgen.NoBorder()
		case "insidev", "inside_v":
			spec.InsideV = docxgen.NoBorder()
		default:
			return nil, docxgen.NewFormatValueError("border edge", edge, "expected top, left, bottom, right, insideH or insideV")
		}
	}
	return spec, nil
}

func (m *Margins) spec() *docxgen.CellMargins {
	side := func(v *int) *docxgen.Measurement {
		if v == nil {
			return nil
		}
		tw := docxgen.Twips(*v)
		return &tw
	}
	return &docxgen.CellMargins{
		Top:    side(m.Top),
		Left:   side(m.Left),
		Bottom: side(m.Bottom),
		Right:  side(m.Right),
	}
}

func footer(t *Table) (func([][]string) ([]*docxgen.Cell, error), error) {
	f := t.Footer
	formatter, err := docxgen.NewAmountFormatter(f.Locale, f.Symbol)
	if err != nil {
		return nil, err
	}

	width := len(t.Grid)
	if t.NumberRows {
		width--
	}
	if f.SumColumn < 1 || f.SumColumn > width {
		return nil, fmt.Errorf("footer sum_column %d outside 1..%d", f.SumColumn, width)
	}
	column := f.SumColumn - 1

	// amounts are checked up front so a bad cell fails with its row number
	for i, row := range t.Rows {
		if column >= len(row) {
			return nil, fmt.Errorf("row %d: no column %d to sum", i+1, f.SumColumn)
		}
		if _, err := parseAmount(row[column]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	return docxgen.SumFooter(len(t.Grid), docxgen.Footer{
		Label:        f.Label,
		LabelOptions: f.LabelOptions,
		ValueOptions: f.ValueOptions,
		Formatter:    formatter,
	}, func(row []string) int64 {
		v, _ := parseAmount(row[column])
		return v
	}), nil
}

// parseAmount reads a whole amount in minor units. ",", ".", "_" and spaces
// are accepted only as thousands separators, so "99.95" is rejected rather
// than read as 9995.
func parseAmount(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, nil
	}

	groups := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == '.' || r == '_' || r == ' '
	})
	if len(groups) == 0 {
		return 0, docxgen.NewFormatValueError("amount", s, "expected a whole number")
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return 0, docxgen.NewFormatValueError("amount", s, "expected a whole number of minor units with 3-digit groups")
		}
	}

	v, err := strconv.ParseInt(strings.Join(groups, ""), 10, 64)
	if err != nil {
		return 0, docxgen.NewFormatValueError("amount", s, "expected a whole number")
	}
	return v, nil
}
