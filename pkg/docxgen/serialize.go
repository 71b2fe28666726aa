package docxgen

import (
	"fmt"
	"strings"

	wml "github.com/benjaminschreck/go-docxgen/pkg/docxgen/xml"
)

// Serialize renders word/document.xml for the document
func Serialize(doc *Document) ([]byte, error) {
	return SerializeBlocks(doc.blocks)
}

// SerializeBlocks renders word/document.xml for a block sequence. Every block
// is validated first, so an invalid model never yields partial markup.
func SerializeBlocks(blocks []Block) ([]byte, error) {
	body := wml.Body{Elements: make([]wml.BodyElement, 0, len(blocks))}
	for i, b := range blocks {
		if err := validateBlock(b); err != nil {
			return nil, wrapPosition("block", i+1, err)
		}
		switch blk := b.(type) {
		case *Paragraph:
			body.Elements = append(body.Elements, paragraphNode(blk))
		case *Table:
			body.Elements = append(body.Elements, tableNode(blk))
		}
	}

	out, err := wml.Marshal(&wml.Document{Body: body})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return out, nil
}

func paragraphNode(p *Paragraph) *wml.Paragraph {
	node := &wml.Paragraph{}

	props := &wml.ParagraphProperties{}
	if p.Alignment != "" && p.Alignment != AlignStart {
		props.Alignment = &wml.Val{Val: p.Alignment.jc()}
	}
	if rp := runProperties(p.Defaults); !rp.IsEmpty() {
		props.RunProperties = rp
	}
	if !props.IsEmpty() {
		node.Properties = props
	}

	node.Runs = make([]wml.Run, 0, len(p.runs))
	for i, r := range p.runs {
		separator := needsSeparator(p.runs, i)
		if separator && decorated(r.Format) {
			// underline and shading would otherwise extend over the gap
			gap := r.Format
			gap.Underline, gap.Shading = "", ""
			node.Runs = append(node.Runs, runNode(r, false), runNode(&Run{Text: " ", Format: gap}, false))
			continue
		}
		node.Runs = append(node.Runs, runNode(r, separator))
	}
	return node
}

// decorated reports formatting that is drawn under whitespace too
func decorated(f RunFormat) bool {
	return (f.Underline != "" && f.Underline != UnderlineNone) || f.Shading != ""
}

func runNode(r *Run, separator bool) wml.Run {
	node := wml.Run{}
	if rp := runProperties(r.Format); !rp.IsEmpty() {
		node.Properties = rp
	}

	if r.Break {
		node.Break = &wml.Break{}
		return node
	}

	text := r.Text
	if separator {
		text += " "
	}
	node.Text = &wml.Text{Content: text}
	if needsPreserve(text) {
		node.Text.Space = "preserve"
	}
	return node
}

// needsPreserve reports whether a consumer would otherwise collapse some of
// the whitespace in s
func needsPreserve(s string) bool {
	if s == "" {
		return false
	}
	return s != strings.TrimSpace(s) || strings.Contains(s, "  ") || strings.ContainsAny(s, "\t\n")
}

func runProperties(f RunFormat) *wml.RunProperties {
	rp := &wml.RunProperties{
		Bold:   f.Bold,
		Italic: f.Italic,
	}
	if f.Font != "" {
		rp.Fonts = &wml.Fonts{ASCII: f.Font, HAnsi: f.Font, CS: f.Font}
	}
	if f.Color != "" {
		rp.Color = &wml.Val{Val: string(f.Color)}
	}
	if f.Size > 0 {
		rp.Size = &wml.IntVal{Val: f.Size.HalfPoints()}
	}
	if f.Underline != "" {
		rp.Underline = &wml.Val{Val: string(f.Underline)}
	}
	if f.Shading != "" {
		rp.Shading = shadingNode(f.Shading)
	}
	switch {
	case f.Subscript:
		rp.VerticalAlign = &wml.Val{Val: "subscript"}
	case f.Superscript:
		rp.VerticalAlign = &wml.Val{Val: "superscript"}
	}
	return rp
}

func shadingNode(fill Color) *wml.Shading {
	return &wml.Shading{Val: "clear", Color: "auto", Fill: string(fill)}
}

func widthNode(m Measurement) *wml.Width {
	return &wml.Width{W: m.Value, Type: string(m.Unit)}
}

func bordersNode(s *BorderSpec) *wml.Borders {
	edge := func(b *Border) *wml.Border {
		if b == nil {
			return nil
		}
		return &wml.Border{
			Val:   string(b.Style),
			Size:  int(b.Width),
			Space: b.Space,
			Color: string(b.Color),
		}
	}
	return &wml.Borders{
		Top:     edge(s.Top),
		Left:    edge(s.Left),
		Bottom:  edge(s.Bottom),
		Right:   edge(s.Right),
		InsideH: edge(s.InsideH),
		InsideV: edge(s.InsideV),
	}
}

func marginsNode(m *CellMargins) *wml.Margins {
	side := func(v *Measurement) *wml.Width {
		if v == nil {
			return nil
		}
		return widthNode(*v)
	}
	return &wml.Margins{
		Top:    side(m.Top),
		Left:   side(m.Left),
		Bottom: side(m.Bottom),
		Right:  side(m.Right),
	}
}

func tableNode(t *Table) *wml.Table {
	props := &wml.TableProperties{
		Width: &wml.Width{W: t.Width(), Type: string(UnitDxa)},
	}
	if t.Properties.Alignment != "" {
		props.Alignment = &wml.Val{Val: t.Properties.Alignment.jc()}
	}
	if t.Properties.Indent != nil {
		props.Indentation = widthNode(*t.Properties.Indent)
	}
	if t.Properties.Borders != nil {
		props.Borders = bordersNode(t.Properties.Borders)
	}
	if t.Properties.CellMargins != nil {
		props.CellMargins = marginsNode(t.Properties.CellMargins)
	}

	node := &wml.Table{Properties: props}
	for _, col := range t.Grid {
		node.Grid.Columns = append(node.Grid.Columns, col.Value)
	}
	for _, row := range t.Rows() {
		node.Rows = append(node.Rows, t.rowNode(row))
	}
	return node
}

func (t *Table) rowNode(row *Row) wml.TableRow {
	node := wml.TableRow{}
	if row.CantSplit || row.Header {
		node.Properties = &wml.TableRowProperties{CantSplit: row.CantSplit, Header: row.Header}
	}

	column := 0
	for _, c := range row.Cells {
		span := c.span()
		node.Cells = append(node.Cells, t.cellNode(c, column, span))
		column += span
	}
	return node
}

// spannedWidth sums the grid columns [from, from+span)
func (t *Table) spannedWidth(from, span int) int {
	total := 0
	for i := from; i < from+span && i < len(t.Grid); i++ {
		total += t.Grid[i].Value
	}
	return total
}

func (t *Table) cellNode(c *Cell, column, span int) wml.TableCell {
	props := &wml.TableCellProperties{GridSpan: span}

	// spanned cells always take their width from the grid
	if span > 1 || c.Width.IsZero() {
		props.Width = &wml.Width{W: t.spannedWidth(column, span), Type: string(UnitDxa)}
	} else {
		props.Width = widthNode(c.Width)
	}

	borders := c.Borders
	if borders == nil {
		borders = t.CellDefaults.Borders
	}
	if borders != nil {
		props.Borders = bordersNode(borders)
	}

	shading := c.Shading
	if shading == "" {
		shading = t.CellDefaults.Shading
	}
	if shading != "" {
		props.Shading = shadingNode(shading)
	}

	margins := c.Margins
	if margins == nil {
		margins = t.CellDefaults.Margins
	}
	if margins != nil {
		props.Margins = marginsNode(margins)
	}

	valign := c.VAlign
	if valign == "" {
		valign = t.CellDefaults.VAlign
	}
	if valign != "" {
		props.VAlign = &wml.Val{Val: string(valign)}
	}

	node := wml.TableCell{Properties: props}
	for _, p := range c.Paragraphs {
		node.Paragraphs = append(node.Paragraphs, *paragraphNode(p))
	}
	return node
}
