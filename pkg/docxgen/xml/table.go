package xml

import (
	"encoding/xml"
	"strconv"
)

// Table represents a table in the document
type Table struct {
	Properties *TableProperties
	Grid       TableGrid
	Rows       []TableRow
}

// isBodyElement implements the BodyElement interface
func (t Table) isBodyElement() {}

// MarshalXML implements custom XML marshaling for Table to ensure proper namespacing
func (t Table) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tbl"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	// tblPr is mandatory, even when empty
	props := TableProperties{}
	if t.Properties != nil {
		props = *t.Properties
	}
	if err := e.EncodeElement(&props, xml.StartElement{Name: xml.Name{Local: "w:tblPr"}}); err != nil {
		return err
	}

	if err := e.EncodeElement(&t.Grid, xml.StartElement{Name: xml.Name{Local: "w:tblGrid"}}); err != nil {
		return err
	}

	for i := range t.Rows {
		if err := e.EncodeElement(&t.Rows[i], xml.StartElement{Name: xml.Name{Local: "w:tr"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableProperties represents table formatting properties
type TableProperties struct {
	Width       *Width
	Alignment   *Val
	Indentation *Width
	Borders     *Borders
	CellMargins *Margins
}

// MarshalXML implements custom XML marshaling for TableProperties.
// Children follow CT_TblPr: tblW, jc, tblInd, tblBorders, tblCellMar.
func (p TableProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Width != nil {
		if err := e.EncodeElement(p.Width, xml.StartElement{Name: xml.Name{Local: "w:tblW"}}); err != nil {
			return err
		}
	}

	if p.Alignment != nil {
		if err := e.EncodeElement(p.Alignment, xml.StartElement{Name: xml.Name{Local: "w:jc"}}); err != nil {
			return err
		}
	}

	if p.Indentation != nil {
		if err := e.EncodeElement(p.Indentation, xml.StartElement{Name: xml.Name{Local: "w:tblInd"}}); err != nil {
			return err
		}
	}

	if p.Borders != nil {
		if err := e.EncodeElement(p.Borders, xml.StartElement{Name: xml.Name{Local: "w:tblBorders"}}); err != nil {
			return err
		}
	}

	if p.CellMargins != nil {
		if err := e.EncodeElement(p.CellMargins, xml.StartElement{Name: xml.Name{Local: "w:tblCellMar"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableGrid represents table column definitions, in twips
type TableGrid struct {
	Columns []int
}

// MarshalXML implements custom XML marshaling for TableGrid
func (g TableGrid) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblGrid"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, col := range g.Columns {
		if err := e.Encode(GridColumn{Width: col}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GridColumn represents a table column. Only w:w is allowed on w:gridCol.
type GridColumn struct {
	Width int
}

// MarshalXML implements custom XML marshaling for GridColumn
func (g GridColumn) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:gridCol"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:w"}, Value: strconv.Itoa(g.Width)},
	}
	return e.EncodeElement(struct{}{}, start)
}

// TableRow represents a row in a table
type TableRow struct {
	Properties *TableRowProperties
	Cells      []TableCell
}

// MarshalXML implements custom XML marshaling for TableRow to ensure proper namespacing
func (r TableRow) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if r.Properties != nil && (r.Properties.CantSplit || r.Properties.Header) {
		if err := e.EncodeElement(r.Properties, xml.StartElement{Name: xml.Name{Local: "w:trPr"}}); err != nil {
			return err
		}
	}

	for i := range r.Cells {
		if err := e.EncodeElement(&r.Cells[i], xml.StartElement{Name: xml.Name{Local: "w:tc"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableRowProperties represents row properties
type TableRowProperties struct {
	CantSplit bool // Prevent row from splitting across pages
	Header    bool // Repeat row at the top of every page
}

// MarshalXML implements custom XML marshaling for TableRowProperties
func (p TableRowProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:trPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.CantSplit {
		if err := onOff(e, "w:cantSplit"); err != nil {
			return err
		}
	}

	if p.Header {
		if err := onOff(e, "w:tblHeader"); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCell represents a cell in a table
type TableCell struct {
	Properties *TableCellProperties
	Paragraphs []Paragraph
}

// MarshalXML implements custom XML marshaling for TableCell to ensure proper namespacing
func (c TableCell) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tc"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if c.Properties != nil {
		if err := e.EncodeElement(c.Properties, xml.StartElement{Name: xml.Name{Local: "w:tcPr"}}); err != nil {
			return err
		}
	}

	// A cell must end with a paragraph
	paragraphs := c.Paragraphs
	if len(paragraphs) == 0 {
		paragraphs = []Paragraph{{}}
	}
	for i := range paragraphs {
		if err := e.EncodeElement(&paragraphs[i], xml.StartElement{Name: xml.Name{Local: "w:p"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCellProperties represents cell properties
type TableCellProperties struct {
	Width    *Width
	GridSpan int
	Borders  *Borders
	Shading  *Shading
	Margins  *Margins
	VAlign   *Val
}

// MarshalXML implements custom XML marshaling for TableCellProperties.
// Children follow CT_TcPr: tcW, gridSpan, tcBorders, shd, tcMar, vAlign.
func (p TableCellProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tcPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Width != nil {
		if err := e.EncodeElement(p.Width, xml.StartElement{Name: xml.Name{Local: "w:tcW"}}); err != nil {
			return err
		}
	}

	if p.GridSpan > 1 {
		if err := e.EncodeElement(&IntVal{Val: p.GridSpan}, xml.StartElement{Name: xml.Name{Local: "w:gridSpan"}}); err != nil {
			return err
		}
	}

	if p.Borders != nil {
		if err := e.EncodeElement(p.Borders, xml.StartElement{Name: xml.Name{Local: "w:tcBorders"}}); err != nil {
			return err
		}
	}

	if p.Shading != nil {
		if err := e.EncodeElement(p.Shading, xml.StartElement{Name: xml.Name{Local: "w:shd"}}); err != nil {
			return err
		}
	}

	if p.Margins != nil {
		if err := e.EncodeElement(p.Margins, xml.StartElement{Name: xml.Name{Local: "w:tcMar"}}); err != nil {
			return err
		}
	}

	if p.VAlign != nil {
		if err := e.EncodeElement(p.VAlign, xml.StartElement{Name: xml.Name{Local: "w:vAlign"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
