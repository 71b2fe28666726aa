package xml

import (
	"encoding/xml"
	"strconv"
)

// BodyElement represents any element that can appear in a document body
type BodyElement interface {
	isBodyElement()
}

// Val is a leaf element carrying a single w:val attribute (w:jc, w:u, w:color...)
type Val struct {
	Val string
}

// MarshalXML implements custom XML marshaling for Val
func (v Val) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: v.Val},
	}
	return e.EncodeElement(struct{}{}, start)
}

// IntVal is a leaf element carrying a numeric w:val attribute (w:sz, w:gridSpan)
type IntVal struct {
	Val int
}

// MarshalXML implements custom XML marshaling for IntVal
func (v IntVal) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: strconv.Itoa(v.Val)},
	}
	return e.EncodeElement(struct{}{}, start)
}

// Width represents a measurement (w:tcW, w:tblW, w:tblInd, margin sides)
type Width struct {
	W    int
	Type string
}

// MarshalXML implements custom XML marshaling for Width
func (w Width) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:w"}, Value: strconv.Itoa(w.W)},
		{Name: xml.Name{Local: "w:type"}, Value: w.Type},
	}
	return e.EncodeElement(struct{}{}, start)
}

// Shading represents cell or run shading
type Shading struct {
	Val   string
	Color string
	Fill  string
}

// MarshalXML implements custom XML marshaling for Shading
func (s Shading) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:shd"}
	start.Attr = []xml.Attr{}

	if s.Val != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:val"}, Value: s.Val})
	}
	if s.Color != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:color"}, Value: s.Color})
	}
	if s.Fill != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:fill"}, Value: s.Fill})
	}

	return e.EncodeElement(struct{}{}, start)
}

// Border represents a single border edge. The element name (w:top, w:left...)
// comes from the enclosing Borders.
type Border struct {
	Val   string
	Size  int
	Space int
	Color string
}

// MarshalXML implements custom XML marshaling for Border
func (b Border) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: b.Val},
	}

	// nil and none borders carry no geometry
	if b.Val != "nil" && b.Val != "none" {
		start.Attr = append(start.Attr,
			xml.Attr{Name: xml.Name{Local: "w:sz"}, Value: strconv.Itoa(b.Size)},
			xml.Attr{Name: xml.Name{Local: "w:space"}, Value: strconv.Itoa(b.Space)},
		)
		if b.Color != "" {
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:color"}, Value: b.Color})
		}
	}

	return e.EncodeElement(struct{}{}, start)
}

// Borders is the shared shape of w:tblBorders and w:tcBorders. The caller
// chooses the element name through the start element.
type Borders struct {
	Top     *Border
	Left    *Border
	Bottom  *Border
	Right   *Border
	InsideH *Border
	InsideV *Border
}

// MarshalXML implements custom XML marshaling for Borders
func (b Borders) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	// Schema order: top, left, bottom, right, insideH, insideV
	edges := []struct {
		name   string
		border *Border
	}{
		{"w:top", b.Top},
		{"w:left", b.Left},
		{"w:bottom", b.Bottom},
		{"w:right", b.Right},
		{"w:insideH", b.InsideH},
		{"w:insideV", b.InsideV},
	}
	for _, edge := range edges {
		if edge.border == nil {
			continue
		}
		if err := e.EncodeElement(edge.border, xml.StartElement{Name: xml.Name{Local: edge.name}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Margins is the shared shape of w:tblCellMar and w:tcMar.
type Margins struct {
	Top    *Width
	Left   *Width
	Bottom *Width
	Right  *Width
}

// MarshalXML implements custom XML marshaling for Margins
func (m Margins) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if m.Top != nil {
		if err := e.EncodeElement(m.Top, xml.StartElement{Name: xml.Name{Local: "w:top"}}); err != nil {
			return err
		}
	}
	if m.Left != nil {
		if err := e.EncodeElement(m.Left, xml.StartElement{Name: xml.Name{Local: "w:left"}}); err != nil {
			return err
		}
	}
	if m.Bottom != nil {
		if err := e.EncodeElement(m.Bottom, xml.StartElement{Name: xml.Name{Local: "w:bottom"}}); err != nil {
			return err
		}
	}
	if m.Right != nil {
		if err := e.EncodeElement(m.Right, xml.StartElement{Name: xml.Name{Local: "w:right"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// onOff writes an empty toggle element such as <w:b/>
func onOff(e *xml.Encoder, name string) error {
	return e.EncodeElement(struct{}{}, xml.StartElement{Name: xml.Name{Local: name}})
}
