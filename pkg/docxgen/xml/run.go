package xml

import (
	"encoding/xml"
)

// Run represents a run of text with common properties
type Run struct {
	Properties *RunProperties
	Break      *Break
	Text       *Text
}

// MarshalXML implements custom XML marshaling for Run to ensure proper namespacing
func (r Run) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:r"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if r.Properties != nil && !r.Properties.IsEmpty() {
		if err := e.EncodeElement(r.Properties, xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}

	if r.Break != nil {
		if err := e.EncodeElement(r.Break, xml.StartElement{Name: xml.Name{Local: "w:br"}}); err != nil {
			return err
		}
	}

	if r.Text != nil {
		if err := e.EncodeElement(r.Text, xml.StartElement{Name: xml.Name{Local: "w:t"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// RunProperties represents run formatting properties (w:rPr)
type RunProperties struct {
	Style         *Val
	Fonts         *Fonts
	Bold          bool
	Italic        bool
	Strike        bool
	Color         *Val
	Size          *IntVal
	SizeCs        *IntVal
	Underline     *Val
	Shading       *Shading
	VerticalAlign *Val
}

// IsEmpty reports whether no property is set
func (p RunProperties) IsEmpty() bool {
	return p.Style == nil && p.Fonts == nil && !p.Bold && !p.Italic && !p.Strike &&
		p.Color == nil && p.Size == nil && p.SizeCs == nil && p.Underline == nil &&
		p.Shading == nil && p.VerticalAlign == nil
}

// MarshalXML implements custom XML marshaling for RunProperties.
// Children follow the CT_RPr sequence: rStyle, rFonts, b, i, strike, color,
// sz, szCs, u, shd, vertAlign.
func (p RunProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:rPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Style != nil {
		if err := e.EncodeElement(p.Style, xml.StartElement{Name: xml.Name{Local: "w:rStyle"}}); err != nil {
			return err
		}
	}
	if p.Fonts != nil {
		if err := e.EncodeElement(p.Fonts, xml.StartElement{Name: xml.Name{Local: "w:rFonts"}}); err != nil {
			return err
		}
	}
	if p.Bold {
		if err := onOff(e, "w:b"); err != nil {
			return err
		}
	}
	if p.Italic {
		if err := onOff(e, "w:i"); err != nil {
			return err
		}
	}
	if p.Strike {
		if err := onOff(e, "w:strike"); err != nil {
			return err
		}
	}
	if p.Color != nil {
		if err := e.EncodeElement(p.Color, xml.StartElement{Name: xml.Name{Local: "w:color"}}); err != nil {
			return err
		}
	}
	if p.Size != nil {
		if err := e.EncodeElement(p.Size, xml.StartElement{Name: xml.Name{Local: "w:sz"}}); err != nil {
			return err
		}
	}
	if p.SizeCs != nil {
		if err := e.EncodeElement(p.SizeCs, xml.StartElement{Name: xml.Name{Local: "w:szCs"}}); err != nil {
			return err
		}
	}
	if p.Underline != nil {
		if err := e.EncodeElement(p.Underline, xml.StartElement{Name: xml.Name{Local: "w:u"}}); err != nil {
			return err
		}
	}
	if p.Shading != nil {
		if err := e.EncodeElement(p.Shading, xml.StartElement{Name: xml.Name{Local: "w:shd"}}); err != nil {
			return err
		}
	}
	if p.VerticalAlign != nil {
		if err := e.EncodeElement(p.VerticalAlign, xml.StartElement{Name: xml.Name{Local: "w:vertAlign"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Fonts represents the font family for the ASCII, high-ANSI and complex-script ranges
type Fonts struct {
	ASCII string
	HAnsi string
	CS    string
}

// MarshalXML implements custom XML marshaling for Fonts
func (f Fonts) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:rFonts"}
	start.Attr = []xml.Attr{}
	if f.ASCII != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:ascii"}, Value: f.ASCII})
	}
	if f.HAnsi != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:hAnsi"}, Value: f.HAnsi})
	}
	if f.CS != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:cs"}, Value: f.CS})
	}
	return e.EncodeElement(struct{}{}, start)
}

// Text represents text content
type Text struct {
	Space   string
	Content string
}

// MarshalXML implements custom XML marshaling for Text to ensure proper namespacing
func (t Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:t"}
	start.Attr = nil
	if t.Space == "preserve" {
		// Use the predefined XML namespace
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Space: "http://www.w3.org/XML/1998/namespace", Local: "space"},
			Value: "preserve",
		})
	}
	return e.EncodeElement(t.Content, start)
}

// Break represents a line break
type Break struct {
	Type string
}

// MarshalXML implements xml.Marshaler to ensure Break is an empty element
func (b Break) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:br"}
	start.Attr = nil
	if b.Type != "" {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: "w:type"},
			Value: b.Type,
		})
	}
	return e.EncodeElement(struct{}{}, start)
}
