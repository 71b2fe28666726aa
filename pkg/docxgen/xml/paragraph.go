package xml

import (
	"encoding/xml"
)

// Paragraph represents a paragraph in the document
type Paragraph struct {
	Properties *ParagraphProperties
	Runs       []Run
}

// isBodyElement implements the BodyElement interface
func (p Paragraph) isBodyElement() {}

// MarshalXML implements custom XML marshaling for Paragraph to ensure proper namespacing
func (p Paragraph) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:p"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Properties != nil && !p.Properties.IsEmpty() {
		if err := e.EncodeElement(p.Properties, xml.StartElement{Name: xml.Name{Local: "w:pPr"}}); err != nil {
			return err
		}
	}

	for i := range p.Runs {
		if err := e.EncodeElement(&p.Runs[i], xml.StartElement{Name: xml.Name{Local: "w:r"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// ParagraphProperties represents paragraph formatting properties
type ParagraphProperties struct {
	Alignment *Val
	// RunProperties formats the paragraph mark; it sets the height of an empty paragraph
	RunProperties *RunProperties
}

// IsEmpty reports whether no property is set
func (p ParagraphProperties) IsEmpty() bool {
	return p.Alignment == nil && (p.RunProperties == nil || p.RunProperties.IsEmpty())
}

// MarshalXML implements custom XML marshaling for ParagraphProperties
func (p ParagraphProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:pPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Alignment != nil {
		if err := e.EncodeElement(p.Alignment, xml.StartElement{Name: xml.Name{Local: "w:jc"}}); err != nil {
			return err
		}
	}

	// Output run properties last (the paragraph mark)
	if p.RunProperties != nil && !p.RunProperties.IsEmpty() {
		if err := e.EncodeElement(p.RunProperties, xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
