package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// WordNamespace is the main WordprocessingML namespace, bound to the w prefix
const WordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Header is the XML declaration written in front of every part
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Document represents the w:document root of word/document.xml
type Document struct {
	Body Body
}

// MarshalXML implements custom XML marshaling that declares the w namespace
func (d Document) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:document"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "xmlns:w"}, Value: WordNamespace},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := e.EncodeElement(&d.Body, xml.StartElement{Name: xml.Name{Local: "w:body"}}); err != nil {
		return err
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Body represents the document body
type Body struct {
	// Elements maintains the order of all body elements
	Elements []BodyElement
}

// MarshalXML implements custom XML marshaling to preserve element order
func (b Body) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:body"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, elem := range b.Elements {
		switch el := elem.(type) {
		case *Paragraph:
			if err := e.EncodeElement(el, xml.StartElement{Name: xml.Name{Local: "w:p"}}); err != nil {
				return err
			}
		case *Table:
			if err := e.EncodeElement(el, xml.StartElement{Name: xml.Name{Local: "w:tbl"}}); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported body element %T", elem)
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Marshal renders a complete word/document.xml part, declaration included
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Header)

	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush document: %w", err)
	}

	return buf.Bytes(), nil
}
