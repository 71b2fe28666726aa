// Package xml provides the WordprocessingML node types emitted by docxgen.
//
// Every node implements xml.Marshaler and writes its children in the order
// required by the ECMA-376 schema, regardless of the order in which fields were
// populated. Word opens most mis-ordered documents anyway, but strict
// consumers (and the Open XML SDK validator) reject them.
//
// # Structure Organization
//
//   - types.go: shared leaf nodes (Val, Width, Shading, Border)
//   - document.go: Document and Body, plus Marshal
//   - paragraph.go: Paragraph and ParagraphProperties
//   - run.go: Run, RunProperties, Text and Break
//   - table.go: Table, TableRow, TableCell and their properties
//
// Element names are written with a literal "w:" prefix; the prefix is bound
// once on the root element by Document.
//
// Example:
//
//	doc := &xml.Document{
//	    Body: xml.Body{
//	        Elements: []xml.BodyElement{
//	            &xml.Paragraph{
//	                Runs: []xml.Run{
//	                    {Text: &xml.Text{Content: "Hello, world!"}},
//	                },
//	            },
//	        },
//	    },
//	}
//	data, err := xml.Marshal(doc)
package xml
