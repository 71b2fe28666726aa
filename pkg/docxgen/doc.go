// Package docxgen builds Microsoft Word documents (DOCX) from a small document
// model: a Document holds paragraphs and tables, a Paragraph holds formatted
// runs, and a Table holds rows of cells laid out on a column grid.
//
// # Quick Start
//
//	doc := docxgen.New("report")
//
//	err := doc.AddParagraph(docxgen.Options{"alignment": "center"}, func(p *docxgen.Paragraph) error {
//	    return p.AddText("Title", docxgen.Options{
//	        "bold":      true,
//	        "underline": docxgen.Options{"style": "double"},
//	        "size":      20,
//	    })
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := doc.Save(); err != nil { // writes ./report.docx
//	    log.Fatal(err)
//	}
//
// # Formatting Options
//
// Runs and paragraphs take an Options map. Unknown keys fail with
// ErrUnknownOption; malformed values fail with ErrInvalidFormatValue. Options
// given to a paragraph become defaults for the runs added to it.
//
//	bold, italics           bool
//	underline               true, "double", or {style: "double"}
//	size                    points, positive
//	subscript, superscript  bool, mutually exclusive
//	font                    font family name
//	color, shading          "RRGGBB" or "auto"
//	no_leading_space        bool, runs only
//	alignment               start, center, end, justify; paragraphs only
//
// Consecutive text runs are separated by one space. NoSpace, or
// no_leading_space on the run, glues a run to the text before it:
//
//	p.AddText("CO", nil)
//	p.NoSpace()
//	p.AddText("2", docxgen.Options{"subscript": true})
//
// # Tables
//
// BuildTable turns a slice of records into a table with a header row, one body
// row per record and an optional footer computed from all records:
//
//	table, err := docxgen.BuildTable(spec, claims,
//	    func(c Claim) ([]*docxgen.Cell, error) { ... },
//	    docxgen.SumFooter(len(spec.Grid), footer, func(c Claim) int64 { return c.Cost }))
//
// Spanned cells always take their width from the grid columns they cover.
//
// # Configuration
//
// Save writes <output_dir>/<identity><extension>. Settings come from DOCXGEN_*
// environment variables, a config file (LoadConfig) or SetGlobalConfig:
//
//	DOCXGEN_LOG_LEVEL    debug, info, warn, error
//	DOCXGEN_OUTPUT_DIR   destination directory
//	DOCXGEN_EXTENSION    file extension, default .docx
//	DOCXGEN_COMPRESSION  deflate or store
//	DOCXGEN_LOCALE       locale for computed totals
package docxgen
