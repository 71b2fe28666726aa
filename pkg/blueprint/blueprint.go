// Package blueprint describes documents declaratively in YAML or TOML and
// builds them through the docxgen API, so every validation rule of the model
// applies to files too.
//
// A YAML blueprint:
//
//	identity: basic_paragraph
//	blocks:
//	  - paragraph:
//	      options: {alignment: center}
//	      runs:
//	        - text: Title
//	          options: {underline: {style: double}, size: 20}
//	        - newline: true
//	  - table:
//	      grid: [523, 1809, 3262]
//	      header: [No, Item, Cost]
//	      number_rows: true
//	      rows:
//	        - [Paper, "250000"]
//	      footer: {label: Grand Total, sum_column: 2, symbol: Rp}
package blueprint

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a blueprint encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Blueprint is a whole document
type Blueprint struct {
	// Identity is the package base name. Load falls back to the file name.
	Identity string  `yaml:"identity" toml:"identity"`
	Blocks   []Block `yaml:"blocks" toml:"blocks"`
}

// Block holds exactly one of Paragraph or Table
type Block struct {
	Paragraph *Paragraph `yaml:"paragraph,omitempty" toml:"paragraph,omitempty"`
	Table     *Table     `yaml:"table,omitempty" toml:"table,omitempty"`
}

// Paragraph mirrors docxgen.Document.AddParagraph
type Paragraph struct {
	Options map[string]interface{} `yaml:"options,omitempty" toml:"options,omitempty"`
	Runs    []Run                  `yaml:"runs,omitempty" toml:"runs,omitempty"`
}

// Run is a text run, a line break (Newline) or a spacing marker (NoSpace)
// gluing the next run to the previous one
type Run struct {
	Text    string                 `yaml:"text,omitempty" toml:"text,omitempty"`
	Options map[string]interface{} `yaml:"options,omitempty" toml:"options,omitempty"`
	Newline bool                   `yaml:"newline,omitempty" toml:"newline,omitempty"`
	NoSpace bool                   `yaml:"no_space,omitempty" toml:"no_space,omitempty"`
}

// Table is a record table. Grid widths are twips; rows hold one string per
// grid column, minus the numbering column when NumberRows is set.
type Table struct {
	Grid          []int                  `yaml:"grid" toml:"grid"`
	Header        []string               `yaml:"header,omitempty" toml:"header,omitempty"`
	HeaderOptions map[string]interface{} `yaml:"header_options,omitempty" toml:"header_options,omitempty"`
	CellOptions   map[string]interface{} `yaml:"cell_options,omitempty" toml:"cell_options,omitempty"`
	Rows          [][]string             `yaml:"rows,omitempty" toml:"rows,omitempty"`
	NumberRows    bool                   `yaml:"number_rows,omitempty" toml:"number_rows,omitempty"`
	RepeatHeader  bool                   `yaml:"repeat_header,omitempty" toml:"repeat_header,omitempty"`
	CantSplit     bool                   `yaml:"cant_split,omitempty" toml:"cant_split,omitempty"`
	Alignment     string                 `yaml:"alignment,omitempty" toml:"alignment,omitempty"`
	Indent        *int                   `yaml:"indent,omitempty" toml:"indent,omitempty"`
	Borders       *Borders               `yaml:"borders,omitempty" toml:"borders,omitempty"`
	CellMargins   *Margins               `yaml:"cell_margins,omitempty" toml:"cell_margins,omitempty"`
	Shading       string                 `yaml:"shading,omitempty" toml:"shading,omitempty"`
	Footer        *Footer                `yaml:"footer,omitempty" toml:"footer,omitempty"`
}

// Borders applies one border to every edge except those listed in None,
// which are written as explicit nil edges
type Borders struct {
	Style string   `yaml:"style" toml:"style"`
	Width int      `yaml:"width" toml:"width"`
	Color string   `yaml:"color,omitempty" toml:"color,omitempty"`
	None  []string `yaml:"none,omitempty" toml:"none,omitempty"`
}

// Margins are cell margins in twips
type Margins struct {
	Top    *int `yaml:"top,omitempty" toml:"top,omitempty"`
	Left   *int `yaml:"left,omitempty" toml:"left,omitempty"`
	Bottom *int `yaml:"bottom,omitempty" toml:"bottom,omitempty"`
	Right  *int `yaml:"right,omitempty" toml:"right,omitempty"`
}

// Footer sums one column of the rows. SumColumn is 1-based within a row.
// Amounts are whole minor units; ",", ".", "_" and spaces may only separate
// 3-digit groups.
type Footer struct {
	Label        string                 `yaml:"label" toml:"label"`
	SumColumn    int                    `yaml:"sum_column" toml:"sum_column"`
	Symbol       string                 `yaml:"symbol,omitempty" toml:"symbol,omitempty"`
	Locale       string                 `yaml:"locale,omitempty" toml:"locale,omitempty"`
	LabelOptions map[string]interface{} `yaml:"label_options,omitempty" toml:"label_options,omitempty"`
	ValueOptions map[string]interface{} `yaml:"value_options,omitempty" toml:"value_options,omitempty"`
}

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported blueprint extension %q", filepath.Ext(path))
}

// Load reads and parses a blueprint file
func Load(path string) (*Blueprint, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint: %w", err)
	}

	bp, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if bp.Identity == "" {
		base := filepath.Base(path)
		bp.Identity = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return bp, nil
}

// Parse decodes a blueprint. Unknown fields are rejected.
func Parse(data []byte, format Format) (*Blueprint, error) {
	var bp Blueprint

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&bp); err != nil {
			return nil, fmt.Errorf("failed to parse YAML blueprint: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&bp); err != nil {
			return nil, fmt.Errorf("failed to parse TOML blueprint: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported blueprint format %q", format)
	}

	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Validate checks the block structure. Formatting values are checked when
// the document is built.
func (bp *Blueprint) Validate() error {
	for i, b := range bp.Blocks {
		switch {
		case b.Paragraph != nil && b.Table != nil:
			return fmt.Errorf("block %d: has both a paragraph and a table", i+1)
		case b.Paragraph == nil && b.Table == nil:
			return fmt.Errorf("block %d: needs a paragraph or a table", i+1)
		}
		if b.Table != nil && len(b.Table.Grid) == 0 {
			return fmt.Errorf("block %d: table needs a grid", i+1)
		}
	}
	return nil
}
