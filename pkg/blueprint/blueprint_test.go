package blueprint

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docxgen/pkg/docxgen"
)

const claimsYAML = `
identity: claims
blocks:
  - paragraph:
      options: {alignment: center}
      runs:
        - text: Title
          options:
            underline: {style: double}
            size: 20
        - newline: true
  - paragraph: {}
  - paragraph:
      runs:
        - text: "A simple chemical formula: CO"
        - text: "2"
          no_space: true
          options: {subscript: true}
  - table:
      grid: [523, 1809, 3262, 1438, 4, 1970]
      header: [No, Kode Barang, Nama Barang, Quantity, "", Biaya]
      header_options: {bold: true, alignment: center}
      number_rows: true
      alignment: left
      indent: -15
      borders: {style: single, width: 4, color: "000001", none: [right, insideV]}
      cell_margins: {top: 0, left: 93, bottom: 0, right: 108}
      rows:
        - [BRG-001, Printer toner, "2", "", "100"]
        - [BRG-002, Paper A4, "10", "", "250,000"]
      footer:
        label: Grand Total
        sum_column: 5
        symbol: Rp
        locale: en
        label_options: {bold: true}
`

const claimsTOML = `
identity = "claims"

[[blocks]]
[blocks.paragraph]
options = { alignment = "center" }
[[blocks.paragraph.runs]]
text = "Title"
options = { underline = { style = "double" }, size = 20 }
[[blocks.paragraph.runs]]
newline = true

[[blocks]]
[blocks.paragraph]

[[blocks]]
[blocks.paragraph]
[[blocks.paragraph.runs]]
text = "A simple chemical formula: CO"
[[blocks.paragraph.runs]]
text = "2"
no_space = true
options = { subscript = true }

[[blocks]]
[blocks.table]
grid = [523, 1809, 3262, 1438, 4, 1970]
header = ["No", "Kode Barang", "Nama Barang", "Quantity", "", "Biaya"]
header_options = { bold = true, alignment = "center" }
number_rows = true
alignment = "left"
indent = -15
borders = { style = "single", width = 4, color = "000001", none = ["right", "insideV"] }
cell_margins = { top = 0, left = 93, bottom = 0, right = 108 }
rows = [
  ["BRG-001", "Printer toner", "2", "", "100"],
  ["BRG-002", "Paper A4", "10", "", "250,000"],
]
[blocks.table.footer]
label = "Grand Total"
sum_column = 5
symbol = "Rp"
locale = "en"
label_options = { bold = true }
`

func quietDocument(t *testing.T, bp *Blueprint) *docxgen.Document {
	t.Helper()

	doc, err := bp.Document(
		docxgen.WithConfig(&docxgen.Config{OutputDir: t.TempDir()}),
		docxgen.WithLogger(docxgen.NewLogger(io.Discard, "error")),
	)
	require.NoError(t, err)
	return doc
}

func TestParseYAML(t *testing.T) {
	bp, err := Parse([]byte(claimsYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "claims", bp.Identity)
	require.Len(t, bp.Blocks, 4)
	require.NotNil(t, bp.Blocks[0].Paragraph)
	assert.Len(t, bp.Blocks[0].Paragraph.Runs, 2)
	assert.True(t, bp.Blocks[0].Paragraph.Runs[1].Newline)
	require.NotNil(t, bp.Blocks[3].Table)
	assert.Equal(t, 5, bp.Blocks[3].Table.Footer.SumColumn)

	doc := quietDocument(t, bp)
	blocks := doc.Blocks()
	require.Len(t, blocks, 4)

	title := blocks[0].(*docxgen.Paragraph)
	assert.Equal(t, docxgen.AlignCenter, title.Alignment)
	assert.Equal(t, docxgen.UnderlineDouble, title.Runs()[0].Format.Underline)
	assert.Equal(t, docxgen.Size(20), title.Runs()[0].Format.Size)

	formula := blocks[2].(*docxgen.Paragraph)
	assert.Equal(t, "A simple chemical formula: CO2", formula.Text())

	table := blocks[3].(*docxgen.Table)
	assert.Len(t, table.Body, 2)
	assert.Equal(t, "Rp 250,100", table.Footer.Cells[1].Paragraphs[0].Text())
	assert.Equal(t, "1", table.Body[0].Cells[0].Paragraphs[0].Text())
}

func TestYAMLAndTOMLProduceTheSameBody(t *testing.T) {
	fromYAML, err := Parse([]byte(claimsYAML), FormatYAML)
	require.NoError(t, err)
	fromTOML, err := Parse([]byte(claimsTOML), FormatTOML)
	require.NoError(t, err)

	a, err := docxgen.Serialize(quietDocument(t, fromYAML))
	require.NoError(t, err)
	b, err := docxgen.Serialize(quietDocument(t, fromTOML))
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}

func TestUnknownOptionSurfaces(t *testing.T) {
	bp, err := Parse([]byte(`
blocks:
  - paragraph:
      runs:
        - text: typo
          options: {blod: true}
`), FormatYAML)
	require.NoError(t, err)

	_, err = bp.Document(docxgen.WithLogger(docxgen.NewLogger(io.Discard, "error")))
	require.Error(t, err)
	assert.ErrorIs(t, err, docxgen.ErrUnknownOption)
	assert.Contains(t, err.Error(), "block 1")
	assert.Contains(t, err.Error(), "run 1")
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("identity: x\nblokcs: []\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("identity = \"x\"\nblokcs = []\n"), FormatTOML)
	assert.Error(t, err)
}

func TestValidateBlocks(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty block", "blocks:\n  - {}\n", "needs a paragraph or a table"},
		{"both", "blocks:\n  - paragraph: {}\n    table: {grid: [100]}\n", "has both"},
		{"no grid", "blocks:\n  - table: {header: [a]}\n", "needs a grid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), FormatYAML)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestTableErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind error
	}{
		{
			"bad amount",
			"blocks:\n  - table:\n      grid: [100, 100]\n      rows: [[x, abc]]\n      footer: {label: T, sum_column: 2}\n",
			docxgen.ErrInvalidFormatValue,
		},
		{
			"bad border",
			"blocks:\n  - table:\n      grid: [100]\n      borders: {style: wiggly, width: 4}\n",
			docxgen.ErrInvalidFormatValue,
		},
		{
			"bad edge",
			"blocks:\n  - table:\n      grid: [100]\n      borders: {style: single, width: 4, none: [middle]}\n",
			docxgen.ErrInvalidFormatValue,
		},
		{
			"too many cells",
			"blocks:\n  - table:\n      grid: [100]\n      rows: [[a, b]]\n",
			docxgen.ErrStructuralInvariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp, err := Parse([]byte(tt.src), FormatYAML)
			require.NoError(t, err)
			_, err = bp.Document(docxgen.WithLogger(docxgen.NewLogger(io.Discard, "error")))
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "invoice.yml")
	require.NoError(t, os.WriteFile(path, []byte("blocks:\n  - paragraph: {runs: [{text: hi}]}\n"), 0o644))

	bp, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "invoice", bp.Identity, "identity falls back to the file name")

	tomlPath := filepath.Join(dir, "claims.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(claimsTOML), 0o644))
	bp, err = Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "claims", bp.Identity)

	_, err = Load(filepath.Join(dir, "notes.txt"))
	assert.ErrorContains(t, err, "unsupported blueprint extension")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveFromBlueprint(t *testing.T) {
	bp, err := Parse([]byte(claimsYAML), FormatYAML)
	require.NoError(t, err)

	dir := t.TempDir()
	doc, err := bp.Document(
		docxgen.WithConfig(&docxgen.Config{OutputDir: dir}),
		docxgen.WithLogger(docxgen.NewLogger(io.Discard, "error")),
	)
	require.NoError(t, err)
	require.NoError(t, doc.Save())

	pkg, err := docxgen.OpenPackage(filepath.Join(dir, "claims.docx"))
	require.NoError(t, err)
	assert.Equal(t, []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"}, pkg.Names())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"", 0, false},
		{"100", 100, false},
		{"250,000", 250000, false},
		{"1.250.000", 1250000, false},
		{"1 250 000", 1250000, false},
		{"-1_000", -1000, false},
		{"99.95", 0, true},
		{"1,25", 0, true},
		{"1,2345", 0, true},
		{"abc", 0, true},
		{",", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, docxgen.ErrInvalidFormatValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFractionalAmountRejected(t *testing.T) {
	bp, err := Parse([]byte("blocks:\n  - table:\n      grid: [100, 100]\n      rows: [[x, \"99.95\"]]\n      footer: {label: T, sum_column: 2}\n"), FormatYAML)
	require.NoError(t, err)

	_, err = bp.Document(docxgen.WithLogger(docxgen.NewLogger(io.Discard, "error")))
	assert.ErrorIs(t, err, docxgen.ErrInvalidFormatValue)
	assert.Contains(t, err.Error(), "row 1")
}
