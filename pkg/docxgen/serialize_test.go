package docxgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeTitleAndBlankParagraph(t *testing.T) {
	doc := testDocument(t, "title")

	err := doc.AddParagraph(nil, func(p *Paragraph) error {
		return p.AddText("Title", Options{
			"bold":      true,
			"underline": Options{"style": "double"},
			"size":      20,
		})
	})
	require.NoError(t, err)
	require.NoError(t, doc.AddParagraph(nil, nil))

	body := bodyOf(t, doc)
	paragraphs := body.children("p")
	require.Len(t, paragraphs, 2)
	assert.Equal(t, []string{"p", "p"}, body.names())

	runs := paragraphs[0].children("r")
	require.Len(t, runs, 1)
	rPr := runs[0].child("rPr")
	require.NotNil(t, rPr)
	assert.Equal(t, []string{"b", "sz", "u"}, rPr.names())
	assert.Equal(t, "40", rPr.child("sz").Attrs["val"])
	assert.Equal(t, "double", rPr.child("u").Attrs["val"])
	assert.Equal(t, "Title", runs[0].child("t").Text)

	assert.Empty(t, paragraphs[1].Children)
}

func TestSerializeNoSpaceBeforeSubscript(t *testing.T) {
	doc := testDocument(t, "formula")

	err := doc.AddParagraph(nil, func(p *Paragraph) error {
		if err := p.AddText("A simple chemical formula: CO", nil); err != nil {
			return err
		}
		p.NoSpace()
		return p.AddText("2", Options{"subscript": true})
	})
	require.NoError(t, err)

	runs := bodyOf(t, doc).child("p").children("r")
	require.Len(t, runs, 2)

	co := runs[0].child("t")
	assert.Equal(t, "A simple chemical formula: CO", co.Text)
	_, preserved := co.Attrs["space"]
	assert.False(t, preserved, "no space marker expected on the text before a glued run")
	assert.Nil(t, runs[0].child("rPr"))

	sub := runs[1]
	assert.Equal(t, "2", sub.child("t").Text)
	require.NotNil(t, sub.child("rPr"))
	assert.Equal(t, "subscript", sub.child("rPr").child("vertAlign").Attrs["val"])
}

func TestSerializeNoLeadingSpaceOption(t *testing.T) {
	doc := testDocument(t, "glued")

	err := doc.AddParagraph(nil, func(p *Paragraph) error {
		if err := p.AddText("H", nil); err != nil {
			return err
		}
		if err := p.AddText("2", Options{"subscript": true, "no_leading_space": true}); err != nil {
			return err
		}
		return p.AddText("O", Options{"no_leading_space": true})
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"H", "2", "O"}, bodyOf(t, doc).texts())
}

func TestSerializeSeparatorBetweenRuns(t *testing.T) {
	doc := testDocument(t, "separator")

	err := doc.AddParagraph(nil, func(p *Paragraph) error {
		if err := p.AddText("Simple string of text and", nil); err != nil {
			return err
		}
		return p.AddText("some formatted text", Options{"bold": true, "italics": true, "underline": "single"})
	})
	require.NoError(t, err)

	runs := bodyOf(t, doc).child("p").children("r")
	require.Len(t, runs, 2)

	first := runs[0].child("t")
	assert.Equal(t, "Simple string of text and ", first.Text)
	assert.Equal(t, "preserve", first.Attrs["space"])

	last := runs[1].child("t")
	assert.Equal(t, "some formatted text", last.Text)
	_, preserved := last.Attrs["space"]
	assert.False(t, preserved)
	assert.Equal(t, []string{"b", "i", "u"}, runs[1].child("rPr").names())
}

func TestSerializeSeparatorLeavesDecorationBehind(t *testing.T) {
	doc := testDocument(t, "decorated")

	err := doc.AddParagraph(nil, func(p *Paragraph) error {
		if err := p.AddText("under", Options{"underline": true, "bold": true}); err != nil {
			return err
		}
		if err := p.AddText("plain", nil); err != nil {
			return err
		}
		if err := p.AddText("shaded", Options{"shading": "D9D9D9"}); err != nil {
			return err
		}
		return p.AddText("end", nil)
	})
	require.NoError(t, err)

	p := bodyOf(t, doc).child("p")
	runs := p.children("r")
	require.Len(t, runs, 6)
	assert.Equal(t, []string{"under", " ", "plain ", "shaded", " ", "end"}, p.texts())

	assert.Equal(t, []string{"b", "u"}, runs[0].child("rPr").names())
	assert.Equal(t, "under", runs[0].child("t").Text)
	assert.Equal(t, []string{"b"}, runs[1].child("rPr").names(), "the gap keeps bold but drops the underline")
	assert.Equal(t, "preserve", runs[1].child("t").Attrs["space"])

	assert.Equal(t, []string{"shd"}, runs[3].child("rPr").names())
	assert.Nil(t, runs[4].child("rPr"))
	assert.Equal(t, " ", runs[4].child("t").Text)
}

func TestSerializeBreakTakesNoSeparator(t *testing.T) {
	doc := testDocument(t, "break")

	err := doc.AddParagraph(Options{"alignment": "center"}, func(p *Paragraph) error {
		if err := p.AddText("Title", nil); err != nil {
			return err
		}
		p.AddNewline()
		return p.AddText("Subtitle", nil)
	})
	require.NoError(t, err)

	p := bodyOf(t, doc).child("p")
	assert.Equal(t, []string{"pPr", "r", "r", "r"}, p.names())
	assert.Equal(t, "center", p.child("pPr").child("jc").Attrs["val"])

	runs := p.children("r")
	assert.Equal(t, "Title", runs[0].child("t").Text)
	assert.NotNil(t, runs[1].child("br"))
	assert.Nil(t, runs[1].child("t"))
	assert.Equal(t, "Subtitle", runs[2].child("t").Text)
}

func TestSerializePreservesWhitespace(t *testing.T) {
	tests := []struct {
		text     string
		preserve bool
	}{
		{"plain", false},
		{" leading", true},
		{"trailing ", true},
		{"double  space", true},
		{"tab\there", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			doc := testDocument(t, "ws")
			require.NoError(t, doc.AddParagraph(nil, func(p *Paragraph) error {
				return p.AddText(tt.text, nil)
			}))

			text := bodyOf(t, doc).child("p").child("r").child("t")
			assert.Equal(t, tt.text, text.Text)
			_, preserved := text.Attrs["space"]
			assert.Equal(t, tt.preserve, preserved)
		})
	}
}

func TestSerializeEscaping(t *testing.T) {
	tests := []string{
		`a < b`,
		`fish & chips`,
		`"quoted"`,
		`it's`,
		`<w:t>&amp;"'</w:t>`,
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			doc := testDocument(t, "escape")
			require.NoError(t, doc.AddParagraph(nil, func(p *Paragraph) error {
				return p.AddText(text, nil)
			}))

			data, err := Serialize(doc)
			require.NoError(t, err)
			assert.NotContains(t, string(data), "<w:t>"+text)

			assert.Equal(t, []string{text}, parseMarkup(t, data).texts())
		})
	}
}

func TestSerializeRunPropertiesPresentIffSet(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected []string
	}{
		{"none", Options{}, nil},
		{"bold", Options{"bold": true}, []string{"b"}},
		{"bold false", Options{"bold": false}, nil},
		{"italics", Options{"italics": true}, []string{"i"}},
		{"underline", Options{"underline": true}, []string{"u"}},
		{"size", Options{"size": 11}, []string{"sz"}},
		{"subscript", Options{"subscript": true}, []string{"vertAlign"}},
		{"superscript", Options{"superscript": true}, []string{"vertAlign"}},
		{"font", Options{"font": "Arial"}, []string{"rFonts"}},
		{"color", Options{"color": "ff0000"}, []string{"color"}},
		{"shading", Options{"shading": "D9D9D9"}, []string{"shd"}},
		{
			"everything",
			Options{
				"superscript": true,
				"shading":     "D9D9D9",
				"underline":   "wave",
				"size":        9,
				"color":       "auto",
				"italics":     true,
				"bold":        true,
				"font":        "Arial",
			},
			[]string{"rFonts", "b", "i", "color", "sz", "u", "shd", "vertAlign"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument(t, "props")
			require.NoError(t, doc.AddParagraph(nil, func(p *Paragraph) error {
				return p.AddText("x", tt.opts)
			}))

			r := bodyOf(t, doc).child("p").child("r")
			rPr := r.child("rPr")
			if tt.expected == nil {
				assert.Nil(t, rPr)
				return
			}
			require.NotNil(t, rPr)
			assert.Equal(t, tt.expected, rPr.names())
		})
	}
}

func TestSerializeParagraphDefaults(t *testing.T) {
	doc := testDocument(t, "defaults")

	err := doc.AddParagraph(Options{"bold": true, "alignment": "right"}, func(p *Paragraph) error {
		if err := p.AddText("John", nil); err != nil {
			return err
		}
		return p.AddText("(whispering)", Options{"bold": false, "italics": true})
	})
	require.NoError(t, err)

	p := bodyOf(t, doc).child("p")
	pPr := p.child("pPr")
	require.NotNil(t, pPr)
	assert.Equal(t, []string{"jc", "rPr"}, pPr.names())
	assert.Equal(t, "right", pPr.child("jc").Attrs["val"])

	runs := p.children("r")
	require.Len(t, runs, 2)
	assert.Equal(t, []string{"b"}, runs[0].child("rPr").names())
	assert.Equal(t, []string{"i"}, runs[1].child("rPr").names())
}

func TestSerializeAlignmentValues(t *testing.T) {
	tests := []struct {
		alignment string
		jc        string
	}{
		{"start", ""},
		{"left", ""},
		{"center", "center"},
		{"end", "right"},
		{"right", "right"},
		{"justify", "both"},
	}

	for _, tt := range tests {
		t.Run(tt.alignment, func(t *testing.T) {
			doc := testDocument(t, "align")
			require.NoError(t, doc.AddParagraph(Options{"alignment": tt.alignment}, nil))

			p := bodyOf(t, doc).child("p")
			if tt.jc == "" {
				assert.Nil(t, p.child("pPr"))
				return
			}
			assert.Equal(t, tt.jc, p.child("pPr").child("jc").Attrs["val"])
		})
	}
}

func TestSerializeRejectsInvalidModel(t *testing.T) {
	p, err := NewParagraph(nil)
	require.NoError(t, err)
	require.NoError(t, p.AddText("x", Options{"subscript": true}))

	// mutate after construction, bypassing option parsing
	p.Runs()[0].Format.Superscript = true

	_, err = SerializeBlocks([]Block{p})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStructuralInvariant)
}

func TestSerializeIsDeterministic(t *testing.T) {
	build := func() []byte {
		doc := testDocument(t, "same")
		require.NoError(t, doc.AddParagraph(Options{"italics": true}, func(p *Paragraph) error {
			return p.AddText("same text", Options{"size": 12, "bold": true, "underline": "dotted"})
		}))
		table, err := BuildTable(claimsSpec(t), sampleClaims(), claimRow, claimsFooter(t))
		require.NoError(t, err)
		require.NoError(t, doc.AddTable(table))

		data, err := Serialize(doc)
		require.NoError(t, err)
		return data
	}

	first := build()
	assert.Equal(t, first, build())
	assert.True(t, strings.HasPrefix(string(first), `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`))
}
