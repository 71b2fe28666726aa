package docxgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnderlineStyle(t *testing.T) {
	for _, style := range underlineStyles {
		got, err := ParseUnderlineStyle(string(style))
		require.NoError(t, err)
		assert.Equal(t, style, got)
	}

	got, err := ParseUnderlineStyle("DASHEDHEAVY")
	require.NoError(t, err)
	assert.Equal(t, UnderlineDashedHeavy, got)

	for _, bad := range []string{"", "squiggly", "single "} {
		_, err := ParseUnderlineStyle(bad)
		assert.ErrorIs(t, err, ErrInvalidFormatValue, bad)
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		input string
		want  Alignment
	}{
		{"start", AlignStart},
		{"left", AlignStart},
		{"Center", AlignCenter},
		{"end", AlignEnd},
		{"right", AlignEnd},
		{"justify", AlignJustify},
		{"both", AlignJustify},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlignment(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAlignment("middle")
	assert.ErrorIs(t, err, ErrInvalidFormatValue)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"000001", "000001", false},
		{"#ff00aa", "FF00AA", false},
		{"AUTO", ColorAuto, false},
		{"fff", "", true},
		{"red", "", true},
		{"12345G", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormatValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumericValuesMustBePositive(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := NewSize(n)
		assert.ErrorIs(t, err, ErrInvalidFormatValue)

		_, err = NewBorderWidth(n)
		assert.ErrorIs(t, err, ErrInvalidFormatValue)

		_, err = Dxa(n)
		assert.ErrorIs(t, err, ErrInvalidFormatValue)

		_, err = Pct(n)
		assert.ErrorIs(t, err, ErrInvalidFormatValue)
	}

	size, err := NewSize(20)
	require.NoError(t, err)
	assert.Equal(t, 40, size.HalfPoints())

	m, err := Pct(100)
	require.NoError(t, err)
	assert.Equal(t, Measurement{Value: 5000, Unit: UnitPct}, m)
}

func TestMeasurementValidate(t *testing.T) {
	assert.NoError(t, Auto().Validate())
	assert.NoError(t, Twips(1).Validate())
	assert.ErrorIs(t, Measurement{Value: 10, Unit: "cm"}.Validate(), ErrInvalidFormatValue)
	assert.True(t, Measurement{}.IsZero())
}

func TestNewBorder(t *testing.T) {
	b, err := NewBorder("single", 4, "000001")
	require.NoError(t, err)
	assert.Equal(t, Border{Style: BorderSingle, Width: 4, Color: "000001"}, b)

	b, err = NewBorder("nil", 0, "")
	require.NoError(t, err)
	assert.Equal(t, Border{Style: BorderNil}, b)

	_, err = NewBorder("single", 0, "")
	assert.ErrorIs(t, err, ErrInvalidFormatValue)

	_, err = NewBorder("wiggly", 4, "")
	assert.ErrorIs(t, err, ErrInvalidFormatValue)

	_, err = NewBorder("double", 4, "blue")
	assert.ErrorIs(t, err, ErrInvalidFormatValue)
}

func TestUniformBordersCopiesEdges(t *testing.T) {
	spec := UniformBorders(Border{Style: BorderSingle, Width: 4})
	spec.Top.Width = 12

	assert.Equal(t, BorderWidth(4), spec.Bottom.Width)
	assert.NoError(t, spec.Validate())
}

func TestCellMarginsValidate(t *testing.T) {
	zero := Twips(0)
	assert.NoError(t, (&CellMargins{Top: &zero}).Validate())

	pct := Percent(5)
	assert.ErrorIs(t, (&CellMargins{Left: &pct}).Validate(), ErrInvalidFormatValue)
}

func TestParseVerticalAlignment(t *testing.T) {
	got, err := ParseVerticalAlignment("Bottom")
	require.NoError(t, err)
	assert.Equal(t, VAlignBottom, got)

	_, err = ParseVerticalAlignment("middle")
	assert.ErrorIs(t, err, ErrInvalidFormatValue)
}
