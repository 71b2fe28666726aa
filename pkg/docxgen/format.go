package docxgen

import (
	"strings"
)

// UnderlineStyle is a w:u value
type UnderlineStyle string

const (
	UnderlineSingle      UnderlineStyle = "single"
	UnderlineWords       UnderlineStyle = "words"
	UnderlineDouble      UnderlineStyle = "double"
	UnderlineThick       UnderlineStyle = "thick"
	UnderlineDotted      UnderlineStyle = "dotted"
	UnderlineDottedHeavy UnderlineStyle = "dottedHeavy"
	UnderlineDash        UnderlineStyle = "dash"
	UnderlineDashedHeavy UnderlineStyle = "dashedHeavy"
	UnderlineDashLong    UnderlineStyle = "dashLong"
	UnderlineDotDash     UnderlineStyle = "dotDash"
	UnderlineDotDotDash  UnderlineStyle = "dotDotDash"
	UnderlineWave        UnderlineStyle = "wave"
	UnderlineWavyHeavy   UnderlineStyle = "wavyHeavy"
	UnderlineWavyDouble  UnderlineStyle = "wavyDouble"
	UnderlineNone        UnderlineStyle = "none"
)

var underlineStyles = []UnderlineStyle{
	UnderlineSingle, UnderlineWords, UnderlineDouble, UnderlineThick,
	UnderlineDotted, UnderlineDottedHeavy, UnderlineDash, UnderlineDashedHeavy,
	UnderlineDashLong, UnderlineDotDash, UnderlineDotDotDash, UnderlineWave,
	UnderlineWavyHeavy, UnderlineWavyDouble, UnderlineNone,
}

// ParseUnderlineStyle validates an underline style name. Matching is case
// insensitive; the canonical spelling is returned.
func ParseUnderlineStyle(s string) (UnderlineStyle, error) {
	for _, style := range underlineStyles {
		if strings.EqualFold(s, string(style)) {
			return style, nil
		}
	}
	return "", NewFormatValueError("underline style", s, "not a recognized style")
}

// Alignment is a paragraph or table alignment
type Alignment string

const (
	AlignStart   Alignment = "start"
	AlignCenter  Alignment = "center"
	AlignEnd     Alignment = "end"
	AlignJustify Alignment = "justify"
)

// ParseAlignment validates an alignment name. "left", "right" and "both" are
// accepted as the transitional spellings of start, end and justify.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "start", "left":
		return AlignStart, nil
	case "center", "centre":
		return AlignCenter, nil
	case "end", "right":
		return AlignEnd, nil
	case "justify", "both":
		return AlignJustify, nil
	}
	return "", NewFormatValueError("alignment", s, "expected start, center, end or justify")
}

// jc returns the w:jc value. Transitional values are used because older
// consumers do not understand start/end.
func (a Alignment) jc() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "right"
	case AlignJustify:
		return "both"
	default:
		return "left"
	}
}

// VerticalAlignment is a cell's w:vAlign value
type VerticalAlignment string

const (
	VAlignTop    VerticalAlignment = "top"
	VAlignCenter VerticalAlignment = "center"
	VAlignBottom VerticalAlignment = "bottom"
)

// ParseVerticalAlignment validates a cell vertical alignment
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	switch VerticalAlignment(strings.ToLower(s)) {
	case VAlignTop:
		return VAlignTop, nil
	case VAlignCenter:
		return VAlignCenter, nil
	case VAlignBottom:
		return VAlignBottom, nil
	}
	return "", NewFormatValueError("vertical alignment", s, "expected top, center or bottom")
}

// Color is a six digit RGB hex value or "auto"
type Color string

// ColorAuto lets the consumer pick the colour
const ColorAuto Color = "auto"

// ParseColor validates a colour. A leading '#' is accepted; hex digits are
// upper-cased.
func ParseColor(s string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if strings.EqualFold(v, "auto") {
		return ColorAuto, nil
	}
	if len(v) != 6 {
		return "", NewFormatValueError("color", s, "expected six hex digits or auto")
	}
	for _, c := range v {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return "", NewFormatValueError("color", s, "expected six hex digits or auto")
		}
	}
	return Color(strings.ToUpper(v)), nil
}

// Size is a font size in whole points
type Size int

// NewSize validates a font size
func NewSize(points int) (Size, error) {
	if points <= 0 {
		return 0, NewFormatValueError("size", points, "must be positive")
	}
	return Size(points), nil
}

// HalfPoints returns the w:sz value
func (s Size) HalfPoints() int {
	return int(s) * 2
}

// Unit is the w:type of a measurement
type Unit string

const (
	UnitDxa  Unit = "dxa"  // twentieths of a point
	UnitPct  Unit = "pct"  // fiftieths of a percent
	UnitAuto Unit = "auto" // let the consumer decide
)

// Measurement is a width, indent or margin
type Measurement struct {
	Value int
	Unit  Unit
}

// Twips returns a dxa measurement
func Twips(n int) Measurement {
	return Measurement{Value: n, Unit: UnitDxa}
}

// Percent returns a pct measurement for a whole percentage
func Percent(p int) Measurement {
	return Measurement{Value: p * 50, Unit: UnitPct}
}

// Dxa returns a validated dxa measurement
func Dxa(n int) (Measurement, error) {
	m := Twips(n)
	if err := m.Validate(); err != nil {
		return Measurement{}, err
	}
	return m, nil
}

// Pct returns a validated pct measurement for a whole percentage
func Pct(p int) (Measurement, error) {
	m := Percent(p)
	if err := m.Validate(); err != nil {
		return Measurement{}, err
	}
	return m, nil
}

// Auto returns an automatic measurement
func Auto() Measurement {
	return Measurement{Unit: UnitAuto}
}

// IsZero reports whether the measurement was never set
func (m Measurement) IsZero() bool {
	return m.Unit == ""
}

// Validate checks the unit and that dxa/pct values are positive
func (m Measurement) Validate() error {
	switch m.Unit {
	case UnitAuto:
		return nil
	case UnitDxa, UnitPct:
		if m.Value <= 0 {
			return NewFormatValueError("measurement", m.Value, "must be positive")
		}
		return nil
	}
	return NewFormatValueError("measurement unit", m.Unit, "expected dxa, pct or auto")
}

// validateOffset is Validate for indents and margins, where zero is meaningful
func (m Measurement) validateOffset() error {
	if m.Unit != UnitDxa {
		return NewFormatValueError("offset unit", m.Unit, "offsets must be dxa")
	}
	return nil
}

// BorderStyle is a w:val value for a border edge
type BorderStyle string

const (
	BorderSingle BorderStyle = "single"
	BorderDouble BorderStyle = "double"
	BorderThick  BorderStyle = "thick"
	BorderDotted BorderStyle = "dotted"
	BorderDashed BorderStyle = "dashed"
	BorderNil    BorderStyle = "nil"
	BorderNone   BorderStyle = "none"
)

// ParseBorderStyle validates a border style name
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch BorderStyle(strings.ToLower(s)) {
	case BorderSingle:
		return BorderSingle, nil
	case BorderDouble:
		return BorderDouble, nil
	case BorderThick:
		return BorderThick, nil
	case BorderDotted:
		return BorderDotted, nil
	case BorderDashed:
		return BorderDashed, nil
	case BorderNil:
		return BorderNil, nil
	case BorderNone:
		return BorderNone, nil
	}
	return "", NewFormatValueError("border style", s, "not a recognized style")
}

// BorderWidth is a border thickness in eighths of a point
type BorderWidth int

// NewBorderWidth validates a border width
func NewBorderWidth(eighths int) (BorderWidth, error) {
	if eighths <= 0 {
		return 0, NewFormatValueError("border width", eighths, "must be positive")
	}
	return BorderWidth(eighths), nil
}

// Border describes one edge
type Border struct {
	Style BorderStyle
	Width BorderWidth
	Space int
	Color Color
}

// NewBorder builds a validated border
func NewBorder(style string, eighths int, color string) (Border, error) {
	bs, err := ParseBorderStyle(style)
	if err != nil {
		return Border{}, err
	}
	b := Border{Style: bs}
	if bs == BorderNil || bs == BorderNone {
		return b, nil
	}
	if b.Width, err = NewBorderWidth(eighths); err != nil {
		return Border{}, err
	}
	if color != "" {
		if b.Color, err = ParseColor(color); err != nil {
			return Border{}, err
		}
	}
	return b, nil
}

// NoBorder is an explicit "nil" edge, used to cancel an inherited border
func NoBorder() *Border {
	return &Border{Style: BorderNil}
}

// Validate re-checks a border built without NewBorder
func (b Border) Validate() error {
	if _, err := ParseBorderStyle(string(b.Style)); err != nil {
		return err
	}
	if b.Style == BorderNil || b.Style == BorderNone {
		return nil
	}
	if _, err := NewBorderWidth(int(b.Width)); err != nil {
		return err
	}
	if b.Space < 0 {
		return NewFormatValueError("border space", b.Space, "must not be negative")
	}
	if b.Color != "" {
		if _, err := ParseColor(string(b.Color)); err != nil {
			return err
		}
	}
	return nil
}

// BorderSpec holds an optional border per edge
type BorderSpec struct {
	Top     *Border
	Left    *Border
	Bottom  *Border
	Right   *Border
	InsideH *Border
	InsideV *Border
}

// UniformBorders applies the same border to all six edges
func UniformBorders(b Border) *BorderSpec {
	edge := func() *Border { c := b; return &c }
	return &BorderSpec{
		Top:     edge(),
		Left:    edge(),
		Bottom:  edge(),
		Right:   edge(),
		InsideH: edge(),
		InsideV: edge(),
	}
}

// Validate checks every present edge
func (s *BorderSpec) Validate() error {
	for _, b := range []*Border{s.Top, s.Left, s.Bottom, s.Right, s.InsideH, s.InsideV} {
		if b == nil {
			continue
		}
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CellMargins holds optional margins per side, in dxa
type CellMargins struct {
	Top    *Measurement
	Left   *Measurement
	Bottom *Measurement
	Right  *Measurement
}

// Validate checks every present side
func (m *CellMargins) Validate() error {
	for _, side := range []*Measurement{m.Top, m.Left, m.Bottom, m.Right} {
		if side == nil {
			continue
		}
		if err := side.validateOffset(); err != nil {
			return err
		}
	}
	return nil
}
