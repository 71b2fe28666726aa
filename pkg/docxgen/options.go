package docxgen

import (
	"math"
	"sort"
)

// Options is a formatting option map as accepted by NewRun, NewParagraph and
// Paragraph.AddText. Keys:
//
//	bold, italics (or italic), underline, size, subscript, superscript,
//	font, color, shading, no_leading_space (runs only), alignment (paragraphs only)
//
// underline takes true, a style name, or a map holding a "style" key.
type Options map[string]interface{}

const (
	optAlignment      = "alignment"
	optBold           = "bold"
	optItalics        = "italics"
	optItalic         = "italic"
	optUnderline      = "underline"
	optSize           = "size"
	optSubscript      = "subscript"
	optSuperscript    = "superscript"
	optNoLeadingSpace = "no_leading_space"
	optFont           = "font"
	optColor          = "color"
	optShading        = "shading"
)

// RunFormat is the resolved formatting attribute set of a run. The zero value
// is plain text.
type RunFormat struct {
	Bold        bool
	Italic      bool
	Underline   UnderlineStyle // empty means no underline
	Size        Size           // zero means inherit
	Subscript   bool
	Superscript bool
	Font        string
	Color       Color
	Shading     Color
}

// Validate re-checks a format assembled by hand
func (f RunFormat) Validate() error {
	if f.Subscript && f.Superscript {
		return NewStructuralError("a run cannot be both subscript and superscript")
	}
	if f.Underline != "" {
		if _, err := ParseUnderlineStyle(string(f.Underline)); err != nil {
			return err
		}
	}
	if f.Size < 0 {
		return NewFormatValueError(optSize, int(f.Size), "must be positive")
	}
	if f.Color != "" {
		if _, err := ParseColor(string(f.Color)); err != nil {
			return err
		}
	}
	if f.Shading != "" {
		if _, err := ParseColor(string(f.Shading)); err != nil {
			return err
		}
	}
	return nil
}

// formatPatch records which attributes an option map set. Unset pointers
// leave the underlying format alone, which is how paragraph defaults and run
// overrides combine.
type formatPatch struct {
	alignment      *Alignment
	bold           *bool
	italic         *bool
	underline      *UnderlineStyle
	size           *Size
	subscript      *bool
	superscript    *bool
	noLeadingSpace *bool
	font           *string
	color          *Color
	shading        *Color
}

// apply returns f with the patch laid over it. Turning on one of
// subscript/superscript turns the other off.
func (p formatPatch) apply(f RunFormat) RunFormat {
	if p.bold != nil {
		f.Bold = *p.bold
	}
	if p.italic != nil {
		f.Italic = *p.italic
	}
	if p.underline != nil {
		f.Underline = *p.underline
	}
	if p.size != nil {
		f.Size = *p.size
	}
	if p.subscript != nil {
		f.Subscript = *p.subscript
		if f.Subscript {
			f.Superscript = false
		}
	}
	if p.superscript != nil {
		f.Superscript = *p.superscript
		if f.Superscript {
			f.Subscript = false
		}
	}
	if p.font != nil {
		f.Font = *p.font
	}
	if p.color != nil {
		f.Color = *p.color
	}
	if p.shading != nil {
		f.Shading = *p.shading
	}
	return f
}

type optionTarget int

const (
	runTarget optionTarget = iota
	paragraphTarget
)

func (t optionTarget) String() string {
	if t == paragraphTarget {
		return "paragraph"
	}
	return "run"
}

// parseOptions validates an option map for the given target. Keys are visited
// in sorted order so the reported error does not depend on map iteration.
func parseOptions(opts Options, target optionTarget) (formatPatch, error) {
	var p formatPatch
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := opts[key]
		var err error
		switch key {
		case optAlignment:
			if target != paragraphTarget {
				return p, &UnknownOptionError{Option: key, Target: target.String()}
			}
			var s string
			if s, err = stringOption(key, value); err == nil {
				var a Alignment
				if a, err = ParseAlignment(s); err == nil {
					p.alignment = &a
				}
			}
		case optBold:
			p.bold, err = boolOption(key, value)
		case optItalics, optItalic:
			p.italic, err = boolOption(key, value)
		case optUnderline:
			p.underline, err = underlineOption(value)
		case optSize:
			var n int
			if n, err = intOption(key, value); err == nil {
				var s Size
				if s, err = NewSize(n); err == nil {
					p.size = &s
				}
			}
		case optSubscript:
			p.subscript, err = boolOption(key, value)
		case optSuperscript:
			p.superscript, err = boolOption(key, value)
		case optNoLeadingSpace:
			if target != runTarget {
				return p, &UnknownOptionError{Option: key, Target: target.String()}
			}
			p.noLeadingSpace, err = boolOption(key, value)
		case optFont:
			var s string
			if s, err = stringOption(key, value); err == nil {
				if s == "" {
					err = NewFormatValueError(key, s, "must not be empty")
				} else {
					p.font = &s
				}
			}
		case optColor, optShading:
			var s string
			if s, err = stringOption(key, value); err == nil {
				var c Color
				if c, err = ParseColor(s); err == nil {
					if key == optColor {
						p.color = &c
					} else {
						p.shading = &c
					}
				}
			}
		default:
			return p, &UnknownOptionError{Option: key, Target: target.String()}
		}
		if err != nil {
			return p, err
		}
	}

	if p.subscript != nil && p.superscript != nil && *p.subscript && *p.superscript {
		return p, NewStructuralError("a %s cannot be both subscript and superscript", target)
	}
	return p, nil
}

func boolOption(key string, value interface{}) (*bool, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, NewFormatValueError(key, value, "expected a boolean")
	}
	return &b, nil
}

func stringOption(key string, value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case UnderlineStyle:
		return string(v), nil
	case Alignment:
		return string(v), nil
	case Color:
		return string(v), nil
	}
	return "", NewFormatValueError(key, value, "expected a string")
}

// intOption accepts the integer kinds plus integral floats, which is what
// YAML and TOML decoders hand back.
func intOption(key string, value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case Size:
		return int(v), nil
	case float32:
		return intOption(key, float64(v))
	case float64:
		if v != math.Trunc(v) {
			return 0, NewFormatValueError(key, value, "expected a whole number")
		}
		return int(v), nil
	}
	return 0, NewFormatValueError(key, value, "expected a number")
}

func underlineOption(value interface{}) (*UnderlineStyle, error) {
	switch v := value.(type) {
	case bool:
		style := UnderlineStyle("")
		if v {
			style = UnderlineSingle
		}
		return &style, nil
	case string, UnderlineStyle:
		s, _ := stringOption(optUnderline, v)
		style, err := ParseUnderlineStyle(s)
		if err != nil {
			return nil, err
		}
		return &style, nil
	case Options:
		return underlineOption(map[string]interface{}(v))
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if k != "style" {
				return nil, &UnknownOptionError{Option: optUnderline + "." + k}
			}
		}
		style, ok := v["style"]
		if !ok {
			return nil, NewFormatValueError(optUnderline, value, "missing style")
		}
		return underlineOption(style)
	case map[string]string:
		m := make(map[string]interface{}, len(v))
		for k, s := range v {
			m[k] = s
		}
		return underlineOption(m)
	}
	return nil, NewFormatValueError(optUnderline, value, "expected true, a style name or {style: ...}")
}
