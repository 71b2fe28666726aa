package docxgen

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AmountFormatter renders integer totals with locale digit grouping and an
// optional currency prefix. Locale id with no symbol gives "IDR 1.500.000";
// pass "Rp" to get "Rp 1.500.000".
type AmountFormatter struct {
	tag     language.Tag
	symbol  string
	printer *message.Printer
}

// NewAmountFormatter parses a BCP 47 locale. An empty symbol falls back to the
// ISO code of the locale's currency when one can be inferred; use "-" for no
// prefix at all.
func NewAmountFormatter(locale, symbol string) (*AmountFormatter, error) {
	if locale == "" {
		locale = GetGlobalConfig().Locale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, NewFormatValueError("locale", locale, err.Error())
	}

	switch symbol {
	case "-":
		symbol = ""
	case "":
		if unit, conf := currency.FromTag(tag); conf != language.No {
			symbol = unit.String()
		}
	}

	return &AmountFormatter{
		tag:     tag,
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}, nil
}

// Format renders v
func (f *AmountFormatter) Format(v int64) string {
	digits := f.printer.Sprintf("%d", v)
	if f.symbol == "" {
		return digits
	}
	return f.symbol + " " + digits
}

// Locale returns the formatter's language tag
func (f *AmountFormatter) Locale() string {
	return f.tag.String()
}

// Footer describes a totals row: a label cell spanning every column but the
// last, then the formatted total.
type Footer struct {
	Label        string
	LabelOptions Options
	ValueOptions Options
	Formatter    *AmountFormatter
}

// SumFooter returns a BuildTable aggregate that sums value over every record.
// The total of no records is 0.
func SumFooter[R any](columns int, f Footer, value func(R) int64) func([]R) ([]*Cell, error) {
	return func(records []R) ([]*Cell, error) {
		if columns < 2 {
			return nil, NewStructuralError("a totals row needs at least 2 columns, got %d", columns)
		}
		if value == nil {
			return nil, NewStructuralError("a totals row needs a value function")
		}

		formatter := f.Formatter
		if formatter == nil {
			var err error
			if formatter, err = NewAmountFormatter("", "-"); err != nil {
				return nil, err
			}
		}

		var total int64
		for _, r := range records {
			total += value(r)
		}

		label, err := NewCell(f.Label, f.LabelOptions)
		if err != nil {
			return nil, err
		}
		amount, err := NewCell(formatter.Format(total), f.ValueOptions)
		if err != nil {
			return nil, err
		}
		return []*Cell{label.Span(columns - 1), amount}, nil
	}
}
