package docxgen

import (
	"strings"
)

// Paragraph is an ordered run sequence plus paragraph-level alignment. Run
// options given to NewParagraph become defaults for every text added through
// AddText; the run's own options win.
type Paragraph struct {
	Alignment Alignment
	Defaults  RunFormat

	runs    []*Run
	noSpace bool
}

// NewParagraph builds an empty paragraph. opts takes "alignment" plus any run
// option except no_leading_space.
func NewParagraph(opts Options) (*Paragraph, error) {
	patch, err := parseOptions(opts, paragraphTarget)
	if err != nil {
		return nil, err
	}

	p := &Paragraph{
		Alignment: AlignStart,
		Defaults:  patch.apply(RunFormat{}),
	}
	if patch.alignment != nil {
		p.Alignment = *patch.alignment
	}
	return p, nil
}

func (p *Paragraph) isBlock() {}

// AddText appends a text run formatted by the paragraph defaults and opts
func (p *Paragraph) AddText(text string, opts Options) error {
	r, err := newRun(text, p.Defaults, opts)
	if err != nil {
		return err
	}
	p.append(r)
	return nil
}

// AddRun appends a prebuilt run as is. Paragraph defaults are not applied.
func (p *Paragraph) AddRun(r *Run) error {
	if r == nil {
		return NewStructuralError("nil run")
	}
	if err := r.Validate(); err != nil {
		return err
	}
	p.append(r)
	return nil
}

// AddNewline appends a line break
func (p *Paragraph) AddNewline() {
	p.runs = append(p.runs, NewBreak())
}

// NoSpace glues the next text run to the one before it
func (p *Paragraph) NoSpace() {
	p.noSpace = true
}

func (p *Paragraph) append(r *Run) {
	if p.noSpace && !r.Break {
		r.Spacing = SpaceNone
		p.noSpace = false
	}
	p.runs = append(p.runs, r)
}

// Runs returns the runs in order
func (p *Paragraph) Runs() []*Run {
	runs := make([]*Run, len(p.runs))
	copy(runs, p.runs)
	return runs
}

// Text returns the paragraph's plain text the way it will render: separators
// between text runs and "\n" for breaks.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for i, r := range p.runs {
		if r.Break {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(r.Text)
		if needsSeparator(p.runs, i) {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

// Validate checks every run
func (p *Paragraph) Validate() error {
	switch p.Alignment {
	case "", AlignStart, AlignCenter, AlignEnd, AlignJustify:
	default:
		return NewFormatValueError(optAlignment, string(p.Alignment), "expected start, center, end or justify")
	}
	if err := p.Defaults.Validate(); err != nil {
		return err
	}
	for i, r := range p.runs {
		if err := r.Validate(); err != nil {
			return wrapPosition("run", i+1, err)
		}
	}
	return nil
}

// needsSeparator reports whether run i gets a trailing space: only when it
// and the run after it are both text runs and the next one allows spacing.
func needsSeparator(runs []*Run, i int) bool {
	if runs[i].Break || i+1 >= len(runs) {
		return false
	}
	next := runs[i+1]
	return !next.Break && next.Spacing == SpaceNormal
}
