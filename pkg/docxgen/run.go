package docxgen

// SpacingDirective controls the separator written between a run and the run
// before it
type SpacingDirective int

const (
	// SpaceNormal separates the run from the preceding text run with one space
	SpaceNormal SpacingDirective = iota
	// SpaceNone glues the run to the preceding text, as in "CO" + subscript "2"
	SpaceNone
)

func (d SpacingDirective) String() string {
	if d == SpaceNone {
		return "none"
	}
	return "normal"
}

// Run is a text fragment with a single formatting attribute set. A break run
// carries no text and renders a line break.
type Run struct {
	Text    string
	Format  RunFormat
	Spacing SpacingDirective
	Break   bool
}

// NewRun builds a run from text and an option map. See Options for the
// recognized keys.
func NewRun(text string, opts Options) (*Run, error) {
	return newRun(text, RunFormat{}, opts)
}

// NewBreak returns a line break run
func NewBreak() *Run {
	return &Run{Break: true}
}

func newRun(text string, defaults RunFormat, opts Options) (*Run, error) {
	patch, err := parseOptions(opts, runTarget)
	if err != nil {
		return nil, err
	}

	r := &Run{
		Text:   text,
		Format: patch.apply(defaults),
	}
	if patch.noLeadingSpace != nil && *patch.noLeadingSpace {
		r.Spacing = SpaceNone
	}
	return r, nil
}

// Validate checks a run that may have been assembled without NewRun
func (r *Run) Validate() error {
	if r.Break && r.Text != "" {
		return NewStructuralError("a break run cannot carry text %q", r.Text)
	}
	return r.Format.Validate()
}
