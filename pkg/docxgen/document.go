package docxgen

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Block is a top-level body element: *Paragraph or *Table
type Block interface {
	isBlock()
}

// Document is an ordered block sequence that saves as <identity><extension>.
// A Document is not safe for concurrent use.
type Document struct {
	identity string
	blocks   []Block
	config   *Config
	logger   *log.Logger
}

// Option configures a Document
type Option func(*Document)

// WithConfig overrides the global configuration for one document
func WithConfig(config *Config) Option {
	return func(d *Document) {
		d.config = NewConfigWithDefaults(config)
	}
}

// WithLogger overrides the package logger for one document
func WithLogger(logger *log.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

// New creates an empty document. identity becomes the package's base name.
func New(identity string, opts ...Option) *Document {
	d := &Document{identity: identity}
	for _, opt := range opts {
		opt(d)
	}
	if d.config == nil {
		d.config = GetGlobalConfig()
	}
	if d.logger == nil {
		d.logger = GetLogger()
	}
	return d
}

// Identity returns the document's base name
func (d *Document) Identity() string {
	return d.identity
}

// Config returns the configuration the document saves with
func (d *Document) Config() *Config {
	c := *d.config
	return &c
}

// Blocks returns the blocks in document order
func (d *Document) Blocks() []Block {
	blocks := make([]Block, len(d.blocks))
	copy(blocks, d.blocks)
	return blocks
}

// Path returns the destination used by Save
func (d *Document) Path() string {
	return filepath.Join(d.config.OutputDir, d.identity+d.config.Extension)
}

// AddParagraph builds a paragraph from opts, hands it to populate, and appends
// it once populate returns without error. populate may be nil, which appends
// an empty paragraph.
func (d *Document) AddParagraph(opts Options, populate func(*Paragraph) error) error {
	p, err := NewParagraph(opts)
	if err != nil {
		return fmt.Errorf("paragraph %d: %w", len(d.blocks)+1, err)
	}
	if populate != nil {
		if err := populate(p); err != nil {
			return fmt.Errorf("paragraph %d: %w", len(d.blocks)+1, err)
		}
	}
	d.blocks = append(d.blocks, p)
	return nil
}

// AddTable validates and appends a table
func (d *Document) AddTable(t *Table) error {
	return d.AddBlock(t)
}

// AddBlock validates and appends a block
func (d *Document) AddBlock(b Block) error {
	if err := validateBlock(b); err != nil {
		return wrapPosition("block", len(d.blocks)+1, err)
	}
	d.blocks = append(d.blocks, b)
	return nil
}

// AddTableFrom builds a table from records with BuildTable and appends it
func AddTableFrom[R any](d *Document, spec TableSpec, records []R, rowFn func(R) ([]*Cell, error), aggregate func([]R) ([]*Cell, error)) error {
	t, err := BuildTable(spec, records, rowFn, aggregate)
	if err != nil {
		return wrapPosition("table at block", len(d.blocks)+1, err)
	}
	d.blocks = append(d.blocks, t)
	return nil
}

func validateBlock(b Block) error {
	switch blk := b.(type) {
	case *Paragraph:
		if blk == nil {
			return NewStructuralError("nil paragraph")
		}
		return blk.Validate()
	case *Table:
		if blk == nil {
			return NewStructuralError("nil table")
		}
		return blk.Validate()
	case nil:
		return NewStructuralError("nil block")
	default:
		return NewStructuralError("unsupported block type %T", b)
	}
}
