// This file declares the DocumentNode collaborator contract, the
// Generator variants, and a ready-made Document implementation.
package speech

import (
	"errors"

	"github.com/xavier-bw/speech-rule-engine/rules"
	"github.com/xavier-bw/speech-rule-engine/semantic"
)

// Sentinel errors for façade misuse.
var (
	// ErrNilDocument indicates Generate was called with a nil document.
	ErrNilDocument = errors.New("speech: document is nil")

	// ErrNilEngine indicates a TreeGenerator was built without an engine.
	ErrNilEngine = errors.New("speech: engine is nil")

	// ErrNoTree indicates the document carries no semantic tree.
	ErrNoTree = errors.New("speech: document has no semantic tree")
)

// DefaultAttribute is the document attribute a TreeGenerator writes
// unless configured otherwise.
const DefaultAttribute = "speech"

// DocumentNode is the collaborator contract with the embedding host.
// The façade requires nothing markup-specific: a reachable semantic
// tree and a string-attribute slot.
type DocumentNode interface {
	// Semantic returns the node's semantic tree, or nil if absent.
	Semantic() *semantic.Node

	// Attribute reads a named attribute; the bool reports presence.
	Attribute(name string) (string, bool)

	// SetAttribute writes a named attribute.
	SetAttribute(name, value string)
}

// Generator produces the spoken string for one document node.
type Generator interface {
	Generate(doc DocumentNode) (string, error)
}

// Option configures a TreeGenerator at construction time.
type Option func(*TreeGenerator)

// WithAttribute overrides the attribute name the generated string is
// written to. Empty disables the write entirely.
func WithAttribute(name string) Option {
	return func(g *TreeGenerator) { g.attr = name }
}

// TreeGenerator runs full rule-driven generation and, as a side
// effect, records the result on the document's speech attribute.
type TreeGenerator struct {
	engine *rules.Engine
	key    rules.Key
	attr   string
}

// NewTreeGenerator builds a generator over an engine and the active
// (domain, style, locale) selection.
func NewTreeGenerator(engine *rules.Engine, key rules.Key, opts ...Option) *TreeGenerator {
	g := &TreeGenerator{
		engine: engine,
		key:    key,
		attr:   DefaultAttribute,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate implements Generator. The surfaced failures are exactly the
// engine's configuration errors plus the façade's own contract checks;
// everything below degrades inside the engine.
func (g *TreeGenerator) Generate(doc DocumentNode) (string, error) {
	if g.engine == nil {
		return "", ErrNilEngine
	}
	if doc == nil {
		return "", ErrNilDocument
	}
	tree := doc.Semantic()
	if tree == nil {
		return "", ErrNoTree
	}

	out, err := g.engine.Speak(tree, g.key)
	if err != nil {
		return "", err
	}
	if g.attr != "" {
		doc.SetAttribute(g.attr, out)
	}

	return out, nil
}

// AttributeGenerator reads a precomputed attribute off the document.
// A missing attribute yields the empty string, not an error.
type AttributeGenerator struct {
	// Attr is the attribute to read; empty means DefaultAttribute.
	Attr string
}

// Generate implements Generator.
func (g AttributeGenerator) Generate(doc DocumentNode) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}
	attr := g.Attr
	if attr == "" {
		attr = DefaultAttribute
	}
	v, _ := doc.Attribute(attr)

	return v, nil
}

// NoopGenerator emits the constant empty string. Useful as the wired
// default when speech is disabled but the pipeline shape must hold.
type NoopGenerator struct{}

// Generate implements Generator.
func (NoopGenerator) Generate(doc DocumentNode) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}

	return "", nil
}

// Document is a ready-made DocumentNode for hosts without their own
// document model (the CLI, tests).
type Document struct {
	tree  *semantic.Node
	attrs map[string]string
}

// NewDocument wraps a semantic tree in a document.
func NewDocument(tree *semantic.Node) *Document {
	return &Document{tree: tree, attrs: make(map[string]string)}
}

// Semantic implements DocumentNode.
func (d *Document) Semantic() *semantic.Node { return d.tree }

// Attribute implements DocumentNode.
func (d *Document) Attribute(name string) (string, bool) {
	v, ok := d.attrs[name]

	return v, ok
}

// SetAttribute implements DocumentNode.
func (d *Document) SetAttribute(name, value string) {
	d.attrs[name] = value
}
