// This file implements the SELECT → EXPAND → ASSEMBLE generation
// machine with per-rule failure recovery.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavier-bw/speech-rule-engine/grammar"
	"github.com/xavier-bw/speech-rule-engine/numbers"
	"github.com/xavier-bw/speech-rule-engine/semantic"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger installs the diagnostics logger. The default is a no-op
// logger; rule failures are recoverable and only visible through this.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithJoiner overrides the step joiner placed between the outputs of a
// rule's generation steps. The default is a single space.
func WithJoiner(j string) Option {
	return func(e *Engine) { e.joiner = j }
}

// Engine executes speech rules against annotated semantic trees.
//
// An Engine is immutable after construction and may be shared across
// concurrent generation calls, provided each call operates on its own
// tree (trees are exclusively owned, see package semantic).
type Engine struct {
	store  *Store
	log    *zap.Logger
	joiner string
}

// NewEngine creates an engine over a loaded store.
func NewEngine(store *Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		log:    zap.NewNop(),
		joiner: " ",
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Speak generates the spoken string for node n under the rule set
// keyed by k. A fresh grammar context is created for the call and
// discarded with it.
//
// The only failures surfaced are ErrNilNode, ErrNilStore, and
// ErrNoRuleSet (configuration errors). Everything else degrades
// gracefully: rules that fail fall back to less specific candidates,
// and nodes with no applicable rule emit their literal value.
func (e *Engine) Speak(n *semantic.Node, k Key) (string, error) {
	if e.store == nil {
		return "", ErrNilStore
	}
	if n == nil {
		return "", ErrNilNode
	}
	set, err := e.store.Lookup(k)
	if err != nil {
		return "", err
	}

	// The locale's number converter; a number step on a locale without
	// one fails that rule only.
	conv, convErr := numbers.For(set.Locale)
	if convErr != nil {
		conv = nil
	}

	log := e.log.With(
		zap.String("generation_id", uuid.NewString()),
		zap.String("domain", set.Domain),
		zap.String("style", set.Style),
		zap.String("locale", set.Locale),
	)

	ctx := grammar.New()

	return assemble(e.speakNode(n, set, conv, ctx, log)), nil
}

// candidate pairs a matching rule with its rank inputs.
type candidate struct {
	rule  *Rule
	spec  int
	index int
}

// speakNode is SELECT → EXPAND for one node. It never fails: after the
// last candidate rule it falls back to the node's literal value, which
// is empty (silent) for structural nodes.
func (e *Engine) speakNode(n *semantic.Node, set *Set, conv numbers.Converter, ctx *grammar.Context, log *zap.Logger) string {
	// SELECT: gather matching rules. A throwing precondition marks its
	// rule malformed — recovered by simply not selecting it.
	var cands []candidate
	for i, r := range set.Rules {
		ok, err := r.Precondition.Eval(n, ctx)
		if err != nil {
			log.Warn("precondition failed",
				zap.String("rule", r.Name),
				zap.Int64("node", n.ID()),
				zap.Error(err))
			continue
		}
		if ok {
			cands = append(cands, candidate{rule: r, spec: r.Precondition.Specificity(), index: i})
		}
	}

	// Rank: specificity first, later declaration breaks ties.
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].spec != cands[j].spec {
			return cands[i].spec > cands[j].spec
		}

		return cands[i].index > cands[j].index
	})

	// EXPAND best-first, falling back on per-rule failure.
	for _, c := range cands {
		out, err := e.expand(c.rule, n, set, conv, ctx, log)
		if err == nil {
			return out
		}
		log.Warn("rule expansion failed, falling back",
			zap.String("rule", c.rule.Name),
			zap.Int64("node", n.ID()),
			zap.Error(err))
	}

	// Defined fallback: the literal value, or silence for structural
	// nodes. Generation never aborts for a subtree.
	return n.Value
}

// expand runs the rule's ordered steps. The first failing step fails
// the whole rule; grammar overrides pushed by recursive steps are
// restored regardless.
func (e *Engine) expand(r *Rule, n *semantic.Node, set *Set, conv numbers.Converter, ctx *grammar.Context, log *zap.Logger) (string, error) {
	var parts []string
	for i, st := range r.Actions {
		out, err := e.step(&st, n, set, conv, ctx, log)
		if err != nil {
			return "", fmt.Errorf("step %d: %w", i, err)
		}
		if out != "" {
			parts = append(parts, out)
		}
	}

	return strings.Join(parts, e.joiner), nil
}

// step executes one generation action.
func (e *Engine) step(st *Step, n *semantic.Node, set *Set, conv numbers.Converter, ctx *grammar.Context, log *zap.Logger) (string, error) {
	switch st.Kind {
	case StepText:
		return st.Text, nil

	case StepNumber:
		src := n
		if st.Child != SelfValue {
			if src = n.Child(st.Child); src == nil {
				return "", fmt.Errorf("%w: index %d", ErrNoSuchChild, st.Child)
			}
		}
		v, ok := src.Uint()
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrNotNumeric, src.Value)
		}
		if conv == nil {
			return "", fmt.Errorf("%w: %q", numbers.ErrUnsupportedLocale, set.Locale)
		}
		switch st.Form {
		case numbers.FormOrdinal:
			return conv.Ordinal(v, st.Plural), nil
		case numbers.FormSimpleOrdinal:
			return conv.SimpleOrdinal(v, ctx), nil
		default:
			return conv.Cardinal(v), nil
		}

	case StepChild:
		c := n.Child(st.Child)
		if c == nil {
			return "", fmt.Errorf("%w: index %d", ErrNoSuchChild, st.Child)
		}

		return e.withScope(ctx, st.With, func() string {
			return e.speakNode(c, set, conv, ctx, log)
		}), nil

	case StepChildren:
		sep := st.Separator
		if sep == "" {
			sep = e.joiner
		}

		return e.withScope(ctx, st.With, func() string {
			var parts []string
			for _, c := range n.Children() {
				if out := e.speakNode(c, set, conv, ctx, log); out != "" {
					parts = append(parts, out)
				}
			}

			return strings.Join(parts, sep)
		}), nil
	}

	return "", fmt.Errorf("%w: unknown step kind %d", ErrBadRuleFile, st.Kind)
}

// withScope brackets fn with a grammar scope so that overrides set for
// a recursive step never leak past it, whatever happens inside.
func (e *Engine) withScope(ctx *grammar.Context, overrides map[string]interface{}, fn func() string) string {
	ctx.Push(overrides)
	defer func() { _ = ctx.Pop() }()

	return fn()
}

// assemble is the final normalization: collapse whitespace runs and
// trim the ends.
func assemble(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
