// Package annotate provides the two generic traversal primitives that
// enrich a semantic tree with named annotations: bottom-up Annotate and
// top-down Visit.
//
// What
//
//   - Annotate(root, domain, fn): annotates every child first, then
//     computes the node's own annotation as a pure function of the node
//     (whose children already carry their now-set annotations).
//     Re-running a pure fn over an unchanged tree is idempotent.
//   - Visit(root, domain, fn, info): computes an (annotation, propagated
//     info) pair per node from the inherited info, assigns the
//     annotation, then recurses into the children in order, threading
//     the propagated info through the siblings. The traversal returns
//     the info emitted by the LAST child (or the input info for a
//     childless node) — fold-style visitors rely on this value as an
//     accumulator across siblings at the parent's call site.
//   - Classify(root): convenience bottom-up pass that classifies
//     single-glyph leaves from the symbols registry.
//
// Contract
//
//	Annotation functions must be deterministic and total over the whole
//	Meaning space, the UNKNOWN bottom included. The engine neither skips
//	nor retries: an error from fn aborts the traversal and propagates to
//	the caller unchanged. Termination is guaranteed because trees are
//	finite and acyclic by construction (see package semantic).
//
// Complexity (N = #nodes)
//
//   - Time:   O(N) per pass (each node visited exactly once)
//   - Memory: O(depth) recursion stack
package annotate
