// Package semantic defines the central expression-tree types of the
// speech pipeline: the closed Type/Role/Font classification enums, the
// immutable Meaning triple, and the Node tree that every other package
// annotates and consumes.
//
// What
//
//   - Type: the immutable category of a symbol or structure (NUMBER,
//     OPERATOR, FRACTION, …). TypeUnknown is the explicit bottom value.
//   - Role: the context-dependent sub-classification (INTEGER, ADDITION,
//     OPEN, …). RoleUnknown is the explicit bottom value.
//   - Font: the styled variant a glyph was rendered in (BOLD, FRAKTUR,
//     DOUBLE-STRUCK, …). FontUnknown is the explicit bottom value.
//   - Meaning: the {Type, Role, Font} triple; its zero value is the
//     UNKNOWN/UNKNOWN/UNKNOWN bottom used for every unregistered glyph.
//   - Node: a tree node with a unique id, textual value, Meaning,
//     exclusively-owned ordered children, and a monotonically growing
//     annotation map keyed by annotation-domain name.
//
// Ownership
//
//	A Node owns its children: AppendChild refuses a child that already
//	has a parent, so no node ever has two parents and every tree is
//	acyclic by construction. A tree is created per input expression,
//	annotated in place by a single generation call, and discarded.
//
// Determinism
//
//	Node ids come from a process-wide atomic counter and are stable for
//	the life of the node. Children keep insertion order.
package semantic
