// Package speech is the thin external façade over the rule engine.
//
// What:
//   - DocumentNode — the collaborator contract: anything carrying a
//     semantic tree and a string-attribute slot can be spoken.
//   - Generator — one operation, Generate(doc) (string, error).
//   - TreeGenerator — full rule-driven generation, writing the result
//     onto the document's speech attribute for downstream consumers.
//   - AttributeGenerator — pass-through read of a precomputed attribute.
//   - NoopGenerator — the constant empty string.
//
// Why:
//   - Embedding hosts (highlighters, TTS backends, test harnesses)
//     differ only in where the spoken string comes from. The façade
//     fixes that boundary so the core engine never touches document
//     attributes itself.
//
// Determinism:
//   - A TreeGenerator is immutable after construction and shares its
//     engine freely; each Generate call operates on the document's own
//     tree and a fresh grammar context, so concurrent calls on
//     distinct documents are safe.
//
// See doc.go in package rules for the generation machine itself.
package speech
