// Package resolve turns host types into named schemas.
//
// Resolution is a synchronous depth-first walk driven by two mutually
// recursive operations:
//
//   - Resolver.Resolve builds a Model for a composite type, registers it
//     and reconciles its declared subtypes into Composed definitions.
//   - Resolver.ResolveProperty builds a Property for a member type:
//     scalars inline, containers as arrays or maps, composites as
//     references to registered models.
//
// # Cycles
//
// Every model name is claimed in the schema.Registry before its
// properties are walked. A re-entrant request for a claimed name yields a
// reference instead of a second expansion, so self-referential and
// mutually recursive graphs terminate. A subtype that is still being
// resolved further up the stack is composed once it finishes.
//
// # Ordering
//
// Properties with an explicit position come first, ascending. The rest
// follow in declaration order. Equal positions keep declaration order.
//
// # Degradation
//
// Nothing here returns an error for bad metadata. Unresolvable
// properties and subtypes are dropped and recorded as diagnostics on the
// registry.
package resolve
