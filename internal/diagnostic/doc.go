// Package diagnostic provides structured warnings and errors collected
// while resolving a type graph into schemas.
//
// Resolution never fails on bad metadata; instead it degrades locally and
// leaves a trace here:
//   - Dropped properties whose type could not be resolved
//   - Subtypes that produced no model
//   - Subtype compositions deferred until the subtype finished resolving
//   - Runaway recursion that escaped the in-progress guard
//   - Loaded types from different packages that share a schema name
package diagnostic
