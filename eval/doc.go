// Package eval evaluates expr-lang expressions against parsed protocols.
//
// The top level fields of a tree are the variables of an expression, so
//
//	sSliceArray.asSlice[0].dThickness * 2
//	len(sSliceArray.asSlice) > 1 && sSliceArray.lConc == 1
//
// evaluate against a parsed protocol. Absent array slots are nil. The
// functions getpath, haspath, leaves and text are available as well; see
// Eval.
//
// ToAny and FromAny convert between trees and plain Go values.
// MarshalJSON and UnmarshalJSON do the same through JSON, keeping the
// order of object fields.
//
// # Related Packages
//
//   - github.com/signadot/ascconv/ir - the tree
//   - github.com/signadot/ascconv/patch - JSON Patch over trees
package eval
