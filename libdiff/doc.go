// Package libdiff computes the differences between two parsed protocols.
//
// Protocols are compared value by value: every leaf of either tree is
// addressed by its key path and reported as inserted, deleted or
// replaced. Replaced strings carry a character level diff.
//
// # Usage
//
//	changes := libdiff.Diff(oldDoc.Root, newDoc.Root)
//	for _, c := range changes {
//	    fmt.Println(c)
//	}
//	// ~ sSliceArray.asSlice[0].dThickness: 2.5 -> 3
//	// + sWipMemBlock.alFree[7] = 1
//
// # Related Packages
//
//   - github.com/signadot/ascconv/ir - the tree
//   - github.com/signadot/ascconv/patch - merge patches between trees
package libdiff
