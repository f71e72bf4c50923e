// Package kpath provides key path parsing for ASCCONV assignments.
//
// A key path names one location in a protocol tree:
//   - .field - Object field access
//   - [index] - Array index
//   - .N - Array index written as a bare numeric segment
//
// # Usage
//
//	kp, err := kpath.Parse("sSliceArray.asSlice[0].dThickness")
//
//	// Navigate
//	parent := kp.Parent()
//	child := kp.Append(kpath.Field("dPhaseFOV"))
//
//	// Compare paths
//	c := kp.Compare(child) // -1, 0, or 1
//
// # Path Examples
//
//	"sKSpace.lBaseResolution"        // Object → object field
//	"sWipMemBlock.alFree[4]"         // Object → object → array index
//	"sComment.2"                     // same as "sComment[2]"
//	"asCoilSelectMeas[0].asList[11]" // Object → array → object → array
//
// # Related Packages
//
//   - github.com/signadot/ascconv/ir - tree representation
package kpath
