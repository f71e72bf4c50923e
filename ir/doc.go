// Package ir provides the tree representation of parsed ASCCONV protocols.
//
// # Overview
//
// A protocol dump is a flat list of assignments such as
//
//	sSliceArray.asSlice[0].dThickness = 2.5
//
// which the parse package folds into a tree of ir.Node values. The tree is
// a recursive tagged union: the Type field says which of the other fields
// carry the node's content.
//
// # Node Types
//
//   - AbsentType: an array slot which was never assigned
//   - NumberType: an integer (Int64) or a float (Float64)
//   - StringType: a string (String)
//   - ArrayType: ordered elements (Values)
//   - ObjectType: ordered fields (Fields[i] keys Values[i])
//
// # Creating Nodes
//
//	s := ir.FromString("CBU_DTI")
//	i := ir.FromInt(42)
//	f := ir.FromFloat(2.5)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "dThickness", Val: f},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.Absent(), i})
//
// # Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i];
// keys are StringType nodes and occur once. Field order is the order in
// which fields were first assigned.
//
// For ArrayType nodes, Values[i] is element i. Arrays never have holes:
// unassigned positions hold an AbsentType node. Absent nodes only occur as
// array elements.
//
// # Navigating Nodes
//
// Each node records its Parent, ParentIndex and, inside objects,
// ParentField. Use KPath to get the key path of a node and GetKPath or
// Lookup to go the other way:
//
//	child, err := root.GetKPath("sKSpace.lBaseResolution")
//
// # Comparison
//
//	equal := ir.Equal(a, b)
//
// Nodes are not safe for concurrent mutation; a tree returned by the
// parser is never modified by it again.
package ir
