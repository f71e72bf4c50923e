// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7396) documents to parsed protocols.
//
// Paths in patches are JSON pointers; Pointer converts key paths:
//
//	sSliceArray.asSlice[0].dThickness → /sSliceArray/asSlice/0/dThickness
//
// Patched trees keep the field order of the tree they were made from.
// Fields added by a patch follow the existing ones.
package patch
