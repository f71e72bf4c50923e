// Package detect classifies imaging sequences from header values.
//
// A Table lists, per modality, named sequence definitions in order. A
// definition is either an object, which matches values equal to it, or
// an array of objects, which matches values equal to any of them.
// Detect returns the name of the first matching definition.
//
//	table, err := detect.LoadTable(data)
//	d := detect.New(table)
//	name, err := d.Detect("mr", values)
//
// Object equality ignores field order and numbers compare by value, so
// 1 and 1.0 are equal.
package detect
