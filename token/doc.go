// Package token provides line level lexing for ASCCONV protocol text.
//
// [SplitLine] strips comments and classifies a line as blank, an
// assignment, or an array size declaration. [ClassifyValue] decides how
// the right hand side of an assignment is to be decoded.
package token
