// Package format names the output formats of encoded trees.
//
// # Related Packages
//
//   - github.com/signadot/ascconv/encode - Encode trees in a Format
package format
