// Package encode writes trees as ASCCONV assignments, JSON or YAML.
//
// # Usage
//
//	// ASCCONV, one "key = value" line per leaf
//	err := encode.Encode(doc.Root, os.Stdout)
//
//	// with the begin/end markers and declared array sizes
//	err := encode.Encode(doc.Root, os.Stdout,
//	    encode.EncodeSection(doc.Attrs.String()),
//	    encode.EncodeSizes(true))
//
//	// JSON, absent array slots become null
//	err := encode.Encode(doc.Root, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// ASCCONV output can be parsed again with package parse. Absent array
// slots are not written, so trailing absent slots survive a round trip
// only through their declared size and parse.ExpandSizes.
//
// # Related Packages
//
//   - github.com/signadot/ascconv/ir - the tree
//   - github.com/signadot/ascconv/parse - Parse text to trees
//   - github.com/signadot/ascconv/format - output formats
package encode
