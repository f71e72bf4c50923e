// Package parse builds trees from ASCCONV protocol dumps.
//
// A dump is a block of assignments
//
//	### ASCCONV BEGIN object=MrProtDataImpl@MrProtocolData version=41340006 ###
//	sSliceArray.asSlice[0].dThickness        = 2.5
//	sSliceArray.asSlice[0].sPosition.dTra    = -12.8  # mm
//	sWipMemBlock.alFree.__attribute__.size   = 64
//	tProtocolName                            = ""t1_mprage""
//	### ASCCONV END ###
//
// whose keys are paths into a tree of objects and arrays. Parse returns the
// tree together with the attributes of the begin marker line; ParseBody
// parses assignment lines alone.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	thick, err := doc.Root.GetKPath("sSliceArray.asSlice[0].dThickness")
//
//	// skip bad lines instead of failing
//	doc, err := parse.Parse(data, parse.Lenient(func(err error) {
//	    log.Print(err)
//	}))
//
// # Errors
//
// Errors for a malformed line are *token.LineErr values wrapping one of
// ErrDecode, ErrPath, ErrGrammar or ErrConflict. All of them wrap ErrParse.
//
// # Related Packages
//
//   - github.com/signadot/ascconv/ir - the tree
//   - github.com/signadot/ascconv/ir/kpath - key paths
//   - github.com/signadot/ascconv/encode - encode trees as ASCCONV, JSON or YAML
package parse
