package detect

import (
	"errors"
	"fmt"

	"github.com/signadot/ascconv/eval"
	"github.com/signadot/ascconv/ir"

	"github.com/goccy/go-yaml"
)

// LoadTable reads a table from YAML such as
//
//	mr:
//	  localizer:
//	    ScanningSequence: GR
//	    SequenceVariant: [SP, OSP]
//	  dwi:
//	    - {ScanningSequence: EP, SequenceVariant: [SK, SP]}
//	    - {ScanningSequence: EP, SequenceVariant: [SK, SP, OSP]}
//
// keeping the order of modalities and sequences.
func LoadTable(d []byte) (Table, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, err)
	}
	if v == nil {
		return Table{}, nil
	}
	top, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: table is a %T, not a mapping", ErrDefinition, v)
	}
	res := make(Table, 0, len(top))
	for _, item := range top {
		m := Modality{Name: fmt.Sprint(item.Key)}
		seqs, ok := item.Value.(yaml.MapSlice)
		if !ok && item.Value != nil {
			return nil, fmt.Errorf("%w: modality %q is a %T, not a mapping", ErrDefinition, m.Name, item.Value)
		}
		for _, seq := range seqs {
			match, err := eval.FromAny(seq.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%v: %w", ErrDefinition, m.Name, seq.Key, err)
			}
			m.Sequences = append(m.Sequences, Definition{Name: fmt.Sprint(seq.Key), Match: match})
		}
		res = append(res, m)
	}
	return res, nil
}

// Values collects the values at the given key paths of doc into an
// object keyed by path, the form definitions are matched against.
// Paths which do not exist in doc are left out.
func Values(doc *ir.Node, kpaths []string) (*ir.Node, error) {
	res := ir.NewObject()
	for _, kp := range kpaths {
		v, err := doc.GetKPath(kp)
		if err != nil {
			if errors.Is(err, ir.ErrNotFound) {
				continue
			}
			return nil, err
		}
		res.Set(kp, v.Clone())
	}
	return res, nil
}
