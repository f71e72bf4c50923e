package detect

import (
	"errors"
	"fmt"

	"github.com/signadot/ascconv/ir"
)

var (
	ErrUnknownModality = errors.New("unknown modality")
	ErrDefinition      = errors.New("bad sequence definition")
)

// Definition names a sequence and the values identifying it. Match is an
// object or an array of objects.
type Definition struct {
	Name  string
	Match *ir.Node
}

type Modality struct {
	Name      string
	Sequences []Definition
}

// Table holds sequence definitions by modality, in order.
type Table []Modality

type Detector struct {
	table Table
}

func New(table Table) *Detector {
	return &Detector{table: table}
}

// Modalities returns the modality names of the table in order.
func (d *Detector) Modalities() []string {
	res := make([]string, len(d.table))
	for i, m := range d.table {
		res[i] = m.Name
	}
	return res
}

// Sequences returns the definitions for modality.
func (d *Detector) Sequences(modality string) ([]Definition, error) {
	for _, m := range d.table {
		if m.Name == modality {
			return m.Sequences, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownModality, modality)
}

// Detect returns the name of the first sequence of modality whose
// definition matches values, or "" if none does. A definition which is
// neither an object nor an array gives ErrDefinition when it is reached.
func (d *Detector) Detect(modality string, values *ir.Node) (string, error) {
	seqs, err := d.Sequences(modality)
	if err != nil {
		return "", err
	}
	for _, def := range seqs {
		ok, err := Check(def.Match, values)
		if err != nil {
			return "", fmt.Errorf("%s: %w", def.Name, err)
		}
		if ok {
			return def.Name, nil
		}
	}
	return "", nil
}

// DetectDoc is like Detect, taking the values for each definition from
// doc at the key paths the definition names.
func (d *Detector) DetectDoc(modality string, doc *ir.Node) (string, error) {
	seqs, err := d.Sequences(modality)
	if err != nil {
		return "", err
	}
	for _, def := range seqs {
		kps, err := KPaths(def.Match)
		if err != nil {
			return "", fmt.Errorf("%s: %w", def.Name, err)
		}
		values, err := Values(doc, kps)
		if err != nil {
			return "", fmt.Errorf("%s: %w", def.Name, err)
		}
		ok, err := Check(def.Match, values)
		if err != nil {
			return "", fmt.Errorf("%s: %w", def.Name, err)
		}
		if ok {
			return def.Name, nil
		}
	}
	return "", nil
}

// KPaths returns the key paths a definition matches on, in order of
// first appearance.
func KPaths(definition *ir.Node) ([]string, error) {
	if definition == nil {
		return nil, fmt.Errorf("%w: nil", ErrDefinition)
	}
	switch definition.Type {
	case ir.ObjectType:
		return definition.Keys(), nil
	case ir.ArrayType:
		res := []string{}
		seen := map[string]bool{}
		for _, cand := range definition.Values {
			if cand.Type != ir.ObjectType {
				continue
			}
			for _, k := range cand.Keys() {
				if !seen[k] {
					seen[k] = true
					res = append(res, k)
				}
			}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrDefinition, definition.Type)
	}
}

// Check reports whether values satisfy definition.
func Check(definition, values *ir.Node) (bool, error) {
	if definition == nil {
		return false, fmt.Errorf("%w: nil", ErrDefinition)
	}
	switch definition.Type {
	case ir.ObjectType:
		return same(definition, values), nil
	case ir.ArrayType:
		for _, cand := range definition.Values {
			if same(cand, values) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrDefinition, definition.Type)
	}
}

// same compares like ir.Equal, except that object fields are compared
// regardless of order and integers equal floats of the same value.
func same(a, b *ir.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ir.ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			if !same(a.Values[i], ir.Get(b, f.String)) {
				return false
			}
		}
		return true
	case ir.ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !same(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ir.NumberType:
		if a.Int64 != nil && b.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		return float(a) == float(b)
	case ir.StringType:
		return a.String == b.String
	default:
		return true
	}
}

func float(n *ir.Node) float64 {
	if n.Int64 != nil {
		return float64(*n.Int64)
	}
	if n.Float64 != nil {
		return *n.Float64
	}
	return 0
}
