package eval

import (
	"fmt"
	"maps"
	"strings"

	"github.com/signadot/ascconv/debug"
	"github.com/signadot/ascconv/ir"
	"github.com/signadot/ascconv/ir/kpath"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Env map[string]any

// Compile compiles input for evaluation against doc. The program may be
// run with NewEnv(doc, extra) for any extra variables.
func Compile(input string, doc *ir.Node) (*vm.Program, error) {
	opts := append([]expr.Option{expr.AllowUndefinedVariables()}, exprOpts(doc)...)
	program, err := expr.Compile(input, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return program, nil
}

// NewEnv returns the variables of an expression over doc: its top level
// fields, then the entries of extra, which take precedence.
func NewEnv(doc *ir.Node, extra Env) Env {
	env := Env{}
	if doc.Type == ir.ObjectType {
		for i, f := range doc.Fields {
			env[f.String] = ToAny(doc.Values[i])
		}
	}
	maps.Copy(env, extra)
	return env
}

// Eval evaluates input against doc. Besides the fields of doc and extra,
// expressions may call
//
//	getpath(kp)  the value at key path kp, an error if there is none
//	haspath(kp)  whether kp names a node
//	leaves(kp)   the key paths of the values under kp ("" for all)
//	text(v)      the string spelled by an array of character codes
func Eval(input string, doc *ir.Node, extra Env) (any, error) {
	program, err := Compile(input, doc)
	if err != nil {
		return nil, err
	}
	env := NewEnv(doc, extra)
	res, err := expr.Run(program, map[string]any(env))
	if debug.Eval() {
		debug.Logf("eval %q: %v (err %v)\n", input, res, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return res, nil
}

// EvalNode is like Eval but converts the result to a tree.
func EvalNode(input string, doc *ir.Node, extra Env) (*ir.Node, error) {
	res, err := Eval(input, doc, extra)
	if err != nil {
		return nil, err
	}
	return FromAny(res)
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := doc.GetKPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := doc.GetKPath(params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("leaves", func(params ...any) (any, error) {
			return leafPaths(doc, params[0].(string))
		},
			new(func(string) []string)),
		expr.Function("text", func(params ...any) (any, error) {
			return text(params[0])
		},
			new(func(any) string)),
	}
}

func leafPaths(doc *ir.Node, at string) ([]string, error) {
	var base *kpath.KPath
	node := doc
	if at != "" {
		kp, err := kpath.Parse(at)
		if err != nil {
			return nil, err
		}
		if node, err = doc.Lookup(kp); err != nil {
			return nil, err
		}
		base = kp
	}
	res := []string{}
	err := node.Leaves(func(kp *kpath.KPath, _ *ir.Node) error {
		res = append(res, base.Append(kp).String())
		return nil
	})
	return res, err
}

// text decodes arrays of character codes such as sComment, stopping at
// the first zero. Absent slots are skipped.
func text(v any) (string, error) {
	codes, ok := v.([]any)
	if !ok {
		return "", fmt.Errorf("%w: text of %T", ErrEval, v)
	}
	buf := strings.Builder{}
	for _, c := range codes {
		switch x := c.(type) {
		case nil:
			continue
		case int:
			if x == 0 {
				return buf.String(), nil
			}
			buf.WriteRune(rune(x))
		default:
			return "", fmt.Errorf("%w: character code %v", ErrEval, c)
		}
	}
	return buf.String(), nil
}
