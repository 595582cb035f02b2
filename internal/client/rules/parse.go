package rules

import (
	"fmt"
)

func parse(node any, depth int) (Expr, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}

	switch n := node.(type) {
	case nil, bool, float64, string:
		return Literal{Value: n}, nil
	case []any:
		items, err := parseAll(n, depth+1)
		if err != nil {
			return nil, err
		}
		return List{Items: items}, nil
	case map[string]any:
		if len(n) != 1 {
			return nil, fmt.Errorf("%w: operator object must have exactly one key, got %d", ErrParse, len(n))
		}
		for op, args := range n {
			return parseOp(op, args, depth)
		}
	}
	return nil, fmt.Errorf("%w: unexpected %T", ErrParse, node)
}

func parseAll(nodes []any, depth int) ([]Expr, error) {
	out := make([]Expr, 0, len(nodes))
	for _, n := range nodes {
		e, err := parse(n, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// operands accepts both {"op": [a, b]} and the unary shorthand {"op": a}.
func operands(args any) []any {
	if list, ok := args.([]any); ok {
		return list
	}
	return []any{args}
}

func parseOp(op string, args any, depth int) (Expr, error) {
	raw := operands(args)
	arity := func(lo, hi int) error {
		if len(raw) < lo || len(raw) > hi {
			return fmt.Errorf("%w: %q takes %d to %d operands, got %d", ErrParse, op, lo, hi, len(raw))
		}
		return nil
	}

	switch op {
	case "var":
		return parseVar(raw, depth)
	case "lookup":
		return parseLookup(raw)
	case "buildTime":
		return parseBuildTime(raw)
	}

	ops, err := parseAll(raw, depth+1)
	if err != nil {
		return nil, err
	}

	switch op {
	case "==", "===", "!=", "!==", ">", ">=":
		if err := arity(2, 2); err != nil {
			return nil, err
		}
		return Compare{Op: normalizeCompare(op), Operands: ops}, nil
	case "<", "<=":
		if err := arity(2, 3); err != nil {
			return nil, err
		}
		return Compare{Op: CompareOp(op), Operands: ops}, nil
	case "and", "or":
		if err := arity(1, len(raw)); err != nil {
			return nil, err
		}
		return Logic{All: op == "and", Operands: ops}, nil
	case "!":
		if err := arity(1, 1); err != nil {
			return nil, err
		}
		return Not{Operand: ops[0]}, nil
	case "!!":
		if err := arity(1, 1); err != nil {
			return nil, err
		}
		return Truthy{Operand: ops[0]}, nil
	case "if", "?:":
		return If{Operands: ops}, nil
	case "in", "inList":
		if err := arity(2, 2); err != nil {
			return nil, err
		}
		return In{Needle: ops[0], Haystack: ops[1]}, nil
	case "objectList":
		return List{Items: ops}, nil
	case "isAfter", "isBefore":
		if err := arity(2, 3); err != nil {
			return nil, err
		}
		tc := TimeCompare{After: op == "isAfter", Left: ops[0], Right: ops[1]}
		if len(ops) == 3 {
			tc.Tolerance = ops[2]
		}
		return tc, nil
	}
	return nil, fmt.Errorf("%w: unsupported operator %q", ErrParse, op)
}

func normalizeCompare(op string) CompareOp {
	switch op {
	case "===":
		return OpEq
	case "!==":
		return OpNe
	}
	return CompareOp(op)
}

func parseVar(raw []any, depth int) (Expr, error) {
	if len(raw) == 0 || len(raw) > 2 {
		return nil, fmt.Errorf("%w: var takes a name and an optional default", ErrParse)
	}
	name, ok := raw[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: var name must be a string", ErrParse)
	}
	v := Var{Name: name}
	if len(raw) == 2 {
		def, err := parse(raw[1], depth+1)
		if err != nil {
			return nil, err
		}
		v.Default = def
	}
	return v, nil
}

func parseLookup(raw []any) (Expr, error) {
	if len(raw) != 3 {
		return nil, fmt.Errorf("%w: lookup takes kind, id and label", ErrParse)
	}
	var parts [3]string
	for i, r := range raw {
		switch x := r.(type) {
		case string:
			parts[i] = x
		case float64:
			parts[i] = canonical(x)
		case nil:
		default:
			return nil, fmt.Errorf("%w: lookup operand %d has type %T", ErrParse, i, r)
		}
	}
	return Lookup{Kind: parts[0], ID: parts[1], Label: parts[2]}, nil
}

func parseBuildTime(raw []any) (Expr, error) {
	if len(raw) == 0 || len(raw) > 2 {
		return nil, fmt.Errorf("%w: buildTime takes a source and an optional value", ErrParse)
	}
	src, ok := raw[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: buildTime source must be a string", ErrParse)
	}
	b := BuildTime{Source: TimeSource(src)}
	switch b.Source {
	case TimeCustom, TimeCustomTime:
		if len(raw) != 2 {
			return nil, fmt.Errorf("%w: buildTime %q needs a value", ErrParse, src)
		}
		val, ok := raw[1].(string)
		if !ok {
			return nil, fmt.Errorf("%w: buildTime value must be a string", ErrParse)
		}
		b.Value = val
	case TimeDateFrom, TimeDateTo, TimeDateAdmission:
	default:
		return nil, fmt.Errorf("%w: unknown buildTime source %q", ErrParse, src)
	}
	return b, nil
}
