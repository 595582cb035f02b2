package rules

import (
	"fmt"
	"strings"
	"time"
)

// Expr is a node of the expression tree.
type Expr interface {
	Eval(env *Env) (any, error)
}

type Literal struct {
	Value any
}

func (l Literal) Eval(*Env) (any, error) { return l.Value, nil }

// Var reads a named fact. Without a default, a missing fact is an error.
type Var struct {
	Name    string
	Default Expr
}

func (v Var) Eval(env *Env) (any, error) {
	if val, ok := env.Vars[v.Name]; ok {
		return val, nil
	}
	if v.Default != nil {
		return v.Default.Eval(env)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFact, v.Name)
}

// List is an array literal whose elements are expressions.
type List struct {
	Items []Expr
}

func (l List) Eval(env *Env) (any, error) {
	out := make([]any, 0, len(l.Items))
	for _, it := range l.Items {
		v, err := it.Eval(env)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type CompareOp string

const (
	OpEq CompareOp = "=="
	OpNe CompareOp = "!="
	OpLt CompareOp = "<"
	OpLe CompareOp = "<="
	OpGt CompareOp = ">"
	OpGe CompareOp = ">="
)

// Compare holds two operands, or three for the chained "between" form of
// "<" and "<=".
type Compare struct {
	Op       CompareOp
	Operands []Expr
}

func (c Compare) Eval(env *Env) (any, error) {
	vals := make([]any, len(c.Operands))
	for i, o := range c.Operands {
		v, err := o.Eval(env)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}

	switch c.Op {
	case OpEq:
		return looseEqual(vals[0], vals[1]), nil
	case OpNe:
		return !looseEqual(vals[0], vals[1]), nil
	}

	nums := make([]float64, len(vals))
	for i, v := range vals {
		f, err := toNumber(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Op, err)
		}
		nums[i] = f
	}
	for i := 0; i+1 < len(nums); i++ {
		if !ordered(c.Op, nums[i], nums[i+1]) {
			return false, nil
		}
	}
	return true, nil
}

func ordered(op CompareOp, a, b float64) bool {
	switch op {
	case OpLt:
		return a < b
	case OpLe:
		return a <= b
	case OpGt:
		return a > b
	case OpGe:
		return a >= b
	}
	return false
}

// Logic is "and" (All) or "or" over its operands, short-circuiting.
type Logic struct {
	All      bool
	Operands []Expr
}

func (l Logic) Eval(env *Env) (any, error) {
	for _, o := range l.Operands {
		v, err := o.Eval(env)
		if err != nil {
			return nil, err
		}
		if truthy(v) != l.All {
			return !l.All, nil
		}
	}
	return l.All, nil
}

type Not struct {
	Operand Expr
}

func (n Not) Eval(env *Env) (any, error) {
	v, err := n.Operand.Eval(env)
	if err != nil {
		return nil, err
	}
	return !truthy(v), nil
}

type Truthy struct {
	Operand Expr
}

func (t Truthy) Eval(env *Env) (any, error) {
	v, err := t.Operand.Eval(env)
	if err != nil {
		return nil, err
	}
	return truthy(v), nil
}

// If evaluates condition/value pairs; an odd trailing operand is the else
// branch.
type If struct {
	Operands []Expr
}

func (f If) Eval(env *Env) (any, error) {
	ops := f.Operands
	for len(ops) >= 2 {
		c, err := ops[0].Eval(env)
		if err != nil {
			return nil, err
		}
		if truthy(c) {
			return ops[1].Eval(env)
		}
		ops = ops[2:]
	}
	if len(ops) == 1 {
		return ops[0].Eval(env)
	}
	return nil, nil
}

// In tests list membership, or substring containment when the haystack is a
// string. Members compare by canonical form.
type In struct {
	Needle   Expr
	Haystack Expr
}

func (n In) Eval(env *Env) (any, error) {
	needle, err := n.Needle.Eval(env)
	if err != nil {
		return nil, err
	}
	hay, err := n.Haystack.Eval(env)
	if err != nil {
		return nil, err
	}

	switch h := hay.(type) {
	case string:
		return strings.Contains(h, canonical(needle)), nil
	case []any:
		want := canonical(needle)
		for _, m := range h {
			if canonical(m) == want {
				return true, nil
			}
		}
		return false, nil
	case nil:
		return false, nil
	}
	return nil, fmt.Errorf("in: %w: %T is not a list", ErrType, hay)
}

// Lookup names a catalog object by kind, id and label; it evaluates to the id.
type Lookup struct {
	Kind  string
	ID    string
	Label string
}

func (l Lookup) Eval(*Env) (any, error) { return l.ID, nil }

type TimeCompare struct {
	After     bool
	Left      Expr
	Right     Expr
	Tolerance Expr
}

// Eval widens the window by the tolerance: isAfter admits that many minutes
// early and isBefore that many minutes late.
func (t TimeCompare) Eval(env *Env) (any, error) {
	lv, err := t.Left.Eval(env)
	if err != nil {
		return nil, err
	}
	rv, err := t.Right.Eval(env)
	if err != nil {
		return nil, err
	}
	left, err := toTime(lv)
	if err != nil {
		return nil, err
	}
	right, err := toTime(rv)
	if err != nil {
		return nil, err
	}

	var tol time.Duration
	if t.Tolerance != nil {
		tv, err := t.Tolerance.Eval(env)
		if err != nil {
			return nil, err
		}
		if tv != nil {
			m, err := toNumber(tv)
			if err != nil {
				return nil, err
			}
			tol = time.Duration(m * float64(time.Minute))
		}
	}

	if t.After {
		return left.After(right.Add(-tol)), nil
	}
	return left.Before(right.Add(tol)), nil
}

type TimeSource string

const (
	TimeCustom        TimeSource = "custom"
	TimeCustomTime    TimeSource = "customtime"
	TimeDateFrom      TimeSource = "date_from"
	TimeDateTo        TimeSource = "date_to"
	TimeDateAdmission TimeSource = "date_admission"
)

// BuildTime resolves to an instant: a literal timestamp, a wall-clock time on
// the current day, or one of the event dates.
type BuildTime struct {
	Source TimeSource
	Value  string
}

func (b BuildTime) Eval(env *Env) (any, error) {
	switch b.Source {
	case TimeCustom:
		t, err := time.Parse(time.RFC3339, b.Value)
		if err != nil {
			return nil, fmt.Errorf("buildTime: %w: %q", ErrType, b.Value)
		}
		return t, nil
	case TimeCustomTime:
		clock, err := time.Parse("15:04", b.Value)
		if err != nil {
			clock, err = time.Parse("15:04:05", b.Value)
		}
		if err != nil {
			return nil, fmt.Errorf("buildTime: %w: %q", ErrType, b.Value)
		}
		loc := env.location()
		now := env.Now.In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(),
			clock.Hour(), clock.Minute(), clock.Second(), 0, loc), nil
	case TimeDateFrom:
		return eventDate(env.DateFrom, b.Source)
	case TimeDateTo:
		return eventDate(env.DateTo, b.Source)
	case TimeDateAdmission:
		if env.DateAdmission != nil {
			return *env.DateAdmission, nil
		}
		return eventDate(env.DateFrom, b.Source)
	}
	return nil, fmt.Errorf("buildTime: %w: source %q", ErrParse, b.Source)
}

func eventDate(t *time.Time, src TimeSource) (any, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: event has no %s", ErrUnknownFact, src)
	}
	return *t, nil
}
