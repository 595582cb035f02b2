// Package rules evaluates the admission rules attached to a check-in list.
//
// Rules are JsonLogic documents. They are parsed into a typed expression tree
// once and evaluated against the facts of a single scan. Anything that cannot
// be parsed or evaluated denies admission.
package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrParse       = errors.New("invalid rule expression")
	ErrTooDeep     = errors.New("rule expression nested too deeply")
	ErrUnknownFact = errors.New("rule references unknown fact")
	ErrType        = errors.New("rule operand has unexpected type")
)

// MaxDepth bounds expression nesting.
const MaxDepth = 64

// Env is everything a rule can observe.
type Env struct {
	// Vars holds the named facts reachable through "var".
	Vars map[string]any

	Now      time.Time
	Location *time.Location

	DateFrom      *time.Time
	DateTo        *time.Time
	DateAdmission *time.Time
}

func (e *Env) location() *time.Location {
	if e.Location == nil {
		return time.UTC
	}
	return e.Location
}

// Rule is a parsed admission rule.
type Rule struct {
	root Expr
}

// Empty reports whether raw holds no rule at all.
func Empty(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null")) || bytes.Equal(t, []byte("{}"))
}

// Parse builds the expression tree for raw. An empty rule admits everything.
func Parse(raw json.RawMessage) (*Rule, error) {
	if Empty(raw) {
		return &Rule{root: Literal{Value: true}}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after expression", ErrParse)
	}
	root, err := parse(doc, 0)
	if err != nil {
		return nil, err
	}
	return &Rule{root: root}, nil
}

// Allows evaluates the rule. It returns false together with the cause when
// evaluation fails.
func (r *Rule) Allows(env Env) (bool, error) {
	v, err := r.root.Eval(&env)
	if err != nil {
		return false, err
	}
	return truthy(v), nil
}

// Evaluate parses and evaluates raw in one step.
func Evaluate(raw json.RawMessage, env Env) (bool, error) {
	r, err := Parse(raw)
	if err != nil {
		return false, err
	}
	return r.Allows(env)
}
