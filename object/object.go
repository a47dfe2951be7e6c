// Package object defines the runtime value universe the evaluator
// produces and consumes, plus the lexically-scoped Environment that backs
// variable lookup and closures.
package object

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"

	"github.com/akashmaji946/monkey-go/ast"
)

// Type is the tag of a runtime value. Its string form appears verbatim in
// error messages, so the constants below are part of the observable
// contract, not just internal bookkeeping.
type Type string

const (
	NULL_OBJ         Type = "NULL"
	ERROR_OBJ        Type = "ERROR"
	INTEGER_OBJ      Type = "INTEGER"
	BOOLEAN_OBJ      Type = "BOOLEAN"
	STRING_OBJ       Type = "STRING"
	RETURN_VALUE_OBJ Type = "RETURN_VALUE"
	FUNCTION_OBJ     Type = "FUNCTION"
	BUILTIN_OBJ      Type = "BUILTIN"
	ARRAY_OBJ        Type = "ARRAY"
	HASH_OBJ         Type = "HASH"
)

// Object is implemented by every runtime value.
type Object interface {
	Type() Type
	Inspect() string
}

// HashKey is a uniform, hashable summary of a primitive value, used to key
// Hash objects. Two HashKeys compare equal only when both their Type and
// Value fields match, so values of different primitive kinds never
// collide even if Value happens to coincide.
type HashKey struct {
	Type  Type
	Value uint64
}

// Hashable is implemented by object types that may be used as hash keys:
// Integer, Boolean, and String.
type Hashable interface {
	HashKey() HashKey
}

// Integer is a 64-bit signed integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() Type      { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) HashKey() HashKey {
	return HashKey{Type: i.Type(), Value: uint64(i.Value)}
}

// Boolean is a boolean value. Two Booleans with the same Value produce
// equal HashKeys.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) HashKey() HashKey {
	var v uint64
	if b.Value {
		v = 1
	}
	return HashKey{Type: b.Type(), Value: v}
}

// String is an immutable string value.
type String struct {
	Value string
}

func (s *String) Type() Type      { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

// HashKey hashes the string's UTF-8 bytes with sha256 and keeps the low 64
// bits of the digest as a uint64. Any collision-resistant hash satisfies the
// observable contract (equal strings hash equal); this keeps the scheme
// a plain unsigned integer rather than pulling in a big-int comparison
// per lookup.
func (s *String) HashKey() HashKey {
	sum := sha256.Sum256([]byte(s.Value))
	value := new(big.Int).SetBytes(sum[:]).Uint64()
	return HashKey{Type: s.Type(), Value: value}
}

// Null is the language's single null value.
type Null struct{}

func (n *Null) Type() Type      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// ReturnValue wraps the value carried by an in-flight return statement. It
// is a control-flow sentinel: block evaluation propagates it upward
// unchanged so the nearest enclosing function call can unwrap it; program
// evaluation unwraps it directly.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() Type      { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Error is a first-class runtime error value. It is not catchable; every
// consumer of a possibly-error value must check Type() and propagate it
// unchanged.
type Error struct {
	Message string
}

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }

// Function is a closure: parameters and a body paired with the
// environment active at the point of definition. Capturing Env by
// reference (not by copy) is what gives the language lexical closures.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() Type { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}

// BuiltinFunction is the signature every native builtin implements.
type BuiltinFunction func(args ...Object) Object

// Builtin wraps a native Go function so it can be called like any other
// function value.
type Builtin struct {
	Fn BuiltinFunction
}

func (b *Builtin) Type() Type      { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return "builtin function" }

// Array is an ordered, immutable list of values. Builtins that appear to
// mutate an array (push, rest) return a new Array instead.
type Array struct {
	Elements []Object
}

func (a *Array) Type() Type { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	var out bytes.Buffer

	elements := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		elements = append(elements, e.Inspect())
	}

	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")

	return out.String()
}

// HashPair holds the original key object alongside its value, so
// Inspect() can print the key as the user wrote it rather than its
// derived HashKey.
type HashPair struct {
	Key   Object
	Value Object
}

// Hash is an immutable map keyed by HashKey, built from Integer, Boolean,
// or String keys.
type Hash struct {
	Pairs map[HashKey]HashPair
}

func (h *Hash) Type() Type { return HASH_OBJ }
func (h *Hash) Inspect() string {
	var out bytes.Buffer

	pairs := make([]string, 0, len(h.Pairs))
	for _, pair := range h.Pairs {
		pairs = append(pairs, fmt.Sprintf("%s: %s", pair.Key.Inspect(), pair.Value.Inspect()))
	}

	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")

	return out.String()
}
