// SPDX-License-Identifier: MIT

package timing

import (
	"fmt"
	"reflect"
	"runtime"
)

const (
	methodSpread = "Spread"
	methodZip    = "Zip"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Candidate is one named implementation under test, bound to the validator
// that turns generated data of type T into its argument(s).
type Candidate[T any] struct {
	name string
	// bind runs the validator on data and returns the call to be timed.
	bind func(data T) (func() error, error)
}

// Name returns the display name (column header and legend label).
func (c Candidate[T]) Name() string {
	return c.name
}

// Func pairs fn with validate: every point's data goes through validate once
// (outside the timed region) and the result is passed to fn on each call.
// Panics on nil fn or validate (programmer error).
func Func[T, A any](name string, fn func(A) error, validate func(T) A) Candidate[T] {
	if fn == nil || validate == nil {
		panic("timing: Func(nil)")
	}

	return Candidate[T]{
		name: name,
		bind: func(data T) (func() error, error) {
			arg := validate(data)

			return func() error { return fn(arg) }, nil
		},
	}
}

// Same is Func with a pass-through validator.
func Same[T any](name string, fn func(T) error) Candidate[T] {
	return Func(name, fn, func(data T) T { return data })
}

// Spread binds a function of any fixed arity. The validator's slice is spread
// into positional arguments, one element per parameter.
//
// Precondition: len(validate(data)) == number of fn's parameters and each
// element is assignable to its parameter (nil means the parameter's zero
// value). A mismatch is reported as ErrArity when the point is bound, before
// any call for that point is timed.
//
// If fn's last result is an error, a non-nil value fails the run like any
// other candidate error. Variadic functions are rejected.
func Spread[T any](name string, fn any, validate func(T) []any) (Candidate[T], error) {
	fv := reflect.ValueOf(fn)
	if fn == nil || fv.Kind() != reflect.Func || fv.IsNil() {
		return Candidate[T]{}, configErrorf(methodSpread, "candidate %q is not a function", name)
	}
	if validate == nil {
		return Candidate[T]{}, configErrorf(methodSpread, "candidate %q has nil validator", name)
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return Candidate[T]{}, configErrorf(methodSpread, "candidate %q is variadic", name)
	}
	arity := ft.NumIn()
	returnsErr := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errorType

	bind := func(data T) (func() error, error) {
		args := validate(data)
		if len(args) != arity {
			return nil, fmt.Errorf("%s: candidate %q takes %d arguments, validator produced %d: %w",
				methodSpread, name, arity, len(args), ErrArity)
		}
		in := make([]reflect.Value, arity)
		for i, a := range args {
			want := ft.In(i)
			if a == nil {
				in[i] = reflect.Zero(want)
				continue
			}
			v := reflect.ValueOf(a)
			if !v.Type().AssignableTo(want) {
				return nil, fmt.Errorf("%s: candidate %q argument %d is %s, want %s: %w",
					methodSpread, name, i, v.Type(), want, ErrArity)
			}
			in[i] = v
		}

		return func() error {
			out := fv.Call(in)
			if returnsErr {
				if e := out[len(out)-1]; !e.IsNil() {
					return e.Interface().(error)
				}
			}

			return nil
		}, nil
	}

	return Candidate[T]{name: name, bind: bind}, nil
}

// Pure adapts a value-returning kernel to the func(A) error shape candidates
// use. The result is kept live so the call cannot be optimised away.
func Pure[A, R any](f func(A) R) func(A) error {
	if f == nil {
		panic("timing: Pure(nil)")
	}

	return func(a A) error {
		runtime.KeepAlive(f(a))

		return nil
	}
}

// Checked adapts a kernel that returns (value, error).
func Checked[A, R any](f func(A) (R, error)) func(A) error {
	if f == nil {
		panic("timing: Checked(nil)")
	}

	return func(a A) error {
		r, err := f(a)
		runtime.KeepAlive(r)

		return err
	}
}

// Zip pairs parallel lists of names, functions and validators by position.
// Any length mismatch fails before a single candidate is built.
func Zip[T any](names []string, fns []func(T) error, validators []func(T) T) ([]Candidate[T], error) {
	if len(names) != len(fns) {
		return nil, configErrorf(methodZip, "%d names for %d functions", len(names), len(fns))
	}
	if len(validators) != len(fns) {
		return nil, configErrorf(methodZip, "%d validators for %d functions", len(validators), len(fns))
	}
	out := make([]Candidate[T], len(fns))
	for i := range fns {
		if fns[i] == nil || validators[i] == nil {
			return nil, configErrorf(methodZip, "nil function or validator at %d (%q)", i, names[i])
		}
		out[i] = Func(names[i], fns[i], validators[i])
	}

	return out, nil
}
