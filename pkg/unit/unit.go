package unit

import "github.com/ib-77/unitret/pkg/rop"

// Unit is the no-value marker. It has exactly one value, U.
type Unit struct{}

// U is the only Unit value.
var U = Unit{}

// Defaulter is implemented by types that define their own default value.
type Defaulter[T any] interface {
	Default() T
}

// Do runs each non-nil effect once, in order, and returns U.
func Do(effects ...func()) Unit {
	for _, effect := range effects {
		if effect != nil {
			effect()
		}
	}
	return U
}

// Ret returns value.
//
//unit:mustuse
func Ret[T any](_ Unit, value T) T {
	return value
}

// RetDefault returns the zero value of T.
//
//unit:mustuse
func RetDefault[T any](_ Unit) T {
	var zero T
	return zero
}

// RetDefaultFrom returns T's own Default(). It is called on the zero T.
//
//unit:mustuse
func RetDefaultFrom[T Defaulter[T]](_ Unit) T {
	var zero T
	return zero.Default()
}

// RetNone returns an absent Option of T.
//
//unit:mustuse
func RetNone[T any](_ Unit) rop.Option[T] {
	return rop.None[T]()
}

// RetSome returns value as a present Option.
//
//unit:mustuse
func RetSome[T any](_ Unit, value T) rop.Option[T] {
	return rop.Some(value)
}

// RetSomeDefault returns Some of the zero value of T.
//
//unit:mustuse
func RetSomeDefault[T any](u Unit) rop.Option[T] {
	return rop.Some(RetDefault[T](u))
}

// RetErr returns a failure holding err.
//
//unit:mustuse
func RetErr[T any](_ Unit, err error) rop.Result[T] {
	return rop.Fail[T](err)
}

// RetOk returns a success holding value.
//
//unit:mustuse
func RetOk[T any](_ Unit, value T) rop.Result[T] {
	return rop.Success(value)
}

// RetOkDefault returns a success holding the zero value of T.
//
//unit:mustuse
func RetOkDefault[T any](u Unit) rop.Result[T] {
	return rop.Success(RetDefault[T](u))
}
