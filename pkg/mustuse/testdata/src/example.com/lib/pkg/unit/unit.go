package unit

import "example.com/lib/pkg/rop"

type Unit struct{}

var U = Unit{}

//unit:mustuse
func Ret[T any](_ Unit, value T) T { return value }

//unit:mustuse
func RetNone[T any](_ Unit) rop.Option[T] { return rop.None[T]() }

// RetSome returns value as a present Option.
//
//unit:mustuse
func RetSome[T any](_ Unit, value T) rop.Option[T] { return rop.Some(value) }

// RetDefault returns the zero value of T.
//
//unit:mustuse
func RetDefault[T any](_ Unit) T {
	var zero T
	return zero
}

func Discard[T any](_ T) Unit { return U }
