package rop

import "fmt"

// Option represents an optional value.
// Some(v) is a present value, None is absence. The zero Option is None.
type Option[T any] struct {
	v     T
	valid bool
}

// Some constructs a present Option.
func Some[T any](v T) Option[T] { return Option[T]{v: v, valid: true} }

// None constructs an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

func (o Option[T]) IsSome() bool { return o.valid }

func (o Option[T]) IsNone() bool { return !o.valid }

// Unwrap returns the value and whether it was present.
func (o Option[T]) Unwrap() (T, bool) { return o.v, o.valid }

// Or returns the value if present, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if o.valid {
		return o.v
	}
	return fallback
}

// MustGet returns the value and panics when the Option is absent.
func (o Option[T]) MustGet() T {
	if !o.valid {
		panic("rop: MustGet on absent Option")
	}
	return o.v
}

func (o Option[T]) String() string {
	if !o.valid {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}
