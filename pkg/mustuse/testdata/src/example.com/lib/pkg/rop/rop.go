package rop

type Result[T any] struct {
	v   T
	err error
}

func Success[T any](v T) Result[T] { return Result[T]{v: v} }

func Fail[T any](err error) Result[T] { return Result[T]{err: err} }

type Option[T any] struct {
	v  T
	ok bool
}

func Some[T any](v T) Option[T] { return Option[T]{v: v, ok: true} }

func None[T any]() Option[T] { return Option[T]{} }

func (o Option[T]) Or(fallback T) T {
	if o.ok {
		return o.v
	}
	return fallback
}
