package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is either a success carrying a T or a failure carrying an error.
// The zero Result is empty: neither success nor failure.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isFailure bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failure. A nil err still yields a failure.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isFailure: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// Value returns the payload and the error, in the (T, error) shape.
func (r Result[T]) Value() (T, error) {
	return r.result, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return r.isFailure
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return !r.isSuccess && !r.isFailure
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
