// Package rop holds the wrapper values built by package unit:
// Result[T] for success/failure outcomes and Option[T] for present/absent
// values.
//
// Neither type offers map/filter style combinators. Build them with
// Success/Fail and Some/None, read them with the accessors.
package rop
