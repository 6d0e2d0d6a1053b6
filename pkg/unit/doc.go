// Package unit turns a side effect into the value an expression needs,
// and turns an unused value back into nothing.
//
// Constructors take a Unit receiver that is never read:
// - Ret: pass a value through
// - RetOk/RetOkDefault, RetErr: build a rop.Result
// - RetSome/RetSomeDefault, RetNone: build a rop.Option
// - RetDefault/RetDefaultFrom: build a default value
//
// Do produces the receiver from one or more side effects, so a log line and
// the returned value fit in one expression:
//
//	return unit.RetNone[int](unit.Do(func() { log.Warn("value too small") }))
//
// Discard, DiscardRet and DiscardAll drop a value on purpose. They are the
// explicit acknowledgement the mustuse analyzer looks for.
package unit
