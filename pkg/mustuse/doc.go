// Package mustuse defines an Analyzer that reports call statements whose
// result is dropped although it must be inspected.
//
// A result must be inspected when it is a rop.Result or rop.Option, or when
// the called function carries the directive
//
//	//unit:mustuse
//
// in its doc comment. The directive is exported as a fact, so annotated
// functions are recognised from other packages too.
//
// Dropping such a result on purpose is spelled unit.Discard(f()), which
// yields unit.Unit and is never reported. go and defer statements are not
// reported either.
package mustuse
