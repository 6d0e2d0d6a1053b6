package a

import (
	"example.com/lib/pkg/rop"
	"example.com/lib/pkg/unit"
)

//unit:mustuse
func checksum(b []byte) int { return len(b) } // want checksum:"mustuse"

// first returns the first element of xs, or fallback when xs is empty.
//
//unit:mustuse
func first[T any](xs []T, fallback T) T { // want first:"mustuse"
	if len(xs) == 0 {
		return fallback
	}
	return xs[0]
}

func load() (rop.Result[int], error) { return rop.Success(1), nil }

func plain() int { return 1 }

func dropped() {
	unit.Ret(unit.U, 1)          // want "result of Ret is not used"
	unit.RetNone[int](unit.U)    // want "result of RetNone is not used"
	rop.Some(2)                  // want "result of Some is not used"
	rop.Fail[int](nil)           // want "result of Fail is not used"
	load()                       // want "result of load is not used"
	checksum(nil)                // want "result of checksum is not used"
	first([]int{1}, 0)           // want "result of first is not used"
	unit.RetSome(unit.U, 4)      // want "result of RetSome is not used"
	unit.RetDefault[int](unit.U) // want "result of RetDefault is not used"

	lazy := func() rop.Option[int] { return rop.None[int]() }
	lazy() // want "result of lazy is not used"
}

func acknowledged() {
	unit.Discard(unit.Ret(unit.U, 1))
	unit.Discard(rop.Some(2))
	unit.Discard(checksum(nil))
	unit.Discard(first([]string{"a"}, ""))
	unit.Discard(unit.RetDefault[int](unit.U))
	_ = checksum(nil)
	_, _ = load()
	plain()
	rop.None[int]().Or(3)
	defer rop.Some(1)
	go checksum(nil)
	println("x")
}
