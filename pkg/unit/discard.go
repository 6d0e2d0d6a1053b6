package unit

// Discard drops value and returns U. value has already been evaluated by
// the time Discard runs, so any side effect that produced it happened once.
func Discard[T any](value T) Unit {
	_ = value
	return U
}

// DiscardRet is Discard under the Ret* naming.
func DiscardRet[T any](value T) Unit {
	return Discard(value)
}

// DiscardAll drops every value, e.g. all results of fmt.Println.
func DiscardAll(values ...any) Unit {
	_ = values
	return U
}
