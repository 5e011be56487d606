package existing

type Existing int

type Level int

type Pair[T any] struct {
	A, B T
}

var defaultLevel Level = 1

func NewOther() Level {
	return defaultLevel
}
