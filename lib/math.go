package lib

import "golang.org/x/exp/constraints"

type SignedNumber interface {
	constraints.Signed | constraints.Float
}

func Abs[T SignedNumber](i T) T {
	if i >= T(0) {
		return i
	}
	return -i
}

func Min[T constraints.Ordered](i0, i1 T) T {
	if i0 <= i1 {
		return i0
	}
	return i1
}

func Max[T constraints.Ordered](i0, i1 T) T {
	if i0 >= i1 {
		return i0
	}
	return i1
}
