package maths

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Add 返回 first + second，不修改两个操作数
func Add(first, second *Vector) (*Vector, error) {
	if first.Dimensions() != second.Dimensions() {
		return nil, staticMismatch("add", first, second)
	}
	components := make([]float64, first.Dimensions())
	floats.AddTo(components, first.data(), second.data())
	return &Vector{components: components}, nil
}

// Subtract 返回 first - second，不修改两个操作数
func Subtract(first, second *Vector) (*Vector, error) {
	if first.Dimensions() != second.Dimensions() {
		return nil, staticMismatch("subtract", first, second)
	}
	components := make([]float64, first.Dimensions())
	floats.SubTo(components, first.data(), second.data())
	return &Vector{components: components}, nil
}

// Dot 点积
func Dot(first, second *Vector) (float64, error) {
	if first.Dimensions() != second.Dimensions() {
		return 0, staticMismatch("dot", first, second)
	}
	return dot(first.data(), second.data()), nil
}

// Cross 叉积，两个操作数都必须是三维向量
func Cross(first, second *Vector) (*Vector, error) {
	if first.Dimensions() != 3 || second.Dimensions() != 3 {
		return nil, &DimensionError{Op: "cross", First: first.Dimensions(), Second: second.Dimensions()}
	}
	return FromR3(r3.Cross(first.ToR3(), second.ToR3())), nil
}
