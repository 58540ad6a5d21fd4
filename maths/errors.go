package maths

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch 维度不匹配
var ErrDimensionMismatch = errors.New("dimension mismatch")

// DimensionError 记录失败的运算和两个向量的实际维度
// Instance 为 true 表示由实例方法产生（First 为接收者）
type DimensionError struct {
	Op       string
	First    int
	Second   int
	Instance bool
}

func (e *DimensionError) Error() string {
	if e.Op == "cross" {
		return fmt.Sprintf("maths: can't cross vectors that are not 3-dimensional: first vector %d, second vector %d", e.First, e.Second)
	}
	if e.Instance {
		return fmt.Sprintf("maths: can't %s vectors of different dimensions: this vector %d, the other vector %d", e.Op, e.First, e.Second)
	}
	return fmt.Sprintf("maths: can't %s vectors of different dimensions: first vector %d, second vector %d", e.Op, e.First, e.Second)
}

// Is 使 errors.Is(err, ErrDimensionMismatch) 成立
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func staticMismatch(op string, first, second *Vector) error {
	return &DimensionError{Op: op, First: first.Dimensions(), Second: second.Dimensions()}
}

func instanceMismatch(op string, this, other *Vector) error {
	return &DimensionError{Op: op, First: this.Dimensions(), Second: other.Dimensions(), Instance: true}
}
