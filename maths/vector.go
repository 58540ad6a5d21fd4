package maths

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector N 维向量
// 分量顺序固定，维度在创建时确定，仅 Append 可以扩展
type Vector struct {
	components []float64
}

// New 创建向量，复制传入的分量，零个参数得到零维向量
func New(values ...float64) *Vector {
	components := make([]float64, len(values))
	copy(components, values)
	return &Vector{components: components}
}

// data 返回底层分量，nil 向量视为零维向量
func (v *Vector) data() []float64 {
	if v == nil {
		return nil
	}
	return v.components
}

// Dimensions 返回向量维度，nil 向量返回 0
func (v *Vector) Dimensions() int {
	return len(v.data())
}

// Components 返回分量的副本
func (v *Vector) Components() []float64 {
	out := make([]float64, v.Dimensions())
	copy(out, v.data())
	return out
}

// Component 获取指定位置的分量，越界时 ok 为 false
func (v *Vector) Component(index int) (value float64, ok bool) {
	if index < 0 || index >= v.Dimensions() {
		return 0, false
	}
	return v.components[index], true
}

// X 第 0 个分量
func (v *Vector) X() (float64, bool) { return v.Component(0) }

// Y 第 1 个分量
func (v *Vector) Y() (float64, bool) { return v.Component(1) }

// Z 第 2 个分量
func (v *Vector) Z() (float64, bool) { return v.Component(2) }

// Set 原地修改单个分量，越界返回 false 且不改变向量
func (v *Vector) Set(index int, value float64) bool {
	if index < 0 || index >= v.Dimensions() {
		return false
	}
	v.components[index] = value
	return true
}

// Append 在末尾追加分量，接收者不能为 nil
func (v *Vector) Append(values ...float64) {
	v.components = append(v.components, values...)
}

// Clone 深拷贝
func (v *Vector) Clone() *Vector {
	return New(v.data()...)
}

// Add 向量加法（自身 += other）
func (v *Vector) Add(other *Vector) error {
	if other.Dimensions() != v.Dimensions() {
		return instanceMismatch("add", v, other)
	}
	floats.Add(v.data(), other.data())
	return nil
}

// Subtract 向量减法（自身 -= other）
func (v *Vector) Subtract(other *Vector) error {
	if other.Dimensions() != v.Dimensions() {
		return instanceMismatch("subtract", v, other)
	}
	floats.Sub(v.data(), other.data())
	return nil
}

// Multiply 向量缩放
func (v *Vector) Multiply(scalar float64) {
	floats.Scale(scalar, v.data())
}

// Divide 逐分量除以 scalar
// 除零不报错，结果按 IEEE-754 得到 ±Inf 或 NaN
func (v *Vector) Divide(scalar float64) {
	components := v.data()
	for i := range components {
		components[i] /= scalar
	}
}

// MagnitudeSquared 模长平方
func (v *Vector) MagnitudeSquared() float64 {
	return dot(v.data(), v.data())
}

// Magnitude 模长
func (v *Vector) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// String 返回向量的字符串表示
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range v.data() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", c)
	}
	sb.WriteByte(')')
	return sb.String()
}

// dot 从 0 开始按顺序累加
func dot(a, b []float64) float64 {
	result := 0.0
	for i := range a {
		result += a[i] * b[i]
	}
	return result
}
