package maths

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToR3 转换为 r3.Vec，缺失的分量按 0 处理，多余的分量被忽略
func (v *Vector) ToR3() r3.Vec {
	var p r3.Vec
	p.X, _ = v.X()
	p.Y, _ = v.Y()
	p.Z, _ = v.Z()
	return p
}

// FromR3 从 r3.Vec 创建三维向量
func FromR3(p r3.Vec) *Vector {
	return New(p.X, p.Y, p.Z)
}

// ToVecDense 转换为 gonum 稠密向量（复制数据）
// 零维向量返回 nil，gonum 不允许零长度向量
func (v *Vector) ToVecDense() *mat.VecDense {
	if v.Dimensions() == 0 {
		return nil
	}
	return mat.NewVecDense(v.Dimensions(), v.Components())
}

// FromMat 从任意 mat.Vector 创建向量
func FromMat(m mat.Vector) *Vector {
	components := make([]float64, m.Len())
	for i := range components {
		components[i] = m.AtVec(i)
	}
	return &Vector{components: components}
}
