package maths

// Accessor 只读向量接口
// 调试记录、绘图等只读方使用该接口，不依赖具体实现
type Accessor interface {
	// Dimensions 返回向量维度
	Dimensions() int
	// Component 获取指定位置的分量，越界时返回 false
	Component(index int) (float64, bool)
	// Components 返回分量的副本
	Components() []float64
	// Magnitude 模长
	Magnitude() float64
}

var _ Accessor = (*Vector)(nil)
