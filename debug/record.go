package debug

import (
	"log"
	"math"

	"vecmath/maths"
)

// Snapshot 某一时刻的向量副本
type Snapshot struct {
	Name       string    // 名称
	Components []float64 // 分量
	Magnitude  float64   // 模长
}

// Point 返回 (x, y)，维度不足 2 或含 Inf/NaN 时 ok 为 false
func (s Snapshot) Point() (x, y float64, ok bool) {
	if len(s.Components) < 2 {
		return 0, 0, false
	}
	x, y = s.Components[0], s.Components[1]
	if !finite(x) || !finite(y) {
		return 0, 0, false
	}
	return x, y, true
}

func finite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }

// Record 记录向量历史状态
type Record struct {
	Snapshots []Snapshot
}

// Add 记录向量当前值，之后对向量的修改不影响记录
func (list *Record) Add(name string, v maths.Accessor) {
	list.Snapshots = append(list.Snapshots, Snapshot{
		Name:       name,
		Components: v.Components(),
		Magnitude:  v.Magnitude(),
	})
}

// Len 记录数量
func (list *Record) Len() int { return len(list.Snapshots) }

// Reset 清空记录
func (list *Record) Reset() { list.Snapshots = list.Snapshots[:0] }

// Error 输出错误日志
func (list *Record) Error(err error) { log.Println(err) }
