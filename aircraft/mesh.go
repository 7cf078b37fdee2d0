package aircraft

import (
	"fmt"
	"math"

	"vlm/model"
)

// 分布函数，返回 [a, b] 上的 n 个采样点
type SpacingFunc func(a, b float64, n int) []float64

// 等距分布
func Linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	return out
}

// 余弦分布，两端加密
func Cosspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	mid := (a + b) / 2
	amp := (b - a) / 2
	for i := range out {
		out[i] = mid + amp*math.Cos(math.Pi*(1-float64(i)/float64(n-1)))
	}
	return out
}

// 按配置名取分布函数
func SpacingByName(name string) (SpacingFunc, error) {
	switch name {
	case "cosine":
		return Cosspace, nil
	case "uniform", "linear":
		return Linspace, nil
	}
	return nil, fmt.Errorf("unknown spacing %q", name)
}

// 展向细分，每对相邻剖面之间插入 ratio-1 个插值剖面
func (w *Wing) SubdivideSections(ratio int, spacing SpacingFunc) *Wing {
	if ratio <= 1 || len(w.XSecs) < 2 {
		return w
	}
	out := &Wing{Name: w.Name, Symmetric: w.Symmetric}
	for i := 0; i+1 < len(w.XSecs); i++ {
		ts := spacing(0, 1, ratio+1)
		for _, t := range ts[:len(ts)-1] {
			out.XSecs = append(out.XSecs, w.XSecs[i].interpolate(w.XSecs[i+1], t))
		}
	}
	out.XSecs = append(out.XSecs, w.XSecs[len(w.XSecs)-1])
	return out
}

// 薄面四边形网格
// 面片顶点顺序为 前左 后左 后右 前右，面片按条带连续排列
// 对称机翼先排 y >= 0 一侧再排镜像一侧，镜像面片交换左右顶点保持法向一致
func (w *Wing) MeshThinSurface(chordRes int, spacing SpacingFunc, addCamber bool) ([]model.Vector, [][4]int) {
	xcs := spacing(0, 1, chordRes+1)
	nSec := len(w.XSecs)
	nCols := chordRes + 1

	points := make([]model.Vector, 0, nSec*nCols)
	for _, xs := range w.XSecs {
		for _, xc := range xcs {
			pt := xs.LeadingEdge.Add(model.NewVector(xc*xs.Chord, 0, 0))
			if addCamber {
				pt.Z += xs.Airfoil.Camber(xc) * xs.Chord
			}
			points = append(points, pt)
		}
	}

	idx := func(sec, col int) int { return sec*nCols + col }
	faces := make([][4]int, 0, (nSec-1)*chordRes)
	for i := 0; i+1 < nSec; i++ {
		for j := 0; j < chordRes; j++ {
			faces = append(faces, [4]int{idx(i, j), idx(i, j+1), idx(i+1, j+1), idx(i+1, j)})
		}
	}

	if w.Symmetric {
		off := len(points)
		for _, xs := range w.XSecs {
			for _, xc := range xcs {
				pt := xs.LeadingEdge.Add(model.NewVector(xc*xs.Chord, 0, 0))
				if addCamber {
					pt.Z += xs.Airfoil.Camber(xc) * xs.Chord
				}
				pt.Y = -pt.Y
				points = append(points, pt)
			}
		}
		for i := 0; i+1 < nSec; i++ {
			for j := 0; j < chordRes; j++ {
				faces = append(faces, [4]int{
					off + idx(i+1, j), off + idx(i+1, j+1), off + idx(i, j+1), off + idx(i, j),
				})
			}
		}
	}
	return points, faces
}

// 每个条带对应的混合翼型，按面片条带顺序排列
func (w *Wing) StripAirfoils() []*Airfoil {
	out := make([]*Airfoil, 0, len(w.XSecs)-1)
	for i := 0; i+1 < len(w.XSecs); i++ {
		out = append(out, w.XSecs[i].Airfoil.Blend(w.XSecs[i+1].Airfoil, 0.5))
	}
	if w.Symmetric {
		out = append(out, out[:len(w.XSecs)-1]...)
	}
	return out
}
