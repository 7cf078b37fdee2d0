package aircraft

import (
	"fmt"
	"math"

	"vlm/model"
)

// 翼剖面，前缘点在几何坐标系下给出，弦沿 +x 方向铺展
type XSec struct {
	LeadingEdge model.Vector
	Chord       float64
	Airfoil     *Airfoil
}

// 剖面间线性插值，翼型按权重混合
func (x XSec) interpolate(o XSec, t float64) XSec {
	return XSec{
		LeadingEdge: x.LeadingEdge.Lerp(o.LeadingEdge, t),
		Chord:       x.Chord*(1-t) + o.Chord*t,
		Airfoil:     x.Airfoil.Blend(o.Airfoil, t),
	}
}

// 机翼，剖面按展向从内到外排列
type Wing struct {
	Name      string
	Symmetric bool // 关于 y = 0 镜像
	XSecs     []XSec
}

// 单侧平面面积，对称机翼翻倍
func (w *Wing) Area() float64 {
	area := 0.0
	for i := 0; i+1 < len(w.XSecs); i++ {
		a, b := w.XSecs[i], w.XSecs[i+1]
		dy := b.LeadingEdge.Y - a.LeadingEdge.Y
		dz := b.LeadingEdge.Z - a.LeadingEdge.Z
		span := math.Hypot(dy, dz)
		area += 0.5 * (a.Chord + b.Chord) * span
	}
	if w.Symmetric {
		area *= 2
	}
	return area
}

// 展长，对称机翼取外侧剖面 y 坐标的两倍
func (w *Wing) Span() float64 {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, xs := range w.XSecs {
		minY = math.Min(minY, xs.LeadingEdge.Y)
		maxY = math.Max(maxY, xs.LeadingEdge.Y)
	}
	if w.Symmetric {
		return 2 * math.Max(math.Abs(minY), math.Abs(maxY))
	}
	return maxY - minY
}

// 飞机，参考量用于系数无量纲化
type Airplane struct {
	Name   string
	Wings  []*Wing
	XYZRef model.Vector // 力矩参考点，几何坐标系
	SRef   float64      // 参考面积 m^2
	BRef   float64      // 参考展长 m
	CRef   float64      // 参考弦长 m
}

// 构造飞机，参考量为零时按第一副机翼自动补全
func NewAirplane(name string, wings []*Wing, ref model.Vector, sRef, bRef, cRef float64) *Airplane {
	a := &Airplane{Name: name, Wings: wings, XYZRef: ref, SRef: sRef, BRef: bRef, CRef: cRef}
	if len(wings) > 0 {
		if a.SRef == 0 {
			a.SRef = wings[0].Area()
		}
		if a.BRef == 0 {
			a.BRef = wings[0].Span()
		}
		if a.CRef == 0 && a.BRef != 0 {
			a.CRef = a.SRef / a.BRef
		}
	}
	return a
}

// 由前端下发的环境配置构造飞机
func FromEnv(env *model.Env) (*Airplane, error) {
	if len(env.Wings) == 0 {
		return DefaultAirplane(), nil
	}
	wings := make([]*Wing, 0, len(env.Wings))
	for _, wc := range env.Wings {
		if len(wc.Sections) < 2 {
			return nil, fmt.Errorf("wing %q needs at least two sections", wc.Name)
		}
		w := &Wing{Name: wc.Name, Symmetric: wc.Symmetric}
		for _, sc := range wc.Sections {
			af, err := NewAirfoil(sc.Airfoil)
			if err != nil {
				return nil, err
			}
			w.XSecs = append(w.XSecs, XSec{
				LeadingEdge: model.NewVector(sc.LeadingEdge[0], sc.LeadingEdge[1], sc.LeadingEdge[2]),
				Chord:       sc.Chord,
				Airfoil:     af,
			})
		}
		wings = append(wings, w)
	}
	return NewAirplane("env", wings, model.Vector{}, 0, 0, 0), nil
}

// 默认演示构型：展长 10 米弦长 1 米的平板矩形机翼
func DefaultAirplane() *Airplane {
	flat, _ := NewAirfoil("flat-plate")
	wing := &Wing{
		Name:      "main wing",
		Symmetric: true,
		XSecs: []XSec{
			{LeadingEdge: model.NewVector(0, 0, 0), Chord: 1, Airfoil: flat},
			{LeadingEdge: model.NewVector(0, 5, 0), Chord: 1, Airfoil: flat},
		},
	}
	return NewAirplane("demo", []*Wing{wing}, model.Vector{}, 0, 0, 0)
}
