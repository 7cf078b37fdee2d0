package aircraft

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// 翼型极曲线接口，输入迎角（度）、雷诺数、马赫数，输出 cl cd cm
type Polar interface {
	Evaluate(alphaDeg, re, mach float64) (cl, cd, cm float64)
}

// 线性薄翼极曲线
type LinearPolar struct {
	Slope        float64 // 升力线斜率，1/rad
	AlphaZeroDeg float64 // 零升迎角，度
	CD0          float64 // 零升阻力系数
	K            float64 // 诱导阻力因子，cd = CD0 + K*cl^2
	CM0          float64 // 四分之一弦点力矩系数
}

func (p LinearPolar) Evaluate(alphaDeg, re, mach float64) (cl, cd, cm float64) {
	cl = p.Slope * (alphaDeg - p.AlphaZeroDeg) * math.Pi / 180
	cd = p.CD0 + p.K*cl*cl
	cm = p.CM0
	return
}

// 查表极曲线，迎角按升序排列，区间内线性插值，区间外取端点
type TablePolar struct {
	AlphaDeg []float64
	CL       []float64
	CD       []float64
	CM       []float64
}

func (p TablePolar) Evaluate(alphaDeg, re, mach float64) (cl, cd, cm float64) {
	n := len(p.AlphaDeg)
	if n == 0 {
		return 0, 0, 0
	}
	if alphaDeg <= p.AlphaDeg[0] {
		return p.CL[0], p.CD[0], p.CM[0]
	}
	if alphaDeg >= p.AlphaDeg[n-1] {
		return p.CL[n-1], p.CD[n-1], p.CM[n-1]
	}
	i := 1
	for alphaDeg > p.AlphaDeg[i] {
		i++
	}
	t := (alphaDeg - p.AlphaDeg[i-1]) / (p.AlphaDeg[i] - p.AlphaDeg[i-1])
	cl = p.CL[i-1] + t*(p.CL[i]-p.CL[i-1])
	cd = p.CD[i-1] + t*(p.CD[i]-p.CD[i-1])
	cm = p.CM[i-1] + t*(p.CM[i]-p.CM[i-1])
	return
}

// 两条极曲线按权重混合
type blendedPolar struct {
	a, b Polar
	t    float64
}

func (p blendedPolar) Evaluate(alphaDeg, re, mach float64) (cl, cd, cm float64) {
	cla, cda, cma := p.a.Evaluate(alphaDeg, re, mach)
	clb, cdb, cmb := p.b.Evaluate(alphaDeg, re, mach)
	cl = cla*(1-p.t) + clb*p.t
	cd = cda*(1-p.t) + cdb*p.t
	cm = cma*(1-p.t) + cmb*p.t
	return
}

// 翼型，弯度线按弦向位置 x/c 给出 z/c
type Airfoil struct {
	Name   string
	Camber func(xc float64) float64
	Polar  Polar
}

// 按名字构造翼型，支持 flat-plate 和 naca 四位数字系列
func NewAirfoil(name string) (*Airfoil, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" || lower == "flat-plate" || lower == "flat_plate" {
		return &Airfoil{
			Name:   "flat-plate",
			Camber: func(xc float64) float64 { return 0 },
			Polar:  LinearPolar{Slope: 2 * math.Pi, AlphaZeroDeg: 0, CD0: 0.01, K: 0.01},
		}, nil
	}
	if strings.HasPrefix(lower, "naca") && len(lower) == 8 {
		digits := lower[4:]
		if _, err := strconv.Atoi(digits); err == nil {
			m := float64(digits[0]-'0') / 100 // 最大弯度
			p := float64(digits[1]-'0') / 10  // 最大弯度位置
			return &Airfoil{
				Name:   lower,
				Camber: naca4Camber(m, p),
				// 薄翼近似：每 1% 弯度零升迎角前移约 1 度
				Polar: LinearPolar{Slope: 2 * math.Pi, AlphaZeroDeg: -100 * m, CD0: 0.01, K: 0.01, CM0: -2.5 * m},
			}, nil
		}
	}
	return nil, fmt.Errorf("unknown airfoil %q", name)
}

// NACA 四位数字系列弯度线
func naca4Camber(m, p float64) func(float64) float64 {
	return func(xc float64) float64 {
		if m == 0 || p == 0 {
			return 0
		}
		if xc < p {
			return m / (p * p) * (2*p*xc - xc*xc)
		}
		return m / ((1 - p) * (1 - p)) * ((1 - 2*p) + 2*p*xc - xc*xc)
	}
}

// 两翼型按权重混合，t = 0 返回 a，t = 1 返回 b
func (a *Airfoil) Blend(b *Airfoil, t float64) *Airfoil {
	ca, cb := a.Camber, b.Camber
	return &Airfoil{
		Name:   a.Name + "+" + b.Name,
		Camber: func(xc float64) float64 { return ca(xc)*(1-t) + cb(xc)*t },
		Polar:  blendedPolar{a: a.Polar, b: b.Polar, t: t},
	}
}
