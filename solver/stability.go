package solver

import (
	"math"

	"vlm/operating_point"
)

// 要计算哪些自由度的稳定性导数
type DerivativeFlags struct {
	Alpha bool
	Beta  bool
	P     bool
	Q     bool
	R     bool
}

func AllDerivatives() DerivativeFlags {
	return DerivativeFlags{Alpha: true, Beta: true, P: true, Q: true, R: true}
}

// 有限差分稳定性导数
// 每个打开的自由度加一个小扰动重新求解一次，影响系数矩阵全程复用
// 迎角扫掠后给出纵向中性点，侧滑扫掠后给出横航向中性点
func (s *Solver) RunWithStabilityDerivatives(op *operating_point.OperatingPoint, flags DerivativeFlags) (*AeroData, error) {
	base, err := s.Run(op)
	if err != nil {
		return nil, err
	}
	baseSol := s.last
	base.Derivatives = make(map[string]float64)

	type dof struct {
		abbr    string
		enabled bool
		inc     float64 // 扰动量
		scale   float64 // 差分到导数的换算
		perturb func(*operating_point.OperatingPoint, float64)
	}
	twoVOverB := 2 * op.Velocity / s.Airplane.BRef
	twoVOverC := 2 * op.Velocity / s.Airplane.CRef
	degPerRad := 180 / math.Pi
	dofs := []dof{
		{"a", flags.Alpha, 0.001, degPerRad,
			func(o *operating_point.OperatingPoint, d float64) { o.Alpha += d }},
		{"b", flags.Beta, 0.001, degPerRad,
			func(o *operating_point.OperatingPoint, d float64) { o.Beta += d }},
		{"p", flags.P, 0.001 * twoVOverB, twoVOverB,
			func(o *operating_point.OperatingPoint, d float64) { o.P += d }},
		{"q", flags.Q, 0.001 * twoVOverC, twoVOverC,
			func(o *operating_point.OperatingPoint, d float64) { o.Q += d }},
		{"r", flags.R, 0.001 * twoVOverB, twoVOverB,
			func(o *operating_point.OperatingPoint, d float64) { o.R += d }},
	}

	for _, d := range dofs {
		if !d.enabled {
			continue
		}
		perturbed := *op
		d.perturb(&perturbed, d.inc)
		run, err := s.Run(&perturbed)
		if err != nil {
			return nil, err
		}
		base.Derivatives["CL"+d.abbr] = (run.CL - base.CL) / d.inc * d.scale
		base.Derivatives["CD"+d.abbr] = (run.CD - base.CD) / d.inc * d.scale
		base.Derivatives["CY"+d.abbr] = (run.CY - base.CY) / d.inc * d.scale
		base.Derivatives["Cl"+d.abbr] = (run.Cl - base.Cl) / d.inc * d.scale
		base.Derivatives["Cm"+d.abbr] = (run.Cm - base.Cm) / d.inc * d.scale
		base.Derivatives["Cn"+d.abbr] = (run.Cn - base.Cn) / d.inc * d.scale

		switch d.abbr {
		case "a":
			if cla := base.Derivatives["CLa"]; cla != 0 {
				base.XNeutralPoint = s.Airplane.XYZRef.X - base.Derivatives["Cma"]*s.Airplane.CRef/cla
			}
		case "b":
			if cyb := base.Derivatives["CYb"]; cyb != 0 {
				base.XNeutralPointLateral = s.Airplane.XYZRef.X - base.Derivatives["Cnb"]*s.Airplane.BRef/cyb
			}
		}
	}

	// 扰动求解会覆盖缓存的解，恢复基准解供后续流场求值
	s.last = baseSol
	return base, nil
}
