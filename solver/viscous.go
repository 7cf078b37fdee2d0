package solver

import (
	"math"

	log "github.com/sirupsen/logrus"

	"vlm/aircraft"
	"vlm/model"
)

// 牛顿迭代初值参数
const (
	clAlphaGuess  = 5.0  // 升力线斜率估计 1/rad
	alphaZeroDeg  = -2.0 // 零升迎角估计，度
	newtonTol     = 1e-4
	newtonMaxIter = 100
	newtonStepDeg = 0.25 // 中心差分半步长
)

type viscousResult struct {
	cl, cd, cm     []float64
	forceGeometry  model.Vector
	momentGeometry model.Vector
}

// 型阻修正
// 每个条带用牛顿迭代找到使极曲线升力等于无粘升力的等效迎角，
// 取该迎角下的 cd 作为型阻系数，作用在条带四分之一弦点上，
// 方向按配置取当地总速度或定常来流
func applyViscousCorrection(sol *Solution, cLsi, As []float64) viscousResult {
	lat, op := sol.lat, sol.op
	rho := op.Atmosphere.Density()
	nu := op.Atmosphere.KinematicViscosity()
	// 极曲线按不可压条件评估，马赫数恒取零
	const mach = 0.0

	nStrips := lat.nStrips
	res := viscousResult{
		cl: make([]float64, nStrips),
		cd: make([]float64, nStrips),
		cm: make([]float64, nStrips),
	}

	// 尾流中的速度评估点：条带前缘中点的 y z，x 拉到下游远处
	evalPoints := make([]model.Vector, nStrips)
	for s := 0; s < nStrips; s++ {
		evalPoints[s] = model.NewVector(
			10*lat.stripBackLeft[s].X,
			lat.stripFrontMid[s].Y,
			lat.stripFrontMid[s].Z,
		)
	}
	var dragVels []model.Vector
	if sol.cfg.ProfileDragAlignment == "freestream" {
		dragVels = make([]model.Vector, nStrips)
		for s := range dragVels {
			dragVels[s] = sol.steadyFreestream
		}
	} else {
		dragVels = sol.VelocityAt(evalPoints)
	}

	for s := 0; s < nStrips; s++ {
		polar := lat.airfoils[s].Polar
		re := op.Velocity * lat.stripChords[s] / nu

		alpha, converged := matchSectionAlpha(polar, cLsi[s], re, mach)
		if !converged {
			log.WithFields(log.Fields{
				"strip": s,
				"cl":    cLsi[s],
				"alpha": alpha,
			}).Warn("剖面迎角匹配未收敛，按最后一次迭代继续")
		}
		res.cl[s], res.cd[s], res.cm[s] = polar.Evaluate(alpha, re, mach)

		v := dragVels[s]
		force := v.Scale(0.5 * rho * v.Norm() * res.cd[s] * As[s])
		center := lat.stripLeftAC[s].Add(lat.stripRightAC[s]).Scale(0.5)
		res.forceGeometry = res.forceGeometry.Add(force)
		res.momentGeometry = res.momentGeometry.Add(center.Sub(sol.ref).Cross(force))
	}
	return res
}

// 一维牛顿迭代：求使极曲线升力系数等于目标值的迎角（度）
// 斜率用中心差分估计，斜率消失时提前退出按最好结果返回
func matchSectionAlpha(polar aircraft.Polar, clTarget, re, mach float64) (float64, bool) {
	alpha := alphaZeroDeg + clTarget/clAlphaGuess*180/math.Pi
	for iter := 0; iter < newtonMaxIter; iter++ {
		cl, _, _ := polar.Evaluate(alpha, re, mach)
		errCl := cl - clTarget
		if math.Abs(errCl) < newtonTol {
			return alpha, true
		}
		clUp, _, _ := polar.Evaluate(alpha+newtonStepDeg, re, mach)
		clDown, _, _ := polar.Evaluate(alpha-newtonStepDeg, re, mach)
		slope := (clUp - clDown) / (2 * newtonStepDeg)
		if slope == 0 || math.IsNaN(slope) {
			break
		}
		alpha -= errCl / slope
	}
	return alpha, false
}
