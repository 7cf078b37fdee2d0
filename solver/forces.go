package solver

import (
	"vlm/aircraft"
	"vlm/model"
	"vlm/operating_point"
)

// 由环量分布积分气动力与力矩
// 附着涡段上的近场力 F = rho * (V × l) * Gamma，力矩对参考点取矩
func computeForces(plane *aircraft.Airplane, sol *Solution) *AeroData {
	lat, op := sol.lat, sol.op
	rho := op.Atmosphere.Density()
	q := op.DynamicPressure()

	velocities := sol.VelocityAt(lat.vortexCenters)

	n := lat.nPanels()
	forcesG := make([]model.Vector, n)
	momentsG := make([]model.Vector, n)
	Le := make([]float64, n)
	De := make([]float64, n)
	Ye := make([]float64, n)
	le := make([]float64, n)
	me := make([]float64, n)
	ne := make([]float64, n)
	for i := 0; i < n; i++ {
		forcesG[i] = velocities[i].Cross(lat.boundLegs[i]).Scale(rho * sol.gamma[i])
		momentsG[i] = lat.vortexCenters[i].Sub(sol.ref).Cross(forcesG[i])

		fw := op.BodyToWind(operating_point.GeometryToBody(forcesG[i]))
		Le[i] = -fw.Z
		De[i] = -fw.X
		Ye[i] = -fw.Y
		mb := operating_point.GeometryToBody(momentsG[i])
		le[i] = mb.X
		me[i] = mb.Y
		ne[i] = mb.Z
	}

	// 条带聚合与条带系数
	Ls := lat.stripSum(Le)
	Ds := lat.stripSum(De)
	Ys := lat.stripSum(Ye)
	ls := lat.stripSum(le)
	ms := lat.stripSum(me)
	ns := lat.stripSum(ne)
	As := lat.stripSum(lat.areas)

	nStrips := lat.nStrips
	cLsi := make([]float64, nStrips)
	cDsi := make([]float64, nStrips)
	cYs := make([]float64, nStrips)
	cls := make([]float64, nStrips)
	cms := make([]float64, nStrips)
	cns := make([]float64, nStrips)
	for s := 0; s < nStrips; s++ {
		qa := q * As[s]
		cLsi[s] = Ls[s] / qa
		cDsi[s] = Ds[s] / qa
		cYs[s] = Ys[s] / qa
		cs := lat.stripXExtents[s]
		cls[s] = ls[s] / (qa * cs)
		cms[s] = ms[s] / (qa * cs)
		cns[s] = ns[s] / (qa * cs)
	}

	// 粘性修正：极曲线匹配得型阻，附加到总力与总力矩
	visc := applyViscousCorrection(sol, cLsi, As)

	var forceG, momentG model.Vector
	for i := 0; i < n; i++ {
		forceG = forceG.Add(forcesG[i])
		momentG = momentG.Add(momentsG[i])
	}
	forceG = forceG.Add(visc.forceGeometry)
	momentG = momentG.Add(visc.momentGeometry)

	forceB := operating_point.GeometryToBody(forceG)
	forceW := op.BodyToWind(forceB)
	momentB := operating_point.GeometryToBody(momentG)
	momentW := op.BodyToWind(momentB)

	lift := -forceW.Z
	drag := -forceW.X
	side := forceW.Y

	data := &AeroData{
		ForceGeometry:  forceG,
		ForceBody:      forceB,
		ForceWind:      forceW,
		MomentGeometry: momentG,
		MomentBody:     momentB,
		MomentWind:     momentW,

		Lift:      lift,
		Drag:      drag,
		SideForce: side,

		RollMoment:  momentB.X,
		PitchMoment: momentB.Y,
		YawMoment:   momentB.Z,

		CL: lift / (q * plane.SRef),
		CD: drag / (q * plane.SRef),
		CY: side / (q * plane.SRef),
		Cl: momentB.X / (q * plane.SRef * plane.BRef),
		Cm: momentB.Y / (q * plane.SRef * plane.CRef),
		Cn: momentB.Z / (q * plane.SRef * plane.BRef),

		StripY:          lat.stripYs,
		StripAreas:      As,
		StripChords:     lat.stripChords,
		StripCLInviscid: cLsi,
		StripCLProfile:  visc.cl,
		StripCDInviscid: cDsi,
		StripCDProfile:  visc.cd,
		StripCY:         cYs,
		StripCl:         cls,
		StripCm:         cms,
		StripCn:         cns,
	}
	return data
}
