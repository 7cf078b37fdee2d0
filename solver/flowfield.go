package solver

import (
	"sync"

	"vlm/model"
)

// 全部马蹄涡在给定点处的诱导速度，按点分四块并行
func (sol *Solution) InducedVelocityAt(points []model.Vector) []model.Vector {
	out := make([]model.Vector, len(points))
	var wg = sync.WaitGroup{}
	const workers = 4
	chunk := (len(points) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(points) {
			hi = len(points)
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			for i := lo; i < hi; i++ {
				var v model.Vector
				for j := range sol.gamma {
					v = v.Add(horseshoeInducedVelocity(
						points[i],
						sol.lat.leftVortex[j], sol.lat.rightVortex[j],
						sol.trailing, sol.gamma[j], sol.cfg.VortexCoreRadius,
					))
				}
				out[i] = v
			}
			wg.Done()
		}(lo, hi)
	}
	wg.Wait()
	return out
}

// 给定点处的总速度：诱导速度加定常来流加机体旋转当地速度
func (sol *Solution) VelocityAt(points []model.Vector) []model.Vector {
	out := sol.InducedVelocityAt(points)
	rotation := sol.op.RotationVelocityGeometryAxes(points, sol.ref)
	for i := range out {
		out[i] = out[i].Add(sol.steadyFreestream).Add(rotation[i])
	}
	return out
}
