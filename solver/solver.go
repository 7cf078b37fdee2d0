package solver

import (
	"fmt"
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"vlm/aircraft"
	"vlm/model"
	"vlm/operating_point"
)

// 影响系数矩阵条件数上限，超过即认为几何病态
const maxConditionNumber = 1e12

// 定常涡格法求解器
// 几何与影响系数矩阵只依赖构型，跨多个飞行状态复用
// 尾涡沿来流方向时来流方向变化会触发矩阵重建
type Solver struct {
	Airplane *aircraft.Airplane
	cfg      Config

	lat *lattice

	aicLU       *mat.LU
	aicTrailing model.Vector

	last *Solution
}

// 单次求解的全部状态，流场求值在其上进行
type Solution struct {
	lat      *lattice
	cfg      Config
	op       *operating_point.OperatingPoint
	ref      model.Vector
	trailing model.Vector

	gamma            []float64    // 各面片环量
	steadyFreestream model.Vector // 几何坐标系定常来流
}

// 构造求解器并组装涡格，非法配置立即报错
func NewSolver(airplane *aircraft.Airplane, cfg Config) (*Solver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	lat, err := buildLattice(airplane, cfg)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"airplane": airplane.Name,
		"panels":   lat.nPanels(),
		"strips":   lat.nStrips,
		"cost":     time.Since(start),
	}).Info("涡格组装完成")
	return &Solver{Airplane: airplane, cfg: cfg, lat: lat}, nil
}

// 尾涡方向，默认 +x，配置打开后沿来流
func (s *Solver) trailingDirection(op *operating_point.OperatingPoint) model.Vector {
	if s.cfg.AlignTrailingVorticesWithWind {
		return op.FreestreamDirectionGeometryAxes()
	}
	return model.NewVector(1, 0, 0)
}

// 组装并分解影响系数矩阵，方向不变时直接复用缓存
func (s *Solver) ensureAIC(trailing model.Vector) error {
	if s.aicLU != nil && trailing == s.aicTrailing {
		return nil
	}
	n := s.lat.nPanels()
	start := time.Now()
	aic := mat.NewDense(n, n, nil)
	// 按行分四块并行组装
	var wg = sync.WaitGroup{}
	const workers = 4
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			for i := lo; i < hi; i++ {
				for j := 0; j < n; j++ {
					v := horseshoeInducedVelocity(
						s.lat.collocations[i],
						s.lat.leftVortex[j], s.lat.rightVortex[j],
						trailing, 1, s.cfg.VortexCoreRadius,
					)
					aic.Set(i, j, v.Dot(s.lat.normals[i]))
				}
			}
			wg.Done()
		}(lo, hi)
	}
	wg.Wait()
	var lu mat.LU
	lu.Factorize(aic)
	cond := lu.Cond()
	if cond > maxConditionNumber || math.IsNaN(cond) {
		return fmt.Errorf("%w: condition number %.3e", ErrIllPosedGeometry, cond)
	}
	s.aicLU = &lu
	s.aicTrailing = trailing
	log.WithFields(log.Fields{
		"n":    n,
		"cond": cond,
		"cost": time.Since(start),
	}).Info("影响系数矩阵分解完成")
	return nil
}

// 求解给定飞行状态下的气动力
func (s *Solver) Run(op *operating_point.OperatingPoint) (*AeroData, error) {
	start := time.Now()
	trailing := s.trailingDirection(op)
	if err := s.ensureAIC(trailing); err != nil {
		return nil, err
	}

	freestream := op.FreestreamVelocityGeometryAxes()
	rotation := op.RotationVelocityGeometryAxes(s.lat.collocations, s.Airplane.XYZRef)

	n := s.lat.nPanels()
	rhs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v := freestream.Add(rotation[i])
		rhs.SetVec(i, -v.Dot(s.lat.normals[i]))
	}

	var g mat.VecDense
	if err := s.aicLU.SolveVecTo(&g, false, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllPosedGeometry, err)
	}
	gamma := make([]float64, n)
	for i := range gamma {
		gamma[i] = g.AtVec(i)
	}

	sol := &Solution{
		lat:              s.lat,
		cfg:              s.cfg,
		op:               op,
		ref:              s.Airplane.XYZRef,
		trailing:         trailing,
		gamma:            gamma,
		steadyFreestream: freestream,
	}
	s.last = sol

	data := computeForces(s.Airplane, sol)
	log.WithFields(log.Fields{
		"alpha": op.Alpha,
		"beta":  op.Beta,
		"CL":    data.CL,
		"CD":    data.CD,
		"cost":  time.Since(start),
	}).Info("求解完成")
	return data, nil
}

// 最近一次求解状态
func (s *Solver) Solution() (*Solution, error) {
	if s.last == nil {
		return nil, ErrNotSolved
	}
	return s.last, nil
}
