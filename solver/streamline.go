package solver

import (
	"time"

	log "github.com/sirupsen/logrus"

	"vlm/model"
)

// 追踪流线，定步长归一化方向的前向欧拉积分
// seeds 为 nil 时在后缘面片中点撒种子，总条数向配置值看齐
// length <= 0 时取 5 倍参考弦长，nSteps < 2 时取配置步数
func (s *Solver) CalculateStreamlines(seeds []model.Vector, nSteps int, length float64) ([][]model.Vector, error) {
	sol, err := s.Solution()
	if err != nil {
		return nil, err
	}
	if length <= 0 {
		length = 5 * s.Airplane.CRef
	}
	if nSteps < 2 {
		nSteps = s.cfg.StreamlineSteps
	}
	if seeds == nil {
		seeds = s.defaultSeeds()
	}

	start := time.Now()
	step := length / float64(nSteps)
	lines := make([][]model.Vector, len(seeds))
	current := make([]model.Vector, len(seeds))
	copy(current, seeds)
	for i := range lines {
		lines[i] = make([]model.Vector, 0, nSteps)
		lines[i] = append(lines[i], seeds[i])
	}
	for k := 1; k < nSteps; k++ {
		vels := sol.VelocityAt(current)
		for i := range current {
			current[i] = current[i].Add(vels[i].Normalize().Scale(step))
			lines[i] = append(lines[i], current[i])
		}
	}
	log.WithFields(log.Fields{
		"streamlines": len(lines),
		"steps":       nSteps,
		"cost":        time.Since(start),
	}).Info("流线追踪完成")
	return lines, nil
}

// 默认种子点：后缘面片后缘上的等分点
func (s *Solver) defaultSeeds() []model.Vector {
	lat := s.lat
	var teLeft, teRight []model.Vector
	for i := 0; i < lat.nPanels(); i++ {
		if lat.isTrailingEdge[i] {
			teLeft = append(teLeft, lat.backLeft[i])
			teRight = append(teRight, lat.backRight[i])
		}
	}
	if len(teLeft) == 0 {
		return nil
	}
	perPanel := s.cfg.StreamlineCount / len(teLeft)
	if perPanel < 1 {
		perPanel = 1
	}
	seeds := make([]model.Vector, 0, perPanel*len(teLeft))
	for i := range teLeft {
		for j := 0; j < perPanel; j++ {
			t := (float64(j) + 0.5) / float64(perPanel)
			seeds = append(seeds, teLeft[i].Lerp(teRight[i], t))
		}
	}
	return seeds
}
