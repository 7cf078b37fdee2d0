package solver

import (
	"fmt"

	"vlm/aircraft"
	"vlm/model"
)

func spacingOf(name string) (aircraft.SpacingFunc, error) {
	return aircraft.SpacingByName(name)
}

// 涡格网格，由机翼薄面网格推导出的全部面片量
// 面片按条带连续排列，条带内按弦向从前往后
type lattice struct {
	chordwise int // 每条带的弦向面片数
	nStrips   int

	frontLeft  []model.Vector
	backLeft   []model.Vector
	backRight  []model.Vector
	frontRight []model.Vector

	normals       []model.Vector
	areas         []float64
	leftVortex    []model.Vector // 左四分之一弦涡点
	rightVortex   []model.Vector
	vortexCenters []model.Vector // 附着涡段中点
	boundLegs     []model.Vector // 附着涡段向量，右减左
	collocations  []model.Vector // 四分之三弦配置点

	isLeadingEdge  []bool
	isTrailingEdge []bool

	// 条带级量，来自单弦向面片的条带网格
	airfoils      []*aircraft.Airfoil
	stripChords   []float64      // 条带弦长，后缘中点到前缘中点 m
	stripXExtents []float64      // 条带 x 向弦长，力矩无量纲化用
	stripYs       []float64      // 条带展向站位
	stripLeftAC   []model.Vector // 条带左缘四分之一弦点
	stripRightAC  []model.Vector
	stripBackLeft []model.Vector
	stripFrontMid []model.Vector // 条带前缘中点
}

func (l *lattice) nPanels() int {
	return len(l.normals)
}

// 由飞机构型组装涡格
func buildLattice(airplane *aircraft.Airplane, cfg Config) (*lattice, error) {
	spanSpacing, err := spacingOf(cfg.SpanwiseSpacing)
	if err != nil {
		return nil, err
	}
	chordSpacing, err := spacingOf(cfg.ChordwiseSpacing)
	if err != nil {
		return nil, err
	}
	if len(airplane.Wings) == 0 {
		return nil, fmt.Errorf("airplane %q has no wings", airplane.Name)
	}

	lat := &lattice{chordwise: cfg.ChordwiseResolution}
	for _, wing := range airplane.Wings {
		sub := wing.SubdivideSections(cfg.SpanwiseResolution, spanSpacing)

		points, faces := sub.MeshThinSurface(cfg.ChordwiseResolution, chordSpacing, true)
		for k, f := range faces {
			lat.appendPanel(points[f[0]], points[f[1]], points[f[2]], points[f[3]])
			lat.isLeadingEdge = append(lat.isLeadingEdge, k%cfg.ChordwiseResolution == 0)
			lat.isTrailingEdge = append(lat.isTrailingEdge, (k+1)%cfg.ChordwiseResolution == 0)
		}

		// 条带网格：弦向只取一个面片，不加弯度
		sPoints, sFaces := sub.MeshThinSurface(1, chordSpacing, false)
		for _, f := range sFaces {
			sfl, sbl, sbr, sfr := sPoints[f[0]], sPoints[f[1]], sPoints[f[2]], sPoints[f[3]]
			front := sfl.Add(sfr).Scale(0.5)
			back := sbl.Add(sbr).Scale(0.5)
			lat.stripChords = append(lat.stripChords, back.Sub(front).Norm())
			lat.stripXExtents = append(lat.stripXExtents, sbl.X-sfl.X)
			lat.stripLeftAC = append(lat.stripLeftAC, sfl.Scale(0.75).Add(sbl.Scale(0.25)))
			lat.stripRightAC = append(lat.stripRightAC, sfr.Scale(0.75).Add(sbr.Scale(0.25)))
			lat.stripBackLeft = append(lat.stripBackLeft, sbl)
			lat.stripFrontMid = append(lat.stripFrontMid, front)
		}

		lat.airfoils = append(lat.airfoils, sub.StripAirfoils()...)
	}

	lat.nStrips = len(lat.stripChords)
	if lat.nPanels() != lat.nStrips*lat.chordwise {
		return nil, fmt.Errorf("inconsistent lattice: %d panels, %d strips, %d chordwise",
			lat.nPanels(), lat.nStrips, lat.chordwise)
	}
	lat.stripYs = make([]float64, lat.nStrips)
	for s := 0; s < lat.nStrips; s++ {
		lat.stripYs[s] = lat.vortexCenters[s*lat.chordwise].Y
	}
	return lat, nil
}

func (l *lattice) appendPanel(fl, bl, br, fr model.Vector) {
	cross := fr.Sub(bl).Cross(fl.Sub(br))
	l.frontLeft = append(l.frontLeft, fl)
	l.backLeft = append(l.backLeft, bl)
	l.backRight = append(l.backRight, br)
	l.frontRight = append(l.frontRight, fr)
	l.normals = append(l.normals, cross.Normalize())
	l.areas = append(l.areas, cross.Norm()/2)

	left := fl.Scale(0.75).Add(bl.Scale(0.25))
	right := fr.Scale(0.75).Add(br.Scale(0.25))
	l.leftVortex = append(l.leftVortex, left)
	l.rightVortex = append(l.rightVortex, right)
	l.vortexCenters = append(l.vortexCenters, left.Add(right).Scale(0.5))
	l.boundLegs = append(l.boundLegs, right.Sub(left))

	colloc := fl.Scale(0.25).Add(bl.Scale(0.75)).Scale(0.5).
		Add(fr.Scale(0.25).Add(br.Scale(0.75)).Scale(0.5))
	l.collocations = append(l.collocations, colloc)
}

// 把面片级数组按条带求和
func (l *lattice) stripSum(panelVals []float64) []float64 {
	out := make([]float64, l.nStrips)
	for i, v := range panelVals {
		out[i/l.chordwise] += v
	}
	return out
}
