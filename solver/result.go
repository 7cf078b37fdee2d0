package solver

import "vlm/model"

// 一次求解的气动结果
// 力和力矩按几何轴 体轴 风轴各给一份，系数按参考量无量纲化
type AeroData struct {
	ForceGeometry model.Vector `json:"force_geometry"`
	ForceBody     model.Vector `json:"force_body"`
	ForceWind     model.Vector `json:"force_wind"`

	MomentGeometry model.Vector `json:"moment_geometry"`
	MomentBody     model.Vector `json:"moment_body"`
	MomentWind     model.Vector `json:"moment_wind"`

	Lift      float64 `json:"lift"`       // N
	Drag      float64 `json:"drag"`       // N
	SideForce float64 `json:"side_force"` // N

	RollMoment  float64 `json:"roll_moment"`  // 体轴，N·m
	PitchMoment float64 `json:"pitch_moment"` // 体轴，N·m
	YawMoment   float64 `json:"yaw_moment"`   // 体轴，N·m

	CL float64 `json:"cl"`
	CD float64 `json:"cd"`
	CY float64 `json:"cy"`
	Cl float64 `json:"cl_roll"`
	Cm float64 `json:"cm"`
	Cn float64 `json:"cn"`

	// 条带分布量，长度都等于条带数
	StripY          []float64 `json:"strip_y"`           // 展向站位 m
	StripAreas      []float64 `json:"strip_areas"`       // m^2
	StripChords     []float64 `json:"strip_chords"`      // m
	StripCLInviscid []float64 `json:"strip_cl_inviscid"` // 无粘剖面升力系数
	StripCLProfile  []float64 `json:"strip_cl_profile"`  // 极曲线匹配后的剖面升力系数
	StripCDInviscid []float64 `json:"strip_cd_inviscid"`
	StripCDProfile  []float64 `json:"strip_cd_profile"`
	StripCY         []float64 `json:"strip_cy"`
	StripCl         []float64 `json:"strip_cl_roll"`
	StripCm         []float64 `json:"strip_cm"`
	StripCn         []float64 `json:"strip_cn"`

	// 稳定性导数，键形如 CLa Cmq Cnb
	Derivatives map[string]float64 `json:"derivatives,omitempty"`

	XNeutralPoint        float64 `json:"x_np,omitempty"`         // 纵向中性点 x 坐标 m
	XNeutralPointLateral float64 `json:"x_np_lateral,omitempty"` // 横航向中性点 x 坐标 m
}
