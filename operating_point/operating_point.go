package operating_point

import (
	"fmt"
	"math"

	"vlm/model"
)

// 定常飞行状态
// 几何坐标系：x 指向机尾，y 指向右翼，z 指向上方
// 体轴系：x 指向机头，y 指向右翼，z 指向下方
type OperatingPoint struct {
	Atmosphere Atmosphere
	Velocity   float64 // 来流速度 m/s
	Alpha      float64 // 迎角，度
	Beta       float64 // 侧滑角，度
	P          float64 // 体轴滚转角速度 rad/s
	Q          float64 // 体轴俯仰角速度 rad/s
	R          float64 // 体轴偏航角速度 rad/s
}

// 动压 Pa
func (op *OperatingPoint) DynamicPressure() float64 {
	return 0.5 * op.Atmosphere.Density() * op.Velocity * op.Velocity
}

// 几何坐标系下的定常来流速度
func (op *OperatingPoint) FreestreamVelocityGeometryAxes() model.Vector {
	a := op.Alpha * math.Pi / 180
	b := op.Beta * math.Pi / 180
	return model.NewVector(
		op.Velocity*math.Cos(a)*math.Cos(b),
		-op.Velocity*math.Sin(b),
		op.Velocity*math.Sin(a)*math.Cos(b),
	)
}

// 来流单位方向
func (op *OperatingPoint) FreestreamDirectionGeometryAxes() model.Vector {
	return op.FreestreamVelocityGeometryAxes().Normalize()
}

// 机体旋转在各点引起的当地速度，几何坐标系，绕参考点
func (op *OperatingPoint) RotationVelocityGeometryAxes(points []model.Vector, ref model.Vector) []model.Vector {
	omega := model.NewVector(-op.P, op.Q, -op.R)
	out := make([]model.Vector, len(points))
	for i, pt := range points {
		out[i] = omega.Cross(pt.Sub(ref)).Scale(-1)
	}
	return out
}

// 几何轴转体轴
func GeometryToBody(v model.Vector) model.Vector {
	return model.NewVector(-v.X, v.Y, -v.Z)
}

// 体轴转几何轴
func BodyToGeometry(v model.Vector) model.Vector {
	return model.NewVector(-v.X, v.Y, -v.Z)
}

// 体轴转风轴
func (op *OperatingPoint) BodyToWind(v model.Vector) model.Vector {
	sa, ca := math.Sincos(op.Alpha * math.Pi / 180)
	sb, cb := math.Sincos(op.Beta * math.Pi / 180)
	return model.NewVector(
		ca*cb*v.X+sb*v.Y+sa*cb*v.Z,
		-ca*sb*v.X+cb*v.Y-sa*sb*v.Z,
		-sa*v.X+ca*v.Z,
	)
}

// 风轴转体轴
func (op *OperatingPoint) WindToBody(v model.Vector) model.Vector {
	sa, ca := math.Sincos(op.Alpha * math.Pi / 180)
	sb, cb := math.Sincos(op.Beta * math.Pi / 180)
	return model.NewVector(
		ca*cb*v.X-ca*sb*v.Y-sa*v.Z,
		sb*v.X+cb*v.Y,
		sa*cb*v.X-sa*sb*v.Y+ca*v.Z,
	)
}

// 通用轴系转换，axes 取 geometry body wind 之一
func (op *OperatingPoint) ConvertAxes(v model.Vector, from, to string) (model.Vector, error) {
	var body model.Vector
	switch from {
	case "geometry":
		body = GeometryToBody(v)
	case "body":
		body = v
	case "wind":
		body = op.WindToBody(v)
	default:
		return model.Vector{}, fmt.Errorf("unknown axes %q", from)
	}
	switch to {
	case "geometry":
		return BodyToGeometry(body), nil
	case "body":
		return body, nil
	case "wind":
		return op.BodyToWind(body), nil
	}
	return model.Vector{}, fmt.Errorf("unknown axes %q", to)
}
