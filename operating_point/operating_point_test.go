package operating_point

import (
	"math"
	"testing"

	"vlm/model"
)

func almostEqual(a, b model.Vector, tol float64) bool {
	return a.Sub(b).Norm() < tol
}

func TestFreestreamVelocity(t *testing.T) {
	op := &OperatingPoint{Velocity: 10}
	v := op.FreestreamVelocityGeometryAxes()
	if !almostEqual(v, model.NewVector(10, 0, 0), 1e-12) {
		t.Errorf("零迎角来流应沿 +x: %v", v)
	}

	op.Alpha = 5
	v = op.FreestreamVelocityGeometryAxes()
	if v.Z <= 0 {
		t.Errorf("正迎角来流应有 +z 分量: %v", v)
	}
	if math.Abs(v.Norm()-10) > 1e-12 {
		t.Errorf("来流速度大小应保持不变: %v", v.Norm())
	}

	op.Alpha, op.Beta = 0, 5
	v = op.FreestreamVelocityGeometryAxes()
	if v.Y >= 0 {
		t.Errorf("正侧滑来流应有 -y 分量: %v", v)
	}
}

func TestConvertAxesRoundTrip(t *testing.T) {
	op := &OperatingPoint{Velocity: 10, Alpha: 5, Beta: -3}
	v := model.NewVector(1.5, -2.5, 0.5)
	for _, axes := range []string{"body", "wind"} {
		there, err := op.ConvertAxes(v, "geometry", axes)
		if err != nil {
			t.Fatal(err)
		}
		back, err := op.ConvertAxes(there, axes, "geometry")
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(v, back, 1e-12) {
			t.Errorf("%s 往返不一致: %v -> %v", axes, v, back)
		}
	}
	if _, err := op.ConvertAxes(v, "geometry", "nosuch"); err == nil {
		t.Error("未知轴系应当报错")
	}
}

func TestWindAxesAtAlpha(t *testing.T) {
	// 迎角 90 度时体轴 -z 方向与来流对齐
	op := &OperatingPoint{Velocity: 1, Alpha: 90}
	w := op.BodyToWind(model.NewVector(0, 0, 1))
	if !almostEqual(w, model.NewVector(1, 0, 0), 1e-12) {
		t.Errorf("BodyToWind(z) at alpha 90 = %v", w)
	}
}

func TestRotationVelocity(t *testing.T) {
	op := &OperatingPoint{Velocity: 10, Q: 0.2}
	ref := model.NewVector(1, 0, 0)
	pts := []model.Vector{ref, model.NewVector(2, 0, 0)}
	vel := op.RotationVelocityGeometryAxes(pts, ref)
	if vel[0].Norm() != 0 {
		t.Errorf("参考点处旋转速度应为零: %v", vel[0])
	}
	// 正俯仰角速度下参考点后方的点应向上运动？机头向上抬即尾部下沉，
	// 几何轴 x 朝后，体轴 q>0 对应几何角速度 (0, q, 0)，
	// v = -(omega × r) = -(0,0.2,0)×(1,0,0) = -(0,0,-0.2) = (0,0,0.2)
	if math.Abs(vel[1].Z-0.2) > 1e-12 || math.Abs(vel[1].X) > 1e-12 {
		t.Errorf("旋转速度错误: %v", vel[1])
	}
}

func TestAtmosphere(t *testing.T) {
	sea := Atmosphere{}
	if math.Abs(sea.Density()-1.225) > 1e-9 {
		t.Errorf("海平面密度 = %v", sea.Density())
	}
	nu := sea.KinematicViscosity()
	if nu < 1.3e-5 || nu > 1.6e-5 {
		t.Errorf("海平面运动粘度量级错误: %v", nu)
	}
	high := Atmosphere{Altitude: 3000}
	if high.Density() >= sea.Density() {
		t.Errorf("高空密度应更低: %v", high.Density())
	}
	a := sea.SpeedOfSound()
	if a < 335 || a > 345 {
		t.Errorf("海平面声速 = %v", a)
	}
}
