package solver

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"vlm/aircraft"
	"vlm/operating_point"
)

// 无粘条带升力之和
func totalStripLift(data *AeroData, q float64) float64 {
	terms := make([]float64, len(data.StripCLInviscid))
	for i := range terms {
		terms[i] = data.StripCLInviscid[i] * q * data.StripAreas[i]
	}
	return floats.Sum(terms)
}

func demoSolver(t *testing.T, cfg Config) *Solver {
	t.Helper()
	s, err := NewSolver(aircraft.DefaultAirplane(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func demoOp(alpha float64) *operating_point.OperatingPoint {
	return &operating_point.OperatingPoint{Velocity: 10, Alpha: alpha}
}

func TestRunZeroAlpha(t *testing.T) {
	s := demoSolver(t, testConfig(6, 4))
	data, err := s.Run(demoOp(0))
	if err != nil {
		t.Fatal(err)
	}
	// 平板翼零迎角：环量与升力严格为零
	for i, g := range s.last.gamma {
		if math.Abs(g) > 1e-12 {
			t.Fatalf("面片 %d 环量应为零: %v", i, g)
		}
	}
	if math.Abs(data.CL) > 1e-12 {
		t.Errorf("CL = %v, want 0", data.CL)
	}
	// 型阻仍然存在
	if data.CD <= 0 {
		t.Errorf("CD = %v, want > 0", data.CD)
	}
}

func TestRunPositiveAlpha(t *testing.T) {
	s := demoSolver(t, testConfig(6, 4))
	data, err := s.Run(demoOp(5))
	if err != nil {
		t.Fatal(err)
	}
	fmt.Println("alpha 5:", "CL =", data.CL, "CD =", data.CD, "Cm =", data.Cm)
	if data.CL <= 0 {
		t.Errorf("正迎角 CL = %v, want > 0", data.CL)
	}
	if data.CL > 1 {
		t.Errorf("CL = %v 量级异常", data.CL)
	}
	// 对称构型对称来流：横航向量接近零
	if math.Abs(data.Cl) > 1e-3 || math.Abs(data.Cn) > 1e-3 {
		t.Errorf("对称工况 Cl = %v, Cn = %v, want ~0", data.Cl, data.Cn)
	}
	if math.Abs(data.CY) > 1e-3 {
		t.Errorf("对称工况 CY = %v, want ~0", data.CY)
	}
	// 环量沿展向对称：右侧条带与镜像条带前缘面片环量一致
	chord := 4
	half := s.lat.nStrips / 2
	for strip := 0; strip < half; strip++ {
		g1 := s.last.gamma[strip*chord]
		g2 := s.last.gamma[(half+strip)*chord]
		if math.Abs(g1-g2) > 1e-8*(math.Abs(g1)+1e-9) {
			t.Fatalf("条带 %d 环量不对称: %v vs %v", strip, g1, g2)
		}
	}
}

func TestCoefficientsSpeedInvariant(t *testing.T) {
	s := demoSolver(t, testConfig(6, 4))
	lo, err := s.Run(demoOp(5))
	if err != nil {
		t.Fatal(err)
	}
	op := demoOp(5)
	op.Velocity = 20
	hi, err := s.Run(op)
	if err != nil {
		t.Fatal(err)
	}
	// 无量纲系数与速度近似无关，只有雷诺数带来的微小差别
	if math.Abs(lo.CL-hi.CL) > 1e-6 {
		t.Errorf("CL 随速度变化: %v vs %v", lo.CL, hi.CL)
	}
	if hi.Lift < 3.9*lo.Lift || hi.Lift > 4.1*lo.Lift {
		t.Errorf("速度翻倍升力应约为四倍: %v vs %v", lo.Lift, hi.Lift)
	}
}

func TestStripLiftConsistency(t *testing.T) {
	cfg := testConfig(6, 4)
	// 型阻沿来流方向时对升力没有贡献，条带无粘升力之和应等于总升力
	cfg.ProfileDragAlignment = "freestream"
	s := demoSolver(t, cfg)
	op := demoOp(5)
	data, err := s.Run(op)
	if err != nil {
		t.Fatal(err)
	}
	sum := totalStripLift(data, op.DynamicPressure())
	if math.Abs(sum-data.Lift) > 1e-9*math.Abs(data.Lift) {
		t.Errorf("条带升力和 = %v, 总升力 = %v", sum, data.Lift)
	}
}

func TestSolveReproducible(t *testing.T) {
	// 相同几何相同尾涡方向独立组装两次，环量必须逐位一致
	cfg := testConfig(5, 3)
	s1 := demoSolver(t, cfg)
	s2 := demoSolver(t, cfg)
	if _, err := s1.Run(demoOp(5)); err != nil {
		t.Fatal(err)
	}
	if _, err := s2.Run(demoOp(5)); err != nil {
		t.Fatal(err)
	}
	if len(s1.last.gamma) != len(s2.last.gamma) {
		t.Fatalf("环量长度不一致: %d vs %d", len(s1.last.gamma), len(s2.last.gamma))
	}
	for i := range s1.last.gamma {
		if s1.last.gamma[i] != s2.last.gamma[i] {
			t.Fatalf("面片 %d 环量不可复现: %v vs %v", i, s1.last.gamma[i], s2.last.gamma[i])
		}
	}
}

func TestAICReuse(t *testing.T) {
	s := demoSolver(t, testConfig(4, 3))
	if _, err := s.Run(demoOp(2)); err != nil {
		t.Fatal(err)
	}
	lu := s.aicLU
	if _, err := s.Run(demoOp(8)); err != nil {
		t.Fatal(err)
	}
	if s.aicLU != lu {
		t.Error("迎角变化不应触发影响系数矩阵重建")
	}
}

func TestAICRebuildWhenAligned(t *testing.T) {
	cfg := testConfig(4, 3)
	cfg.AlignTrailingVorticesWithWind = true
	s := demoSolver(t, cfg)
	if _, err := s.Run(demoOp(2)); err != nil {
		t.Fatal(err)
	}
	lu := s.aicLU
	if _, err := s.Run(demoOp(8)); err != nil {
		t.Fatal(err)
	}
	if s.aicLU == lu {
		t.Error("尾涡沿来流时来流方向变化应重建矩阵")
	}
}

func TestIllPosedGeometry(t *testing.T) {
	// 两副完全重合的机翼产生重复面片，矩阵奇异
	demo := aircraft.DefaultAirplane()
	twin := aircraft.NewAirplane("twin", []*aircraft.Wing{demo.Wings[0], demo.Wings[0]},
		demo.XYZRef, demo.SRef, demo.BRef, demo.CRef)
	s, err := NewSolver(twin, testConfig(3, 2))
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Run(demoOp(5))
	if !errors.Is(err, ErrIllPosedGeometry) {
		t.Fatalf("重合几何应报几何病态错误, 得到 %v", err)
	}
	fmt.Println("ill-posed error:", err)
}
