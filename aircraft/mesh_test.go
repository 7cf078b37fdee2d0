package aircraft

import (
	"fmt"
	"math"
	"testing"
)

func TestSpacing(t *testing.T) {
	lin := Linspace(0, 1, 5)
	if lin[0] != 0 || lin[4] != 1 || lin[2] != 0.5 {
		t.Errorf("等距分布错误: %v", lin)
	}
	cos := Cosspace(0, 1, 5)
	if math.Abs(cos[0]) > 1e-12 || math.Abs(cos[4]-1) > 1e-12 {
		t.Errorf("余弦分布端点错误: %v", cos)
	}
	// 两端加密
	if cos[1]-cos[0] >= lin[1]-lin[0] {
		t.Errorf("余弦分布端部应更密: %v", cos)
	}
	if _, err := SpacingByName("nosuch"); err == nil {
		t.Error("未知分布名应当报错")
	}
}

func TestSubdivideSections(t *testing.T) {
	w := DefaultAirplane().Wings[0]
	sub := w.SubdivideSections(12, Cosspace)
	if len(sub.XSecs) != 13 {
		t.Fatalf("细分后剖面数 = %d, want 13", len(sub.XSecs))
	}
	if sub.XSecs[0].LeadingEdge.Y != 0 || sub.XSecs[12].LeadingEdge.Y != 5 {
		t.Errorf("细分端点错误: %v %v", sub.XSecs[0].LeadingEdge, sub.XSecs[12].LeadingEdge)
	}
}

func TestMeshThinSurface(t *testing.T) {
	w := DefaultAirplane().Wings[0].SubdivideSections(12, Cosspace)
	points, faces := w.MeshThinSurface(12, Cosspace, false)
	if len(faces) != 288 {
		t.Fatalf("对称矩形翼 12x12 应有 288 个面片, 得到 %d", len(faces))
	}
	fmt.Println("mesh:", len(points), "points,", len(faces), "faces")

	// 所有面片法向一致朝上
	for k, f := range faces {
		fl, bl, br, fr := points[f[0]], points[f[1]], points[f[2]], points[f[3]]
		normal := fr.Sub(bl).Cross(fl.Sub(br))
		if normal.Z <= 0 {
			t.Fatalf("面片 %d 法向朝下: %v", k, normal)
		}
	}

	// 镜像侧覆盖 y < 0
	minY := 0.0
	for _, p := range points {
		minY = math.Min(minY, p.Y)
	}
	if math.Abs(minY+5) > 1e-12 {
		t.Errorf("镜像侧最远点 y = %v, want -5", minY)
	}
}

func TestAirplaneRefs(t *testing.T) {
	a := DefaultAirplane()
	if math.Abs(a.SRef-10) > 1e-12 || math.Abs(a.BRef-10) > 1e-12 || math.Abs(a.CRef-1) > 1e-12 {
		t.Errorf("参考量错误: S=%v b=%v c=%v", a.SRef, a.BRef, a.CRef)
	}
}
