package plot

import (
	"os"
	"path/filepath"
	"testing"

	"vlm/aircraft"
	"vlm/operating_point"
	"vlm/solver"
)

func TestSaveSpanwiseLoading(t *testing.T) {
	cfg := solver.DefaultConfig()
	cfg.SpanwiseResolution = 4
	cfg.ChordwiseResolution = 3
	s, err := solver.NewSolver(aircraft.DefaultAirplane(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	data, err := s.Run(&operating_point.OperatingPoint{Velocity: 10, Alpha: 5})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "loading.png")
	if err := SaveSpanwiseLoading(data, path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("图片文件为空")
	}
}
