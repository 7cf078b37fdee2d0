package server

import (
	"encoding/json"
	"testing"
	"time"

	"vlm/model"
)

func TestSetEnv(t *testing.T) {
	h := NewHub()
	env := model.Env{
		Velocity: 12,
		Alpha:    4,
		Wings: []model.WingCfg{{
			Name:      "main",
			Symmetric: true,
			Sections: []model.SectionCfg{
				{LeadingEdge: [3]float64{0, 0, 0}, Chord: 1, Airfoil: "naca2412"},
				{LeadingEdge: [3]float64{0.2, 4, 0}, Chord: 0.6, Airfoil: "naca2412"},
			},
		}},
	}
	body, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.setEnv(string(body)); err != nil {
		t.Fatal(err)
	}
	if h.s == nil || h.op == nil {
		t.Fatal("环境下发后求解器与飞行状态应就绪")
	}
	if h.op.Velocity != 12 || h.op.Alpha != 4 {
		t.Errorf("飞行状态错误: %+v", h.op)
	}
}

func TestHubGoroutinesExitOnDone(t *testing.T) {
	h := NewHub()
	reqExited := make(chan struct{})
	respExited := make(chan struct{})
	go func() {
		h.handleRequest()
		close(reqExited)
	}()
	go func() {
		h.handleResponse()
		close(respExited)
	}()
	close(h.done)
	for _, exited := range []chan struct{}{reqExited, respExited} {
		select {
		case <-exited:
		case <-time.After(time.Second):
			t.Fatal("连接关闭后处理协程应退出")
		}
	}
}

func TestSetEnvBadAirfoil(t *testing.T) {
	h := NewHub()
	content := `{"velocity":10,"wings":[{"name":"w","sections":[
		{"leading_edge":[0,0,0],"chord":1,"airfoil":"nosuch"},
		{"leading_edge":[0,2,0],"chord":1,"airfoil":"nosuch"}]}]}`
	if err := h.setEnv(content); err == nil {
		t.Error("未知翼型应当报错")
	}
}
