package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 分析环境配置，由前端下发
type Env struct {
	Velocity float64 `json:"velocity"` // 来流速度 m/s
	Alpha    float64 `json:"alpha"`    // 迎角，度
	Beta     float64 `json:"beta"`     // 侧滑角，度
	P        float64 `json:"p"`        // 滚转角速度 rad/s
	Q        float64 `json:"q"`        // 俯仰角速度 rad/s
	R        float64 `json:"r"`        // 偏航角速度 rad/s
	Altitude float64 `json:"altitude"` // 高度 m

	Wings []WingCfg `json:"wings"`
}

// 机翼配置
type WingCfg struct {
	Name      string       `json:"name"`
	Symmetric bool         `json:"symmetric"` // 是否关于 y=0 对称
	Sections  []SectionCfg `json:"sections"`
}

// 翼剖面配置，按展向从内到外排列
type SectionCfg struct {
	LeadingEdge [3]float64 `json:"leading_edge"` // 前缘点，几何坐标系
	Chord       float64    `json:"chord"`        // 弦长 m
	Airfoil     string     `json:"airfoil"`      // 翼型名，如 flat-plate / naca2412
}

// 流线请求结构体
type StreamlineReqData struct {
	NSteps int     `json:"n_steps"`
	Length float64 `json:"length"` // 总弧长 m，0 表示取 5 倍参考弦长
}
