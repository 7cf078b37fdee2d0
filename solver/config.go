package solver

import (
	"fmt"

	"gopkg.in/ini.v1"
)

var solverCfg Config

// 求解器配置
type Config struct {
	SpanwiseResolution  int    // 每对相邻剖面之间的展向条带数
	ChordwiseResolution int    // 每条带的弦向面片数
	SpanwiseSpacing     string // cosine 或 uniform
	ChordwiseSpacing    string

	VortexCoreRadius              float64 // 涡核半径 m
	AlignTrailingVorticesWithWind bool    // 尾涡沿来流方向还是 +x
	RunSymmetric                  bool    // 对称减模求解，未实现

	PolarModel           string // 极曲线模型选择，linear 或 table
	ProfileDragAlignment string // 型阻方向，local 或 freestream

	StreamlineCount int // 默认流线条数
	StreamlineSteps int // 流线积分步数
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		file, err = ini.Load("../conf/config.ini")
	}
	if err != nil {
		fmt.Println("配置文件读取错误，使用默认配置: ", err)
		solverCfg = DefaultConfig()
		return
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	solverCfg = Config{
		SpanwiseResolution:            file.Section("solver").Key("SpanwiseResolution").MustInt(10),
		ChordwiseResolution:           file.Section("solver").Key("ChordwiseResolution").MustInt(10),
		SpanwiseSpacing:               file.Section("solver").Key("SpanwiseSpacing").MustString("cosine"),
		ChordwiseSpacing:              file.Section("solver").Key("ChordwiseSpacing").MustString("cosine"),
		VortexCoreRadius:              file.Section("solver").Key("VortexCoreRadius").MustFloat64(1e-8),
		AlignTrailingVorticesWithWind: file.Section("solver").Key("AlignTrailingVorticesWithWind").MustBool(false),
		RunSymmetric:                  file.Section("solver").Key("RunSymmetric").MustBool(false),
		PolarModel:                    file.Section("solver").Key("PolarModel").MustString("linear"),
		ProfileDragAlignment:          file.Section("solver").Key("ProfileDragAlignment").MustString("local"),
		StreamlineCount:               file.Section("solver").Key("StreamlineCount").MustInt(200),
		StreamlineSteps:               file.Section("solver").Key("StreamlineSteps").MustInt(300),
	}
}

func DefaultConfig() Config {
	return Config{
		SpanwiseResolution:   10,
		ChordwiseResolution:  10,
		SpanwiseSpacing:      "cosine",
		ChordwiseSpacing:     "cosine",
		VortexCoreRadius:     1e-8,
		PolarModel:           "linear",
		ProfileDragAlignment: "local",
		StreamlineCount:      200,
		StreamlineSteps:      300,
	}
}

// 进程级配置的一份拷贝
func LoadedConfig() Config {
	return solverCfg
}

// 配置合法性检查，非法选择立即报错
func (c Config) validate() error {
	if c.SpanwiseResolution < 1 || c.ChordwiseResolution < 1 {
		return fmt.Errorf("resolution must be >= 1, got spanwise %d chordwise %d",
			c.SpanwiseResolution, c.ChordwiseResolution)
	}
	if _, err := spacingOf(c.SpanwiseSpacing); err != nil {
		return err
	}
	if _, err := spacingOf(c.ChordwiseSpacing); err != nil {
		return err
	}
	switch c.PolarModel {
	case "linear", "table":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolarModel, c.PolarModel)
	}
	switch c.ProfileDragAlignment {
	case "local", "freestream":
	default:
		return fmt.Errorf("unknown profile drag alignment %q", c.ProfileDragAlignment)
	}
	if c.RunSymmetric {
		return ErrSymmetryNotImplemented
	}
	return nil
}
