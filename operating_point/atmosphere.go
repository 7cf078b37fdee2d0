package operating_point

import "math"

// 国际标准大气，只取对流层段
type Atmosphere struct {
	Altitude float64 // 海拔 m
}

// 气温 K
func (a Atmosphere) Temperature() float64 {
	return 288.15 - 0.0065*a.Altitude
}

// 空气密度 kg/m^3
func (a Atmosphere) Density() float64 {
	return 1.225 * math.Pow(1-2.25577e-5*a.Altitude, 4.25588)
}

// 动力粘度，Sutherland 公式
func (a Atmosphere) DynamicViscosity() float64 {
	t := a.Temperature()
	return 1.458e-6 * t * math.Sqrt(t) / (t + 110.4)
}

// 运动粘度 m^2/s
func (a Atmosphere) KinematicViscosity() float64 {
	return a.DynamicViscosity() / a.Density()
}

// 声速 m/s
func (a Atmosphere) SpeedOfSound() float64 {
	return math.Sqrt(1.4 * 287.05 * a.Temperature())
}
