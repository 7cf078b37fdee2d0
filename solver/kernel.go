package solver

import (
	"math"

	"vlm/model"
)

// 马蹄涡诱导速度，正则化 Biot-Savart 核
// 附着涡段从 left 到 right，两条半无限尾涡沿 trailing 方向伸出
// 所有分母都加入涡核半径平方避免奇异
func horseshoeInducedVelocity(field, left, right, trailing model.Vector, gamma, coreRadius float64) model.Vector {
	a := field.Sub(left)
	b := field.Sub(right)
	na := a.Norm()
	nb := b.Norm()
	c2 := coreRadius * coreRadius

	term1 := (na + nb) / (na*nb*(na*nb+a.Dot(b)) + c2)
	term2 := 1 / (na*(na-a.Dot(trailing)) + c2)
	term3 := 1 / (nb*(nb-b.Dot(trailing)) + c2)

	v := a.Cross(b).Scale(term1)
	v = v.Add(a.Cross(trailing).Scale(term2))
	v = v.Sub(b.Cross(trailing).Scale(term3))
	return v.Scale(gamma / (4 * math.Pi))
}
