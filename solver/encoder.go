package solver

import (
	"math"

	"vlm/model"
)

// 流线推送前先压缩：坐标量化到毫米后逐点差分
// 相邻点间距由步长决定，差分量很小，JSON 体积显著缩水
type EncodedStreamline struct {
	Start [3]int   `json:"start"` // 首点，毫米
	Data  [][3]int `json:"data"`  // 逐点毫米增量
}

func quantize(v model.Vector) [3]int {
	return [3]int{
		int(math.Round(v.X * 1000)),
		int(math.Round(v.Y * 1000)),
		int(math.Round(v.Z * 1000)),
	}
}

func EncodeStreamlines(lines [][]model.Vector) []EncodedStreamline {
	out := make([]EncodedStreamline, len(lines))
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		pre := quantize(line[0])
		enc := EncodedStreamline{Start: pre, Data: make([][3]int, 0, len(line)-1)}
		for _, pt := range line[1:] {
			cur := quantize(pt)
			enc.Data = append(enc.Data, [3]int{cur[0] - pre[0], cur[1] - pre[1], cur[2] - pre[2]})
			pre = cur
		}
		out[i] = enc
	}
	return out
}

// 解码回米制坐标，测试与前端参考实现用
func DecodeStreamline(src EncodedStreamline) []model.Vector {
	out := make([]model.Vector, 0, len(src.Data)+1)
	cur := src.Start
	out = append(out, model.NewVector(float64(cur[0])/1000, float64(cur[1])/1000, float64(cur[2])/1000))
	for _, d := range src.Data {
		cur[0] += d[0]
		cur[1] += d[1]
		cur[2] += d[2]
		out = append(out, model.NewVector(float64(cur[0])/1000, float64(cur[1])/1000, float64(cur[2])/1000))
	}
	return out
}
