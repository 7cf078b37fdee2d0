package model

import "math"

// 几何坐标系下的三维向量，单位米
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector) Scale(k float64) Vector {
	return Vector{v.X * k, v.Y * k, v.Z * k}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// 归一化，零向量返回零值
func (v Vector) Normalize() Vector {
	n := v.Norm()
	if n == 0 {
		return Vector{}
	}
	return v.Scale(1 / n)
}

// 两点线性插值，t = 0 返回 v，t = 1 返回 o
func (v Vector) Lerp(o Vector, t float64) Vector {
	return v.Scale(1 - t).Add(o.Scale(t))
}
