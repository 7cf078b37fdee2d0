package solver

import "errors"

var (
	// 对称减模求解尚未实现，显式拒绝
	ErrSymmetryNotImplemented = errors.New("symmetric run is not implemented")

	// 极曲线模型选择名非法
	ErrUnknownPolarModel = errors.New("unknown polar model")

	// 影响系数矩阵奇异或接近奇异，几何病态
	ErrIllPosedGeometry = errors.New("ill-posed geometry: influence matrix is singular or near-singular")

	// 还没有求解结果可用
	ErrNotSolved = errors.New("no solution available, call Run first")
)
