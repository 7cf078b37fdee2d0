package plot

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"vlm/solver"
)

// 把条带升力系数沿展向画成折线图存为图片
func SaveSpanwiseLoading(data *solver.AeroData, path string) error {
	p := plot.New()
	p.Title.Text = "Spanwise Loading"
	p.X.Label.Text = "y [m]"
	p.Y.Label.Text = "cl"

	// 条带按先右翼后左翼排列，画线前按展向站位排序
	order := make([]int, len(data.StripY))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return data.StripY[order[a]] < data.StripY[order[b]]
	})

	inviscid := make(plotter.XYs, len(order))
	profile := make(plotter.XYs, len(order))
	for i, s := range order {
		inviscid[i].X = data.StripY[s]
		inviscid[i].Y = data.StripCLInviscid[s]
		profile[i].X = data.StripY[s]
		profile[i].Y = data.StripCLProfile[s]
	}

	err := plotutil.AddLinePoints(p,
		"inviscid", inviscid,
		"profile", profile,
	)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
