package bench

import "github.com/agbru/bindtime/internal/lut"

type stubModule struct{}

func (stubModule) Name() string  { return "stub" }
func (stubModule) Title() string { return "stub" }
func (stubModule) Order() int    { return 1 }

func (stubModule) Strategies() []Strategy {
	return []Strategy{
		{Name: "first", Binding: RunTime, Eval: func() float64 { return 1 }},
		{Name: "second", Binding: BuildTime, Eval: func() float64 { return 1 }},
	}
}

func (stubModule) Reference() (float64, bool)            { return 0, false }
func (stubModule) Evaluate(x float64, order int) float64 { return 1 }
func (stubModule) Table() lut.Table                      { return lut.Table{} }
func (stubModule) TableEntry(i int) float64              { return 1 }
