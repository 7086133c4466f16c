package drawing

import (
	"testing"

	"github.com/grailbio/testutil/expect"

	"github.com/gvizlab/genomeview/interval"
)

func TestLinearModel(t *testing.T) {
	// 200 bases drawn on 100 pixels: 0.5 pixels per base.
	m := NewLinearModel(interval.New(1000, 1200), 100)
	expect.EQ(t, m.PixelsPerBase(), 0.5)
	expect.EQ(t, m.BaseToX(1000), 0)
	expect.EQ(t, m.BaseToX(1100), 50)
	expect.EQ(t, m.BaseToX(1200), 100)

	expect.EQ(t, m.BaseSpanToXSpan(interval.New(1000, 1200)), interval.New(0, 100))
	expect.EQ(t, m.BaseSpanToXSpan(interval.New(1050, 1150)), interval.New(25, 75))

	expect.EQ(t, m.XToBase(0), 1000)
	expect.EQ(t, m.XToBase(50), 1100)
	expect.EQ(t, m.XWidthToBases(25), 50)
}

func TestLinearModelRounding(t *testing.T) {
	// 3 bases on 10 pixels.
	m := NewLinearModel(interval.New(0, 3), 10)
	expect.EQ(t, m.BaseToX(1), 3)
	expect.EQ(t, m.BaseToX(2), 7)
	expect.EQ(t, m.BaseSpanToXSpan(interval.New(0, 3)), interval.New(0, 10))
}

func TestLinearModelDegenerate(t *testing.T) {
	for _, m := range []LinearModel{
		NewLinearModel(interval.New(100, 100), 500),
		NewLinearModel(interval.New(0, 1000), 0),
		NewLinearModel(interval.New(0, 1000), -5),
	} {
		expect.EQ(t, m.PixelsPerBase(), 0.0)
		expect.EQ(t, m.BaseToX(550), 0)
		expect.EQ(t, m.BaseSpanToXSpan(interval.New(0, 1000)), interval.New(0, 0))
	}
}
