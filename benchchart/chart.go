// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders derived chart families to PNG files.
//
// Rendering is the only part of the pipeline that touches a graphics
// backend; everything it draws comes from a benchsweep.Chart, so
// metric derivation stays testable without it.
package benchchart

import (
	"image/color"
	"os"
	"path/filepath"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/minicask/benchviz/benchsweep"
)

// Figure geometry. The two-panel value-size figure is wide; the
// single-panel figures are square-ish.
const (
	twoPanelWidth  = 15 * vg.Inch
	onePanelWidth  = 8 * vg.Inch
	figureHeight   = 6 * vg.Inch
	headerHeight   = vg.Length(52)
	footerHeight   = vg.Length(18)
	panelPadding   = vg.Length(20)
	figureMargin   = vg.Length(8)
	titleFontSize  = vg.Length(18)
	subFontSize    = vg.Length(12)
	footerFontSize = vg.Length(8)
)

// WritePNG renders c into dir as <Name>.png, overwriting any previous
// image of the same name. footer is the machine description drawn at
// the bottom left. It returns the path of the written file.
func WritePNG(c benchsweep.Chart, dir, footer string) (string, error) {
	width := onePanelWidth
	if len(c.Panels) > 1 {
		width = twoPanelWidth
	}

	img := vgimg.NewWith(
		vgimg.UseWH(width, figureHeight),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)

	drawHeader(dc, width, c.Title, c.Subtitle)
	drawFooter(dc, footer)

	row := make([]*plot.Plot, len(c.Panels))
	for i, p := range c.Panels {
		pl, err := panelPlot(p)
		if err != nil {
			return "", err
		}
		row[i] = pl
	}

	tiles := draw.Tiles{
		Rows: 1, Cols: len(row),
		PadX:    panelPadding,
		PadLeft: figureMargin, PadRight: figureMargin,
	}
	area := draw.Crop(dc, 0, 0, footerHeight, -headerHeight)
	for i, canvas := range plot.Align([][]*plot.Plot{row}, tiles, area)[0] {
		row[i].Draw(canvas)
	}

	path := filepath.Join(dir, c.Name+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// panelPlot builds one set of axes: grid, one line-with-markers per
// series in fixed order, legend, and the data-driven Y ceiling. A
// series without points is added as an empty line.
func panelPlot(p benchsweep.Panel) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Y.Label.Text = p.YLabel
	pl.Add(plotter.NewGrid())

	points := 0
	for i, s := range p.Series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X, xys[j].Y = pt.X, pt.Y
		}
		line, scatter, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		scatter.Color = plotutil.Color(i)
		scatter.Shape = draw.CircleGlyph{}
		pl.Add(line, scatter)
		pl.Legend.Add(s.Label, line, scatter)
		points += len(s.Points)
	}
	pl.Legend.Top = true

	pl.Y.Min = 0
	pl.Y.Max = p.YMax
	if points == 0 {
		// Nothing set the X range; keep it finite.
		pl.X.Min, pl.X.Max = 0, 1
	}
	return pl, nil
}

func drawHeader(dc draw.Canvas, width vg.Length, title, subtitle string) {
	// Borrow a styled text handler from a throwaway plot rather than
	// assembling a font cache by hand.
	sty := plot.New().Title.TextStyle
	sty.XAlign, sty.YAlign = draw.XCenter, draw.YTop

	sty.Font.Size = titleFontSize
	sty.Font.Weight = xfont.WeightBold
	dc.FillText(sty, vg.Point{X: width / 2, Y: dc.Max.Y - vg.Points(4)}, title)

	sty.Font.Size = subFontSize
	sty.Font.Weight = xfont.WeightNormal
	dc.FillText(sty, vg.Point{X: width / 2, Y: dc.Max.Y - titleFontSize - vg.Points(12)}, subtitle)
}

func drawFooter(dc draw.Canvas, footer string) {
	sty := plot.New().Title.TextStyle
	sty.XAlign, sty.YAlign = draw.XLeft, draw.YBottom
	sty.Font.Size = footerFontSize
	dc.FillText(sty, vg.Point{X: dc.Min.X + figureMargin, Y: dc.Min.Y + vg.Points(4)}, footer)
}
