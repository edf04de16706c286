// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/hafriis/opm-material/mdl/fluid"
)

// PlotVE plots the upscaled relative permeability and capillary pressure
// curves of a drainage path from sn = 0 to snf, saving dirout/fnkey.png
func PlotVE(prm *VEParams, liq, gas *fluid.Model, snf float64, np int, dirout, fnkey string) {
	var drv Driver
	err := drv.Init(prm, liq, gas)
	if err != nil {
		chk.Panic("cannot initialise driver:\n%v", err)
	}
	err = drv.Run(utl.LinSpace(0, snf, np))
	if err != nil {
		chk.Panic("cannot run driver:\n%v", err)
	}
	krw := make(plotter.XYs, np)
	krn := make(plotter.XYs, np)
	pcn := make(plotter.XYs, np)
	for i := 0; i < np; i++ {
		krw[i].X, krw[i].Y = drv.Sn[i], drv.Kr[i][Wetting]
		krn[i].X, krn[i].Y = drv.Sn[i], drv.Kr[i][NonWetting]
		pcn[i].X, pcn[i].Y = drv.Sn[i], drv.Pc[i][NonWetting]
	}

	// relative permeabilities panel
	pKr := plot.New()
	pKr.X.Label.Text = "Sn"
	pKr.Y.Label.Text = "kr"
	lkrw := newLine(krw, color.RGBA{B: 255, A: 255})
	lkrn := newLine(krn, color.RGBA{R: 255, A: 255})
	pKr.Add(lkrw, lkrn)
	pKr.Legend.Add("krw", lkrw)
	pKr.Legend.Add("krn", lkrn)

	// capillary pressure panel
	pPc := plot.New()
	pPc.X.Label.Text = "Sn"
	pPc.Y.Label.Text = "pcn [Pa]"
	pPc.Add(newLine(pcn, color.RGBA{B: 255, A: 255}))

	// stack the two panels and write the png file
	img := vgimg.New(6*vg.Inch, 8*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 2, Cols: 1}
	canvases := plot.Align([][]*plot.Plot{{pKr}, {pPc}}, tiles, dc)
	pKr.Draw(canvases[0][0])
	pPc.Draw(canvases[1][0])
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		chk.Panic("cannot create directory %q:\n%v", dirout, err)
	}
	w, err := os.Create(filepath.Join(dirout, fnkey+".png"))
	if err != nil {
		chk.Panic("cannot create figure file:\n%v", err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		chk.Panic("cannot write figure file:\n%v", err)
	}
}

// newLine returns a coloured line plotter
func newLine(xys plotter.XYs, clr color.Color) *plotter.Line {
	l, err := plotter.NewLine(xys)
	if err != nil {
		chk.Panic("cannot create line plotter:\n%v", err)
	}
	l.Color = clr
	return l
}
