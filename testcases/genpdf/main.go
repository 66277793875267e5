// seehuhn.de/go/tessellate - path tessellation for GPU rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf generates PDF files which show the triangle meshes
// produced by the fill tessellator, drawn on top of the filled test paths.
// The PDF files are rendered to PNG images using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/testcases"
)

const outDir = "testdata/meshes"

// scale is the number of PDF points per pixel of the test case canvas.
const scale = 4

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	opt := tessellate.DefaultOptions()
	if tc.Rule == testcases.NonZero {
		opt.FillRule = tessellate.NonZero
	}
	mesh, err := tessellate.TessellatePath(tc.Path.Iter(), tc.CTM, opt)
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(scale * tc.Width),
		URy: float64(scale * tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, float64(scale * tc.Height)})

	// The mesh is given in device coordinates, so the CTM is applied to
	// the reference fill by hand.
	m := tc.CTM
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	tr := func(v vec.Vec2) (float64, float64) {
		return m[0]*v.X + m[2]*v.Y + m[4], m[1]*v.X + m[3]*v.Y + m[5]
	}
	page.SetFillColor(color.DeviceGray(0.8))
	for cmd, pts := range tc.Path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(tr(pts[0]))
		case path.CmdLineTo:
			page.LineTo(tr(pts[0]))
		case path.CmdCubeTo:
			x1, y1 := tr(pts[0])
			x2, y2 := tr(pts[1])
			x3, y3 := tr(pts[2])
			page.CurveTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	if tc.Rule == testcases.EvenOdd {
		page.FillEvenOdd()
	} else {
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.5 / scale)
	page.SetLineJoin(graphics.LineJoinRound)
	page.SetLineCap(graphics.LineCapRound)
	for i := range mesh.NumTriangles() {
		a, b, c := mesh.Triangle(i)
		page.MoveTo(float64(a.X), float64(a.Y))
		page.LineTo(float64(b.X), float64(b.Y))
		page.LineTo(float64(c.X), float64(c.Y))
		page.ClosePath()
	}
	page.Stroke()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
