/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */


package peakmotifs

/* -------------------------------------------------------------------------- */

import "fmt"

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

// Scatter plot of motif lengths against hit counts, which is used to check
// that hit counts are not driven by motif lengths. The image format is
// determined by the file extension (e.g. png, svg, pdf).
func PlotMotifHits(results []MotifHits, filename string) error {
  p := plot.New()
  p.Title.Text  = "Motif hits"
  p.X.Label.Text = "motif length"
  p.Y.Label.Text = "sequences with hit"
  p.Add(plotter.NewGrid())

  points := make(plotter.XYs, len(results))
  for i, r := range results {
    points[i].X = float64(r.Length)
    points[i].Y = float64(r.Hits)
  }
  scatter, err := plotter.NewScatter(points)
  if err != nil {
    return fmt.Errorf("PlotMotifHits(): %v", err)
  }
  scatter.GlyphStyle.Radius = vg.Points(2)
  p.Add(scatter)

  return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
