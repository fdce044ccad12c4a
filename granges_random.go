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
import "math/rand"
import "sort"

/* -------------------------------------------------------------------------- */

// Draws positions on a genome, each chromosome is weighted by its length.
type GenomeRng struct {
  Weights []float64
  Genome  Genome
  rng     *rand.Rand
}

func NewGenomeRng(genome Genome, rng *rand.Rand) GenomeRng {
  if genome.Length() == 0 || genome.TotalLength() == 0 {
    panic("NewGenomeRng(): empty genome!")
  }
  weights := make([]float64, genome.Length())
  sum     := float64(genome.TotalLength())
  // cumulative probabilities
  t := 0.0
  for i := 0; i < genome.Length(); i++ {
    t += float64(genome.Lengths[i])/sum
    weights[i] = t
  }
  weights[len(weights)-1] = 1.0
  return GenomeRng{weights, genome, rng}
}

// Draw a chromosome index and a start position such that a window of
// the given size fits on the chromosome. Chromosomes shorter than the
// window are redrawn.
func (obj GenomeRng) Draw(wsize int) (int, int, error) {
  if wsize > iMaxSlice(obj.Genome.Lengths) {
    return 0, 0, fmt.Errorf("Draw(): window size `%d' exceeds all chromosome lengths", wsize)
  }
  for {
    k := sort.SearchFloat64s(obj.Weights, obj.rng.Float64())
    if k >= len(obj.Weights) {
      k = len(obj.Weights)-1
    }
    if n := obj.Genome.Lengths[k]; n >= wsize {
      return k, obj.rng.Intn(n - wsize + 1), nil
    }
  }
}

/* -------------------------------------------------------------------------- */

// Place each range at a random position on the genome while keeping its
// width and strand.
func (granges GRanges) Shuffle(genome Genome, rng *rand.Rand) (GRanges, error) {
  if granges.Length() == 0 {
    return granges.Clone(), nil
  }
  g := NewGenomeRng(genome, rng)
  r := granges.Clone()
  for i := 0; i < r.Length(); i++ {
    j, position, err := g.Draw(r.Ranges[i].Length())
    if err != nil {
      return GRanges{}, err
    }
    r.Seqnames[i] = genome.Seqnames[j]
    r.Ranges  [i] = NewRange(position, position + r.Ranges[i].Length())
  }
  return r, nil
}
