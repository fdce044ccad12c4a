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
import "sort"

/* -------------------------------------------------------------------------- */

type grangesSort struct {
  GRanges
  indices []int
  // rank of each chromosome, nil for the default order
  order   map[string]int
}

func newGRangesSort(g GRanges, order map[string]int) grangesSort {
  indices := make([]int, g.Length())
  for i := 0; i < len(indices); i++ {
    indices[i] = i
  }
  return grangesSort{g, indices, order}
}

/* -------------------------------------------------------------------------- */

func (r grangesSort) Len() int {
  return r.Length()
}

func (r grangesSort) lessSeqname(si, sj string) (bool, bool) {
  if si == sj {
    return false, false
  }
  if r.order != nil {
    return r.order[si] < r.order[sj], true
  }
  // chr2 before chr10
  if len(si) != len(sj) {
    return len(si) < len(sj), true
  }
  return si < sj, true
}

func (r grangesSort) Less(i, j int) bool {
  ii := r.indices[i]
  jj := r.indices[j]
  if less, ok := r.lessSeqname(r.Seqnames[ii], r.Seqnames[jj]); ok {
    return less
  }
  if fi, fj := r.Ranges[ii].From, r.Ranges[jj].From; fi != fj {
    return fi < fj
  }
  return r.Ranges[ii].To < r.Ranges[jj].To
}

func (r grangesSort) Swap(i, j int) {
  r.indices[i], r.indices[j] = r.indices[j], r.indices[i]
}

/* -------------------------------------------------------------------------- */

// Sort intervals by chromosome name (shorter names first), start and end
// position.
func (r GRanges) Sort() GRanges {
  s := newGRangesSort(r, nil)
  sort.Stable(s)
  return r.Subset(s.indices)
}

// Sort intervals by the chromosome order of the genome, then by start and
// end position. All chromosomes must be part of the genome.
func (r GRanges) SortByGenome(genome Genome) (GRanges, error) {
  order := make(map[string]int)
  for i, name := range genome.Seqnames {
    order[name] = i
  }
  for _, name := range r.Seqnames {
    if _, ok := order[name]; !ok {
      return GRanges{}, fmt.Errorf("SortByGenome(): sequence `%s' not found in genome", name)
    }
  }
  s := newGRangesSort(r, order)
  sort.Stable(s)
  return r.Subset(s.indices), nil
}

// Check if intervals are sorted with respect to the chromosome order of
// the genome.
func (r GRanges) IsSortedByGenome(genome Genome) bool {
  order := make(map[string]int)
  for i, name := range genome.Seqnames {
    order[name] = i
  }
  for _, name := range r.Seqnames {
    if _, ok := order[name]; !ok {
      return false
    }
  }
  return sort.IsSorted(newGRangesSort(r, order))
}
