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

//import "fmt"
import "testing"

/* -------------------------------------------------------------------------- */

func TestSort1(t *testing.T) {
  granges := NewGRanges(
    []string{"chr10", "chr2", "chr2", "chr1"},
    []int{10, 50, 20, 30},
    []int{20, 60, 30, 40},
    []byte{})
  granges.Names = []string{"a", "b", "c", "d"}

  r := granges.Sort()

  if r.Names[0] != "d" || r.Names[1] != "c" || r.Names[2] != "b" || r.Names[3] != "a" {
    t.Error("TestSort1 failed!")
  }
}

func TestSort2(t *testing.T) {
  genome  := NewGenome([]string{"chrX", "chr1"}, []int{1000, 1000})
  granges := NewGRanges(
    []string{"chr1", "chrX", "chr1"},
    []int{30, 50, 10},
    []int{40, 60, 20},
    []byte{})

  if granges.IsSortedByGenome(genome) {
    t.Error("TestSort2 failed!")
  }
  r, err := granges.SortByGenome(genome)
  if err != nil {
    t.Error("TestSort2 failed!")
    return
  }
  if r.Seqnames[0] != "chrX" || r.Ranges[1].From != 10 || r.Ranges[2].From != 30 {
    t.Error("TestSort2 failed!")
  }
  if !r.IsSortedByGenome(genome) {
    t.Error("TestSort2 failed!")
  }
  if _, err := NewGRanges([]string{"chr2"}, []int{0}, []int{1}, nil).SortByGenome(genome); err == nil {
    t.Error("TestSort2 failed!")
  }
}
