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

func TestMerge1(t *testing.T) {
  r1 := NewGRanges(
    []string{"chr1", "chr1", "chr1", "chr2"},
    []int{100, 120, 300, 10},
    []int{150, 200, 400, 20},
    []byte{})
  r2 := NewGRanges(
    []string{"chr1", "chr1"},
    []int{200, 500},
    []int{250, 600},
    []byte{})

  r := r1.Merge(r2)

  if r.Length() != 4 {
    t.Error("TestMerge1 failed!")
    return
  }
  // [100, 250) is merged from three ranges, the last one is adjacent
  if r.Seqnames[0] != "chr1" || r.Ranges[0].From != 100 || r.Ranges[0].To != 250 {
    t.Error("TestMerge1 failed!")
  }
  if r.Ranges[1].From != 300 || r.Ranges[1].To != 400 {
    t.Error("TestMerge1 failed!")
  }
  if r.Ranges[2].From != 500 || r.Ranges[2].To != 600 {
    t.Error("TestMerge1 failed!")
  }
  if r.Seqnames[3] != "chr2" || r.Ranges[3].From != 10 || r.Ranges[3].To != 20 {
    t.Error("TestMerge1 failed!")
  }
}

func TestCoverage1(t *testing.T) {
  r := NewGRanges(
    []string{"chr1", "chr1", "chr1", "chr1"},
    []int{10, 10, 15, 40},
    []int{20, 20, 30, 40},
    []byte{})
  // [10, 30) covered, the empty range is ignored
  if n := r.Coverage(); n != 20 {
    t.Error("TestCoverage1 failed!")
  }
  if n := (GRanges{}).Coverage(); n != 0 {
    t.Error("TestCoverage1 failed!")
  }
}
