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
import "math"
import "testing"

/* -------------------------------------------------------------------------- */

func TestSimilarity1(t *testing.T) {
  genome := NewGenome([]string{"chr1", "chr2"}, []int{1000, 1000})
  a := NewGRanges([]string{"chr1"}, []int{ 0}, []int{100}, nil)
  b := NewGRanges([]string{"chr1"}, []int{50}, []int{150}, nil)

  if n, err := IntersectionLength(genome, a, b); err != nil || n != 50 {
    t.Error("TestSimilarity1 failed!")
  }
  if v, err := Jaccard(genome, a, b); err != nil || math.Abs(v - 1.0/3.0) > 1e-12 {
    t.Error("TestSimilarity1 failed!")
  }
  if v, err := Forbes(genome, a, b); err != nil || math.Abs(v - 10.0) > 1e-12 {
    t.Error("TestSimilarity1 failed!")
  }
  // symmetry
  v1, _ := Jaccard(genome, a, b)
  v2, _ := Jaccard(genome, b, a)
  if v1 != v2 {
    t.Error("TestSimilarity1 failed!")
  }
  v1, _ = Forbes(genome, a, b)
  v2, _ = Forbes(genome, b, a)
  if v1 != v2 {
    t.Error("TestSimilarity1 failed!")
  }
}

func TestSimilarity2(t *testing.T) {
  genome := NewGenome([]string{"chr1", "chr2"}, []int{1000, 1000})
  a := NewGRanges([]string{"chr1", "chr1", "chr2"}, []int{ 0, 50, 900}, []int{100, 200, 1200}, nil)
  b := NewGRanges([]string{"chr2"}, []int{0}, []int{100}, nil)

  // overlapping ranges within a set are merged
  if v, err := Jaccard(genome, a, a); err != nil || v != 1.0 {
    t.Error("TestSimilarity2 failed!")
  }
  // disjoint sets
  if v, err := Jaccard(genome, a, b); err != nil || v != 0.0 {
    t.Error("TestSimilarity2 failed!")
  }
  if v, err := Forbes(genome, a, b); err != nil || v != 0.0 {
    t.Error("TestSimilarity2 failed!")
  }
  // ranges are clipped at chromosome ends, i.e. |a| = 300
  if v, err := Forbes(genome, a, a); err != nil || math.Abs(v - 2000.0/300.0) > 1e-12 {
    t.Error("TestSimilarity2 failed!")
  }
}

func TestSimilarity3(t *testing.T) {
  genome := NewGenome([]string{"chr1"}, []int{1000})
  a := NewGRanges([]string{"chr1"}, []int{0}, []int{100}, nil)
  c := NewGRanges([]string{"chr5"}, []int{0}, []int{100}, nil)

  if v, err := Jaccard(genome, GRanges{}, GRanges{}); err != nil || v != 0.0 {
    t.Error("TestSimilarity3 failed!")
  }
  if v, err := Forbes(genome, a, GRanges{}); err != nil || v != 0.0 {
    t.Error("TestSimilarity3 failed!")
  }
  if _, err := Jaccard(genome, a, c); err == nil {
    t.Error("TestSimilarity3 failed!")
  }
}
