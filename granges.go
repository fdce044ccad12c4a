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

import "bytes"
import "fmt"

/* -------------------------------------------------------------------------- */

// Genomic intervals, e.g. ChIP-seq peaks. Names and Scores are optional
// columns and are either empty or of the same length as Ranges.
type GRanges struct {
  Seqnames []string
  Ranges   []Range
  Strand   []byte
  Names    []string
  Scores   []float64
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewGRanges(seqnames []string, from, to []int, strand []byte) GRanges {
  n := len(seqnames)
  if len(  from) != n || len(    to) != n ||
    (len(strand) != 0 && len(strand) != n) {
    panic("NewGRanges(): invalid arguments!")
  }
  if len(strand) == 0 {
    strand = make([]byte, n)
    for i := 0; i < n; i++ {
      strand[i] = '*'
    }
  }
  ranges := make([]Range, n)
  for i := 0; i < n; i++ {
    // create range
    ranges[i] = NewRange(from[i], to[i])
    // check if strand is valid
    if strand[i] != '+' && strand[i] != '-' && strand[i] != '*' {
      panic("NewGRanges(): Invalid strand!")
    }
  }
  return GRanges{Seqnames: seqnames, Ranges: ranges, Strand: strand}
}

func NewEmptyGRanges(n int) GRanges {
  seqnames := make([]string, n)
  ranges   := make([]Range, n)
  strand   := make([]byte, n)
  for i := 0; i < n; i++ {
    strand[i] = '*'
  }
  return GRanges{Seqnames: seqnames, Ranges: ranges, Strand: strand}
}

func (r GRanges) Clone() GRanges {
  result := GRanges{}
  result.Seqnames = append([]string (nil), r.Seqnames...)
  result.Ranges   = append([]Range  (nil), r.Ranges...)
  result.Strand   = append([]byte   (nil), r.Strand...)
  result.Names    = append([]string (nil), r.Names...)
  result.Scores   = append([]float64(nil), r.Scores...)
  return result
}

/* -------------------------------------------------------------------------- */

func (r GRanges) Length() int {
  return len(r.Ranges)
}

func (r GRanges) Empty() bool {
  return len(r.Ranges) == 0
}

func (r GRanges) Subset(indices []int) GRanges {
  n := len(indices)
  result := GRanges{}
  result.Seqnames = make([]string, n)
  result.Ranges   = make([]Range,  n)
  result.Strand   = make([]byte,   n)
  for i, j := range indices {
    result.Seqnames[i] = r.Seqnames[j]
    result.Ranges  [i] = r.Ranges  [j]
    result.Strand  [i] = r.Strand  [j]
  }
  if len(r.Names) > 0 {
    result.Names = make([]string, n)
    for i, j := range indices {
      result.Names[i] = r.Names[j]
    }
  }
  if len(r.Scores) > 0 {
    result.Scores = make([]float64, n)
    for i, j := range indices {
      result.Scores[i] = r.Scores[j]
    }
  }
  return result
}

// Concatenate two GRanges objects. Optional columns are kept only if
// both objects have them.
func (r1 GRanges) Append(r2 GRanges) GRanges {
  result := GRanges{}
  result.Seqnames = append(append([]string(nil), r1.Seqnames...), r2.Seqnames...)
  result.Ranges   = append(append([]Range (nil), r1.Ranges...),   r2.Ranges...)
  result.Strand   = append(append([]byte  (nil), r1.Strand...),   r2.Strand...)
  if len(r1.Names) == r1.Length() && len(r2.Names) == r2.Length() {
    result.Names = append(append([]string(nil), r1.Names...), r2.Names...)
  }
  if len(r1.Scores) == r1.Length() && len(r2.Scores) == r2.Length() {
    result.Scores = append(append([]float64(nil), r1.Scores...), r2.Scores...)
  }
  if result.Length() == 0 {
    result.Names  = nil
    result.Scores = nil
  }
  return result
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (r GRanges) String() string {
  var buffer bytes.Buffer
  // number of lines to print
  const n int = 10

  printRow := func(i int) {
    if i != 0 {
      buffer.WriteString("\n")
    }
    buffer.WriteString(
      fmt.Sprintf("%10d %10s [%10d, %10d) %6c",
        i+1,
        r.Seqnames[i],
        r.Ranges[i].From,
        r.Ranges[i].To,
        r.Strand[i]))
    if len(r.Names) > 0 {
      buffer.WriteString(fmt.Sprintf(" %16s", r.Names[i]))
    }
  }
  // print header
  buffer.WriteString(
    fmt.Sprintf("%10s %10s %25s %6s\n", "", "seqnames", "ranges", "strand"))

  // select rows to print
  if r.Length() <= n+1 {
    for i := 0; i < r.Length(); i++ {
      printRow(i)
    }
  } else {
    // print first n/2 rows
    for i := 0; i < n/2; i++ {
      printRow(i)
    }
    buffer.WriteString(
      fmt.Sprintf("\n%10s %10s %25s %6s", "", "...", "...", "..."))
    // print last n/2 rows
    for i := r.Length() - n/2; i < r.Length(); i++ {
      printRow(i)
    }
  }
  return buffer.String()
}
