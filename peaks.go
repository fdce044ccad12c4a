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

import "bufio"
import "bytes"
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Peaks as reported by MACS2 in its xls output.
type GPeaks struct {
  GRanges
  AbsSummit      []int
  Pvalue         []float64
  FoldEnrichment []float64
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewGPeaks(seqnames []string, from, to, absSummit []int, pvalue, foldEnrichment []float64) GPeaks {
  r := NewGRanges(seqnames, from, to, nil)
  n := r.Length()
  if len(absSummit) != n || len(pvalue) != n || len(foldEnrichment) != n {
    panic("NewGPeaks(): invalid arguments!")
  }
  r.Scores = pvalue
  return GPeaks{r, absSummit, pvalue, foldEnrichment}
}

/* -------------------------------------------------------------------------- */

// Windows of the given width centered at peak summits. Windows
// are clipped at zero.
func (gpeaks GPeaks) Summits(width int) GRanges {
  if width <= 0 {
    panic("Summits(): invalid width!")
  }
  n    := gpeaks.Length()
  from := make([]int, n)
  to   := make([]int, n)
  for i := 0; i < n; i++ {
    from[i] = iMax(0, gpeaks.AbsSummit[i] - width/2)
    to  [i] = from[i] + width
  }
  r := NewGRanges(append([]string(nil), gpeaks.Seqnames...), from, to, nil)
  r.Scores = append([]float64(nil), gpeaks.Pvalue...)
  return r
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (gpeaks GPeaks) String() string {
  var buffer bytes.Buffer
  const n int = 10

  printRow := func(i int) {
    if i != 0 {
      buffer.WriteString("\n")
    }
    buffer.WriteString(
      fmt.Sprintf("%10d %10s [%10d, %10d) | %10d %14f %15f",
        i+1,
        gpeaks.Seqnames[i],
        gpeaks.Ranges[i].From,
        gpeaks.Ranges[i].To,
        gpeaks.AbsSummit[i],
        gpeaks.Pvalue[i],
        gpeaks.FoldEnrichment[i]))
  }
  buffer.WriteString(
    fmt.Sprintf("%10s %10s %24s | %10s %14s %15s\n",
      "", "seqnames", "ranges",
      "abs_summit", "-log10(pvalue)", "fold_enrichment"))

  if gpeaks.Length() <= n+1 {
    for i := 0; i < gpeaks.Length(); i++ {
      printRow(i)
    }
  } else {
    for i := 0; i < n/2; i++ {
      printRow(i)
    }
    buffer.WriteString(
      fmt.Sprintf("\n%10s %10s %24s | %10s", "", "...", "...", "..."))
    for i := gpeaks.Length() - n/2; i < gpeaks.Length(); i++ {
      printRow(i)
    }
  }
  return buffer.String()
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read MACS2 xls peaks. Coordinates in the file are one-based and
// closed, they are converted to zero-based half-open ranges.
func ReadXlsPeaks(reader io.Reader) (GPeaks, error) {
  header := false

  seqnames       := []string{}
  from           := []int{}
  to             := []int{}
  absSummit      := []int{}
  pvalue         := []float64{}
  foldEnrichment := []float64{}

  scanner := bufio.NewScanner(reader)
  for line := 1; scanner.Scan(); line++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
      continue
    }
    if len(fields) < 8 {
      return GPeaks{}, fmt.Errorf("ReadXlsPeaks(): invalid number of columns on line %d", line)
    }
    if !header {
      if fields[0] != "chr"        || fields[1] != "start"          || fields[2] != "end" ||
        (fields[4] != "abs_summit" || fields[6] != "-log10(pvalue)" || fields[7] != "fold_enrichment") {
        return GPeaks{}, fmt.Errorf("ReadXlsPeaks(): invalid header on line %d", line)
      }
      header = true
      continue
    }
    t1, e1 := strconv.Atoi(fields[1])
    t2, e2 := strconv.Atoi(fields[2])
    t3, e3 := strconv.Atoi(fields[4])
    t4, e4 := strconv.ParseFloat(fields[6], 64)
    t5, e5 := strconv.ParseFloat(fields[7], 64)
    for _, err := range []error{e1, e2, e3, e4, e5} {
      if err != nil {
        return GPeaks{}, fmt.Errorf("ReadXlsPeaks(): line %d: %v", line, err)
      }
    }
    if t1 < 1 || t2 < t1 {
      return GPeaks{}, fmt.Errorf("ReadXlsPeaks(): invalid range on line %d", line)
    }
    seqnames       = append(seqnames,       fields[0])
    from           = append(from,           t1-1)
    to             = append(to,             t2)
    absSummit      = append(absSummit,      t3-1)
    pvalue         = append(pvalue,         t4)
    foldEnrichment = append(foldEnrichment, t5)
  }
  if err := scanner.Err(); err != nil {
    return GPeaks{}, err
  }
  return NewGPeaks(seqnames, from, to, absSummit, pvalue, foldEnrichment), nil
}

func ImportXlsPeaks(filename string) (GPeaks, error) {
  r, closer, err := openFile(filename)
  if err != nil {
    return GPeaks{}, err
  }
  defer closer.Close()
  return ReadXlsPeaks(r)
}
