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
import "fmt"
import "io"
import "sync"

import "github.com/pbenner/threadpool"
import "gonum.org/v1/gonum/floats"

/* -------------------------------------------------------------------------- */

// Transcription factor binding motif as stored in motif databases such as
// JASPAR.
type Motif struct {
  ID         string
  Name       string
  Collection string
  TaxIDs     []string
  PWM        PWM
}

func (m Motif) Length() int {
  return m.PWM.Length()
}

func (m Motif) String() string {
  return fmt.Sprintf("%s %s (length %d)", m.ID, m.Name, m.Length())
}

/* -------------------------------------------------------------------------- */

// Result of scanning a set of sequences with a single motif.
type MotifHits struct {
  Motif     Motif
  Length    int
  // number of sequences with a significant hit
  Hits      int
  // number of scanned sequences
  Sequences int
}

/* -------------------------------------------------------------------------- */

// Count the number of sequences with a significant hit for each motif. The
// motifs are distributed among the given number of threads, results are
// returned in the order of the motifs. The status function, if not nil, is
// called with the number of finished motifs.
func ScanMotifs(sequences [][]byte, motifs []Motif, config HitConfig, threads int, status func(i, n int)) ([]MotifHits, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("ScanMotifs(): %v", err)
  }
  if threads < 1 {
    threads = 1
  }
  for _, m := range motifs {
    if m.Length() == 0 {
      return nil, fmt.Errorf("ScanMotifs(): motif `%s' is empty", m.ID)
    }
  }
  result := make([]MotifHits, len(motifs))
  if len(motifs) == 0 {
    return result, nil
  }
  mtx  := sync.Mutex{}
  done := 0

  pool := threadpool.New(threads, 100*threads)
  g    := pool.NewJobGroup()

  if err := pool.AddRangeJob(0, len(motifs), g, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    result[i] = MotifHits{
      Motif    : motifs[i],
      Length   : motifs[i].Length(),
      Hits     : config.Hits(sequences, motifs[i].PWM),
      Sequences: len(sequences) }
    if status != nil {
      mtx.Lock()
      done++
      status(done, len(motifs))
      mtx.Unlock()
    }
    return nil
  }); err != nil {
    return nil, err
  }
  if err := pool.Wait(g); err != nil {
    return nil, err
  }
  return result, nil
}

/* -------------------------------------------------------------------------- */

// Sort results in ascending order of hit counts. Motifs with equal counts
// keep their order.
func RankByHits(results []MotifHits) []MotifHits {
  counts  := make([]float64, len(results))
  indices := make([]int,     len(results))
  for i, r := range results {
    counts[i] = float64(r.Hits)
  }
  floats.ArgsortStable(counts, indices)

  ranked := make([]MotifHits, len(results))
  for i, j := range indices {
    ranked[i] = results[j]
  }
  return ranked
}

/* -------------------------------------------------------------------------- */

// Write results as a tab separated table with header.
func WriteMotifHits(writer io.Writer, results []MotifHits) error {
  w := bufio.NewWriter(writer)
  fmt.Fprintf(w, "id\tname\tlength\thits\tsequences\n")
  for _, r := range results {
    fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", r.Motif.ID, r.Motif.Name, r.Length, r.Hits, r.Sequences)
  }
  return w.Flush()
}

func ExportMotifHits(filename string, results []MotifHits) error {
  writer, closer, err := createFile(filename, false)
  if err != nil {
    return err
  }
  if err := WriteMotifHits(writer, results); err != nil {
    closer.Close()
    return err
  }
  return closer.Close()
}
