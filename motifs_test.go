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
import "bytes"
import "os"
import "path/filepath"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestScanMotifs1(t *testing.T) {
  pwm1    := newTestPWM()
  pwm2, _ := NewPWM([][]float64{{0, 0, 0, 1}, {0, 0, 0, 1}})
  pwm3, _ := NewPWM([][]float64{{0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}})

  motifs := []Motif{
    {ID: "M1", Name: "acgg", PWM: pwm1},
    {ID: "M2", Name: "tt",   PWM: pwm2},
    {ID: "M3", Name: "cgg",  PWM: pwm3} }
  sequences := [][]byte{
    []byte("TTACGGTT"),
    []byte("GGGGCGGA"),
    []byte("AAAAAAAA") }

  calls := 0
  last  := 0
  results, err := ScanMotifs(sequences, motifs, DefaultHitConfig(), 2, func(i, n int) {
    calls++
    if i > last {
      last = i
    }
  })
  if err != nil {
    t.Error("TestScanMotifs1 failed")
    return
  }
  if calls != 3 || last != 3 {
    t.Error("TestScanMotifs1 failed")
  }
  if results[0].Motif.ID != "M1" || results[1].Motif.ID != "M2" || results[2].Motif.ID != "M3" {
    t.Error("TestScanMotifs1 failed")
  }
  if results[0].Hits != 1 || results[1].Hits != 1 || results[2].Hits != 2 {
    t.Error("TestScanMotifs1 failed")
  }
  if results[2].Length != 3 || results[2].Sequences != 3 {
    t.Error("TestScanMotifs1 failed")
  }
}

func TestScanMotifs2(t *testing.T) {
  if _, err := ScanMotifs(nil, []Motif{{ID: "empty"}}, DefaultHitConfig(), 1, nil); err == nil {
    t.Error("TestScanMotifs2 failed")
  }
  if _, err := ScanMotifs(nil, nil, HitConfig{Background: 2.0}, 1, nil); err == nil {
    t.Error("TestScanMotifs2 failed")
  }
  if r, err := ScanMotifs(nil, nil, DefaultHitConfig(), 1, nil); err != nil || len(r) != 0 {
    t.Error("TestScanMotifs2 failed")
  }
}

func TestRankByHits1(t *testing.T) {
  results := []MotifHits{
    {Motif: Motif{ID: "a"}, Hits: 2},
    {Motif: Motif{ID: "b"}, Hits: 1},
    {Motif: Motif{ID: "c"}, Hits: 2},
    {Motif: Motif{ID: "d"}, Hits: 0} }

  r := RankByHits(results)

  if r[0].Motif.ID != "d" || r[1].Motif.ID != "b" || r[2].Motif.ID != "a" || r[3].Motif.ID != "c" {
    t.Error("TestRankByHits1 failed")
  }
  // input is not modified
  if results[0].Motif.ID != "a" {
    t.Error("TestRankByHits1 failed")
  }
}

func TestWriteMotifHits1(t *testing.T) {
  results := []MotifHits{
    {Motif: Motif{ID: "MA0001.1", Name: "AGL3"}, Length: 10, Hits: 5, Sequences: 20} }

  var buffer bytes.Buffer
  if err := WriteMotifHits(&buffer, results); err != nil {
    t.Error("TestWriteMotifHits1 failed")
  }
  lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
  if len(lines) != 2 || lines[0] != "id\tname\tlength\thits\tsequences" || lines[1] != "MA0001.1\tAGL3\t10\t5\t20" {
    t.Error("TestWriteMotifHits1 failed")
  }
}

func TestExportMotifHits1(t *testing.T) {
  results := []MotifHits{
    {Motif: Motif{ID: "M1"}, Length:  8, Hits: 5, Sequences: 20},
    {Motif: Motif{ID: "M2"}, Length: 12, Hits: 2, Sequences: 20} }

  dir := t.TempDir()
  if err := ExportMotifHits(filepath.Join(dir, "hits.table"), results); err != nil {
    t.Error("TestExportMotifHits1 failed")
  }
  if data, err := os.ReadFile(filepath.Join(dir, "hits.table")); err != nil || strings.Count(string(data), "\n") != 3 {
    t.Error("TestExportMotifHits1 failed")
  }
  if err := PlotMotifHits(results, filepath.Join(dir, "hits.png")); err != nil {
    t.Error("TestExportMotifHits1 failed")
  }
  if info, err := os.Stat(filepath.Join(dir, "hits.png")); err != nil || info.Size() == 0 {
    t.Error("TestExportMotifHits1 failed")
  }
}
