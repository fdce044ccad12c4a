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
import "math"

/* -------------------------------------------------------------------------- */

// Motif scores for a batch of sequences, one row for each sequence and one
// column for each offset. Sequences may have different lengths, the matrix
// has as many columns as there are offsets in the longest sequence. Cells
// with offsets that are invalid for a sequence are NaN.
type ScoreMatrix struct {
  Rows int
  Cols int
  Data []float64
}

/* -------------------------------------------------------------------------- */

func NewScoreMatrix(rows, cols int) ScoreMatrix {
  if rows < 0 || cols < 0 {
    panic("NewScoreMatrix(): invalid arguments!")
  }
  data := make([]float64, rows*cols)
  for i := range data {
    data[i] = math.NaN()
  }
  return ScoreMatrix{rows, cols, data}
}

func (m ScoreMatrix) At(i, j int) float64 {
  return m.Data[i*m.Cols+j]
}

func (m ScoreMatrix) Set(i, j int, v float64) {
  m.Data[i*m.Cols+j] = v
}

// Check if offset j is valid for sequence i.
func (m ScoreMatrix) Valid(i, j int) bool {
  return !math.IsNaN(m.At(i, j))
}

// Scores of sequence i including invalid cells. The returned slice
// shares memory with the matrix.
func (m ScoreMatrix) Row(i int) []float64 {
  return m.Data[i*m.Cols:(i+1)*m.Cols]
}

// Scores of sequence i at all valid offsets.
func (m ScoreMatrix) ValidRow(i int) []float64 {
  r := []float64{}
  for _, v := range m.Row(i) {
    if !math.IsNaN(v) {
      r = append(r, v)
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

// Score all sequences with a PWM.
func ScoreSequences(sequences [][]byte, pwm PWM) ScoreMatrix {
  cols := 0
  for _, s := range sequences {
    cols = iMax(cols, len(s)-pwm.Length()+1)
  }
  if pwm.Length() == 0 {
    cols = 0
  }
  m := NewScoreMatrix(len(sequences), cols)
  for i, s := range sequences {
    copy(m.Row(i), pwm.Scores(s))
  }
  return m
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (m ScoreMatrix) String() string {
  var buffer bytes.Buffer
  for i := 0; i < m.Rows; i++ {
    if i != 0 {
      buffer.WriteString("\n")
    }
    for j := 0; j < m.Cols; j++ {
      if j != 0 {
        buffer.WriteString(" ")
      }
      if m.Valid(i, j) {
        buffer.WriteString(fmt.Sprintf("%8.3f", m.At(i, j)))
      } else {
        buffer.WriteString(fmt.Sprintf("%8s", "-"))
      }
    }
  }
  return buffer.String()
}
