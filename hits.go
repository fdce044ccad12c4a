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
import "math"

/* -------------------------------------------------------------------------- */

// Parameters for calling motif hits. Raw scores are corrected by the score
// of a uniform background, i.e. an adjusted score of zero means that the
// motif explains the sequence exactly as well as background. A sequence
// has a hit if its maximum adjusted score exceeds the threshold.
type HitConfig struct {
  Background  float64
  Threshold   float64
  // also scan the reverse complementary strand
  BothStrands bool
}

func DefaultHitConfig() HitConfig {
  return HitConfig{
    Background: 0.25,
    Threshold : math.Log(0.9) }
}

func (config HitConfig) Validate() error {
  if !(config.Background > 0.0 && config.Background <= 1.0) {
    return fmt.Errorf("invalid background probability `%f'", config.Background)
  }
  if math.IsNaN(config.Threshold) {
    return fmt.Errorf("invalid threshold")
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Subtract the background score M log(background) from all valid cells.
func AdjustScores(m ScoreMatrix, motifLength int, background float64) ScoreMatrix {
  r := NewScoreMatrix(m.Rows, m.Cols)
  c := float64(motifLength)*math.Log(background)
  for i, v := range m.Data {
    // NaN stays NaN
    r.Data[i] = v - c
  }
  return r
}

// Maximum score of each row over all valid offsets. Rows without valid
// offsets have maximum -Inf.
func MaxScores(m ScoreMatrix) []float64 {
  r := make([]float64, m.Rows)
  for i := 0; i < m.Rows; i++ {
    r[i] = math.Inf(-1)
    for _, v := range m.Row(i) {
      if v > r[i] {
        r[i] = v
      }
    }
  }
  return r
}

func countAbove(x []float64, threshold float64) int {
  n := 0
  for _, v := range x {
    if v > threshold {
      n++
    }
  }
  return n
}

// Number of rows with a maximum score strictly greater than the threshold.
func CountHits(m ScoreMatrix, threshold float64) int {
  return countAbove(MaxScores(m), threshold)
}

/* -------------------------------------------------------------------------- */

// Maximum adjusted score of each sequence.
func (config HitConfig) MaxAdjustedScores(sequences [][]byte, pwm PWM) []float64 {
  r := MaxScores(AdjustScores(ScoreSequences(sequences, pwm), pwm.Length(), config.Background))
  if config.BothStrands {
    s := MaxScores(AdjustScores(ScoreSequences(sequences, pwm.RevComp()), pwm.Length(), config.Background))
    for i := range r {
      r[i] = math.Max(r[i], s[i])
    }
  }
  return r
}

// Number of sequences with a significant motif hit.
func (config HitConfig) Hits(sequences [][]byte, pwm PWM) int {
  return countAbove(config.MaxAdjustedScores(sequences, pwm), config.Threshold)
}
