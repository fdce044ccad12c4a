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

func TestHits1(t *testing.T) {
  pwm    := newTestPWM()
  config := DefaultHitConfig()

  sequences := [][]byte{
    []byte("TTACGGTT"),
    []byte("TTTTTTTT"),
    []byte("ACG"),
    []byte("ccgt") }

  r := config.MaxAdjustedScores(sequences, pwm)
  // perfect match
  if math.Abs(r[0] - 4*math.Log(4)) > 1e-12 {
    t.Error("TestHits1 failed")
  }
  if !math.IsInf(r[1], -1) || !math.IsInf(r[2], -1) || !math.IsInf(r[3], -1) {
    t.Error("TestHits1 failed")
  }
  if n := config.Hits(sequences, pwm); n != 1 {
    t.Error("TestHits1 failed")
  }
  // the reverse complement of ACGG is CCGT
  config.BothStrands = true
  if n := config.Hits(sequences, pwm); n != 2 {
    t.Error("TestHits1 failed")
  }
}

func TestHits2(t *testing.T) {
  pwm, _ := NewPWM([][]float64{{0.2, 0.2, 0.2, 0.4}})

  sequences := [][]byte{[]byte("A"), []byte("T"), []byte("C")}

  c1 := HitConfig{Background: 0.25, Threshold: math.Log(0.9)}
  c2 := HitConfig{Background: 0.25, Threshold: math.Log(0.5)}
  // adjusted scores are log(0.8) for A and C, log(1.6) for T
  if n := c1.Hits(sequences, pwm); n != 1 {
    t.Error("TestHits2 failed")
  }
  if n := c2.Hits(sequences, pwm); n != 3 {
    t.Error("TestHits2 failed")
  }
  // threshold is strict
  c3 := HitConfig{Background: 0.25, Threshold: math.Log(1.6)}
  if n := CountHits(AdjustScores(ScoreSequences(sequences, pwm), 1, 0.25), c3.Threshold + 1e-12); n != 0 {
    t.Error("TestHits2 failed")
  }
}

func TestHits3(t *testing.T) {
  m := NewScoreMatrix(2, 3)
  m.Set(0, 0, -2.0)
  m.Set(0, 2, -1.0)

  a := AdjustScores(m, 2, 0.5)
  if math.Abs(a.At(0, 0) - (-2.0 + 2*math.Log(2))) > 1e-12 || a.Valid(0, 1) {
    t.Error("TestHits3 failed")
  }
  r := MaxScores(a)
  if math.Abs(r[0] - (-1.0 + 2*math.Log(2))) > 1e-12 || !math.IsInf(r[1], -1) {
    t.Error("TestHits3 failed")
  }
}

func TestHitConfig1(t *testing.T) {
  if err := DefaultHitConfig().Validate(); err != nil {
    t.Error("TestHitConfig1 failed")
  }
  if err := (HitConfig{Background: 0.0, Threshold: 0.0}).Validate(); err == nil {
    t.Error("TestHitConfig1 failed")
  }
  if err := (HitConfig{Background: 0.25, Threshold: math.NaN()}).Validate(); err == nil {
    t.Error("TestHitConfig1 failed")
  }
}
