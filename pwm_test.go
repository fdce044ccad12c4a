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
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

// deterministic motif ACGG
func newTestPWM() PWM {
  pwm, err := NewPWM([][]float64{
    {1, 0, 0, 0},
    {0, 1, 0, 0},
    {0, 0, 1, 0},
    {0, 0, 1, 0} })
  if err != nil {
    panic(err)
  }
  return pwm
}

/* -------------------------------------------------------------------------- */

func TestPWM1(t *testing.T) {
  if _, err := NewPWM([][]float64{}); err == nil {
    t.Error("TestPWM1 failed")
  }
  if _, err := NewPWM([][]float64{{0.5, 0.5, 0.5}}); err == nil {
    t.Error("TestPWM1 failed")
  }
  if _, err := NewPWM([][]float64{{0.5, 0.5, 0.5, 0.5}}); err == nil {
    t.Error("TestPWM1 failed")
  }
  if _, err := NewPWM([][]float64{{1.5, -0.5, 0.0, 0.0}}); err == nil {
    t.Error("TestPWM1 failed")
  }
  pwm, err := NewPWM([][]float64{{0.1, 0.2, 0.3, 0.4}, {0.25, 0.25, 0.25, 0.25}})
  if err != nil {
    t.Error("TestPWM1 failed")
    return
  }
  if pwm.Length() != 2 || pwm.Get('t', 0) != 0.4 || pwm.Get('N', 0) != 0.0 {
    t.Error("TestPWM1 failed")
  }
  if rows := pwm.Rows(); rows[0][2] != 0.3 || rows[1][0] != 0.25 {
    t.Error("TestPWM1 failed")
  }
}

func TestPWM2(t *testing.T) {
  pwm := newTestPWM()

  if s, err := pwm.Score([]byte("ACGG")); err != nil || s != 0.0 {
    t.Error("TestPWM2 failed")
  }
  if s, err := pwm.Score([]byte("acgg")); err != nil || s != 0.0 {
    t.Error("TestPWM2 failed")
  }
  if s, _ := pwm.Score([]byte("ACGT")); !math.IsInf(s, -1) {
    t.Error("TestPWM2 failed")
  }
  if s, _ := pwm.Score([]byte("ACNG")); !math.IsInf(s, -1) {
    t.Error("TestPWM2 failed")
  }
  if _, err := pwm.Score([]byte("ACG")); err == nil {
    t.Error("TestPWM2 failed")
  }
  scores := pwm.Scores([]byte("TACGGA"))
  if len(scores) != 3 || scores[1] != 0.0 || !math.IsInf(scores[0], -1) {
    t.Error("TestPWM2 failed")
  }
  if len(pwm.Scores([]byte("ACG"))) != 0 {
    t.Error("TestPWM2 failed")
  }
}

func TestPWM3(t *testing.T) {
  pwm, _ := NewPWM([][]float64{{0.1, 0.2, 0.3, 0.4}, {0.7, 0.1, 0.1, 0.1}, {0.25, 0.25, 0.4, 0.1}})
  rev    := pwm.RevComp()

  for _, s := range []string{"ACG", "TTA", "GCA", "CTG"} {
    s1, _ := pwm.Score([]byte(s))
    s2, _ := rev.Score(ReverseComplement([]byte(s)))
    if math.Abs(s1 - s2) > 1e-12 {
      t.Error("TestPWM3 failed")
    }
  }
}

func TestPWM4(t *testing.T) {
  pwm, err := PWMFromCounts([][]float64{{3, 0}, {1, 0}, {0, 0}, {0, 4}}, 4)
  if err != nil {
    t.Error("TestPWM4 failed")
    return
  }
  // (3+1)/(4+4)
  if math.Abs(pwm.Get('A', 0) - 0.5) > 1e-12 || math.Abs(pwm.Get('G', 1) - 0.125) > 1e-12 {
    t.Error("TestPWM4 failed")
  }
  if _, err := PWMFromCounts([][]float64{{0}, {0}, {0}, {0}}, 0); err == nil {
    t.Error("TestPWM4 failed")
  }
  if _, err := PWMFromCounts([][]float64{{1}, {1}, {1}}, 0); err == nil {
    t.Error("TestPWM4 failed")
  }
}

func TestPWM5(t *testing.T) {
  s := "A 1 0\n" +
       "C 1 0\n" +
       "\n" +
       "G 1 2\n" +
       "T 1 2\n"
  pwm, err := ReadPWMTable(strings.NewReader(s))
  if err != nil {
    t.Error("TestPWM5 failed")
    return
  }
  if pwm.Length() != 2 || pwm.Get('a', 0) != 0.25 || pwm.Get('g', 1) != 0.5 || pwm.Get('C', 1) != 0.0 {
    t.Error("TestPWM5 failed")
  }
  if _, err := ReadPWMTable(strings.NewReader("A 1 0\nC 1 0\nG 1 2\n")); err == nil {
    t.Error("TestPWM5 failed")
  }
  if _, err := ReadPWMTable(strings.NewReader("A 1 0\nA 1 0\nG 1 2\nT 1 1\n")); err == nil {
    t.Error("TestPWM5 failed")
  }
}

func TestScoreMatrix1(t *testing.T) {
  pwm := newTestPWM()
  m   := ScoreSequences([][]byte{[]byte("ACGGAC"), []byte("ACGG"), []byte("AC")}, pwm)

  if m.Rows != 3 || m.Cols != 3 {
    t.Error("TestScoreMatrix1 failed")
    return
  }
  if !m.Valid(0, 2) || !m.Valid(1, 0) || m.Valid(1, 1) || m.Valid(2, 0) {
    t.Error("TestScoreMatrix1 failed")
  }
  if len(m.ValidRow(0)) != 3 || len(m.ValidRow(1)) != 1 || len(m.ValidRow(2)) != 0 {
    t.Error("TestScoreMatrix1 failed")
  }
  if m.At(1, 0) != 0.0 {
    t.Error("TestScoreMatrix1 failed")
  }
}
