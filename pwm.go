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
import "math"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Tolerance for checking that the probabilities at each position of a PWM
// sum to one.
const pwmEpsilon = 1e-4

// Position weight matrix. Values[i][j] is the probability of observing the
// ith letter of the nucleotide alphabet (A, C, G, T) at position j of the
// motif.
type PWM struct {
  Values [][]float64
  logs   [][]float64
}

/* constructors
 * -------------------------------------------------------------------------- */

func newPWM(values [][]float64) PWM {
  logs := make([][]float64, len(values))
  for i := range values {
    logs[i] = make([]float64, len(values[i]))
    for j, p := range values[i] {
      logs[i][j] = math.Log(p)
    }
  }
  return PWM{values, logs}
}

// Create a PWM from a list of probability distributions, one for each
// position of the motif. Each row must contain four non-negative values
// (A, C, G, T) that sum to one.
func NewPWM(rows [][]float64) (PWM, error) {
  alphabet := NucleotideAlphabet{}
  if len(rows) == 0 {
    return PWM{}, fmt.Errorf("NewPWM(): matrix is empty")
  }
  values := make([][]float64, alphabet.Length())
  for i := range values {
    values[i] = make([]float64, len(rows))
  }
  for j, row := range rows {
    if len(row) != alphabet.Length() {
      return PWM{}, fmt.Errorf("NewPWM(): position %d has %d instead of %d entries", j, len(row), alphabet.Length())
    }
    sum := 0.0
    for i, p := range row {
      if p < 0.0 || math.IsNaN(p) {
        return PWM{}, fmt.Errorf("NewPWM(): invalid probability `%f' at position %d", p, j)
      }
      values[i][j] = p
      sum += p
    }
    if math.Abs(sum - 1.0) > pwmEpsilon {
      return PWM{}, fmt.Errorf("NewPWM(): probabilities at position %d sum to %f", j, sum)
    }
  }
  return newPWM(values), nil
}

// Create a PWM from a count matrix with one row for each letter of the
// alphabet (A, C, G, T) and one column for each position of the motif. The
// pseudocount is distributed equally among all letters.
func PWMFromCounts(counts [][]float64, pseudocount float64) (PWM, error) {
  alphabet := NucleotideAlphabet{}
  if len(counts) != alphabet.Length() {
    return PWM{}, fmt.Errorf("PWMFromCounts(): count matrix must have %d rows", alphabet.Length())
  }
  m := len(counts[0])
  if m == 0 {
    return PWM{}, fmt.Errorf("PWMFromCounts(): count matrix is empty")
  }
  for i := range counts {
    if len(counts[i]) != m {
      return PWM{}, fmt.Errorf("PWMFromCounts(): rows of count matrix have different lengths")
    }
  }
  if pseudocount < 0.0 {
    return PWM{}, fmt.Errorf("PWMFromCounts(): invalid pseudocount")
  }
  values := make([][]float64, alphabet.Length())
  for i := range values {
    values[i] = make([]float64, m)
  }
  for j := 0; j < m; j++ {
    sum := 0.0
    for i := range counts {
      if counts[i][j] < 0.0 || math.IsNaN(counts[i][j]) {
        return PWM{}, fmt.Errorf("PWMFromCounts(): invalid count at position %d", j)
      }
      sum += counts[i][j] + pseudocount/float64(alphabet.Length())
    }
    if sum == 0.0 {
      return PWM{}, fmt.Errorf("PWMFromCounts(): no counts at position %d", j)
    }
    for i := range counts {
      values[i][j] = (counts[i][j] + pseudocount/float64(alphabet.Length()))/sum
    }
  }
  return newPWM(values), nil
}

/* -------------------------------------------------------------------------- */

// Number of positions of the motif.
func (t PWM) Length() int {
  if len(t.Values) == 0 {
    return 0
  }
  return len(t.Values[0])
}

// Probability of letter c at position j. Letters outside of the alphabet
// have probability zero.
func (t PWM) Get(c byte, j int) float64 {
  i, err := NucleotideAlphabet{}.Code(c)
  if err != nil {
    return 0.0
  }
  return t.Values[i][j]
}

// Probability distributions by position, i.e. the transposed matrix.
func (t PWM) Rows() [][]float64 {
  rows := make([][]float64, t.Length())
  for j := range rows {
    rows[j] = make([]float64, len(t.Values))
    for i := range t.Values {
      rows[j][i] = t.Values[i][j]
    }
  }
  return rows
}

// PWM for the reverse complementary strand.
func (t PWM) RevComp() PWM {
  alphabet := NucleotideAlphabet{}
  s := make([][]float64, alphabet.Length())
  for i := 0; i < alphabet.Length(); i++ {
    j, _ := alphabet.ComplementCoded(byte(i))
    s[j] = reverseFloat64(t.Values[i])
  }
  return newPWM(s)
}

/* scanning
 * -------------------------------------------------------------------------- */

func (t PWM) scan(sequence []byte) float64 {
  x := 0.0
  for j := 0; j < len(sequence); j++ {
    if c := nucleotideCodes[sequence[j]]; c < 0 {
      return math.Inf(-1)
    } else {
      x += t.logs[c][j]
    }
  }
  return x
}

// Log-likelihood of a sequence of the same length as the motif. Letters
// outside of the alphabet have probability zero.
func (t PWM) Score(sequence []byte) (float64, error) {
  if len(sequence) != t.Length() {
    return math.NaN(), fmt.Errorf("Score(): sequence has invalid length")
  }
  return t.scan(sequence), nil
}

// Log-likelihood of the motif at every offset of the sequence. The result
// has length len(sequence)-t.Length()+1 or is empty if the sequence is
// shorter than the motif.
func (t PWM) Scores(sequence []byte) []float64 {
  m := t.Length()
  n := len(sequence)-m+1
  if m == 0 || n <= 0 {
    return []float64{}
  }
  r := make([]float64, n)
  for i := 0; i < n; i++ {
    r[i] = t.scan(sequence[i:i+m])
  }
  return r
}

/* -------------------------------------------------------------------------- */

// Import a PWM from a table with one row for each letter of the alphabet.
// The first column contains the letter and the remaining columns the counts
// or probabilities at each position, which are normalized.
func ReadPWMTable(reader io.Reader) (PWM, error) {
  alphabet := NucleotideAlphabet{}
  scanner  := bufio.NewScanner(reader)

  ncols  := -1
  counts := make([][]float64, alphabet.Length())

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    // if empty line, continue scanning
    if len(fields) == 0 {
      continue
    }
    if len(fields) <= 1 {
      return PWM{}, fmt.Errorf("ReadPWMTable(): invalid pwm table")
    }
    // if first line, set number of columns
    if ncols == -1 {
      ncols = len(fields)-1
    }
    if len(fields) != ncols+1 {
      return PWM{}, fmt.Errorf("ReadPWMTable(): invalid pwm table")
    }
    i, err := alphabet.Code(fields[0][0])
    if err != nil || len(fields[0]) != 1 {
      return PWM{}, fmt.Errorf("ReadPWMTable(): invalid letter `%s'", fields[0])
    }
    if counts[i] != nil {
      return PWM{}, fmt.Errorf("ReadPWMTable(): letter `%s' appears more than once", fields[0])
    }
    data := make([]float64, ncols)
    // read one row of the matrix
    for j := 1; j < len(fields); j++ {
      v, err := strconv.ParseFloat(fields[j], 64)
      if err != nil {
        return PWM{}, err
      }
      data[j-1] = v
    }
    counts[i] = data
  }
  if err := scanner.Err(); err != nil {
    return PWM{}, err
  }
  for i := range counts {
    if counts[i] == nil {
      return PWM{}, fmt.Errorf("ReadPWMTable(): pwm table is incomplete")
    }
  }
  return PWMFromCounts(counts, 0.0)
}

func ImportPWMTable(filename string) (PWM, error) {
  reader, closer, err := openFile(filename)
  if err != nil {
    return PWM{}, err
  }
  defer closer.Close()
  return ReadPWMTable(reader)
}
