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
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

type jasparRecord struct {
  id     string
  name   string
  counts [][]float64
  line   int
}

func (r *jasparRecord) addRow(fields []string) error {
  alphabet := NucleotideAlphabet{}
  // row index of the next letter if letters are not given
  i := 0
  for k := range r.counts {
    if r.counts[k] != nil {
      i++
    }
  }
  if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
    // row starts with a letter
    c, err := alphabet.Code(fields[0][0])
    if err != nil || len(fields[0]) != 1 {
      return fmt.Errorf("invalid letter `%s'", fields[0])
    }
    i = int(c)
    fields = fields[1:]
  }
  if i >= alphabet.Length() {
    return fmt.Errorf("too many rows")
  }
  if r.counts[i] != nil {
    return fmt.Errorf("row appears more than once")
  }
  data := []float64{}
  for _, field := range fields {
    v, err := strconv.ParseFloat(field, 64)
    if err != nil {
      return err
    }
    data = append(data, v)
  }
  r.counts[i] = data
  return nil
}

func (r *jasparRecord) motif(pseudocount float64) (Motif, error) {
  for i := range r.counts {
    if r.counts[i] == nil {
      return Motif{}, fmt.Errorf("motif `%s' is incomplete", r.id)
    }
  }
  pwm, err := PWMFromCounts(r.counts, pseudocount)
  if err != nil {
    return Motif{}, fmt.Errorf("motif `%s': %v", r.id, err)
  }
  return Motif{ID: r.id, Name: r.name, PWM: pwm}, nil
}

/* -------------------------------------------------------------------------- */

// Read motifs from a file in JASPAR format. Each motif starts with a header
// line `>ID NAME' followed by four rows of counts for A, C, G and T. Rows
// may be prefixed by the letter and counts may be enclosed in brackets. The
// pseudocount is added to each position before normalization.
func ReadJaspar(reader io.Reader, pseudocount float64) ([]Motif, error) {
  scanner := bufio.NewScanner(reader)
  motifs  := []Motif{}
  var record *jasparRecord

  flush := func() error {
    if record == nil {
      return nil
    }
    m, err := record.motif(pseudocount)
    if err != nil {
      return fmt.Errorf("ReadJaspar(): line %d: %v", record.line, err)
    }
    motifs = append(motifs, m)
    return nil
  }
  for line := 1; scanner.Scan(); line++ {
    text := strings.TrimSpace(scanner.Text())
    if len(text) == 0 || text[0] == '#' {
      continue
    }
    if text[0] == '>' {
      if err := flush(); err != nil {
        return nil, err
      }
      fields := strings.Fields(text[1:])
      if len(fields) == 0 {
        return nil, fmt.Errorf("ReadJaspar(): line %d: missing motif identifier", line)
      }
      record = &jasparRecord{
        id    : fields[0],
        name  : strings.Join(fields[1:], " "),
        counts: make([][]float64, NucleotideAlphabet{}.Length()),
        line  : line }
      continue
    }
    if record == nil {
      return nil, fmt.Errorf("ReadJaspar(): line %d: missing motif header", line)
    }
    fields := strings.Fields(strings.NewReplacer("[", " ", "]", " ").Replace(text))
    if len(fields) == 0 {
      continue
    }
    if err := record.addRow(fields); err != nil {
      return nil, fmt.Errorf("ReadJaspar(): line %d: %v", line, err)
    }
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  if err := flush(); err != nil {
    return nil, err
  }
  return motifs, nil
}

func ImportJaspar(filename string, pseudocount float64) ([]Motif, error) {
  reader, closer, err := openFile(filename)
  if err != nil {
    return nil, err
  }
  defer closer.Close()
  return ReadJaspar(reader, pseudocount)
}
