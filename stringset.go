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
import "io"
import "sort"

import "github.com/biogo/biogo/alphabet"
import "github.com/biogo/biogo/io/seqio/fasta"
import "github.com/biogo/biogo/seq/linear"

/* -------------------------------------------------------------------------- */

// Structure containing genomic sequences.
type StringSet map[string][]byte

/* -------------------------------------------------------------------------- */

func EmptyStringSet() StringSet {
  return make(StringSet)
}

/* -------------------------------------------------------------------------- */

func (s StringSet) GetSlice(name string, r Range) ([]byte, error) {
  result, ok := s[name]
  if !ok {
    return nil, fmt.Errorf("GetSlice(): sequence `%s' not found", name)
  }
  if r.From < 0 || r.To > len(result) {
    return nil, fmt.Errorf("GetSlice(): range %v is out of bounds for sequence `%s' of length %d", r, name, len(result))
  }
  return result[r.From:r.To], nil
}

// Chromosome sizes of all sequences in the set.
func (s StringSet) Genome() Genome {
  seqnames := make([]string, 0, len(s))
  for name := range s {
    seqnames = append(seqnames, name)
  }
  sort.Slice(seqnames, func(i, j int) bool {
    if len(seqnames[i]) != len(seqnames[j]) {
      return len(seqnames[i]) < len(seqnames[j])
    }
    return seqnames[i] < seqnames[j]
  })
  lengths := make([]int, len(seqnames))
  for i, name := range seqnames {
    lengths[i] = len(s[name])
  }
  return NewGenome(seqnames, lengths)
}

/* -------------------------------------------------------------------------- */

// Read all sequences of a fasta file. Sequence names are the first word
// of each header line, letters are kept as they are.
func (s StringSet) ReadFasta(reader io.Reader) error {
  r := fasta.NewReader(reader, linear.NewSeq("", nil, alphabet.DNA))
  for {
    record, err := r.Read()
    if err == io.EOF {
      break
    }
    if err != nil {
      return fmt.Errorf("ReadFasta(): %v", err)
    }
    sq := record.(*linear.Seq)
    if sq.Name() == "" {
      return fmt.Errorf("ReadFasta(): sequence without name")
    }
    seq := make([]byte, len(sq.Seq))
    for i, l := range sq.Seq {
      seq[i] = byte(l)
    }
    s[sq.Name()] = seq
  }
  return nil
}

func (s StringSet) ImportFasta(filename string) error {
  reader, closer, err := openFile(filename)
  if err != nil {
    return err
  }
  defer closer.Close()
  return s.ReadFasta(reader)
}
