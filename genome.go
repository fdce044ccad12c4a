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

// Structure containing chromosome sizes.
type Genome struct {
  Seqnames []string
  Lengths  []int
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewGenome(seqnames []string, lengths []int) Genome {
  if len(seqnames) != len(lengths) {
    panic("NewGenome(): Invalid parameters!")
  }
  return Genome{seqnames, lengths}
}

/* -------------------------------------------------------------------------- */

// Number of chromosomes in the structure.
func (genome Genome) Length() int {
  return len(genome.Seqnames)
}

// Length of the given chromosome. Returns an error if the chromosome
// is not found.
func (genome Genome) SeqLength(seqname string) (int, error) {
  if i := genome.Index(seqname); i >= 0 {
    return genome.Lengths[i], nil
  }
  return 0, fmt.Errorf("SeqLength(): sequence `%s' not found", seqname)
}

// Index of the given chromosome or -1.
func (genome Genome) Index(seqname string) int {
  for i, s := range genome.Seqnames {
    if seqname == s {
      return i
    }
  }
  return -1
}

// Sum of all chromosome lengths.
func (genome Genome) TotalLength() int {
  n := 0
  for _, l := range genome.Lengths {
    n += l
  }
  return n
}

func (genome Genome) lengthMap() map[string]int {
  m := make(map[string]int, genome.Length())
  for i, s := range genome.Seqnames {
    m[s] = genome.Lengths[i]
  }
  return m
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (genome Genome) String() string {
  var buffer bytes.Buffer

  printRow := func(i int) {
    if i != 0 {
      buffer.WriteString("\n")
    }
    buffer.WriteString(
      fmt.Sprintf("%10s %10d",
        genome.Seqnames[i],
        genome.Lengths [i]))
  }

  // print header
  buffer.WriteString(
    fmt.Sprintf("%10s %10s\n", "seqnames", "lengths"))

  for i := 0; i < genome.Length(); i++ {
    printRow(i)
  }
  return buffer.String()
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read chromosome sizes from a UCSC text file. The format is a whitespace
// separated table where the first column is the name of the chromosome and
// the second column the chromosome length.
func ReadGenome(reader io.Reader) (Genome, error) {
  seqnames := []string{}
  lengths  := []int{}
  seen     := make(map[string]bool)

  scanner := bufio.NewScanner(reader)
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
      continue
    }
    if len(fields) < 2 {
      return Genome{}, fmt.Errorf("ReadGenome(): invalid genome file")
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return Genome{}, err
    }
    if t1 < 0 {
      return Genome{}, fmt.Errorf("ReadGenome(): invalid length for sequence `%s'", fields[0])
    }
    if seen[fields[0]] {
      return Genome{}, fmt.Errorf("ReadGenome(): sequence `%s' appears more than once", fields[0])
    }
    seen[fields[0]] = true
    seqnames = append(seqnames, fields[0])
    lengths  = append(lengths,  int(t1))
  }
  if err := scanner.Err(); err != nil {
    return Genome{}, err
  }
  return NewGenome(seqnames, lengths), nil
}

func ImportGenome(filename string) (Genome, error) {
  reader, closer, err := openFile(filename)
  if err != nil {
    return Genome{}, err
  }
  defer closer.Close()
  return ReadGenome(reader)
}
