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
import "io/ioutil"
import "os"
import "sort"

import "github.com/biogo/hts/fai"

import "github.com/pbenner/peakmotifs/lib/rangehttp"

/* -------------------------------------------------------------------------- */

// Reference genome with random access to subsequences through a samtools
// faidx index. The file itself is not loaded into memory.
type IndexedFasta struct {
  file   *fai.File
  index  fai.Index
  closer io.Closer
}

/* -------------------------------------------------------------------------- */

func NewIndexedFasta(reader io.ReaderAt, index fai.Index) *IndexedFasta {
  return &IndexedFasta{fai.NewFile(reader, index), index, nil}
}

// Open an uncompressed fasta file. The index is read from `filename.fai'
// if it exists and computed otherwise.
func OpenIndexedFasta(filename string) (*IndexedFasta, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  var index fai.Index
  if g, err := os.Open(filename+".fai"); err == nil {
    index, err = fai.ReadFrom(g)
    g.Close()
    if err != nil {
      f.Close()
      return nil, fmt.Errorf("OpenIndexedFasta(): reading index failed: %v", err)
    }
  } else {
    index, err = fai.NewIndex(f)
    if err != nil {
      f.Close()
      return nil, fmt.Errorf("OpenIndexedFasta(): indexing `%s' failed: %v", filename, err)
    }
  }
  r := NewIndexedFasta(f, index)
  r.closer = f
  return r, nil
}

// Open a remote fasta file through HTTP range requests. The index must be
// available at `url.fai'.
func OpenRemoteIndexedFasta(url string) (*IndexedFasta, error) {
  indexReader, err := rangehttp.New(url+".fai").SectionReader()
  if err != nil {
    return nil, err
  }
  index, err := fai.ReadFrom(indexReader)
  if err != nil {
    return nil, fmt.Errorf("OpenRemoteIndexedFasta(): reading index failed: %v", err)
  }
  return NewIndexedFasta(rangehttp.New(url), index), nil
}

func (obj *IndexedFasta) Close() error {
  if obj.closer == nil {
    return nil
  }
  return obj.closer.Close()
}

/* -------------------------------------------------------------------------- */

func (obj *IndexedFasta) GetSlice(name string, r Range) ([]byte, error) {
  record, ok := obj.index[name]
  if !ok {
    return nil, fmt.Errorf("GetSlice(): sequence `%s' not found", name)
  }
  if r.To > record.Length {
    return nil, fmt.Errorf("GetSlice(): range %v is out of bounds for sequence `%s' of length %d", r, name, record.Length)
  }
  if r.From == r.To {
    return []byte{}, nil
  }
  seq, err := obj.file.SeqRange(name, r.From, r.To)
  if err != nil {
    return nil, err
  }
  return ioutil.ReadAll(seq)
}

// Chromosome sizes in the order of the fasta file.
func (obj *IndexedFasta) Genome() Genome {
  records := make([]fai.Record, 0, len(obj.index))
  for _, record := range obj.index {
    records = append(records, record)
  }
  sort.Slice(records, func(i, j int) bool { return records[i].Start < records[j].Start })

  seqnames := make([]string, len(records))
  lengths  := make([]int,    len(records))
  for i, record := range records {
    seqnames[i] = record.Name
    lengths [i] = record.Length
  }
  return NewGenome(seqnames, lengths)
}
