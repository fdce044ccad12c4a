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

import "io"

import "github.com/biogo/biogo/alphabet"
import "github.com/biogo/biogo/io/seqio/fastq"
import "github.com/biogo/biogo/seq/linear"
import "gonum.org/v1/gonum/stat"

/* -------------------------------------------------------------------------- */

// Reads a fastq file in chunks of fixed size. The reader can be used only
// once, each call to Next() replaces the previous chunk. Qualities are
// expected in Sanger (Phred+33) encoding.
type FastqChunkReader struct {
  reader    *fastq.Reader
  chunkSize int
  chunk     []*linear.QSeq
  err       error
  done      bool
}

/* -------------------------------------------------------------------------- */

func NewFastqChunkReader(reader io.Reader, chunkSize int) *FastqChunkReader {
  if chunkSize <= 0 {
    panic("NewFastqChunkReader(): invalid chunk size")
  }
  template := linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)
  return &FastqChunkReader{reader: fastq.NewReader(reader, template), chunkSize: chunkSize}
}

// Open a fastq file for reading chunks. Gzip compressed files are
// detected automatically. The closer must be called after reading.
func ImportFastqChunks(filename string, chunkSize int) (*FastqChunkReader, io.Closer, error) {
  reader, closer, err := openFile(filename)
  if err != nil {
    return nil, nil, err
  }
  return NewFastqChunkReader(reader, chunkSize), closer, nil
}

/* -------------------------------------------------------------------------- */

// Read the next chunk. Returns false if the file is exhausted or if an
// error occurred, which is reported by Err().
func (obj *FastqChunkReader) Next() bool {
  obj.chunk = nil
  if obj.done {
    return false
  }
  chunk := make([]*linear.QSeq, 0, obj.chunkSize)
  for len(chunk) < obj.chunkSize {
    s, err := obj.reader.Read()
    if err != nil {
      if err != io.EOF {
        obj.err = err
      }
      obj.done = true
      break
    }
    chunk = append(chunk, s.(*linear.QSeq))
  }
  if obj.err != nil || len(chunk) == 0 {
    return false
  }
  obj.chunk = chunk
  return true
}

func (obj *FastqChunkReader) Chunk() []*linear.QSeq {
  return obj.chunk
}

func (obj *FastqChunkReader) Err() error {
  return obj.err
}

/* -------------------------------------------------------------------------- */

type FastqWriter struct {
  writer *fastq.Writer
  closer io.Closer
}

func NewFastqWriter(writer io.Writer) *FastqWriter {
  return &FastqWriter{writer: fastq.NewWriter(writer)}
}

// Create a fastq file, optionally gzip compressed.
func CreateFastq(filename string, compress bool) (*FastqWriter, error) {
  writer, closer, err := createFile(filename, compress)
  if err != nil {
    return nil, err
  }
  return &FastqWriter{fastq.NewWriter(writer), closer}, nil
}

func (obj *FastqWriter) WriteChunk(chunk []*linear.QSeq) error {
  for _, s := range chunk {
    if _, err := obj.writer.Write(s); err != nil {
      return err
    }
  }
  return nil
}

func (obj *FastqWriter) Close() error {
  if obj.closer == nil {
    return nil
  }
  return obj.closer.Close()
}

/* -------------------------------------------------------------------------- */

// Mean Phred quality of a read. Reads without bases have mean quality zero.
func MeanQuality(read *linear.QSeq) float64 {
  if len(read.Seq) == 0 {
    return 0.0
  }
  q := make([]float64, len(read.Seq))
  for i, l := range read.Seq {
    q[i] = float64(l.Q)
  }
  return stat.Mean(q, nil)
}

// Keep all reads with a mean quality of at least minMean.
func FilterReads(chunk []*linear.QSeq, minMean float64) []*linear.QSeq {
  result := []*linear.QSeq{}
  for _, read := range chunk {
    if MeanQuality(read) >= minMean {
      result = append(result, read)
    }
  }
  return result
}

// Number of occurrences of a letter in all reads, ignoring case.
func CountSymbol(chunk []*linear.QSeq, c byte) int {
  c = upperCase([]byte{c})[0]
  d := c
  if c >= 'A' && c <= 'Z' {
    d = c+'a'-'A'
  }
  n := 0
  for _, read := range chunk {
    for _, l := range read.Seq {
      if b := byte(l.L); b == c || b == d {
        n++
      }
    }
  }
  return n
}
