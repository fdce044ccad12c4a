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
import "io"
import "os"

import gzip "github.com/klauspost/pgzip"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

func iMaxSlice(x []int) int {
  r := 0
  for i := 0; i < len(x); i++ {
    if i == 0 || x[i] > r {
      r = x[i]
    }
  }
  return r
}

func reverseFloat64(x []float64) []float64 {
  y := make([]float64, len(x))
  for i := 0; i < len(x); i++ {
    y[len(x)-i-1] = x[i]
  }
  return y
}

/* -------------------------------------------------------------------------- */

type multiCloser []io.Closer

func (obj multiCloser) Close() error {
  var err error
  // close in reverse order of opening
  for i := len(obj)-1; i >= 0; i-- {
    if e := obj[i].Close(); e != nil && err == nil {
      err = e
    }
  }
  return err
}

// Open a file for reading. Gzip compressed files are detected by their
// magic number and decompressed transparently.
func openFile(filename string) (io.Reader, io.Closer, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, nil, err
  }
  reader := bufio.NewReader(f)
  if isGzip(reader) {
    g, err := gzip.NewReader(reader)
    if err != nil {
      f.Close()
      return nil, nil, err
    }
    return g, multiCloser{f, g}, nil
  }
  return reader, f, nil
}

// Create a file for writing, optionally gzip compressed. The returned
// closer flushes all buffers.
func createFile(filename string, compress bool) (io.Writer, io.Closer, error) {
  f, err := os.Create(filename)
  if err != nil {
    return nil, nil, err
  }
  if compress {
    g := gzip.NewWriter(f)
    return g, multiCloser{f, g}, nil
  }
  w := bufio.NewWriter(f)
  return w, multiCloser{f, flushCloser{w}}, nil
}

type flushCloser struct {
  *bufio.Writer
}

func (obj flushCloser) Close() error {
  return obj.Flush()
}

func isGzip(reader *bufio.Reader) bool {
  b, err := reader.Peek(2)
  if err != nil {
    return false
  }
  return b[0] == 31 && b[1] == 139
}
