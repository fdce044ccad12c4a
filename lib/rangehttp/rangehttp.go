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


// Package rangehttp provides random access to remote files by issuing HTTP
// GET requests with Range headers.
package rangehttp

/* -------------------------------------------------------------------------- */

import "bytes"
import "fmt"
import "io"
import "net/http"
import "sync"

/* -------------------------------------------------------------------------- */

type Reader struct {
  URL       string
  Client    *http.Client
  // number of bytes requested in addition to each read
  ReadAhead int
  mtx       sync.Mutex
  cache     bytes.Buffer
  offset    int64
  valid     bool
}

var _ io.ReaderAt = (*Reader)(nil)

/* -------------------------------------------------------------------------- */

func New(url string) *Reader {
  return &Reader{URL: url, Client: http.DefaultClient, ReadAhead: 64*1024}
}

/* -------------------------------------------------------------------------- */

func (r *Reader) client() *http.Client {
  if r.Client == nil {
    return http.DefaultClient
  }
  return r.Client
}

func (r *Reader) cached(buf []byte, off int64) bool {
  if !r.valid || off < r.offset {
    return false
  }
  end := off + int64(len(buf))
  if end > r.offset + int64(r.cache.Len()) {
    return false
  }
  copy(buf, r.cache.Bytes()[off-r.offset:end-r.offset])
  return true
}

// Read len(buf) bytes starting at offset off. Returns io.EOF if fewer bytes
// are available.
func (r *Reader) ReadAt(buf []byte, off int64) (int, error) {
  if len(buf) == 0 {
    return 0, nil
  }
  r.mtx.Lock()
  defer r.mtx.Unlock()

  if r.cached(buf, off) {
    return len(buf), nil
  }
  req, err := http.NewRequest("GET", r.URL, nil)
  if err != nil {
    return 0, err
  }
  req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", off, off+int64(len(buf)+r.ReadAhead)-1))

  resp, err := r.client().Do(req)
  if err != nil {
    return 0, err
  }
  defer resp.Body.Close()

  start := off
  switch resp.StatusCode {
  case http.StatusPartialContent:
  case http.StatusOK:
    // server ignored the range header and sent the full file
    start = 0
  case http.StatusRequestedRangeNotSatisfiable:
    return 0, io.EOF
  default:
    return 0, fmt.Errorf("ReadAt(): range request to `%s' failed: %s", r.URL, resp.Status)
  }
  r.cache.Reset()
  r.valid = false
  if _, err := r.cache.ReadFrom(resp.Body); err != nil {
    return 0, err
  }
  r.offset = start
  r.valid  = true

  if off-start >= int64(r.cache.Len()) {
    return 0, io.EOF
  }
  n := copy(buf, r.cache.Bytes()[off-start:])
  if n < len(buf) {
    return n, io.EOF
  }
  return n, nil
}

// Size of the remote file as reported by a HEAD request.
func (r *Reader) Size() (int64, error) {
  resp, err := r.client().Head(r.URL)
  if err != nil {
    return 0, err
  }
  resp.Body.Close()
  if resp.StatusCode != http.StatusOK {
    return 0, fmt.Errorf("Size(): request to `%s' failed: %s", r.URL, resp.Status)
  }
  if resp.ContentLength < 0 {
    return 0, fmt.Errorf("Size(): no content length for `%s'", r.URL)
  }
  return resp.ContentLength, nil
}

// Reader for the full content of the remote file.
func (r *Reader) SectionReader() (*io.SectionReader, error) {
  n, err := r.Size()
  if err != nil {
    return nil, err
  }
  return io.NewSectionReader(r, 0, n), nil
}
