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


package rangehttp

/* -------------------------------------------------------------------------- */

//import "fmt"
import "bytes"
import "io"
import "net/http"
import "net/http/httptest"
import "sync/atomic"
import "testing"
import "time"

/* -------------------------------------------------------------------------- */

var testData = []byte("abcdefghijklmnopqrstuvwxyz0123456789")

func newTestServer(requests *int32, ignoreRange bool) *httptest.Server {
  return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
    atomic.AddInt32(requests, 1)
    if ignoreRange && req.Method == "GET" {
      w.Write(testData)
      return
    }
    http.ServeContent(w, req, "data", time.Time{}, bytes.NewReader(testData))
  }))
}

/* -------------------------------------------------------------------------- */

func TestReader1(t *testing.T) {
  var requests int32
  server := newTestServer(&requests, false)
  defer server.Close()

  r := New(server.URL)
  r.ReadAhead = 4

  buf := make([]byte, 5)
  if n, err := r.ReadAt(buf, 10); err != nil || n != 5 || string(buf) != "klmno" {
    t.Error("TestReader1 failed")
  }
  // served from cache
  if n, err := r.ReadAt(buf[0:3], 14); err != nil || n != 3 || string(buf[0:3]) != "opq" {
    t.Error("TestReader1 failed")
  }
  if atomic.LoadInt32(&requests) != 1 {
    t.Error("TestReader1 failed")
  }
  // partial read at the end of the file
  if n, err := r.ReadAt(buf, int64(len(testData)-2)); err != io.EOF || n != 2 || string(buf[0:2]) != "89" {
    t.Error("TestReader1 failed")
  }
  if _, err := r.ReadAt(buf, int64(len(testData)+10)); err != io.EOF {
    t.Error("TestReader1 failed")
  }
}

func TestReader2(t *testing.T) {
  var requests int32
  server := newTestServer(&requests, true)
  defer server.Close()

  r := New(server.URL)
  r.ReadAhead = 0

  buf := make([]byte, 3)
  if n, err := r.ReadAt(buf, 26); err != nil || n != 3 || string(buf) != "012" {
    t.Error("TestReader2 failed")
  }
}

func TestReader3(t *testing.T) {
  var requests int32
  server := newTestServer(&requests, false)
  defer server.Close()

  if n, err := New(server.URL).Size(); err != nil || n != int64(len(testData)) {
    t.Error("TestReader3 failed")
  }
  s, err := New(server.URL).SectionReader()
  if err != nil {
    t.Error("TestReader3 failed")
    return
  }
  if data, err := io.ReadAll(s); err != nil || !bytes.Equal(data, testData) {
    t.Error("TestReader3 failed")
  }
}

func TestReader4(t *testing.T) {
  server := httptest.NewServer(http.NotFoundHandler())
  defer server.Close()

  if _, err := New(server.URL).ReadAt(make([]byte, 1), 0); err == nil {
    t.Error("TestReader4 failed")
  }
  if _, err := New(server.URL).Size(); err == nil {
    t.Error("TestReader4 failed")
  }
}
