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


package progress

/* -------------------------------------------------------------------------- */

//import "fmt"
import "bytes"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestProgress1(t *testing.T) {
  p := New(10, 5)
  p.Label = "motifs"

  if s := p.Exec(5); !strings.Contains(s, "50.00%") || !strings.Contains(s, "motifs") || strings.HasSuffix(s, "\n") {
    t.Error("TestProgress1 failed")
  }
  if s := p.Exec(10); !strings.Contains(s, "(10/10)") || !strings.HasSuffix(s, "\n") {
    t.Error("TestProgress1 failed")
  }
}

func TestProgress2(t *testing.T) {
  var buffer bytes.Buffer
  p := New(10, 5)
  p.Writer = &buffer

  for i := 0; i <= 10; i++ {
    p.Print(i)
  }
  // steps 0, 2, 4, 6, 8 and 10
  if n := strings.Count(buffer.String(), "|"); n != 12 {
    t.Error("TestProgress2 failed")
  }
}
