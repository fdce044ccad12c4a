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

//import "fmt"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestGenome1(t *testing.T) {
  genome, err := ReadGenome(strings.NewReader("chr1\t1000\nchr2\t500\n\nchrM 16\n"))
  if err != nil {
    t.Error("TestGenome1 failed!")
    return
  }
  if genome.Length() != 3 || genome.TotalLength() != 1516 {
    t.Error("TestGenome1 failed!")
  }
  if n, err := genome.SeqLength("chr2"); err != nil || n != 500 {
    t.Error("TestGenome1 failed!")
  }
  if _, err := genome.SeqLength("chr3"); err == nil {
    t.Error("TestGenome1 failed!")
  }
  if genome.Index("chrM") != 2 {
    t.Error("TestGenome1 failed!")
  }
}

func TestGenome2(t *testing.T) {
  if _, err := ReadGenome(strings.NewReader("chr1 1000\nchr1 500\n")); err == nil {
    t.Error("TestGenome2 failed!")
  }
  if _, err := ReadGenome(strings.NewReader("chr1\n")); err == nil {
    t.Error("TestGenome2 failed!")
  }
}
