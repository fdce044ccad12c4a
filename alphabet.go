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

/* -------------------------------------------------------------------------- */

// Unambiguous DNA alphabet {A, C, G, T} with codes 0, 1, 2, 3. Lower and
// upper case letters are treated equally.
type NucleotideAlphabet struct {
}

/* -------------------------------------------------------------------------- */

// code table used for scanning, -1 marks letters outside of the alphabet
var nucleotideCodes [256]int8

func init() {
  for i := range nucleotideCodes {
    nucleotideCodes[i] = -1
  }
  for i, c := range "ACGT" {
    nucleotideCodes[c]      = int8(i)
    nucleotideCodes[c+'a'-'A'] = int8(i)
  }
}

/* -------------------------------------------------------------------------- */

func (NucleotideAlphabet) Code(i byte) (byte, error) {
  if c := nucleotideCodes[i]; c >= 0 {
    return byte(c), nil
  }
  return 0xFF, fmt.Errorf("Code(): `%c' is not part of the alphabet", i)
}

func (NucleotideAlphabet) Decode(i byte) (byte, error) {
  switch i {
  case 0:  return 'A', nil
  case 1:  return 'C', nil
  case 2:  return 'G', nil
  case 3:  return 'T', nil
  default: return 0xFF, fmt.Errorf("Decode(): `%d' is not a code of the alphabet", int(i))
  }
}

func (NucleotideAlphabet) Length() int {
  return 4
}

func (NucleotideAlphabet) ComplementCoded(i byte) (byte, error) {
  if i > 3 {
    return 0xFF, fmt.Errorf("ComplementCoded(): `%d' is not a code of the alphabet", int(i))
  }
  return 3-i, nil
}

func (NucleotideAlphabet) Complement(i byte) (byte, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return 'T', nil
  case 'C': fallthrough
  case 'c': return 'G', nil
  case 'G': fallthrough
  case 'g': return 'C', nil
  case 'T': fallthrough
  case 't': return 'A', nil
  default:  return 0xFF, fmt.Errorf("Complement(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) String() string {
  return "nucleotide alphabet"
}

/* -------------------------------------------------------------------------- */

// Reverse complement of a sequence. Letters outside of the alphabet are
// replaced by `N'.
func ReverseComplement(sequence []byte) []byte {
  alphabet := NucleotideAlphabet{}
  r := make([]byte, len(sequence))
  for i, a := range sequence {
    if c, err := alphabet.Complement(a); err != nil {
      r[len(sequence)-i-1] = 'N'
    } else {
      r[len(sequence)-i-1] = c
    }
  }
  return r
}

func upperCase(sequence []byte) []byte {
  r := make([]byte, len(sequence))
  for i, a := range sequence {
    if a >= 'a' && a <= 'z' {
      a -= 'a'-'A'
    }
    r[i] = a
  }
  return r
}
