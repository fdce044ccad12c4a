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

// Random access to genomic sequences, implemented by StringSet and
// IndexedFasta.
type SequenceSource interface {
  GetSlice(seqname string, r Range) ([]byte, error)
}

/* -------------------------------------------------------------------------- */

// Extract the sequence of each range. Sequences are returned in upper case
// and ranges on the negative strand are reverse complemented.
func GetIntervalSequences(source SequenceSource, granges GRanges) ([][]byte, error) {
  sequences := make([][]byte, granges.Length())
  for i := 0; i < granges.Length(); i++ {
    s, err := source.GetSlice(granges.Seqnames[i], granges.Ranges[i])
    if err != nil {
      return nil, fmt.Errorf("GetIntervalSequences(): range %d: %v", i+1, err)
    }
    if len(granges.Strand) > 0 && granges.Strand[i] == '-' {
      sequences[i] = ReverseComplement(s)
    } else {
      sequences[i] = upperCase(s)
    }
  }
  return sequences, nil
}
