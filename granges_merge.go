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

import "sort"

/* -------------------------------------------------------------------------- */

func (obj GRanges) merge(seqname string, entry endPointList) GRanges {
  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  // k: number of open intervals
  k      := 0
  open   := false
  r_from := 0
  for i := 0; i < len(entry); i++ {
    if entry[i].isStart {
      if !open {
        r_from = entry[i].position
        open   = true
      }
      k += 1
    } else {
      k -= 1
      // a following interval that starts at the same position continues
      // the merged range
      if k == 0 && (i+1 == len(entry) || entry[i+1].position != entry[i].position) {
        seqnames = append(seqnames, seqname)
        from     = append(from,     r_from)
        to       = append(to,       entry[i].position)
        open     = false
      }
    }
  }
  return obj.Append(NewGRanges(seqnames, from, to, nil))
}

// Merge overlapping and adjacent ranges of all given objects into a set of
// disjoint ranges. Strand, names and scores are dropped. The result is sorted
// by chromosome name and position.
func (obj GRanges) Merge(granges ...GRanges) GRanges {
  r    := GRanges{}
  rmap := newEndPointMap(obj, true, nil)
  for _, g := range granges {
    rmap = newEndPointMap(g, true, rmap)
  }
  // sort map entries
  for _, seqname := range sortedKeys(rmap) {
    entry := rmap[seqname]
    sort.Sort(entry)
    r = r.merge(seqname, entry)
  }
  return r
}

// Number of positions covered by at least one range.
func (obj GRanges) Coverage() int {
  n := 0
  for _, r := range obj.Merge().Ranges {
    n += r.Length()
  }
  return n
}
