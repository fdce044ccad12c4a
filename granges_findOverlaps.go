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
import "sort"

/* -------------------------------------------------------------------------- */

type endPoint struct {
  position int
  isStart  bool
  srcIdx   int
  isQuery  bool
}

func (obj endPoint) String() string {
  if obj.isStart {
    return fmt.Sprintf("<%d", obj.position)
  } else {
    return fmt.Sprintf("%d>", obj.position)
  }
}

/* endPointList
 * -------------------------------------------------------------------------- */

type endPointList []endPoint

func (r endPointList) Len() int {
  return len(r)
}

func (r endPointList) Less(i, j int) bool {
  if r[i].position != r[j].position {
    return r[i].position < r[j].position
  }
  // ranges are half-open, hence at equal positions an interval must be
  // closed before the next one is opened
  return !r[i].isStart && r[j].isStart
}

func (r endPointList) Swap(i, j int) {
  r[i], r[j] = r[j], r[i]
}

func (s *endPointList) Append(r endPoint) {
  (*s) = append(*s, r)
}

// Remove the start point with the given source index.
func (s *endPointList) Remove(srcIdx int) {
  for i := 0; i < len(*s); i++ {
    if (*s)[i].srcIdx == srcIdx {
      (*s) = append((*s)[0:i], (*s)[i+1:len(*s)]...)
      return
    }
  }
}

/* -------------------------------------------------------------------------- */

// Collect start and end points of all non-empty ranges grouped by
// chromosome.
func newEndPointMap(granges GRanges, isQuery bool, rmap map[string]endPointList) map[string]endPointList {
  if rmap == nil {
    rmap = make(map[string]endPointList)
  }
  for i := 0; i < granges.Length(); i++ {
    r := granges.Ranges[i]
    if r.From == r.To {
      continue
    }
    entry := rmap[granges.Seqnames[i]]
    entry  = append(entry, endPoint{r.From, true,  i, isQuery})
    entry  = append(entry, endPoint{r.To,   false, i, isQuery})
    rmap[granges.Seqnames[i]] = entry
  }
  return rmap
}

func sortedKeys(rmap map[string]endPointList) []string {
  keys := make([]string, 0, len(rmap))
  for key := range rmap {
    keys = append(keys, key)
  }
  sort.Strings(keys)
  return keys
}

/* FindOverlaps
 * -------------------------------------------------------------------------- */

func findOverlapsEntry(queryHits, subjectHits []int, entry endPointList) ([]int, []int) {
    queryList := endPointList{}
  subjectList := endPointList{}
  for _, r := range entry {
    if r.isQuery {
      if r.isStart {
        queryList.Append(r)
        // all elements in subjectList overlap with this position
        for i := 0; i < len(subjectList); i++ {
            queryHits = append(  queryHits, r.srcIdx)
          subjectHits = append(subjectHits, subjectList[i].srcIdx)
        }
      } else {
        queryList.Remove(r.srcIdx)
      }
    } else {
      if r.isStart {
        subjectList.Append(r)
        // all elements in queryList overlap with this position
        for i := 0; i < len(queryList); i++ {
            queryHits = append(  queryHits, queryList[i].srcIdx)
          subjectHits = append(subjectHits, r.srcIdx)
        }
      } else {
        subjectList.Remove(r.srcIdx)
      }
    }
  }
  return queryHits, subjectHits
}

// Find all pairs of overlapping query and subject ranges. Pairs are
// returned sorted by query and then by subject index.
func FindOverlaps(query, subject GRanges) ([]int, []int) {
    queryHits := []int{}
  subjectHits := []int{}

  rmap := newEndPointMap(query,   true,  nil)
  rmap  = newEndPointMap(subject, false, rmap)

  for _, seqname := range sortedKeys(rmap) {
    entry := rmap[seqname]
    sort.Stable(entry)
    queryHits, subjectHits = findOverlapsEntry(queryHits, subjectHits, entry)
  }
  sortIntPairs{queryHits, subjectHits}.Sort()

  return queryHits, subjectHits
}

// Number of query ranges that overlap at least one subject range.
func OverlapCount(query, subject GRanges) int {
  queryHits, _ := FindOverlaps(query, subject)
  n := 0
  for i := 0; i < len(queryHits); i++ {
    if i == 0 || queryHits[i] != queryHits[i-1] {
      n++
    }
  }
  return n
}

/* -------------------------------------------------------------------------- */

type sortIntPairs struct {
  a []int
  b []int
}

func (obj sortIntPairs) Len() int {
  return len(obj.a)
}

func (obj sortIntPairs) Less(i, j int) bool {
  if obj.a[i] != obj.a[j] {
    return obj.a[i] < obj.a[j]
  }
  return obj.b[i] < obj.b[j]
}

func (obj sortIntPairs) Swap(i, j int) {
  obj.a[i], obj.a[j] = obj.a[j], obj.a[i]
  obj.b[i], obj.b[j] = obj.b[j], obj.b[i]
}

func (obj sortIntPairs) Sort() {
  sort.Sort(obj)
}
