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

// Restrict all ranges to the chromosome bounds given by the genome. Ranges
// on chromosomes that are not part of the genome are an error.
func (granges GRanges) ClipToGenome(genome Genome) (GRanges, error) {
  lengths := genome.lengthMap()
  result  := granges.Clone()
  for i := 0; i < result.Length(); i++ {
    n, ok := lengths[result.Seqnames[i]]
    if !ok {
      return GRanges{}, fmt.Errorf("ClipToGenome(): sequence `%s' not found in genome", result.Seqnames[i])
    }
    result.Ranges[i] = result.Ranges[i].Clip(n)
  }
  return result, nil
}

/* -------------------------------------------------------------------------- */

type coverageStatistics struct {
  a, b      int
  union     int
  intersect int
}

func newCoverageStatistics(genome Genome, a, b GRanges) (coverageStatistics, error) {
  r := coverageStatistics{}
  a, err := a.ClipToGenome(genome); if err != nil {
    return r, err
  }
  b, err  = b.ClipToGenome(genome); if err != nil {
    return r, err
  }
  r.a     = a.Coverage()
  r.b     = b.Coverage()
  r.union = a.Merge(b).Coverage()
  // inclusion-exclusion
  r.intersect = r.a + r.b - r.union
  return r, nil
}

// Number of positions covered by both sets of ranges.
func IntersectionLength(genome Genome, a, b GRanges) (int, error) {
  s, err := newCoverageStatistics(genome, a, b)
  if err != nil {
    return 0, err
  }
  return s.intersect, nil
}

// Jaccard index of the genomic coverage of two sets of ranges, i.e. the
// number of positions covered by both sets divided by the number of
// positions covered by at least one set. Returns zero if both sets are empty.
func Jaccard(genome Genome, a, b GRanges) (float64, error) {
  s, err := newCoverageStatistics(genome, a, b)
  if err != nil {
    return 0.0, err
  }
  if s.union == 0 {
    return 0.0, nil
  }
  return float64(s.intersect)/float64(s.union), nil
}

// Forbes coefficient of the genomic coverage of two sets of ranges. The
// observed number of positions covered by both sets is divided by the number
// expected if both sets were placed independently on the genome, i.e.
// N |A∩B| / (|A| |B|) where N is the genome length. Returns zero if one of
// the sets is empty.
func Forbes(genome Genome, a, b GRanges) (float64, error) {
  s, err := newCoverageStatistics(genome, a, b)
  if err != nil {
    return 0.0, err
  }
  if s.a == 0 || s.b == 0 {
    return 0.0, nil
  }
  n := float64(genome.TotalLength())
  return n*float64(s.intersect)/(float64(s.a)*float64(s.b)), nil
}
