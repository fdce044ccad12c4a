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
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

func isBedHeader(fields []string) bool {
  if strings.HasPrefix(fields[0], "#") {
    return true
  }
  return fields[0] == "track" || fields[0] == "browser"
}

// Read intervals from a bed file with at least three columns. The optional
// name, score and strand columns are imported if all lines provide them.
// Additional columns (e.g. narrowPeak) are ignored.
func ReadBed(reader io.Reader) (GRanges, error) {
  scanner := bufio.NewScanner(reader)
  scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  name     := []string{}
  score    := []float64{}
  strand   := []byte{}
  // minimum number of columns over all lines
  columns  := -1

  for line := 1; scanner.Scan(); line++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 || isBedHeader(fields) {
      continue
    }
    if len(fields) < 3 {
      return GRanges{}, fmt.Errorf("ReadBed(): line %d: bed file must have at least three columns", line)
    }
    if columns == -1 || len(fields) < columns {
      columns = len(fields)
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64); if err != nil {
      return GRanges{}, fmt.Errorf("ReadBed(): line %d: %v", line, err)
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64); if err != nil {
      return GRanges{}, fmt.Errorf("ReadBed(): line %d: %v", line, err)
    }
    if t1 > t2 || t1 < 0 {
      return GRanges{}, fmt.Errorf("ReadBed(): line %d: invalid range [%d, %d)", line, t1, t2)
    }
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(t1))
    to       = append(to,       int(t2))
    if len(fields) > 3 {
      name = append(name, fields[3])
    }
    if len(fields) > 4 {
      if fields[4] == "." {
        score = append(score, 0.0)
      } else {
        t3, err := strconv.ParseFloat(fields[4], 64); if err != nil {
          return GRanges{}, fmt.Errorf("ReadBed(): line %d: %v", line, err)
        }
        score = append(score, t3)
      }
    }
    if len(fields) > 5 {
      switch fields[5][0] {
      case '+': strand = append(strand, '+')
      case '-': strand = append(strand, '-')
      default : strand = append(strand, '*')
      }
    }
  }
  if err := scanner.Err(); err != nil {
    return GRanges{}, err
  }
  if columns < 6 {
    strand = nil
  }
  granges := NewGRanges(seqnames, from, to, strand)
  if columns >= 4 {
    granges.Names = name
  }
  if columns >= 5 {
    granges.Scores = score
  }
  return granges, nil
}

// Import intervals from a bed file. Gzip compressed files are detected
// automatically.
func ImportBed(filename string) (GRanges, error) {
  reader, closer, err := openFile(filename)
  if err != nil {
    return GRanges{}, err
  }
  defer closer.Close()
  return ReadBed(reader)
}

/* -------------------------------------------------------------------------- */

// Export intervals as bed file with six columns.
func (granges GRanges) WriteBed6(writer io.Writer) error {
  w := bufio.NewWriter(writer)

  for i := 0; i < granges.Length(); i++ {
    fmt.Fprintf(w,   "%s", granges.Seqnames[i])
    fmt.Fprintf(w, "\t%d", granges.Ranges[i].From)
    fmt.Fprintf(w, "\t%d", granges.Ranges[i].To)
    if len(granges.Names) > 0 {
      fmt.Fprintf(w, "\t%s", granges.Names[i])
    } else {
      fmt.Fprintf(w, "\t%s", ".")
    }
    if len(granges.Scores) > 0 {
      fmt.Fprintf(w, "\t%s", strconv.FormatFloat(granges.Scores[i], 'g', -1, 64))
    } else {
      fmt.Fprintf(w, "\t%d", 0)
    }
    if len(granges.Strand) > 0 && granges.Strand[i] != '*' {
      fmt.Fprintf(w, "\t%c", granges.Strand[i])
    } else {
      fmt.Fprintf(w, "\t%s", ".")
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  return w.Flush()
}

func (granges GRanges) ExportBed6(filename string, compress bool) error {
  writer, closer, err := createFile(filename, compress)
  if err != nil {
    return err
  }
  if err := granges.WriteBed6(writer); err != nil {
    closer.Close()
    return err
  }
  return closer.Close()
}
