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

import "context"
import "database/sql"
import "fmt"
import "sort"
import "strings"

import _ "github.com/go-sql-driver/mysql"

/* import motifs from a JASPAR database
 * -------------------------------------------------------------------------- */

// Connection to a JASPAR MySQL database, e.g.
// `user:password@tcp(localhost:3306)/JASPAR2020'.
type JasparDB struct {
  db *sql.DB
}

type jasparMatrix struct {
  id         int
  baseID     string
  version    int
  name       string
  collection string
}

type jasparCell struct {
  row string
  col int
  val float64
}

/* -------------------------------------------------------------------------- */

func OpenJasparDB(dsn string) (*JasparDB, error) {
  db, err := sql.Open("mysql", dsn)
  if err != nil {
    return nil, err
  }
  if err := db.Ping(); err != nil {
    db.Close()
    return nil, err
  }
  return &JasparDB{db}, nil
}

func NewJasparDB(db *sql.DB) *JasparDB {
  return &JasparDB{db}
}

func (obj *JasparDB) Close() error {
  return obj.db.Close()
}

/* -------------------------------------------------------------------------- */

func jasparMatrixQuery(collection string, taxIDs []string) (string, []interface{}) {
  query := "SELECT DISTINCT m.ID, m.BASE_ID, m.VERSION, m.NAME, m.COLLECTION FROM MATRIX m"
  // a matrix is outdated if any newer version exists, also outside of
  // the selected collection or species
  where := []string{"m.VERSION = (SELECT MAX(l.VERSION) FROM MATRIX l WHERE l.BASE_ID = m.BASE_ID)"}
  args  := []interface{}{}
  if collection != "" {
    where = append(where, "m.COLLECTION = ?")
    args  = append(args, collection)
  }
  if len(taxIDs) > 0 {
    query += " JOIN MATRIX_SPECIES s ON s.ID = m.ID"
    where  = append(where, fmt.Sprintf("s.TAX_ID IN (%s)", strings.TrimSuffix(strings.Repeat("?, ", len(taxIDs)), ", ")))
    for _, id := range taxIDs {
      args = append(args, id)
    }
  }
  query += " WHERE " + strings.Join(where, " AND ")
  query += " ORDER BY m.BASE_ID, m.VERSION"
  return query, args
}

// Keep only the latest version of each matrix. The result is sorted by
// base id.
func jasparLatestVersions(matrices []jasparMatrix) []jasparMatrix {
  latest := make(map[string]jasparMatrix)
  for _, m := range matrices {
    if l, ok := latest[m.baseID]; !ok || m.version > l.version {
      latest[m.baseID] = m
    }
  }
  result := make([]jasparMatrix, 0, len(latest))
  for _, m := range latest {
    result = append(result, m)
  }
  sort.Slice(result, func(i, j int) bool { return result[i].baseID < result[j].baseID })
  return result
}

// Convert matrix cells into a count matrix. Columns are numbered starting
// from one.
func jasparCounts(cells []jasparCell) ([][]float64, error) {
  alphabet := NucleotideAlphabet{}
  m := 0
  for _, c := range cells {
    if c.col < 1 {
      return nil, fmt.Errorf("invalid column `%d'", c.col)
    }
    m = iMax(m, c.col)
  }
  counts := make([][]float64, alphabet.Length())
  filled := make([][]bool,    alphabet.Length())
  for i := range counts {
    counts[i] = make([]float64, m)
    filled[i] = make([]bool,    m)
  }
  for _, c := range cells {
    if len(c.row) != 1 {
      return nil, fmt.Errorf("invalid row `%s'", c.row)
    }
    i, err := alphabet.Code(c.row[0])
    if err != nil {
      return nil, err
    }
    counts[i][c.col-1] = c.val
    filled[i][c.col-1] = true
  }
  for i := range filled {
    for j := range filled[i] {
      if !filled[i][j] {
        return nil, fmt.Errorf("matrix has no entry at row %d and column %d", i, j+1)
      }
    }
  }
  return counts, nil
}

/* -------------------------------------------------------------------------- */

func (obj *JasparDB) queryMatrices(ctx context.Context, collection string, taxIDs []string) ([]jasparMatrix, error) {
  query, args := jasparMatrixQuery(collection, taxIDs)
  rows, err := obj.db.QueryContext(ctx, query, args...)
  if err != nil {
    return nil, err
  }
  defer rows.Close()
  result := []jasparMatrix{}
  for rows.Next() {
    m := jasparMatrix{}
    if err := rows.Scan(&m.id, &m.baseID, &m.version, &m.name, &m.collection); err != nil {
      return nil, err
    }
    result = append(result, m)
  }
  return result, rows.Err()
}

func (obj *JasparDB) queryCells(ctx context.Context, id int) ([]jasparCell, error) {
  rows, err := obj.db.QueryContext(ctx, "SELECT `row`, `col`, `val` FROM MATRIX_DATA WHERE ID = ?", id)
  if err != nil {
    return nil, err
  }
  defer rows.Close()
  result := []jasparCell{}
  for rows.Next() {
    c := jasparCell{}
    if err := rows.Scan(&c.row, &c.col, &c.val); err != nil {
      return nil, err
    }
    result = append(result, c)
  }
  return result, rows.Err()
}

func (obj *JasparDB) querySpecies(ctx context.Context, id int) ([]string, error) {
  rows, err := obj.db.QueryContext(ctx, "SELECT TAX_ID FROM MATRIX_SPECIES WHERE ID = ?", id)
  if err != nil {
    return nil, err
  }
  defer rows.Close()
  result := []string{}
  for rows.Next() {
    var taxID string
    if err := rows.Scan(&taxID); err != nil {
      return nil, err
    }
    result = append(result, taxID)
  }
  return result, rows.Err()
}

// Fetch the latest version of all motifs of a collection (e.g. CORE) that
// are annotated with one of the given NCBI taxonomy ids (e.g. 9606 for human).
// An empty collection or an empty list of ids matches all motifs.
func (obj *JasparDB) FetchMotifs(ctx context.Context, collection string, taxIDs []string, pseudocount float64) ([]Motif, error) {
  matrices, err := obj.queryMatrices(ctx, collection, taxIDs)
  if err != nil {
    return nil, fmt.Errorf("FetchMotifs(): %v", err)
  }
  motifs := []Motif{}
  for _, m := range jasparLatestVersions(matrices) {
    cells, err := obj.queryCells(ctx, m.id)
    if err != nil {
      return nil, fmt.Errorf("FetchMotifs(): %v", err)
    }
    counts, err := jasparCounts(cells)
    if err != nil {
      return nil, fmt.Errorf("FetchMotifs(): matrix `%s.%d': %v", m.baseID, m.version, err)
    }
    pwm, err := PWMFromCounts(counts, pseudocount)
    if err != nil {
      return nil, fmt.Errorf("FetchMotifs(): matrix `%s.%d': %v", m.baseID, m.version, err)
    }
    species, err := obj.querySpecies(ctx, m.id)
    if err != nil {
      return nil, fmt.Errorf("FetchMotifs(): %v", err)
    }
    motifs = append(motifs, Motif{
      ID        : fmt.Sprintf("%s.%d", m.baseID, m.version),
      Name      : m.name,
      Collection: m.collection,
      TaxIDs    : species,
      PWM       : pwm })
  }
  return motifs, nil
}
