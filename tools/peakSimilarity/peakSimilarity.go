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


package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "io"
import   "math/rand"
import   "os"
import   "path/filepath"
import   "strings"

import   "github.com/pborman/getopt"
import log "github.com/sirupsen/logrus"
import   "gonum.org/v1/gonum/stat"

import . "github.com/pbenner/peakmotifs"

/* -------------------------------------------------------------------------- */

type Config struct {
  Header  bool
  Shuffle int
  Seed    int64
  Verbose int
}

/* -------------------------------------------------------------------------- */

func setLogLevel(verbose int) {
  switch {
  case verbose >= 2:
    log.SetLevel(log.DebugLevel)
  case verbose == 1:
    log.SetLevel(log.InfoLevel)
  default:
    log.SetLevel(log.WarnLevel)
  }
}

/* i/o
 * -------------------------------------------------------------------------- */

func importGenome(config Config, filename string) Genome {
  log.Infof("Reading genome `%s'...", filename)
  genome, err := ImportGenome(filename)
  if err != nil {
    log.Fatal(err)
  }
  log.Debugf("Read %d sequences", genome.Length())
  return genome
}

func importPeaks(config Config, genome Genome, filename string) GRanges {
  log.Infof("Reading bed file `%s'...", filename)
  granges, err := ImportBed(filename)
  if err != nil {
    log.Fatal(err)
  }
  if granges, err = granges.SortByGenome(genome); err != nil {
    log.Fatalf("bed file `%s': %v", filename, err)
  }
  log.Debugf("Read %d peaks", granges.Length())
  return granges
}

// Arguments have the form FILE or FILE:NAME.
func splitArgument(arg string) (string, string) {
  if i := strings.LastIndex(arg, ":"); i > 0 && i < len(arg)-1 {
    return arg[:i], arg[i+1:]
  }
  name := filepath.Base(arg)
  for _, ext := range []string{".gz", ".bed"} {
    name = strings.TrimSuffix(name, ext)
  }
  return arg, name
}

/* -------------------------------------------------------------------------- */

type similarity struct {
  Name      string
  Peaks     int
  Overlaps  int
  Forbes    float64
  Jaccard   float64
  Expected  float64
}

func compare(genome Genome, reference, other GRanges) (similarity, error) {
  r := similarity{}
  r.Peaks    = other.Length()
  r.Overlaps = OverlapCount(reference, other)
  if v, err := Forbes(genome, reference, other); err != nil {
    return r, err
  } else {
    r.Forbes = v
  }
  if v, err := Jaccard(genome, reference, other); err != nil {
    return r, err
  } else {
    r.Jaccard = v
  }
  return r, nil
}

// Mean Jaccard index when the other peak set is placed at random.
func expectedJaccard(config Config, rng *rand.Rand, genome Genome, reference, other GRanges) (float64, error) {
  x := make([]float64, config.Shuffle)
  for i := 0; i < config.Shuffle; i++ {
    s, err := other.Shuffle(genome, rng)
    if err != nil {
      return 0, err
    }
    if x[i], err = Jaccard(genome, reference, s); err != nil {
      return 0, err
    }
  }
  return stat.Mean(x, nil), nil
}

func writeResults(config Config, writer io.Writer, results []similarity) {
  if config.Header {
    fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s", "name", "peaks", "overlaps", "forbes", "jaccard")
    if config.Shuffle > 0 {
      fmt.Fprintf(writer, "\t%s", "expected_jaccard")
    }
    fmt.Fprintf(writer, "\n")
  }
  for _, r := range results {
    fmt.Fprintf(writer, "%s\t%d\t%d\t%f\t%f", r.Name, r.Peaks, r.Overlaps, r.Forbes, r.Jaccard)
    if config.Shuffle > 0 {
      fmt.Fprintf(writer, "\t%f", r.Expected)
    }
    fmt.Fprintf(writer, "\n")
  }
}

func peakSimilarity(config Config, filenameGenome, filenameReference string, others []string) {
  genome    := importGenome(config, filenameGenome)
  reference := importPeaks (config, genome, filenameReference)

  rng     := rand.New(rand.NewSource(config.Seed))
  results := []similarity{}
  for _, arg := range others {
    filename, name := splitArgument(arg)
    peaks := importPeaks(config, genome, filename)
    r, err := compare(genome, reference, peaks)
    if err != nil {
      log.Fatal(err)
    }
    if config.Shuffle > 0 {
      log.Infof("Shuffling `%s' %d times...", name, config.Shuffle)
      if r.Expected, err = expectedJaccard(config, rng, genome, reference, peaks); err != nil {
        log.Fatal(err)
      }
    }
    r.Name  = name
    results = append(results, r)
  }
  writeResults(config, os.Stdout, results)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optHeader  := options.   BoolLong("header",   0 ,     "print header line")
  optShuffle := options.    IntLong("shuffle",  0 , 0,  "estimate expected jaccard index from randomly placed peaks [default: 0]")
  optSeed    := options.    IntLong("seed",     0 , 1,  "seed for the random number generator [default: 1]")
  optVerbose := options.CounterLong("verbose", 'v',     "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',     "print help")

  options.SetParameters("<CHROM.SIZES> <REFERENCE.bed> <PEAKS.bed[:NAME]>...")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  setLogLevel(*optVerbose)

  config.Header  = *optHeader
  config.Shuffle = *optShuffle
  config.Seed    = int64(*optSeed)
  config.Verbose = *optVerbose

  peakSimilarity(config, options.Args()[0], options.Args()[1], options.Args()[2:])
}
