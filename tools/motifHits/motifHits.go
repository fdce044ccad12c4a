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

import   "context"
import   "fmt"
import   "math"
import   "os"
import   "path/filepath"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"
import log "github.com/sirupsen/logrus"

import . "github.com/pbenner/peakmotifs"
import   "github.com/pbenner/peakmotifs/lib/progress"

/* -------------------------------------------------------------------------- */

type Config struct {
  HitConfig   HitConfig
  Collection  string
  TaxIDs      []string
  Pseudocount float64
  Decreasing  bool
  Status      bool
  SummitWidth int
  Threads     int
  Verbose     int
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

func parseFloat(name, value string) float64 {
  v, err := strconv.ParseFloat(value, 64)
  if err != nil {
    log.Fatalf("invalid value `%s' for option --%s", value, name)
  }
  return v
}

/* i/o
 * -------------------------------------------------------------------------- */

func importPeaks(config Config, filename string) GRanges {
  var granges GRanges
  if strings.HasSuffix(filename, ".xls") || strings.HasSuffix(filename, ".xls.gz") {
    log.Infof("Reading MACS2 peaks `%s'...", filename)
    peaks, err := ImportXlsPeaks(filename)
    if err != nil {
      log.Fatal(err)
    }
    if config.SummitWidth > 0 {
      granges = peaks.Summits(config.SummitWidth)
    } else {
      granges = peaks.GRanges
    }
  } else {
    if config.SummitWidth > 0 {
      log.Warn("ignoring --summit-width for bed input")
    }
    log.Infof("Reading bed file `%s'...", filename)
    r, err := ImportBed(filename)
    if err != nil {
      log.Fatal(err)
    }
    granges = r
  }
  log.Debugf("Read %d peaks", granges.Length())
  return granges
}

func openGenome(config Config, filename string) (SequenceSource, Genome, func()) {
  // compressed files cannot be indexed and are loaded into memory
  if strings.HasSuffix(filename, ".gz") {
    log.Infof("Reading reference genome `%s'...", filename)
    s := EmptyStringSet()
    if err := s.ImportFasta(filename); err != nil {
      log.Fatal(err)
    }
    return s, s.Genome(), func() {}
  }
  log.Infof("Opening reference genome `%s'...", filename)
  var r *IndexedFasta
  var err error
  if strings.HasPrefix(filename, "http://") || strings.HasPrefix(filename, "https://") {
    r, err = OpenRemoteIndexedFasta(filename)
  } else {
    r, err = OpenIndexedFasta(filename)
  }
  if err != nil {
    log.Fatal(err)
  }
  log.Debugf("Reference genome has %d sequences", r.Genome().Length())
  return r, r.Genome(), func() { r.Close() }
}

func importMotifs(config Config, filenamesPWM []string, filenameJaspar, dsn string) []Motif {
  motifs := []Motif{}
  for _, filename := range filenamesPWM {
    log.Infof("Reading PWM table `%s'...", filename)
    pwm, err := ImportPWMTable(filename)
    if err != nil {
      log.Fatal(err)
    }
    name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
    motifs = append(motifs, Motif{ID: name, Name: name, PWM: pwm})
  }
  if filenameJaspar != "" {
    log.Infof("Reading motifs from `%s'...", filenameJaspar)
    m, err := ImportJaspar(filenameJaspar, config.Pseudocount)
    if err != nil {
      log.Fatal(err)
    }
    motifs = append(motifs, m...)
  }
  if dsn != "" {
    log.Infof("Fetching %s motifs for taxa %v from JASPAR database...", config.Collection, config.TaxIDs)
    db, err := OpenJasparDB(dsn)
    if err != nil {
      log.Fatal(err)
    }
    defer db.Close()
    m, err := db.FetchMotifs(context.Background(), config.Collection, config.TaxIDs, config.Pseudocount)
    if err != nil {
      log.Fatal(err)
    }
    motifs = append(motifs, m...)
  }
  if len(motifs) == 0 {
    log.Fatal("no motifs given")
  }
  log.Debugf("Read %d motifs", len(motifs))
  return motifs
}

func exportResults(config Config, results []MotifHits, filename string) {
  if filename == "" {
    if err := WriteMotifHits(os.Stdout, results); err != nil {
      log.Fatal(err)
    }
  } else {
    log.Infof("Writing results to `%s'...", filename)
    if err := ExportMotifHits(filename, results); err != nil {
      log.Fatal(err)
    }
  }
}

/* -------------------------------------------------------------------------- */

func motifHits(config Config, filenameGenome, filenamePeaks string, filenamesPWM []string, filenameJaspar, dsn, filenameOut, filenamePlot string) {
  motifs := importMotifs(config, filenamesPWM, filenameJaspar, dsn)
  peaks  := importPeaks(config, filenamePeaks)
  source, genome, closer := openGenome(config, filenameGenome)
  defer closer()

  // peaks must be defined on the reference genome
  if r, err := peaks.ClipToGenome(genome); err != nil {
    log.Fatal(err)
  } else {
    peaks = r
  }
  log.Info("Extracting peak sequences...")
  sequences, err := GetIntervalSequences(source, peaks)
  if err != nil {
    log.Fatal(err)
  }
  var status func(int, int)
  if config.Status {
    p := progress.New(len(motifs), 100)
    p.Label = "Scanning motifs"
    status = func(i, n int) { p.Print(i) }
  } else {
    status = func(i, n int) {
      if i % 10 == 0 || i == n {
        log.Infof("Scanned %d of %d motifs", i, n)
      }
    }
  }
  results, err := ScanMotifs(sequences, motifs, config.HitConfig, config.Threads, status)
  if err != nil {
    log.Fatal(err)
  }
  ranked := RankByHits(results)
  if config.Decreasing {
    for i, j := 0, len(ranked)-1; i < j; i, j = i+1, j-1 {
      ranked[i], ranked[j] = ranked[j], ranked[i]
    }
  }
  exportResults(config, ranked, filenameOut)

  if filenamePlot != "" {
    log.Infof("Plotting motif lengths against hits to `%s'...", filenamePlot)
    if err := PlotMotifHits(results, filenamePlot); err != nil {
      log.Fatal(err)
    }
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optPWM         := options. StringLong("pwm",          0 , "",     "comma separated list of PWM tables")
  optJaspar      := options. StringLong("jaspar",       0 , "",     "read motifs from file in JASPAR format")
  optJasparDB    := options. StringLong("jaspar-db",    0 , "",     "fetch motifs from JASPAR MySQL database, e.g. user:pass@tcp(host:3306)/JASPAR2020")
  optCollection  := options. StringLong("collection",   0 , "CORE", "JASPAR collection [default: CORE]")
  optTaxIDs      := options. StringLong("tax-ids",      0 , "9606", "comma separated list of NCBI taxonomy ids [default: 9606]")
  optPseudocount := options. StringLong("pseudocount",  0 , "0",    "pseudocount added to each motif position [default: 0]")
  optBackground  := options. StringLong("background",   0 , "0.25", "background probability of each nucleotide [default: 0.25]")
  optThreshold   := options. StringLong("threshold",    0 , "0.9",  "minimum likelihood ratio between motif and background for a hit [default: 0.9]")
  optBothStrands := options.   BoolLong("both-strands", 0 ,         "also scan the reverse complementary strand")
  optDecreasing  := options.   BoolLong("decreasing",   0 ,         "sort motifs by decreasing number of hits")
  optOutput      := options. StringLong("output",       0 , "",     "write results to file")
  optPlot        := options. StringLong("plot",         0 , "",     "plot motif length against number of hits [png, svg, pdf]")
  optSummitWidth := options.    IntLong("summit-width", 0 ,  0,     "scan windows of given width around MACS2 peak summits [xls input only]")
  optStatus      := options.   BoolLong("status",       0 ,         "show status bar")
  optThreads     := options.    IntLong("threads",      0 ,  1,     "number of threads [default: 1]")
  optVerbose     := options.CounterLong("verbose",     'v',         "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",        'h',         "print help")

  options.SetParameters("<GENOME.fa[.gz]|URL> <PEAKS.bed|PEAKS.xls>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optPWM == "" && *optJaspar == "" && *optJasparDB == "" {
    fmt.Fprintf(os.Stderr, "no motif source given, use --pwm, --jaspar or --jaspar-db\n\n")
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  setLogLevel(*optVerbose)

  threshold := parseFloat("threshold", *optThreshold)
  if threshold <= 0.0 {
    log.Fatalf("invalid threshold `%s'", *optThreshold)
  }
  config.HitConfig   = HitConfig{
    Background : parseFloat("background", *optBackground),
    Threshold  : math.Log(threshold),
    BothStrands: *optBothStrands }
  if err := config.HitConfig.Validate(); err != nil {
    log.Fatal(err)
  }
  config.Collection  = *optCollection
  if *optTaxIDs != "" {
    config.TaxIDs    = strings.Split(*optTaxIDs, ",")
  }
  config.Pseudocount = parseFloat("pseudocount", *optPseudocount)
  config.Decreasing  = *optDecreasing
  config.Status      = *optStatus
  config.SummitWidth = *optSummitWidth
  config.Threads     = *optThreads
  config.Verbose     = *optVerbose

  filenameGenome := options.Args()[0]
  filenamePeaks  := options.Args()[1]
  filenamesPWM   := []string{}
  if *optPWM != "" {
    filenamesPWM = strings.Split(*optPWM, ",")
  }
  motifHits(config, filenameGenome, filenamePeaks, filenamesPWM, *optJaspar, *optJasparDB, *optOutput, *optPlot)
}
