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
import   "os"

import   "github.com/pborman/getopt"
import log "github.com/sirupsen/logrus"

import . "github.com/pbenner/peakmotifs"

/* -------------------------------------------------------------------------- */

type Config struct {
  Symbol    byte
  ChunkSize int
  Verbose   int
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

/* -------------------------------------------------------------------------- */

func fastqCount(config Config, filename string) {
  log.Infof("Reading fastq file `%s'...", filename)
  reader, closer, err := ImportFastqChunks(filename, config.ChunkSize)
  if err != nil {
    log.Fatal(err)
  }
  defer closer.Close()

  total := 0
  for i := 1; reader.Next(); i++ {
    n := CountSymbol(reader.Chunk(), config.Symbol)
    fmt.Fprintf(os.Stdout, "chunk %d: %d\n", i, n)
    total += n
  }
  if err := reader.Err(); err != nil {
    log.Fatal(err)
  }
  fmt.Fprintf(os.Stdout, "total: %d\n", total)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optSymbol    := options. StringLong("symbol",     0 , "A",    "nucleotide to count [default: A]")
  optChunkSize := options.    IntLong("chunk-size", 0 , 10000,  "number of reads processed at once [default: 10000]")
  optVerbose   := options.CounterLong("verbose",   'v',         "verbose level [-v or -vv]")
  optHelp      := options.   BoolLong("help",      'h',         "print help")

  options.SetParameters("<INPUT.fastq>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  setLogLevel(*optVerbose)

  if len(*optSymbol) != 1 {
    log.Fatalf("invalid symbol `%s'", *optSymbol)
  }
  if *optChunkSize <= 0 {
    log.Fatalf("invalid chunk size `%d'", *optChunkSize)
  }
  config.Symbol    = (*optSymbol)[0]
  config.ChunkSize = *optChunkSize
  config.Verbose   = *optVerbose

  fastqCount(config, options.Args()[0])
}
