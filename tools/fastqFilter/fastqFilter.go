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

import   "os"
import   "strconv"

import   "github.com/pborman/getopt"
import log "github.com/sirupsen/logrus"

import . "github.com/pbenner/peakmotifs"

/* -------------------------------------------------------------------------- */

type Config struct {
  MinQuality float64
  ChunkSize  int
  MaxChunks  int
  Compress   bool
  Verbose    int
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

func fastqFilter(config Config, filenameIn, filenameOut string) {
  log.Infof("Reading fastq file `%s'...", filenameIn)
  reader, closer, err := ImportFastqChunks(filenameIn, config.ChunkSize)
  if err != nil {
    log.Fatal(err)
  }
  defer closer.Close()

  writer, err := CreateFastq(filenameOut, config.Compress)
  if err != nil {
    log.Fatal(err)
  }
  nIn  := 0
  nOut := 0
  for i := 0; config.MaxChunks <= 0 || i < config.MaxChunks; i++ {
    if !reader.Next() {
      break
    }
    chunk    := reader.Chunk()
    filtered := FilterReads(chunk, config.MinQuality)
    if err := writer.WriteChunk(filtered); err != nil {
      log.Fatal(err)
    }
    log.Debugf("Chunk %d: kept %d of %d reads", i+1, len(filtered), len(chunk))
    nIn  += len(chunk)
    nOut += len(filtered)
  }
  if err := reader.Err(); err != nil {
    log.Fatal(err)
  }
  if err := writer.Close(); err != nil {
    log.Fatal(err)
  }
  log.Infof("Wrote %d of %d reads to `%s'", nOut, nIn, filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optMinQuality := options. StringLong("min-quality", 0 , "20",   "minimum mean phred quality of a read [default: 20]")
  optChunkSize  := options.    IntLong("chunk-size",  0 ,  10000, "number of reads processed at once [default: 10000]")
  optMaxChunks  := options.    IntLong("max-chunks",  0 ,  0,     "stop after the given number of chunks [default: all]")
  optCompress   := options.   BoolLong("compress",    0 ,         "gzip output")
  optVerbose    := options.CounterLong("verbose",    'v',         "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",       'h',         "print help")

  options.SetParameters("<INPUT.fastq> <OUTPUT.fastq>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  setLogLevel(*optVerbose)

  if v, err := strconv.ParseFloat(*optMinQuality, 64); err != nil {
    log.Fatalf("invalid minimum quality `%s'", *optMinQuality)
  } else {
    config.MinQuality = v
  }
  if *optChunkSize <= 0 {
    log.Fatalf("invalid chunk size `%d'", *optChunkSize)
  }
  config.ChunkSize = *optChunkSize
  config.MaxChunks = *optMaxChunks
  config.Compress  = *optCompress
  config.Verbose   = *optVerbose

  fastqFilter(config, options.Args()[0], options.Args()[1])
}
