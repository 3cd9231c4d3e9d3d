// Copyright (C) 2022 CYBERCRYPT
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// kbkdf-verify runs NIST CAVP response files against the KDF engines and
// reports per-section results. The derivation mode is inferred from each
// file name (KDFCTR, KDFFeedback, KDFDblPipeline).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gofrs/uuid"
	json "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/cybercryptio/kbkdf/log"
	"github.com/cybercryptio/kbkdf/vectors"
)

type sectionReport struct {
	PRF             string `json:"prf"`
	CounterLocation string `json:"ctrLocation,omitempty"`
	CounterBits     int    `json:"rlen,omitempty"`
	Passed          int    `json:"passed"`
	Failed          int    `json:"failed"`
}

type fileReport struct {
	File     string          `json:"file"`
	Mode     string          `json:"mode"`
	Sections []sectionReport `json:"sections"`
	Passed   int             `json:"passed"`
	Failed   int             `json:"failed"`
}

type runReport struct {
	RunID  string       `json:"runId"`
	Files  []fileReport `json:"files"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

func main() {
	os.Exit(run())
}

func run() int {
	jsonOut := flag.Bool("json", false, "write a JSON summary to stdout")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: kbkdf-verify [-json] <rsp file>...")
		return 2
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	runID, err := uuid.NewV4()
	if err != nil {
		logger.Error().Err(err).Msg("generating run ID")
		return 1
	}
	log.WithRunID(&logger, runID)

	report := runReport{RunID: runID.String()}
	for _, path := range flag.Args() {
		fr, err := verifyFile(logger, path)
		if err != nil {
			logger.Error().Err(err).Str("file", path).Msg("verification aborted")
			return 1
		}
		report.Files = append(report.Files, fr)
		report.Passed += fr.Passed
		report.Failed += fr.Failed
	}

	logger.Info().Int("passed", report.Passed).Int("failed", report.Failed).Msg("verification finished")
	if *jsonOut {
		if err := json.NewEncoder(os.Stdout).Encode(report); err != nil {
			logger.Error().Err(err).Msg("encoding report")
			return 1
		}
	}
	if report.Failed > 0 {
		return 1
	}
	return 0
}

func verifyFile(logger zerolog.Logger, path string) (fileReport, error) {
	mode, ok := vectors.ModeForFile(path)
	if !ok {
		return fileReport{}, fmt.Errorf("cannot infer derivation mode from file name %q", path)
	}
	log.WithVectorFile(&logger, path)
	log.WithMode(&logger, mode.String())

	sections, err := vectors.ParseFile(path)
	if err != nil {
		return fileReport{}, err
	}

	fr := fileReport{File: path, Mode: mode.String()}
	for i := range sections {
		sec := &sections[i]
		sr := sectionReport{
			PRF:             sec.PRF,
			CounterLocation: sec.CounterLocation,
			CounterBits:     sec.CounterBits,
		}
		for j := range sec.Vectors {
			v := &sec.Vectors[j]
			got, err := vectors.Derive(mode, sec, v)
			if err != nil {
				logger.Error().Err(err).
					Str("prf", sec.PRF).
					Int("count", v.Count).
					Msg("derivation failed")
				sr.Failed++
				continue
			}
			if !v.Matches(got) {
				logger.Error().
					Str("prf", sec.PRF).
					Str("ctrLocation", sec.CounterLocation).
					Int("rlen", sec.CounterBits).
					Int("count", v.Count).
					Hex("got", got).
					Hex("want", v.Output).
					Msg("output mismatch")
				sr.Failed++
				continue
			}
			sr.Passed++
		}
		fr.Sections = append(fr.Sections, sr)
		fr.Passed += sr.Passed
		fr.Failed += sr.Failed
	}
	return fr, nil
}
