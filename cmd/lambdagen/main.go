// Copyright 2017 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// lambdagen is the external driver for the sampler and naming engine: it
// generates mixed expressions up to a maximum depth, converts each to fully
// named form, deduplicates the result modulo alpha-equivalence, and writes
// one pretty-printed expression per line to a file.
//
// It is a collaborator of the core, not part of it: none of its flag
// parsing, file writing, or logging is exercised by the naming engine's own
// tests.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/oarkflow/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/google/lambdacalc/lang/alpha"
	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/metrics"
	"github.com/google/lambdacalc/lang/naming"
	"github.com/google/lambdacalc/lang/namegen"
	"github.com/google/lambdacalc/lang/render"
	"github.com/google/lambdacalc/lang/renv"
	"github.com/google/lambdacalc/lang/sample"
	"github.com/google/lambdacalc/lang/strs"
)

var (
	maxDepthFlag    = flag.Int("max-depth", 5, "maximum nesting depth to sample")
	perDepthFlag    = flag.Int("per-depth", 50, "number of expressions to sample at each depth")
	outFlag         = flag.String("out", "", "output file path (required)")
	widthFlag       = flag.Int("width", 80, "column width for pretty-printing")
	seedFlag        = flag.Int64("seed", 1, "base seed for the sampler; depth d uses seed+d")
	parallelismFlag = flag.Int("parallelism", 4, "number of depths to sample concurrently")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: lambdagen -out FILE [flags]\n")
	flag.PrintDefaults()
}

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = usage
	flag.Parse()

	if *outFlag == "" {
		usage()
		return errors.New("lambdagen: -out is required")
	}
	if *maxDepthFlag < 0 {
		return errors.New("lambdagen: -max-depth must be >= 0")
	}
	if *perDepthFlag < 1 {
		return errors.New("lambdagen: -per-depth must be >= 1")
	}

	runID := uuid.New().String()
	logger := log.New(os.Stderr)
	logger.Info().Str("run_id", runID).Int("max_depth", *maxDepthFlag).Int("per_depth", *perDepthFlag).Msg("starting generation")

	lines, err := generate(*maxDepthFlag, *perDepthFlag, *seedFlag, *widthFlag, *parallelismFlag, runID, logger)
	if err != nil {
		return errors.Wrap(err, "lambdagen: generate")
	}

	if err := os.WriteFile(*outFlag, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return errors.Wrapf(err, "lambdagen: writing %s", *outFlag)
	}
	logger.Info().Str("run_id", runID).Int("count", len(lines)).Str("path", *outFlag).Msg("wrote samples")
	return nil
}

// depthResult is one depth's batch of pretty-printed expressions, along with
// the alpha-equivalence-checked arena each was drawn into (kept alive only
// long enough to dedupe against earlier depths).
type depthResult struct {
	depth   int
	entries []namedExpr
}

type namedExpr struct {
	a      *arena.Arena
	intern *strs.Interner
	id     arena.ID
	text   string
}

// generate samples perDepth expressions at every depth from 0 to maxDepth
// inclusive, converts each to fully named form, and deduplicates modulo
// alpha-equivalence across the whole run. Depths are sampled concurrently
// (each depth owns an independent interner and arenas, per the core's
// single-conversion ownership model), then merged and deduped sequentially
// since dedup is inherently a cross-depth, shared-state operation.
func generate(maxDepth, perDepth int, seed int64, width, parallelism int, runID string, logger *log.Logger) ([]string, error) {
	results := make([]depthResult, maxDepth+1)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(parallelism)
	for d := 0; d <= maxDepth; d++ {
		d := d
		g.Go(func() error {
			entries, err := sampleDepth(d, perDepth, seed+int64(d), width)
			if err != nil {
				return errors.Wrapf(err, "sampling depth %d", d)
			}
			results[d] = depthResult{depth: d, entries: entries}
			logger.Info().Str("run_id", runID).Int("depth", d).Int("sampled", len(entries)).
				Int("max_size", maxSize(entries)).Int("max_height", maxHeight(entries)).Msg("depth complete")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dedupe(results), nil
}

func maxSize(entries []namedExpr) int {
	m := 0
	for _, e := range entries {
		if s := metrics.Size(e.a, e.id); s > m {
			m = s
		}
	}
	return m
}

func maxHeight(entries []namedExpr) int {
	m := 0
	for _, e := range entries {
		if h := metrics.Height(e.a, e.id); h > m {
			m = h
		}
	}
	return m
}

func sampleDepth(depth, perDepth int, seed int64, width int) ([]namedExpr, error) {
	out := make([]namedExpr, 0, perDepth)
	s := sample.New(seed, depth, sample.DefaultWeights())
	for i := 0; i < perDepth; i++ {
		intern := strs.New()
		src := arena.New()
		e := s.Expression(src, intern)

		dst := arena.New()
		namedID := naming.Convert(intern, src, e, dst, namegen.DefaultBaseCycle())

		out = append(out, namedExpr{
			a:      dst,
			intern: intern,
			id:     namedID,
			text:   render.Pretty(dst, intern, namedID, width),
		})
	}
	return out, nil
}

// dedupe collects every depth's entries in depth order and drops any entry
// that is alpha-equivalent to one already kept.
func dedupe(results []depthResult) []string {
	var kept []namedExpr
	var lines []string

	for _, r := range results {
		for _, e := range r.entries {
			if isDuplicate(kept, e) {
				continue
			}
			kept = append(kept, e)
			lines = append(lines, e.text)
		}
	}
	return lines
}

func isDuplicate(kept []namedExpr, e namedExpr) bool {
	for _, k := range kept {
		if alpha.Equivalent(
			alpha.Side{Env: renv.New(nil), Arena: k.a, Expr: k.id},
			alpha.Side{Env: renv.New(nil), Arena: e.a, Expr: e.id},
		) {
			return true
		}
	}
	return false
}
