// Copyright (c) 2025 Niema Moshiri and The Zaparoo Project.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-rggsave.
//
// go-rggsave is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-rggsave is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-rggsave.  If not, see <https://www.gnu.org/licenses/>.

package rggsave

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ProcessFiles runs jobs with at most limit files in flight; limit <= 0
// means GOMAXPROCS. Results are in job order and a failed job does not
// stop the others. Jobs not yet started when ctx is cancelled fail with
// the context error.
func (pr *Processor) ProcessFiles(ctx context.Context, jobs []Job, limit int) []Result {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(jobs))
	var g errgroup.Group
	g.SetLimit(limit)

	for i, job := range jobs {
		g.Go(func() error {
			res, err := pr.ProcessFile(ctx, job)
			res.Err = err
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	pr.log.Debug("Processed %d files, %d failed.", len(jobs), failed)

	return results
}

// ProcessFiles processes jobs concurrently with opts.
func ProcessFiles(ctx context.Context, jobs []Job, limit int, opts Options) []Result {
	return NewProcessor(opts).ProcessFiles(ctx, jobs, limit)
}
