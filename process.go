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
	"fmt"
	"path"
	"path/filepath"

	"github.com/PurpleSec/logx"

	"github.com/ZaparooProject/go-rggsave/pkg/fileio"
	"github.com/ZaparooProject/go-rggsave/profile"
)

// OutputPerm is the mode of files written by ProcessFile.
const OutputPerm = 0o644

// Job is one file to transcode. Output and Game are optional; a Game that
// names no registered title fails the job. Platform requests a storefront
// patch instead of encoding or decoding, and still requires a .json, .sav
// or .sys input.
type Job struct {
	Input    string
	Output   string
	Game     string
	Platform Platform
}

// Result describes a processed job.
type Result struct {
	Input     string
	Output    string
	Profile   *Profile
	Method    Method
	Direction Direction
	Err       error
}

// Processor runs jobs against files. It is safe for concurrent use.
type Processor struct {
	identifier *Identifier
	transcoder *Transcoder
	log        logx.Log
}

// NewProcessor returns a Processor configured by opts.
func NewProcessor(opts Options) *Processor {
	return &Processor{
		identifier: NewIdentifier(opts),
		transcoder: NewTranscoder(opts),
		log:        opts.log(),
	}
}

// ProcessFile identifies, reads, transcodes and writes one file. Nothing
// is written unless transcoding succeeds. Inputs inside an archive are
// written next to the archive.
func (pr *Processor) ProcessFile(ctx context.Context, job Job) (Result, error) {
	res := Result{Input: job.Input}
	if err := ctx.Err(); err != nil {
		return res, err //nolint:wrapcheck // context errors are sentinels
	}

	source, location := job.Input, job.Input
	ap, inArchive, err := fileio.Resolve(job.Input)
	if err != nil {
		return res, fmt.Errorf("resolve %s: %w", job.Input, err)
	}
	if inArchive {
		source = ap.String()
		location = filepath.Join(filepath.Dir(ap.Archive), path.Base(ap.Entry))
	}

	dir, err := DetectDirection(location)
	if err != nil {
		return res, err
	}
	if job.Platform == PlatformNone {
		res.Direction = dir
	}

	if job.Game != "" {
		if _, ok := pr.identifier.lookup(job.Game); !ok {
			return res, profile.UnknownProfileError{ID: job.Game}
		}
	}

	if res.Profile, res.Method, err = pr.identifier.IdentifyFile(source, job.Game); err != nil {
		return res, err
	}
	pr.log.Debug("Using %s for %q (%s).", res.Profile.Name, job.Input, res.Method)

	data, err := fileio.ReadFile(source)
	if err != nil {
		return res, err //nolint:wrapcheck // already names the path
	}

	out, err := pr.transcoder.Transcode(Request{
		Data:      data,
		Profile:   res.Profile,
		Direction: res.Direction,
		Platform:  job.Platform,
	})
	if err != nil {
		return res, err
	}

	res.Output = job.Output
	if res.Output == "" {
		res.Output = DefaultOutputPath(location, res.Direction, res.Profile, job.Platform)
	}
	if err := fileio.WriteFile(res.Output, out, OutputPerm); err != nil {
		return res, err //nolint:wrapcheck // already names the path
	}

	pr.log.Info("Processed %q to %q", job.Input, res.Output)
	return res, nil
}

// ProcessFile processes one file with opts.
func ProcessFile(ctx context.Context, job Job, opts Options) (Result, error) {
	return NewProcessor(opts).ProcessFile(ctx, job)
}
