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
	"errors"
	"fmt"

	"github.com/ZaparooProject/go-rggsave/internal/binary"
)

var (
	// ErrTruncated indicates an input too short for its trailer or for a
	// platform patch.
	ErrTruncated = binary.ErrTruncated

	// ErrChecksumMismatch is matched by every ChecksumMismatchError.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrPlatformUnsupported indicates a platform patch for a title that
	// has no storefront marker.
	ErrPlatformUnsupported = errors.New("platform conversion not supported")

	// ErrNoProfile indicates a request without a resolved profile.
	ErrNoProfile = errors.New("no profile")
)

// GameNotDetectedError is returned when no strategy identifies a save.
type GameNotDetectedError struct {
	Filename string
}

func (e GameNotDetectedError) Error() string {
	if e.Filename == "" {
		return "failed to detect game, please specify a game abbreviation"
	}
	return fmt.Sprintf("failed to detect game for %q, please specify a game abbreviation", e.Filename)
}

// ChecksumMismatchError reports a stored checksum that does not match the
// decoded data.
type ChecksumMismatchError struct {
	ID       ID
	Stored   uint32
	Computed uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("%s: checksum mismatch: stored 0x%08X, computed 0x%08X", e.ID, e.Stored, e.Computed)
}

func (e *ChecksumMismatchError) Unwrap() error {
	return ErrChecksumMismatch
}

// UnsupportedFileTypeError is returned for an input whose extension does
// not select a direction.
type UnsupportedFileTypeError struct {
	Path string
	Ext  string
}

func (e UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %s", e.Ext, e.Path)
}

// InvalidOptionError reports an option value that cannot be parsed.
type InvalidOptionError struct {
	Option string
	Value  string
}

func (e InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Option, e.Value)
}
