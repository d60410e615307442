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

package archive

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nwaples/rardecode/v2"
)

// RARArchive reads a RAR archive. RAR is a sequential format, so every
// List and Open rescans the file from the start.
type RARArchive struct {
	file *os.File
	path string
}

// OpenRAR opens a RAR archive for reading.
func OpenRAR(path string) (*RARArchive, error) {
	file, err := os.Open(path) //nolint:gosec // user-provided path
	if err != nil {
		return nil, fmt.Errorf("open RAR archive: %w", err)
	}
	return &RARArchive{file: file, path: path}, nil
}

// Path returns the archive's location.
func (ra *RARArchive) Path() string { return ra.path }

// scan calls visit for each regular file header until visit returns true
// or the archive ends.
func (ra *RARArchive) scan(visit func(*rardecode.FileHeader, *rardecode.Reader) bool) error {
	if _, err := ra.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek RAR archive: %w", err)
	}
	reader, err := rardecode.NewReader(ra.file)
	if err != nil {
		return fmt.Errorf("create RAR reader: %w", err)
	}

	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read RAR header: %w", err)
		}
		if header.IsDir {
			continue
		}
		if visit(header, reader) {
			return nil
		}
	}
}

// List returns the regular files of the archive.
func (ra *RARArchive) List() ([]FileInfo, error) {
	var files []FileInfo
	err := ra.scan(func(header *rardecode.FileHeader, _ *rardecode.Reader) bool {
		files = append(files, FileInfo{Name: header.Name, Size: header.UnPackedSize})
		return false
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Open opens an entry of the archive. The reader is valid until the next
// call on ra.
func (ra *RARArchive) Open(internalPath string) (io.ReadCloser, int64, error) {
	var (
		found io.ReadCloser
		size  int64
	)
	err := ra.scan(func(header *rardecode.FileHeader, reader *rardecode.Reader) bool {
		if !matchEntry(header.Name, internalPath) {
			return false
		}
		found, size = io.NopCloser(reader), header.UnPackedSize
		return true
	})
	if err != nil {
		return nil, 0, err
	}
	if found == nil {
		return nil, 0, FileNotFoundError{Archive: ra.path, InternalPath: internalPath}
	}
	return found, size, nil
}

// Close closes the archive.
func (ra *RARArchive) Close() error {
	return ra.file.Close() //nolint:wrapcheck // passthrough
}
