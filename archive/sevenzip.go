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
	"fmt"
	"io"

	"github.com/bodgit/sevenzip"
)

// SevenZipArchive reads a 7z archive.
type SevenZipArchive struct {
	reader *sevenzip.ReadCloser
	path   string
}

// OpenSevenZip opens a 7z archive for reading.
func OpenSevenZip(path string) (*SevenZipArchive, error) {
	reader, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open 7z archive: %w", err)
	}
	return &SevenZipArchive{reader: reader, path: path}, nil
}

// Path returns the archive's location.
func (sa *SevenZipArchive) Path() string { return sa.path }

// List returns the regular files of the archive.
func (sa *SevenZipArchive) List() ([]FileInfo, error) {
	files := make([]FileInfo, 0, len(sa.reader.File))
	for _, file := range sa.reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		files = append(files, FileInfo{
			Name: file.Name,
			Size: int64(file.UncompressedSize), //nolint:gosec // entry sizes fit in int64
		})
	}
	return files, nil
}

// Open opens an entry of the archive. Solid archives decompress every
// entry before the requested one.
func (sa *SevenZipArchive) Open(internalPath string) (io.ReadCloser, int64, error) {
	for _, file := range sa.reader.File {
		if !matchEntry(file.Name, internalPath) {
			continue
		}
		reader, err := file.Open()
		if err != nil {
			return nil, 0, fmt.Errorf("open %s in 7z: %w", internalPath, err)
		}
		return reader, int64(file.UncompressedSize), nil //nolint:gosec // entry sizes fit in int64
	}
	return nil, 0, FileNotFoundError{Archive: sa.path, InternalPath: internalPath}
}

// Close closes the archive.
func (sa *SevenZipArchive) Close() error {
	return sa.reader.Close() //nolint:wrapcheck // passthrough
}
