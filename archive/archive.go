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

// Package archive reads save files out of .zip, .7z and .rar backups.
package archive

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/go-rggsave/internal/binary"
)

// MaxEntrySize caps how much of a single entry is read into memory.
const MaxEntrySize = 256 << 20

// FileInfo describes a regular file inside an archive.
type FileInfo struct {
	Name string // Path within the archive, slash separated
	Size int64  // Uncompressed size
}

// Archive provides read access to the files of one archive.
type Archive interface {
	// Path returns the archive's location on disk.
	Path() string

	// List returns the regular files in archive order.
	List() ([]FileInfo, error)

	// Open opens an entry, matched case-insensitively, and returns its
	// uncompressed size.
	Open(internalPath string) (io.ReadCloser, int64, error)

	Close() error
}

// Open opens an archive by extension.
func Open(path string) (Archive, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".zip":
		return OpenZIP(path)
	case ".7z":
		return OpenSevenZip(path)
	case ".rar":
		return OpenRAR(path)
	default:
		return nil, FormatError{Format: ext}
	}
}

// IsArchiveExtension reports whether ext is .zip, .7z or .rar.
func IsArchiveExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".zip", ".7z", ".rar":
		return true
	default:
		return false
	}
}

// ReadFile reads a whole entry into memory.
func ReadFile(arc Archive, internalPath string) ([]byte, error) {
	reader, size, err := arc.Open(internalPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	if size > MaxEntrySize {
		return nil, EntryTooLargeError{Archive: arc.Path(), InternalPath: internalPath, Size: size}
	}

	data, err := io.ReadAll(io.LimitReader(reader, MaxEntrySize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s from archive: %w", internalPath, err)
	}
	if len(data) > MaxEntrySize {
		return nil, EntryTooLargeError{Archive: arc.Path(), InternalPath: internalPath, Size: int64(len(data))}
	}
	return data, nil
}

// ReadHeader reads at most n bytes from the start of an entry.
func ReadHeader(arc Archive, internalPath string, n int) ([]byte, error) {
	reader, _, err := arc.Open(internalPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	header, err := binary.ReadHeaderFrom(reader, n)
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", internalPath, err)
	}
	return header, nil
}

// matchEntry reports whether an archive entry name refers to internalPath.
func matchEntry(name, internalPath string) bool {
	return strings.EqualFold(strings.TrimPrefix(name, "./"), strings.TrimPrefix(filepath.ToSlash(internalPath), "./"))
}
