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

// Package fileio reads and writes whole save files. Reads see through
// .gz, .zst and .xz compression and archive paths; writes are atomic and
// compress by extension.
package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/go-rggsave/archive"
	"github.com/ZaparooProject/go-rggsave/internal/binary"
)

// MaxSize caps the decompressed size of a file read with ReadFile.
const MaxSize = archive.MaxEntrySize

var (
	// ErrTooLarge indicates a file that decompresses past MaxSize.
	ErrTooLarge = errors.New("file too large")

	// ErrArchiveWrite indicates an output path inside an archive.
	ErrArchiveWrite = errors.New("cannot write into an archive")
)

// multiCloser closes a reader stack from the outermost layer in.
type multiCloser struct {
	reader  io.Reader
	closers []io.Closer
}

func (mc *multiCloser) Read(p []byte) (int, error) {
	return mc.reader.Read(p) //nolint:wrapcheck // passthrough
}

func (mc *multiCloser) Close() error {
	var err error
	for _, c := range mc.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path for reading its logical content. A path through an
// archive such as "backup.zip/slot1_ik.sav" reads that entry, and a bare
// archive path reads its first save file.
func Open(path string) (io.ReadCloser, error) {
	ap, ok, err := archive.ParsePath(path)
	if err != nil {
		return nil, err
	}
	if ok {
		return openInArchive(ap)
	}

	file, err := os.Open(path) //nolint:gosec // user-provided path
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return wrap(file, []io.Closer{file}, CompressionOf(path))
}

// Resolve splits a path that goes through an archive and fills in the
// entry of a bare archive path with its first save file. It reports false
// for plain paths.
func Resolve(path string) (archive.Path, bool, error) {
	ap, ok, err := archive.ParsePath(path)
	if err != nil || !ok {
		return archive.Path{}, false, err
	}
	if ap.Entry != "" {
		return ap, true, nil
	}

	err = withEntry(ap, func(_ archive.Archive, entry string) error {
		ap.Entry = entry
		return nil
	})
	if err != nil {
		return archive.Path{}, false, err
	}
	return ap, true, nil
}

// withEntry opens the archive of ap and calls fn with the entry it names,
// or with its first save file when ap has no entry.
func withEntry(ap archive.Path, fn func(arc archive.Archive, entry string) error) error {
	arc, err := archive.Open(ap.Archive)
	if err != nil {
		return err
	}
	defer func() { _ = arc.Close() }()

	entry := ap.Entry
	if entry == "" {
		if entry, err = archive.DetectSaveFile(arc); err != nil {
			return err
		}
	}
	return fn(arc, entry)
}

// openInArchive reads the whole entry under the archive size cap and
// decompresses from memory, so the archive is closed on return.
func openInArchive(ap archive.Path) (io.ReadCloser, error) {
	var (
		data  []byte
		entry string
	)
	err := withEntry(ap, func(arc archive.Archive, name string) error {
		var err error
		entry = name
		data, err = archive.ReadFile(arc, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return wrap(bytes.NewReader(data), nil, CompressionOf(entry))
}

// wrap stacks a decompressor over r. On failure the closers are closed.
func wrap(r io.Reader, closers []io.Closer, c Compression) (io.ReadCloser, error) {
	if c == None {
		return &multiCloser{reader: r, closers: closers}, nil
	}

	dec, err := Decompress(r, c)
	if err != nil {
		for _, closer := range closers {
			_ = closer.Close()
		}
		return nil, err
	}
	return &multiCloser{reader: dec, closers: append([]io.Closer{dec}, closers...)}, nil
}

// ReadFile reads the whole logical content of path.
func ReadFile(path string) ([]byte, error) {
	reader, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(io.LimitReader(reader, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, path, MaxSize)
	}
	return data, nil
}

// ReadHeader reads at most n bytes of the logical content of path. An
// uncompressed archive entry is read only as far as the header.
func ReadHeader(path string, n int) ([]byte, error) {
	ap, ok, err := archive.ParsePath(path)
	if err != nil {
		return nil, err
	}
	if ok {
		var header []byte
		handled := false
		err = withEntry(ap, func(arc archive.Archive, entry string) error {
			if CompressionOf(entry) != None {
				return nil
			}
			handled = true
			var rerr error
			header, rerr = archive.ReadHeader(arc, entry, n)
			return rerr
		})
		if err != nil || handled {
			return header, err
		}
	}

	reader, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	header, err := binary.ReadHeaderFrom(reader, n)
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	return header, nil
}

// WriteFile writes data to path through a temporary file in the same
// directory, so readers never see a partial file. The data is compressed
// when path ends in .gz, .zst or .xz.
func WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	if archive.IsArchivePath(path) {
		if _, ok, _ := archive.ParsePath(path); ok {
			return fmt.Errorf("%w: %s", ErrArchiveWrite, path)
		}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return fmt.Errorf("create temporary file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w, err := Compress(tmp, CompressionOf(path))
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("finish %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

// Ext returns the lowercase extension of name after removing a
// compression suffix, e.g. ".sav" for "slot1_ik.SAV.gz".
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(StripCompressionExt(name)))
}
