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

package archive_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZaparooProject/go-rggsave/archive"
)

type entry struct {
	name string
	data []byte
}

// createTestZIP writes a ZIP archive with entries in the given order.
func createTestZIP(t *testing.T, dir, name string, entries ...entry) string {
	t.Helper()

	zipPath := filepath.Join(dir, name)
	file, err := os.Create(zipPath) //nolint:gosec // test temp dir
	if err != nil {
		t.Fatalf("create zip file: %v", err)
	}
	defer func() { _ = file.Close() }()

	writer := zip.NewWriter(file)
	for _, e := range entries {
		w, err := writer.Create(e.name)
		if err != nil {
			t.Fatalf("create %s in zip: %v", e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			t.Fatalf("write %s: %v", e.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	return zipPath
}

func openTestZIP(t *testing.T, entries ...entry) archive.Archive {
	t.Helper()

	arc, err := archive.Open(createTestZIP(t, t.TempDir(), "backup.zip", entries...))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	t.Cleanup(func() { _ = arc.Close() })
	return arc
}

func TestOpen(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	zipPath := createTestZIP(t, tmpDir, "backup.zip", entry{"data0.sav", []byte("save")})

	garbage7z := filepath.Join(tmpDir, "broken.7z")
	if err := os.WriteFile(garbage7z, []byte("not a 7z archive"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"ZIP archive", zipPath, false},
		{"missing file", filepath.Join(tmpDir, "missing.zip"), true},
		{"unsupported format", filepath.Join(tmpDir, "backup.tar"), true},
		{"corrupt 7z", garbage7z, true},
		{"missing rar", filepath.Join(tmpDir, "missing.rar"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			arc, err := archive.Open(tt.path)
			if tt.wantErr {
				if err == nil {
					_ = arc.Close()
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if arc.Path() != tt.path {
				t.Errorf("Path() = %q, want %q", arc.Path(), tt.path)
			}
			_ = arc.Close()
		})
	}
}

func TestOpenUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := archive.Open("backup.tar")
	var formatErr archive.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("Open() error = %v, want FormatError", err)
	}
	if formatErr.Format != ".tar" {
		t.Errorf("Format = %q, want .tar", formatErr.Format)
	}
}

func TestCorruptRAR(t *testing.T) {
	t.Parallel()

	rarPath := filepath.Join(t.TempDir(), "broken.rar")
	if err := os.WriteFile(rarPath, []byte("definitely not a rar archive"), 0o600); err != nil {
		t.Fatal(err)
	}

	arc, err := archive.Open(rarPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = arc.Close() }()

	if _, err := arc.List(); err == nil {
		t.Error("List() on a corrupt RAR returned no error")
	}
	if _, _, err := arc.Open("data0.sav"); err == nil {
		t.Error("Open() on a corrupt RAR returned no error")
	}
}

func TestIsArchiveExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext  string
		want bool
	}{
		{".zip", true},
		{".ZIP", true},
		{".7z", true},
		{".rar", true},
		{".sav", false},
		{".gz", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := archive.IsArchiveExtension(tt.ext); got != tt.want {
			t.Errorf("IsArchiveExtension(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestZIPArchiveList(t *testing.T) {
	t.Parallel()

	arc := openTestZIP(t,
		entry{"saves/", nil},
		entry{"saves/data0.sav", []byte("first")},
		entry{"saves/system.sys", []byte("second!")},
	)

	files, err := arc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("List() returned %d files, want 2 (directories skipped)", len(files))
	}
	if files[0].Name != "saves/data0.sav" || files[0].Size != 5 {
		t.Errorf("files[0] = %+v", files[0])
	}
	if files[1].Name != "saves/system.sys" || files[1].Size != 7 {
		t.Errorf("files[1] = %+v", files[1])
	}
}

func TestZIPArchiveOpen(t *testing.T) {
	t.Parallel()

	content := []byte("save content")
	arc := openTestZIP(t, entry{"Saves/Data0.sav", content})

	for _, name := range []string{"Saves/Data0.sav", "saves/data0.SAV", "./Saves/Data0.sav"} {
		reader, size, err := arc.Open(name)
		if err != nil {
			t.Fatalf("Open(%q) error = %v", name, err)
		}
		got, err := io.ReadAll(reader)
		_ = reader.Close()
		if err != nil {
			t.Fatalf("read %q: %v", name, err)
		}
		if size != int64(len(content)) || !bytes.Equal(got, content) {
			t.Errorf("Open(%q) = %q (%d bytes), want %q", name, got, size, content)
		}
	}
}

func TestZIPArchiveOpenMissing(t *testing.T) {
	t.Parallel()

	arc := openTestZIP(t, entry{"data0.sav", []byte("x")})

	_, _, err := arc.Open("data1.sav")
	var notFound archive.FileNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Open() error = %v, want FileNotFoundError", err)
	}
	if notFound.InternalPath != "data1.sav" {
		t.Errorf("InternalPath = %q, want data1.sav", notFound.InternalPath)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	content := bytes.Repeat([]byte{0xAB}, 4096)
	arc := openTestZIP(t, entry{"data0.sav", content})

	got, err := archive.ReadFile(arc, "data0.sav")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("ReadFile() returned %d bytes, want %d", len(got), len(content))
	}

	if _, err := archive.ReadFile(arc, "missing.sav"); err == nil {
		t.Error("ReadFile(missing) returned no error")
	}
}

func TestReadHeader(t *testing.T) {
	t.Parallel()

	arc := openTestZIP(t,
		entry{"data0.sav", []byte("0123456789abcdef")},
		entry{"tiny.sav", []byte("abc")},
	)

	header, err := archive.ReadHeader(arc, "data0.sav", 10)
	if err != nil {
		t.Fatalf("ReadHeader() error = %v", err)
	}
	if string(header) != "0123456789" {
		t.Errorf("ReadHeader() = %q, want 0123456789", header)
	}

	header, err = archive.ReadHeader(arc, "tiny.sav", 10)
	if err != nil {
		t.Fatalf("ReadHeader(tiny) error = %v", err)
	}
	if string(header) != "abc" {
		t.Errorf("ReadHeader(tiny) = %q, want abc", header)
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{archive.FormatError{Format: ".tar"}, "unsupported archive format: .tar"},
		{archive.FormatError{Format: ".7z", Reason: "encrypted"}, "unsupported archive format .7z: encrypted"},
		{archive.FileNotFoundError{Archive: "b.zip", InternalPath: "x.sav"}, `file "x.sav" not found in archive "b.zip"`},
		{archive.NoSaveFilesError{Archive: "b.zip"}, `no save files found in archive "b.zip"`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
