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
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Path is a file reference that goes through an archive, written as
// "backup.zip/slot1_ik.sav". An empty Entry selects the first save file.
type Path struct {
	Archive string
	Entry   string
}

func (p Path) String() string {
	if p.Entry == "" {
		return p.Archive
	}
	return p.Archive + "/" + p.Entry
}

var archiveExtensions = []string{".zip", ".7z", ".rar"}

// ParsePath splits a path at an archive that exists on disk. It reports
// false when the path does not go through an archive.
func ParsePath(name string) (Path, bool, error) {
	lower := strings.ToLower(filepath.ToSlash(name))

	for _, ext := range archiveExtensions {
		idx := strings.Index(lower, ext+"/")
		if idx == -1 {
			continue
		}

		archivePath := name[:idx+len(ext)]
		ok, err := isFile(archivePath)
		if err != nil {
			return Path{}, false, err
		}
		if ok {
			return Path{Archive: archivePath, Entry: name[idx+len(ext)+1:]}, true, nil
		}
	}

	if IsArchiveExtension(filepath.Ext(name)) {
		ok, err := isFile(name)
		if err != nil || !ok {
			return Path{}, false, err
		}
		return Path{Archive: name}, true, nil
	}

	return Path{}, false, nil
}

// IsArchivePath reports whether a path names or goes through an archive,
// without touching the filesystem.
func IsArchivePath(name string) bool {
	lower := strings.ToLower(filepath.ToSlash(name))
	for _, ext := range archiveExtensions {
		if strings.Contains(lower, ext+"/") {
			return true
		}
	}
	return IsArchiveExtension(filepath.Ext(name))
}

func isFile(name string) (bool, error) {
	info, err := os.Stat(name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat archive %s: %w", name, err)
	}
	return !info.IsDir(), nil
}
