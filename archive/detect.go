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
	"path"
	"strings"
)

// saveExtensions are the entry extensions treated as saves.
var saveExtensions = map[string]bool{
	".sav":  true,
	".sys":  true,
	".json": true,
}

// IsSaveFile reports whether an entry name looks like a save or a decoded
// save. macOS resource-fork entries are never saves.
func IsSaveFile(name string) bool {
	if strings.HasPrefix(name, "__MACOSX/") || strings.HasPrefix(path.Base(name), "._") {
		return false
	}
	return saveExtensions[strings.ToLower(path.Ext(name))]
}

// SaveFiles returns the save entries of arc in archive order.
func SaveFiles(arc Archive) ([]FileInfo, error) {
	files, err := arc.List()
	if err != nil {
		return nil, fmt.Errorf("list archive files: %w", err)
	}

	saves := make([]FileInfo, 0, len(files))
	for _, file := range files {
		if IsSaveFile(file.Name) {
			saves = append(saves, file)
		}
	}
	return saves, nil
}

// DetectSaveFile returns the first save entry of arc.
func DetectSaveFile(arc Archive) (string, error) {
	saves, err := SaveFiles(arc)
	if err != nil {
		return "", err
	}
	if len(saves) == 0 {
		return "", NoSaveFilesError{Archive: arc.Path()}
	}
	return saves[0].Name, nil
}
