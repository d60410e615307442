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
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/go-rggsave/pkg/fileio"
)

// Extension to direction mapping
var extToDirection = map[string]Direction{
	".json": Encode,
	".sav":  Decode,
	".sys":  Decode,
}

// DetectDirection infers the direction from the extension of path, after
// removing a compression suffix. It is case-insensitive.
func DetectDirection(path string) (Direction, error) {
	ext := fileio.Ext(path)
	if dir, ok := extToDirection[ext]; ok {
		return dir, nil
	}
	return 0, UnsupportedFileTypeError{Path: path, Ext: ext}
}

// DefaultOutputPath names the output of transcoding source next to it. A
// compression suffix on source is dropped, so outputs are uncompressed.
//
//	encode:   dir/slot1_ik.json -> dir/slot1.sav
//	decode:   dir/slot1.sav     -> dir/slot1_ik.json
//	platform: dir/slot1.sav     -> dir/slot1_converted.sav
func DefaultOutputPath(source string, dir Direction, p *Profile, platform Platform) string {
	source = fileio.StripCompressionExt(source)
	ext := filepath.Ext(source)
	stem := strings.TrimSuffix(source, ext)

	if platform != PlatformNone {
		return stem + "_converted" + ext
	}

	if dir == Encode {
		base := filepath.Base(stem)
		if head, _, _ := strings.Cut(base, "_"); head != "" {
			base = head
		}
		return filepath.Join(filepath.Dir(stem), base+".sav")
	}

	id := "unknown"
	if p != nil {
		id = string(p.ID)
	}
	return stem + "_" + id + ".json"
}
