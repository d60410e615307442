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
	"path/filepath"
	"testing"
)

func TestDetectDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Direction
		wantErr bool
	}{
		{"slot1_ik.json", Encode, false},
		{"slot1.SAV", Decode, false},
		{"system.sys", Decode, false},
		{"slot1.sav.gz", Decode, false},
		{"slot1_yp.json.zst", Encode, false},
		{filepath.Join("saves.json", "slot1.sav"), Decode, false},
		{"notes.txt", 0, true},
		{"slot1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := DetectDirection(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectDirection() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DetectDirection() = %v, want %v", got, tt.want)
			}
			var unsupported UnsupportedFileTypeError
			if tt.wantErr && !errors.As(err, &unsupported) {
				t.Errorf("DetectDirection() error = %T, want UnsupportedFileTypeError", err)
			}
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	t.Parallel()

	ik := mustProfile(t, GameIshin)
	dir := filepath.Join("my_saves", "slot")

	tests := []struct {
		name     string
		source   string
		dir      Direction
		profile  *Profile
		platform Platform
		want     string
	}{
		{"encode", filepath.Join(dir, "slot1_ik.json"), Encode, ik, PlatformNone, filepath.Join(dir, "slot1.sav")},
		{"encode compressed", filepath.Join(dir, "slot1_ik.json.gz"), Encode, ik, PlatformNone, filepath.Join(dir, "slot1.sav")},
		{"encode without underscore", "slot1.json", Encode, ik, PlatformNone, "slot1.sav"},
		{"encode leading underscore", "_ik.json", Encode, ik, PlatformNone, "_ik.sav"},
		{"decode", filepath.Join(dir, "slot1.sav"), Decode, ik, PlatformNone, filepath.Join(dir, "slot1_ik.json")},
		{"decode compressed", "slot1.sav.xz", Decode, ik, PlatformNone, "slot1_ik.json"},
		{"decode without profile", "slot1.sav", Decode, nil, PlatformNone, "slot1_unknown.json"},
		{"platform", filepath.Join(dir, "slot1.sav"), 0, ik, PlatformSteam, filepath.Join(dir, "slot1_converted.sav")},
		{"platform keeps extension", "system.sys", 0, ik, PlatformGamePass, "system_converted.sys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DefaultOutputPath(tt.source, tt.dir, tt.profile, tt.platform); got != tt.want {
				t.Errorf("DefaultOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
