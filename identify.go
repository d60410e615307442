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

	"github.com/PurpleSec/logx"

	"github.com/ZaparooProject/go-rggsave/pkg/fileio"
	"github.com/ZaparooProject/go-rggsave/profile"
)

// Method records which strategy identified a save.
type Method int

// Identification strategies, in priority order.
const (
	MethodExplicit Method = iota + 1
	MethodFilename
	MethodHeader
)

func (m Method) String() string {
	switch m {
	case MethodExplicit:
		return "explicit"
	case MethodFilename:
		return "filename"
	case MethodHeader:
		return "header"
	default:
		return "none"
	}
}

// Identifier resolves the profile of a save.
type Identifier struct {
	registry *profile.Registry
	log      logx.Log
}

// NewIdentifier returns an Identifier over the registry and log in opts.
func NewIdentifier(opts Options) *Identifier {
	return &Identifier{registry: opts.registry(), log: opts.log()}
}

// Identify resolves a profile, trying in order: explicitID when it names
// a registered title, a "_<id>." token in the base of filename, and a
// magic header prefix of header. An explicitID that is not registered is
// ignored.
func (id *Identifier) Identify(header []byte, explicitID, filename string) (*Profile, Method, error) {
	if p, method, ok := id.fromHints(explicitID, filename); ok {
		return p, method, nil
	}
	if p, ok := id.fromHeader(header); ok {
		return p, MethodHeader, nil
	}
	return nil, 0, GameNotDetectedError{Filename: filename}
}

// IdentifyFile is Identify for a file on disk. The header is read only
// when the hints do not identify the save; compressed and archived saves
// are sniffed after decompression.
func (id *Identifier) IdentifyFile(path, explicitID string) (*Profile, Method, error) {
	if p, method, ok := id.fromHints(explicitID, path); ok {
		return p, method, nil
	}

	header, err := fileio.ReadHeader(path, profile.HeaderSize)
	if err != nil {
		return nil, 0, err //nolint:wrapcheck // already names the path
	}
	if p, ok := id.fromHeader(header); ok {
		return p, MethodHeader, nil
	}
	return nil, 0, GameNotDetectedError{Filename: path}
}

func (id *Identifier) fromHints(explicitID, filename string) (*Profile, Method, bool) {
	if explicitID != "" {
		if p, ok := id.lookup(explicitID); ok {
			return p, MethodExplicit, true
		}
		id.log.Debug("Unknown game %q, detecting from the file instead.", explicitID)
	}

	if filename != "" {
		base := strings.ToLower(filepath.Base(filepath.FromSlash(filename)))
		for _, p := range id.registry.All() {
			if strings.Contains(base, p.FilenameToken()) {
				id.log.Debug("Detected game from file name %q: %s", base, p.Name)
				return p, MethodFilename, true
			}
		}
	}

	return nil, 0, false
}

func (id *Identifier) fromHeader(header []byte) (*Profile, bool) {
	for _, p := range id.registry.All() {
		if p.MatchHeader(header) {
			id.log.Info("Detected game based on file header: %s", p.Name)
			return p, true
		}
	}
	return nil, false
}

// lookup accepts a registered id verbatim or any alias ParseID knows.
func (id *Identifier) lookup(name string) (*Profile, bool) {
	if p, ok := id.registry.Lookup(profile.ID(name)); ok {
		return p, true
	}
	if parsed, err := profile.ParseID(name); err == nil {
		return id.registry.Lookup(parsed)
	}
	return nil, false
}

// Identify resolves a profile from the built-in titles.
func Identify(header []byte, explicitID, filename string) (*Profile, Method, error) {
	return NewIdentifier(Options{}).Identify(header, explicitID, filename)
}

// IdentifyFile resolves the profile of a file from the built-in titles.
func IdentifyFile(path, explicitID string) (*Profile, Method, error) {
	return NewIdentifier(Options{}).IdentifyFile(path, explicitID)
}
