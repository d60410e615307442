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

// Package rggsave transcodes RGG Studio game saves between their
// ciphered on-disk form and an editable form. It identifies the title
// of a save from a hint, its file name or its magic header, then applies
// that title's cipher, checksum and payload rules.
package rggsave

import (
	"github.com/PurpleSec/logx"

	"github.com/ZaparooProject/go-rggsave/profile"
)

// Profile is an alias for profile.Profile for convenience.
type Profile = profile.Profile

// ID is an alias for profile.ID for convenience.
type ID = profile.ID

// Re-export title ids for convenience.
const (
	GameIshin           = profile.IDIshin
	GameJudgment        = profile.IDJudgment
	GameLostJudgment    = profile.IDLostJudgment
	GameGaiden          = profile.IDGaiden
	GameYakuza6         = profile.IDYakuza6
	GameYakuza7         = profile.IDYakuza7
	GameYakuza7GOG      = profile.IDYakuza7GOG
	GameKiwami2         = profile.IDKiwami2
	GameInfiniteWealth  = profile.IDInfiniteWealth
	GameVirtuaFighter5B = profile.IDVirtuaFighter5B
	GamePirateYakuza    = profile.IDPirateYakuza
)

// VerifyMode controls checksum verification when decoding.
type VerifyMode int

const (
	// VerifyOff trusts the stored checksum.
	VerifyOff VerifyMode = iota

	// VerifyWarn logs a mismatch and decodes anyway.
	VerifyWarn

	// VerifyStrict fails with a ChecksumMismatchError on mismatch.
	VerifyStrict
)

func (m VerifyMode) String() string {
	switch m {
	case VerifyOff:
		return "off"
	case VerifyWarn:
		return "warn"
	case VerifyStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParseVerifyMode parses "off", "warn" or "strict".
func ParseVerifyMode(s string) (VerifyMode, error) {
	switch s {
	case "", "off":
		return VerifyOff, nil
	case "warn":
		return VerifyWarn, nil
	case "strict":
		return VerifyStrict, nil
	}
	return VerifyOff, InvalidOptionError{Option: "verify", Value: s}
}

// Options configures identification, transcoding and file processing.
// The zero value is ready to use.
type Options struct {
	// Registry holds the known titles. Nil means profile.Default.
	Registry *profile.Registry

	// Log receives progress and warnings. Nil means logx.NOP.
	Log logx.Log

	// Verify selects checksum verification on decode.
	Verify VerifyMode

	// ForceMsgpack transcodes every title as a MessagePack payload.
	ForceMsgpack bool
}

func (o Options) registry() *profile.Registry {
	if o.Registry == nil {
		return profile.Default
	}
	return o.Registry
}

func (o Options) log() logx.Log {
	if o.Log == nil {
		return logx.NOP
	}
	return o.Log
}

// ParseID parses a title name or abbreviation.
func ParseID(name string) (ID, error) {
	return profile.ParseID(name) //nolint:wrapcheck // typed error passthrough
}

// SupportedGames returns the ids of the built-in titles in table order.
func SupportedGames() []string {
	ids := profile.Default.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
