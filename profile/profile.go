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

// Package profile describes the per-title save formats and holds the
// registry of supported titles.
package profile

import (
	"fmt"
	"strings"

	"github.com/ZaparooProject/go-rggsave/checksum"
	"github.com/ZaparooProject/go-rggsave/cipher"
)

// ID is the short, stable identifier of a title (e.g. "ik", "y7_gog").
type ID string

// Supported title identifiers.
const (
	IDIshin           ID = "ik"
	IDJudgment        ID = "je"
	IDLostJudgment    ID = "lj"
	IDGaiden          ID = "gd"
	IDYakuza6         ID = "y6"
	IDYakuza7         ID = "y7"
	IDYakuza7GOG      ID = "y7_gog"
	IDKiwami2         ID = "yk2"
	IDInfiniteWealth  ID = "y8"
	IDVirtuaFighter5B ID = "v5b"
	IDPirateYakuza    ID = "yp"
)

// HeaderSize is the length of every magic header, and the number of bytes
// read from a file for identification.
const HeaderSize = 10

// TrailerMode describes the fixed-size suffix that is excluded from the
// cipher pass and where its checksum lives.
type TrailerMode int

const (
	// TrailerNone has no trailer and no checksum.
	TrailerNone TrailerMode = iota

	// TrailerCRC4 is a 4-byte checksum appended after the ciphered data,
	// computed over the whole plaintext.
	TrailerCRC4

	// TrailerEmbedded16 keeps the last 16 bytes in plaintext and stores a
	// checksum of the plaintext cipherable region at trailer bytes 8..12.
	TrailerEmbedded16
)

// Size returns the number of trailing bytes excluded from the cipher.
func (m TrailerMode) Size() int {
	switch m {
	case TrailerCRC4:
		return checksum.Size
	case TrailerEmbedded16:
		return 16
	default:
		return 0
	}
}

// ChecksumOffset returns the offset of the checksum within the trailer.
func (m TrailerMode) ChecksumOffset() int {
	if m == TrailerEmbedded16 {
		return 8
	}
	return 0
}

func (m TrailerMode) String() string {
	switch m {
	case TrailerNone:
		return "none"
	case TrailerCRC4:
		return "crc4"
	case TrailerEmbedded16:
		return "embedded16"
	default:
		return fmt.Sprintf("TrailerMode(%d)", int(m))
	}
}

// PayloadMode describes what the deciphered bytes are.
type PayloadMode int

const (
	// PayloadRaw is an opaque byte payload, transcoded as-is.
	PayloadRaw PayloadMode = iota

	// PayloadMsgpack is a MessagePack document, transcoded to and from JSON.
	PayloadMsgpack
)

func (m PayloadMode) String() string {
	switch m {
	case PayloadRaw:
		return "raw"
	case PayloadMsgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("PayloadMode(%d)", int(m))
	}
}

// Profile is the save format of one title. Profiles are immutable once
// placed in a Registry.
type Profile struct {
	ID       ID
	Name     string
	Checksum checksum.Kind
	Trailer  TrailerMode
	Payload  PayloadMode

	// Platforms is true for titles whose saves carry a storefront byte
	// that can be rewritten with a platform patch.
	Platforms bool

	key     []byte
	headers [][]byte
}

// Definition holds the fields used to build a Profile.
type Definition struct {
	ID        ID
	Name      string
	Key       string
	Checksum  checksum.Kind
	Trailer   TrailerMode
	Payload   PayloadMode
	Platforms bool
	Headers   [][]byte
}

// newProfile copies a Definition so later edits to its slices cannot
// reach the registry.
func newProfile(s Definition) *Profile {
	headers := make([][]byte, len(s.Headers))
	for i, h := range s.Headers {
		headers[i] = append([]byte(nil), h...)
	}
	return &Profile{
		ID:        s.ID,
		Name:      s.Name,
		Checksum:  s.Checksum,
		Trailer:   s.Trailer,
		Payload:   s.Payload,
		Platforms: s.Platforms,
		key:       []byte(s.Key),
		headers:   headers,
	}
}

// Key returns a copy of the cipher key.
func (p *Profile) Key() cipher.XOR {
	return append(cipher.XOR(nil), p.key...)
}

// Headers returns a copy of the magic headers.
func (p *Profile) Headers() [][]byte {
	out := make([][]byte, len(p.headers))
	for i, h := range p.headers {
		out[i] = append([]byte(nil), h...)
	}
	return out
}

// MatchHeader reports whether header starts with one of the profile's
// magic sequences.
func (p *Profile) MatchHeader(header []byte) bool {
	for _, h := range p.headers {
		if len(header) >= len(h) && string(header[:len(h)]) == string(h) {
			return true
		}
	}
	return false
}

// FilenameToken is the marker that identifies this profile in a file
// name, e.g. "_ik." for Ishin.
func (p *Profile) FilenameToken() string {
	return "_" + string(p.ID) + "."
}

func (p *Profile) String() string {
	return p.Name
}

// ParseID parses a title name or abbreviation. It is case-insensitive and
// accepts a few common names besides the abbreviations.
func ParseID(name string) (ID, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "ik", "ishin":
		return IDIshin, nil
	case "je", "judgment":
		return IDJudgment, nil
	case "lj", "lostjudgment":
		return IDLostJudgment, nil
	case "gd", "gaiden":
		return IDGaiden, nil
	case "y6", "yakuza6":
		return IDYakuza6, nil
	case "y7", "yakuza7", "ylad":
		return IDYakuza7, nil
	case "y7_gog", "y7gog":
		return IDYakuza7GOG, nil
	case "yk2", "kiwami2":
		return IDKiwami2, nil
	case "y8", "infinitewealth":
		return IDInfiniteWealth, nil
	case "v5b", "vf5":
		return IDVirtuaFighter5B, nil
	case "yp", "pirate", "pirateyakuza":
		return IDPirateYakuza, nil
	}

	return "", UnknownProfileError{ID: name}
}
