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
	"fmt"
	"strings"

	"github.com/ZaparooProject/go-rggsave/internal/binary"
)

// Platform is a storefront whose builds mark saves differently.
type Platform int

// Known platforms. PlatformNone means no platform conversion.
const (
	PlatformNone Platform = iota
	PlatformSteam
	PlatformGamePass
)

// Storefront marker bytes.
const (
	SteamMarker    byte = 0x21
	GamePassMarker byte = 0x8F
)

// platformOffset is the distance of the marker byte from the end of a
// save. It lies in the plaintext trailer, outside the checksummed region.
const platformOffset = 12

func (p Platform) String() string {
	switch p {
	case PlatformNone:
		return "none"
	case PlatformSteam:
		return "Steam"
	case PlatformGamePass:
		return "Game Pass"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// Marker returns the save marker byte of p.
func (p Platform) Marker() (byte, bool) {
	switch p {
	case PlatformSteam:
		return SteamMarker, true
	case PlatformGamePass:
		return GamePassMarker, true
	default:
		return 0, false
	}
}

// ParsePlatform parses "steam", "gamepass" or "" (none).
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "")) {
	case "", "none":
		return PlatformNone, nil
	case "steam":
		return PlatformSteam, nil
	case "gamepass", "xbox", "msstore":
		return PlatformGamePass, nil
	}
	return PlatformNone, InvalidOptionError{Option: "platform", Value: s}
}

// PlatformOf reports the platform marked in a save, or PlatformNone when
// the marker byte is not a known one.
func PlatformOf(data []byte) Platform {
	if len(data) < platformOffset {
		return PlatformNone
	}
	switch data[len(data)-platformOffset] {
	case SteamMarker:
		return PlatformSteam
	case GamePassMarker:
		return PlatformGamePass
	default:
		return PlatformNone
	}
}

// PatchPlatform returns a copy of an encoded save with its storefront
// marker rewritten for platform. No cipher or checksum is applied.
func PatchPlatform(data []byte, p *Profile, platform Platform) ([]byte, error) {
	if p == nil {
		return nil, ErrNoProfile
	}
	if !p.Platforms {
		return nil, fmt.Errorf("%w: %s", ErrPlatformUnsupported, p.Name)
	}
	marker, ok := platform.Marker()
	if !ok {
		return nil, InvalidOptionError{Option: "platform", Value: platform.String()}
	}
	if len(data) < platformOffset {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(data), platformOffset)
	}

	out := binary.Clone(data)
	out[len(out)-platformOffset] = marker
	return out, nil
}
