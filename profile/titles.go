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

package profile

import "github.com/ZaparooProject/go-rggsave/checksum"

// TableVersion is bumped whenever a title is added or a key changes.
const TableVersion = 3

// Keys shared by more than one title.
const (
	keyJudgmentEngine = "jKMQEv7S4l9hd"
	keyDragonEngine   = "STarYZgr3DL11"
)

// Titles is the built-in title table, in identification order.
var Titles = []Definition{
	{
		ID:        IDIshin,
		Name:      "Like a Dragon: Ishin (ik)",
		Key:       "fuEw5rWN8MBS",
		Checksum:  checksum.CRC32,
		Trailer:   TrailerEmbedded16,
		Payload:   PayloadRaw,
		Platforms: true,
		Headers: [][]byte{
			{0x72, 0x75, 0x45, 0x77, 0x21, 0x72, 0x57, 0x4e, 0x2c, 0x4d},
			{0x60, 0x75, 0x45, 0x77, 0x22, 0x72, 0x57, 0x4e, 0x2c, 0x4d},
		},
	},
	{
		ID:       IDJudgment,
		Name:     "Judgment (je)",
		Key:      "OphYnzbPoV5lj",
		Checksum: checksum.CRC32,
		Trailer:  TrailerCRC4,
		Payload:  PayloadRaw,
		Headers: [][]byte{
			{0x34, 0x52, 0x46, 0x2f, 0x0b, 0x08, 0x40, 0x6a, 0x5a, 0x7a},
			{0x34, 0x52, 0x46, 0x2f, 0x0b, 0x08, 0x40, 0x6a, 0x5d, 0x62},
		},
	},
	{
		ID:       IDLostJudgment,
		Name:     "Lost Judgment (lj)",
		Key:      keyJudgmentEngine,
		Checksum: checksum.CRC32,
		Trailer:  TrailerCRC4,
		Payload:  PayloadRaw,
		Headers: [][]byte{
			{0x11, 0x69, 0x63, 0x27, 0x20, 0x04, 0x15, 0x69, 0x00, 0x54},
		},
	},
	{
		ID:       IDGaiden,
		Name:     "Like a Dragon: Gaiden (gd)",
		Key:      keyJudgmentEngine,
		Checksum: checksum.CRC32,
		Trailer:  TrailerCRC4,
		Payload:  PayloadRaw,
		Headers: [][]byte{
			{0x11, 0x69, 0x63, 0x27, 0x20, 0x04, 0x15, 0x69, 0x01, 0x5f},
			{0x11, 0x69, 0x63, 0x27, 0x20, 0x04, 0x15, 0x69, 0x02, 0x40},
		},
	},
	{
		ID:       IDYakuza6,
		Name:     "Yakuza 6 (y6)",
		Key:      "VI3rbPckNsea7JOUMrgT",
		Checksum: checksum.VariantA,
		Trailer:  TrailerCRC4,
		Payload:  PayloadRaw,
		Headers: [][]byte{
			{0x2d, 0x6b, 0x1d, 0x04, 0x07, 0x22, 0x41, 0x51, 0x7f, 0x43},
			{0x2d, 0x6b, 0x1d, 0x04, 0x07, 0x22, 0x41, 0x51, 0x7c, 0x5f},
		},
	},
	{
		ID:       IDYakuza7,
		Name:     "Yakuza 7 (y7)",
		Key:      keyDragonEngine,
		Checksum: checksum.CRC32,
		Trailer:  TrailerCRC4,
		Payload:  PayloadRaw,
		Headers: [][]byte{
			{0x28, 0x76, 0x4f, 0x04, 0x3c, 0x28, 0x45, 0x48, 0x00, 0x72},
			{0x28, 0x76, 0x4f, 0x04, 0x3c, 0x28, 0x45, 0x48, 0x07, 0x68},
		},
	},
	{
		ID:       IDYakuza7GOG,
		Name:     "Yakuza 7 GoG (y7_gog)",
		Key:      "r3DL11STarYZg",
		Checksum: checksum.CRC32,
		Trailer:  TrailerCRC4,
		Payload:  PayloadRaw,
		Headers: [][]byte{
			{0x09, 0x11, 0x6a, 0x3a, 0x54, 0x43, 0x71, 0x6e, 0x52, 0x44},
			{0x09, 0x11, 0x6a, 0x3a, 0x54, 0x43, 0x71, 0x6e, 0x55, 0x5e},
		},
	},
	{
		ID:       IDKiwami2,
		Name:     "Yakuza Kiwami 2 (yk2)",
		Key:      keyDragonEngine,
		Checksum: checksum.CRC32,
		Trailer:  TrailerCRC4,
		Payload:  PayloadRaw,
		Headers: [][]byte{
			{0x28, 0x76, 0x4f, 0x04, 0x3c, 0x28, 0x45, 0x48, 0x02, 0x73},
			{0x28, 0x76, 0x4f, 0x04, 0x3c, 0x28, 0x45, 0x48, 0x00, 0x68},
		},
	},
	{
		ID:       IDInfiniteWealth,
		Name:     "Like a Dragon: Infinite Wealth (y8)",
		Key:      keyDragonEngine,
		Checksum: checksum.CRC32,
		Trailer:  TrailerCRC4,
		Payload:  PayloadRaw,
		Headers: [][]byte{
			{0x28, 0x76, 0x4f, 0x04, 0x3c, 0x28, 0x45, 0x48, 0x06, 0x73},
			{0x28, 0x76, 0x4f, 0x04, 0x3c, 0x28, 0x45, 0x48, 0x05, 0x68},
		},
	},
	{
		ID:       IDVirtuaFighter5B,
		Name:     "Virtua Fighter 5 Open Beta (v5b)",
		Key:      keyDragonEngine,
		Checksum: checksum.CRC32,
		Trailer:  TrailerCRC4,
		Payload:  PayloadRaw,
		Headers: [][]byte{
			{0x28, 0x76, 0x4f, 0x04, 0x3c, 0x28, 0x45, 0x48, 0x02, 0x68},
		},
	},
	{
		ID:       IDPirateYakuza,
		Name:     "Like a Dragon: Pirate Yakuza In Hawaii (yp)",
		Key:      keyDragonEngine,
		Checksum: checksum.CRC32,
		Trailer:  TrailerCRC4,
		Payload:  PayloadMsgpack,
		Headers: [][]byte{
			{0x8d, 0x54, 0x46, 0xd6, 0x77, 0x2c, 0x02, 0x00, 0x70, 0xe1},
			{0xdb, 0xf0, 0x4f, 0x04, 0x3c, 0x28, 0x6f, 0xd7, 0x5a, 0x2a},
		},
	},
}

// Default is the registry built from Titles.
var Default = MustRegistry(Titles...)

// Get returns a profile from the Default registry.
func Get(id ID) (*Profile, error) {
	return Default.Get(id)
}

// All returns the Default registry's profiles in table order.
func All() []*Profile {
	return Default.All()
}
