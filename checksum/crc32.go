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

package checksum

import "hash/crc32"

func init() {
	Register(crc32Algorithm{})
}

// crc32Algorithm is the IEEE CRC-32 (reflected polynomial 0xEDB88320).
type crc32Algorithm struct{}

func (crc32Algorithm) Sum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

func (crc32Algorithm) Kind() Kind { return CRC32 }
