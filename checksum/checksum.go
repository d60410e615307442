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

// Package checksum implements the checksums embedded in save trailers.
package checksum

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
)

// Size is the number of bytes a checksum occupies in a save trailer.
const Size = 4

// Kind selects a checksum algorithm.
type Kind string

// Supported checksum kinds.
const (
	// CRC32 is the standard IEEE CRC-32.
	CRC32 Kind = "crc32"

	// VariantA is the two-accumulator modular checksum used by Yakuza 6.
	VariantA Kind = "variant-a"
)

// ErrUnsupportedKind indicates no algorithm is registered for a kind.
var ErrUnsupportedKind = errors.New("unsupported checksum kind")

// Algorithm computes a 32-bit checksum over a byte slice.
type Algorithm interface {
	// Sum returns the checksum of data. It must be a pure function.
	Sum(data []byte) uint32

	// Kind returns the kind this algorithm implements.
	Kind() Kind
}

var (
	registry   = make(map[Kind]Algorithm)
	registryMu sync.RWMutex
)

// Register makes an algorithm available through Get.
func Register(alg Algorithm) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[alg.Kind()] = alg
}

// Get returns the algorithm registered for kind.
func Get(kind Kind) (Algorithm, error) {
	registryMu.RLock()
	alg, ok := registry[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
	return alg, nil
}

// Sum computes the checksum of data with the algorithm registered for kind.
func Sum(kind Kind, data []byte) (uint32, error) {
	alg, err := Get(kind)
	if err != nil {
		return 0, err
	}
	return alg.Sum(data), nil
}

// Put writes v into b[0:4] in little-endian order.
func Put(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// Append appends the little-endian encoding of v to dst.
func Append(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// Uint32 decodes a little-endian checksum from b[0:4].
func Uint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}
