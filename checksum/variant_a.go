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

import "math/bits"

func init() {
	Register(variantAAlgorithm{})
}

// VariantA constants. Every one of them affects every output byte.
const (
	// variantSeed is the 64-bit reciprocal used to derive the block count.
	variantSeed uint64 = 0x79BAA6BB6398B6F7

	// variantBlockSize is the number of bytes summed per full block.
	variantBlockSize uint64 = 0x15B0

	// variantModulus is the largest prime below 2^16.
	variantModulus uint64 = 0xFFF1

	// variantReciprocal is 2^47/variantModulus rounded up.
	variantReciprocal uint64 = 0x80078071
)

// variantAAlgorithm is an Adler-32 style checksum with both accumulators
// starting at zero, 0x15B0-byte blocks and a fixed-point modular reduction.
//
// Accumulators are 64-bit. They hold exact values for inputs up to a few
// hundred megabytes, far beyond any save file.
type variantAAlgorithm struct{}

func (variantAAlgorithm) Kind() Kind { return VariantA }

func (variantAAlgorithm) Sum(data []byte) uint32 {
	var add, sum uint64

	size := uint64(len(data))
	var blocks uint64
	if size >= variantBlockSize {
		// blocks = size / 0x15B0 via multiply-high.
		hi, _ := bits.Mul64(variantSeed, size)
		blocks = (((size - hi) >> 1) + hi) >> 12
		size -= blocks * variantBlockSize
	}

	read := blocks * variantBlockSize
	add, sum = accumulate(data[:read], add, sum)

	if size >= 0x10 {
		aligned := (size >> 4) * 0x10
		size -= aligned
		add, sum = accumulate(data[read:read+aligned], add, sum)
		read += aligned
	}

	add, sum = accumulate(data[read:read+size], add, sum)

	add = reduce(add)
	sum = reduce(sum)

	return uint32(sum<<16 | add) //nolint:gosec // Both halves are reduced below 2^16
}

// accumulate adds every byte of b to add, and every intermediate add to sum.
func accumulate(b []byte, add, sum uint64) (uint64, uint64) {
	for _, c := range b {
		add += uint64(c)
		sum += add
	}
	return add, sum
}

// reduce computes x mod 0xFFF1 as x - ((x*0x80078071)>>47)*0xFFF1 using
// the full 128-bit product.
//
// The reciprocal is rounded up, so above roughly 2^32 the quotient can
// overshoot by a few units. The overshoot is stepped back so the result is
// always the true remainder.
func reduce(x uint64) uint64 {
	hi, lo := bits.Mul64(x, variantReciprocal)
	q := hi<<17 | lo>>47
	for q*variantModulus > x {
		q--
	}
	return x - q*variantModulus
}
