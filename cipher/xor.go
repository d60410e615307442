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

// Package cipher provides the repeating-key XOR stream used by every
// supported save format.
package cipher

import "errors"

// ErrInvalidKey is returned when an XOR key is empty.
var ErrInvalidKey = errors.New("invalid cipher key: key is empty")

// XOR is a repeating XOR key. Applying it twice restores the input.
type XOR []byte

// Operate XORs b in place with the key, starting at key offset zero.
func (x XOR) Operate(b []byte) error {
	if len(x) == 0 {
		return ErrInvalidKey
	}
	n := len(x)
	for i := range b {
		b[i] ^= x[i%n]
	}
	return nil
}

// Transform returns a ciphered copy of data. The input is left untouched.
func (x XOR) Transform(data []byte) ([]byte, error) {
	if len(x) == 0 {
		return nil, ErrInvalidKey
	}
	out := make([]byte, len(data))
	copy(out, data)
	if err := x.Operate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Transform returns data XORed with key, where
// result[i] = data[i] ^ key[i%len(key)].
func Transform(data, key []byte) ([]byte, error) {
	return XOR(key).Transform(data)
}
