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

// Package payload transcodes structured save payloads between indented
// JSON and ciphered MessagePack.
//
// A sealed payload is the MessagePack document XORed with the title key,
// followed by the little-endian CRC-32 of the unciphered document.
package payload

import (
	"github.com/ZaparooProject/go-rggsave/checksum"
	"github.com/ZaparooProject/go-rggsave/cipher"
	"github.com/ZaparooProject/go-rggsave/internal/binary"
)

// maxDepth bounds the nesting of arrays and objects in either direction.
const maxDepth = 1000

// Indent is the per-level indentation of decoded JSON.
const Indent = "    "

// Encode parses jsonText, serializes it as MessagePack, ciphers it with key
// and appends the checksum of the serialized bytes.
//
// Object member order is kept. Integer literals become the smallest
// MessagePack integer that holds them; literals with a fraction or
// exponent become 64-bit floats.
func Encode(jsonText []byte, key cipher.XOR) ([]byte, error) {
	if len(key) == 0 {
		return nil, cipher.ErrInvalidKey
	}

	tree, err := parseJSON(jsonText)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	packed, err := pack(tree)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}

	sum, err := checksum.Sum(checksum.CRC32, packed)
	if err != nil {
		return nil, err
	}
	if err := key.Operate(packed); err != nil {
		return nil, err
	}
	return checksum.Append(packed, sum), nil
}

// Decode deciphers blob with key, ignoring its checksum, and renders the
// MessagePack document as JSON indented by four spaces.
//
// Binary values and binary map keys become lowercase hex strings, and
// other non-string map keys are stringified. The stored checksum is not
// checked; use Checksum for that.
func Decode(blob []byte, key cipher.XOR) ([]byte, error) {
	body, _, err := binary.SplitTail(blob, checksum.Size)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	packed, err := key.Transform(body)
	if err != nil {
		return nil, err
	}

	tree, err := unpack(packed)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	out, err := renderJSON(tree)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return out, nil
}

// Checksum returns the checksum stored in blob and the checksum of its
// deciphered body.
func Checksum(blob []byte, key cipher.XOR) (stored, computed uint32, err error) {
	body, tail, err := binary.SplitTail(blob, checksum.Size)
	if err != nil {
		return 0, 0, err
	}
	packed, err := key.Transform(body)
	if err != nil {
		return 0, 0, err
	}
	computed, err = checksum.Sum(checksum.CRC32, packed)
	if err != nil {
		return 0, 0, err
	}
	return checksum.Uint32(tail), computed, nil
}
