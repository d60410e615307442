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

package payload

import "errors"

// Structural errors reported inside DecodeError and EncodeError.
var (
	// ErrTrailingData indicates bytes left over after the top-level value.
	ErrTrailingData = errors.New("trailing data after payload")

	// ErrTooDeep indicates nesting beyond maxDepth.
	ErrTooDeep = errors.New("payload nested too deeply")

	// ErrInvalidUTF8 indicates JSON text or a msgpack string that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("string is not valid UTF-8")

	// ErrNonFinite indicates a NaN or infinite float, which JSON cannot hold.
	ErrNonFinite = errors.New("non-finite float")

	// ErrUnsupportedType indicates a msgpack type with no JSON form.
	ErrUnsupportedType = errors.New("unsupported msgpack type")

	// ErrIntegerRange indicates a JSON integer outside the 64-bit range.
	ErrIntegerRange = errors.New("integer out of range")
)

// DecodeError is returned when deciphered bytes do not form a valid
// structured payload.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode structured payload: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError is returned when the JSON input cannot be serialized.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return "encode structured payload: " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
