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

import (
	"errors"
	"fmt"

	"github.com/ZaparooProject/go-rggsave/cipher"
)

// ErrInvalidKey is returned for a profile with an empty cipher key.
var ErrInvalidKey = cipher.ErrInvalidKey

// Registry construction errors.
var (
	// ErrDuplicateID indicates two profiles share an id.
	ErrDuplicateID = errors.New("duplicate profile id")

	// ErrHeaderCollision indicates two profiles could match the same file header.
	ErrHeaderCollision = errors.New("magic header collision")

	// ErrInvalidHeader indicates a magic header of the wrong length.
	ErrInvalidHeader = errors.New("invalid magic header")
)

// UnknownProfileError is returned for an id that is not in the registry.
type UnknownProfileError struct {
	ID string
}

func (e UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile: %q", e.ID)
}
