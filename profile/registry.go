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
	"bytes"
	"fmt"

	"github.com/ZaparooProject/go-rggsave/checksum"
)

// Registry is an ordered, read-only set of profiles. It is safe for
// concurrent use.
type Registry struct {
	byID     map[ID]*Profile
	profiles []*Profile
}

// NewRegistry validates defs and builds a registry that keeps their order.
//
// A definition is rejected if its key is empty, its id repeats, its checksum kind
// is not registered, a header is not HeaderSize bytes, or a header could
// match the same file as a header of another profile.
func NewRegistry(defs ...Definition) (*Registry, error) {
	reg := &Registry{
		byID:     make(map[ID]*Profile, len(defs)),
		profiles: make([]*Profile, 0, len(defs)),
	}

	for _, s := range defs {
		if s.Key == "" {
			return nil, fmt.Errorf("profile %q: %w", s.ID, ErrInvalidKey)
		}
		if _, exists := reg.byID[s.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, s.ID)
		}
		if _, err := checksum.Get(s.Checksum); err != nil {
			return nil, fmt.Errorf("profile %q: %w", s.ID, err)
		}
		for _, h := range s.Headers {
			if len(h) != HeaderSize {
				return nil, fmt.Errorf("profile %q: %w: %d bytes, want %d", s.ID, ErrInvalidHeader, len(h), HeaderSize)
			}
		}

		p := newProfile(s)
		if other, ok := reg.collides(p); ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrHeaderCollision, other, p.ID)
		}

		reg.byID[p.ID] = p
		reg.profiles = append(reg.profiles, p)
	}

	return reg, nil
}

// MustRegistry is NewRegistry for tables fixed at compile time. It panics
// on an invalid table.
func MustRegistry(defs ...Definition) *Registry {
	reg, err := NewRegistry(defs...)
	if err != nil {
		panic("profile: invalid registry: " + err.Error())
	}
	return reg
}

// collides returns the id of a registered profile that shares a header
// prefix with p.
func (r *Registry) collides(p *Profile) (ID, bool) {
	for _, other := range r.profiles {
		for _, a := range other.headers {
			for _, b := range p.headers {
				if bytes.HasPrefix(a, b) || bytes.HasPrefix(b, a) {
					return other.ID, true
				}
			}
		}
	}
	return "", false
}

// Get returns the profile for id.
func (r *Registry) Get(id ID) (*Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, UnknownProfileError{ID: string(id)}
	}
	return p, nil
}

// Lookup returns the profile for id and whether it exists.
func (r *Registry) Lookup(id ID) (*Profile, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// All returns the profiles in table order.
func (r *Registry) All() []*Profile {
	return append([]*Profile(nil), r.profiles...)
}

// IDs returns the profile ids in table order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, len(r.profiles))
	for i, p := range r.profiles {
		ids[i] = p.ID
	}
	return ids
}

// Len returns the number of profiles.
func (r *Registry) Len() int {
	return len(r.profiles)
}
