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

package cipher

import (
	"bytes"
	"errors"
	"testing"
)

func TestTransform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		key  []byte
		want []byte
	}{
		{"key repeated is zero", []byte("mudamudamuda"), []byte("muda"), make([]byte, 12)},
		{"empty data", []byte{}, []byte("key"), []byte{}},
		{"single byte key", []byte{0x00, 0xFF, 0x0F}, []byte{0xFF}, []byte{0xFF, 0x00, 0xF0}},
		{"key longer than data", []byte{0x01, 0x02}, []byte{0x01, 0x02, 0x03, 0x04}, []byte{0x00, 0x00}},
		{"key wraps", []byte{0x10, 0x20, 0x30}, []byte{0x01, 0x02}, []byte{0x11, 0x22, 0x31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Transform(tt.data, tt.key)
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Transform() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	data := []byte("save data")
	orig := append([]byte(nil), data...)

	if _, err := Transform(data, []byte("k")); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if !bytes.Equal(data, orig) {
		t.Errorf("input mutated: %q", data)
	}
}

func TestEmptyKey(t *testing.T) {
	t.Parallel()

	if _, err := Transform([]byte("data"), nil); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Transform() error = %v, want ErrInvalidKey", err)
	}
	if err := XOR(nil).Operate([]byte("data")); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Operate() error = %v, want ErrInvalidKey", err)
	}
	// An empty key is rejected even when there is nothing to cipher.
	if _, err := (XOR{}).Transform(nil); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Transform(nil) error = %v, want ErrInvalidKey", err)
	}
}

func TestOperateInPlace(t *testing.T) {
	t.Parallel()

	key := XOR("fuEw5rWN8MBS")
	buf := []byte("Like a Dragon: Ishin!")
	orig := append([]byte(nil), buf...)

	if err := key.Operate(buf); err != nil {
		t.Fatalf("Operate() error = %v", err)
	}
	if bytes.Equal(buf, orig) {
		t.Fatal("Operate() left buffer unchanged")
	}
	if err := key.Operate(buf); err != nil {
		t.Fatalf("Operate() error = %v", err)
	}
	if !bytes.Equal(buf, orig) {
		t.Errorf("double Operate() = %q, want %q", buf, orig)
	}
}

// FuzzXOR checks that the transform is its own inverse.
func FuzzXOR(f *testing.F) {
	f.Add([]byte("hello world"), []byte("key"))
	f.Add([]byte{}, []byte{0x00})
	f.Add([]byte{0xFF, 0x00, 0xAA}, []byte("STarYZgr3DL11"))

	f.Fuzz(func(t *testing.T, data, key []byte) {
		if len(key) == 0 {
			if _, err := Transform(data, key); !errors.Is(err, ErrInvalidKey) {
				t.Fatalf("empty key error = %v", err)
			}
			return
		}

		once, err := Transform(data, key)
		if err != nil {
			t.Fatalf("Transform() error = %v", err)
		}
		if len(once) != len(data) {
			t.Fatalf("length changed: %d -> %d", len(data), len(once))
		}
		twice, err := Transform(once, key)
		if err != nil {
			t.Fatalf("Transform() error = %v", err)
		}
		if !bytes.Equal(twice, data) {
			t.Errorf("Transform(Transform(d)) = %x, want %x", twice, data)
		}
	})
}
