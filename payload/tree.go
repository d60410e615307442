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

// object is a JSON object or MessagePack map that keeps member order.
// A repeated key keeps its first position and takes the last value.
type object struct {
	keys   []string
	values []any
	index  map[string]int
}

func newObject(capacity int) *object {
	return &object{
		keys:   make([]string, 0, capacity),
		values: make([]any, 0, capacity),
		index:  make(map[string]int, capacity),
	}
}

func (o *object) set(key string, value any) {
	if i, ok := o.index[key]; ok {
		o.values[i] = value
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

func (o *object) len() int {
	return len(o.keys)
}
