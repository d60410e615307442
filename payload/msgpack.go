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

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// pack serializes a parsed JSON tree. Strings use the str family and
// numbers the smallest encoding that holds them.
func pack(tree any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := packValue(enc, tree); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func packValue(enc *msgpack.Encoder, v any) error {
	switch t := v.(type) {
	case nil:
		return enc.EncodeNil()
	case bool:
		return enc.EncodeBool(t)
	case string:
		return enc.EncodeString(t)
	case json.Number:
		return packNumber(enc, t)
	case []any:
		if err := enc.EncodeArrayLen(len(t)); err != nil {
			return err
		}
		for _, elem := range t {
			if err := packValue(enc, elem); err != nil {
				return err
			}
		}
		return nil
	case *object:
		if err := enc.EncodeMapLen(t.len()); err != nil {
			return err
		}
		for i, key := range t.keys {
			if err := enc.EncodeString(key); err != nil {
				return err
			}
			if err := packValue(enc, t.values[i]); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

func packNumber(enc *msgpack.Encoder, n json.Number) error {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("float %s: %w", s, err)
		}
		return enc.EncodeFloat64(f)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return enc.EncodeInt(i)
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return enc.EncodeUint(u)
	}
	return fmt.Errorf("%w: %s", ErrIntegerRange, s)
}

// unpack decodes exactly one MessagePack value from packed.
func unpack(packed []byte) (any, error) {
	r := bytes.NewReader(packed)
	dec := msgpack.NewDecoder(r)

	v, err := unpackValue(dec, r, 0)
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len())
	}
	return v, nil
}

func unpackValue(dec *msgpack.Decoder, r *bytes.Reader, depth int) (any, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}

	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case c == msgpcode.Nil:
		return nil, dec.DecodeNil()

	case c == msgpcode.True || c == msgpcode.False:
		return dec.DecodeBool()

	case c <= msgpcode.PosFixedNumHigh,
		c == msgpcode.Uint8, c == msgpcode.Uint16, c == msgpcode.Uint32, c == msgpcode.Uint64:
		return dec.DecodeUint64()

	case c >= msgpcode.NegFixedNumLow,
		c == msgpcode.Int8, c == msgpcode.Int16, c == msgpcode.Int32, c == msgpcode.Int64:
		return dec.DecodeInt64()

	case c == msgpcode.Float || c == msgpcode.Double:
		return dec.DecodeFloat64()

	case msgpcode.IsString(c):
		s, err := dec.DecodeString()
		if err != nil {
			return nil, err
		}
		if !utf8.ValidString(s) {
			return nil, ErrInvalidUTF8
		}
		return s, nil

	case msgpcode.IsBin(c):
		b, err := dec.DecodeBytes()
		if err != nil {
			return nil, err
		}
		return hex.EncodeToString(b), nil

	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		arr := make([]any, 0, min(n, r.Len()))
		for range n {
			elem, err := unpackValue(dec, r, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, elem)
		}
		return arr, nil

	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		obj := newObject(min(n, r.Len()))
		for range n {
			k, err := unpackValue(dec, r, depth+1)
			if err != nil {
				return nil, err
			}
			key, err := keyString(k)
			if err != nil {
				return nil, err
			}
			v, err := unpackValue(dec, r, depth+1)
			if err != nil {
				return nil, err
			}
			obj.set(key, v)
		}
		return obj, nil
	}

	return nil, fmt.Errorf("%w: code 0x%02x", ErrUnsupportedType, c)
}

// keyString converts a decoded scalar map key to its JSON member name.
func keyString(k any) (string, error) {
	switch t := k.(type) {
	case string:
		return t, nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "null", nil
	case float64:
		return formatFloat(t)
	}
	return "", fmt.Errorf("%w: map key of type %T", ErrUnsupportedType, k)
}
