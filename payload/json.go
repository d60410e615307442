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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"
)

// parseJSON reads a single JSON value into an ordered tree. Numbers are
// kept as json.Number so integers and floats can be told apart.
func parseJSON(text []byte) (any, error) {
	if !utf8.Valid(text) {
		return nil, ErrInvalidUTF8
	}

	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()

	v, err := parseValue(dec, 0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrTrailingData
		}
		return nil, err
	}
	return v, nil
}

func parseValue(dec *json.Decoder, depth int) (any, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := newObject(0)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", keyTok)
			}
			v, err := parseValue(dec, depth+1)
			if err != nil {
				return nil, err
			}
			obj.set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil

	case '[':
		arr := []any{}
		for dec.More() {
			v, err := parseValue(dec, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}

	return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
}

// jsonWriter renders a tree as compact JSON. Strings go through an
// encoder with HTML escaping off so non-ASCII and <>& stay literal.
type jsonWriter struct {
	out     bytes.Buffer
	scratch bytes.Buffer
	enc     *json.Encoder
}

// renderJSON renders a decoded tree as JSON indented by Indent, without a
// trailing newline.
func renderJSON(v any) ([]byte, error) {
	w := &jsonWriter{}
	w.enc = json.NewEncoder(&w.scratch)
	w.enc.SetEscapeHTML(false)

	if err := w.write(v); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, w.out.Bytes(), "", Indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (w *jsonWriter) write(v any) error {
	switch t := v.(type) {
	case nil:
		w.out.WriteString("null")
	case bool:
		w.out.WriteString(strconv.FormatBool(t))
	case int64:
		w.out.WriteString(strconv.FormatInt(t, 10))
	case uint64:
		w.out.WriteString(strconv.FormatUint(t, 10))
	case float64:
		s, err := formatFloat(t)
		if err != nil {
			return err
		}
		w.out.WriteString(s)
	case string:
		return w.writeString(t)
	case []any:
		w.out.WriteByte('[')
		for i, elem := range t {
			if i > 0 {
				w.out.WriteByte(',')
			}
			if err := w.write(elem); err != nil {
				return err
			}
		}
		w.out.WriteByte(']')
	case *object:
		w.out.WriteByte('{')
		for i, key := range t.keys {
			if i > 0 {
				w.out.WriteByte(',')
			}
			if err := w.writeString(key); err != nil {
				return err
			}
			w.out.WriteByte(':')
			if err := w.write(t.values[i]); err != nil {
				return err
			}
		}
		w.out.WriteByte('}')
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return nil
}

func (w *jsonWriter) writeString(s string) error {
	w.scratch.Reset()
	if err := w.enc.Encode(s); err != nil {
		return err
	}
	w.out.Write(bytes.TrimSuffix(w.scratch.Bytes(), []byte("\n")))
	return nil
}

// formatFloat formats f the way encoding/json does, then appends ".0" to
// integral values so they read back as floats.
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrNonFinite, f)
	}

	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	b := strconv.AppendFloat(nil, f, format, -1, 64)
	if format == 'e' {
		// e-09 to e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
		return string(b), nil
	}
	if !bytes.ContainsAny(b, ".e") {
		b = append(b, ".0"...)
	}
	return string(b), nil
}
