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

package rggsave

import (
	"errors"
	"fmt"

	"github.com/PurpleSec/logx"

	"github.com/ZaparooProject/go-rggsave/checksum"
	"github.com/ZaparooProject/go-rggsave/internal/binary"
	"github.com/ZaparooProject/go-rggsave/payload"
	"github.com/ZaparooProject/go-rggsave/profile"
)

// Direction selects encoding (editable to on-disk) or decoding.
type Direction int

const (
	// Encode turns an editable save into the on-disk form.
	Encode Direction = iota + 1

	// Decode turns an on-disk save into its editable form.
	Decode
)

func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Request is one transcoding job. When Platform is set only the platform
// marker is rewritten and Direction is ignored.
type Request struct {
	Data      []byte
	Profile   *Profile
	Direction Direction
	Platform  Platform
}

// Transcoder runs requests with a fixed set of options. It is safe for
// concurrent use.
type Transcoder struct {
	opts     Options
	registry *profile.Registry
	log      logx.Log
}

// NewTranscoder returns a Transcoder for opts.
func NewTranscoder(opts Options) *Transcoder {
	return &Transcoder{opts: opts, registry: opts.registry(), log: opts.log()}
}

// TranscodeID is Transcode for the registered title id. An unknown id
// fails with profile.UnknownProfileError.
func (t *Transcoder) TranscodeID(data []byte, id ID, dir Direction) ([]byte, error) {
	p, err := t.registry.Get(id)
	if err != nil {
		return nil, err //nolint:wrapcheck // typed error passthrough
	}
	return t.Transcode(Request{Data: data, Profile: p, Direction: dir})
}

// Transcode runs req and returns a new buffer; req.Data is never
// modified. On error no output is returned.
func (t *Transcoder) Transcode(req Request) ([]byte, error) {
	p := req.Profile
	if p == nil {
		return nil, ErrNoProfile
	}

	if req.Platform != PlatformNone {
		t.log.Info("Converting %s save from %s to %s.", p.ID, PlatformOf(req.Data), req.Platform)
		return PatchPlatform(req.Data, p, req.Platform)
	}

	if t.opts.ForceMsgpack || p.Payload == profile.PayloadMsgpack {
		return t.transcodeStructured(req.Data, p, req.Direction)
	}

	switch req.Direction {
	case Encode:
		return encodeRaw(req.Data, p)
	case Decode:
		return t.decodeRaw(req.Data, p)
	}
	return nil, fmt.Errorf("unknown direction %v", req.Direction)
}

func encodeRaw(data []byte, p *Profile) ([]byte, error) {
	key := p.Key()

	switch p.Trailer {
	case profile.TrailerNone:
		return key.Transform(data) //nolint:wrapcheck // cipher errors are sentinels

	case profile.TrailerCRC4:
		sum, err := checksum.Sum(p.Checksum, data)
		if err != nil {
			return nil, err //nolint:wrapcheck // already names the kind
		}
		out, err := key.Transform(data)
		if err != nil {
			return nil, err //nolint:wrapcheck // cipher errors are sentinels
		}
		return checksum.Append(out, sum), nil

	case profile.TrailerEmbedded16:
		body, _, err := binary.SplitTail(data, p.Trailer.Size())
		if err != nil {
			return nil, err //nolint:wrapcheck // ErrTruncated with sizes
		}
		sum, err := checksum.Sum(p.Checksum, body)
		if err != nil {
			return nil, err //nolint:wrapcheck // already names the kind
		}
		out := binary.Clone(data)
		if err := key.Operate(out[:len(body)]); err != nil {
			return nil, err //nolint:wrapcheck // cipher errors are sentinels
		}
		if err := binary.PutUint32LE(out, len(body)+p.Trailer.ChecksumOffset(), sum); err != nil {
			return nil, err //nolint:wrapcheck // ErrTruncated with sizes
		}
		return out, nil
	}

	return nil, fmt.Errorf("unknown trailer mode %v", p.Trailer)
}

func (t *Transcoder) decodeRaw(data []byte, p *Profile) ([]byte, error) {
	key := p.Key()

	switch p.Trailer {
	case profile.TrailerNone:
		return key.Transform(data) //nolint:wrapcheck // cipher errors are sentinels

	case profile.TrailerCRC4:
		body, tail, err := binary.SplitTail(data, p.Trailer.Size())
		if err != nil {
			return nil, err //nolint:wrapcheck // ErrTruncated with sizes
		}
		out, err := key.Transform(body)
		if err != nil {
			return nil, err //nolint:wrapcheck // cipher errors are sentinels
		}
		if err := t.verify(p, out, checksum.Uint32(tail)); err != nil {
			return nil, err
		}
		return out, nil

	case profile.TrailerEmbedded16:
		body, tail, err := binary.SplitTail(data, p.Trailer.Size())
		if err != nil {
			return nil, err //nolint:wrapcheck // ErrTruncated with sizes
		}
		stored, err := binary.Uint32LE(tail, p.Trailer.ChecksumOffset())
		if err != nil {
			return nil, err //nolint:wrapcheck // ErrTruncated with sizes
		}
		out := binary.Clone(data)
		if err := key.Operate(out[:len(body)]); err != nil {
			return nil, err //nolint:wrapcheck // cipher errors are sentinels
		}
		if err := t.verify(p, out[:len(body)], stored); err != nil {
			return nil, err
		}
		return out, nil
	}

	return nil, fmt.Errorf("unknown trailer mode %v", p.Trailer)
}

func (t *Transcoder) transcodeStructured(data []byte, p *Profile, dir Direction) ([]byte, error) {
	key := p.Key()

	switch dir {
	case Encode:
		return payload.Encode(data, key) //nolint:wrapcheck // typed payload errors

	case Decode:
		if t.opts.Verify != VerifyOff {
			stored, computed, err := payload.Checksum(data, key)
			if err != nil {
				return nil, err //nolint:wrapcheck // ErrTruncated with sizes
			}
			if err := t.checkSums(p, stored, computed); err != nil {
				return nil, err
			}
		}

		out, err := payload.Decode(data, key)
		var decErr *payload.DecodeError
		if errors.As(err, &decErr) {
			t.log.Warning("Error unpacking msgpack data for %s: %s", p.ID, decErr.Err)
		}
		return out, err //nolint:wrapcheck // typed payload errors
	}

	return nil, fmt.Errorf("unknown direction %v", dir)
}

// verify checks the checksum of plain against stored according to the
// verify mode.
func (t *Transcoder) verify(p *Profile, plain []byte, stored uint32) error {
	if t.opts.Verify == VerifyOff {
		return nil
	}
	computed, err := checksum.Sum(p.Checksum, plain)
	if err != nil {
		return err //nolint:wrapcheck // already names the kind
	}
	return t.checkSums(p, stored, computed)
}

func (t *Transcoder) checkSums(p *Profile, stored, computed uint32) error {
	if stored == computed {
		return nil
	}
	mismatch := &ChecksumMismatchError{ID: p.ID, Stored: stored, Computed: computed}
	if t.opts.Verify == VerifyStrict {
		return mismatch
	}
	t.log.Warning("%s, decoding anyway.", mismatch)
	return nil
}

// Transcode encodes or decodes data for p with default options.
func Transcode(data []byte, p *Profile, dir Direction) ([]byte, error) {
	return NewTranscoder(Options{}).Transcode(Request{Data: data, Profile: p, Direction: dir})
}
