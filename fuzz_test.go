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
	"bytes"
	"testing"

	"github.com/ZaparooProject/go-rggsave/profile"
)

// FuzzIdentify checks that identification never panics and that a header
// match is a real prefix match.
func FuzzIdentify(f *testing.F) {
	f.Add(headerGaiden, "", "")
	f.Add(headerLostJudgment, "gd", "slot_lj.sav")
	f.Add([]byte{}, "y9", "_.")
	f.Add(headerIshinAlt[:5], "", "x_y7_gog.sav")

	f.Fuzz(func(t *testing.T, header []byte, explicitID, filename string) {
		p, method, err := Identify(header, explicitID, filename)
		if err != nil {
			return
		}
		if method == MethodHeader && !p.MatchHeader(header) {
			t.Errorf("header method chose %s for %x", p.ID, header)
		}
	})
}

// FuzzTranscodeRoundTrip checks that decoding an encoded save restores
// the input for every raw profile with an appended checksum.
func FuzzTranscodeRoundTrip(f *testing.F) {
	f.Add([]byte("hello world"))
	f.Add([]byte{})
	f.Add(sequence(64))

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, p := range profile.All() {
			if p.Payload != profile.PayloadRaw || p.Trailer != profile.TrailerCRC4 {
				continue
			}
			enc, err := Transcode(data, p, Encode)
			if err != nil {
				t.Fatalf("%s: encode error = %v", p.ID, err)
			}
			dec, err := NewTranscoder(Options{Verify: VerifyStrict}).Transcode(Request{Data: enc, Profile: p, Direction: Decode})
			if err != nil {
				t.Fatalf("%s: decode error = %v", p.ID, err)
			}
			if !bytes.Equal(dec, data) {
				t.Fatalf("%s: round trip changed %x to %x", p.ID, data, dec)
			}
		}
	})
}
