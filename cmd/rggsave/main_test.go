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

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// lockedBuffer is a bytes.Buffer safe for the concurrent log writes of
// the batch command.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// run runs the CLI in-process with the given stdin.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut lockedBuffer
	app := newApp(strings.NewReader(stdin), &out, &errOut)
	err = app.Run(append([]string{"rggsave"}, args...))
	return out.String(), errOut.String(), err
}

func writeInput(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestCLIVersion tests the version output
func TestCLIVersion(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "", "--version")
	if err != nil {
		t.Fatalf("--version error = %v", err)
	}
	if !strings.Contains(stdout, "rggsave version "+appVersion) {
		t.Errorf("version output incorrect: %s", stdout)
	}
}

func TestCLIHelp(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "", "--help")
	if err != nil {
		t.Fatalf("--help error = %v", err)
	}
	for _, flag := range []string{"--game", "-g", "--ishin-to-steam", "--ishin-to-gamepass", "--msgpack", "--verify"} {
		if !strings.Contains(stdout, flag) {
			t.Errorf("help output missing flag %s", flag)
		}
	}
}

func TestCLIList(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "", "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, line := range []string{"ik: Like a Dragon: Ishin (ik)", "y7_gog: Yakuza 7 GoG (y7_gog)", "yp: "} {
		if !strings.Contains(stdout, line) {
			t.Errorf("list output missing %q:\n%s", line, stdout)
		}
	}

	stdout, _, err = run(t, "", "list", "--json")
	if err != nil {
		t.Fatalf("list --json error = %v", err)
	}
	var games []gameInfo
	if err := json.Unmarshal([]byte(stdout), &games); err != nil {
		t.Fatalf("list --json output is not JSON: %v", err)
	}
	if len(games) != 11 || games[0].ID != "ik" || !games[0].Platforms || games[10].Payload != "msgpack" {
		t.Errorf("list --json = %+v", games)
	}
}

func TestCLIEncodeDecode(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "slot1_lj.json", []byte("hello world"))
	dir := filepath.Dir(input)

	_, stderr, err := run(t, "", input)
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}
	if !strings.Contains(stderr, "Processed") {
		t.Errorf("stderr = %q, want a processed message", stderr)
	}
	encoded, err := os.ReadFile(filepath.Join(dir, "slot1.sav")) //nolint:gosec // test temp dir
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(encoded) != "022e213d2a56403c46005d85114a0d" {
		t.Errorf("encoded = %x", encoded)
	}

	output := filepath.Join(dir, "edited.json")
	if _, _, err := run(t, "", "-g", "lj", "--verify", "strict", filepath.Join(dir, "slot1.sav"), output); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if got, _ := os.ReadFile(output); string(got) != "hello world" { //nolint:gosec // test temp dir
		t.Errorf("decoded = %q", got)
	}
}

func TestCLIPlatform(t *testing.T) {
	t.Parallel()

	data := make([]byte, 20)
	input := writeInput(t, "slot_ik.sav", data)

	if _, _, err := run(t, "", "--ishin-to-gamepass", input); err != nil {
		t.Fatalf("convert error = %v", err)
	}
	got, err := os.ReadFile(filepath.Join(filepath.Dir(input), "slot_ik_converted.sav")) //nolint:gosec // test temp dir
	if err != nil {
		t.Fatal(err)
	}
	if got[8] != 0x8F {
		t.Errorf("marker = %#x, want 0x8f", got[8])
	}
}

func TestCLIInteractive(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "slot.sav", []byte("0123456789abcdef"))

	stdout, _, err := run(t, "lj\n", "--interactive", input)
	if err != nil {
		t.Fatalf("interactive error = %v", err)
	}
	if !strings.Contains(stdout, "Enter a game abbreviation") {
		t.Errorf("stdout = %q, want a prompt", stdout)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(input), "slot_lj.json")); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestCLIBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var inputs []string
	for _, name := range []string{"a_lj.json", "b_y6.json", "c.txt"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0o600); err != nil {
			t.Fatal(err)
		}
		inputs = append(inputs, path)
	}

	_, stderr, err := run(t, "", append([]string{"batch", "-j", "2"}, inputs...)...)
	if err == nil || !strings.Contains(err.Error(), "1 of 3 files failed") {
		t.Errorf("batch error = %v, want 1 of 3 failed", err)
	}
	if !strings.Contains(stderr, "Error processing") || !strings.Contains(stderr, "c.txt") {
		t.Errorf("stderr = %q, want an error for c.txt", stderr)
	}
	for _, name := range []string{"a.sav", "b.sav"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
}

// TestCLIErrors tests error handling for bad arguments
func TestCLIErrors(t *testing.T) {
	t.Parallel()

	save := writeInput(t, "slot_ik.sav", make([]byte, 20))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing input", []string{}, "expected <input> [output]"},
		{"too many args", []string{"a", "b", "c"}, "expected <input> [output]"},
		{"both platforms", []string{"--ishin-to-steam", "--ishin-to-gamepass", save}, "only one of"},
		{"bad verify", []string{"--verify", "loud", save}, "invalid verify value"},
		{"unknown game", []string{"-g", "y9", save}, "unknown game"},
		{"not detected", []string{writeInput(t, "slot.sav", []byte("nothing to see"))}, "Error processing"},
		{"batch without inputs", []string{"batch"}, "expected at least one input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := run(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestCLIGameFromEnvironment(t *testing.T) {
	t.Setenv("RGGSAVE_GAME", "lj")

	input := writeInput(t, "slot.sav", []byte("0123456789abcdef"))
	if _, _, err := run(t, "", input); err != nil {
		t.Fatalf("error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(input), "slot_lj.json")); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestCLILogFile(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "slot1_lj.json", []byte("hello"))
	logPath := filepath.Join(filepath.Dir(input), "rggsave.log")

	if _, _, err := run(t, "", "-q", "--log-file", logPath, input); err != nil {
		t.Fatalf("error = %v", err)
	}
	logged, err := os.ReadFile(logPath) //nolint:gosec // test temp dir
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logged), "Processed") {
		t.Errorf("log file = %q, want a processed message", logged)
	}
}
