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

// Command rggsave encodes and decodes RGG Studio game saves.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PurpleSec/logx"
	"github.com/urfave/cli/v2"

	"github.com/ZaparooProject/go-rggsave"
	"github.com/ZaparooProject/go-rggsave/profile"
)

const appVersion = "0.1.0"

func init() {
	// -v is verbose, so the version flag has no short alias.
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print version and exit"}
}

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:    "rggsave",
		Usage:   "encode and decode RGG Studio game saves",
		Version: appVersion,
		UsageText: "rggsave [options] <input> [output]\n" +
			"   rggsave batch [options] <input>...\n" +
			"   rggsave list [--json]",
		Description: "Decodes .sav and .sys saves to editable files and encodes .json files back.\n" +
			"Titles with MessagePack saves (e.g. Pirate Yakuza) decode to indented JSON.\n" +
			"Ishin (ik) saves can be converted between Steam and Game Pass.",
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags:           commonFlags(),
		Action:          runSingle,
		Commands:        []*cli.Command{&cmdBatch, &cmdList},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "game",
			Aliases: []string{"g"},
			Usage:   "game abbreviation, see the list command (detected if omitted)",
			EnvVars: []string{"RGGSAVE_GAME"},
		},
		&cli.BoolFlag{Name: "ishin-to-steam", Usage: "convert an Ishin save to Steam"},
		&cli.BoolFlag{Name: "ishin-to-gamepass", Usage: "convert an Ishin save to Game Pass"},
		&cli.BoolFlag{Name: "msgpack", Usage: "force msgpack mode for encoding and decoding"},
		&cli.StringFlag{
			Name:    "verify",
			Value:   "off",
			Usage:   "checksum verification on decode: off, warn or strict",
			EnvVars: []string{"RGGSAVE_VERIFY"},
		},
		&cli.BoolFlag{Name: "interactive", Usage: "ask for the game when it cannot be detected"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug messages"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "log errors only"},
		&cli.PathFlag{Name: "log-file", Usage: "also append log messages to `FILE`"},
	}
}

var cmdBatch = cli.Command{
	Name:      "batch",
	Usage:     "process several files concurrently",
	ArgsUsage: "<input>...",
	Flags: append(commonFlags(), &cli.IntFlag{
		Name:    "jobs",
		Aliases: []string{"j"},
		Usage:   "files processed at once (0 means one per CPU)",
		EnvVars: []string{"RGGSAVE_JOBS"},
	}),
	Action: runBatch,
}

var cmdList = cli.Command{
	Name:  "list",
	Usage: "list supported games",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "json", Usage: "output as JSON"},
	},
	Action: runList,
}

// processError is printed for a file that could not be processed.
type processError struct {
	input string
	err   error
}

func (e processError) Error() string {
	return fmt.Sprintf("Error processing %q: %v", e.input, e.err)
}

func (e processError) Unwrap() error {
	return e.err
}

func runSingle(c *cli.Context) error {
	if c.NArg() < 1 || c.NArg() > 2 {
		_ = cli.ShowAppHelp(c)
		return fmt.Errorf("expected <input> [output], got %d arguments", c.NArg())
	}

	opts, platform, err := options(c)
	if err != nil {
		return err
	}

	job := rggsave.Job{
		Input:    c.Args().Get(0),
		Output:   c.Args().Get(1),
		Game:     c.String("game"),
		Platform: platform,
	}
	proc := rggsave.NewProcessor(opts)

	_, err = proc.ProcessFile(c.Context, job)
	var notDetected rggsave.GameNotDetectedError
	if errors.As(err, &notDetected) && c.Bool("interactive") {
		if job.Game, err = promptGame(c); err == nil {
			_, err = proc.ProcessFile(c.Context, job)
		}
	}
	if err != nil {
		return processError{input: job.Input, err: err}
	}
	return nil
}

func runBatch(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("expected at least one input")
	}

	opts, platform, err := options(c)
	if err != nil {
		return err
	}

	jobs := make([]rggsave.Job, c.NArg())
	for i, input := range c.Args().Slice() {
		jobs[i] = rggsave.Job{Input: input, Game: c.String("game"), Platform: platform}
	}

	failed := 0
	for _, res := range rggsave.ProcessFiles(c.Context, jobs, c.Int("jobs"), opts) {
		if res.Err != nil {
			failed++
			fmt.Fprintln(c.App.ErrWriter, processError{input: res.Input, err: res.Err})
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(jobs))
	}
	return nil
}

// gameInfo is the list command's JSON record.
type gameInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Checksum  string `json:"checksum"`
	Trailer   string `json:"trailer"`
	Payload   string `json:"payload"`
	Platforms bool   `json:"platforms"`
}

func runList(c *cli.Context) error {
	all := profile.All()

	if c.Bool("json") {
		games := make([]gameInfo, len(all))
		for i, p := range all {
			games[i] = gameInfo{
				ID:        string(p.ID),
				Name:      p.Name,
				Checksum:  string(p.Checksum),
				Trailer:   p.Trailer.String(),
				Payload:   p.Payload.String(),
				Platforms: p.Platforms,
			}
		}
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(games); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		return nil
	}

	fmt.Fprintln(c.App.Writer, "Supported games:")
	for _, p := range all {
		fmt.Fprintf(c.App.Writer, "  %s: %s\n", p.ID, p.Name)
	}
	return nil
}

func options(c *cli.Context) (rggsave.Options, rggsave.Platform, error) {
	var opts rggsave.Options

	if game := c.String("game"); game != "" {
		if _, err := rggsave.ParseID(game); err != nil {
			return opts, 0, fmt.Errorf("unknown game %q, run \"rggsave list\" for the supported games", game)
		}
	}

	verify, err := rggsave.ParseVerifyMode(c.String("verify"))
	if err != nil {
		return opts, 0, err
	}

	platform := rggsave.PlatformNone
	switch steam, gamepass := c.Bool("ishin-to-steam"), c.Bool("ishin-to-gamepass"); {
	case steam && gamepass:
		return opts, 0, errors.New("only one of --ishin-to-steam or --ishin-to-gamepass may be specified")
	case steam:
		platform = rggsave.PlatformSteam
	case gamepass:
		platform = rggsave.PlatformGamePass
	}

	log, err := newLogger(c)
	if err != nil {
		return opts, 0, err
	}

	opts = rggsave.Options{
		Log:          log,
		Verify:       verify,
		ForceMsgpack: c.Bool("msgpack"),
	}
	return opts, platform, nil
}

func newLogger(c *cli.Context) (logx.Log, error) {
	var log logx.Log
	switch {
	case c.Bool("quiet"):
		log = logx.Writer(c.App.ErrWriter, logx.Error)
	case c.Bool("verbose"):
		log = logx.Writer(c.App.ErrWriter, logx.Debug)
	default:
		log = logx.Writer(c.App.ErrWriter, logx.Info)
	}

	if path := c.Path("log-file"); path != "" {
		file, err := logx.File(path, logx.Append, logx.Trace)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log = logx.Multiple(log, file)
	}
	return log, nil
}

// promptGame reads a game abbreviation from the app's input.
func promptGame(c *cli.Context) (string, error) {
	fmt.Fprintf(c.App.Writer, "Failed to detect game. Enter a game abbreviation (%s): ",
		strings.Join(rggsave.SupportedGames(), ", "))

	line, err := bufio.NewReader(c.App.Reader).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read game abbreviation: %w", err)
	}
	id, err := rggsave.ParseID(line)
	if err != nil {
		return "", err //nolint:wrapcheck // names the input
	}
	return string(id), nil
}
