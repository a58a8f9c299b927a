// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Numfmt formats and parses numbers as locale-shaped text.
//
// Usage:
//
//	numfmt <command> [flags] [arguments]
//
// The commands are:
//
//	format   format values with a standard or custom format string
//	parse    parse text into values of a numeric type
//	profile  print the effective locale profile as YAML
//
// All commands accept -lang, which derives the profile from the CLDR data of
// a BCP 47 language tag, and -profile, which loads it from a YAML file. The
// culture-invariant profile is used if neither is given.
//
// Example
//
// To print a value with group separators the German way:
//
//	numfmt format -lang de N2 1234567.891
//
// To read a hexadecimal bit pattern as a signed 32-bit value:
//
//	numfmt parse -type int32 -style hex FFFFFFFF
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/numfmt/locale"
	"golang.org/x/numfmt/number"
)

// A Command is an implementation of a numfmt command.
type Command struct {
	// Run runs the command with the arguments remaining after flag parsing.
	Run func(cmd *Command, env *env, args []string) error

	// UsageLine is the one-line usage message.
	// The first word in the line is taken to be the command name.
	UsageLine string

	// Short is the short description shown in the 'numfmt help' output.
	Short string

	// typed and styled report whether the command takes -type and -style.
	typed, styled bool
}

// Name returns the command's name: the first word in the usage line.
func (c *Command) Name() string {
	name := c.UsageLine
	if i := strings.Index(name, " "); i >= 0 {
		name = name[:i]
	}
	return name
}

// env holds the flag values and output of a single invocation.
type env struct {
	out     io.Writer
	lang    string
	profile string
	typ     string
	style   string
}

var commands = []*Command{
	cmdFormat,
	cmdParse,
	cmdProfile,
}

var errUsage = errors.New("usage")

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: numfmt <command> [flags] [arguments]\n\nThe commands are:\n\n")
	for _, c := range commands {
		fmt.Fprintf(w, "\t%-8s %s\n", c.Name(), c.Short)
	}
	fmt.Fprintf(w, "\nUse \"numfmt <command> -h\" for more information about a command.\n")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("numfmt: ")
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case err != nil:
		log.Fatal(err)
	}
}

// run executes the command named by args[0]. Usage text goes to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}
	var cmd *Command
	for _, c := range commands {
		if c.Name() == args[0] {
			cmd = c
		}
	}
	if cmd == nil {
		if args[0] != "help" {
			fmt.Fprintf(stderr, "numfmt: unknown command %q\n", args[0])
		}
		usage(stderr)
		return errUsage
	}

	e := &env{out: stdout}
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&e.lang, "lang", "", "derive the profile from the BCP 47 `tag`")
	fs.StringVar(&e.profile, "profile", "", "load the profile from a YAML `file`")
	if cmd.typed {
		fs.StringVar(&e.typ, "type", "float64", "numeric `type`: int32, uint32, int64, uint64, float32 or float64")
	}
	if cmd.styled {
		fs.StringVar(&e.style, "style", "any", "comma-separated parse `styles`, such as integer,thousands")
	}
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: numfmt %s\n\n%s.\n\nFlags:\n", cmd.UsageLine, cmd.Short)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	err := cmd.Run(cmd, e, fs.Args())
	if errors.Is(err, errUsage) {
		fs.Usage()
	}
	return err
}

// loadProfile returns the profile selected by the -lang and -profile flags.
func (e *env) loadProfile() (*locale.Profile, error) {
	switch {
	case e.lang != "" && e.profile != "":
		return nil, errors.New("-lang and -profile are mutually exclusive")
	case e.profile != "":
		return locale.LoadFile(e.profile)
	case e.lang != "":
		return locale.Lookup(e.lang)
	}
	return locale.Invariant(), nil
}

var cmdFormat = &Command{
	Run:       runFormat,
	UsageLine: "format [-lang tag | -profile file] [-type type] <format> <value>...",
	Short:     "format values with a standard or custom format string",
	typed:     true,
}

func runFormat(cmd *Command, e *env, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	p, err := e.loadProfile()
	if err != nil {
		return err
	}
	format := args[0]
	for _, v := range args[1:] {
		s, err := formatValue(e.typ, v, format, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.out, s)
	}
	return nil
}

// formatValue converts the Go literal v to typ and formats it.
func formatValue(typ, v, format string, p *locale.Profile) (string, error) {
	switch typ {
	case "int32":
		x, err := strconv.ParseInt(v, 0, 32)
		if err != nil {
			return "", err
		}
		return number.FormatInt32(int32(x), format, p)
	case "uint32":
		x, err := strconv.ParseUint(v, 0, 32)
		if err != nil {
			return "", err
		}
		return number.FormatUint32(uint32(x), format, p)
	case "int64":
		x, err := strconv.ParseInt(v, 0, 64)
		if err != nil {
			return "", err
		}
		return number.FormatInt64(x, format, p)
	case "uint64":
		x, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return "", err
		}
		return number.FormatUint64(x, format, p)
	case "float32":
		x, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return "", err
		}
		return number.FormatFloat32(float32(x), format, p)
	case "float64":
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", err
		}
		return number.FormatFloat64(x, format, p)
	}
	return "", fmt.Errorf("unknown type %q", typ)
}

var cmdParse = &Command{
	Run:       runParse,
	UsageLine: "parse [-lang tag | -profile file] [-type type] [-style styles] <text>...",
	Short:     "parse text into values of a numeric type",
	typed:     true,
	styled:    true,
}

func runParse(cmd *Command, e *env, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	p, err := e.loadProfile()
	if err != nil {
		return err
	}
	style, err := number.ParseStyle(e.style)
	if err != nil {
		return err
	}
	for _, s := range args {
		v, err := parseText(e.typ, s, style, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.out, v)
	}
	return nil
}

// parseText parses s as typ and returns the value in Go syntax.
func parseText(typ, s string, style number.Style, p *locale.Profile) (string, error) {
	switch typ {
	case "int32":
		v, err := number.ParseInt32(s, style, p)
		return strconv.FormatInt(int64(v), 10), err
	case "uint32":
		v, err := number.ParseUint32(s, style, p)
		return strconv.FormatUint(uint64(v), 10), err
	case "int64":
		v, err := number.ParseInt64(s, style, p)
		return strconv.FormatInt(v, 10), err
	case "uint64":
		v, err := number.ParseUint64(s, style, p)
		return strconv.FormatUint(v, 10), err
	case "float32":
		v, err := number.ParseFloat32(s, style, p)
		return strconv.FormatFloat(float64(v), 'g', -1, 32), err
	case "float64":
		v, err := number.ParseFloat64(s, style, p)
		return strconv.FormatFloat(v, 'g', -1, 64), err
	}
	return "", fmt.Errorf("unknown type %q", typ)
}

var cmdProfile = &Command{
	Run:       runProfile,
	UsageLine: "profile [-lang tag | -profile file]",
	Short:     "print the effective locale profile as YAML",
}

func runProfile(cmd *Command, e *env, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	p, err := e.loadProfile()
	if err != nil {
		return err
	}
	return p.Write(e.out)
}
