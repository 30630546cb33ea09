// Command portgen turns a YAML pin table into Go source for port.Driver.
//
//	portgen -in launchpad.yaml -out launchpad_cfg.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"tivaport/internal/pincfg"
)

var (
	in    = flag.String("in", "", "YAML pin table")
	out   = flag.String("out", "", "Go file to write (default stdout)")
	check = flag.Bool("check", false, "validate only, print warnings")
)

func main() {
	flag.Parse()
	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: portgen -in table.yaml [-out table.go] [-check]")
		os.Exit(2)
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "portgen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	f, err := pincfg.Load(*in)
	if err != nil {
		return err
	}
	_, warnings, err := f.Config()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%s: warning: %s\n", *in, w)
	}
	if *check {
		return nil
	}

	var buf bytes.Buffer
	if err := pincfg.Generate(&buf, f, filepath.Base(*in)); err != nil {
		return err
	}
	if *out == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(*out, buf.Bytes(), 0o644)
}
