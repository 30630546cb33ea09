// Command portctl inspects and changes pin configuration on a board running
// the tm4c123 firmware.
//
//	portctl -device /dev/ttyACM0 list
//	portctl -device /dev/ttyACM0 mode PF1 alt5
//	portctl -device /dev/ttyACM0          # interactive
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"tivaport/host/mcu"
	"tivaport/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "serial device")
	baud    = flag.Int("baud", serial.DefaultBaud, "baud rate")
	timeout = flag.Duration("timeout", 500*time.Millisecond, "read timeout")
	verbose = flag.Bool("verbose", false, "log protocol traffic")
)

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = *timeout

	m, err := mcu.Connect(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "portctl: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	sh := newShell(m, os.Stdout)
	if flag.NArg() > 0 {
		if err := sh.exec(flag.Args()); err != nil {
			fmt.Fprintf(os.Stderr, "portctl: %v\n", err)
			m.Close()
			os.Exit(1)
		}
		return
	}
	if err := repl(sh, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "portctl: %v\n", err)
	}
}

func repl(sh *shell, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "type 'help' for commands, 'quit' to exit")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if quit := sh.line(scanner.Text()); quit {
			return nil
		}
	}
}
