package port

// DebugWriter writes one line of diagnostic output.
type DebugWriter func(string)

// debugPrintln is replaced by platform code; no-op by default.
var debugPrintln DebugWriter = func(string) {}

// SetDebugWriter redirects diagnostic output (UART, semihosting, stderr).
func SetDebugWriter(w DebugWriter) {
	if w == nil {
		w = func(string) {}
	}
	debugPrintln = w
}

// DebugPrintln writes a diagnostic line.
func DebugPrintln(msg string) {
	debugPrintln(msg)
}
