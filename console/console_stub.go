//go:build !(js && wasm)

package console

import (
	"fmt"
	"log/slog"
	"strings"
)

// Outside the browser the console forwards to the default slog logger, so
// component warnings show up in CLI output and test logs.

// Log writes args at info level.
func Log(args ...any) {
	slog.Info(join(args))
}

// Warn writes args at warn level.
func Warn(args ...any) {
	slog.Warn(join(args))
}

// Error writes args at error level.
func Error(args ...any) {
	slog.Error(join(args))
}

func join(args []any) string {
	// Sprintln spaces every operand, unlike Sprint.
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
