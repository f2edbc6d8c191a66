package tabgroup

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// ErrNoScheduler is returned by New when AutoFocus is requested without a
// Scheduler to defer the focus request to.
var ErrNoScheduler = errors.New("tabgroup: auto-focus requires a scheduler")

// Options configure a Controller.
type Options struct {
	// AutoFocus focuses the first member on a later turn once a root is set.
	AutoFocus bool
	// UseArrows lets Left/Up move backward and Right/Down move forward.
	UseArrows bool
	// Debug enables diagnostic logs and spans. It never changes behavior.
	Debug bool

	// PassiveAutoFocus makes auto-focus only request focus on the first
	// member, leaving the active position unset. The first Tab then lands
	// on position 0 instead of 1.
	PassiveAutoFocus bool
	// DisableShiftTab stops shift+Tab from moving backward. The key then
	// passes through to native handling.
	DisableShiftTab bool

	// Scheduler runs deferred auto-focus on a later turn. Required with
	// AutoFocus.
	Scheduler Scheduler
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
	// TracerProvider supplies the tracer used when Debug is set. Nil uses
	// the global provider.
	TracerProvider trace.TracerProvider
}
