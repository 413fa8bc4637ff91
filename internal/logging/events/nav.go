package events

import "github.com/atomicstack/ringmenu/internal/logging"

type NavTracer struct{}

type InputTracer struct{}

var (
	Nav   = NavTracer{}
	Input = InputTracer{}
)

func (NavTracer) Transition(action string, heading, item int, narration string) {
	logging.Trace("nav.transition", map[string]interface{}{
		"action":    action,
		"heading":   heading,
		"item":      item,
		"narration": narration,
	})
}

func (NavTracer) Invalid(raw string) {
	logging.Trace("nav.invalid", map[string]interface{}{"raw": raw})
}

func (InputTracer) Malformed(table string, seq []byte) {
	logging.Trace("input.malformed", map[string]interface{}{"table": table, "bytes": seq})
}

func (InputTracer) Key(kind, raw string) {
	logging.Trace("input.key", map[string]interface{}{"kind": kind, "raw": raw})
}
