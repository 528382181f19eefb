package events

import "github.com/atomicstack/sbbrowse/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit(reason string) {
	logging.Trace("app.quit", map[string]interface{}{"reason": reason})
}

func (AppTracer) Layout(layout string, width, height int) {
	logging.Trace("app.layout", map[string]interface{}{"layout": layout, "width": width, "height": height})
}
