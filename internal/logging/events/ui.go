package events

import "github.com/atomicstack/sbbrowse/internal/logging"

type ListTracer struct{}

type InputTracer struct{}

type DialogTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	List    = ListTracer{}
	Input   = InputTracer{}
	Dialog  = DialogTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (ListTracer) Move(pane string, highlight, first int, movement string) {
	logging.Trace("list.move", map[string]interface{}{
		"pane":      pane,
		"highlight": highlight,
		"first":     first,
		"movement":  movement,
	})
}

func (ListTracer) Activate(pane string) {
	logging.Trace("list.activate", map[string]interface{}{"pane": pane})
}

func (ListTracer) Tag(pane, item string, tagged bool) {
	logging.Trace("list.tag", map[string]interface{}{"pane": pane, "item": item, "tagged": tagged})
}

func (ListTracer) QuickSearch(pane, query string, idx int) {
	logging.Trace("list.quick-search", map[string]interface{}{"pane": pane, "query": query, "index": idx})
}

func (InputTracer) Key(target, key string) {
	logging.Trace("input.key", map[string]interface{}{"target": target, "key": key})
}

func (InputTracer) Mouse(target string, x, y int, mouse string) {
	logging.Trace("input.mouse", map[string]interface{}{"target": target, "x": x, "y": y, "mouse": mouse})
}

func (DialogTracer) Open(title string, depth int) {
	logging.Trace("dialog.open", map[string]interface{}{"title": title, "depth": depth})
}

func (DialogTracer) Close(title, signal string, depth int) {
	logging.Trace("dialog.close", map[string]interface{}{"title": title, "signal": signal, "depth": depth})
}

func (DialogTracer) Resize(depth, width, height int) {
	logging.Trace("dialog.resize", map[string]interface{}{"depth": depth, "width": width, "height": height})
}

func (ActionTracer) Start(action, pkg string) {
	logging.Trace("action.start", map[string]interface{}{"action": action, "package": pkg})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
