package events

import "github.com/atomicstack/sbbrowse/internal/logging"

type BackendTracer struct{}

var Backend = BackendTracer{}

func (BackendTracer) Load(repo string, categories, packages int) {
	logging.Trace("backend.load", map[string]interface{}{"repo": repo, "categories": categories, "packages": packages})
}

func (BackendTracer) Exec(argv []string) {
	logging.Trace("backend.exec", map[string]interface{}{"argv": argv})
}

func (BackendTracer) Change(path, op string) {
	logging.Trace("backend.change", map[string]interface{}{"path": path, "op": op})
}

func (BackendTracer) Error(source string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"source": source, "error": err.Error()})
}
