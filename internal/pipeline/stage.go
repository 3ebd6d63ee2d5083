package pipeline

import (
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/eventlog"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

// Stage is one step of the expense pipeline.
type Stage[I, O any] func(I) (O, error)

// stageEvents describes how a stage reports itself to the event log.
type stageEvents[I, O any] struct {
	agent      string
	start      func(I) string
	failPrefix string
	success    func(O) (string, map[string]any)
}

// runStage emits a start event, runs stage, and emits exactly one success or
// error event. Errors are returned unchanged.
func runStage[I, O any](log *eventlog.Log, ev stageEvents[I, O], stage Stage[I, O], in I) (O, error) {
	log.Record(ev.agent, model.EventStart, ev.start(in), nil)

	out, err := stage(in)
	if err != nil {
		log.Record(ev.agent, model.EventError, ev.failPrefix+err.Error(), nil)
		var zero O
		return zero, err
	}

	msg, data := ev.success(out)
	log.Record(ev.agent, model.EventSuccess, msg, data)
	return out, nil
}
