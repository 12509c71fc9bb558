package research

import "fmt"

// Stage is a step of a research run, runs move only forward through stages
type Stage int

// research stages in execution order
const (
	StageStarted Stage = iota
	StageContextBuilt
	StageDiscovered
	StageDeduplicated
	StageEvaluated
	StageFiltered
	StageRanked
)

var stageNames = map[Stage]string{
	StageStarted:      "started",
	StageContextBuilt: "context_built",
	StageDiscovered:   "discovered",
	StageDeduplicated: "deduplicated",
	StageEvaluated:    "evaluated",
	StageFiltered:     "filtered",
	StageRanked:       "ranked",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// stageTracker guards stage transitions of a single run
type stageTracker struct {
	stage Stage
}

// advance moves to the next stage, moving backwards or staying is an error
func (t *stageTracker) advance(to Stage) error {
	if to <= t.stage {
		return fmt.Errorf("invalid stage transition %s -> %s", t.stage, to)
	}
	t.stage = to
	return nil
}
