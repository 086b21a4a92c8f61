package valueobjects

import "fmt"

// LifecycleStage is where an item sits in the submission life cycle.
type LifecycleStage string

const (
	StageWorkspace LifecycleStage = "workspace"
	StageWorkflow  LifecycleStage = "workflow"
	StageArchived  LifecycleStage = "archived"
	StageWithdrawn LifecycleStage = "withdrawn"
)

func NewLifecycleStage(stage string) (LifecycleStage, error) {
	s := LifecycleStage(stage)
	switch s {
	case StageWorkspace, StageWorkflow, StageArchived, StageWithdrawn:
		return s, nil
	}
	return "", fmt.Errorf("invalid lifecycle stage: %s", stage)
}

func (s LifecycleStage) String() string {
	return string(s)
}

// InReview reports whether the item waits in the review workflow and has
// not been archived yet. Download URLs are only honoured in this stage.
func (s LifecycleStage) InReview() bool {
	return s == StageWorkflow
}
