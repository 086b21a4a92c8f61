package valueobjects

import "fmt"

// PolicyKind is the resource policy type. Only TYPE_CUSTOM policies, the
// ones set by submitters in the file form, take part in status resolution.
type PolicyKind string

const (
	KindCustom     PolicyKind = "TYPE_CUSTOM"
	KindSubmission PolicyKind = "TYPE_SUBMISSION"
	KindWorkflow   PolicyKind = "TYPE_WORKFLOW"
	KindInherited  PolicyKind = "TYPE_INHERITED"
	KindNone       PolicyKind = ""
)

var validKinds = map[PolicyKind]bool{
	KindCustom:     true,
	KindSubmission: true,
	KindWorkflow:   true,
	KindInherited:  true,
	KindNone:       true,
}

func NewPolicyKind(kind string) (PolicyKind, error) {
	k := PolicyKind(kind)
	if !validKinds[k] {
		return "", fmt.Errorf("invalid policy kind: %s", kind)
	}
	return k, nil
}

func (k PolicyKind) String() string {
	return string(k)
}

// Action is the operation a resource policy grants.
type Action string

const (
	ActionRead                 Action = "READ"
	ActionWrite                Action = "WRITE"
	ActionDelete               Action = "DELETE"
	ActionAdd                  Action = "ADD"
	ActionRemove               Action = "REMOVE"
	ActionAdmin                Action = "ADMIN"
	ActionDefaultBitstreamRead Action = "DEFAULT_BITSTREAM_READ"
	ActionDefaultItemRead      Action = "DEFAULT_ITEM_READ"
)

var validActions = map[Action]bool{
	ActionRead:                 true,
	ActionWrite:                true,
	ActionDelete:               true,
	ActionAdd:                  true,
	ActionRemove:               true,
	ActionAdmin:                true,
	ActionDefaultBitstreamRead: true,
	ActionDefaultItemRead:      true,
}

func NewAction(action string) (Action, error) {
	if action == "" {
		return "", fmt.Errorf("action cannot be empty")
	}

	a := Action(action)
	if !validActions[a] {
		return "", fmt.Errorf("invalid action: %s", action)
	}
	return a, nil
}

func (a Action) String() string {
	return string(a)
}
