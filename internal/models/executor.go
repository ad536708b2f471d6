package models

import (
	"encoding/json"
	"fmt"
)

// ActionKind discriminates the closed set of executor action shapes the
// backend emits.
type ActionKind string

const (
	ActionCodingAgentInitial  ActionKind = "coding_agent_initial"
	ActionCodingAgentFollowUp ActionKind = "coding_agent_follow_up"
	ActionScript              ActionKind = "script"
)

// ExecutorAction is the tagged union of executor action payloads
// attached to an execution process. Exactly the fields for the given
// Kind are populated.
type ExecutorAction struct {
	Kind ActionKind

	// Coding agent requests.
	Prompt   string
	Executor string
	Variant  *string

	// Script runs.
	Script string
}

type executorActionWire struct {
	Type     ActionKind `json:"type"`
	Prompt   string     `json:"prompt,omitempty"`
	Executor string     `json:"executor,omitempty"`
	Variant  *string    `json:"variant,omitempty"`
	Script   string     `json:"script,omitempty"`
}

// UnmarshalJSON decodes the backend's discriminated representation.
// Unknown kinds are an error so new backend shapes fail loudly instead
// of decoding to a half-filled action.
func (a *ExecutorAction) UnmarshalJSON(data []byte) error {
	var w executorActionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Type {
	case ActionCodingAgentInitial, ActionCodingAgentFollowUp:
		*a = ExecutorAction{Kind: w.Type, Prompt: w.Prompt, Executor: w.Executor, Variant: w.Variant}
	case ActionScript:
		*a = ExecutorAction{Kind: w.Type, Script: w.Script}
	default:
		return fmt.Errorf("unknown executor action type %q", w.Type)
	}
	return nil
}

// MarshalJSON encodes back to the backend's representation.
func (a ExecutorAction) MarshalJSON() ([]byte, error) {
	w := executorActionWire{Type: a.Kind}
	switch a.Kind {
	case ActionCodingAgentInitial, ActionCodingAgentFollowUp:
		w.Prompt = a.Prompt
		w.Executor = a.Executor
		w.Variant = a.Variant
	case ActionScript:
		w.Script = a.Script
	default:
		return nil, fmt.Errorf("unknown executor action type %q", a.Kind)
	}
	return json.Marshal(w)
}

// CodingAgent reports whether the action is a coding-agent request.
func (a ExecutorAction) CodingAgent() bool {
	return a.Kind == ActionCodingAgentInitial || a.Kind == ActionCodingAgentFollowUp
}
