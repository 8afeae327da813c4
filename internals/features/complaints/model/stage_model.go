// file: internals/features/complaints/model/stage_model.go
package model

/* ===================== Escalation stages ===================== */
/* Fixed ordered chain. Transitions are strictly forward, one step
   at a time; "resolved" is terminal. */

const (
	StageSubmitted = "submitted"
	StageC3        = "c3"
	StageHA        = "ha"
	StagePrincipal = "principal"
	StageDTEHead   = "dte_head"
	StageResolved  = "resolved"
)

type Stage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Stages is the complete escalation chain, in order.
var Stages = []Stage{
	{ID: StageSubmitted, Name: "Submitted"},
	{ID: StageC3, Name: "C3 Section"},
	{ID: StageHA, Name: "HA"},
	{ID: StagePrincipal, Name: "Principal"},
	{ID: StageDTEHead, Name: "DTE Head Officer"},
	{ID: StageResolved, Name: "Resolved"},
}

// StageByID looks a stage up by its id.
func StageByID(id string) (Stage, bool) {
	for _, s := range Stages {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}

// NextStage returns the stage that follows id in the chain.
// ok is false when id is unknown or already terminal.
func NextStage(id string) (Stage, bool) {
	for i, s := range Stages {
		if s.ID == id {
			if i+1 < len(Stages) {
				return Stages[i+1], true
			}
			return Stage{}, false
		}
	}
	return Stage{}, false
}
