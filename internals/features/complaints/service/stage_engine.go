// file: internals/features/complaints/service/stage_engine.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/complaints/model"
)

var (
	ErrNotFound          = errors.New("complaint not found")
	ErrInvalidTransition = errors.New("complaint already at terminal stage")
	ErrBlankNote         = errors.New("note must not be blank")
)

// SystemActor is recorded on timeline entries produced by escalation
// rather than by a person.
const SystemActor = "System"

/* =======================================================================
   Engine
======================================================================= */
/* Engine owns the complaint lifecycle: creation, comment accumulation
   and the strictly forward, one-step escalation over the fixed stage
   chain. The timeline is append-only; after any stage change its last
   entry carries the new current stage. */

type Engine struct {
	Store *datastore.Store
	Now   func() time.Time
}

func NewEngine(store *datastore.Store) *Engine {
	return &Engine{Store: store, Now: time.Now}
}

type CreateInput struct {
	StudentID        string
	Title            string
	Description      string
	Confidential     bool
	RelatedPaymentID string
	Attachments      []model.Attachment
}

// Create opens a complaint at the "submitted" stage with a single
// student-actor timeline entry.
func (e *Engine) Create(in CreateInput) *model.Complaint {
	e.Store.Lock()
	defer e.Store.Unlock()

	now := e.Now()
	studentID := in.StudentID
	if studentID == "" {
		studentID = e.Store.StudentID
	}

	attachments := make([]model.Attachment, 0, len(in.Attachments))
	for _, a := range in.Attachments {
		if a.ID == "" {
			a.ID = "att-" + uuid.NewString()
		}
		attachments = append(attachments, a)
	}

	submitted, _ := model.StageByID(model.StageSubmitted)
	c := &model.Complaint{
		ID:               e.Store.NextComplaintID(now.Year()),
		StudentID:        studentID,
		RelatedPaymentID: in.RelatedPaymentID,
		Title:            in.Title,
		Description:      in.Description,
		Confidential:     in.Confidential,
		Attachments:      attachments,
		CreatedAt:        now,
		UpdatedAt:        now,
		CurrentStage:     submitted.ID,
		Status:           model.ComplaintStatusOpen,
		Timeline: []model.TimelineEntry{
			{StageID: submitted.ID, StageName: submitted.Name, Actor: "Student", Timestamp: now},
		},
	}

	// Newest first, like the rest of the listing.
	e.Store.Complaints = append([]*model.Complaint{c}, e.Store.Complaints...)
	return snapshot(c)
}

// List returns all complaints, newest first.
func (e *Engine) List() []*model.Complaint {
	e.Store.Lock()
	defer e.Store.Unlock()

	out := make([]*model.Complaint, 0, len(e.Store.Complaints))
	for _, c := range e.Store.Complaints {
		out = append(out, snapshot(c))
	}
	return out
}

func (e *Engine) Get(id string) (*model.Complaint, error) {
	e.Store.Lock()
	defer e.Store.Unlock()

	c := e.Store.ComplaintByID(id)
	if c == nil {
		return nil, ErrNotFound
	}
	return snapshot(c), nil
}

// AddComment appends a timeline entry at the complaint's current stage.
// Stage and status are untouched. Blank notes are rejected. Comments
// stay allowed after resolution; the record keeps accumulating context
// even when the escalation chain is exhausted.
func (e *Engine) AddComment(id, actor, note string) (*model.Complaint, error) {
	if strings.TrimSpace(note) == "" {
		return nil, ErrBlankNote
	}
	if actor == "" {
		actor = "User"
	}

	e.Store.Lock()
	defer e.Store.Unlock()

	c := e.Store.ComplaintByID(id)
	if c == nil {
		return nil, ErrNotFound
	}

	stage, _ := model.StageByID(c.CurrentStage)
	now := e.Now()
	c.Timeline = append(c.Timeline, model.TimelineEntry{
		StageID:   stage.ID,
		StageName: stage.Name,
		Actor:     actor,
		Note:      note,
		Timestamp: now,
	})
	c.UpdatedAt = now
	return snapshot(c), nil
}

// Escalate advances the complaint one step along the stage chain and
// records a system-actor timeline entry. Reaching the terminal stage
// resolves the complaint; escalating past it fails and changes nothing.
func (e *Engine) Escalate(id string) (*model.Complaint, error) {
	e.Store.Lock()
	defer e.Store.Unlock()

	c := e.Store.ComplaintByID(id)
	if c == nil {
		return nil, ErrNotFound
	}

	next, ok := model.NextStage(c.CurrentStage)
	if !ok {
		return nil, ErrInvalidTransition
	}

	now := e.Now()
	c.CurrentStage = next.ID
	if next.ID == model.StageResolved {
		c.Status = model.ComplaintStatusResolved
	} else {
		c.Status = model.ComplaintStatusInProgress
	}
	c.Timeline = append(c.Timeline, model.TimelineEntry{
		StageID:   next.ID,
		StageName: next.Name,
		Actor:     SystemActor,
		Note:      "Escalated to " + next.Name,
		Timestamp: now,
	})
	c.UpdatedAt = now
	return snapshot(c), nil
}

func snapshot(c *model.Complaint) *model.Complaint {
	cp := *c
	return &cp
}
