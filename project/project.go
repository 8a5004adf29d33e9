// Package project owns the durable form of a composition: the project
// snapshot, the local SQLite-backed store, debounced autosave, and
// load-time conflict detection.
//
// The element store and the history engine are transient; a project
// load replaces the store contents wholesale and resets history.
package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/creatorkit/canvas"
)

// SchemaVersion tags saved projects so future migrations can tell
// generations apart.
const SchemaVersion = "1"

// CanvasSize is the logical surface size stored with a project. It is
// fixed at 800×600 today but persisted explicitly so old projects stay
// readable if that ever changes.
type CanvasSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Project aggregates everything needed to restore a composition.
type Project struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	CampaignTitle string           `json:"campaignTitle"`
	Elements      []canvas.Element `json:"elements"`
	CanvasSize    CanvasSize       `json:"canvasSize"`
	Version       string           `json:"version"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// New creates an empty project with a fresh id and the standard canvas.
func New(title, campaignTitle string) Project {
	now := time.Now().UTC()
	return Project{
		ID:            uuid.NewString(),
		Title:         title,
		CampaignTitle: campaignTitle,
		CanvasSize:    CanvasSize{Width: int(canvas.CanvasWidth), Height: int(canvas.CanvasHeight)},
		Version:       SchemaVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Snapshot captures the current element store contents into the project,
// in z order. Called right before a save.
func (p *Project) Snapshot(st *canvas.Store) {
	p.Elements = st.All()
}

// Restore replaces the element store contents with the project's
// elements. The caller resets the history engine alongside.
func (p *Project) Restore(st *canvas.Store) {
	st.Replace(p.Elements)
}
