package transport

import (
	"errors"
	"net/http"

	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/domain/view"
)

type overlayPayload struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

type viewPayload struct {
	Screen  string          `json:"screen"`
	Project *project.Record `json:"project,omitempty"`
	Phase   string          `json:"phase"`
	Overlay *overlayPayload `json:"overlay,omitempty"`
	Epoch   uint64          `json:"epoch"`
}

func snapshotPayload(snap view.Snapshot) viewPayload {
	out := viewPayload{
		Screen:  string(snap.State.Screen),
		Project: snap.State.Project,
		Phase:   string(snap.Phase),
		Epoch:   snap.Epoch,
	}
	if snap.Overlay != nil {
		out.Overlay = &overlayPayload{
			Label:  snap.Overlay.Label,
			Target: string(snap.Overlay.To.Screen),
		}
	}
	return out
}

func (s *Server) handleViewSnapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, snapshotPayload(s.nav.Snapshot()))
}

type navigateRequest struct {
	Screen string `json:"screen"`
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	screen, err := view.ParseScreen(req.Screen)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	accepted := s.nav.Request(screen)
	writeJSON(w, http.StatusOK, map[string]bool{"accepted": accepted})
}

type navigateProjectRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleNavigateProject(w http.ResponseWriter, r *http.Request) {
	var req navigateProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rec, err := s.projects.Get(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	accepted := s.nav.RequestProject(rec)
	writeJSON(w, http.StatusOK, map[string]bool{"accepted": accepted})
}
