package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/domain/review"
)

type projectBody struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Desc     string `json:"desc"`
	FullDesc string `json:"full_desc"`
	Image    string `json:"img"`
	Featured bool   `json:"featured"`
	Year     string `json:"year"`
	Location string `json:"location"`
	Client   string `json:"client"`
	Area     string `json:"area"`
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	recs, err := s.projects.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	recs, err := s.projects.Featured(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	rec, err := s.projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var body projectBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rec, err := s.projects.Create(r.Context(), project.CreateRequest{
		Title:    body.Title,
		Category: body.Category,
		Desc:     body.Desc,
		FullDesc: body.FullDesc,
		Image:    body.Image,
		Featured: body.Featured,
		Year:     body.Year,
		Location: body.Location,
		Client:   body.Client,
		Area:     body.Area,
	})
	if err != nil {
		if errors.Is(err, project.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var body projectBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rec, err := s.projects.Update(r.Context(), chi.URLParam(r, "id"), project.UpdateRequest{
		Title:    body.Title,
		Category: body.Category,
		Desc:     body.Desc,
		FullDesc: body.FullDesc,
		Image:    body.Image,
		Featured: body.Featured,
		Year:     body.Year,
		Location: body.Location,
		Client:   body.Client,
		Area:     body.Area,
	})
	if err != nil {
		switch {
		case errors.Is(err, project.ErrProjectNotFound):
			writeError(w, http.StatusNotFound, "project not found")
		case errors.Is(err, project.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// confirmed reports whether the caller completed the delete confirmation
// step. Declining the confirmation leaves the record untouched.
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		writeError(w, http.StatusBadRequest, "confirmation required")
		return
	}
	if err := s.projects.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reviewBody struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Text  string `json:"text"`
	Image string `json:"img"`
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	revs, err := s.reviews.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, revs)
}

func reviewID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (s *Server) handleGetReview(w http.ResponseWriter, r *http.Request) {
	id, err := reviewID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}
	rev, err := s.reviews.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, review.ErrReviewNotFound) {
			writeError(w, http.StatusNotFound, "review not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var body reviewBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rev, err := s.reviews.Create(r.Context(), review.CreateRequest{
		ID:    body.ID,
		Name:  body.Name,
		Role:  body.Role,
		Text:  body.Text,
		Image: body.Image,
	})
	if err != nil {
		if errors.Is(err, review.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, rev)
}

func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := reviewID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}
	var body reviewBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rev, err := s.reviews.Update(r.Context(), id, review.UpdateRequest{
		Name:  body.Name,
		Role:  body.Role,
		Text:  body.Text,
		Image: body.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, review.ErrReviewNotFound):
			writeError(w, http.StatusNotFound, "review not found")
		case errors.Is(err, review.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		writeError(w, http.StatusBadRequest, "confirmation required")
		return
	}
	id, err := reviewID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}
	if err := s.reviews.Remove(r.Context(), id); err != nil {
		if errors.Is(err, review.ErrReviewNotFound) {
			writeError(w, http.StatusNotFound, "review not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
