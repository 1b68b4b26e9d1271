package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arijitp/notekeeper/internal/shared"
)

type createNoteRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := accountIDFromContext(r.Context())
	if !ok {
		respondWithMessage(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if _, err := s.notes.Create(r.Context(), ownerID, req.Title); err != nil {
		if errors.Is(err, shared.ErrInvalidInput) {
			respondWithMessage(w, http.StatusBadRequest, "Title is required.")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		respondWithMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithMessage(w, http.StatusOK, "Note saved successfully")
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := accountIDFromContext(r.Context())
	if !ok {
		respondWithMessage(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	notes, err := s.notes.ListByOwner(r.Context(), ownerID)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		respondWithMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(notes) == 0 {
		respondWithMessage(w, http.StatusOK, "No notes found")
		return
	}

	respondWithJSON(w, http.StatusOK, notes)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := accountIDFromContext(r.Context())
	if !ok {
		respondWithMessage(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	noteID := chi.URLParam(r, "id")

	if err := s.notes.Delete(r.Context(), ownerID, noteID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			respondWithMessage(w, http.StatusNotFound, "Note not found or you don't have permission to delete this note")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		respondWithMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithMessage(w, http.StatusOK, "Note deleted successfully")
}
