package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
	"github.com/fleshka4/twindex-reader/internal/transport/http/dto"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn().Err(err).Msg("response write error")
	}
}

// writeBadRequest reports a query validation failure.
func (s *Server) writeBadRequest(w http.ResponseWriter, code int, err error) {
	if code == 0 {
		code = http.StatusBadRequest
	}
	s.writeJSON(w, code, dto.ErrorResponse{Error: err.Error()})
}

// writeServiceError maps service failures onto status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrDivisionByZero):
		s.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrPoolNotFound):
		s.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrRemoteCall):
		s.log.Warn().Err(err).Msg("remote call failed")
		s.writeJSON(w, http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	default:
		s.log.Error().Err(err).Msg("internal error")
		s.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}
