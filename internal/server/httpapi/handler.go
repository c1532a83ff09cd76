package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avergara/reservas/internal/common"
)

// Client-facing messages. Kept generic: internal failure detail is logged,
// never returned.
const (
	msgUserCreated        = "Usuario creado"
	msgUserExists         = "Ya existe el usuario"
	msgInvalidCredentials = "Credenciales inválidas"
	msgInvalidBody        = "Datos inválidos"
	msgAccessDenied       = "Acceso denegado"
	msgInvalidToken       = "Token inválido"
	msgInternalError      = "Error interno"
	msgReservationCreated = "Reserva creada"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type reservationRequest struct {
	Fecha string `json:"fecha"`
	Hora  string `json:"hora"`
	Sala  string `json:"sala"`
}

type reservationResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Fecha  string `json:"fecha"`
	Hora   string `json:"hora"`
	Sala   string `json:"sala"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleRoot reports the API banner and its endpoint map.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "API de Reservas - Sistema funcionando",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"auth":     "/api/auth",
			"reservas": "/api/reservas",
		},
	})
}

// handleRegister creates a new account. Duplicate emails are a 400 with a
// fixed message; only presence of email and password is validated.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	_, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusBadRequest, msgUserExists)
			return
		}
		s.logger.Error(r.Context(), "register failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"msg": msgUserCreated})
}

// handleLogin verifies credentials and returns a signed token. Unknown
// email and wrong password produce the identical response.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			writeError(w, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// handleCreateReservation stores a reservation owned by the authenticated
// subject. The owner id is taken from the request context only; client
// input cannot influence it.
func (s *Server) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if _, err := s.reservations.Create(r.Context(), userID, req.Fecha, req.Hora, req.Sala); err != nil {
		s.logger.Error(r.Context(), "reservation create failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"msg": msgReservationCreated})
}

// handleListReservations returns the authenticated subject's reservations.
func (s *Server) handleListReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	list, err := s.reservations.ListByOwner(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "reservation list failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	out := make([]reservationResponse, 0, len(list))
	for _, res := range list {
		out = append(out, reservationResponse{
			ID:     res.ID,
			UserID: res.UserID,
			Fecha:  res.Date,
			Hora:   res.Time,
			Sala:   res.Room,
		})
	}

	writeJSON(w, http.StatusOK, out)
}
