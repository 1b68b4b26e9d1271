package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/arijitp/notekeeper/internal/shared"
)

// dobLayout is the wire format for the optional date-of-birth field.
const dobLayout = "2006-01-02"

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	DOB      string `json:"dob,omitempty"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resendOTPRequest struct {
	Email string `json:"email"`
}

type signInResponse struct {
	Message string `json:"message"`
	User    any    `json:"user"`
	Token   string `json:"token"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var dob *time.Time
	if req.DOB != "" {
		parsed, err := time.Parse(dobLayout, req.DOB)
		if err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid date of birth.")
			return
		}
		dob = &parsed
	}

	err := s.auth.SignUp(r.Context(), req.Name, req.Email, dob, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrMissingField):
			respondWithMessage(w, http.StatusBadRequest, "Name, email and password are required.")
		case errors.Is(err, shared.ErrDuplicateEmail):
			respondWithMessage(w, http.StatusBadRequest, "Email already registered.")
		case errors.Is(err, shared.ErrEmailDelivery):
			s.logger.Error(r.Context(), err.Error())
			respondWithMessage(w, http.StatusInternalServerError, "Failed to send OTP email.")
		default:
			s.logger.Error(r.Context(), err.Error())
			respondWithMessage(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	respondWithMessage(w, http.StatusOK, "OTP sent to your email.")
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err := s.auth.Verify(r.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrMissingField):
			respondWithMessage(w, http.StatusBadRequest, "Email and OTP are required.")
		case errors.Is(err, shared.ErrNotFound):
			respondWithMessage(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, shared.ErrInvalidOTP):
			respondWithMessage(w, http.StatusBadRequest, "Invalid or expired OTP.")
		default:
			s.logger.Error(r.Context(), err.Error())
			respondWithMessage(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	respondWithMessage(w, http.StatusOK, "User verified successfully.")
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	result, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrMissingField):
			respondWithMessage(w, http.StatusBadRequest, "Email and password are required.")
		case errors.Is(err, shared.ErrNotFound):
			respondWithMessage(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, shared.ErrNotVerified):
			respondWithMessage(w, http.StatusUnauthorized, "Please verify your email.")
		case errors.Is(err, shared.ErrIncorrectPassword):
			respondWithMessage(w, http.StatusUnauthorized, "Incorrect password.")
		default:
			s.logger.Error(r.Context(), err.Error())
			respondWithMessage(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, signInResponse{
		Message: "Signed in successfully.",
		User:    result.Profile,
		Token:   result.Token,
	})
}

func (s *Server) handleResendOTP(w http.ResponseWriter, r *http.Request) {
	var req resendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err := s.auth.ResendOTP(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrMissingField):
			respondWithMessage(w, http.StatusBadRequest, "Email is required.")
		case errors.Is(err, shared.ErrNotFound):
			respondWithMessage(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, shared.ErrAlreadyVerified):
			respondWithMessage(w, http.StatusBadRequest, "User already verified.")
		case errors.Is(err, shared.ErrEmailDelivery):
			s.logger.Error(r.Context(), err.Error())
			respondWithMessage(w, http.StatusInternalServerError, "Failed to send OTP email.")
		default:
			s.logger.Error(r.Context(), err.Error())
			respondWithMessage(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	respondWithMessage(w, http.StatusOK, "OTP sent to your email.")
}
