package newsletter

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Innovora/pkg/kit"
)

const maxBodyBytes = 1 << 20

// Same shape check the storefront client applies before submitting:
// something@something.tld with no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(kit.MethodNotAllowed(http.MethodPost, http.MethodOptions))

	r.Post("/", s.subscribe)

	return r
}

type subscribeReq struct {
	Email string `json:"email"`
}

type subscribeResp struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

func (s *Server) subscribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req subscribeReq
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Email is required")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "Email is required")
		return
	}
	if !emailPattern.MatchString(email) {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid email format")
		return
	}

	sub, err := s.Store.Subscribe(r.Context(), email)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("newsletter subscribe failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to subscribe to newsletter")
		return
	}

	if s.Log != nil {
		s.Log.Info("newsletter subscription", zap.String("email", sub.Email))
	}

	kit.WriteJSON(w, http.StatusOK, subscribeResp{
		Message: "Successfully subscribed to newsletter",
		Email:   sub.Email,
	})
}
