package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voltedge/internal/http/middleware"
	"voltedge/internal/service"
)

// UserHandlers serves user lookup, balance and history endpoints.
type UserHandlers struct {
	auth     *service.AuthService
	charging *service.ChargingService
	logger   *zap.Logger
}

// NewUserHandlers returns handler struct.
func NewUserHandlers(auth *service.AuthService, charging *service.ChargingService, logger *zap.Logger) *UserHandlers {
	return &UserHandlers{auth: auth, charging: charging, logger: logger}
}

// List handles GET /users. Admin only (enforced by middleware).
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	users := h.auth.Users()
	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, newUserResponse(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /users/{id}. Users see themselves; admins see anyone.
func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.auth.User(id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if user.ID != current.ID && !current.IsAdmin() {
		writeError(w, http.StatusForbidden, "cannot view another user")
		return
	}
	writeJSON(w, http.StatusOK, newUserResponse(user))
}

type rechargeRequest struct {
	Amount float64 `json:"amount"`
}

type rechargeResponse struct {
	UserID          string  `json:"user_id"`
	PreviousBalance float64 `json:"previous_balance"`
	Amount          float64 `json:"amount"`
	NewBalance      float64 `json:"new_balance"`
}

// Recharge handles POST /users/{id}/recharge. Users may only top up their
// own balance.
func (h *UserHandlers) Recharge(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if id != current.ID {
		writeError(w, http.StatusForbidden, "can only recharge own balance")
		return
	}

	var req rechargeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	previous := current.Balance
	user, err := h.charging.Recharge(id, req.Amount)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rechargeResponse{
		UserID:          user.ID.String(),
		PreviousBalance: previous,
		Amount:          req.Amount,
		NewBalance:      user.Balance,
	})
}

// History handles GET /users/{id}/history. Users see their own history;
// admins see anyone's.
func (h *UserHandlers) History(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if id != current.ID && !current.IsAdmin() {
		writeError(w, http.StatusForbidden, "cannot view another user's history")
		return
	}

	sessions, err := h.charging.History(id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	resp := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, newSessionResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}
