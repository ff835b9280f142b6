/**
 * @description
 * This file defines the HTTP handlers for the account endpoints. Handlers are
 * responsible for parsing requests, resolving the authenticated owner, calling
 * the appropriate service method, and writing the response.
 *
 * @dependencies
 * - Standard Go libraries for HTTP, JSON, etc.
 * - Chi router for URL parameter handling.
 * - The service's internal packages for app logic and middleware.
 */
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oriemcapital/banking-service/internal/app"
	"github.com/oriemcapital/banking-service/internal/domain"
	"github.com/oriemcapital/banking-service/pkg/middleware"
)

// AccountHandler holds the dependencies for account-related handlers.
type AccountHandler struct {
	service *app.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *app.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// OpenAccountRequest defines the expected JSON body for opening an account.
type OpenAccountRequest struct {
	AccountType    string          `json:"account_type"`
	Nickname       *string         `json:"nickname"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

// UpdateAccountRequest defines the expected JSON body for updating an account.
// Omitted fields are left unchanged; an explicit empty nickname overwrites.
type UpdateAccountRequest struct {
	Nickname *string `json:"nickname"`
	Status   *string `json:"status"`
}

// accountResponse is the wire shape of an account record. The balance is a
// fixed two-decimal string, never a binary float.
type accountResponse struct {
	ID          string  `json:"id"`
	AccountType string  `json:"account_type"`
	Nickname    *string `json:"nickname"`
	Balance     string  `json:"balance"`
	Status      string  `json:"status"`
}

func toAccountResponse(account *domain.Account) accountResponse {
	return accountResponse{
		ID:          account.ID,
		AccountType: string(account.Type),
		Nickname:    account.Nickname,
		Balance:     account.Balance.StringFixed(2),
		Status:      string(account.Status),
	}
}

// OpenAccount handles POST /accounts.
func (h *AccountHandler) OpenAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.OpenAccount(r.Context(), userID, app.OpenAccountInput{
		Type:           req.AccountType,
		Nickname:       req.Nickname,
		InitialDeposit: req.InitialDeposit,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

// ListAccounts handles GET /accounts. Closed accounts are excluded.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accounts, err := h.service.ListAccounts(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, toAccountResponse(&accounts[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

// GetAccount handles GET /accounts/{id}.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	account, err := h.service.GetAccount(r.Context(), userID, accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// UpdateAccount handles PUT /accounts/{id}.
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.UpdateAccount(r.Context(), userID, accountID, app.UpdateAccountInput{
		Nickname: req.Nickname,
		Status:   req.Status,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// CloseAccount handles DELETE /accounts/{id} (soft delete).
func (h *AccountHandler) CloseAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.CloseAccount(r.Context(), userID, accountID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// accountIDParam parses the {id} path parameter. A malformed ID is reported
// as not found, the same answer a cross-owner lookup gets.
func accountIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusNotFound, domain.ErrAccountNotFound.Error())
		return "", false
	}
	return id.String(), true
}

// writeServiceError maps the service's error kinds to HTTP statuses. Unknown
// failures get a generic 500 body so no internal detail leaks to the caller.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, domain.ErrAccountNotFound.Error())
	case errors.Is(err, domain.ErrDuplicateAccount), errors.Is(err, domain.ErrVersionConflict), errors.Is(err, domain.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Something went wrong")
	}
}

// writeJSON is a helper to write JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already on the wire, so all we can do is log.
		log.Printf("ERROR: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
