package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AlexZinkM/leochain-explorer/internal/model"
	"github.com/AlexZinkM/leochain-explorer/leochain"
)

// Transferer submits token transfers
type Transferer interface {
	Transfer(ctx context.Context, req model.TransferRequest, observe leochain.Observer) *model.TransferResult
}

// TransferHandler serves token transfers
type TransferHandler struct {
	transferer   Transferer
	defaultDenom string
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(transferer Transferer, defaultDenom string) *TransferHandler {
	return &TransferHandler{transferer: transferer, defaultDenom: defaultDenom}
}

// Transfer handles POST /api/transfer
// @Summary      Transfer tokens
// @Description  Signs and broadcasts one bank send from a local account, then waits for inclusion.
// @Description  The response always carries the final state; failed transfers are not HTTP errors.
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer data"
// @Success      200      {object}  model.TransferResult
// @Failure      400      {object}  model.ErrorResponse
// @Failure      415  {object}  model.ErrorResponse
// @Router       /api/transfer [post]
func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) || !requireJSON(w, r) {
		return
	}

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if req.Denom == "" {
		req.Denom = h.defaultDenom
	}

	writeJSON(w, http.StatusOK, h.transferer.Transfer(r.Context(), req, nil))
}
