package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/notifyhub/apprise-node/internal/api/middleware"
	"github.com/notifyhub/apprise-node/internal/domain"
)

// Executor runs one batch of items through the Apprise node.
type Executor interface {
	Execute(ctx context.Context, cred domain.Credential, node domain.RawParams, items []domain.Item, policy domain.Policy) ([]domain.Result, error)
}

// ExecuteRequest is the inbound payload for a node execution.
//
// Policy takes precedence over ContinueOnFail when both are set.
type ExecuteRequest struct {
	Domain         string           `json:"domain,omitempty"`
	Parameters     domain.RawParams `json:"parameters"`
	Items          []map[string]any `json:"items"`
	ContinueOnFail bool             `json:"continueOnFail,omitempty"`
	Policy         string           `json:"policy,omitempty"`
}

// ResultItem is one output record in an execute response.
type ResultItem struct {
	Index int            `json:"index"`
	JSON  map[string]any `json:"json"`
	Error string         `json:"error,omitempty"`
}

// ExecuteHandler adapts HTTP requests to the batch processor.
type ExecuteHandler struct {
	exec          Executor
	defaultDomain string
	maxBatchSize  int
	logger        *zap.Logger
}

func NewExecuteHandler(exec Executor, defaultDomain string, maxBatchSize int, logger *zap.Logger) *ExecuteHandler {
	return &ExecuteHandler{exec: exec, defaultDomain: defaultDomain, maxBatchSize: maxBatchSize, logger: logger}
}

// Execute handles POST /api/v1/execute
//
// @Summary  Send one Apprise notification per input item
// @Tags     node
// @Accept   json
// @Produce  json
// @Param    body  body      ExecuteRequest  true  "Node parameters and items"
// @Success  200   {object}  map[string]any
// @Failure  422   {object}  map[string]any
// @Failure  502   {object}  map[string]any
// @Router   /api/v1/execute [post]
func (h *ExecuteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Items) > h.maxBatchSize {
		mapError(w, fmt.Errorf("%w: %d > %d", domain.ErrBatchTooLarge, len(req.Items), h.maxBatchSize))
		return
	}

	policy := domain.PolicyFromContinueOnFail(req.ContinueOnFail)
	if req.Policy != "" {
		p, err := domain.ParsePolicy(req.Policy)
		if err != nil {
			mapError(w, err)
			return
		}
		policy = p
	}

	cred := domain.Credential{Domain: h.defaultDomain}
	if req.Domain != "" {
		cred.Domain = req.Domain
	}

	items := make([]domain.Item, len(req.Items))
	for i, j := range req.Items {
		items[i] = domain.Item{Index: i, JSON: j}
	}

	results, err := h.exec.Execute(r.Context(), cred, req.Parameters, items, policy)
	if err != nil {
		h.logger.Warn("execute failed",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		mapError(w, err)
		return
	}

	out := make([]ResultItem, len(results))
	for i, res := range results {
		out[i] = ResultItem{Index: res.Index, JSON: res.JSON}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{"items": out})
}
