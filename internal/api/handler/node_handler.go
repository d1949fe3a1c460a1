package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/notifyhub/apprise-node/internal/credential"
	"github.com/notifyhub/apprise-node/internal/domain"
	"github.com/notifyhub/apprise-node/internal/node"
)

// CredentialTester checks that an Apprise instance is reachable.
type CredentialTester interface {
	Test(ctx context.Context, cred domain.Credential) error
}

// NodeHandler serves the node's declarative metadata and the credential test.
type NodeHandler struct {
	tester        CredentialTester
	defaultDomain string
	logger        *zap.Logger
}

func NewNodeHandler(tester CredentialTester, defaultDomain string, logger *zap.Logger) *NodeHandler {
	return &NodeHandler{tester: tester, defaultDomain: defaultDomain, logger: logger}
}

// Describe handles GET /api/v1/node
func (h *NodeHandler) Describe(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"node":       node.Describe(),
		"credential": credential.Describe(),
	})
}

// TestCredential handles POST /api/v1/credential/test
//
// The body is optional; without one the configured domain is probed.
func (h *NodeHandler) TestCredential(w http.ResponseWriter, r *http.Request) {
	cred := domain.Credential{Domain: h.defaultDomain}

	var body domain.Credential
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.Domain != "" {
		cred.Domain = body.Domain
	}

	if err := h.tester.Test(r.Context(), cred); err != nil {
		h.logger.Info("credential test failed", zap.String("domain", cred.BaseURL()), zap.Error(err))
		mapError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "reachable", "domain": cred.BaseURL()})
}
