package credential_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifyhub/apprise-node/internal/credential"
	"github.com/notifyhub/apprise-node/internal/domain"
)

func TestDescribe(t *testing.T) {
	d := credential.Describe()
	require.Len(t, d.Properties, 1)
	assert.Equal(t, "domain", d.Properties[0].Name)
	assert.Equal(t, domain.DefaultDomain, d.Properties[0].Default)
	assert.Equal(t, credential.Name, d.Name)
}

func TestTester_Test(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"ok", http.StatusOK, false},
		{"no content", http.StatusNoContent, false},
		{"not found", http.StatusNotFound, true},
		{"server error", http.StatusInternalServerError, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotMethod, gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod, gotPath = r.Method, r.URL.Path
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			err := credential.NewTester(nil).Test(context.Background(), domain.Credential{Domain: srv.URL + "/"})
			assert.Equal(t, http.MethodGet, gotMethod)
			assert.Equal(t, "/", gotPath)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTester_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := credential.NewTester(nil).Test(context.Background(), domain.Credential{Domain: url})
	require.Error(t, err)
}

func TestTester_EmptyDomain(t *testing.T) {
	err := credential.NewTester(nil).Test(context.Background(), domain.Credential{})
	assert.ErrorIs(t, err, domain.ErrEmptyDomain)
}
