package kanban

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/domain"
)

func TestClientUpdateStatus(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotBody statusPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token-123", srv.Client())
	err := c.UpdateStatus(context.Background(), 42, domain.StatusRepaired)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/requests/42/status", gotPath)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.Equal(t, "REPAIRED", gotBody.Status)
}

func TestClientUpdateStatusServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "maintenance request not found"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token-123", srv.Client())
	err := c.UpdateStatus(context.Background(), 42, domain.StatusRepaired)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maintenance request not found")
	assert.Contains(t, err.Error(), "404")
}

func TestClientFetchCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/requests", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"ok","body":[
			{"id":1,"subject":"Grinder overheating","status":"NEW"},
			{"id":2,"subject":"Spindle noise","status":"IN_PROGRESS"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token-123", srv.Client())
	cards, err := c.FetchCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, domain.StatusNew, cards[0].Status)
	assert.Equal(t, "Spindle noise", cards[1].Subject)
}

func TestBoardWithHTTPClientRevertsOnRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	notifier := &fakeNotifier{}
	b := NewBoard(NewClient(srv.URL, "t", srv.Client()), notifier)
	b.Load([]Card{{ID: 7, Status: domain.StatusNew}})

	err := b.MoveCard(context.Background(), 7, domain.StatusScrap, 0)
	require.Error(t, err)
	assert.Equal(t, []uint64{7}, cardIDs(b.Column(domain.StatusNew)))
	assert.Empty(t, b.Column(domain.StatusScrap))
	assert.Len(t, notifier.errors, 1)
}
