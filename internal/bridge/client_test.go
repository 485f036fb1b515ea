package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/ledger-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBridge(t *testing.T, h http.HandlerFunc) Bridge {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPBridge(Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestHTTPBridge_SendEventRequest(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody models.SignedEventRequest

	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.EventRequestResponse{
			RequestID: "J8618wGO7hH4wRuEeL0Ob5XNI9Q73BlCNlV8cWBORq78",
		})
	})

	req := models.SignedEventRequest{
		Request: json.RawMessage(`{"Fact":{"subject_id":"Jz_XW","payload":{}}}`),
	}
	resp, err := b.SendEventRequest(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/event-requests", gotPath)
	assert.JSONEq(t, string(req.Request), string(gotBody.Request))
	assert.Equal(t, "J8618wGO7hH4wRuEeL0Ob5XNI9Q73BlCNlV8cWBORq78", resp.RequestID)
}

func TestHTTPBridge_Approvals_QueryParams(t *testing.T) {
	var gotQuery map[string][]string

	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"JOuIZ","request":{},"state":"Pending"}]`))
	})

	qty := int64(25)
	approvals, err := b.Approvals(context.Background(), models.ApprovalQuery{
		Status:   "pending",
		From:     "JOuIZ",
		Quantity: &qty,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"pending"}, gotQuery["status"])
	assert.Equal(t, []string{"JOuIZ"}, gotQuery["from"])
	assert.Equal(t, []string{"25"}, gotQuery["quantity"])
	require.Len(t, approvals, 1)
	assert.Equal(t, "JOuIZ", approvals[0].ID)
	assert.Equal(t, models.ApprovalStatePending, approvals[0].State)
}

func TestHTTPBridge_Approvals_OmitsEmptyParams(t *testing.T) {
	var gotRawQuery string

	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	_, err := b.Approvals(context.Background(), models.ApprovalQuery{})

	require.NoError(t, err)
	assert.Empty(t, gotRawQuery)
}

func TestHTTPBridge_VoteApproval(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/approval-requests/JSdXP", r.URL.Path)

		var vote models.ApprovalVote
		require.NoError(t, json.NewDecoder(r.Body).Decode(&vote))
		assert.Equal(t, models.ApprovalStateRespondedAccepted, vote.State)

		w.Write([]byte(`{"id":"JSdXP","request":{},"state":"RespondedAccepted"}`))
	})

	got, err := b.VoteApproval(context.Background(), "JSdXP", models.ApprovalVote{
		State: models.ApprovalStateRespondedAccepted,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStateRespondedAccepted, got.State)
}

func TestHTTPBridge_AuthorizeSubject(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/allowed-subjects/JKZgY", r.URL.Path)
		w.Write([]byte(`"OK"`))
	})

	got, err := b.AuthorizeSubject(context.Background(), "JKZgY", models.AuthorizeSubject{Providers: []string{}})

	require.NoError(t, err)
	assert.Equal(t, "OK", got)
}

func TestHTTPBridge_EventOfSubject_Path(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subjects/JEwuT/events/7", r.URL.Path)
		w.Write([]byte(`{"subject_id":"JEwuT","event_request":{},"sn":7,"state_hash":"","hash_prev_event":"","signature":{"signer":"","timestamp":0,"value":"","content_hash":""}}`))
	})

	ev, err := b.EventOfSubject(context.Background(), "JEwuT", 7)

	require.NoError(t, err)
	assert.Equal(t, uint64(7), ev.SN)
}

func TestHTTPBridge_NodeIdentity(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/controller-id":
			w.Write([]byte(`"E5X1tJWs1EQbByLV"`))
		case "/peer-id":
			w.Write([]byte(`"12D3KooWRGCTbLUy"`))
		default:
			http.NotFound(w, r)
		}
	})

	controllerID, err := b.ControllerID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "E5X1tJWs1EQbByLV", controllerID)

	peerID, err := b.PeerID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12D3KooWRGCTbLUy", peerID)
}

func TestHTTPBridge_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		nodeStatus int
		wantErr    error
	}{
		{name: "400 maps to bad request", nodeStatus: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "404 maps to not found", nodeStatus: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "409 maps to conflict", nodeStatus: http.StatusConflict, wantErr: ErrConflict},
		{name: "500 maps to node internal", nodeStatus: http.StatusInternalServerError, wantErr: ErrNodeInternal},
		{name: "503 maps to node unavailable", nodeStatus: http.StatusServiceUnavailable, wantErr: ErrNodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.nodeStatus)
			})

			_, err := b.Subject(context.Background(), "JEwuT")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPBridge_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing listening anymore

	b := NewHTTPBridge(Config{BaseURL: url, Timeout: time.Second})

	_, err := b.PeerID(context.Background())

	assert.ErrorIs(t, err, ErrNodeUnavailable)
}
