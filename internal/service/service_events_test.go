package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/mock"
	"github.com/MKhiriev/ledger-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEventsSvc(t *testing.T) (EventsService, *mock.MockBridge) {
	t.Helper()
	ctrl := gomock.NewController(t)
	node := mock.NewMockBridge(ctrl)
	return NewEventsService(node, logger.Nop()), node
}

func TestEventsService_SendEventRequest(t *testing.T) {
	svc, node := newTestEventsSvc(t)
	ctx := context.Background()

	req := models.SignedEventRequest{Request: json.RawMessage(`{"Fact":{"subject_id":"subj-1"}}`)}
	want := models.EventRequestResponse{RequestID: "req-1", SubjectID: "subj-1"}

	node.EXPECT().SendEventRequest(ctx, req).Return(want, nil)

	got, err := svc.SendEventRequest(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEventsService_SendEventRequest_PropagatesNodeError(t *testing.T) {
	svc, node := newTestEventsSvc(t)
	ctx := context.Background()

	nodeErr := errors.New("invalid signature")
	node.EXPECT().SendEventRequest(ctx, gomock.Any()).Return(models.EventRequestResponse{}, nodeErr)

	_, err := svc.SendEventRequest(ctx, models.SignedEventRequest{})
	require.ErrorIs(t, err, nodeErr)
}

func TestEventsService_GetEventRequestState(t *testing.T) {
	svc, node := newTestEventsSvc(t)
	ctx := context.Background()

	want := models.RequestState{ID: "req-1", SubjectID: "subj-1", SN: 3, State: "finish", Success: true}
	node.EXPECT().EventRequestState(ctx, "req-1").Return(want, nil)

	got, err := svc.GetEventRequestState(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
