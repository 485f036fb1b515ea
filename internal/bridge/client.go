package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/ledger-gate/models"
	"github.com/go-resty/resty/v2"
)

// Config holds connection settings for the node bridge API.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type httpBridge struct {
	client *resty.Client
}

// NewHTTPBridge returns a Bridge talking REST to the node at cfg.BaseURL.
func NewHTTPBridge(cfg Config) Bridge {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3001"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpBridge{client: cli}
}

func (b *httpBridge) SendEventRequest(ctx context.Context, req models.SignedEventRequest) (models.EventRequestResponse, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/event-requests")
	if err != nil {
		return models.EventRequestResponse{}, fmt.Errorf("send event request: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EventRequestResponse{}, err
	}

	var out models.EventRequestResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.EventRequestResponse{}, fmt.Errorf("decode event request response: %w", err)
	}
	return out, nil
}

func (b *httpBridge) EventRequest(ctx context.Context, requestID string) (models.SignedEventRequest, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		Get("/event-requests/" + requestID)
	if err != nil {
		return models.SignedEventRequest{}, fmt.Errorf("get event request: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignedEventRequest{}, err
	}

	var out models.SignedEventRequest
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SignedEventRequest{}, fmt.Errorf("decode event request: %w", err)
	}
	return out, nil
}

func (b *httpBridge) EventRequestState(ctx context.Context, requestID string) (models.RequestState, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		Get("/event-requests/" + requestID + "/state")
	if err != nil {
		return models.RequestState{}, fmt.Errorf("get event request state: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RequestState{}, err
	}

	var out models.RequestState
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.RequestState{}, fmt.Errorf("decode event request state: %w", err)
	}
	return out, nil
}

func (b *httpBridge) Approvals(ctx context.Context, q models.ApprovalQuery) ([]models.ApprovalRequest, error) {
	req := b.client.R().SetContext(ctx)
	if q.Status != "" {
		req.SetQueryParam("status", q.Status)
	}
	if q.From != "" {
		req.SetQueryParam("from", q.From)
	}
	if q.Quantity != nil {
		req.SetQueryParam("quantity", strconv.FormatInt(*q.Quantity, 10))
	}

	resp, err := req.Get("/approval-requests")
	if err != nil {
		return nil, fmt.Errorf("list approvals: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.ApprovalRequest
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode approvals: %w", err)
	}
	return out, nil
}

func (b *httpBridge) Approval(ctx context.Context, id string) (models.ApprovalRequest, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		Get("/approval-requests/" + id)
	if err != nil {
		return models.ApprovalRequest{}, fmt.Errorf("get approval: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ApprovalRequest{}, err
	}

	var out models.ApprovalRequest
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ApprovalRequest{}, fmt.Errorf("decode approval: %w", err)
	}
	return out, nil
}

func (b *httpBridge) VoteApproval(ctx context.Context, id string, vote models.ApprovalVote) (models.ApprovalRequest, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(vote).
		Patch("/approval-requests/" + id)
	if err != nil {
		return models.ApprovalRequest{}, fmt.Errorf("vote approval: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ApprovalRequest{}, err
	}

	var out models.ApprovalRequest
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ApprovalRequest{}, fmt.Errorf("decode voted approval: %w", err)
	}
	return out, nil
}

func (b *httpBridge) AllowedSubjects(ctx context.Context, q models.PageQuery) ([]models.PreauthorizedSubject, error) {
	req := b.client.R().SetContext(ctx)
	if q.From != "" {
		req.SetQueryParam("from", q.From)
	}
	if q.Quantity != nil {
		req.SetQueryParam("quantity", strconv.FormatInt(*q.Quantity, 10))
	}

	resp, err := req.Get("/allowed-subjects")
	if err != nil {
		return nil, fmt.Errorf("list allowed subjects: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.PreauthorizedSubject
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode allowed subjects: %w", err)
	}
	return out, nil
}

func (b *httpBridge) AuthorizeSubject(ctx context.Context, subjectID string, auth models.AuthorizeSubject) (string, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(auth).
		Put("/allowed-subjects/" + subjectID)
	if err != nil {
		return "", fmt.Errorf("authorize subject: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out string
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode authorize subject response: %w", err)
	}
	return out, nil
}

func (b *httpBridge) RegisterKeys(ctx context.Context, q models.KeysQuery) (string, error) {
	req := b.client.R().SetContext(ctx)
	if q.Algorithm != "" {
		req.SetQueryParam("algorithm", q.Algorithm)
	}

	resp, err := req.Get("/generate-keys")
	if err != nil {
		return "", fmt.Errorf("register keys: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out string
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode registered key: %w", err)
	}
	return out, nil
}

func (b *httpBridge) Subjects(ctx context.Context, q models.SubjectQuery) ([]models.SubjectData, error) {
	req := b.client.R().SetContext(ctx)
	if q.SubjectType != "" {
		req.SetQueryParam("subject_type", q.SubjectType)
	}
	if q.GovernanceID != "" {
		req.SetQueryParam("governanceid", q.GovernanceID)
	}
	if q.From != "" {
		req.SetQueryParam("from", q.From)
	}
	if q.Quantity != nil {
		req.SetQueryParam("quantity", strconv.FormatInt(*q.Quantity, 10))
	}

	resp, err := req.Get("/subjects")
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.SubjectData
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode subjects: %w", err)
	}
	return out, nil
}

func (b *httpBridge) Subject(ctx context.Context, subjectID string) (models.SubjectData, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		Get("/subjects/" + subjectID)
	if err != nil {
		return models.SubjectData{}, fmt.Errorf("get subject: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SubjectData{}, err
	}

	var out models.SubjectData
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SubjectData{}, fmt.Errorf("decode subject: %w", err)
	}
	return out, nil
}

func (b *httpBridge) ValidationProof(ctx context.Context, subjectID string) (models.ValidationProof, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		Get("/subjects/" + subjectID + "/validation")
	if err != nil {
		return models.ValidationProof{}, fmt.Errorf("get validation proof: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidationProof{}, err
	}

	var out models.ValidationProof
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ValidationProof{}, fmt.Errorf("decode validation proof: %w", err)
	}
	return out, nil
}

func (b *httpBridge) EventsOfSubject(ctx context.Context, subjectID string, q models.EventQuery) ([]models.SignedEvent, error) {
	req := b.client.R().SetContext(ctx)
	if q.From != nil {
		req.SetQueryParam("from", strconv.FormatInt(*q.From, 10))
	}
	if q.Quantity != nil {
		req.SetQueryParam("quantity", strconv.FormatInt(*q.Quantity, 10))
	}

	resp, err := req.Get("/subjects/" + subjectID + "/events")
	if err != nil {
		return nil, fmt.Errorf("list subject events: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.SignedEvent
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode subject events: %w", err)
	}
	return out, nil
}

func (b *httpBridge) EventOfSubject(ctx context.Context, subjectID string, sn uint64) (models.SignedEvent, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		Get("/subjects/" + subjectID + "/events/" + strconv.FormatUint(sn, 10))
	if err != nil {
		return models.SignedEvent{}, fmt.Errorf("get subject event: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignedEvent{}, err
	}

	var out models.SignedEvent
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SignedEvent{}, fmt.Errorf("decode subject event: %w", err)
	}
	return out, nil
}

func (b *httpBridge) ControllerID(ctx context.Context) (string, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		Get("/controller-id")
	if err != nil {
		return "", fmt.Errorf("get controller id: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out string
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode controller id: %w", err)
	}
	return out, nil
}

func (b *httpBridge) PeerID(ctx context.Context) (string, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		Get("/peer-id")
	if err != nil {
		return "", fmt.Errorf("get peer id: %w: %w", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out string
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode peer id: %w", err)
	}
	return out, nil
}
