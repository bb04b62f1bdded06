// Package client is a typed Go client for the simulation API. It attaches
// the bearer token to every request, normalizes error responses into
// APIError values, and exposes live progress updates over websocket.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Client talks to one simulation API server. Safe for concurrent use
// once the token is set.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithToken sets the bearer token up front.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a Client for the given base URL, e.g. "https://api.example.com".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// --- Auth ---

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type authPayload struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (*User, error) {
	var out authPayload
	err := c.do(ctx, http.MethodPost, "/auth/register", credentialsPayload{
		Email:    email,
		Password: password,
		FullName: fullName,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var out authPayload
	err := c.do(ctx, http.MethodPost, "/auth/login", credentialsPayload{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.token = out.Token
	return out.User, nil
}

// Profile returns the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/v1/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Simulations ---

// CreateSimulation creates a simulation in pending state.
func (c *Client) CreateSimulation(ctx context.Context, input CreateSimulationInput) (*Simulation, error) {
	var out Simulation
	if err := c.do(ctx, http.MethodPost, "/v1/simulations", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSimulations returns one page of the caller's simulations.
func (c *Client) ListSimulations(ctx context.Context, opts ListSimulationsOptions) (*SimulationPage, error) {
	q := url.Values{}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	path := "/v1/simulations"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out SimulationPage
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSimulation fetches one simulation by id.
func (c *Client) GetSimulation(ctx context.Context, simulationID string) (*Simulation, error) {
	var out Simulation
	if err := c.do(ctx, http.MethodGet, "/v1/simulations/"+url.PathEscape(simulationID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSimulation deletes one simulation.
func (c *Client) DeleteSimulation(ctx context.Context, simulationID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/simulations/"+url.PathEscape(simulationID), nil, nil)
}

// CancelSimulation requests cooperative cancellation of a run.
func (c *Client) CancelSimulation(ctx context.Context, simulationID string) error {
	return c.do(ctx, http.MethodPost, "/v1/simulations/"+url.PathEscape(simulationID)+"/cancel", nil, nil)
}

// StartSimulation runs a pending simulation to its terminal state. The
// call blocks for the duration of the run.
func (c *Client) StartSimulation(ctx context.Context, simulationID string) (*RunOutcome, error) {
	var out RunOutcome
	err := c.do(ctx, http.MethodPost, "/v1/simulate", map[string]string{
		"simulationId": simulationID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetResult fetches the result of a completed simulation.
func (c *Client) GetResult(ctx context.Context, simulationID string) (*SimulationResult, error) {
	var out SimulationResult
	if err := c.do(ctx, http.MethodGet, "/v1/simulations/"+url.PathEscape(simulationID)+"/results", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Geometry ---

type uploadPayload struct {
	FileName     string `json:"fileName"`
	FileData     string `json:"fileData"`
	SimulationID string `json:"simulationId,omitempty"`
}

// UploadGeometry uploads a base64-encoded geometry file, optionally
// linking it to a simulation.
func (c *Client) UploadGeometry(ctx context.Context, fileName, fileDataBase64, simulationID string) (*UploadedGeometry, error) {
	var out UploadedGeometry
	err := c.do(ctx, http.MethodPost, "/v1/upload-geometry", uploadPayload{
		FileName:     fileName,
		FileData:     fileDataBase64,
		SimulationID: simulationID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Materials ---

// ListMaterials returns the material catalog visible to the caller.
func (c *Client) ListMaterials(ctx context.Context) ([]Material, error) {
	var out []Material
	if err := c.do(ctx, http.MethodGet, "/v1/materials", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMaterial fetches one material by id.
func (c *Client) GetMaterial(ctx context.Context, materialID string) (*Material, error) {
	var out Material
	if err := c.do(ctx, http.MethodGet, "/v1/materials/"+url.PathEscape(materialID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Transport ---

type errorEnvelope struct {
	Error string `json:"error"`
}

// do executes one request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return normalizeError(resp.StatusCode, envelope.Error)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
