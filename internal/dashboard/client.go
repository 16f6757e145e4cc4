package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	accountModel "freelance-job-tracker/internal/account/model"
	jobModel "freelance-job-tracker/internal/job/model"
	userModel "freelance-job-tracker/internal/user/model"
)

// Client is the dashboard's HTTP API client. It unwraps the server's
// response envelope and injects the bearer token once the user has logged in.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewBuffer(buf)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*userModel.UserResponse, error) {
	var user userModel.UserResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*userModel.AuthResponse, error) {
	var auth userModel.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &auth)
	if err != nil {
		return nil, err
	}
	c.SetToken(auth.Token)
	return &auth, nil
}

func (c *Client) Me(ctx context.Context) (*userModel.UserResponse, error) {
	var user userModel.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetAccounts(ctx context.Context) ([]accountModel.Account, error) {
	var accounts []accountModel.Account
	if err := c.do(ctx, http.MethodGet, "/api/v1/accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) CreateAccount(ctx context.Context, name, email string) (*accountModel.Account, error) {
	var account accountModel.Account
	err := c.do(ctx, http.MethodPost, "/api/v1/accounts", map[string]string{
		"name":  name,
		"email": email,
	}, &account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/accounts/%d", id), nil, nil)
}

func (c *Client) GetJobs(ctx context.Context, accountID uint) ([]jobModel.Job, error) {
	var jobs []jobModel.Job
	path := fmt.Sprintf("/api/v1/accounts/%d/jobs", accountID)
	if err := c.do(ctx, http.MethodGet, path, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) CreateJob(ctx context.Context, accountID uint, req *jobModel.CreateJobRequest) (*jobModel.Job, error) {
	var job jobModel.Job
	path := fmt.Sprintf("/api/v1/accounts/%d/jobs", accountID)
	if err := c.do(ctx, http.MethodPost, path, req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) UpdateJob(ctx context.Context, accountID, jobID uint, req *jobModel.UpdateJobRequest) (*jobModel.Job, error) {
	var job jobModel.Job
	path := fmt.Sprintf("/api/v1/accounts/%d/jobs/%d", accountID, jobID)
	if err := c.do(ctx, http.MethodPatch, path, req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) DeleteJob(ctx context.Context, accountID, jobID uint) error {
	path := fmt.Sprintf("/api/v1/accounts/%d/jobs/%d", accountID, jobID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
