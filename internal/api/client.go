// Package api provides a client for the Student Expense Manager REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"spendash/internal/model"

	"github.com/google/uuid"
)

const (
	requestTimeout = 10 * time.Second
	chatTimeout    = 60 * time.Second // the assistant waits on an LLM
	maxBodySize    = 4 << 20          // 4 MB
)

var (
	// ErrUnauthorized indicates the auth token is missing, expired or invalid.
	ErrUnauthorized = errors.New("api: unauthorized (run login to refresh your token)")
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("api: not found")
	// ErrRateLimited indicates the API rate limit was hit.
	ErrRateLimited = errors.New("api: rate limited")
)

// Client talks to the expense manager backend.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the given base URL and bearer token.
// The base URL is injected here once; nothing in the client reads
// ambient process state. Returns an error if the URL is unusable.
func New(baseURL, token string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api: base URL is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: invalid base URL %q", baseURL)
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{},
	}, nil
}

// SetToken replaces the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// BaseURL returns the server the client was constructed against.
func (c *Client) BaseURL() string { return c.baseURL }

// Login exchanges credentials for a bearer token. The returned token is
// also installed on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var res LoginResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("api: parsing login response: %w", err)
	}
	c.token = res.AccessToken
	return &res, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, name, password string) (*User, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/auth/register", registerRequest{
		Email:    email,
		Name:     name,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var u User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("api: parsing register response: %w", err)
	}
	return &u, nil
}

// ListExpenses returns the caller's expenses in backend order
// (most recent first).
func (c *Client) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/expenses", nil)
	if err != nil {
		return nil, err
	}

	var expenses []model.Expense
	if err := json.Unmarshal(body, &expenses); err != nil {
		return nil, fmt.Errorf("api: parsing expenses: %w", err)
	}
	return expenses, nil
}

// CreateExpense records a new expense.
func (c *Client) CreateExpense(ctx context.Context, amount float64, category model.Category, date time.Time, notes string) (*model.Expense, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/expenses", createExpenseRequest{
		Amount:   amount,
		Category: string(category),
		Date:     model.ISOTime{Time: date},
		Notes:    notes,
	})
	if err != nil {
		return nil, err
	}

	var e model.Expense
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("api: parsing created expense: %w", err)
	}
	return &e, nil
}

// GetExpense fetches a single expense by ID.
func (c *Client) GetExpense(ctx context.Context, id string) (*model.Expense, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/expenses/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var e model.Expense
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("api: parsing expense: %w", err)
	}
	return &e, nil
}

// UpdateExpense replaces an expense's fields. The backend takes the full
// record, so callers send every field, not a partial patch.
func (c *Client) UpdateExpense(ctx context.Context, id string, amount float64, category model.Category, date time.Time, notes string) (*model.Expense, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/expenses/"+url.PathEscape(id), createExpenseRequest{
		Amount:   amount,
		Category: string(category),
		Date:     model.ISOTime{Time: date},
		Notes:    notes,
	})
	if err != nil {
		return nil, err
	}

	var e model.Expense
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("api: parsing updated expense: %w", err)
	}
	return &e, nil
}

// DeleteExpense removes an expense by ID.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/expenses/"+url.PathEscape(id), nil)
	return err
}

// ListBudgets returns all budget records.
func (c *Client) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/budgets", nil)
	if err != nil {
		return nil, err
	}

	var budgets []model.Budget
	if err := json.Unmarshal(body, &budgets); err != nil {
		return nil, fmt.Errorf("api: parsing budgets: %w", err)
	}
	return budgets, nil
}

// CreateBudget records a new budget.
func (c *Client) CreateBudget(ctx context.Context, b model.Budget) (*model.Budget, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/budgets", createBudgetRequest{
		Type:     b.Type,
		Category: b.Category,
		Amount:   b.Amount,
		Month:    b.Month,
		Year:     b.Year,
	})
	if err != nil {
		return nil, err
	}

	var created model.Budget
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("api: parsing created budget: %w", err)
	}
	return &created, nil
}

// ListSavingsGoals returns all savings goals.
func (c *Client) ListSavingsGoals(ctx context.Context) ([]model.SavingsGoal, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/savings-goals", nil)
	if err != nil {
		return nil, err
	}

	var goals []model.SavingsGoal
	if err := json.Unmarshal(body, &goals); err != nil {
		return nil, fmt.Errorf("api: parsing savings goals: %w", err)
	}
	return goals, nil
}

// CreateSavingsGoal records a new savings goal.
func (c *Client) CreateSavingsGoal(ctx context.Context, title string, target float64, targetDate time.Time) (*model.SavingsGoal, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/savings-goals", createGoalRequest{
		Title:        title,
		TargetAmount: target,
		TargetDate:   model.ISOTime{Time: targetDate},
	})
	if err != nil {
		return nil, err
	}

	var g model.SavingsGoal
	if err := json.Unmarshal(body, &g); err != nil {
		return nil, fmt.Errorf("api: parsing created goal: %w", err)
	}
	return &g, nil
}

// AddToSavings adds funds to an existing goal and returns the updated record.
func (c *Client) AddToSavings(ctx context.Context, goalID string, amount float64) (*model.SavingsGoal, error) {
	path := fmt.Sprintf("/api/savings-goals/%s/add-amount?amount=%s",
		url.PathEscape(goalID), url.QueryEscape(fmt.Sprintf("%.2f", amount)))
	body, err := c.do(ctx, http.MethodPut, path, nil)
	if err != nil {
		return nil, err
	}

	var g model.SavingsGoal
	if err := json.Unmarshal(body, &g); err != nil {
		return nil, fmt.Errorf("api: parsing updated goal: %w", err)
	}
	return &g, nil
}

// ExpenseSummary returns the server-computed aggregate figures.
func (c *Client) ExpenseSummary(ctx context.Context) (*model.Summary, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/analytics/expense-summary", nil)
	if err != nil {
		return nil, err
	}

	var s model.Summary
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("api: parsing expense summary: %w", err)
	}
	return &s, nil
}

// Chat sends a message to the server's financial-advice assistant and
// returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (*ChatResponse, error) {
	body, err := c.doTimeout(ctx, http.MethodPost, "/api/chat", chatRequest{Message: message}, chatTimeout)
	if err != nil {
		return nil, err
	}

	var res ChatResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("api: parsing chat response: %w", err)
	}
	return &res, nil
}

// Health checks that the backend is reachable.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/api/", nil)
	return err
}

// do performs a request with the standard headers and returns the body.
// A non-nil payload is JSON-encoded.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	return c.doTimeout(ctx, method, path, payload, requestTimeout)
}

func (c *Client) doTimeout(ctx context.Context, method, path string, payload any, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("api: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if detail := errorDetail(body); detail != "" {
			return nil, fmt.Errorf("api: %s (status %d)", detail, resp.StatusCode)
		}
		return nil, fmt.Errorf("api: unexpected status %d", resp.StatusCode)
	}

	return body, nil
}

// errorDetail extracts FastAPI's {"detail": "..."} error message, if any.
func errorDetail(body []byte) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Detail
}
