package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spendash/internal/model"
)

func TestNewRejectsBadURLs(t *testing.T) {
	for _, bad := range []string{"", "   ", "not a url", "/just/a/path"} {
		if _, err := New(bad, ""); err == nil {
			t.Errorf("New(%q) should fail", bad)
		}
	}

	c, err := New("http://localhost:8000/", "tok")
	if err != nil {
		t.Fatalf("New valid URL: %v", err)
	}
	if c.BaseURL() != "http://localhost:8000" {
		t.Errorf("trailing slash not trimmed: %q", c.BaseURL())
	}
}

func TestListExpenses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/expenses" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want Bearer tok", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"e1","amount":12.5,"category":"Food","date":"2025-03-15T00:00:00+00:00"},
			{"id":"e2","amount":30,"category":"Travel","date":"2025-03-14T00:00:00+00:00","notes":"bus pass"}
		]`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "tok")
	if err != nil {
		t.Fatal(err)
	}

	expenses, err := c.ListExpenses(context.Background())
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("got %d expenses, want 2", len(expenses))
	}
	if expenses[0].ID != "e1" || expenses[1].Notes != "bus pass" {
		t.Errorf("unexpected decode: %+v", expenses)
	}
}

func TestUnauthorizedIsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "expired")
	_, err := c.ExpenseSummary(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestServerErrorSurfacesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Email already registered"}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "")
	_, err := c.Register(context.Background(), "a@b.c", "A", "pw")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "api: Email already registered (status 400)" {
		t.Errorf("err = %q", got)
	}
}

func TestLoginInstallsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			_, _ = w.Write([]byte(`{"access_token":"fresh","token_type":"bearer","user":{"id":"u1","email":"a@b.c","name":"A"}}`))
		case "/api/budgets":
			if got := r.Header.Get("Authorization"); got != "Bearer fresh" {
				t.Errorf("Authorization after login = %q", got)
			}
			_, _ = w.Write([]byte(`[]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "")
	res, err := c.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken != "fresh" || res.User.Name != "A" {
		t.Errorf("unexpected login result: %+v", res)
	}

	if _, err := c.ListBudgets(context.Background()); err != nil {
		t.Fatalf("ListBudgets after login: %v", err)
	}
}

func TestExpenseSummaryDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total_expenses":150.75,"category_breakdown":{"Food":100,"Travel":50.75},"expense_count":7}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "tok")
	s, err := c.ExpenseSummary(context.Background())
	if err != nil {
		t.Fatalf("ExpenseSummary: %v", err)
	}
	if s.TotalExpenses != 150.75 || s.ExpenseCount != 7 {
		t.Errorf("unexpected summary: %+v", s)
	}
	if s.CategoryBreakdown["Food"] != 100 {
		t.Errorf("breakdown Food = %.2f", s.CategoryBreakdown["Food"])
	}
}

func TestUpdateExpenseSendsFullRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/api/expenses/e1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Amount   float64 `json:"amount"`
			Category string  `json:"category"`
			Notes    string  `json:"notes"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if req.Amount != 42.5 || req.Category != "Travel" || req.Notes != "train" {
			t.Errorf("unexpected payload: %+v", req)
		}
		_, _ = w.Write([]byte(`{"id":"e1","amount":42.5,"category":"Travel","notes":"train","date":"2025-03-15T00:00:00"}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "tok")
	e, err := c.UpdateExpense(context.Background(), "e1", 42.5, model.CategoryTravel, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "train")
	if err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}
	if e.Amount != 42.5 || e.Notes != "train" {
		t.Errorf("unexpected decode: %+v", e)
	}
}

func TestGetExpenseMissingIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Expense not found"}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "tok")
	_, err := c.GetExpense(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestChatDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/chat" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"message":"how do I save more?"}` {
			t.Errorf("unexpected payload: %s", body)
		}
		_, _ = w.Write([]byte(`{"response":"Track every expense for a month.","timestamp":"2025-03-15T12:00:00+00:00"}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "tok")
	res, err := c.Chat(context.Background(), "how do I save more?")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if res.Response != "Track every expense for a month." {
		t.Errorf("response = %q", res.Response)
	}
}

func TestAddToSavingsSendsAmountQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/api/savings-goals/g1/add-amount" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("amount"); got != "25.00" {
			t.Errorf("amount = %q, want 25.00", got)
		}
		_, _ = w.Write([]byte(`{"id":"g1","title":"Laptop","target_amount":1000,"current_amount":125}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "tok")
	g, err := c.AddToSavings(context.Background(), "g1", 25)
	if err != nil {
		t.Fatalf("AddToSavings: %v", err)
	}
	if g.CurrentAmount != 125 {
		t.Errorf("CurrentAmount = %.2f, want 125", g.CurrentAmount)
	}
}
