package api

import "spendash/internal/model"

// User is the account owner as returned by the auth endpoints.
type User struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	CreatedAt model.ISOTime `json:"created_at"`
}

// LoginResult holds the bearer token and user issued on login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type createExpenseRequest struct {
	Amount   float64       `json:"amount"`
	Category string        `json:"category"`
	Date     model.ISOTime `json:"date"`
	Notes    string        `json:"notes,omitempty"`
}

type createBudgetRequest struct {
	Type     string  `json:"type"`
	Category string  `json:"category,omitempty"`
	Amount   float64 `json:"amount"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
}

type createGoalRequest struct {
	Title        string        `json:"title"`
	TargetAmount float64       `json:"target_amount"`
	TargetDate   model.ISOTime `json:"target_date"`
}

type chatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the advice assistant's reply.
type ChatResponse struct {
	Response  string        `json:"response"`
	Timestamp model.ISOTime `json:"timestamp"`
}
