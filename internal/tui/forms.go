package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"spendash/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// loginValues backs the login form.
type loginValues struct {
	email    string
	password string
}

func newLoginForm(vals *loginValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.edu").
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return errors.New("enter a valid email address")
					}
					return nil
				}).
				Value(&vals.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password is required")
					}
					return nil
				}).
				Value(&vals.password),
		).Title("Sign in to spendash"),
	)
}

// addExpenseValues backs the quick-action expense form.
type addExpenseValues struct {
	amount   string
	category string
	notes    string
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

func newAddExpenseForm(vals *addExpenseValues) *huh.Form {
	opts := make([]huh.Option[string], 0, len(model.Categories))
	for _, c := range model.Categories {
		opts = append(opts, huh.NewOption(string(c), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Validate(validateAmount).
				Value(&vals.amount),
			huh.NewSelect[string]().
				Title("Category").
				Options(opts...).
				Value(&vals.category),
			huh.NewInput().
				Title("Note").
				Placeholder("optional").
				Value(&vals.notes),
		).Title("Add expense"),
	)
}

// fundGoalValues backs the add-to-savings form.
type fundGoalValues struct {
	amount string
}

func newFundGoalForm(goal model.SavingsGoal, vals *fundGoalValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount to add").
				Placeholder("25.00").
				Validate(validateAmount).
				Value(&vals.amount),
		).Title("Fund \"" + goal.Title + "\""),
	)
}

// ─── Form update handlers ───────────────────────────────────────

func (a App) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.loginForm = f
	}

	if a.loginForm.State == huh.StateCompleted {
		email, password := a.loginVals.email, a.loginVals.password
		client := a.client
		a.loginForm = nil
		return a, func() tea.Msg {
			res, err := client.Login(context.Background(), email, password)
			return loginDoneMsg{Result: res, Err: err}
		}
	}

	if a.loginForm.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		amount, _ := strconv.ParseFloat(strings.TrimSpace(a.addVals.amount), 64)
		category := model.ParseCategory(a.addVals.category)
		notes := a.addVals.notes
		client := a.client
		a.addForm = nil
		return a, func() tea.Msg {
			_, err := client.CreateExpense(context.Background(), amount, category, time.Now(), notes)
			return actionDoneMsg{What: "add expense", Err: err}
		}
	}

	if a.addForm.State == huh.StateAborted {
		a.addForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) updateFundForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.fundForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.fundForm = f
	}

	if a.fundForm.State == huh.StateCompleted {
		amount, _ := strconv.ParseFloat(strings.TrimSpace(a.fundVals.amount), 64)
		goalID := ""
		if a.goalCursor < len(a.data.Goals) {
			goalID = a.data.Goals[a.goalCursor].ID
		}
		client := a.client
		a.fundForm = nil
		if goalID == "" {
			return a, nil
		}
		return a, func() tea.Msg {
			_, err := client.AddToSavings(context.Background(), goalID, amount)
			return actionDoneMsg{What: "fund goal", Err: err}
		}
	}

	if a.fundForm.State == huh.StateAborted {
		a.fundForm = nil
		return a, nil
	}

	return a, cmd
}
