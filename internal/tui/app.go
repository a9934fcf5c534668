// Package tui provides the interactive Bubble Tea dashboard for spendash.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"spendash/internal/api"
	"spendash/internal/config"
	"spendash/internal/dashboard"
	"spendash/internal/model"
	"spendash/internal/store"
	"spendash/internal/tui/components"
	"spendash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dataLoadedMsg is sent when the dashboard fetch cycle settles.
// Err is non-nil when any of the four requests failed; Data is nil in
// that case because the join discards partial results.
type dataLoadedMsg struct {
	Data      *model.DashboardData
	LoadTime  time.Duration
	FromCache bool
	Err       error
}

// refreshDoneMsg is sent when a manual or automatic refresh completes.
type refreshDoneMsg struct {
	Data     *model.DashboardData
	LoadTime time.Duration
	Err      error
}

// actionDoneMsg is sent when a quick action (add expense, fund goal) finishes.
type actionDoneMsg struct {
	What string
	Err  error
}

// loginDoneMsg is sent when the login form's API call finishes.
type loginDoneMsg struct {
	Result *api.LoginResult
	Err    error
}

type tickMsg struct{}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	loadFailedToast  = "Failed to load dashboard data"
	toastTicks       = 20 // ~5s at 250ms per tick
)

// App is the root Bubble Tea model.
type App struct {
	client *api.Client
	cache  *store.Cache // nil when snapshot persistence is disabled
	log    *slog.Logger

	// Data. data stays an empty snapshot until a fetch cycle succeeds;
	// a failed cycle never populates any of the four resources.
	data     *model.DashboardData
	loaded   bool
	loadTime time.Duration

	fromCache bool // rendering an offline snapshot
	useCache  bool // load from snapshot instead of the network

	// Auto-refresh state
	autoRefresh     bool
	refreshInterval time.Duration
	lastRefresh     time.Time
	refreshing      bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	toast     string
	toastLeft int

	// Per-tab state
	goalCursor int
	expOffset  int
	settings   settingsState

	// Login form shown when no token is configured
	needLogin bool
	loginForm *huh.Form
	loginVals *loginValues

	// Quick-action forms
	addForm  *huh.Form
	addVals  *addExpenseValues
	fundForm *huh.Form
	fundVals *fundGoalValues

	spinner spinner.Model
}

// Options configures the TUI at composition time. The owning command
// resolves config and flags; nothing in here reads ambient state.
type Options struct {
	Client   *api.Client
	Cache    *store.Cache
	Log      *slog.Logger
	Config   config.Config
	UseCache bool
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	refreshInterval := time.Duration(opts.Config.TUI.RefreshIntervalSec) * time.Second
	if refreshInterval < 10*time.Second {
		refreshInterval = 60 * time.Second
	}

	logger := opts.Log
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	app := App{
		client:          opts.Client,
		cache:           opts.Cache,
		log:             logger,
		data:            &model.DashboardData{},
		useCache:        opts.UseCache,
		needLogin:       opts.Config.Auth.Token == "" && !opts.UseCache,
		autoRefresh:     opts.Config.TUI.AutoRefresh,
		refreshInterval: refreshInterval,
		spinner:         sp,
	}

	if app.needLogin {
		app.loginVals = &loginValues{}
		app.loginForm = newLoginForm(app.loginVals)
	}

	return app
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick, tickCmd()}

	if a.needLogin {
		// Defer the data load until the login form completes.
		return tea.Batch(append(cmds, a.loginForm.Init())...)
	}

	return tea.Batch(append(cmds, a.loadDataCmd())...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, f := range []*huh.Form{a.loginForm, a.addForm, a.fundForm} {
			if f != nil {
				f.WithWidth(msg.Width).WithHeight(msg.Height)
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)

	case dataLoadedMsg:
		// The loading indicator clears unconditionally: success and
		// failure both land in the ready state.
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.fromCache = msg.FromCache
		a.lastRefresh = time.Now()
		if msg.Err != nil {
			a.log.Error("dashboard load failed", "err", msg.Err)
			a.showToast(loadFailedToast)
			return a, nil
		}
		a.data = msg.Data
		return a, nil

	case refreshDoneMsg:
		a.refreshing = false
		a.lastRefresh = time.Now()
		if msg.Err != nil {
			a.log.Error("dashboard refresh failed", "err", msg.Err)
			a.showToast(loadFailedToast)
			return a, nil
		}
		a.data = msg.Data
		a.loadTime = msg.LoadTime
		a.fromCache = false
		a.clampCursors()
		return a, nil

	case actionDoneMsg:
		if msg.Err != nil {
			a.log.Error("quick action failed", "action", msg.What, "err", msg.Err)
			a.showToast(fmt.Sprintf("Failed to %s", msg.What))
			return a, nil
		}
		// Re-fetch so the new record shows up everywhere at once.
		a.refreshing = true
		return a, a.refreshCmd()

	case loginDoneMsg:
		if msg.Err != nil {
			a.log.Error("login failed", "err", msg.Err)
			a.showToast("Login failed")
			a.loginVals = &loginValues{}
			a.loginForm = newLoginForm(a.loginVals)
			return a, a.loginForm.Init()
		}
		a.needLogin = false
		a.persistToken(msg.Result)
		return a, a.loadDataCmd()

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		if a.toastLeft > 0 {
			a.toastLeft--
			if a.toastLeft == 0 {
				a.toast = ""
			}
		}
		if a.loaded && a.autoRefresh && !a.refreshing && !a.useCache {
			if time.Since(a.lastRefresh) >= a.refreshInterval {
				a.refreshing = true
				cmds = append(cmds, a.refreshCmd())
			}
		}
		return a, tea.Batch(cmds...)
	}

	// Forward unhandled messages to whichever form is active
	// (cursor blinks, etc.)
	if a.loginForm != nil {
		return a.updateLoginForm(msg)
	}
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.fundForm != nil {
		return a.updateFundForm(msg)
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Active forms intercept all keys.
	if a.loginForm != nil {
		return a.updateLoginForm(msg)
	}
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.fundForm != nil {
		return a.updateFundForm(msg)
	}

	// A settings field being edited owns the keyboard.
	if a.activeTab == 3 && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	if !a.loaded && !a.needLogin {
		return a, nil
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit

	case "r":
		if !a.refreshing && !a.useCache {
			a.refreshing = true
			return a, a.refreshCmd()
		}
		return a, nil

	case "a":
		a.addVals = &addExpenseValues{category: string(model.CategoryFood)}
		a.addForm = newAddExpenseForm(a.addVals)
		return a, a.addForm.Init()

	case "esc":
		a.toast = ""
		a.toastLeft = 0
		return a, nil

	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	// Goals tab keybindings
	if a.activeTab == 2 {
		switch key {
		case "j", "down":
			if a.goalCursor < len(a.data.Goals)-1 {
				a.goalCursor++
			}
			return a, nil
		case "k", "up":
			if a.goalCursor > 0 {
				a.goalCursor--
			}
			return a, nil
		case "f", "enter":
			if len(a.data.Goals) > 0 {
				a.fundVals = &fundGoalValues{}
				a.fundForm = newFundGoalForm(a.data.Goals[a.goalCursor], a.fundVals)
				return a, a.fundForm.Init()
			}
			return a, nil
		}
	}

	// Expenses tab scrolling
	if a.activeTab == 1 {
		switch key {
		case "j", "down":
			if a.expOffset < len(a.data.Expenses)-1 {
				a.expOffset++
			}
			return a, nil
		case "k", "up":
			if a.expOffset > 0 {
				a.expOffset--
			}
			return a, nil
		case "g":
			a.expOffset = 0
			return a, nil
		}
	}

	// Settings tab
	if a.activeTab == 3 {
		return a.updateSettingsKeys(key)
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	return a, nil
}

func (a *App) showToast(msg string) {
	a.toast = msg
	a.toastLeft = toastTicks
}

func (a *App) clampCursors() {
	if a.goalCursor >= len(a.data.Goals) {
		a.goalCursor = len(a.data.Goals) - 1
	}
	if a.goalCursor < 0 {
		a.goalCursor = 0
	}
	if a.expOffset >= len(a.data.Expenses) {
		a.expOffset = 0
	}
}

func (a *App) persistToken(res *api.LoginResult) {
	cfg, err := config.Load()
	if err != nil {
		return
	}
	cfg.Auth.Token = res.AccessToken
	cfg.Auth.Email = res.User.Email
	if err := config.Save(cfg); err != nil {
		a.log.Warn("could not persist auth token", "err", err)
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  spendash needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	if a.needLogin && a.loginForm != nil {
		return a.loginForm.View()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.addForm != nil {
		return a.addForm.View()
	}
	if a.fundForm != nil {
		return a.fundForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◆ spendash"))
	b.WriteString(subtitleStyle.Render(" · Student Expense Manager"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading dashboard..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	bindings := []struct{ key, desc string }{
		{"o e g x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"a", "Add expense"},
		{"f", "Fund selected goal"},
		{"r", "Refresh data"},
		{"esc", "Dismiss notification"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◆ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab) + "\n"

	dataAge := "-"
	if !a.data.FetchedAt.IsZero() {
		dataAge = fmt.Sprintf("%ds ago", int(time.Since(a.data.FetchedAt).Seconds()))
	}
	server := a.client.BaseURL()
	if a.fromCache {
		server = "offline snapshot"
	}
	statusBar := components.RenderStatusBar(w, server, dataAge, a.toast)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := a.height - headerH - statusH
	if contentH < 5 {
		contentH = 5
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderExpensesTab(cw, contentH)
	case 2:
		content = a.renderGoalsTab(cw)
	case 3:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Commands ───────────────────────────────────────────────────

// loadDataCmd runs the initial fetch cycle. With useCache set it reads
// the offline snapshot instead of touching the network.
func (a App) loadDataCmd() tea.Cmd {
	client, cache, useCache := a.client, a.cache, a.useCache
	return func() tea.Msg {
		start := time.Now()

		if useCache {
			if cache == nil {
				return dataLoadedMsg{Err: store.ErrNoSnapshot, LoadTime: time.Since(start)}
			}
			data, err := cache.LoadSnapshot()
			return dataLoadedMsg{Data: data, Err: err, FromCache: true, LoadTime: time.Since(start)}
		}

		data, err := dashboard.Load(context.Background(), client)
		if err != nil {
			return dataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}

		if cache != nil {
			_ = cache.SaveSnapshot(data)
		}
		return dataLoadedMsg{Data: data, LoadTime: time.Since(start)}
	}
}

// refreshCmd re-runs the fetch cycle in the background.
func (a App) refreshCmd() tea.Cmd {
	client, cache := a.client, a.cache
	return func() tea.Msg {
		start := time.Now()
		data, err := dashboard.Load(context.Background(), client)
		if err != nil {
			return refreshDoneMsg{Err: err, LoadTime: time.Since(start)}
		}
		if cache != nil {
			_ = cache.SaveSnapshot(data)
		}
		return refreshDoneMsg{Data: data, LoadTime: time.Since(start)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
