// ABOUTME: Login and registration forms as a bubbletea model
// ABOUTME: Uses huh forms and emits submitted credentials to the root app

package auth

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/styles"
)

// Mode selects between the login and registration form
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// LoginSubmittedMsg is sent when the login form completes
type LoginSubmittedMsg struct {
	Email    string
	Password string
}

// RegisterSubmittedMsg is sent when the registration form completes
type RegisterSubmittedMsg struct {
	Request client.RegisterRequest
}

// CancelledMsg is sent when the shopper backs out of the form
type CancelledMsg struct{}

// Form is the auth screen component
type Form struct {
	mode  Mode
	form  *huh.Form
	width int
	err   string

	name     string
	email    string
	password string
	soil     string
	climate  string
	water    string
}

// New creates a login or registration form
func New(mode Mode) *Form {
	f := &Form{mode: mode}
	if mode == ModeRegister {
		f.form = f.createRegisterForm()
	} else {
		f.form = f.createLoginForm()
	}
	return f
}

func (f *Form) createLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&f.email).
				Validate(validateRequired("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(validateRequired("password")),
		).Title("Log in").
			Description("Sign in to your Seed Store account"),
	).WithTheme(styles.FormTheme())
}

func (f *Form) createRegisterForm() *huh.Form {
	soilOptions := []huh.Option[string]{
		huh.NewOption("Skip", ""),
		huh.NewOption("Sandy", "sandy"),
		huh.NewOption("Loamy", "loamy"),
		huh.NewOption("Clay", "clay"),
		huh.NewOption("Silty", "silty"),
	}
	climateOptions := []huh.Option[string]{
		huh.NewOption("Skip", ""),
		huh.NewOption("Tropical", "tropical"),
		huh.NewOption("Temperate", "temperate"),
		huh.NewOption("Arid", "arid"),
		huh.NewOption("Cold", "cold"),
	}
	waterOptions := []huh.Option[string]{
		huh.NewOption("Skip", ""),
		huh.NewOption("Low", "low"),
		huh.NewOption("Moderate", "moderate"),
		huh.NewOption("High", "high"),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&f.email).
				Validate(validateRequired("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(validateRequired("password")),
		).Title("Create account").
			Description("Join the Seed Store"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Soil type").
				Description("Used for seed recommendations").
				Options(soilOptions...).
				Value(&f.soil),
			huh.NewSelect[string]().
				Title("Climate").
				Options(climateOptions...).
				Value(&f.climate),
			huh.NewSelect[string]().
				Title("Water availability").
				Options(waterOptions...).
				Value(&f.water),
		).Title("Growing conditions").
			Description("Optional, pick Skip to leave blank"),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		form, cmd := f.form.Update(msg)
		if m, ok := form.(*huh.Form); ok {
			f.form = m
		}
		return f, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return f, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := f.form.Update(msg)
	if m, ok := form.(*huh.Form); ok {
		f.form = m
	}

	if f.form.State == huh.StateCompleted {
		return f, f.submit()
	}

	return f, cmd
}

func (f *Form) submit() tea.Cmd {
	if f.mode == ModeRegister {
		req := client.RegisterRequest{
			Name:            f.name,
			Email:           f.email,
			Password:        f.password,
			SoilType:        f.soil,
			Climate:         f.climate,
			WaterConditions: f.water,
		}
		return func() tea.Msg { return RegisterSubmittedMsg{Request: req} }
	}
	email, password := f.email, f.password
	return func() tea.Msg { return LoginSubmittedMsg{Email: email, Password: password} }
}

// SetError shows a backend error above the form and resets it for retry
func (f *Form) SetError(msg string) tea.Cmd {
	f.err = msg
	if f.mode == ModeRegister {
		f.form = f.createRegisterForm()
	} else {
		f.form = f.createLoginForm()
	}
	return f.form.Init()
}

// View implements tea.Model
func (f *Form) View() string {
	var b strings.Builder

	if f.err != "" {
		errorStyle := lipgloss.NewStyle().Foreground(styles.Danger).Bold(true)
		b.WriteString(errorStyle.Render("Error: " + f.err))
		b.WriteString("\n\n")
	}

	b.WriteString(f.form.View())
	return b.String()
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
