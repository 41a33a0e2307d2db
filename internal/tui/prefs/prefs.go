// ABOUTME: Growing-condition filter form for seed recommendations
// ABOUTME: Prefills from the shopper's saved gardening preferences

package prefs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/session"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/styles"
)

// SubmittedMsg is sent when the filter form completes
type SubmittedMsg struct {
	Query client.RecommendationQuery
}

// CancelledMsg is sent when the shopper backs out of the form
type CancelledMsg struct{}

// Form collects recommendation filters
type Form struct {
	form *huh.Form

	soil    string
	climate string
	water   string
}

// New creates the filter form, defaulting to the profile's preferences
func New(user *session.User) *Form {
	f := &Form{}
	if user != nil {
		f.soil = user.SoilType
		f.climate = user.Climate
		f.water = user.WaterConditions
	}

	soilOptions := []huh.Option[string]{
		huh.NewOption("Any", ""),
		huh.NewOption("Sandy", "sandy"),
		huh.NewOption("Loamy", "loamy"),
		huh.NewOption("Clay", "clay"),
		huh.NewOption("Silty", "silty"),
	}
	climateOptions := []huh.Option[string]{
		huh.NewOption("Any", ""),
		huh.NewOption("Tropical", "tropical"),
		huh.NewOption("Temperate", "temperate"),
		huh.NewOption("Arid", "arid"),
		huh.NewOption("Cold", "cold"),
	}
	waterOptions := []huh.Option[string]{
		huh.NewOption("Any", ""),
		huh.NewOption("Low", "low"),
		huh.NewOption("Moderate", "moderate"),
		huh.NewOption("High", "high"),
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Soil type").
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
		).Title("Find seeds for your garden").
			Description("Pick your growing conditions"),
	).WithTheme(styles.FormTheme())

	return f
}

// Query returns the filters collected so far
func (f *Form) Query() client.RecommendationQuery {
	return client.RecommendationQuery{
		SoilType:        f.soil,
		Climate:         f.climate,
		WaterConditions: f.water,
	}
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return f, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if m, ok := form.(*huh.Form); ok {
		f.form = m
	}

	if f.form.State == huh.StateCompleted {
		query := f.Query()
		return f, func() tea.Msg { return SubmittedMsg{Query: query} }
	}

	return f, cmd
}

// View implements tea.Model
func (f *Form) View() string {
	return f.form.View()
}
