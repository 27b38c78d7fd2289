// Package app is the outer Bubble Tea model: a recipe picker that
// mounts the cooking dialog for the chosen recipe and takes the
// terminal back when the dialog closes.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkhoury/cookmode/internal/cookmode"
	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/histguard"
	"github.com/mkhoury/cookmode/internal/logger"
	"github.com/mkhoury/cookmode/internal/motion"
	"github.com/mkhoury/cookmode/internal/wakelock"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bbf7d0")).
				Bold(true)

	pickerItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	pickerCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bae6fd")).
				Bold(true)

	pickerMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	pickerErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Filter key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "cook"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// recipesMsg delivers the picker list.
type recipesMsg struct {
	list []domain.RecipeSummary
	err  error
}

// recipeMsg delivers one full recipe ready to mount.
type recipeMsg struct {
	recipe *domain.Recipe
	err    error
}

// Model is the application root. It owns the long-lived collaborators
// (platform wake locker, sound player, motion preference, navigation
// stack). The wake-lock manager itself is built fresh for every
// dialog mount so each mount owns its own acquisition generation.
type Model struct {
	ctx     context.Context
	recipes domain.RecipeSource
	locker  domain.WakeLocker
	sound   domain.SoundPlayer
	pref    *motion.Pref
	stack   *histguard.ModalStack
	log     *logger.Logger

	list    []domain.RecipeSummary
	cursor  int
	loadErr error
	loading bool

	filter    textinput.Model
	filtering bool

	// resume remembers the last position per recipe for this run, so
	// reopening a recipe lands where the cook left off.
	resume map[string]int

	active *cookmode.Model

	keys   pickerKeyMap
	width  int
	height int
}

// New builds the application root.
func New(ctx context.Context, recipes domain.RecipeSource, locker domain.WakeLocker, sound domain.SoundPlayer, pref *motion.Pref, log *logger.Logger) *Model {
	filter := textinput.New()
	filter.Placeholder = "type to filter"
	filter.Prompt = "/ "
	filter.CharLimit = 40

	return &Model{
		filter:  filter,
		ctx:     ctx,
		recipes: recipes,
		locker:  locker,
		sound:   sound,
		pref:    pref,
		stack:   histguard.NewModalStack(),
		log:     log,
		resume:  make(map[string]int),
		keys:    defaultPickerKeys(),
		loading: true,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.loadList()
}

func (m *Model) loadList() tea.Cmd {
	ctx, recipes := m.ctx, m.recipes
	return func() tea.Msg {
		list, err := recipes.List(ctx)
		return recipesMsg{list: list, err: err}
	}
}

func (m *Model) loadRecipe(id string) tea.Cmd {
	ctx, recipes := m.ctx, m.recipes
	return func() tea.Msg {
		r, err := recipes.Get(ctx, id)
		return recipeMsg{recipe: r, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.active != nil {
			_, cmd := m.active.Update(msg)
			return m, cmd
		}
		return m, nil

	case recipesMsg:
		m.loading = false
		m.loadErr = msg.err
		m.list = msg.list
		if m.cursor >= len(m.list) {
			m.cursor = 0
		}
		return m, nil

	case recipeMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			m.log.Error("app: loading recipe: %v", msg.err)
			return m, nil
		}
		return m, m.mount(msg.recipe)

	case cookmode.CloseMsg:
		m.active = nil
		m.log.Debug("app: dialog closed, back to picker")
		return m, nil
	}

	if m.active != nil {
		_, cmd := m.active.Update(msg)
		return m, cmd
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		return m.handlePickerKey(k)
	}
	return m, nil
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter input is being edited it owns every printable
	// key; only escape, enter, and the cursor keys keep their meaning.
	if m.filtering {
		switch msg.Type {
		case tea.KeyEsc:
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.cursor = 0
			return m, nil
		case tea.KeyEnter:
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case tea.KeyUp, tea.KeyDown:
			// fall through to list navigation below
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.cursor = 0
			return m, cmd
		}
	}

	visible := m.visible()
	switch {
	case !m.filtering && key.Matches(msg, m.keys.Quit):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.cursor = 0
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case !m.filtering && key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter.Focus()
	case !m.filtering && key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.loadList()
	case key.Matches(msg, m.keys.Select):
		if len(visible) > 0 && m.cursor < len(visible) {
			return m, m.loadRecipe(visible[m.cursor].ID)
		}
	}
	return m, nil
}

// visible returns the recipe list with the current filter applied.
func (m *Model) visible() []domain.RecipeSummary {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		return m.list
	}
	var out []domain.RecipeSummary
	for _, r := range m.list {
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Description), q) {
			out = append(out, r)
		}
	}
	return out
}

// mount opens the cooking dialog for one recipe, resuming at the last
// position seen for it during this run. A completed run forgets its
// position; closing mid-recipe keeps it.
func (m *Model) mount(r *domain.Recipe) tea.Cmd {
	id := r.ID
	var dlg *cookmode.Model
	dlg = cookmode.New(m.ctx, r.Title, r.Instructions, m.log,
		cookmode.WithInitialStep(m.resume[id]),
		cookmode.WithWakeLock(wakelock.NewManager(m.locker, m.log)),
		cookmode.WithSound(m.sound),
		cookmode.WithMotion(m.pref),
		cookmode.WithStack(m.stack),
		cookmode.WithOnStepChange(func(step int) { m.resume[id] = step }),
		cookmode.WithOnClose(func() {
			if dlg.Phase() == domain.Completed {
				delete(m.resume, id)
			}
		}),
	)
	m.active = dlg
	return dlg.Init()
}

func (m *Model) View() string {
	if m.active != nil {
		return m.active.View()
	}

	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("What are we cooking?"))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	visible := m.visible()
	switch {
	case m.loading:
		b.WriteString(pickerMetaStyle.Render("Loading recipes..."))
	case m.loadErr != nil:
		b.WriteString(pickerErrStyle.Render(fmt.Sprintf("Could not load recipes: %v", m.loadErr)))
	case len(m.list) == 0:
		b.WriteString(pickerMetaStyle.Render("No recipes found. Drop some YAML files in the recipes directory."))
	case len(visible) == 0:
		b.WriteString(pickerMetaStyle.Render("Nothing matches that filter."))
	default:
		for i, r := range visible {
			cursor := "  "
			style := pickerItemStyle
			if i == m.cursor {
				cursor = pickerCursorStyle.Render("▸ ")
				style = pickerCursorStyle
			}
			b.WriteString(cursor + style.Render(r.Title))
			b.WriteString("\n")
			meta := fmt.Sprintf("%d steps", r.Steps)
			if r.Description != "" {
				meta = r.Description + "  ·  " + meta
			}
			b.WriteString("  " + pickerMetaStyle.Render(meta))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(pickerMetaStyle.Render("↑/↓ choose · enter cook · / filter · r reload · q quit"))
	return b.String()
}
