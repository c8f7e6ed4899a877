// Package teaui hosts the Bubble Tea program for the negocio TUI.
package teaui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/negocio/pkg/agenda"
	"tableflip.dev/negocio/pkg/app"
	"tableflip.dev/negocio/pkg/catalog"
	"tableflip.dev/negocio/pkg/money"
	"tableflip.dev/negocio/pkg/timeutil"
	"tableflip.dev/negocio/pkg/tui/components/calendar"
	"tableflip.dev/negocio/pkg/tui/theme"
)

// confirm identifies the pending confirmation, if any. While one is open
// it captures all input; the gated mutation runs only on explicit accept.
type confirm int

const (
	confirmNone confirm = iota
	confirmSale
	confirmDelete
)

// calFocus selects which calendar zone receives keys.
type calFocus int

const (
	focusGrid calFocus = iota
	focusNotes
	focusNoteForm
)

type serviceItem struct {
	svc      catalog.Service
	currency string
}

func (it serviceItem) Title() string {
	return fmt.Sprintf("%s  %s", it.svc.Name, money.FormatWith(it.currency, it.svc.Price))
}
func (it serviceItem) Description() string { return "" }
func (it serviceItem) FilterValue() string { return it.svc.Name }

// Model contains the UI state around the shared app state container.
type Model struct {
	app      *app.App
	th       theme.Theme
	currency string

	termWidth  int
	termHeight int

	menuIndex int

	svcList list.Model
	catList list.Model

	nameInput  textinput.Model
	priceInput textinput.Model
	formFocus  int // 0 name, 1 price, 2 list
	catInForm  bool

	dateEntry bool
	dateInput textinput.Model

	cursorDay    time.Time
	calZone      calFocus
	noteCursor   int
	titleInput   textinput.Model
	contentInput textinput.Model
	noteFocus    int // 0 title, 1 content
	showNoteForm bool

	pending    confirm
	pendingSvc catalog.Service

	alert  string
	status string
}

var menuEntries = []string{
	"Registrar Venta",
	"Ver Ventas",
	"Gestionar Servicios",
	"Calendario y Notas",
}

// New creates the UI model around the shared state container.
func New(a *app.App, currency string) Model {
	if currency == "" {
		currency = money.DefaultLabel
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l1 := list.New([]list.Item{}, d, 60, 14)
	l1.Title = "Servicios"
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)
	l1.SetFilteringEnabled(false)

	l2 := list.New([]list.Item{}, d, 60, 10)
	l2.Title = "Lista de Servicios"
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)
	l2.SetFilteringEnabled(false)

	newInput := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Prompt = ""
		return ti
	}

	m := Model{
		app:          a,
		th:           theme.Default(),
		currency:     currency,
		svcList:      l1,
		catList:      l2,
		nameInput:    newInput("Nombre del servicio", 64),
		priceInput:   newInput("Precio", 16),
		formFocus:    2,
		dateInput:    newInput("d/m/aaaa", 10),
		titleInput:   newInput("Título de la nota", 64),
		contentInput: newInput("Contenido...", 256),
		cursorDay:    a.Now(),
		status:       "↑/↓ elegir, enter abrir, q salir",
	}
	m.refreshServices()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refreshServices() {
	services := m.app.Catalog.List()
	items := make([]list.Item, 0, len(services))
	for _, s := range services {
		items = append(items, serviceItem{svc: s, currency: m.currency})
	}
	m.svcList.SetItems(items)
	m.catList.SetItems(items)
}

func (m *Model) selectedService(l *list.Model) (catalog.Service, bool) {
	sel := l.SelectedItem()
	if sel == nil {
		return catalog.Service{}, false
	}
	it, ok := sel.(serviceItem)
	if !ok {
		return catalog.Service{}, false
	}
	return it.svc, true
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
		if m.pending != confirmNone {
			m.updateConfirm(msg)
			return m, nil
		}

		switch m.app.Screen() {
		case app.ScreenMenu:
			return m.updateMenu(msg)
		case app.ScreenSaleEntry:
			return m.updateSaleEntry(msg)
		case app.ScreenLedger:
			return m.updateLedger(msg)
		case app.ScreenCatalog:
			return m.updateCatalog(msg)
		case app.ScreenCalendar:
			return m.updateCalendar(msg)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateConfirm(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "enter", "s", "y":
		switch m.pending {
		case confirmSale:
			if _, err := m.app.RegisterSale(m.pendingSvc.ID); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("Venta de %q registrada", m.pendingSvc.Name)
			}
		case confirmDelete:
			if m.app.DeleteService(m.pendingSvc.ID) {
				m.status = fmt.Sprintf("Servicio %q eliminado", m.pendingSvc.Name)
			}
			m.refreshServices()
		}
		m.pending = confirmNone
		m.pendingSvc = catalog.Service{}
	case "esc", "n", "q":
		m.pending = confirmNone
		m.pendingSvc = catalog.Service{}
		m.status = "Cancelado"
	}
}

func (m Model) updateMenu(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuEntries)-1 {
			m.menuIndex++
		}
	case "1", "2", "3", "4":
		m.menuIndex = int(msg.String()[0] - '1')
		return m.openMenuEntry()
	case "enter":
		return m.openMenuEntry()
	}
	return m, nil
}

func (m Model) openMenuEntry() (tea.Model, tea.Cmd) {
	switch m.menuIndex {
	case 0:
		m.app.SetScreen(app.ScreenSaleEntry)
		m.refreshServices()
		m.status = "enter registrar, esc volver"
	case 1:
		m.app.SetScreen(app.ScreenLedger)
		m.status = "←/→ cambiar día, f elegir fecha, esc volver"
	case 2:
		m.app.SetScreen(app.ScreenCatalog)
		m.refreshServices()
		m.formFocus = 2
		m.catInForm = false
		m.status = "a añadir, e editar, d eliminar, esc volver"
	case 3:
		m.app.SetScreen(app.ScreenCalendar)
		m.calZone = focusGrid
		m.cursorDay = m.app.Now()
		m.app.SetViewedMonth(m.cursorDay)
		m.status = "flechas mover, enter marcar día, n nota, tab notas, esc volver"
	}
	return m, nil
}

func (m Model) updateSaleEntry(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.app.SetScreen(app.ScreenMenu)
		m.status = "↑/↓ elegir, enter abrir, q salir"
		return m, nil
	case "enter":
		if svc, ok := m.selectedService(&m.svcList); ok {
			m.pending = confirmSale
			m.pendingSvc = svc
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.svcList, cmd = m.svcList.Update(msg)
	return m, cmd
}

func (m Model) updateLedger(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.dateEntry {
		switch msg.String() {
		case "enter":
			if t, err := timeutil.ParseDisplayDate(strings.TrimSpace(m.dateInput.Value())); err == nil {
				m.app.SetLedgerDate(t)
				m.status = "Fecha cambiada"
			} else {
				m.status = "Fecha no válida (usa d/m/aaaa)"
			}
			m.dateEntry = false
			m.dateInput.Reset()
			m.dateInput.Blur()
		case "esc":
			m.dateEntry = false
			m.dateInput.Reset()
			m.dateInput.Blur()
		default:
			var cmd tea.Cmd
			m.dateInput, cmd = m.dateInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "q":
		m.app.SetScreen(app.ScreenMenu)
		m.status = "↑/↓ elegir, enter abrir, q salir"
	case "left", "h", "-":
		m.app.SetLedgerDate(m.app.LedgerDate().AddDate(0, 0, -1))
	case "right", "l", "+":
		m.app.SetLedgerDate(m.app.LedgerDate().AddDate(0, 0, 1))
	case "t":
		m.app.SetLedgerDate(m.app.Now())
	case "f", "d":
		m.dateEntry = true
		m.dateInput.SetValue(timeutil.DisplayDate(m.app.LedgerDate()))
		m.dateInput.CursorEnd()
		if cmd := m.dateInput.Focus(); cmd != nil {
			return m, tea.Batch(cmd, textinput.Blink)
		}
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateCatalog(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.catInForm {
		switch msg.String() {
		case "tab":
			m.formFocus = (m.formFocus + 1) % 2
			m.focusCatalogInput()
			return m, textinput.Blink
		case "enter":
			if m.app.AddOrUpdateService(m.nameInput.Value(), m.priceInput.Value()) {
				m.nameInput.Reset()
				m.priceInput.Reset()
				m.leaveCatalogForm()
				m.refreshServices()
				m.status = "Servicio guardado"
			}
			// empty name or bad price: silent no-op, the form keeps its text
			return m, nil
		case "esc":
			m.app.CancelEdit()
			m.nameInput.Reset()
			m.priceInput.Reset()
			m.leaveCatalogForm()
			m.status = "Edición cancelada"
			return m, nil
		}
		var cmd tea.Cmd
		if m.formFocus == 0 {
			m.nameInput, cmd = m.nameInput.Update(msg)
		} else {
			m.priceInput, cmd = m.priceInput.Update(msg)
		}
		return m, cmd
	}

	switch msg.String() {
	case "esc", "q":
		m.app.SetScreen(app.ScreenMenu)
		m.status = "↑/↓ elegir, enter abrir, q salir"
		return m, nil
	case "a", "o":
		m.enterCatalogForm()
		return m, textinput.Blink
	case "e", "i":
		if svc, ok := m.selectedService(&m.catList); ok {
			if loaded, ok := m.app.StartEdit(svc.ID); ok {
				m.nameInput.SetValue(loaded.Name)
				m.priceInput.SetValue(fmt.Sprintf("%g", loaded.Price))
				m.enterCatalogForm()
				return m, textinput.Blink
			}
		}
		return m, nil
	case "d", "x":
		if svc, ok := m.selectedService(&m.catList); ok {
			m.pending = confirmDelete
			m.pendingSvc = svc
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.catList, cmd = m.catList.Update(msg)
	return m, cmd
}

func (m *Model) enterCatalogForm() {
	m.catInForm = true
	m.formFocus = 0
	m.focusCatalogInput()
}

func (m *Model) leaveCatalogForm() {
	m.catInForm = false
	m.formFocus = 2
	m.nameInput.Blur()
	m.priceInput.Blur()
}

func (m *Model) focusCatalogInput() {
	if m.formFocus == 0 {
		m.priceInput.Blur()
		m.nameInput.Focus()
	} else {
		m.nameInput.Blur()
		m.priceInput.Focus()
	}
}

func (m Model) updateCalendar(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.calZone == focusNoteForm {
		return m.updateNoteForm(msg)
	}
	if m.calZone == focusNotes {
		return m.updateNoteList(msg)
	}

	switch msg.String() {
	case "esc", "q":
		m.app.SetScreen(app.ScreenMenu)
		m.status = "↑/↓ elegir, enter abrir, q salir"
	case "left", "h":
		m.moveCursor(0, 0, -1)
	case "right", "l":
		m.moveCursor(0, 0, 1)
	case "up", "k":
		m.moveCursor(0, 0, -7)
	case "down", "j":
		m.moveCursor(0, 0, 7)
	case "[", "pgup":
		m.moveCursor(0, -1, 0)
	case "]", "pgdown":
		m.moveCursor(0, 1, 0)
	case "enter", "space":
		m.tapCursorDay()
	case "n":
		if m.app.SelectedDay() != "" {
			m.showNoteForm = !m.showNoteForm
			if m.showNoteForm {
				m.calZone = focusNoteForm
				m.noteFocus = 0
				m.contentInput.Blur()
				if cmd := m.titleInput.Focus(); cmd != nil {
					return m, tea.Batch(cmd, textinput.Blink)
				}
				return m, textinput.Blink
			}
		}
	case "tab":
		if m.app.SelectedDay() != "" && len(m.app.Notes()) > 0 {
			m.calZone = focusNotes
			m.noteCursor = 0
			m.status = "↑/↓ elegir nota, enter expandir, tab volver al calendario"
		}
	}
	return m, nil
}

func (m *Model) moveCursor(years, months, days int) {
	next := m.cursorDay.AddDate(years, months, days)
	m.cursorDay = next
	if !timeutil.SameMonth(next, m.app.ViewedMonth()) {
		m.app.SetViewedMonth(next)
	}
}

func (m *Model) tapCursorDay() {
	day := timeutil.ISODay(m.cursorDay)
	status, set := m.app.TapDay(day)

	// tapping always collapses and clears the note form
	m.showNoteForm = false
	m.titleInput.Reset()
	m.contentInput.Reset()
	m.titleInput.Blur()
	m.contentInput.Blur()
	m.noteCursor = 0

	switch {
	case set && status == agenda.Open:
		m.status = fmt.Sprintf("%s: abierto", day)
	case set && status == agenda.Closed:
		m.status = fmt.Sprintf("%s: cerrado", day)
	default:
		m.status = fmt.Sprintf("%s: sin estado", day)
	}
}

func (m Model) updateNoteForm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.noteFocus = (m.noteFocus + 1) % 2
		if m.noteFocus == 0 {
			m.contentInput.Blur()
			m.titleInput.Focus()
		} else {
			m.titleInput.Blur()
			m.contentInput.Focus()
		}
		return m, textinput.Blink
	case "enter":
		if _, err := m.app.AddNote(m.titleInput.Value(), m.contentInput.Value()); err != nil {
			m.alert = "El título y el contenido de la nota no pueden estar vacíos."
			return m, nil
		}
		m.titleInput.Reset()
		m.contentInput.Reset()
		m.titleInput.Blur()
		m.contentInput.Blur()
		m.showNoteForm = false
		m.calZone = focusGrid
		m.status = "Nota guardada"
		return m, nil
	case "esc":
		m.showNoteForm = false
		m.calZone = focusGrid
		m.titleInput.Blur()
		m.contentInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	if m.noteFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentInput, cmd = m.contentInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateNoteList(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	notes := m.app.Notes()
	switch msg.String() {
	case "tab", "esc":
		m.calZone = focusGrid
		m.status = "flechas mover, enter marcar día, n nota, tab notas, esc volver"
	case "up", "k":
		if m.noteCursor > 0 {
			m.noteCursor--
		}
	case "down", "j":
		if m.noteCursor < len(notes)-1 {
			m.noteCursor++
		}
	case "enter", "space":
		if m.noteCursor < len(notes) {
			m.app.ToggleNote(notes[m.noteCursor].ID)
		}
	}
	return m, nil
}

// View renders the active screen plus any modal overlay.
func (m Model) View() string {
	var body string
	switch m.app.Screen() {
	case app.ScreenMenu:
		body = m.viewMenu()
	case app.ScreenSaleEntry:
		body = m.viewSaleEntry()
	case app.ScreenLedger:
		body = m.viewLedger()
	case app.ScreenCatalog:
		body = m.viewCatalog()
	case app.ScreenCalendar:
		body = m.viewCalendar()
	}

	if m.pending != confirmNone {
		body += "\n\n" + m.viewConfirm()
	}
	if m.alert != "" {
		body += "\n\n" + m.viewAlert()
	}

	return body + "\n\n" + m.th.Status.Render(m.status)
}

func (m Model) viewMenu() string {
	lines := []string{m.th.Title.Render("Mi Negocio"), ""}
	for i, entry := range menuEntries {
		marker := "  "
		style := lipgloss.NewStyle()
		if i == m.menuIndex {
			marker = "» "
			style = m.th.Subtitle
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%d. %s", marker, i+1, entry)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewSaleEntry() string {
	return m.th.Title.Render("Registrar Venta") + "\n\n" + m.svcList.View()
}

func (m Model) viewLedger() string {
	entries, total := m.app.LedgerView()

	var b strings.Builder
	b.WriteString(m.th.Title.Render("Ventas Realizadas"))
	b.WriteString("\n\n")

	if m.dateEntry {
		b.WriteString("Fecha: " + m.dateInput.View())
	} else {
		b.WriteString(fmt.Sprintf("Fecha: %s", timeutil.DisplayDate(m.app.LedgerDate())))
	}
	b.WriteString("\n\n")

	summary := m.th.SummaryText.Render("Total del Día") + "\n" +
		m.th.Price.Render(money.FormatWith(m.currency, total))
	b.WriteString(m.th.Summary.Render(summary))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(m.th.Empty.Render("No hay ventas para esta fecha."))
	} else {
		for _, s := range entries {
			row := fmt.Sprintf("%s  %s  %s",
				m.th.Timestamp.Render(s.Time),
				s.Service,
				m.th.Price.Render(money.FormatWith(m.currency, s.Price)))
			b.WriteString(row)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewCatalog() string {
	title := "Gestionar Servicios"
	if _, editing := m.app.Editing(); editing {
		title = "Editando Servicio"
	}

	var b strings.Builder
	b.WriteString(m.th.Title.Render(title))
	b.WriteString("\n\n")

	if m.catInForm {
		b.WriteString("Nombre: " + m.nameInput.View() + "\n")
		b.WriteString("Precio: " + m.priceInput.View() + "\n")
		b.WriteString(m.th.Status.Render("tab cambiar campo, enter guardar, esc cancelar"))
	} else {
		b.WriteString(m.th.Status.Render("a añadir servicio"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.catList.View())
	return b.String()
}

func (m Model) viewCalendar() string {
	month := m.app.ViewedMonth()

	var b strings.Builder
	b.WriteString(m.th.Title.Render("Calendario y Notas"))
	b.WriteString("\n\n")

	summary := m.th.SummaryText.Render("Ventas de "+timeutil.MonthName(month.Month())) + "\n" +
		m.th.Price.Render(money.FormatWith(m.currency, m.app.MonthlyTotal()))
	b.WriteString(m.th.Summary.Render(summary))
	b.WriteString("\n\n")

	b.WriteString(m.th.Subtitle.Render(timeutil.MonthTitle(month)))
	b.WriteString("\n")
	b.WriteString(calendar.Render(month, m.calendarDays(month), calendar.DefaultOptions()))
	b.WriteString("\n")

	if day := m.app.SelectedDay(); day != "" {
		b.WriteString("\n")
		b.WriteString(m.th.Subtitle.Render("Notas para " + day))
		b.WriteString("\n")

		if m.showNoteForm {
			b.WriteString("Título:    " + m.titleInput.View() + "\n")
			b.WriteString("Contenido: " + m.contentInput.View() + "\n")
			b.WriteString(m.th.Status.Render("enter guardar nota, esc ocultar"))
			b.WriteString("\n")
		}

		notes := m.app.Notes()
		if len(notes) == 0 {
			b.WriteString(m.th.Empty.Render("No hay notas para este día."))
		} else {
			expanded := m.app.ExpandedNote()
			for i, n := range notes {
				marker := "▸"
				if n.ID == expanded {
					marker = "▾"
				}
				cursor := "  "
				if m.calZone == focusNotes && i == m.noteCursor {
					cursor = "» "
				}
				b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, marker, m.th.NoteTitle.Render(n.Title)))
				if n.ID == expanded {
					b.WriteString("    " + m.th.NoteBody.Render(n.Content) + "\n")
					b.WriteString("    " + m.th.Timestamp.Render(n.Time) + "\n")
				}
			}
		}
	}
	return b.String()
}

func (m *Model) calendarDays(month time.Time) map[int]calendar.Day {
	marked := m.app.Markers()
	selected := m.app.SelectedDay()
	now := m.app.Now()

	days := make(map[int]calendar.Day)
	for d := 1; d <= timeutil.DaysIn(month); d++ {
		date := time.Date(month.Year(), month.Month(), d, 0, 0, 0, 0, month.Location())
		key := timeutil.ISODay(date)
		mk := marked[key]
		info := calendar.Day{
			Day:        d,
			Status:     mk.Status,
			HasNote:    mk.HasNote,
			IsToday:    timeutil.SameDay(date, now),
			IsSelected: key == selected,
			IsCursor:   timeutil.SameDay(date, m.cursorDay),
		}
		if info != (calendar.Day{Day: d}) {
			days[d] = info
		}
	}
	return days
}

func (m Model) viewConfirm() string {
	var title, question, accept string
	acceptStyle := m.th.Subtitle
	switch m.pending {
	case confirmSale:
		title = "Confirmar Venta"
		question = fmt.Sprintf("¿Deseas registrar la venta de %q?", m.pendingSvc.Name)
		accept = "Registrar"
	case confirmDelete:
		title = "Confirmar"
		question = "¿Estás seguro de que deseas eliminar este servicio?"
		accept = "Eliminar"
		acceptStyle = m.th.Danger
	}

	body := m.th.ModalTitle.Render(title) + "\n\n" + question + "\n\n" +
		fmt.Sprintf("[enter] %s   [esc] Cancelar", acceptStyle.Render(accept))
	return m.th.Modal.Render(body)
}

func (m Model) viewAlert() string {
	body := m.th.ModalTitle.Render("Error") + "\n\n" + m.alert + "\n\n" +
		m.th.Status.Render("pulsa una tecla para continuar")
	return m.th.Modal.BorderForeground(m.th.Colors.Danger).Render(body)
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	width := m.termWidth - 4
	if width < 30 {
		width = 30
	}
	height := m.termHeight - 8
	if height < 5 {
		height = 5
	}
	m.svcList.SetSize(width, height)
	m.catList.SetSize(width, height-4)
}

// Run launches the Bubble Tea program.
func Run(a *app.App, currency string) error {
	p := tea.NewProgram(New(a, currency), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
