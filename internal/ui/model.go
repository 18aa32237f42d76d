// Package ui is the bubbletea front-end over a corpus session. It
// consumes the core's data — cached references, wrapped lines, hit
// lists — and never touches the corpus file itself.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"versicle/internal/canon"
	"versicle/internal/corpus"
	"versicle/internal/remote"
	"versicle/internal/store"
	"versicle/internal/wrap"
)

type viewMode int

const (
	modeMenu viewMode = iota
	modeBrowse
	modeRead
	modeSearchInput
	modeSearchResults
	modeBookmarks
	modeSettings
	modePicker
	modeRemoteInput
	modeRemoteLoading
	modeRemoteResult
	modeError
)

// widthChoices are the selectable verse display widths in characters,
// matching the width each supported display font allows.
var widthChoices = [store.WidthChoiceCount]int{22, 30, 24, 20, 13}

var widthLabels = [store.WidthChoiceCount]string{
	"Default (22 cols)",
	"Narrow font (30 cols)",
	"Small font (24 cols)",
	"Medium font (20 cols)",
	"Large font (13 cols)",
}

var menuItems = []string{
	"Browse Verses",
	"Search Verses",
	"Random Verse",
	"Verse of the Day",
	"Bookmarks",
	"Online Lookup",
	"Settings",
	"Quit",
}

// visibleVerseLines is how many wrapped lines the read screen shows at
// once. It is smaller than wrap.MaxLines, so long verses scroll.
const visibleVerseLines = 4

type passageMsg struct {
	passage *remote.Passage
	err     error
}

// Model drives every screen of the reader. It owns the session for the
// life of the program.
type Model struct {
	session *corpus.Session
	client  *remote.Client

	mode   viewMode
	width  int
	height int

	menuSel int

	browseSel int

	// Read state: position is -1 while showing a remote passage.
	readPos    int
	readRef    string
	wrapped    wrap.Result
	returnMode viewMode

	searchInput textinput.Model
	hits        []int
	hitSel      int

	refInput textinput.Model

	markSel int

	settingsSel int

	pickField int // 0 = book, 1 = chapter, 2 = verse
	spin      spinner.Model

	errMsg string
}

// NewModel builds the initial model around an open session.
func NewModel(s *corpus.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "word or reference"
	ti.CharLimit = 64
	ti.Width = 32

	ri := textinput.New()
	ri.Placeholder = "e.g. John 3:16"
	ri.CharLimit = 64
	ri.Width = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		session:     s,
		client:      remote.NewClient(),
		mode:        modeMenu,
		width:       80,
		height:      24,
		searchInput: ti,
		refInput:    ri,
		spin:        sp,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// cols returns the configured verse display width.
func (m Model) cols() int {
	return widthChoices[m.session.Settings().WidthChoice]
}

// openVerse loads one record and lays it out for the read screen.
func (m *Model) openVerse(pos int, from viewMode) {
	rec, err := m.session.Record(pos)
	// A failed read still renders: cached reference, placeholder body.
	_ = err
	m.readPos = pos
	m.readRef = rec.Ref
	if m.readRef == "" {
		m.readRef = m.session.Ref(pos)
	}
	m.wrapped = wrap.Wrap(rec.Body, m.cols())
	m.returnMode = from
	m.mode = modeRead
}

// openPassage lays out a fetched remote passage on the read screen.
func (m *Model) openPassage(p *remote.Passage) {
	m.readPos = -1
	m.readRef = p.Reference
	m.wrapped = wrap.Wrap(p.Text, m.cols())
	m.returnMode = modePicker
	m.mode = modeRead
}

func (m *Model) fetchPassage() tea.Cmd {
	s := m.session.Settings()
	client := m.client
	return func() tea.Msg {
		p, err := client.LookupVerse(context.Background(),
			s.PickBook, s.PickChapter, s.PickVerse, s.Translation)
		return passageMsg{passage: p, err: err}
	}
}

// fetchReference looks up a typed free-form reference such as
// "Romans 8:28-30" in the currently selected translation.
func (m *Model) fetchReference(ref string) tea.Cmd {
	translation := m.session.Settings().Translation
	client := m.client
	return func() tea.Msg {
		p, err := client.Lookup(context.Background(), ref, translation)
		return passageMsg{passage: p, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case passageMsg:
		if m.mode != modeRemoteLoading {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.mode = modeError
			return m, nil
		}
		m.openPassage(msg.passage)
		return m, nil

	case spinner.TickMsg:
		if m.mode != modeRemoteLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeRead:
			return m.updateRead(msg)
		case modeSearchInput:
			return m.updateSearchInput(msg)
		case modeSearchResults:
			return m.updateSearchResults(msg)
		case modeBookmarks:
			return m.updateBookmarks(msg)
		case modeSettings:
			return m.updateSettings(msg)
		case modePicker:
			return m.updatePicker(msg)
		case modeRemoteInput:
			return m.updateRemoteInput(msg)
		case modeRemoteLoading:
			return m, nil
		case modeError:
			if msg.String() == "esc" || msg.String() == "enter" {
				m.mode = modeMenu
			}
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuSel > 0 {
			m.menuSel--
		}
	case "down", "j":
		if m.menuSel < len(menuItems)-1 {
			m.menuSel++
		}
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		switch m.menuSel {
		case 0:
			m.mode = modeBrowse
		case 1:
			m.searchInput.SetValue("")
			m.searchInput.Focus()
			m.mode = modeSearchInput
			return m, textinput.Blink
		case 2:
			m.openVerse(m.session.Random(), modeMenu)
		case 3:
			m.openVerse(m.session.Daily(), modeMenu)
		case 4:
			m.markSel = 0
			m.mode = modeBookmarks
		case 5:
			m.mode = modePicker
		case 6:
			m.settingsSel = 0
			m.mode = modeSettings
		case 7:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := m.session.Count()
	switch msg.String() {
	case "up", "k":
		if m.browseSel > 0 {
			m.browseSel--
		}
	case "down", "j":
		if m.browseSel < count-1 {
			m.browseSel++
		}
	case "left", "pgup":
		m.browseSel -= visibleVerseLines
		if m.browseSel < 0 {
			m.browseSel = 0
		}
	case "right", "pgdown":
		m.browseSel += visibleVerseLines
		if m.browseSel >= count {
			m.browseSel = count - 1
		}
	case "enter":
		m.openVerse(m.browseSel, modeBrowse)
	case "esc", "q":
		m.mode = modeMenu
	}
	return m, nil
}

func (m Model) updateRead(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.wrapped.ScrollUp()
	case "down", "j":
		m.wrapped.ScrollDown(visibleVerseLines)
	case "left", "h":
		if m.readPos > 0 {
			m.openVerse(m.readPos-1, m.returnMode)
		}
	case "right", "l":
		if m.readPos >= 0 && m.readPos < m.session.Count()-1 {
			m.openVerse(m.readPos+1, m.returnMode)
		}
	case "b", " ":
		if m.readPos >= 0 {
			m.session.ToggleBookmark(m.readPos)
		}
	case "esc", "q":
		m.mode = m.returnMode
	}
	return m, nil
}

func (m Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		hits, err := m.session.Search(m.searchInput.Value())
		if err != nil {
			m.errMsg = err.Error()
			m.mode = modeError
			return m, nil
		}
		m.hits = hits
		m.hitSel = 0
		m.mode = modeSearchResults
		return m, nil
	case "esc":
		m.mode = modeMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateSearchResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.hitSel > 0 {
			m.hitSel--
		}
	case "down", "j":
		if m.hitSel < len(m.hits)-1 {
			m.hitSel++
		}
	case "enter":
		if len(m.hits) > 0 {
			m.openVerse(m.hits[m.hitSel], modeSearchResults)
		}
	case "esc", "q":
		m.mode = modeSearchInput
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateBookmarks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	marks := m.session.Bookmarks()
	switch msg.String() {
	case "up", "k":
		if m.markSel > 0 {
			m.markSel--
		}
	case "down", "j":
		if m.markSel < len(marks)-1 {
			m.markSel++
		}
	case "d", "x":
		if m.markSel < len(marks) {
			m.session.ToggleBookmark(marks[m.markSel])
			if m.markSel > 0 {
				m.markSel--
			}
		}
	case "enter":
		if m.markSel < len(marks) {
			m.openVerse(marks[m.markSel], modeBookmarks)
		}
	case "esc", "q":
		m.mode = modeMenu
	}
	return m, nil
}

// updateSettings handles the combined corpus file and display width
// chooser. Rows 0..len(files)-1 pick the file; the rest pick a width.
func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	files := m.session.Files()
	rows := len(files) + store.WidthChoiceCount
	switch msg.String() {
	case "up", "k":
		if m.settingsSel > 0 {
			m.settingsSel--
		}
	case "down", "j":
		if m.settingsSel < rows-1 {
			m.settingsSel++
		}
	case "enter":
		if m.settingsSel < len(files) {
			if err := m.session.SwitchFile(m.settingsSel); err != nil {
				m.errMsg = err.Error()
				m.mode = modeError
				return m, nil
			}
			m.browseSel = 0
			m.hits = nil
		} else {
			s := m.session.Settings()
			s.WidthChoice = m.settingsSel - len(files)
			m.session.SetSettings(s)
		}
		_ = m.session.SaveSettings()
	case "esc", "q":
		m.mode = modeMenu
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session.Settings()
	switch msg.String() {
	case "left", "h":
		if m.pickField > 0 {
			m.pickField--
		}
	case "right", "l":
		if m.pickField < 2 {
			m.pickField++
		}
	case "up", "k":
		switch m.pickField {
		case 0:
			s.PickBook--
		case 1:
			s.PickChapter--
		case 2:
			s.PickVerse--
		}
	case "down", "j":
		switch m.pickField {
		case 0:
			s.PickBook++
		case 1:
			s.PickChapter++
		case 2:
			s.PickVerse++
		}
	case "t":
		next := (remote.TranslationIndex(s.Translation) + 1) % len(remote.Translations)
		s.Translation = remote.Translations[next].Code
	case "/":
		m.session.SetSettings(s)
		m.refInput.SetValue("")
		m.refInput.Focus()
		m.mode = modeRemoteInput
		return m, textinput.Blink
	case "enter":
		m.session.SetSettings(s)
		_ = m.session.SaveSettings()
		m.mode = modeRemoteLoading
		return m, tea.Batch(m.spin.Tick, m.fetchPassage())
	case "esc", "q":
		m.session.SetSettings(s)
		_ = m.session.SaveSettings()
		m.mode = modeMenu
		return m, nil
	}
	s.PickBook, s.PickChapter, s.PickVerse = canon.Clamp(s.PickBook, s.PickChapter, s.PickVerse)
	m.session.SetSettings(s)
	return m, nil
}

// updateRemoteInput handles typed-reference entry for the online
// lookup; the picker stays the way back on escape.
func (m Model) updateRemoteInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		ref := strings.TrimSpace(m.refInput.Value())
		if ref == "" {
			return m, nil
		}
		m.mode = modeRemoteLoading
		return m, tea.Batch(m.spin.Tick, m.fetchReference(ref))
	case "esc":
		m.mode = modePicker
		return m, nil
	}
	var cmd tea.Cmd
	m.refInput, cmd = m.refInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var body string
	switch m.mode {
	case modeMenu:
		body = m.viewMenu()
	case modeBrowse:
		body = m.viewBrowse()
	case modeRead:
		body = m.viewRead()
	case modeSearchInput:
		body = m.viewSearchInput()
	case modeSearchResults:
		body = m.viewSearchResults()
	case modeBookmarks:
		body = m.viewBookmarks()
	case modeSettings:
		body = m.viewSettings()
	case modePicker:
		body = m.viewPicker()
	case modeRemoteInput:
		body = m.viewRemoteInput()
	case modeRemoteLoading:
		body = headerBar("Online Lookup") + "\n\n  " + m.spin.View() + " fetching...\n"
	case modeError:
		body = headerBar("Error") + "\n\n" + errorStyle.Render("  "+m.errMsg) + "\n\n" +
			controlsStyle.Render("  ESC: back")
	}
	return body
}

func headerBar(title string) string {
	return headerStyle.Render(title)
}

// listView renders a cursor-selected window of items under a header.
func (m Model) listView(title string, items []string, sel int, footer string) string {
	var sb strings.Builder
	sb.WriteString(headerBar(title))
	sb.WriteString("\n")

	visible := m.height - 4
	if visible < 3 {
		visible = 3
	}
	top := 0
	if sel >= visible {
		top = sel - visible + 1
	}

	for i := top; i < len(items) && i < top+visible; i++ {
		label := runewidth.Truncate(items[i], m.width-4, "…")
		if i == sel {
			sb.WriteString(selectedStyle.Render(" " + label + " "))
		} else {
			sb.WriteString(itemStyle.Render(" " + label))
		}
		sb.WriteString("\n")
	}
	if len(items) == 0 {
		sb.WriteString(itemStyle.Render("  (empty)"))
		sb.WriteString("\n")
	}
	sb.WriteString(controlsStyle.Render(footer))
	return sb.String()
}

func (m Model) viewMenu() string {
	status := fmt.Sprintf("%s — %d verses",
		m.session.Files()[m.session.Active()].Label, m.session.Count())
	return m.listView("Versicle", menuItems, m.menuSel,
		statusStyle.Render(status)+"\n↑/↓: move  ENTER: select  Q: quit")
}

func (m Model) viewBrowse() string {
	items := make([]string, m.session.Count())
	for i := range items {
		items[i] = m.session.Ref(i)
		if m.session.IsBookmarked(i) {
			items[i] += " *"
		}
	}
	footer := fmt.Sprintf("%d/%d  ↑/↓: move  ←/→: page  ENTER: read  ESC: back",
		m.browseSel+1, len(items))
	return m.listView("All Verses", items, m.browseSel, footer)
}

func (m Model) viewRead() string {
	var sb strings.Builder
	sb.WriteString(refStyle.Render(m.readRef))
	if m.readPos >= 0 && m.session.IsBookmarked(m.readPos) {
		sb.WriteString(markStyle.Render(" *"))
	}
	sb.WriteString("\n\n")

	for i := m.wrapped.Scroll; i < m.wrapped.Count() && i < m.wrapped.Scroll+visibleVerseLines; i++ {
		sb.WriteString("  ")
		sb.WriteString(verseStyle.Render(m.wrapped.Lines[i]))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.readPos >= 0 {
		sb.WriteString(statusStyle.Render(fmt.Sprintf("%d/%d", m.readPos+1, m.session.Count())))
		sb.WriteString("\n")
		sb.WriteString(controlsStyle.Render("←/→: prev/next  ↑/↓: scroll  B: bookmark  ESC: back"))
	} else {
		sb.WriteString(controlsStyle.Render("↑/↓: scroll  ESC: back"))
	}
	return sb.String()
}

func (m Model) viewSearchInput() string {
	var sb strings.Builder
	sb.WriteString(headerBar("Search Verses"))
	sb.WriteString("\n\n  ")
	sb.WriteString(m.searchInput.View())
	sb.WriteString("\n\n")

	// Suggest a canonical book for the typed prefix, same as the
	// reference table backs the remote picker.
	if b := canon.FindBook(m.searchInput.Value()); b >= 0 {
		sb.WriteString(statusStyle.Render("book: " + canon.BookName(b)))
		sb.WriteString("\n")
	}
	sb.WriteString(controlsStyle.Render("  ENTER: search  ESC: back"))
	return sb.String()
}

func (m Model) viewSearchResults() string {
	items := make([]string, len(m.hits))
	for i, pos := range m.hits {
		items[i] = m.session.Ref(pos)
	}
	title := fmt.Sprintf("Results: %q (%d)", m.searchInput.Value(), len(m.hits))
	return m.listView(title, items, m.hitSel, "ENTER: read  ESC: back")
}

func (m Model) viewBookmarks() string {
	marks := m.session.Bookmarks()
	items := make([]string, len(marks))
	for i, pos := range marks {
		items[i] = m.session.Ref(pos)
	}
	return m.listView("Bookmarks", items, m.markSel,
		"ENTER: read  D: remove  ESC: back")
}

func (m Model) viewSettings() string {
	files := m.session.Files()
	s := m.session.Settings()
	items := make([]string, 0, len(files)+store.WidthChoiceCount)
	for i, f := range files {
		label := f.Label
		if i == m.session.Active() {
			label += " (active)"
		}
		items = append(items, label)
	}
	for i, label := range widthLabels {
		if i == s.WidthChoice {
			label += " (active)"
		}
		items = append(items, label)
	}
	return m.listView("Settings", items, m.settingsSel,
		"ENTER: apply  ESC: back")
}

func (m Model) viewPicker() string {
	s := m.session.Settings()
	fields := []string{
		canon.BookName(s.PickBook),
		fmt.Sprintf("%d", s.PickChapter),
		fmt.Sprintf("%d", s.PickVerse),
	}
	for i := range fields {
		if i == m.pickField {
			fields[i] = selectedStyle.Render(" " + fields[i] + " ")
		} else {
			fields[i] = itemStyle.Render(fields[i])
		}
	}

	trans := remote.Translations[0]
	if i := remote.TranslationIndex(s.Translation); i >= 0 {
		trans = remote.Translations[i]
	}

	var sb strings.Builder
	sb.WriteString(headerBar("Online Lookup"))
	sb.WriteString("\n\n  ")
	sb.WriteString(fields[0] + "  " + fields[1] + ":" + fields[2])
	sb.WriteString("\n\n")
	sb.WriteString(statusStyle.Render("translation: " + trans.Label))
	sb.WriteString("\n")
	sb.WriteString(controlsStyle.Render("  ←/→: field  ↑/↓: change  T: translation  /: type reference  ENTER: fetch  ESC: back"))
	return sb.String()
}

func (m Model) viewRemoteInput() string {
	s := m.session.Settings()
	trans := remote.Translations[0]
	if i := remote.TranslationIndex(s.Translation); i >= 0 {
		trans = remote.Translations[i]
	}

	var sb strings.Builder
	sb.WriteString(headerBar("Online Lookup"))
	sb.WriteString("\n\n  ")
	sb.WriteString(m.refInput.View())
	sb.WriteString("\n\n")
	if b := canon.FindBook(m.refInput.Value()); b >= 0 {
		sb.WriteString(statusStyle.Render("book: " + canon.BookName(b)))
		sb.WriteString("\n")
	}
	sb.WriteString(statusStyle.Render("translation: " + trans.Label))
	sb.WriteString("\n")
	sb.WriteString(controlsStyle.Render("  ENTER: fetch  ESC: back"))
	return sb.String()
}
