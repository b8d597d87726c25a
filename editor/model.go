package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/bracebidi/bidi"
	"github.com/iw2rmb/bracebidi/buffer"
	"github.com/iw2rmb/bracebidi/internal/log"
	"github.com/iw2rmb/bracebidi/language"
)

// Model is a Bubble Tea component that renders and edits a buffer.
//
// Model is a value type like other Bubble Tea components; copies share the
// buffer and the decoration cache of the view they were made from.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	lang *language.Language
	deco *bidi.Decorator

	focused bool

	viewport viewport.Model

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	lang := language.New(cfg.Parser)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		lang:     lang,
		deco:     bidi.NewDecorator(lang),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Tokens returns the classification of the current text.
func (m Model) Tokens() []language.Token {
	return m.lang.Parse(m.buf).Tokens
}

// Ranges returns the directional ranges of the current text. The slice is
// cached and must not be modified.
func (m Model) Ranges() []bidi.Range {
	return m.deco.Ranges(m.buf)
}

// Decorator exposes the view's decoration cache.
func (m Model) Decorator() *bidi.Decorator { return m.deco }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	width, height = max(width, 0), max(height, 0)
	m.viewport.Width = width
	m.viewport.Height = height
	log.Debug(log.CatUI, "resize", "width", width, "height", height)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// The host may have mutated the buffer outside of the editor.
		m.syncFromBuffer()
		// Mouse wheel scrolls freely; don't snap back to the cursor.
		return m, cmd
	case tea.KeyMsg:
		m = m.updateKey(msg)
	}

	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, nil
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer rebuilds content when the buffer moved since the last sync,
// and reports whether the cursor changed.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.buildChangeEvent())
	}
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}
