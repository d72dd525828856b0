package testutil

import tea "github.com/charmbracelet/bubbletea"

// Component is a bubbletea component that updates in place.
type Component interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
}

// Harness wraps a component for testing, collecting the commands it
// returns and feeding their messages back.
type Harness struct {
	c    Component
	cmds []tea.Cmd
}

// NewHarness creates a harness around c.
func NewHarness(c Component) *Harness {
	return &Harness{c: c}
}

// SetSize sets the component dimensions.
func (h *Harness) SetSize(width, height int) {
	h.c.SetSize(width, height)
}

// View returns the component's rendered content.
func (h *Harness) View() string {
	return h.c.View()
}

// Send delivers msg and records the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	cmd := h.c.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey sends a key by its string form ("a", "left", "ctrl+c"...).
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.Send(KeyMsg(key))
}

// Commands returns the commands collected so far.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil.
func (h *Harness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands forgets the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ViewContains checks if the plain view contains substr on one line.
func (h *Harness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}

// ExecuteCmd runs cmd and returns its message. Batches are flattened and
// the first non-nil message is returned.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if m := ExecuteCmd(c); m != nil {
				return m
			}
		}
		return nil
	}
	return msg
}

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"delete":    tea.KeyDelete,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
	" ":         tea.KeySpace,
}

// KeyMsg builds the tea.KeyMsg whose String() is key.
func KeyMsg(key string) tea.KeyMsg {
	if t, ok := specialKeys[key]; ok {
		if t == tea.KeySpace {
			return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		}
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}
