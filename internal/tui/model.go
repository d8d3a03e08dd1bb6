// Package tui is the terminal front end: a command-driven drop console for
// staging files and sending them to the clipboard.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"clipboarder/internal/clipboard"
	"clipboarder/internal/compile"
	"clipboarder/internal/config"
	"clipboarder/internal/droppaths"
	"clipboarder/internal/tokens"
)

type Model struct {
	// Core state
	input     textinput.Model
	stage     *compile.Stage
	cfg       *config.Config
	tokenizer compile.TokenCounter
	writer    clipboard.Writer

	// Feedback shown under the staged list
	statusMsg string
	errMsg    string

	// Chunked delivery state: remaining chunks wait for enter
	chunks   []string
	chunkIdx int

	quitting bool
}

// New builds the console model. The writer is injectable so tests can
// observe clipboard output.
func New(cfg *config.Config, writer clipboard.Writer) *Model {
	if cfg == nil {
		cfg = config.New()
	}
	if writer == nil {
		writer = clipboard.NewSystem()
	}

	input := textinput.New()
	input.Placeholder = "paste paths, or: l, r N, c, s, q"
	input.Focus()

	m := &Model{
		input:  input,
		stage:  compile.NewStage(),
		cfg:    cfg,
		writer: writer,
	}
	if tok, err := tokens.New(cfg.Tokenizer.Model); err == nil {
		m.tokenizer = tok
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// While chunks are pending only enter and esc mean anything
	if m.ChunksPending() {
		switch msg.Type {
		case tea.KeyEnter:
			m.copyNextChunk()
		case tea.KeyEsc:
			m.chunks = nil
			m.chunkIdx = 0
			m.statusMsg = "Chunked delivery cancelled"
		}
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		return m, m.handleCommand(line)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleCommand(line string) tea.Cmd {
	m.statusMsg = ""
	m.errMsg = ""

	if line == "" {
		return nil
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "q", "quit", "exit":
		m.quitting = true
		return tea.Quit
	case "l", "list":
		m.statusMsg = fmt.Sprintf("%d file(s) staged", m.stage.Len())
		return nil
	case "c", "clear":
		m.stage.Clear()
		m.statusMsg = "Cleared"
		return nil
	case "r", "rm", "remove":
		m.removeIndices(fields[1:])
		return nil
	case "s", "send", "copy":
		m.send()
		return nil
	}

	// Anything else is treated as dropped path text
	paths := droppaths.Parse(line)
	added, skipped := m.stage.Add(paths...)
	if added == 0 && skipped > 0 {
		m.errMsg = "No readable files in that input"
		return nil
	}
	m.statusMsg = fmt.Sprintf("Added %d file(s)", added)
	if skipped > 0 {
		m.statusMsg += fmt.Sprintf(", skipped %d", skipped)
	}
	return nil
}

// removeIndices drops the 1-based entries named in args from the stage.
func (m *Model) removeIndices(args []string) {
	if len(args) == 0 {
		m.errMsg = "Usage: r N [N...]"
		return
	}
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			m.errMsg = fmt.Sprintf("Invalid index %q", arg)
			return
		}
		indices = append(indices, n-1)
	}
	m.stage.Remove(indices...)
	m.statusMsg = fmt.Sprintf("%d file(s) staged", m.stage.Len())
}

func (m *Model) send() {
	payload, err := compile.Compile(m.stage.Paths(), compile.OptionsFromConfig(m.cfg), m.tokenizer)
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	m.chunks = compile.SplitByTokens(payload.Text, m.cfg.Compile.MaxTokens, m.tokenizer)
	m.chunkIdx = 0
	m.copyNextChunk()

	if !m.ChunksPending() && payload.TotalTokens > 0 {
		m.statusMsg += fmt.Sprintf(" (~%d tokens)", payload.TotalTokens)
	}
}

func (m *Model) copyNextChunk() {
	if m.chunkIdx >= len(m.chunks) {
		return
	}
	chunk := m.chunks[m.chunkIdx]
	if err := m.writer.Write(chunk); err != nil {
		m.errMsg = err.Error()
		m.chunks = nil
		m.chunkIdx = 0
		return
	}
	m.chunkIdx++

	if m.chunkIdx < len(m.chunks) {
		m.statusMsg = fmt.Sprintf("Copied chunk %d/%d — paste it, then press enter for the next",
			m.chunkIdx, len(m.chunks))
	} else {
		if len(m.chunks) > 1 {
			m.statusMsg = fmt.Sprintf("Copied final chunk %d/%d", m.chunkIdx, len(m.chunks))
		} else {
			m.statusMsg = "Copied to clipboard"
		}
		m.chunks = nil
		m.chunkIdx = 0
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Clipboarder"))
	sb.WriteString("\n\n")

	paths := m.stage.Paths()
	if len(paths) == 0 {
		sb.WriteString(StatusStyle.Render("No files staged. Paste or type file paths and press enter."))
		sb.WriteString("\n")
	} else {
		for i, p := range paths {
			sb.WriteString(IndexStyle.Render(fmt.Sprintf("%3d.", i+1)))
			sb.WriteString(" ")
			sb.WriteString(FileStyle.Render(p))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	if m.errMsg != "" {
		sb.WriteString(ErrorStyle.Render(m.errMsg))
		sb.WriteString("\n")
	} else if m.statusMsg != "" {
		if m.ChunksPending() {
			sb.WriteString(ChunkStyle.Render(m.statusMsg))
		} else {
			sb.WriteString(SuccessStyle.Render(m.statusMsg))
		}
		sb.WriteString("\n")
	}

	if m.ChunksPending() {
		sb.WriteString(StatusStyle.Render("enter: next chunk  esc: cancel"))
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
		sb.WriteString(StatusStyle.Render("l: list  r N: remove  c: clear  s: send  q: quit"))
		sb.WriteString("\n")
	}

	return App.Render(sb.String())
}

// Getters used by the views and tests

func (m *Model) Stage() *compile.Stage {
	return m.stage
}

func (m *Model) Status() string {
	return m.statusMsg
}

func (m *Model) Err() string {
	return m.errMsg
}

// ChunksPending reports whether chunked delivery is waiting on the user.
func (m *Model) ChunksPending() bool {
	return m.chunkIdx < len(m.chunks)
}

// Run starts the interactive console.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(New(cfg, nil))
	_, err := p.Run()
	return err
}
