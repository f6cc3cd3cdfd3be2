package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/blendy/pkg/create"
	"github.com/germanamz/blendy/pkg/host/bridge"
	"github.com/germanamz/blendy/pkg/scene"
	"github.com/germanamz/blendy/pkg/server"
	"github.com/mattn/go-runewidth"
)

// runConsole opens the interactive console against the configured host.
func runConsole(configPath, blendyDirPath string) error {
	cfg, err := loadServerConfig(configPath, blendyDirPath)
	if err != nil {
		return err
	}

	m, err := newConsoleModel(cfg)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()

	return err
}

// consoleResultMsg carries a finished creation back into the update loop.
type consoleResultMsg struct {
	request scene.CreateCubeRequest
	result  create.Result
}

// consoleModel is the bubbletea model for the interactive console.
type consoleModel struct {
	cfg   server.Config
	input textinput.Model
	vp    viewport.Model
	spin  spinner.Model

	entries []string
	busy    bool
	width   int
	height  int
	ready   bool
}

func newConsoleModel(cfg server.Config) (consoleModel, error) {
	if err := cfg.Validate(); err != nil {
		return consoleModel{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "name [size] [x,y,z]"
	ti.Prompt = promptStyle.Render("create > ")
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return consoleModel{
		cfg:   cfg,
		input: ti,
		spin:  sp,
	}, nil
}

func (m consoleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Title, status line, and input each take one row.
		vpHeight := max(msg.Height-3, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = vpHeight
		}
		m.refreshLog()

		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}

			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}

			req, err := parseConsoleInput(line)
			if err == nil {
				err = req.Validate()
			}
			if err != nil {
				m.appendEntry(errorStyle.Render(err.Error()))
				return m, nil
			}

			m.input.Reset()
			m.busy = true
			m.appendEntry(dimStyle.Render(fmt.Sprintf("creating %s...", req.Name)))

			return m, tea.Batch(m.spin.Tick, m.createCmd(req))
		}

	case consoleResultMsg:
		m.busy = false
		m.appendEntry(renderResult(msg.result))

		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m consoleModel) View() string {
	if !m.ready {
		return "loading..."
	}

	status := dimStyle.Render(" " + m.cfg.Host.URL)
	if m.busy {
		status = m.spin.View() + status
	}

	return titleStyle.Render("blendy console") + "\n" +
		m.vp.View() + "\n" +
		m.input.View() + "\n" +
		status
}

// createCmd dials the host and performs one creation off the update loop.
// Each submission uses its own connection; the console mirrors the tool's
// single-shot semantics.
func (m consoleModel) createCmd(req scene.CreateCubeRequest) tea.Cmd {
	cfg := m.cfg

	return func() tea.Msg {
		dialTimeout, err := cfg.DialTimeout()
		if err != nil {
			return consoleResultMsg{request: req, result: create.Result{Outcome: create.OutcomeFailed, Err: err}}
		}

		callTimeout, err := cfg.CallTimeout()
		if err != nil {
			return consoleResultMsg{request: req, result: create.Result{Outcome: create.OutcomeFailed, Err: err}}
		}

		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		defer cancel()

		b, err := bridge.Dial(ctx, cfg.Host.URL, bridge.Options{CallTimeout: callTimeout})
		if err != nil {
			return consoleResultMsg{request: req, result: create.Result{Outcome: create.OutcomeUnavailable, Err: err}}
		}
		defer func() { _ = b.Close() }()

		return consoleResultMsg{request: req, result: create.Cube(context.Background(), b, req)}
	}
}

// appendEntry adds one line to the log and scrolls to the bottom.
func (m *consoleModel) appendEntry(line string) {
	m.entries = append(m.entries, line)
	m.refreshLog()
}

func (m *consoleModel) refreshLog() {
	if !m.ready {
		return
	}

	lines := make([]string, len(m.entries))
	for i, entry := range m.entries {
		lines[i] = runewidth.Truncate(entry, max(m.width, 1), "…")
	}

	m.vp.SetContent(strings.Join(lines, "\n"))
	m.vp.GotoBottom()
}

// parseConsoleInput parses "name [size] [x,y,z]" into a creation request
// with defaults applied.
func parseConsoleInput(line string) (scene.CreateCubeRequest, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields) > 3 {
		return scene.CreateCubeRequest{}, fmt.Errorf("expected: name [size] [x,y,z]")
	}

	req := scene.CreateCubeRequest{Name: fields[0]}

	if len(fields) >= 2 {
		size, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return scene.CreateCubeRequest{}, fmt.Errorf("size %q: %w", fields[1], err)
		}
		req.Size = size
	}

	if len(fields) == 3 {
		loc, err := parseLocation(fields[2])
		if err != nil {
			return scene.CreateCubeRequest{}, err
		}
		req.Location = loc
	}

	return req.ApplyDefaults(), nil
}
