package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trashquest/internal/engine"
	"trashquest/internal/storage"
	"trashquest/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	user     *storage.User
	missions []storage.Mission

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	user     *storage.User
	missions []storage.Mission
	err      error
}

type acceptedMsg struct {
	res *engine.AcceptResult
	err error
}

type cheeredMsg struct {
	res *engine.CheerResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		u, err := m.svc.CurrentUser(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		missions, err := m.svc.MissionRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{user: u, missions: missions}
	}
}

func (m boardModel) acceptCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Accept(m.ctx, id)
		return acceptedMsg{res: res, err: err}
	}
}

func (m boardModel) cheerCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Cheer(m.ctx, id)
		return cheeredMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.user = msg.user
		m.missions = msg.missions
		if m.selected >= len(m.missions) {
			m.selected = len(m.missions) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case acceptedMsg:
		if msg.err != nil {
			m.lastLog = "Accept failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Accepted %q: +%d XP (level %d → %d)", msg.res.Mission.Title, msg.res.XPAwarded, msg.res.LevelBefore, msg.res.LevelAfter)
		return m, m.loadCmd()
	case cheeredMsg:
		if msg.err != nil {
			m.lastLog = "Cheer failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.res.Cheered {
			m.lastLog = "Already cheered this quest."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Cheered %q (%d cheers).", msg.res.Mission.Title, msg.res.Upvotes)
		if msg.res.BonusFired {
			m.lastLog += " Milestone! Reporter earns a bonus."
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.missions)-1 {
				m.selected++
			}
			return m, nil
		case "a":
			sel := m.selectedMission()
			if sel == nil {
				return m, nil
			}
			if sel.Status != string(engine.StatusNeeds) {
				m.lastLog = "Only quests that need cleanup can be accepted."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Accepting %q…", sel.Title)
			return m, m.acceptCmd(sel.ID)
		case "c", " ":
			sel := m.selectedMission()
			if sel == nil {
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Cheering %q…", sel.Title)
			return m, m.cheerCmd(sel.ID)
		case "d":
			sel := m.selectedMission()
			if sel == nil {
				return m, nil
			}
			// Completion needs an after photo; the board cannot attach one.
			m.lastLog = fmt.Sprintf("Run: tq complete %s --photo <path>", sel.ID)
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) selectedMission() *storage.Mission {
	if m.selected < 0 || m.selected >= len(m.missions) {
		return nil
	}
	return &m.missions[m.selected]
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.user == nil {
		return "TrashQuest — loading…"
	}
	bar := ui.XPBar(engine.ProgressWithinLevel(m.user.XP), 30)
	return fmt.Sprintf("TrashQuest | %s | Level %d %s | XP %d %s",
		m.user.Username, m.user.Level, engine.LevelName(m.user.Level), m.user.XP, bar)
}

func (m boardModel) renderSidebar() string {
	if m.user == nil {
		return "Stats\n\nLoading…"
	}
	lines := []string{"Stats"}
	lines = append(lines, fmt.Sprintf("- Streak: %d day(s)", m.user.Streak))
	lines = append(lines, fmt.Sprintf("- Badges: %d/%d", len(m.user.Badges), len(engine.AllBadges())))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- a: accept quest")
	lines = append(lines, "- c/space: cheer")
	lines = append(lines, "- d: how to complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Quest Board")
	if len(m.missions) == 0 {
		out = append(out, "(empty — run `tq seed`)")
		return strings.Join(out, "\n")
	}
	for i := range m.missions {
		mi := &m.missions[i]
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mine := ""
		if m.user != nil && mi.ReporterID == m.user.ID {
			mine = " (yours)"
		}
		out = append(out, fmt.Sprintf("%s%s %s [%s] 👏%d%s",
			cursor, ui.TrashIcon(mi.TrashType), mi.Title, mi.Status, mi.Upvotes, mine))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
