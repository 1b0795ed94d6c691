package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/SeamusWaldron/gocube_solver/pkg/coord"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// buildProgress displays table construction.
type buildProgress interface {
	// Start shows every table as pending.
	Start(names []string)
	// Observe receives build events, possibly from several goroutines.
	Observe(ev coord.Event)
	// Complete finalizes the display.
	Complete()
}

// newBuildProgress creates an animated view when w is a terminal and a
// line-per-table printer otherwise. The animated view stops with ctx, and
// cancel is called if the user interrupts it.
func newBuildProgress(ctx context.Context, w io.Writer, cancel context.CancelFunc) buildProgress {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		return &ttyProgress{ctx: ctx, out: f, in: os.Stdin, cancel: cancel, log: logger}
	}
	return &plainProgress{w: w}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// plainProgress prints one line per finished table.
type plainProgress struct {
	mu    sync.Mutex
	w     io.Writer
	total int
	done  int
}

func (p *plainProgress) Start(names []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = len(names)
	p.done = 0
	fmt.Fprintf(p.w, "Building %d tables\n", p.total)
}

func (p *plainProgress) Observe(ev coord.Event) {
	if !ev.Done {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	fmt.Fprintf(p.w, "  [%d/%d] %s: %s entries in %s\n",
		p.done, p.total, ev.Table, humanize.Comma(int64(ev.Entries)), ev.Elapsed.Round(time.Millisecond))
}

func (p *plainProgress) Complete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done < p.total {
		fmt.Fprintf(p.w, "Stopped after %d of %d tables\n", p.done, p.total)
		return
	}
	fmt.Fprintf(p.w, "Built %d tables\n", p.done)
}

// ttyProgress animates the build with bubbletea.
type ttyProgress struct {
	ctx     context.Context
	out     io.Writer
	in      io.Reader // nil disables keyboard input
	cancel  context.CancelFunc
	log     *slog.Logger
	program *tea.Program
	done    chan struct{}
}

func (p *ttyProgress) Start(names []string) {
	p.program = tea.NewProgram(newProgressModel(names, p.cancel),
		tea.WithContext(p.ctx), tea.WithOutput(p.out), tea.WithInput(p.in))
	p.done = make(chan struct{})
	go func() {
		defer close(p.done)
		if _, err := p.program.Run(); err != nil {
			p.log.Debug("progress view stopped", "error", err)
		}
	}()
}

func (p *ttyProgress) Observe(ev coord.Event) {
	if p.program == nil {
		return
	}
	p.program.Send(tableMsg(ev))
}

func (p *ttyProgress) Complete() {
	if p.program == nil {
		return
	}
	p.program.Send(buildDoneMsg{})
	<-p.done
}

type tableStatus int

const (
	tablePending tableStatus = iota
	tableBuilding
	tableBuilt
)

type tableRow struct {
	name    string
	status  tableStatus
	entries int
	elapsed time.Duration
}

type tableMsg coord.Event

type buildDoneMsg struct{}

// progressModel is the bubbletea model of the table build.
type progressModel struct {
	rows    []tableRow
	index   map[string]int
	spinner spinner.Model
	cancel  context.CancelFunc
	start   time.Time
	done    bool
}

func newProgressModel(names []string, cancel context.CancelFunc) *progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &progressModel{
		rows:    make([]tableRow, len(names)),
		index:   make(map[string]int, len(names)),
		spinner: s,
		cancel:  cancel,
		start:   time.Now(),
	}
	for i, name := range names {
		m.rows[i] = tableRow{name: name}
		m.index[name] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tableMsg:
		i, ok := m.index[msg.Table]
		if !ok {
			return m, nil
		}
		if msg.Done {
			m.rows[i].status = tableBuilt
			m.rows[i].entries = msg.Entries
			m.rows[i].elapsed = msg.Elapsed
		} else {
			m.rows[i].status = tableBuilding
		}
		return m, nil

	case buildDoneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Building tables"))
	b.WriteString("\n\n")

	built := 0
	for _, r := range m.rows {
		switch r.status {
		case tablePending:
			b.WriteString(statusStyle.Render(fmt.Sprintf("  · %s", r.name)))
		case tableBuilding:
			b.WriteString(fmt.Sprintf("  %s %s", m.spinner.View(), r.name))
		case tableBuilt:
			built++
			b.WriteString(moveStyle.Render("  ✓ "))
			b.WriteString(r.name)
			b.WriteString(statusStyle.Render(fmt.Sprintf("  %s entries, %s",
				humanize.Comma(int64(r.entries)), r.elapsed.Round(time.Millisecond))))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("%d/%d tables, %s", built, len(m.rows), time.Since(m.start).Round(100*time.Millisecond))
	if m.done {
		b.WriteString(phaseStyle.Render(summary))
	} else {
		b.WriteString(statusStyle.Render(summary))
	}
	b.WriteString("\n")
	return b.String()
}
