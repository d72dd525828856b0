// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/ui/helpbindings"
	"github.com/llehouerou/reel/internal/ui/layout"
	"github.com/llehouerou/reel/internal/ui/strip"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// maxConcurrentMeasures bounds the ffprobe processes and file reads running
// at once.
const maxConcurrentMeasures = 4

// Model is the root application model.
type Model struct {
	Config   *config.Config
	StateMgr state.Interface
	Keys     *keymap.Resolver
	Measurer *media.Measurer
	CellSize layout.CellSize

	// Folder is the absolute path of the open folder.
	Folder string
	List   *media.List
	Strip  *strip.Model
	Style  carousel.Style

	Help     helpbindings.Model
	ShowHelp bool
	Spinner  spinner.Model
	spinning bool

	Loading   bool
	Measuring int

	generation   int
	ctx          context.Context
	cancel       context.CancelFunc
	measureSem   chan struct{}
	pendingSizes []state.ItemSize

	ErrorMsg     string
	errorVersion int
	StatusMsg    string

	Width  int
	Height int
}

// New creates the application model. folder may be empty: the last session
// folder, the configured default folder and the working directory are tried
// in that order.
func New(cfg *config.Config, stateMgr state.Interface, folder string) (Model, error) {
	style := cfg.GetStyle()

	session, err := stateMgr.GetSession()
	if err != nil {
		return Model{}, fmt.Errorf("load session: %w", err)
	}
	if session != nil && session.Style != "" {
		if s, err := carousel.ParseStyle(session.Style); err == nil {
			style = s
		}
	}

	start, err := startFolder(folder, session, cfg.DefaultFolder)
	if err != nil {
		return Model{}, err
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.T().S().Key

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		Config:     cfg,
		StateMgr:   stateMgr,
		Keys:       keymap.NewResolver(keymap.All),
		Measurer:   media.NewMeasurer(),
		CellSize:   layout.QueryCellSize(),
		Folder:     start,
		Style:      style,
		Help:       helpbindings.New(),
		Spinner:    sp,
		spinning:   true,
		Loading:    true,
		generation: 1,
		ctx:        ctx,
		cancel:     cancel,
		measureSem: make(chan struct{}, maxConcurrentMeasures),
	}, nil
}

// startFolder picks the folder to open: explicit argument > saved session >
// config default > cwd.
func startFolder(arg string, session *state.Session, defaultFolder string) (string, error) {
	if arg != "" {
		return absFolder(arg)
	}
	if session != nil && session.LastFolder != "" {
		if info, err := os.Stat(session.LastFolder); err == nil && info.IsDir() {
			return session.LastFolder, nil
		}
	}
	if defaultFolder != "" {
		return absFolder(defaultFolder)
	}
	return os.Getwd()
}

func absFolder(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a folder", abs)
	}
	return abs, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadFolderCmd(m.ctx, m.generation, m.Folder, m.StateMgr),
		m.Spinner.Tick,
	)
}

// stripOptions builds the strip options from the configuration.
func (m *Model) stripOptions() strip.Options {
	anim := m.Config.GetAnimationConfig()
	opts := strip.DefaultOptions()
	opts.Metrics = m.Config.Metrics()
	opts.Pan = m.Config.PanParams()
	opts.Style = m.Style
	opts.FrameInterval = anim.FrameInterval()
	opts.TransitionDuration = anim.TransitionDuration()
	opts.RemovalDuration = anim.RemovalDuration()
	opts.FocusFrequency = anim.FocusFrequency
	opts.FocusDamping = anim.FocusDamping
	return opts
}

// busy reports whether the status bar spinner should run.
func (m *Model) busy() bool {
	return m.Loading || m.Measuring > 0
}

// startSpinner restarts the spinner tick loop if it stopped.
func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.busy() {
		return nil
	}
	m.spinning = true
	return m.Spinner.Tick
}

// Shutdown cancels background work.
func (m *Model) Shutdown() {
	if m.cancel != nil {
		m.cancel()
	}
}
