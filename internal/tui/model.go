package tui

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/analytics"
	"github.com/vibedeck-io/vibedeck/internal/api"
	"github.com/vibedeck-io/vibedeck/internal/config"
	"github.com/vibedeck-io/vibedeck/internal/models"
	"github.com/vibedeck-io/vibedeck/internal/retry"
)

// Right panel tabs.
const (
	rightTabLogs      = 0
	rightTabProcesses = 1
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	client    *api.Client
	orch      *retry.Orchestrator
	analytics *analytics.Client
	watcher   *config.SettingsWatcher
	serverURL string

	projectID uuid.UUID
	project   *models.Project
	tasks     []models.Task

	attempt   *models.TaskAttempt
	branch    *models.BranchStatus
	processes []models.ExecutionProcess

	// UI state
	rightTab      int // rightTabLogs, rightTabProcesses
	focusedPanel  int // 0=left, 1=right
	activeOverlay int
	splitRatio    float64 // Default 0.45
	width         int
	height        int

	// Confirm mode
	confirmMode      int
	confirmProcessID uuid.UUID

	err error

	// Child components
	board        *Board
	logsPanel    *LogsPanel
	processPanel *ProcessPanel
	taskForm     *TaskForm
	retryForm    *RetryForm
	followUpForm *FollowUpForm

	// Program reference for goroutine Send()
	program *programRef

	// Streaming state
	rootCtx      context.Context
	rootCancel   context.CancelFunc
	streamCtx    context.Context
	streamCancel context.CancelFunc
	streaming    bool

	// Polling state
	polling        bool
	spinnerRunning bool

	// Dragging state
	dragging bool
}

// NewModel creates the initial TUI model.
func NewModel(client *api.Client, projectID uuid.UUID, opts ModelOptions, program *programRef) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		client:       client,
		orch:         retry.New(client),
		analytics:    opts.Analytics,
		watcher:      opts.Watcher,
		serverURL:    opts.ServerURL,
		projectID:    projectID,
		splitRatio:   0.45,
		board:        NewBoard(),
		logsPanel:    NewLogsPanel(),
		processPanel: NewProcessPanel(),
		program:      program,
		rootCtx:      ctx,
		rootCancel:   cancel,
	}
}

// ModelOptions carries the ambient pieces the model reports through.
type ModelOptions struct {
	Analytics *analytics.Client
	Watcher   *config.SettingsWatcher
	ServerURL string
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadProjectCmd(m.client, m.projectID),
		loadTasksCmd(m.client, m.projectID),
		tea.EnableMouseAllMotion,
	}
	if m.watcher != nil {
		cmds = append(cmds, watchSettingsCmd(m.watcher, m.program))
	}
	return tea.Batch(cmds...)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	// ── Project and task data ──────────────────────────────────────
	case ProjectLoadedMsg:
		m.project = msg.Project
		return m, nil

	case TasksLoadedMsg:
		m.tasks = msg.Tasks
		m.board.SetTasks(msg.Tasks)
		return m, nil

	case TaskSavedMsg:
		if m.taskForm != nil && m.taskForm.mode == "add" {
			m.analytics.TaskCreated()
		}
		m.activeOverlay = overlayNone
		m.taskForm = nil
		return m, loadTasksCmd(m.client, m.projectID)

	// ── Attempt data ───────────────────────────────────────────────
	case AttemptsLoadedMsg:
		if len(msg.Attempts) == 0 {
			m.err = fmt.Errorf("no attempts for this task yet")
			return m, clearErrorCmd()
		}
		attempts := msg.Attempts
		sort.Slice(attempts, func(i, j int) bool {
			return attempts[i].CreatedAt.After(attempts[j].CreatedAt)
		})
		return m, m.openAttempt(attempts[0])

	case ProcessesLoadedMsg:
		if m.attempt == nil || msg.AttemptID != m.attempt.ID {
			return m, nil
		}
		m.processes = msg.Processes
		m.logsPanel.SetProcesses(msg.Processes)
		m.processPanel.SetProcesses(msg.Processes)
		if m.anyRunning() {
			if !m.polling {
				m.polling = true
				cmds = append(cmds, tickCmd())
			}
			if !m.spinnerRunning {
				m.spinnerRunning = true
				cmds = append(cmds, spinnerTickCmd())
			}
		}
		return m, tea.Batch(cmds...)

	// ── Log stream ─────────────────────────────────────────────────
	case LogEntryMsg:
		if m.attempt != nil && msg.AttemptID == m.attempt.ID {
			m.logsPanel.Append(msg.Entry)
		}
		return m, nil

	case LogStreamEndedMsg:
		if m.attempt == nil || msg.AttemptID != m.attempt.ID {
			return m, nil
		}
		m.streaming = false
		if msg.Err != nil {
			m.err = fmt.Errorf("log stream ended: %w", msg.Err)
			cmds = append(cmds, clearErrorCmd())
		}
		// Pick up the final process states.
		cmds = append(cmds, loadProcessesCmd(m.client, m.attempt.ID))
		return m, tea.Batch(cmds...)

	// ── Retry flow ─────────────────────────────────────────────────
	case RetryPlanMsg:
		formWidth := m.width - 10
		m.retryForm = NewRetryForm(msg.Target, msg.Plan, formWidth)
		m.activeOverlay = overlayRetry
		return m, nil

	case BranchStatusMsg:
		if m.attempt == nil || msg.AttemptID != m.attempt.ID {
			return m, nil
		}
		m.branch = msg.Status
		return m, nil

	case RetryFailedMsg:
		m.activeOverlay = overlayNone
		m.retryForm = nil
		m.err = msg.Err
		return m, clearErrorCmd()

	case RetrySubmittedMsg:
		m.analytics.ProcessRetried(msg.PerformedReset)
		m.activeOverlay = overlayNone
		m.retryForm = nil
		if m.attempt != nil {
			// The history changed under us; rebuild from scratch.
			return m, m.openAttempt(*m.attempt)
		}
		return m, nil

	case FollowUpSentMsg:
		m.analytics.FollowUpSent()
		m.activeOverlay = overlayNone
		m.followUpForm = nil
		if m.attempt != nil {
			cmds = append(cmds, loadProcessesCmd(m.client, m.attempt.ID))
		}
		return m, tea.Batch(cmds...)

	case DevServerStartedMsg:
		if m.attempt != nil {
			cmds = append(cmds, loadProcessesCmd(m.client, m.attempt.ID))
		}
		return m, tea.Batch(cmds...)

	case ProcessStoppedMsg:
		m.confirmMode = confirmNone
		if m.attempt != nil {
			cmds = append(cmds, loadProcessesCmd(m.client, m.attempt.ID))
		}
		return m, tea.Batch(cmds...)

	// ── Settings ───────────────────────────────────────────────────
	case SettingsReloadedMsg:
		if msg.Settings != nil {
			m.serverURL = msg.Settings.ServerURL
		}
		return m, nil

	// ── Ticks ──────────────────────────────────────────────────────
	case TickMsg:
		if m.polling && m.attempt != nil && m.anyRunning() {
			cmds = append(cmds,
				loadProcessesCmd(m.client, m.attempt.ID),
				tickCmd(),
			)
		} else {
			m.polling = false
		}
		return m, tea.Batch(cmds...)

	case spinnerTickMsg:
		if m.anyRunning() {
			m.logsPanel.Tick()
			m.processPanel.Tick()
			cmds = append(cmds, spinnerTickCmd())
		} else {
			m.spinnerRunning = false
		}
		return m, tea.Batch(cmds...)

	// ── Error handling ─────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorCmd()

	case ClearErrorMsg:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// openAttempt selects an attempt, resets the log view and starts the
// process poll and log stream for it.
func (m *Model) openAttempt(attempt models.TaskAttempt) tea.Cmd {
	if m.streamCancel != nil {
		m.streamCancel()
	}
	m.attempt = &attempt
	m.branch = nil
	m.processes = nil
	m.logsPanel.Reset()
	m.processPanel.SetProcesses(nil)
	m.focusedPanel = 1
	m.rightTab = rightTabLogs

	m.streamCtx, m.streamCancel = context.WithCancel(m.rootCtx)
	m.streaming = true

	return tea.Batch(
		loadProcessesCmd(m.client, attempt.ID),
		loadBranchStatusCmd(m.client, attempt.ID),
		subscribeLogsCmd(m.streamCtx, m.client, attempt.ID, m.program),
	)
}

func (m *Model) anyRunning() bool {
	for i := range m.processes {
		if m.processes[i].Running() {
			return true
		}
	}
	return false
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Confirm mode captures everything
	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}

	// Overlay captures everything
	if m.activeOverlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	// Global shortcuts
	switch {
	case key.Matches(msg, globalKeys.Quit):
		if m.anyRunning() {
			m.confirmMode = confirmQuit
			return nil
		}
		return m.doQuit()

	case key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp
		return nil

	case key.Matches(msg, globalKeys.Tab):
		if m.attempt != nil {
			m.focusedPanel = 1 - m.focusedPanel
		}
		return nil

	case key.Matches(msg, globalKeys.Refresh):
		return m.refresh()
	}

	// Right tab switching
	if m.focusedPanel == 1 {
		switch {
		case key.Matches(msg, tabSwitchKeys.Tab1):
			m.rightTab = rightTabLogs
			return nil
		case key.Matches(msg, tabSwitchKeys.Tab2):
			m.rightTab = rightTabProcesses
			return nil
		}
	}

	if m.focusedPanel == 0 {
		return m.handleBoardKey(msg)
	}
	return m.handleRightPanelKey(msg)
}

func (m *Model) refresh() tea.Cmd {
	cmds := []tea.Cmd{
		loadTasksCmd(m.client, m.projectID),
	}
	if m.attempt != nil {
		cmds = append(cmds, loadProcessesCmd(m.client, m.attempt.ID))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleBoardKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, boardKeys.Up):
		m.board.MoveUp()
	case key.Matches(msg, boardKeys.Down):
		m.board.MoveDown()
	case key.Matches(msg, boardKeys.Left):
		m.board.MoveLeft()
	case key.Matches(msg, boardKeys.Right):
		m.board.MoveRight()
	case key.Matches(msg, boardKeys.Add):
		m.openAddTaskForm()
	case key.Matches(msg, boardKeys.Edit):
		m.openEditTaskForm()
	case key.Matches(msg, boardKeys.Open):
		if t := m.board.SelectedTask(); t != nil {
			return loadAttemptsCmd(m.client, t.ID)
		}
	}
	return nil
}

func (m *Model) handleRightPanelKey(msg tea.KeyMsg) tea.Cmd {
	switch m.rightTab {
	case rightTabLogs:
		return m.handleLogKey(msg)
	case rightTabProcesses:
		return m.handleProcessKey(msg)
	}
	return nil
}

func (m *Model) handleLogKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyPgUp:
		m.logsPanel.PageUp()
		return nil
	case tea.KeyPgDown:
		m.logsPanel.PageDown()
		return nil
	}

	switch {
	case key.Matches(msg, logKeys.Up):
		m.logsPanel.MoveUp()
	case key.Matches(msg, logKeys.Down):
		m.logsPanel.MoveDown()
	case key.Matches(msg, logKeys.Toggle):
		m.logsPanel.ToggleSelected()
	case key.Matches(msg, logKeys.Retry):
		return m.beginRetry()
	case key.Matches(msg, logKeys.FollowUp):
		m.openFollowUpForm()
	case key.Matches(msg, logKeys.DevServer):
		if m.attempt != nil {
			return startDevServerCmd(m.client, m.attempt.ID)
		}
	case key.Matches(msg, logKeys.Back):
		m.focusedPanel = 0
	}
	return nil
}

func (m *Model) handleProcessKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, processKeys.Up):
		m.processPanel.MoveUp()
	case key.Matches(msg, processKeys.Down):
		m.processPanel.MoveDown()
	case key.Matches(msg, processKeys.Stop):
		if p := m.processPanel.Selected(); p != nil && p.Running() {
			m.confirmMode = confirmStop
			m.confirmProcessID = p.ID
		}
	case key.Matches(msg, processKeys.Back):
		m.focusedPanel = 0
	}
	return nil
}

func (m *Model) beginRetry() tea.Cmd {
	if m.attempt == nil {
		return nil
	}
	target := m.logsPanel.SelectedProcess()
	if target == nil {
		return nil
	}
	if reason, disabled := retry.Disabled(*target, m.processes, m.orch.InFlight()); disabled {
		m.err = fmt.Errorf("%s", reason)
		return clearErrorCmd()
	}
	return beginRetryCmd(m.orch, m.attempt.ID, *target, m.processes)
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		switch m.confirmMode {
		case confirmQuit:
			m.confirmMode = confirmNone
			return m.doQuit()
		case confirmStop:
			m.confirmMode = confirmNone
			return stopProcessCmd(m.client, m.confirmProcessID)
		}
	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		m.confirmMode = confirmNone
	}
	return nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch m.activeOverlay {
	case overlayHelp:
		if key.Matches(msg, overlayKeys.Cancel) || key.Matches(msg, globalKeys.Help) {
			m.activeOverlay = overlayNone
		}
		return nil

	case overlayAddTask, overlayEditTask:
		return m.handleTaskFormKey(msg)

	case overlayRetry:
		return m.handleRetryFormKey(msg)

	case overlayFollowUp:
		return m.handleFollowUpFormKey(msg)
	}
	return nil
}

func (m *Model) handleTaskFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.taskForm == nil {
		return nil
	}

	switch {
	case key.Matches(msg, overlayKeys.Save):
		return m.saveTaskForm()
	case key.Matches(msg, overlayKeys.Cancel):
		m.activeOverlay = overlayNone
		m.taskForm = nil
		return nil
	case key.Matches(msg, overlayKeys.Tab):
		m.taskForm.FocusNext()
		return nil
	}

	// Status field: cycle on space/enter
	if m.taskForm.FocusIndex() == 2 {
		if msg.Type == tea.KeySpace || msg.Type == tea.KeyEnter {
			m.taskForm.CycleStatus()
		}
		return nil
	}

	switch m.taskForm.FocusIndex() {
	case 0:
		ti := m.taskForm.TitleInput()
		newTI, _ := ti.Update(msg)
		*ti = newTI
	case 1:
		ta := m.taskForm.DescriptionArea()
		newTA, _ := ta.Update(msg)
		*ta = newTA
	}

	return nil
}

func (m *Model) handleRetryFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.retryForm == nil {
		return nil
	}

	switch {
	case key.Matches(msg, overlayKeys.Save):
		if !m.retryForm.CanSubmit() {
			return nil
		}
		m.retryForm.SetSubmitting()
		return confirmRetryCmd(m.orch,
			m.retryForm.Prompt(),
			m.retryForm.PerformGitReset(),
			m.retryForm.ForceWhenDirty(),
		)
	case key.Matches(msg, overlayKeys.Cancel):
		m.orch.Cancel()
		m.activeOverlay = overlayNone
		m.retryForm = nil
		return nil
	case key.Matches(msg, overlayKeys.Tab):
		m.retryForm.FocusNext()
		return nil
	}

	if m.retryForm.FocusIndex() != 0 {
		if msg.Type == tea.KeySpace || msg.Type == tea.KeyEnter {
			m.retryForm.Toggle()
		}
		return nil
	}

	ta := m.retryForm.PromptArea()
	newTA, _ := ta.Update(msg)
	*ta = newTA
	return nil
}

func (m *Model) handleFollowUpFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.followUpForm == nil {
		return nil
	}

	switch {
	case key.Matches(msg, overlayKeys.Save):
		if !m.followUpForm.CanSubmit() || m.attempt == nil {
			return nil
		}
		m.followUpForm.SetSubmitting()
		return followUpCmd(m.client, m.attempt.ID, models.FollowUpRequest{
			Prompt: m.followUpForm.Prompt(),
		})
	case key.Matches(msg, overlayKeys.Cancel):
		m.activeOverlay = overlayNone
		m.followUpForm = nil
		return nil
	}

	ta := m.followUpForm.PromptArea()
	newTA, _ := ta.Update(msg)
	*ta = newTA
	return nil
}

// ── Form actions ─────────────────────────────────────────────────

func (m *Model) openAddTaskForm() {
	m.taskForm = NewTaskForm("add", m.formWidth())
	m.activeOverlay = overlayAddTask
}

func (m *Model) openEditTaskForm() {
	t := m.board.SelectedTask()
	if t == nil {
		return
	}
	m.taskForm = NewTaskForm("edit", m.formWidth())
	m.taskForm.PreFill(t)
	m.activeOverlay = overlayEditTask
}

func (m *Model) openFollowUpForm() {
	if m.attempt == nil {
		return
	}
	if m.anyRunning() {
		m.err = fmt.Errorf("wait for running processes to finish")
		return
	}
	m.followUpForm = NewFollowUpForm(m.formWidth())
	m.activeOverlay = overlayFollowUp
}

func (m *Model) formWidth() int {
	formWidth := m.width - 10
	if formWidth > 70 {
		formWidth = 70
	}
	return formWidth
}

func (m *Model) saveTaskForm() tea.Cmd {
	if m.taskForm == nil {
		return nil
	}

	title := m.taskForm.Title()
	if title == "" {
		m.err = errTitleRequired
		return clearErrorCmd()
	}

	if m.taskForm.mode == "add" {
		req := models.CreateTask{
			ProjectID: m.projectID,
			Title:     title,
		}
		if desc := m.taskForm.Description(); desc != "" {
			req.Description = &desc
		}
		return createTaskCmd(m.client, req)
	}

	t := m.board.SelectedTask()
	if t == nil {
		return nil
	}
	desc := m.taskForm.Description()
	status := m.taskForm.Status()
	req := models.UpdateTask{
		Title:  &title,
		Status: &status,
	}
	if desc != "" {
		req.Description = &desc
	}
	return updateTaskCmd(m.client, t.ID, req)
}

// doQuit performs clean shutdown: cancel streams, clear program ref,
// close ambient clients, quit.
func (m *Model) doQuit() tea.Cmd {
	m.rootCancel()
	m.program.Clear()
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	m.analytics.Close()
	return tea.Quit
}

// ── Mouse handling ───────────────────────────────────────────────

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		layout := computeLayout(m.width, m.height, m.splitRatio)
		x := msg.X

		if x >= layout.dividerCol-1 && x <= layout.dividerCol+1 {
			m.dragging = true
			return nil
		}

		if x < layout.dividerCol {
			m.focusedPanel = 0
		} else if m.attempt != nil {
			m.focusedPanel = 1
		}

	case tea.MouseActionRelease:
		m.dragging = false

	case tea.MouseActionMotion:
		if m.dragging {
			ratio := float64(msg.X) / float64(m.width)
			if ratio < 0.2 {
				ratio = 0.2
			}
			if ratio > 0.8 {
				ratio = 0.8
			}
			m.splitRatio = ratio
			m.updateDimensions()
		}
	}

	// Scroll in focused panel
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.focusedPanel == 0 {
				m.board.MoveUp()
			} else if m.rightTab == rightTabLogs {
				m.logsPanel.PageUp()
			} else {
				m.processPanel.MoveUp()
			}
		case tea.MouseButtonWheelDown:
			if m.focusedPanel == 0 {
				m.board.MoveDown()
			} else if m.rightTab == rightTabLogs {
				m.logsPanel.PageDown()
			} else {
				m.processPanel.MoveDown()
			}
		}
	}

	return nil
}

// ── Dimension helpers ────────────────────────────────────────────

func (m *Model) updateDimensions() {
	layout := computeLayout(m.width, m.height, m.splitRatio)
	innerHeight := layout.contentHeight - 2
	leftInner := layout.leftWidth - 2
	rightInner := layout.rightWidth - 2

	if innerHeight < 1 {
		innerHeight = 1
	}
	if leftInner < 1 {
		leftInner = 1
	}
	if rightInner < 1 {
		rightInner = 1
	}

	m.board.SetHeight(innerHeight)
	m.logsPanel.SetSize(rightInner, innerHeight)
	m.processPanel.SetSize(rightInner, innerHeight)
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	if m.width < 80 || m.height < 24 {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					"Need 80x24, have "+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	layout := computeLayout(m.width, m.height, m.splitRatio)

	header := renderHeader(m.project, m.attempt, m.branch, m.rightTab, m.anyRunning(), m.width)
	leftContent := m.board.View(layout.leftWidth - 2)
	rightContent := m.renderRightPanel()
	panels := renderPanels(leftContent, rightContent, layout, m.focusedPanel)
	statusBar := renderStatusBar(&m, m.width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, panels, statusBar)

	if m.activeOverlay != overlayNone {
		var overlayContent string
		switch m.activeOverlay {
		case overlayHelp:
			overlayContent = renderHelp(m.width)
		case overlayAddTask, overlayEditTask:
			if m.taskForm != nil {
				overlayContent = m.taskForm.View()
			}
		case overlayRetry:
			if m.retryForm != nil {
				overlayContent = m.retryForm.View()
			}
		case overlayFollowUp:
			if m.followUpForm != nil {
				overlayContent = m.followUpForm.View()
			}
		}
		if overlayContent != "" {
			view = renderOverlay(view, overlayContent, m.width, m.height)
		}
	}

	return view
}

func (m Model) renderRightPanel() string {
	if m.attempt == nil {
		return lipgloss.NewStyle().Foreground(colorDim).Render("\nSelect a task and press Enter to open its latest attempt.")
	}
	switch m.rightTab {
	case rightTabLogs:
		return m.logsPanel.View()
	case rightTabProcesses:
		return m.processPanel.View()
	}
	return ""
}

// sentinel errors
var errTitleRequired = errString("title is required")

type errString string

func (e errString) Error() string { return string(e) }
