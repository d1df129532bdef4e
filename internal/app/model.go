package app

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"splitdiff/internal/config"
	"splitdiff/internal/diffview"
	gitint "splitdiff/internal/git"
	"splitdiff/internal/linenumbers"
	"splitdiff/internal/syntax"
	"splitdiff/internal/theme"
)

type focusPane int

const (
	focusFiles focusPane = iota
	focusDiff
)

const (
	filePaneWidthDefault = 40
	filePaneWidthWide    = 120
)

type filesLoadedMsg struct {
	items []gitint.FileItem
	err   error
}

type diffLoadedMsg struct {
	path  string
	rows  []diffview.DiffRow
	empty bool
	err   error
}

// Model is the Bubble Tea state container for the app.
type Model struct {
	keys      KeyMap
	focus     focusPane
	cwd       string
	diffMode  gitint.DiffMode
	statusSvc gitint.StatusService
	diffSvc   gitint.DiffService

	cfg         config.AppConfig
	styles      diffview.RenderStyles
	highlighter *syntax.Highlighter

	width  int
	height int
	ready  bool

	fileItems     []gitint.FileItem
	selected      int
	selectedF     string
	filePaneW     int
	fileHidden    bool
	fileCursor    int
	fileScroll    int
	treeCollapsed map[string]bool

	diffRows  []diffview.DiffRow
	diffView  viewport.Model
	diffDirty bool

	helpOpen bool

	loadingFiles bool
	loadingDiff  bool
	err          error
}

func NewModel() (Model, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Model{}, err
	}

	if _, err := gitint.DiscoverGitDir(context.Background(), cwd); err != nil {
		return Model{}, err
	}

	cfg, _, err := config.Load()
	if err != nil {
		return Model{}, err
	}

	palette := theme.Default()

	m := Model{
		keys:          defaultKeyMap(),
		focus:         focusFiles,
		cwd:           cwd,
		diffMode:      gitint.DiffModeAll,
		statusSvc:     gitint.NewStatusService(),
		diffSvc:       gitint.NewDiffService(),
		cfg:           cfg,
		styles:        palette.Styles(),
		highlighter:   syntax.New("monokai", palette.Styles().Context),
		filePaneW:     filePaneWidthDefault,
		treeCollapsed: make(map[string]bool),
		diffDirty:     true,
	}

	m.diffView = viewport.New(1, 1)
	m.diffView.SetContent("Select a file to load its diff.")
	return m, nil
}

func (m Model) Init() tea.Cmd {
	m.loadingFiles = true
	return m.loadFilesCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizePanes()
		m.diffDirty = true
		m.refreshDiffContent()
		return m, nil

	case filesLoadedMsg:
		m.loadingFiles = false
		m.err = msg.err
		m.fileItems = msg.items
		if len(m.fileItems) == 0 {
			m.selected = 0
			m.selectedF = ""
			m.fileCursor = 0
			m.fileScroll = 0
			m.diffRows = nil
			m.diffDirty = false
			m.diffView.GotoTop()
			m.diffView.SetContent("No changed files found in this repository.")
			return m, nil
		}

		if idx := indexOfFilePath(m.fileItems, m.selectedF); idx >= 0 {
			m.selected = idx
		}
		if m.selected >= len(m.fileItems) {
			m.selected = len(m.fileItems) - 1
		}
		m.selectedF = m.fileItems[m.selected].Path
		m.syncFileCursorToSelectedPath()
		m.ensureFileCursorVisible(m.fileTreeEntries())
		m.loadingDiff = true
		return m, m.loadDiffCmd(m.selectedF)

	case diffLoadedMsg:
		m.loadingDiff = false
		m.err = msg.err
		if msg.err != nil {
			m.diffRows = nil
			m.diffDirty = false
			m.diffView.SetContent(fmt.Sprintf("Failed to load diff for %s:\n%v", msg.path, msg.err))
			return m, nil
		}
		if msg.empty || len(msg.rows) == 0 {
			m.diffRows = nil
			m.diffDirty = false
			m.diffView.GotoTop()
			m.diffView.SetContent(fmt.Sprintf("No diff for %s.", msg.path))
			return m, nil
		}
		m.diffRows = msg.rows
		m.diffDirty = true
		m.diffView.GotoTop()
		m.refreshDiffContent()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.ToggleFocus) {
			if m.focus == focusFiles {
				m.focus = focusDiff
			} else {
				m.focus = focusFiles
				m.ensureFilePaneVisible()
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.Help) {
			m.helpOpen = !m.helpOpen
			return m, nil
		}
		if key.Matches(msg, m.keys.Refresh) {
			m.loadingFiles = true
			return m, m.loadFilesCmd()
		}
		if key.Matches(msg, m.keys.ToggleMode) {
			m.advanceDiffMode()
			if m.selectedF != "" {
				m.loadingDiff = true
				return m, m.loadDiffCmd(m.selectedF)
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.KeepMarkers) {
			m.cfg.SideBySide.KeepMarkers = !m.cfg.SideBySide.KeepMarkers
			m.diffDirty = true
			m.refreshDiffContent()
			return m, nil
		}

		if m.focus == focusFiles {
			return m.updateFilesPane(msg)
		}
		return m.updateDiffPane(msg)
	}

	return m, nil
}

func (m Model) updateFilesPane(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ToggleFiles) {
		m.toggleFilePaneWidth()
		return m, nil
	}

	entries := m.fileTreeEntries()
	if len(entries) == 0 {
		return m, nil
	}
	m.clampFileCursor(entries)

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.fileCursor > 0 {
			m.fileCursor--
		}
		m.ensureFileCursorVisible(entries)
		return m.updateSelectedFileFromCursor(entries)

	case key.Matches(msg, m.keys.Down):
		if m.fileCursor < len(entries)-1 {
			m.fileCursor++
		}
		m.ensureFileCursorVisible(entries)
		return m.updateSelectedFileFromCursor(entries)

	case key.Matches(msg, m.keys.ScrollDown):
		return m.scrollFilesWindow(1, entries)

	case key.Matches(msg, m.keys.ScrollUp):
		return m.scrollFilesWindow(-1, entries)

	case isRuneKey(msg, "h"):
		return m.handleFilesLeft(entries)

	case isRuneKey(msg, "l"):
		return m.handleFilesRight(entries)

	case key.Matches(msg, m.keys.Open):
		entry := entries[m.fileCursor]
		if entry.IsDir {
			m.toggleDirCollapsed(entry.Path)
			m.ensureFileCursorVisible(m.fileTreeEntries())
			return m, nil
		}
		if entry.FileIndex >= 0 && entry.FileIndex < len(m.fileItems) {
			m.selected = entry.FileIndex
			m.selectedF = m.fileItems[m.selected].Path
			m.loadingDiff = true
			m.focus = focusDiff
			return m, m.loadDiffCmd(m.selectedF)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateSelectedFileFromCursor(entries []fileTreeEntry) (tea.Model, tea.Cmd) {
	m.clampFileCursor(entries)
	entry := entries[m.fileCursor]
	if entry.IsDir || entry.FileIndex < 0 || entry.FileIndex >= len(m.fileItems) {
		return *m, nil
	}
	if m.selected == entry.FileIndex && m.selectedF == entry.Path {
		return *m, nil
	}
	m.selected = entry.FileIndex
	m.selectedF = entry.Path
	m.loadingDiff = true
	return *m, m.loadDiffCmd(m.selectedF)
}

func (m *Model) handleFilesLeft(entries []fileTreeEntry) (tea.Model, tea.Cmd) {
	m.clampFileCursor(entries)
	entry := entries[m.fileCursor]
	if !entry.IsDir {
		parent := parentDirPath(entry.Path)
		if parent != "" && m.setFileCursorByDir(entries, parent) {
			m.ensureFileCursorVisible(entries)
			return *m, nil
		}
		return *m, nil
	}

	if !m.isDirCollapsed(entry.Path) {
		m.toggleDirCollapsed(entry.Path)
		m.ensureFileCursorVisible(m.fileTreeEntries())
		return *m, nil
	}

	parent := parentDirPath(entry.Path)
	if parent != "" {
		m.setFileCursorByDir(entries, parent)
	}
	m.ensureFileCursorVisible(entries)
	return *m, nil
}

func (m *Model) handleFilesRight(entries []fileTreeEntry) (tea.Model, tea.Cmd) {
	m.clampFileCursor(entries)
	entry := entries[m.fileCursor]
	if !entry.IsDir {
		if entry.FileIndex >= 0 && entry.FileIndex < len(m.fileItems) {
			if m.selected != entry.FileIndex || m.selectedF != entry.Path {
				m.selected = entry.FileIndex
				m.selectedF = entry.Path
				m.loadingDiff = true
				m.focus = focusDiff
				return *m, m.loadDiffCmd(m.selectedF)
			}
			m.focus = focusDiff
		}
		return *m, nil
	}

	if m.isDirCollapsed(entry.Path) {
		delete(m.treeCollapsed, entry.Path)
	}

	updated := m.fileTreeEntries()
	dirIdx := -1
	for i, e := range updated {
		if e.IsDir && e.Path == entry.Path {
			dirIdx = i
			break
		}
	}
	if dirIdx == -1 {
		m.ensureFileCursorVisible(updated)
		return *m, nil
	}

	dirDepth := updated[dirIdx].Depth
	for i := dirIdx + 1; i < len(updated); i++ {
		if updated[i].Depth <= dirDepth {
			break
		}
		if updated[i].Depth == dirDepth+1 {
			m.fileCursor = i
			m.ensureFileCursorVisible(updated)
			return m.updateSelectedFileFromCursor(updated)
		}
	}

	m.ensureFileCursorVisible(updated)
	return *m, nil
}

func (m *Model) clampFileCursor(entries []fileTreeEntry) {
	if len(entries) == 0 {
		m.fileCursor = 0
		return
	}
	if m.fileCursor < 0 {
		m.fileCursor = 0
	}
	if m.fileCursor >= len(entries) {
		m.fileCursor = len(entries) - 1
	}
}

func (m *Model) ensureFileCursorVisible(entries []fileTreeEntry) {
	m.clampFileCursor(entries)
	page := m.fileListPageSize()
	if page < 1 {
		page = 1
	}
	maxScroll := len(entries) - page
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.fileScroll < 0 {
		m.fileScroll = 0
	}
	if m.fileScroll > maxScroll {
		m.fileScroll = maxScroll
	}
	if m.fileCursor < m.fileScroll {
		m.fileScroll = m.fileCursor
	}
	if m.fileCursor >= m.fileScroll+page {
		m.fileScroll = m.fileCursor - page + 1
	}
	if m.fileScroll < 0 {
		m.fileScroll = 0
	}
	if m.fileScroll > maxScroll {
		m.fileScroll = maxScroll
	}
}

func (m *Model) scrollFilesWindow(delta int, entries []fileTreeEntry) (tea.Model, tea.Cmd) {
	if len(entries) == 0 || delta == 0 {
		return *m, nil
	}
	page := m.fileListPageSize()
	if page < 1 {
		page = 1
	}
	maxScroll := len(entries) - page
	if maxScroll < 0 {
		maxScroll = 0
	}
	oldTop := m.fileScroll
	newTop := oldTop + delta
	if newTop < 0 {
		newTop = 0
	}
	if newTop > maxScroll {
		newTop = maxScroll
	}
	if newTop == oldTop {
		return *m, nil
	}

	rel := m.fileCursor - oldTop
	if rel < 0 {
		rel = 0
	}
	if rel >= page {
		rel = page - 1
	}
	m.fileScroll = newTop
	target := newTop + rel
	if target < 0 {
		target = 0
	}
	if target >= len(entries) {
		target = len(entries) - 1
	}
	m.fileCursor = target
	return m.updateSelectedFileFromCursor(entries)
}

func (m *Model) setFileCursorByDir(entries []fileTreeEntry, dirPath string) bool {
	for i, e := range entries {
		if e.IsDir && e.Path == dirPath {
			m.fileCursor = i
			return true
		}
	}
	return false
}

func (m *Model) isDirCollapsed(path string) bool {
	return m.treeCollapsed[path]
}

func (m *Model) toggleDirCollapsed(path string) {
	if m.treeCollapsed == nil {
		m.treeCollapsed = make(map[string]bool)
	}
	if m.treeCollapsed[path] {
		delete(m.treeCollapsed, path)
		return
	}
	m.treeCollapsed[path] = true
}

func parentDirPath(p string) string {
	i := strings.LastIndex(p, "/")
	if i <= 0 {
		return ""
	}
	return p[:i]
}

func isRuneKey(msg tea.KeyMsg, key string) bool {
	return msg.Type == tea.KeyRunes && msg.String() == key
}

func indexOfFilePath(items []gitint.FileItem, path string) int {
	if path == "" {
		return -1
	}
	for i, item := range items {
		if item.Path == path {
			return i
		}
	}
	return -1
}

func (m *Model) syncFileCursorToSelectedPath() {
	entries := m.fileTreeEntries()
	if len(entries) == 0 {
		m.fileCursor = 0
		return
	}
	for i, e := range entries {
		if !e.IsDir && e.Path == m.selectedF {
			m.fileCursor = i
			return
		}
	}
	m.fileCursor = 0
}

// updateDiffPane scrolls the rendered side-by-side viewport. The render
// itself never changes in response to these keys; only the visible window
// into diffView's content does.
func (m Model) updateDiffPane(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.diffView.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.diffView.LineDown(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.diffView.LineUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.diffView.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.diffView.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.diffView.PageDown()
	case key.Matches(msg, m.keys.Top):
		m.diffView.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.diffView.GotoBottom()
	case isRuneKey(msg, "h"):
		m.focus = focusFiles
		m.ensureFilePaneVisible()
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	help := truncateLinesToWidth(m.helpText(), m.width)
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(help)
	footerHeight := lipgloss.Height(footer)

	leftW, rightW := paneWidths(m.width, m.filePaneW, m.fileHidden)
	paneContentHeight := max(1, m.height-footerHeight-2)

	newWidth := max(1, rightW)
	newHeight := max(1, paneContentHeight-2)
	if m.diffView.Width != newWidth || m.diffView.Height != newHeight {
		m.diffView.Width = newWidth
		m.diffView.Height = newHeight
		m.diffDirty = true
	}
	m.refreshDiffContent()

	diffPane := m.renderDiffPane(rightW, paneContentHeight)
	content := diffPane
	if !m.fileHidden {
		filesPane := m.renderFilesPane(leftW, paneContentHeight)
		content = lipgloss.JoinHorizontal(lipgloss.Top, filesPane, diffPane)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, footer)
}

func (m Model) helpText() string {
	if !m.helpOpen {
		return "tab focus | j/k move | ctrl-f/b page | ctrl-e/y scroll | g/G top/bottom | enter open | z file pane | t diff mode | m markers | r refresh | ? help | q quit"
	}
	return strings.Join([]string{
		"Global: q quit, tab switch focus, t toggle diff mode (staged/unstaged/all), m toggle +/- markers, ? toggle help",
		"Files pane: j/k move, ctrl-e/ctrl-y scroll, h/l tree nav, enter open diff, z toggle file pane width, r refresh",
		"Diff pane: j/k scroll, ctrl-e/ctrl-y scroll, ctrl-f/ctrl-b page, g/G top/bottom, h focus files",
	}, "\n")
}

func (m *Model) fileListPageSize() int {
	_, paneHeight := m.filePaneDims()
	if paneHeight < 1 {
		return 1
	}
	return paneHeight
}

func (m *Model) filePaneDims() (width, height int) {
	help := truncateLinesToWidth(m.helpText(), m.width)
	footerHeight := lipgloss.Height(help)
	leftW, _ := paneWidths(m.width, m.filePaneW, m.fileHidden)
	paneContentHeight := max(1, m.height-footerHeight-2)
	return leftW, max(1, paneContentHeight-4)
}

func (m Model) renderFilesPane(width, height int) string {
	border := lipgloss.NormalBorder()
	borderColor := lipgloss.Color("245")
	if m.focus == focusFiles {
		borderColor = lipgloss.Color("39")
	}

	paneStyle := lipgloss.NewStyle().
		Width(max(1, width)).
		Height(max(1, height)).
		Border(border).
		BorderForeground(borderColor)

	title := fmt.Sprintf("Files (%d)", len(m.fileItems))
	if m.loadingFiles {
		title += " (loading...)"
	}

	innerW := max(1, width)
	bodyLines := make([]string, 0, len(m.fileItems)+2)
	bodyLines = append(bodyLines, title)
	bodyLines = append(bodyLines, "")

	entries := m.fileTreeEntries()
	cursor := m.fileCursor
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(entries) {
		cursor = len(entries) - 1
	}

	if len(entries) == 0 {
		bodyLines = append(bodyLines, "No changed files")
	} else {
		pageSize := m.fileListPageSize()
		if pageSize < 1 {
			pageSize = 1
		}
		maxScroll := len(entries) - pageSize
		if maxScroll < 0 {
			maxScroll = 0
		}
		start := m.fileScroll
		if start < 0 {
			start = 0
		}
		if start > maxScroll {
			start = maxScroll
		}
		end := start + pageSize
		if end > len(entries) {
			end = len(entries)
		}

		for i := start; i < end; i++ {
			entry := entries[i]
			prefix := "  "
			if i == cursor {
				prefix = "> "
			}
			indent := strings.Repeat("  ", entry.Depth)
			line := ""
			if entry.IsDir {
				icon := "[-]"
				if m.isDirCollapsed(entry.Path) {
					icon = "[+]"
				}
				line = fmt.Sprintf("%s%s%s %s/", prefix, indent, icon, entry.Name)
			} else {
				line = fmt.Sprintf("%s%s[%s] %s", prefix, indent, entry.Status, entry.Name)
			}
			lineStyle := lipgloss.NewStyle().Width(innerW).MaxWidth(innerW)
			if entry.IsDir {
				lineStyle = lineStyle.Foreground(lipgloss.Color("244"))
			}
			if i == cursor {
				lineStyle = lineStyle.Foreground(lipgloss.Color("39")).Bold(true)
			}
			bodyLines = append(bodyLines, lineStyle.Render(line))
		}
	}

	if m.err != nil {
		bodyLines = append(bodyLines, "")
		bodyLines = append(bodyLines, fmt.Sprintf("error: %v", m.err))
	}

	return paneStyle.Render(strings.Join(bodyLines, "\n"))
}

func (m Model) renderDiffPane(width, height int) string {
	border := lipgloss.NormalBorder()
	borderColor := lipgloss.Color("245")
	if m.focus == focusDiff {
		borderColor = lipgloss.Color("39")
	}

	paneStyle := lipgloss.NewStyle().
		Width(max(1, width)).
		Height(max(1, height)).
		Border(border).
		BorderForeground(borderColor)

	title := m.selectedF
	if title == "" {
		title = "(no file selected)"
	}
	if m.loadingDiff {
		title += " (loading...)"
	}

	body := strings.Join([]string{title, "", m.diffView.View()}, "\n")
	return paneStyle.Render(body)
}

type fileTreeEntry struct {
	Path      string
	Name      string
	Depth     int
	IsDir     bool
	FileIndex int
	Status    string
}

type fileTreeDir struct {
	Name  string
	Path  string
	Dirs  map[string]*fileTreeDir
	Files []fileTreeFile
}

type fileTreeFile struct {
	Name      string
	Path      string
	FileIndex int
	Status    string
}

func (m Model) fileTreeEntries() []fileTreeEntry {
	root := &fileTreeDir{Name: "", Path: "", Dirs: make(map[string]*fileTreeDir)}
	for i, item := range m.fileItems {
		parts := strings.Split(strings.TrimSuffix(item.Path, "/"), "/")
		if len(parts) == 0 || parts[0] == "" {
			continue
		}
		node := root
		for d := 0; d < len(parts)-1; d++ {
			name := parts[d]
			child, ok := node.Dirs[name]
			if !ok {
				path := name
				if node.Path != "" {
					path = node.Path + "/" + name
				}
				child = &fileTreeDir{Name: name, Path: path, Dirs: make(map[string]*fileTreeDir)}
				node.Dirs[name] = child
			}
			node = child
		}
		name := parts[len(parts)-1]
		node.Files = append(node.Files, fileTreeFile{
			Name:      name,
			Path:      item.Path,
			FileIndex: i,
			Status:    item.Status,
		})
	}

	out := make([]fileTreeEntry, 0, len(m.fileItems)*2)
	flattenTreeEntries(root, 0, m.treeCollapsed, &out)
	return out
}

func flattenTreeEntries(node *fileTreeDir, depth int, collapsed map[string]bool, out *[]fileTreeEntry) {
	dirNames := make([]string, 0, len(node.Dirs))
	for name := range node.Dirs {
		dirNames = append(dirNames, name)
	}
	sort.Strings(dirNames)
	for _, name := range dirNames {
		child := node.Dirs[name]
		*out = append(*out, fileTreeEntry{Path: child.Path, Name: child.Name, Depth: depth, IsDir: true, FileIndex: -1})
		if collapsed != nil && collapsed[child.Path] {
			continue
		}
		flattenTreeEntries(child, depth+1, collapsed, out)
	}

	sort.Slice(node.Files, func(i, j int) bool {
		return node.Files[i].Name < node.Files[j].Name
	})
	for _, f := range node.Files {
		*out = append(*out, fileTreeEntry{Path: f.Path, Name: f.Name, Depth: depth, IsDir: false, FileIndex: f.FileIndex, Status: f.Status})
	}
}

func (m *Model) resizePanes() {
	_, rightW := paneWidths(m.width, m.filePaneW, m.fileHidden)
	m.diffView.Width = max(1, rightW)
	m.diffView.Height = max(1, m.height-6)
	m.diffDirty = true
}

func (m Model) loadFilesCmd() tea.Cmd {
	cwd := m.cwd
	service := m.statusSvc
	return func() tea.Msg {
		items, err := service.ListChangedFiles(context.Background(), cwd)
		return filesLoadedMsg{items: items, err: err}
	}
}

func (m Model) loadDiffCmd(path string) tea.Cmd {
	cwd := m.cwd
	service := m.diffSvc
	mode := m.diffMode
	return func() tea.Msg {
		d, err := service.Diff(context.Background(), cwd, path, mode)
		if err != nil {
			return diffLoadedMsg{path: path, err: err}
		}
		if strings.TrimSpace(d) == "" {
			return diffLoadedMsg{path: path, empty: true}
		}

		rows, err := diffview.ParseUnifiedDiff([]byte(d))
		if err != nil {
			return diffLoadedMsg{path: path, err: err}
		}
		return diffLoadedMsg{path: path, rows: rows}
	}
}

func (m *Model) toggleFilePaneWidth() {
	if m.filePaneW == filePaneWidthDefault {
		m.filePaneW = filePaneWidthWide
	} else if m.filePaneW == filePaneWidthWide {
		m.fileHidden = true
	} else {
		m.filePaneW = filePaneWidthDefault
	}
	if m.fileHidden && m.filePaneW != filePaneWidthDefault {
		m.fileHidden = false
		m.filePaneW = filePaneWidthDefault
	}
	m.resizePanes()
}

func (m *Model) ensureFilePaneVisible() {
	if m.fileHidden {
		m.fileHidden = false
		m.resizePanes()
	}
}

func (m *Model) advanceDiffMode() {
	switch m.diffMode {
	case gitint.DiffModeAll:
		m.diffMode = gitint.DiffModeUnstaged
	case gitint.DiffModeUnstaged:
		m.diffMode = gitint.DiffModeStaged
	default:
		m.diffMode = gitint.DiffModeAll
	}
}

// refreshDiffContent re-renders diffView's content from diffRows. It is a
// no-op unless diffDirty is set, since RenderSideBySide redoes the full
// wrap/paint/pad pipeline and there is no point paying for that on every
// keystroke that doesn't change the rows or the panel width.
func (m *Model) refreshDiffContent() {
	if !m.diffDirty {
		return
	}
	m.diffDirty = false
	if len(m.diffRows) == 0 {
		return
	}
	rendered := diffview.RenderSideBySide(m.diffRows, m.renderOptions())
	m.diffView.SetContent(rendered)
}

func (m Model) renderOptions() diffview.RenderOptions {
	width, err := m.cfg.SideBySide.ToWidth()
	if err != nil {
		width = diffview.VariableWidth()
	}
	fillMethod, err := m.cfg.SideBySide.ToFillMethod()
	if err != nil {
		fillMethod = diffview.FillSpaces
	}

	digits := m.cfg.SideBySide.LineNumberDigits
	if digits == 0 {
		digits = linenumbers.DigitsFor(maxLineNumber(m.diffRows))
	}
	format := linenumbers.Format{Digits: digits, Separator: " "}

	return diffview.RenderOptions{
		Declared:      width,
		TerminalWidth: m.diffView.Width,
		FillMethod:    fillMethod,
		KeepMarkers:   m.cfg.SideBySide.KeepMarkers,
		Wrap:          m.cfg.SideBySide.ToWrapConfig(),
		Styles:        m.styles,
		GutterFormat:  diffview.LeftRight[linenumbers.Format]{Left: format, Right: format},
		Divider:       " \u2502 ",
		Highlight:     m.highlighter.Highlight,
	}
}

// maxLineNumber finds the largest old/new line number across rows, used to
// size the gutter when LineNumberDigits asks for automatic sizing.
func maxLineNumber(rows []diffview.DiffRow) int {
	max := 0
	for _, r := range rows {
		if r.OldLine != nil && *r.OldLine > max {
			max = *r.OldLine
		}
		if r.NewLine != nil && *r.NewLine > max {
			max = *r.NewLine
		}
	}
	return max
}

func truncateLinesToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
