package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/collate"

	"github.com/newsarchive-kr/newsarchive/internal/archive"
	"github.com/newsarchive-kr/newsarchive/internal/browser"
	"github.com/newsarchive-kr/newsarchive/internal/config"
	"github.com/newsarchive-kr/newsarchive/internal/loader"
	"github.com/newsarchive-kr/newsarchive/internal/logging"
	"github.com/newsarchive-kr/newsarchive/internal/prefs"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeFilter
	modeDetail
	modeHelp
)

// App is the whole viewer state. Update is the only place state
// changes; View is a pure render of it.
type App struct {
	cfg    *config.Config
	store  *prefs.Store
	loader loader.Loader

	collator *collate.Collator

	// posts is the full collection as loaded; view is the filtered,
	// sorted projection the list renders.
	posts []archive.Post
	view  []archive.Post

	query  archive.Query
	pager  archive.Pager
	cursor int

	mode         mode
	detailID     string
	detailScroll int

	width  int
	height int

	theme  Palette
	styles Styles
	keys   keyMap
	help   help.Model

	searchInput textinput.Model
	spinner     spinner.Model
	toolbar     toolbar

	loading  bool
	loadErr  error
	flashErr error

	now func() time.Time
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg    *config.Config
	Store  *prefs.Store
	Loader loader.Loader
	Sort   archive.SortKey
}

func NewApp(opts RunOpts) *App {
	theme := Light
	if opts.Store != nil {
		theme = PaletteByName(opts.Store.GetDefault(prefs.KeyTheme, Light.Name))
	}
	styles := NewStyles(theme)

	query := archive.NewQuery()
	if opts.Sort != "" {
		query.Sort = opts.Sort
	}

	ti := textinput.New()
	ti.Placeholder = "검색어를 입력하세요"
	ti.Prompt = styles.SearchPrompt.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.Spinner

	return &App{
		cfg:         opts.Cfg,
		store:       opts.Store,
		loader:      opts.Loader,
		collator:    archive.NewCollator(),
		query:       query,
		pager:       archive.NewPager(),
		theme:       theme,
		styles:      styles,
		keys:        newKeyMap(),
		help:        themedHelp(help.New(), theme),
		searchInput: ti,
		spinner:     sp,
		toolbar:     newToolbar(nil),
		now:         time.Now,
	}
}

func themedHelp(h help.Model, p Palette) help.Model {
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(p.Secondary)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(p.Dim)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(p.Dim)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(p.Secondary)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(p.Dim)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(p.Dim)
	return h
}

func (a *App) Init() tea.Cmd {
	if a.loader == nil {
		return nil
	}
	a.loading = true
	return tea.Batch(a.spinner.Tick, a.loadCmd())
}

// loadCmd captures the loader into the closure; the archive is
// fetched exactly once per run.
func (a *App) loadCmd() tea.Cmd {
	l := a.loader
	timeout := 15 * time.Second
	if a.cfg != nil {
		timeout = a.cfg.Timeout()
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		posts, err := l.Load(ctx)
		if err != nil {
			return loadErrMsg{err: err}
		}
		return postsLoadedMsg{posts: posts}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return browserErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		a.flashErr = nil
		return a.handleKey(msg)

	case postsLoadedMsg:
		a.loading = false
		a.posts = msg.posts
		a.toolbar = newToolbar(archive.Categories(a.posts, a.collator))
		a.applyFilters(true)
		logging.Info("archive loaded", "posts", len(a.posts))
		return a, nil

	case loadErrMsg:
		a.loading = false
		a.loadErr = msg.err
		logging.Error("archive load failed", "err", msg.err)
		return a, nil

	case browserErrMsg:
		a.flashErr = msg.err
		logging.Warn("browser open failed", "err", msg.err)
		return a, nil

	case themeSavedMsg:
		if msg.err != nil {
			a.flashErr = msg.err
			logging.Warn("saving theme failed", "err", msg.err)
		}
		return a, nil

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeDetail:
		return a.handleDetailKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc":
			a.mode = modeList
		case "q":
			return a, tea.Quit
		}
		return a, nil
	}

	return a.handleListKey(msg)
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		start, end := a.pager.Bounds(len(a.view))
		if a.cursor < end-start-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.PrevPage):
		a.pager = a.pager.Prev()
		a.cursor = 0
		return a, nil

	case key.Matches(msg, a.keys.NextPage):
		a.pager = a.pager.Next(len(a.view))
		a.cursor = 0
		return a, nil

	case key.Matches(msg, a.keys.FirstPage):
		a.pager = a.pager.First()
		a.cursor = 0
		return a, nil

	case key.Matches(msg, a.keys.LastPage):
		a.pager = a.pager.Last(len(a.view))
		a.cursor = 0
		return a, nil

	case key.Matches(msg, a.keys.Open):
		if sel, ok := a.selected(); ok {
			a.openDetail(sel.ID)
		}
		return a, nil

	case key.Matches(msg, a.keys.Browser):
		// Posts without a link render a placeholder; the key does nothing.
		if sel, ok := a.selected(); ok && sel.URL != "" {
			return a, openBrowserCmd(sel.URL)
		}
		return a, nil

	case key.Matches(msg, a.keys.Search):
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Filter):
		a.mode = modeFilter
		a.toolbar.enterFilterMode()
		return a, nil

	case key.Matches(msg, a.keys.Sort):
		a.query.Sort = a.query.Sort.Next()
		a.applyFilters(true)
		return a, nil

	case key.Matches(msg, a.keys.Theme):
		return a, a.toggleTheme()

	case key.Matches(msg, a.keys.Home):
		a.resetAndHome()
		return a, nil

	case key.Matches(msg, a.keys.Help):
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeList
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.applyFilters(true)
		return a, nil
	case "enter":
		a.mode = modeList
		a.searchInput.Blur()
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.searchInput.Value() != before {
		a.applyFilters(true)
	}
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeList
		a.toolbar.exitFilterMode()
		return a, nil
	case "left", "h":
		a.toolbar.moveLeft()
		return a, nil
	case "right", "l":
		a.toolbar.moveRight()
		return a, nil
	case " ", "enter":
		if a.toolbar.selectCursor() {
			a.applyFilters(true)
		}
		a.mode = modeList
		a.toolbar.exitFilterMode()
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if a.toolbar.selectIndex(idx) {
			a.applyFilters(true)
			a.mode = modeList
			a.toolbar.exitFilterMode()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		a.mode = modeList
		return a, nil
	case "j", "down":
		a.detailScroll++
		return a, nil
	case "k", "up":
		if a.detailScroll > 0 {
			a.detailScroll--
		}
		return a, nil
	case "o", "enter":
		if p, ok := a.detailPost(); ok && p.URL != "" {
			return a, openBrowserCmd(p.URL)
		}
		return a, nil
	case "t":
		return a, a.toggleTheme()
	case "h":
		a.resetAndHome()
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

// applyFilters recomputes the view from the full collection. Filter
// changes reset to the first page; the pager is clamped either way so
// a shrinking result can never strand the current page.
func (a *App) applyFilters(resetPage bool) {
	a.query.Search = a.searchInput.Value()
	a.query.Category = a.toolbar.current()
	a.view = archive.Filter(a.posts, a.query, a.collator)
	if resetPage {
		a.pager = a.pager.First()
	}
	a.pager = a.pager.Clamp(len(a.view))
	a.clampCursor()
}

func (a *App) clampCursor() {
	start, end := a.pager.Bounds(len(a.view))
	pageLen := end - start
	if pageLen == 0 {
		a.cursor = 0
		return
	}
	if a.cursor >= pageLen {
		a.cursor = pageLen - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// selected returns the post under the cursor on the current page.
func (a *App) selected() (archive.Post, bool) {
	start, end := a.pager.Bounds(len(a.view))
	idx := start + a.cursor
	if idx >= end {
		return archive.Post{}, false
	}
	return a.view[idx], true
}

// openDetail switches to the detail view for id. Unknown ids are a
// no-op; the list stays exactly as it was.
func (a *App) openDetail(id string) {
	if _, ok := archive.FindByID(a.posts, id); !ok {
		logging.Warn("detail requested for unknown post", "id", id)
		return
	}
	a.detailID = id
	a.detailScroll = 0
	a.mode = modeDetail
}

func (a *App) detailPost() (archive.Post, bool) {
	return archive.FindByID(a.posts, a.detailID)
}

// resetAndHome clears search, category, sort and paging, and returns
// to the list. Applying it twice leaves the same state.
func (a *App) resetAndHome() {
	a.searchInput.SetValue("")
	a.searchInput.Blur()
	a.toolbar.reset()
	a.query = archive.NewQuery()
	a.pager = archive.NewPager()
	a.cursor = 0
	a.detailScroll = 0
	a.mode = modeList
	a.applyFilters(true)
}

func (a *App) toggleTheme() tea.Cmd {
	a.theme = a.theme.Other()
	a.styles = NewStyles(a.theme)
	a.help = themedHelp(a.help, a.theme)
	a.searchInput.Prompt = a.styles.SearchPrompt.Render("/ ")
	a.spinner.Style = a.styles.Spinner

	if a.store == nil {
		return nil
	}
	store, name := a.store, a.theme.Name
	return func() tea.Msg {
		if err := store.Set(prefs.KeyTheme, name); err != nil {
			return themeSavedMsg{err: err}
		}
		return themeSavedMsg{}
	}
}

func (a *App) summaryLine() string {
	if a.loadErr != nil {
		return a.styles.ErrorText.Render("데이터 로드 실패: " + a.loadErr.Error())
	}
	if a.loading {
		return "불러오는 중..."
	}
	if a.flashErr != nil {
		return a.styles.ErrorText.Render(a.flashErr.Error())
	}
	s := fmt.Sprintf("총 %d건", len(a.view))
	if a.toolbar.label() != "전체" {
		s += " · " + a.toolbar.label()
	}
	if q := strings.TrimSpace(a.searchInput.Value()); q != "" {
		s += " · 검색: " + q
	}
	s += " · " + a.query.Sort.Label()
	return s
}

func (a *App) View() string {
	if a.width == 0 {
		return a.styles.Header.Render("newsarchive")
	}

	st := a.styles

	headerLeft := st.Header.Render("newsarchive")
	headerRight := st.HeaderDate.Render(a.now().Format("2006-01-02")) + " "
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	if a.mode == modeHelp {
		return a.renderHelpScreen(header)
	}

	contentHeight := a.height - 4
	if contentHeight < 3 {
		contentHeight = 3
	}

	if a.mode == modeDetail {
		if p, ok := a.detailPost(); ok {
			detailHeight := a.height - 2
			if detailHeight < 3 {
				detailHeight = 3
			}
			content := renderDetail(p, a.width, detailHeight, a.detailScroll, st)
			status := renderStatusBar(st, a.width, a.summaryLine(), "esc back  o open link  t theme  q quit")
			return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
		}
	}

	toolbarRow := a.toolbar.render(a.width, st, a.query.Sort.Label(), a.theme.Label())
	if a.mode == modeSearch {
		toolbarRow = " " + a.searchInput.View()
	}

	var content string
	switch {
	case a.loading:
		loading := st.LoadingText.Render(a.spinner.View() + " 불러오는 중...")
		content = lipgloss.Place(a.width, contentHeight, lipgloss.Center, lipgloss.Center, loading)
	case a.loadErr != nil:
		empty := st.EmptyMessage.Render("표시할 게시글이 없습니다")
		content = lipgloss.Place(a.width, contentHeight, lipgloss.Center, lipgloss.Center, empty)
	default:
		content = renderList(a.view, a.pager, a.cursor, a.width, contentHeight, a.now(), st)
	}

	pagerBar := renderPagerBar(st, a.width, a.pager, len(a.view))

	hints := a.help.View(a.keys)
	switch a.mode {
	case modeSearch:
		hints = "esc cancel  enter apply"
	case modeFilter:
		hints = "←/→ move  enter select  esc close"
	}
	status := renderStatusBar(st, a.width, a.summaryLine(), hints)

	return lipgloss.JoinVertical(lipgloss.Left, header, toolbarRow, content, pagerBar, status)
}

func (a *App) renderHelpScreen(header string) string {
	title := a.styles.Header.Render("newsarchive") +
		a.styles.HelpDim.Render(" · keyboard shortcuts")
	body := a.help.FullHelpView(a.keys.FullHelp())
	card := a.styles.HelpCard.Render(title + "\n\n" + body)

	content := lipgloss.Place(a.width, a.height-2, lipgloss.Center, lipgloss.Center, card)
	status := renderStatusBar(a.styles, a.width, a.summaryLine(), "? close  q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

// Run starts the viewer.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
