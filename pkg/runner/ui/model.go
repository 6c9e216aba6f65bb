package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/order"
	"tableflip.dev/snip/pkg/printers"
	"tableflip.dev/snip/pkg/status"
	"tableflip.dev/snip/pkg/view"
)

const (
	sidebarWidth  = 24
	copiedFor     = time.Second
	helpLine      = "j/k move · tab focus · enter copy · o open · m move · d delete · s sidebar · q quit"
	blockedAction = "Press R to run recovery or q to quit."
)

type focus int

const (
	focusItems focus = iota
	focusSidebar
)

type confirmKind int

const (
	confirmItem confirmKind = iota + 1
	confirmBucket
)

type confirmation struct {
	kind   confirmKind
	id     item.ID
	bucket string
	label  string
}

type statusMsg status.State

type copiedExpiredMsg struct {
	id item.ID
}

type model struct {
	svc   *app.Service
	theme Theme

	width, height int
	focus         focus
	cursor        int
	bucketCursor  int

	itemDrag   order.Drag[item.ID]
	bucketDrag order.Drag[string]

	confirm *confirmation
	copied  item.ID
	note    string
	status  status.State

	statusCh chan struct{}
	unsub    func()
}

func newModel(svc *app.Service) *model {
	m := &model{
		svc:      svc,
		theme:    DefaultTheme(),
		status:   svc.Status.Current(),
		statusCh: make(chan struct{}, 1),
	}
	m.bucketDrag.Pinned = bucket.IsReserved
	m.unsub = svc.Status.Subscribe(func(status.State) {
		select {
		case m.statusCh <- struct{}{}:
		default:
		}
	})
	return m
}

func (m *model) Init() tea.Cmd {
	return m.waitStatus()
}

// waitStatus delivers the latest status after each change notification.
func (m *model) waitStatus() tea.Cmd {
	return func() tea.Msg {
		<-m.statusCh
		return statusMsg(m.svc.Status.Current())
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case statusMsg:
		m.status = status.State(msg)
		return m, m.waitStatus()
	case copiedExpiredMsg:
		if m.copied == msg.id {
			m.copied = 0
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, m.quit()
	}
	m.note = ""

	if m.svc.Blocked() {
		switch key {
		case "R":
			m.recover()
		case "q":
			return m, m.quit()
		}
		return m, nil
	}

	if m.confirm != nil {
		switch key {
		case "y", "Y":
			m.applyConfirm()
			m.confirm = nil
		case "n", "N", "esc":
			m.confirm = nil
		}
		return m, nil
	}

	switch key {
	case "q":
		return m, m.quit()
	case "j", "down":
		m.step(1)
	case "k", "up":
		m.step(-1)
	case "tab":
		m.toggleFocus()
	case "esc":
		m.itemDrag.End()
		m.bucketDrag.End()
	case "s":
		if _, err := m.svc.ToggleSidebar(); err == nil && m.svc.SidebarHidden() {
			m.focus = focusItems
			m.bucketDrag.End()
		}
	case "m":
		m.pickOrDrop()
	case "d":
		m.askDelete()
	case "enter":
		if m.itemDrag.Active() || m.bucketDrag.Active() {
			m.pickOrDrop()
			return m, nil
		}
		if m.focus == focusSidebar {
			m.selectBucket()
			return m, nil
		}
		return m, m.copyCurrent()
	case "o":
		m.openCurrent()
	}
	return m, nil
}

func (m *model) quit() tea.Cmd {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
	return tea.Quit
}

func (m *model) visible() []item.Item {
	return m.svc.Visible()
}

func (m *model) currentItem() (item.Item, bool) {
	items := m.visible()
	if m.cursor < 0 || m.cursor >= len(items) {
		return item.Item{}, false
	}
	return items[m.cursor], true
}

func (m *model) currentBucket() (string, bool) {
	buckets := m.svc.Buckets()
	if m.bucketCursor < 0 || m.bucketCursor >= len(buckets) {
		return "", false
	}
	return buckets[m.bucketCursor], true
}

func (m *model) step(delta int) {
	if m.focus == focusSidebar {
		m.bucketCursor = clamp(m.bucketCursor+delta, len(m.svc.Buckets()))
		if name, ok := m.currentBucket(); ok {
			m.bucketDrag.Over(name)
		}
		return
	}
	m.cursor = clamp(m.cursor+delta, len(m.visible()))
	if it, ok := m.currentItem(); ok {
		m.itemDrag.Over(it.ID)
	}
}

func (m *model) toggleFocus() {
	if m.svc.SidebarHidden() {
		return
	}
	m.itemDrag.End()
	m.bucketDrag.End()
	if m.focus == focusItems {
		m.focus = focusSidebar
		m.bucketCursor = bucket.Index(m.svc.Buckets(), m.svc.Selected())
		return
	}
	m.focus = focusItems
}

func (m *model) selectBucket() {
	name, ok := m.currentBucket()
	if !ok {
		return
	}
	if err := m.svc.Select(name); err != nil {
		m.note = err.Error()
		return
	}
	m.focus = focusItems
	m.cursor = 0
}

// pickOrDrop starts a drag on the entry under the cursor, or drops the
// active drag onto it.
func (m *model) pickOrDrop() {
	if m.focus == focusSidebar {
		name, ok := m.currentBucket()
		if !ok {
			return
		}
		if !m.bucketDrag.Active() {
			if !m.bucketDrag.Start(name) {
				m.note = fmt.Sprintf("%q can not be moved", name)
			}
			return
		}
		if src, ok := m.bucketDrag.Drop(name); ok && m.svc.MoveBucket(src, name) {
			m.bucketCursor = bucket.Index(m.svc.Buckets(), src)
		}
		return
	}

	it, ok := m.currentItem()
	if !ok {
		return
	}
	if !m.itemDrag.Active() {
		m.itemDrag.Start(it.ID)
		return
	}
	if src, ok := m.itemDrag.Drop(it.ID); ok && m.svc.MoveItem(src, it.ID) {
		for i, v := range m.visible() {
			if v.ID == src {
				m.cursor = i
				break
			}
		}
	}
}

func (m *model) askDelete() {
	if m.focus == focusSidebar {
		name, ok := m.currentBucket()
		if !ok || bucket.IsReserved(name) {
			return
		}
		m.confirm = &confirmation{kind: confirmBucket, bucket: name, label: name}
		return
	}
	it, ok := m.currentItem()
	if !ok {
		return
	}
	m.confirm = &confirmation{kind: confirmItem, id: it.ID, label: it.Label}
}

func (m *model) applyConfirm() {
	var err error
	switch m.confirm.kind {
	case confirmItem:
		err = m.svc.DeleteItem(m.confirm.id)
		m.cursor = clamp(m.cursor, len(m.visible()))
	case confirmBucket:
		err = m.svc.DeleteBucket(m.confirm.bucket)
		m.bucketCursor = clamp(m.bucketCursor, len(m.svc.Buckets()))
	}
	if err != nil {
		m.note = err.Error()
	}
}

func (m *model) copyCurrent() tea.Cmd {
	it, ok := m.currentItem()
	if !ok {
		return nil
	}
	if err := m.svc.Copy(it.ID); err != nil {
		return nil
	}
	m.copied = it.ID
	id := it.ID
	return tea.Tick(copiedFor, func(time.Time) tea.Msg {
		return copiedExpiredMsg{id: id}
	})
}

func (m *model) openCurrent() {
	it, ok := m.currentItem()
	if !ok {
		return
	}
	if _, err := m.svc.OpenLink(it.ID, false); err != nil {
		if errors.Is(err, app.ErrNotALink) {
			m.note = "not a link"
			return
		}
		m.note = err.Error()
	}
}

func (m *model) recover() {
	if _, err := m.svc.Recover(context.Background()); err != nil {
		m.note = err.Error()
	}
	m.cursor, m.bucketCursor = 0, 0
}

func (m *model) View() string {
	if m.svc.Blocked() {
		return m.viewBlocked()
	}

	body := m.viewItems()
	if !m.svc.SidebarHidden() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewFooter())
}

func (m *model) viewBlocked() string {
	t := m.theme.Modal
	msg := m.status.Blocking
	if msg == "" {
		msg = app.MsgLoadFailed
	}
	lines := []string{t.Title.Render("Something went wrong"), "", t.Body.Render(msg), "", t.Body.Render(blockedAction)}
	if m.note != "" {
		lines = append(lines, "", m.theme.Footer.Error.Render(m.note))
	}
	return t.Frame.Render(strings.Join(lines, "\n"))
}

func (m *model) viewSidebar() string {
	t := m.theme.Sidebar
	counts := m.svc.Counts()
	dragSrc, dragging := m.bucketDrag.Source()
	target, hasTarget := m.bucketDrag.Target()

	lines := []string{t.Title.Render("Buckets"), ""}
	for i, c := range counts {
		style := t.Bucket
		if c.Bucket == m.svc.Selected() {
			style = t.Selected
		}
		name := c.Bucket
		if dragging && c.Bucket == dragSrc {
			name = "↕ " + name
		}
		if hasTarget && c.Bucket == target {
			style = style.Underline(true)
		}
		line := fmt.Sprintf("%-*s %s", sidebarWidth-8, style.Render(name), t.Count.Render(fmt.Sprint(c.Items)))
		if m.focus == focusSidebar && i == m.bucketCursor {
			line = t.Cursor.Render(line)
		}
		lines = append(lines, line)
	}
	return t.Frame.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func (m *model) viewItems() string {
	t := m.theme.List
	items := m.visible()
	selected := m.svc.Selected()

	lines := []string{t.Title.Render(fmt.Sprintf("%s (%d)", selected, len(items))), ""}
	if len(items) == 0 {
		lines = append(lines, t.Empty.Render(view.EmptyTitle(selected)))
	}
	dragSrc, dragging := m.itemDrag.Source()
	target, hasTarget := m.itemDrag.Target()
	for i, it := range items {
		label := t.Label.Render(it.Label)
		if dragging && it.ID == dragSrc {
			label = t.Drag.Render("↕ " + it.Label)
		}
		line := label + "  " + t.Preview.Render(printers.Preview(it.Content))
		if it.ID == m.copied {
			line += "  " + t.Copied.Render("copied")
		}
		if hasTarget && it.ID == target {
			line = t.Target.Render(line)
		}
		if m.focus == focusItems && i == m.cursor {
			line = t.Cursor.Render(line)
		}
		lines = append(lines, line)
	}
	frame := t.Frame
	if m.width > 0 {
		w := m.width - 2
		if !m.svc.SidebarHidden() {
			w -= sidebarWidth + 2
		}
		if w > 10 {
			frame = frame.Width(w)
		}
	}
	return frame.Render(strings.Join(lines, "\n"))
}

func (m *model) viewFooter() string {
	t := m.theme.Footer
	switch {
	case m.confirm != nil:
		return t.Note.Render(fmt.Sprintf("Delete %q? (y/n)", m.confirm.label))
	case m.status.Transient != "":
		return t.Error.Render(m.status.Transient)
	case m.note != "":
		return t.Note.Render(m.note)
	case m.itemDrag.Active() || m.bucketDrag.Active():
		return t.Note.Render("moving: j/k to choose a spot, m or enter to drop, esc to cancel")
	}
	return t.Help.Render(helpLine)
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
