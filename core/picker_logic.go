package core

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFocusable is returned when a picker has nothing to focus.
var ErrNotFocusable = errors.New("picker has no items to focus")

type PickerItem struct {
	ID     string
	Label  string
	Search string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionFiltered
	PickerActionSelected
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is a filterable, scrollable single-select list. The cursor indexes
// the filtered items; offset is the first visible row.
type Picker struct {
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
	offset   int
	focused  bool
}

func NewPicker(items []PickerItem) *Picker {
	p := &Picker{}
	p.SetItems(items)
	return p
}

func (p *Picker) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

func (p *Picker) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *Picker) Len() int {
	if p == nil {
		return 0
	}
	return len(p.items)
}

func (p *Picker) Items() []PickerItem {
	if p == nil {
		return nil
	}
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) SetItems(items []PickerItem) {
	if p == nil {
		return
	}
	p.items = append([]PickerItem(nil), items...)
	p.rebuildFiltered()
}

func (p *Picker) SetQuery(q string) {
	if p == nil {
		return
	}
	p.query = q
	p.rebuildFiltered()
}

// Focus gives the list keyboard focus. It fails when there is nothing to
// navigate.
func (p *Picker) Focus() error {
	if p == nil || len(p.items) == 0 {
		return ErrNotFocusable
	}
	p.focused = true
	return nil
}

func (p *Picker) Blur() {
	if p == nil {
		return
	}
	p.focused = false
}

func (p *Picker) Focused() bool {
	return p != nil && p.focused
}

func (p *Picker) CursorUp() {
	if p == nil {
		return
	}
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Picker) CursorDown() {
	if p == nil {
		return
	}
	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
		return
	}
	if p.cursor < maxIdx {
		p.cursor++
	}
}

// SetCursor moves the cursor to idx within the filtered items.
func (p *Picker) SetCursor(idx int) bool {
	if p == nil || idx < 0 || idx >= len(p.filtered) {
		return false
	}
	p.cursor = idx
	return true
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if p == nil || len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	idx := min(max(p.cursor, 0), len(p.filtered)-1)
	return p.filtered[idx], true
}

// ItemAt returns the filtered item at idx.
func (p *Picker) ItemAt(idx int) (PickerItem, bool) {
	if p == nil || idx < 0 || idx >= len(p.filtered) {
		return PickerItem{}, false
	}
	return p.filtered[idx], true
}

// Window scrolls so the cursor is inside a viewport of rows items and returns
// the index of the first visible item.
func (p *Picker) Window(rows int) int {
	if p == nil || rows <= 0 {
		return 0
	}
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+rows {
		p.offset = p.cursor - rows + 1
	}
	if maxOffset := max(0, len(p.filtered)-rows); p.offset > maxOffset {
		p.offset = maxOffset
	}
	if p.offset < 0 {
		p.offset = 0
	}
	return p.offset
}

func (p *Picker) HandleKey(keyName string) PickerResult {
	if p == nil {
		return PickerResult{Action: PickerActionNone}
	}
	switch keyName {
	case "k", "up":
		return p.move(p.CursorUp)
	case "j", "down":
		return p.move(p.CursorDown)
	case "home":
		return p.move(func() { p.cursor = 0 })
	case "end":
		return p.move(func() { p.cursor = max(0, len(p.filtered)-1) })
	case "enter":
		item, ok := p.CurrentItem()
		if !ok {
			return PickerResult{Action: PickerActionNone}
		}
		return PickerResult{Action: PickerActionSelected, Item: item}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
			return PickerResult{Action: PickerActionFiltered}
		}
		return PickerResult{Action: PickerActionNone}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
			return PickerResult{Action: PickerActionFiltered}
		}
		return PickerResult{Action: PickerActionNone}
	}
}

func (p *Picker) move(step func()) PickerResult {
	before := p.cursor
	step()
	if p.cursor != before {
		return PickerResult{Action: PickerActionMoved}
	}
	return PickerResult{Action: PickerActionNone}
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rebuildFiltered() {
	q := strings.TrimSpace(p.query)
	scored := make([]scoredPickerItem, 0, len(p.items))
	for idx, item := range p.items {
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		matched, score := fuzzyMatchScore(search, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredPickerItem{item: item, score: score, index: idx})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	out := make([]PickerItem, 0, len(scored))
	for _, row := range scored {
		out = append(out, row.item)
	}
	p.filtered = out

	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
	} else if p.cursor > maxIdx {
		p.cursor = maxIdx
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.offset = min(p.offset, max(0, maxIdx))
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
