// Package tickets derives the rows a ticket table shows and mediates the
// row-level actions (menu, edit, delete) against the backend.
package tickets

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"helpdesk/internal/domain"
)

// SortKey names a sortable column.
type SortKey string

const (
	SortID       SortKey = "id"
	SortType     SortKey = "type"
	SortStatus   SortKey = "status"
	SortPriority SortKey = "priority"
)

// ParseSortKey reads a column name in any case. Empty means id.
func ParseSortKey(raw string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(raw))); k {
	case "":
		return SortID, nil
	case SortID, SortType, SortStatus, SortPriority:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort column %q (want id, type, status or priority)", raw)
}

// Direction is the tri-state sort direction.
type Direction int

const (
	DirectionNone Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// Sort is the active sort column. At most one column is active at a time.
type Sort struct {
	Key       SortKey
	Direction Direction
}

// Active reports whether the sort reorders anything beyond the id base order.
func (s Sort) Active() bool {
	return s.Direction != DirectionNone && s.Key != "" && s.Key != SortID
}

// Indicator returns the header glyph for column key.
func (s Sort) Indicator(key SortKey) string {
	if s.Key != key {
		return "↕"
	}
	switch s.Direction {
	case Ascending:
		return "↑"
	case Descending:
		return "↓"
	default:
		return "↕"
	}
}

// ToggleSort advances the tri-state toggle for key: a new column starts
// ascending, ascending turns descending, descending turns the sort off.
func ToggleSort(s Sort, key SortKey) Sort {
	if s.Key != key || s.Direction == DirectionNone {
		return Sort{Key: key, Direction: Ascending}
	}
	if s.Direction == Ascending {
		return Sort{Key: key, Direction: Descending}
	}
	return Sort{Key: key, Direction: DirectionNone}
}

// Entries is how many rows the table shows. All (zero) shows every row.
type Entries int

// All shows every matching row.
const All Entries = 0

// EntryOptions is the cycle offered by the entries selector.
var EntryOptions = []Entries{5, 10, 15, All}

// DefaultEntries is the initial page size.
const DefaultEntries Entries = 5

func (e Entries) String() string {
	if e <= All {
		return "All"
	}
	return strconv.Itoa(int(e))
}

// Next returns the following option in EntryOptions. Values outside the
// cycle restart it.
func (e Entries) Next() Entries {
	for i, opt := range EntryOptions {
		if opt == e {
			return EntryOptions[(i+1)%len(EntryOptions)]
		}
	}
	return EntryOptions[0]
}

// ParseEntries reads "all" or a positive integer.
func ParseEntries(raw string) (Entries, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "all") {
		return All, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("entries must be a positive number or \"all\", got %q", raw)
	}
	return Entries(n), nil
}

// TypeFilter narrows the list to one ticket type, as the agent queues do.
type TypeFilter int

const (
	FilterAll TypeFilter = iota
	FilterService
	FilterAsset
)

func (f TypeFilter) String() string {
	switch f {
	case FilterService:
		return string(domain.TypeService)
	case FilterAsset:
		return string(domain.TypeAsset)
	default:
		return "All"
	}
}

// Next cycles All → Service → Asset → All.
func (f TypeFilter) Next() TypeFilter {
	return (f + 1) % 3
}

// Matches reports whether a ticket of type t passes the filter.
func (f TypeFilter) Matches(t domain.TicketType) bool {
	switch f {
	case FilterService:
		return t == domain.TypeService
	case FilterAsset:
		return t == domain.TypeAsset
	default:
		return true
	}
}

// ParseTypeFilter reads "all", "service" or "asset" in any case.
func ParseTypeFilter(raw string) (TypeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return FilterAll, nil
	case "service":
		return FilterService, nil
	case "asset":
		return FilterAsset, nil
	}
	return FilterAll, fmt.Errorf("unknown ticket type filter %q", raw)
}

// State is the view state a table is rendered from.
type State struct {
	Search  string
	Sort    Sort
	Entries Entries
	Type    TypeFilter
}

// DefaultState is the state a freshly mounted dashboard starts in.
func DefaultState() State {
	return State{Entries: DefaultEntries}
}

// ToggleSort applies the tri-state toggle to the state's sort.
func (s *State) ToggleSort(key SortKey) {
	s.Sort = ToggleSort(s.Sort, key)
}

// CycleEntries moves to the next entries option.
func (s *State) CycleEntries() {
	s.Entries = s.Entries.Next()
}

// Display computes the rows to render. It is recomputed from scratch on every
// call and never modifies tickets.
func Display(tickets []domain.Ticket, st State) []domain.Ticket {
	result := FilterType(tickets, st.Type)
	result = FilterTitle(result, st.Search)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	if st.Sort.Active() {
		cmp := comparator(st.Sort.Key)
		desc := st.Sort.Direction == Descending
		sort.SliceStable(result, func(i, j int) bool {
			c := cmp(result[i], result[j])
			if desc {
				c = -c
			}
			return c < 0
		})
	}

	if st.Entries > All && len(result) > int(st.Entries) {
		result = result[:st.Entries]
	}
	return result
}

// FilterTitle keeps tickets whose title contains term, ignoring case. The
// result is a new slice; an empty term keeps everything.
func FilterTitle(tickets []domain.Ticket, term string) []domain.Ticket {
	needle := strings.ToLower(term)
	result := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if needle == "" || strings.Contains(strings.ToLower(t.Title), needle) {
			result = append(result, t)
		}
	}
	return result
}

// FilterType keeps tickets matching f. The result is a new slice.
func FilterType(tickets []domain.Ticket, f TypeFilter) []domain.Ticket {
	result := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f.Matches(t.Type) {
			result = append(result, t)
		}
	}
	return result
}

// comparator returns a three-way comparison for key. Priority compares by
// rank; every other column compares the raw string.
func comparator(key SortKey) func(a, b domain.Ticket) int {
	switch key {
	case SortPriority:
		return func(a, b domain.Ticket) int {
			return compareInt(a.Priority.Rank(), b.Priority.Rank())
		}
	case SortType:
		return func(a, b domain.Ticket) int {
			return strings.Compare(string(a.Type), string(b.Type))
		}
	case SortStatus:
		return func(a, b domain.Ticket) int {
			return strings.Compare(string(a.Status), string(b.Status))
		}
	default:
		return func(a, b domain.Ticket) int {
			return compareInt(a.ID, b.ID)
		}
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
