package entity

// TabKind is the entity category a tab belongs to. Activation is
// scoped per kind: the patient strip and the drug strip each carry
// their own single active tab.
type TabKind string

const (
	TabKindPatient TabKind = "patient"
	TabKindDrug    TabKind = "drug"
)

// Valid reports whether k names a known tab kind.
func (k TabKind) Valid() bool {
	return k == TabKindPatient || k == TabKindDrug
}

// Tab is one open entry in a tab strip.
type Tab struct {
	EntityID string  `json:"entity_id"`
	Kind     TabKind `json:"kind"`
	Active   bool    `json:"active"`
}

// TabSet is the ordered collection of open tabs for one kind.
// Tabs are kept in insertion order; closing and reopening an id places
// it at the end again. At most one tab is active at any time.
//
// Opening and activating are decoupled: Open only guarantees the tab
// exists, Activate selects it. TabSet is not safe for concurrent use;
// callers serialize access per workspace.
type TabSet struct {
	kind TabKind
	tabs []*Tab
}

// NewTabSet returns an empty tab strip for the given kind.
func NewTabSet(kind TabKind) *TabSet {
	return &TabSet{kind: kind}
}

// Kind returns the entity category this strip holds.
func (s *TabSet) Kind() TabKind {
	return s.kind
}

func (s *TabSet) indexOf(entityID string) int {
	for i, t := range s.tabs {
		if t.EntityID == entityID {
			return i
		}
	}
	return -1
}

// Open ensures a tab exists for the id and returns it. The operation
// is idempotent: opening an already-open id never moves the tab or
// changes its active state. New tabs are appended inactive.
func (s *TabSet) Open(entityID string) *Tab {
	if i := s.indexOf(entityID); i != -1 {
		return s.tabs[i]
	}
	t := &Tab{EntityID: entityID, Kind: s.kind}
	s.tabs = append(s.tabs, t)
	return t
}

// Activate marks the tab for the id active and deactivates its
// siblings. It returns false when no tab is open for the id.
func (s *TabSet) Activate(entityID string) bool {
	idx := s.indexOf(entityID)
	if idx == -1 {
		return false
	}
	for i, t := range s.tabs {
		t.Active = i == idx
	}
	return true
}

// Close removes the tab for the id regardless of its active state.
//
// When the closed tab was active, the most-recently-opened remaining
// tab (last in insertion order) becomes active; with no tabs left the
// strip reports no selection and the caller falls back to the list
// view. Closing an inactive tab has no activation side effects.
//
// The returned tab is the active tab after the close, or nil when
// nothing is selected. The bool reports whether a tab was removed.
func (s *TabSet) Close(entityID string) (*Tab, bool) {
	idx := s.indexOf(entityID)
	if idx == -1 {
		return s.Active(), false
	}

	wasActive := s.tabs[idx].Active
	s.tabs = append(s.tabs[:idx], s.tabs[idx+1:]...)

	if wasActive && len(s.tabs) > 0 {
		last := s.tabs[len(s.tabs)-1]
		s.Activate(last.EntityID)
	}
	return s.Active(), true
}

// Active returns the currently active tab, or nil when none is.
func (s *TabSet) Active() *Tab {
	for _, t := range s.tabs {
		if t.Active {
			return t
		}
	}
	return nil
}

// Contains reports whether a tab is open for the id.
func (s *TabSet) Contains(entityID string) bool {
	return s.indexOf(entityID) != -1
}

// Tabs returns a snapshot of the strip in insertion order.
func (s *TabSet) Tabs() []Tab {
	out := make([]Tab, len(s.tabs))
	for i, t := range s.tabs {
		out[i] = *t
	}
	return out
}

// Len returns the number of open tabs.
func (s *TabSet) Len() int {
	return len(s.tabs)
}

// Reset closes every tab. Used on login and logout.
func (s *TabSet) Reset() {
	s.tabs = nil
}
