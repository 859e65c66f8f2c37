package service

import (
	"errors"
	"sort"
	"sync"

	"digital-hospital-sim/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ErrRecordMissing is returned by ensure-loads whose loader produced no
// record; callers remove the referencing tab instead of rendering it.
var ErrRecordMissing = errors.New("record has no backing data")

// Workspace is the per-user application state: two tab strips and the
// registries of loaded charts and drug monographs. Tab lifecycle and
// registry lifecycle are independent; closing a tab never evicts the
// cached record. A workspace lives from login to logout.
//
// All tab and registry mutations go through the workspace mutex; loads
// are additionally coalesced per id so a second request for a chart
// whose fetch is still pending reuses the first fetch.
type Workspace struct {
	username string

	mu          sync.Mutex
	patientTabs *entity.TabSet
	drugTabs    *entity.TabSet
	charts      map[string]*entity.Chart
	drugs       map[string]*entity.Drug

	flight singleflight.Group
}

func newWorkspace(username string) *Workspace {
	return &Workspace{
		username:    username,
		patientTabs: entity.NewTabSet(entity.TabKindPatient),
		drugTabs:    entity.NewTabSet(entity.TabKindDrug),
		charts:      map[string]*entity.Chart{},
		drugs:       map[string]*entity.Drug{},
	}
}

// Username returns the owner of this workspace.
func (w *Workspace) Username() string {
	return w.username
}

func (w *Workspace) tabSet(kind entity.TabKind) *entity.TabSet {
	if kind == entity.TabKindDrug {
		return w.drugTabs
	}
	return w.patientTabs
}

// OpenTab ensures a tab exists for the id without activating it.
func (w *Workspace) OpenTab(kind entity.TabKind, entityID string) entity.Tab {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.tabSet(kind).Open(entityID)
}

// ActivateTab marks the tab active, deactivating siblings of the same
// kind. It reports false when no tab is open for the id.
func (w *Workspace) ActivateTab(kind entity.TabKind, entityID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tabSet(kind).Activate(entityID)
}

// CloseTab removes the tab and returns the replacement selection per
// the close policy, or nil when nothing remains selected.
func (w *Workspace) CloseTab(kind entity.TabKind, entityID string) (*entity.Tab, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tabSet(kind).Close(entityID)
}

// Tabs returns the strip for the kind in insertion order.
func (w *Workspace) Tabs(kind entity.TabKind) []entity.Tab {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tabSet(kind).Tabs()
}

// ActiveTab returns the active tab for the kind, or nil.
func (w *Workspace) ActiveTab(kind entity.TabKind) *entity.Tab {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t := w.tabSet(kind).Active(); t != nil {
		copied := *t
		return &copied
	}
	return nil
}

// ContainsTab reports whether a tab is open for the id.
func (w *Workspace) ContainsTab(kind entity.TabKind, entityID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tabSet(kind).Contains(entityID)
}

// Chart returns the cached chart for the patient, if loaded.
func (w *Workspace) Chart(patientNumber string) (*entity.Chart, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.charts[patientNumber]
	return c, ok
}

// EnsureChart returns the cached chart or invokes the loader exactly
// once, even under concurrent calls for the same patient. A loader
// returning (nil, nil) yields ErrRecordMissing and caches nothing.
func (w *Workspace) EnsureChart(patientNumber string, load func() (*entity.Chart, error)) (*entity.Chart, error) {
	w.mu.Lock()
	if c, ok := w.charts[patientNumber]; ok {
		w.mu.Unlock()
		return c, nil
	}
	w.mu.Unlock()

	v, err, _ := w.flight.Do("patient:"+patientNumber, func() (interface{}, error) {
		c, err := load()
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, ErrRecordMissing
		}
		w.mu.Lock()
		// A duplicate flight after Forget keeps the first cached copy.
		if existing, ok := w.charts[patientNumber]; ok {
			c = existing
		} else {
			w.charts[patientNumber] = c
		}
		w.mu.Unlock()
		return c, nil
	})
	w.flight.Forget("patient:" + patientNumber)
	if err != nil {
		return nil, err
	}
	return v.(*entity.Chart), nil
}

// UpdateChart applies the mutator to the cached chart under the
// workspace lock and returns the updated record for re-render.
func (w *Workspace) UpdateChart(patientNumber string, mutate func(*entity.Chart)) (*entity.Chart, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.charts[patientNumber]
	if !ok {
		return nil, false
	}
	mutate(c)
	return c, true
}

// LoadedCharts returns every chart in the registry ordered by patient
// number, the documented iteration order for the assigned dashboard.
func (w *Workspace) LoadedCharts() []*entity.Chart {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*entity.Chart, 0, len(w.charts))
	for _, c := range w.charts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PatientNumber < out[j].PatientNumber
	})
	return out
}

// Drug returns the cached monograph for the id, if loaded.
func (w *Workspace) Drug(id string) (*entity.Drug, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.drugs[id]
	return d, ok
}

// EnsureDrug mirrors EnsureChart for drug monographs.
func (w *Workspace) EnsureDrug(id string, load func() (*entity.Drug, error)) (*entity.Drug, error) {
	w.mu.Lock()
	if d, ok := w.drugs[id]; ok {
		w.mu.Unlock()
		return d, nil
	}
	w.mu.Unlock()

	v, err, _ := w.flight.Do("drug:"+id, func() (interface{}, error) {
		d, err := load()
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, ErrRecordMissing
		}
		w.mu.Lock()
		if existing, ok := w.drugs[id]; ok {
			d = existing
		} else {
			w.drugs[id] = d
		}
		w.mu.Unlock()
		return d, nil
	})
	w.flight.Forget("drug:" + id)
	if err != nil {
		return nil, err
	}
	return v.(*entity.Drug), nil
}

// Reset drops both tab strips and both registries.
func (w *Workspace) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.patientTabs.Reset()
	w.drugTabs.Reset()
	w.charts = map[string]*entity.Chart{}
	w.drugs = map[string]*entity.Drug{}
}

// WorkspaceManager owns every live workspace, keyed by username.
// Login and logout reset the owning user's workspace through the
// manager, the single documented reset path.
type WorkspaceManager struct {
	log        *logrus.Logger
	workspaces sync.Map // map[string]*Workspace
}

func NewWorkspaceManager(log *logrus.Logger) *WorkspaceManager {
	return &WorkspaceManager{log: log}
}

// Get returns the workspace for the username, creating it on first use.
func (m *WorkspaceManager) Get(username string) *Workspace {
	if v, ok := m.workspaces.Load(username); ok {
		return v.(*Workspace)
	}
	v, _ := m.workspaces.LoadOrStore(username, newWorkspace(username))
	return v.(*Workspace)
}

// Reset clears the user's workspace state in place.
func (m *WorkspaceManager) Reset(username string) {
	if v, ok := m.workspaces.Load(username); ok {
		v.(*Workspace).Reset()
		m.log.Debugf("Workspace reset for %s", username)
	}
}
