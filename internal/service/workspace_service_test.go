package service

import (
	"sync"
	"sync/atomic"
	"testing"

	"digital-hospital-sim/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestManager() *WorkspaceManager {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewWorkspaceManager(log)
}

func TestWorkspaceManagerGetReturnsSameInstance(t *testing.T) {
	m := newTestManager()

	a := m.Get("sn001")
	b := m.Get("sn001")
	other := m.Get("sn002")

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
	assert.Equal(t, "sn001", a.Username())
}

func TestEnsureChartCachesFirstLoad(t *testing.T) {
	ws := newTestManager().Get("sn001")
	var calls int32

	load := func() (*entity.Chart, error) {
		atomic.AddInt32(&calls, 1)
		return &entity.Chart{PatientNumber: "100001"}, nil
	}

	first, err := ws.EnsureChart("100001", load)
	assert.NoError(t, err)
	second, err := ws.EnsureChart("100001", load)
	assert.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestEnsureChartCoalescesConcurrentLoads(t *testing.T) {
	ws := newTestManager().Get("sn001")
	var calls int32
	release := make(chan struct{})

	load := func() (*entity.Chart, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return &entity.Chart{PatientNumber: "100001"}, nil
	}

	var wg sync.WaitGroup
	results := make([]*entity.Chart, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := ws.EnsureChart("100001", load)
			assert.NoError(t, err)
			results[i] = c
		}(i)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "pending fetch is shared, not repeated")
	for _, c := range results {
		assert.Same(t, results[0], c)
	}
}

func TestEnsureChartMissingRecord(t *testing.T) {
	ws := newTestManager().Get("sn001")

	_, err := ws.EnsureChart("999999", func() (*entity.Chart, error) {
		return nil, nil
	})

	assert.ErrorIs(t, err, ErrRecordMissing)
	_, ok := ws.Chart("999999")
	assert.False(t, ok, "a missing record caches nothing")
}

func TestEnsureChartLoaderErrorNotCached(t *testing.T) {
	ws := newTestManager().Get("sn001")
	var calls int32

	failing := func() (*entity.Chart, error) {
		atomic.AddInt32(&calls, 1)
		return nil, assert.AnError
	}

	_, err := ws.EnsureChart("100001", failing)
	assert.Error(t, err)

	// A later attempt retries the load instead of caching the failure.
	c, err := ws.EnsureChart("100001", func() (*entity.Chart, error) {
		return &entity.Chart{PatientNumber: "100001"}, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "100001", c.PatientNumber)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestEnsureDrugMirrorsChartBehavior(t *testing.T) {
	ws := newTestManager().Get("sn001")
	var calls int32

	load := func() (*entity.Drug, error) {
		atomic.AddInt32(&calls, 1)
		return &entity.Drug{ID: "morphine", Name: "Morphine"}, nil
	}

	first, err := ws.EnsureDrug("morphine", load)
	assert.NoError(t, err)
	second, err := ws.EnsureDrug("morphine", load)
	assert.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, err = ws.EnsureDrug("unknown", func() (*entity.Drug, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrRecordMissing)
}

func TestUpdateChartMutatesCachedRecord(t *testing.T) {
	ws := newTestManager().Get("sn001")
	ws.EnsureChart("100001", func() (*entity.Chart, error) {
		return &entity.Chart{PatientNumber: "100001"}, nil
	})

	updated, ok := ws.UpdateChart("100001", func(c *entity.Chart) {
		c.ToggleAssignment("sn001")
	})

	assert.True(t, ok)
	assert.True(t, updated.IsAssigned("sn001"))

	cached, _ := ws.Chart("100001")
	assert.True(t, cached.IsAssigned("sn001"))
}

func TestUpdateChartUnknownPatient(t *testing.T) {
	ws := newTestManager().Get("sn001")

	_, ok := ws.UpdateChart("999999", func(c *entity.Chart) {})

	assert.False(t, ok)
}

func TestLoadedChartsOrderedByPatientNumber(t *testing.T) {
	ws := newTestManager().Get("sn001")
	for _, pn := range []string{"100003", "100001", "100002"} {
		pn := pn
		ws.EnsureChart(pn, func() (*entity.Chart, error) {
			return &entity.Chart{PatientNumber: pn}, nil
		})
	}

	charts := ws.LoadedCharts()

	assert.Len(t, charts, 3)
	assert.Equal(t, "100001", charts[0].PatientNumber)
	assert.Equal(t, "100002", charts[1].PatientNumber)
	assert.Equal(t, "100003", charts[2].PatientNumber)
}

func TestCloseTabKeepsRegistryEntry(t *testing.T) {
	ws := newTestManager().Get("sn001")
	ws.EnsureChart("100001", func() (*entity.Chart, error) {
		return &entity.Chart{PatientNumber: "100001"}, nil
	})
	ws.OpenTab(entity.TabKindPatient, "100001")

	ws.CloseTab(entity.TabKindPatient, "100001")

	_, ok := ws.Chart("100001")
	assert.True(t, ok, "closing a tab never evicts the cached record")
}

func TestWorkspaceReset(t *testing.T) {
	m := newTestManager()
	ws := m.Get("sn001")
	ws.OpenTab(entity.TabKindPatient, "100001")
	ws.OpenTab(entity.TabKindDrug, "morphine")
	ws.EnsureChart("100001", func() (*entity.Chart, error) {
		return &entity.Chart{PatientNumber: "100001"}, nil
	})

	m.Reset("sn001")

	assert.Empty(t, ws.Tabs(entity.TabKindPatient))
	assert.Empty(t, ws.Tabs(entity.TabKindDrug))
	assert.Empty(t, ws.LoadedCharts())
	_, ok := ws.Chart("100001")
	assert.False(t, ok)
}
