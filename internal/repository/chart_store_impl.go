package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"digital-hospital-sim/internal/domain/entity"
	domainRepo "digital-hospital-sim/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const chartKeyPrefix = "charts:"

type chartStore struct {
	client *redis.Client
}

// NewChartStore persists edited charts in Redis under a
// username-scoped key, the server-side stand-in for per-user browser
// storage. Saved copies survive logout so a returning user sees their
// own edits again.
func NewChartStore(client *redis.Client) domainRepo.ChartStore {
	return &chartStore{client: client}
}

func (s *chartStore) Save(ctx context.Context, username string, chart *entity.Chart) error {
	data, err := json.Marshal(chart)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s%s:%s", chartKeyPrefix, username, chart.PatientNumber)
	return s.client.Set(ctx, key, data, 0).Err()
}

func (s *chartStore) Load(ctx context.Context, username string, patientNumber string) (*entity.Chart, error) {
	key := fmt.Sprintf("%s%s:%s", chartKeyPrefix, username, patientNumber)
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var chart entity.Chart
	if err := json.Unmarshal(data, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}
