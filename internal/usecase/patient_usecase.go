package usecase

import (
	"context"
	"errors"
	"strings"

	"digital-hospital-sim/internal/converter"
	"digital-hospital-sim/internal/delivery/dto"
	"digital-hospital-sim/internal/domain/entity"
	"digital-hospital-sim/internal/domain/repository"
	"digital-hospital-sim/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	ListRoster() []dto.PatientRow
	GetChart(ctx context.Context, user *entity.User, patientNumber string) (*dto.ChartDetailResponse, error)
	UpdateChart(ctx context.Context, user *entity.User, patientNumber string, req *dto.UpdateChartRequest) (*dto.ChartDetailResponse, error)
	ToggleAssignment(ctx context.Context, user *entity.User, patientNumber string) (*dto.ToggleAssignmentResponse, error)
	ExportChart(ctx context.Context, user *entity.User, patientNumber string) (string, []byte, error)
}

type patientUsecase struct {
	log           *logrus.Logger
	rosterRepo    repository.RosterRepository
	chartRepo     repository.ChartRepository
	chartStore    repository.ChartStore
	workspaces    *service.WorkspaceManager
	exportService service.ExportService
}

func NewPatientUsecase(
	log *logrus.Logger,
	rosterRepo repository.RosterRepository,
	chartRepo repository.ChartRepository,
	chartStore repository.ChartStore,
	workspaces *service.WorkspaceManager,
	exportService service.ExportService,
) PatientUsecase {
	return &patientUsecase{
		log:           log,
		rosterRepo:    rosterRepo,
		chartRepo:     chartRepo,
		chartStore:    chartStore,
		workspaces:    workspaces,
		exportService: exportService,
	}
}

func (u *patientUsecase) ListRoster() []dto.PatientRow {
	patients := u.rosterRepo.List()
	rows := make([]dto.PatientRow, len(patients))
	for i := range patients {
		rows[i] = converter.PatientSummaryToRow(&patients[i])
	}
	return rows
}

// GetChart returns the rendered detail view model for the patient,
// lazily loading the chart into the session registry on first access.
func (u *patientUsecase) GetChart(ctx context.Context, user *entity.User, patientNumber string) (*dto.ChartDetailResponse, error) {
	chart, err := u.ensureChart(ctx, user, patientNumber)
	if err != nil {
		return nil, err
	}
	return converter.ChartToDetailResponse(chart, user), nil
}

// UpdateChart applies admin inline edits to the cached chart and
// persists the result under the editor's username.
func (u *patientUsecase) UpdateChart(ctx context.Context, user *entity.User, patientNumber string, req *dto.UpdateChartRequest) (*dto.ChartDetailResponse, error) {
	if _, err := u.ensureChart(ctx, user, patientNumber); err != nil {
		return nil, err
	}

	ws := u.workspaces.Get(user.Username)
	chart, ok := ws.UpdateChart(patientNumber, func(c *entity.Chart) {
		applyChartEdits(c, req)
	})
	if !ok {
		return nil, ErrPatientNotFound
	}

	if err := u.chartStore.Save(ctx, user.Username, chart); err != nil {
		u.log.Warnf("Failed to persist chart %s for %s: %+v", patientNumber, user.Username, err)
	}

	return converter.ChartToDetailResponse(chart, user), nil
}

// ToggleAssignment adds or removes the current user on the patient's
// assigned-nurses set and reports the new state.
func (u *patientUsecase) ToggleAssignment(ctx context.Context, user *entity.User, patientNumber string) (*dto.ToggleAssignmentResponse, error) {
	if _, err := u.ensureChart(ctx, user, patientNumber); err != nil {
		return nil, err
	}

	ws := u.workspaces.Get(user.Username)
	chart, ok := ws.UpdateChart(patientNumber, func(c *entity.Chart) {
		c.ToggleAssignment(user.Username)
	})
	if !ok {
		return nil, ErrPatientNotFound
	}

	if err := u.chartStore.Save(ctx, user.Username, chart); err != nil {
		u.log.Warnf("Failed to persist chart %s for %s: %+v", patientNumber, user.Username, err)
	}

	return &dto.ToggleAssignmentResponse{
		PatientNumber: patientNumber,
		IsAssigned:    chart.IsAssigned(user.Username),
	}, nil
}

// ExportChart renders the chart as a structured-text document named by
// patient number.
func (u *patientUsecase) ExportChart(ctx context.Context, user *entity.User, patientNumber string) (string, []byte, error) {
	chart, err := u.ensureChart(ctx, user, patientNumber)
	if err != nil {
		return "", nil, err
	}
	return u.exportService.Filename(chart), u.exportService.Render(chart), nil
}

// ensureChart resolves the chart for the patient through the session
// registry: saved per-user copy first, then the chart fixture, then
// fallback synthesis from the roster row. A patient absent from the
// roster has no backing record at all; the stale tab, if any, is
// removed so the caller never renders a broken pane.
func (u *patientUsecase) ensureChart(ctx context.Context, user *entity.User, patientNumber string) (*entity.Chart, error) {
	ws := u.workspaces.Get(user.Username)

	chart, err := ws.EnsureChart(patientNumber, func() (*entity.Chart, error) {
		row, err := u.rosterRepo.FindByPatientNumber(patientNumber)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, nil
		}

		saved, err := u.chartStore.Load(ctx, user.Username, patientNumber)
		if err != nil {
			u.log.Warnf("Failed to load saved chart %s for %s: %+v", patientNumber, user.Username, err)
		}
		if saved != nil {
			return entity.NormalizeChart(saved, row), nil
		}

		fixture, err := u.chartRepo.FindByPatientNumber(patientNumber)
		if err != nil {
			return nil, err
		}
		if fixture != nil {
			return entity.NormalizeChart(fixture, row), nil
		}

		return entity.ChartFromRoster(row), nil
	})
	if err != nil {
		if errors.Is(err, service.ErrRecordMissing) {
			ws.CloseTab(entity.TabKindPatient, patientNumber)
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to load chart %s: %+v", patientNumber, err)
		return nil, err
	}
	return chart, nil
}

// applyChartEdits carries the admin edit semantics: only non-nil
// fields apply; numeric fields parse empty or invalid input to nil;
// blanked allergies and precautions fall back to their documented
// defaults; the primary-diagnosis edit touches only the first
// diagnosis description.
func applyChartEdits(c *entity.Chart, req *dto.UpdateChartRequest) {
	d := &c.Demographics

	if req.FirstName != nil {
		d.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		d.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Gender != nil {
		d.Gender = strings.TrimSpace(*req.Gender)
	}
	if req.DateOfBirth != nil {
		d.DateOfBirth = strings.TrimSpace(*req.DateOfBirth)
	}
	if req.Age != nil {
		d.Age = entity.ParseAgeInput(*req.Age)
	}
	if req.Weight != nil {
		d.WeightKg = entity.ParseWeightInput(*req.Weight)
	}
	if req.Allergies != nil {
		v := strings.TrimSpace(*req.Allergies)
		if v == "" {
			v = entity.DefaultAllergies
		}
		d.Allergies = v
	}
	if req.Precautions != nil {
		v := strings.TrimSpace(*req.Precautions)
		if v == "" {
			v = entity.DefaultPrecautions
		}
		d.Precautions = v
	}
	if req.Unit != nil {
		d.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.Room != nil {
		d.Room = strings.TrimSpace(*req.Room)
	}
	if req.PrimaryDiagnosis != nil {
		c.SetPrimaryDiagnosis(strings.TrimSpace(*req.PrimaryDiagnosis))
	}
}
