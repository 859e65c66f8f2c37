package converter

import (
	"digital-hospital-sim/internal/delivery/dto"
	"digital-hospital-sim/internal/domain/entity"
)

// TabToResponse converts one open tab to its DTO.
func TabToResponse(t *entity.Tab) *dto.TabResponse {
	if t == nil {
		return nil
	}
	return &dto.TabResponse{
		EntityID: t.EntityID,
		Kind:     string(t.Kind),
		Active:   t.Active,
	}
}

// TabsToListResponse converts a strip snapshot to its DTO, surfacing
// the active id separately for the tab bar.
func TabsToListResponse(tabs []entity.Tab) *dto.TabListResponse {
	resp := &dto.TabListResponse{Tabs: make([]dto.TabResponse, len(tabs))}
	for i, t := range tabs {
		resp.Tabs[i] = dto.TabResponse{
			EntityID: t.EntityID,
			Kind:     string(t.Kind),
			Active:   t.Active,
		}
		if t.Active {
			id := t.EntityID
			resp.ActiveID = &id
		}
	}
	return resp
}
