package dto

// TabResponse is one open tab in a strip.
type TabResponse struct {
	EntityID string `json:"entity_id"`
	Kind     string `json:"kind"`
	Active   bool   `json:"active"`
}

// TabListResponse is a full strip in insertion order.
type TabListResponse struct {
	Tabs     []TabResponse `json:"tabs"`
	ActiveID *string       `json:"active_id"`
}

// ActivateTabResponse pairs the activated tab with the rendered detail
// pane for its kind; exactly one of Patient and Drug is set.
type ActivateTabResponse struct {
	Tab     TabResponse          `json:"tab"`
	Patient *ChartDetailResponse `json:"patient,omitempty"`
	Drug    *DrugDetailResponse  `json:"drug,omitempty"`
}

// SelectionResponse reports what the detail pane should show after a
// close: the replacement active tab, or the underlying list view when
// no tabs remain.
type SelectionResponse struct {
	Active   *TabResponse `json:"active"`
	ShowList bool         `json:"show_list"`
}
