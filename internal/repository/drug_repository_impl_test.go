package repository

import (
	"testing"

	"digital-hospital-sim/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSortDrugIndexByName(t *testing.T) {
	index := []entity.DrugSummary{
		{ID: "paracetamol", Name: "Paracetamol"},
		{ID: "amoxicillin", Name: "Amoxicillin"},
		{ID: "morphine", Name: "Morphine"},
	}

	sorted := sortDrugIndex(index)

	assert.Equal(t, "Amoxicillin", sorted[0].Name)
	assert.Equal(t, "Morphine", sorted[1].Name)
	assert.Equal(t, "Paracetamol", sorted[2].Name)
}

func TestSortDrugIndexIsCaseAware(t *testing.T) {
	index := []entity.DrugSummary{
		{ID: "b", Name: "ibuprofen"},
		{ID: "a", Name: "Ibuprofen SR"},
		{ID: "c", Name: "Ceftriaxone"},
	}

	sorted := sortDrugIndex(index)

	// Dictionary order, not byte order: lowercase names do not sink
	// below every uppercase name.
	assert.Equal(t, "Ceftriaxone", sorted[0].Name)
	assert.Equal(t, "ibuprofen", sorted[1].Name)
	assert.Equal(t, "Ibuprofen SR", sorted[2].Name)
}
