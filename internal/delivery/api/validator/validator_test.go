package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingForm struct {
	Name         string  `json:"name" validate:"required,min=3"`
	Price        float64 `json:"price" validate:"gt=0"`
	ValidityDays int     `json:"validityDays" validate:"min=1,max=7"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&listingForm{Name: "TV", Price: 0, ValidityDays: 9})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"name":         "min=3",
		"price":        "gt=0",
		"validityDays": "max=7",
	}, Details(err))

	assert.NoError(t, v.Validate(&listingForm{Name: "Television", Price: 10, ValidityDays: 7}))
	assert.Nil(t, Details(assert.AnError))
}
