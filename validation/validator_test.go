package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bousai_recommend/models"
)

func validProfile() models.HouseholdProfile {
	return models.HouseholdProfile{
		FamilySize:          3,
		HousingType:         models.HousingApartment,
		Region:              "関東",
		Budget:              20000,
		CurrentPreparedness: models.PreparednessNone,
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	p := validProfile()
	assert.Nil(t, ValidateStruct(&p))

	// 地域可以是任意字符串，包括空串
	p.Region = ""
	assert.Nil(t, ValidateStruct(&p))

	p.HousingType = models.HousingDetachedHouse
	assert.Nil(t, ValidateStruct(&p))
}

func TestValidateStruct_Invalid(t *testing.T) {
	p := validProfile()
	p.FamilySize = 0
	p.Budget = 0
	p.HousingType = "castle"
	p.CurrentPreparedness = "full"

	verr := ValidateStruct(&p)
	require.NotNil(t, verr)
	require.Len(t, verr.Fields, 4)

	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Tag
	}
	assert.Equal(t, "min", fields["familySize"])
	assert.Equal(t, "gt", fields["budget"])
	assert.Equal(t, "oneof", fields["housingType"])
	assert.Equal(t, "oneof", fields["currentPreparedness"])
	assert.Contains(t, verr.Error(), "budget must be greater than 0")
}
