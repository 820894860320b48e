package models

// HousingType 住居类型
type HousingType string

const (
	HousingApartment     HousingType = "apartment"
	HousingHouse         HousingType = "house"
	HousingDetachedHouse HousingType = "detached-house"
	HousingMansion       HousingType = "mansion" // 旧版前端使用的取值
)

// Preparedness 当前的备蓄状况
type Preparedness string

const (
	PreparednessNone    Preparedness = "none"
	PreparednessBasic   Preparedness = "basic"
	PreparednessPartial Preparedness = "partial"
)

// HouseholdProfile 家庭的防灾准备信息，每个请求一份，只读
type HouseholdProfile struct {
	FamilySize          int          `json:"familySize" validate:"min=1" example:"4"`
	HousingType         HousingType  `json:"housingType" validate:"oneof=apartment house detached-house mansion" example:"apartment"`
	Region              string       `json:"region" example:"関東"`
	HasElderly          bool         `json:"hasElderly" example:"false"`
	HasChildren         bool         `json:"hasChildren" example:"true"`
	HasPets             bool         `json:"hasPets" example:"false"`
	Budget              int64        `json:"budget" validate:"gt=0" example:"30000"`
	CurrentPreparedness Preparedness `json:"currentPreparedness" validate:"oneof=none basic partial" example:"none"`
}

// HousingLabel 住居类型在提示词中使用的日文名称
func (p HouseholdProfile) HousingLabel() string {
	switch p.HousingType {
	case HousingApartment:
		return "アパート"
	case HousingHouse:
		return "戸建て"
	case HousingDetachedHouse:
		return "一戸建て"
	case HousingMansion:
		return "マンション"
	default:
		return string(p.HousingType)
	}
}

// PreparednessLabel 备蓄状况在提示词中使用的日文名称
func (p HouseholdProfile) PreparednessLabel() string {
	switch p.CurrentPreparedness {
	case PreparednessNone:
		return "備蓄なし"
	case PreparednessBasic:
		return "最低限の備蓄あり"
	case PreparednessPartial:
		return "一部備蓄あり"
	default:
		return string(p.CurrentPreparedness)
	}
}
