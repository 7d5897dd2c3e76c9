package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ClothingCategory string

const (
	CategoryTshirt   ClothingCategory = "tshirt"
	CategoryShirt    ClothingCategory = "shirt"
	CategoryJacket   ClothingCategory = "jacket"
	CategoryHoodie   ClothingCategory = "hoodie"
	CategoryKurta    ClothingCategory = "kurta"
	CategoryDress    ClothingCategory = "dress"
	CategoryJeans    ClothingCategory = "jeans"
	CategoryTrousers ClothingCategory = "trousers"
	CategoryShorts   ClothingCategory = "shorts"
	CategoryEthnic   ClothingCategory = "ethnic"
	CategoryOther    ClothingCategory = "other"
)

var Categories = []ClothingCategory{
	CategoryTshirt, CategoryShirt, CategoryJacket, CategoryHoodie,
	CategoryKurta, CategoryDress, CategoryJeans, CategoryTrousers,
	CategoryShorts, CategoryEthnic, CategoryOther,
}

func (c ClothingCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type ClothingSize string

const (
	SizeXS  ClothingSize = "XS"
	SizeS   ClothingSize = "S"
	SizeM   ClothingSize = "M"
	SizeL   ClothingSize = "L"
	SizeXL  ClothingSize = "XL"
	SizeXXL ClothingSize = "XXL"
)

var Sizes = []ClothingSize{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}

func (s ClothingSize) Valid() bool {
	for _, known := range Sizes {
		if s == known {
			return true
		}
	}
	return false
}

type ClothingCondition string

const (
	ConditionNew     ClothingCondition = "new"
	ConditionLikeNew ClothingCondition = "like_new"
	ConditionGood    ClothingCondition = "good"
	ConditionFair    ClothingCondition = "fair"
)

var Conditions = []ClothingCondition{
	ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair,
}

func (c ClothingCondition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

// ClothingItem is a listing offered for rent. Descriptive fields are
// mutated only by the owner; Status is mutated only by the rental
// lifecycle (create rental, admin transition).
type ClothingItem struct {
	BaseUUIDModel
	OwnerID     uuid.UUID                   `gorm:"type:uuid;not null;index"                       json:"ownerId"`
	Owner       *User                       `gorm:"foreignKey:OwnerID"                             json:"owner,omitempty"`
	Title       string                      `gorm:"type:text;not null"                             json:"title"`
	Description *string                     `gorm:"type:text"                                      json:"description,omitempty"`
	Category    ClothingCategory            `gorm:"type:text;not null;index"                       json:"category"`
	Size        ClothingSize                `gorm:"type:text;not null;index"                       json:"size"`
	Condition   ClothingCondition           `gorm:"type:text;not null"                             json:"condition"`
	RentPerDay  int                         `gorm:"not null"                                       json:"rentPerDay"`
	Status      RentalStatus                `gorm:"type:text;not null;default:'available';index"   json:"status"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb"                                     json:"images"`
}

func (ClothingItem) TableName() string {
	return "clothes"
}
