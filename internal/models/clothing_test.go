package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClothingEnums(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, ClothingCategory("saree").Valid())

	for _, s := range Sizes {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ClothingSize("XXXL").Valid())
	assert.False(t, ClothingSize("xs").Valid(), "sizes are case sensitive")

	for _, c := range Conditions {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, ClothingCondition("worn").Valid())
}

func TestAppRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.False(t, AppRole("moderator").Valid())
}
