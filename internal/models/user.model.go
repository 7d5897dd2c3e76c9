package models

type User struct {
	BaseUUIDModel
	Email        string  `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"type:text;not null"             json:"-"`
	FullName     string  `gorm:"type:text;not null"             json:"fullName"`
	Phone        *string `gorm:"type:text"                      json:"phone,omitempty"`
	Hostel       *string `gorm:"type:text"                      json:"hostel,omitempty"`
	RoomNumber   *string `gorm:"type:text"                      json:"roomNumber,omitempty"`
	AvatarURL    *string `gorm:"type:text"                      json:"avatarUrl,omitempty"`
}

// UserProfile is the public view of a user returned by the API.
type UserProfile struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"fullName"`
	Phone      *string `json:"phone,omitempty"`
	Hostel     *string `json:"hostel,omitempty"`
	RoomNumber *string `json:"roomNumber,omitempty"`
	AvatarURL  *string `json:"avatarUrl,omitempty"`
	IsAdmin    bool    `json:"isAdmin"`
}

// ToProfile converts a User to its public profile. Admin status lives in
// the role store, so the caller supplies it.
func (u *User) ToProfile(isAdmin bool) UserProfile {
	return UserProfile{
		ID:         u.ID.String(),
		Email:      u.Email,
		FullName:   u.FullName,
		Phone:      u.Phone,
		Hostel:     u.Hostel,
		RoomNumber: u.RoomNumber,
		AvatarURL:  u.AvatarURL,
		IsAdmin:    isAdmin,
	}
}
