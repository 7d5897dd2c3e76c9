package seed

import (
	"rewear/config"
	. "rewear/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

// Seed loads development data: an admin, two students, and a few
// listings to browse. Safe to run repeatedly.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return log.Err("failed to hash seed password", err)
	}

	admin := User{
		Email:        "admin" + config.CampusEmailDomain,
		PasswordHash: string(hash),
		FullName:     "Campus Admin",
	}
	asha := User{
		Email:        "asha.verma" + config.CampusEmailDomain,
		PasswordHash: string(hash),
		FullName:     "Asha Verma",
		Hostel:       stringPtr("Aravali"),
		RoomNumber:   stringPtr("B-214"),
	}
	rohan := User{
		Email:        "rohan.mehta" + config.CampusEmailDomain,
		PasswordHash: string(hash),
		FullName:     "Rohan Mehta",
		Hostel:       stringPtr("Nilgiri"),
	}

	for _, user := range []*User{&admin, &asha, &rohan} {
		var existing User
		if err := db.First(&existing, "email = ?", user.Email).Error; err == nil {
			user.ID = existing.ID
			continue
		}
		log.Info("Seeding user", "email", user.Email)
		if err := db.Create(user).Error; err != nil {
			return log.Err("failed to create user", err, "email", user.Email)
		}
		if err := db.Create(&UserRole{UserID: user.ID, Role: RoleUser}).Error; err != nil {
			return log.Err("failed to grant user role", err, "email", user.Email)
		}
	}

	var adminRole UserRole
	if err := db.First(&adminRole, "user_id = ? AND role = ?", admin.ID, RoleAdmin).Error; err != nil {
		if err := db.Create(&UserRole{UserID: admin.ID, Role: RoleAdmin}).Error; err != nil {
			return log.Err("failed to grant admin role", err)
		}
	}

	items := []ClothingItem{
		{
			OwnerID:     asha.ID,
			Title:       "Black Blazer",
			Description: stringPtr("Formal blazer, worn twice for placements"),
			Category:    CategoryJacket,
			Size:        SizeM,
			Condition:   ConditionLikeNew,
			RentPerDay:  120,
			Status:      StatusAvailable,
		},
		{
			OwnerID:     asha.ID,
			Title:       "Blue Kurta",
			Description: stringPtr("Festive wear, good for ethnic day"),
			Category:    CategoryKurta,
			Size:        SizeS,
			Condition:   ConditionGood,
			RentPerDay:  60,
			Status:      StatusAvailable,
		},
		{
			OwnerID:    rohan.ID,
			Title:      "Denim Jacket",
			Category:   CategoryJacket,
			Size:       SizeL,
			Condition:  ConditionGood,
			RentPerDay: 80,
			Status:     StatusAvailable,
		},
	}

	for _, item := range items {
		var existing ClothingItem
		if err := db.First(&existing, "owner_id = ? AND title = ?", item.OwnerID, item.Title).Error; err == nil {
			continue
		}
		log.Info("Seeding item", "title", item.Title)
		if err := db.Create(&item).Error; err != nil {
			return log.Err("failed to create item", err, "title", item.Title)
		}
	}

	return nil
}
