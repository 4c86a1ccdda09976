package database

import (
	"log"
	"strings"

	"github.com/alexvr-dev/code_tutors/models"
	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "Password123"

type userFixture struct {
	Username             string
	Email                string
	FirstName            string
	LastName             string
	IsStaff              bool
	IsTutor              bool
	LanguagesSpecialised []string
}

var userFixtures = []userFixture{
	{Username: "@johndoe", Email: "john.doe@example.org", FirstName: "John", LastName: "Doe", IsStaff: true},
	{Username: "@janedoe", Email: "jane.doe@example.org", FirstName: "Jane", LastName: "Doe", IsTutor: true, LanguagesSpecialised: []string{"Python", "Java"}},
	{Username: "@charlie", Email: "charlie.johnson@example.org", FirstName: "Charlie", LastName: "Johnson"},
}

// Seed creates the sample users used in development and demos. Existing rows
// are left alone so seeding is repeatable.
func Seed() {
	for _, fixture := range userFixtures {
		if err := seedUser(fixture); err != nil {
			log.Printf("🔥 Failed to seed user %s: %v", fixture.Username, err)
		}
	}
	log.Println("✅ Sample data seeded")
}

func seedUser(fixture userFixture) error {
	var count int64
	if err := DB.Model(&models.User{}).Where("username = ?", fixture.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username:  fixture.Username,
		Email:     fixture.Email,
		FirstName: fixture.FirstName,
		LastName:  fixture.LastName,
		Password:  string(hashedPassword),
		IsStaff:   fixture.IsStaff,
		IsTutor:   fixture.IsTutor,
	}
	if err := DB.Create(&user).Error; err != nil {
		return err
	}

	if fixture.IsTutor {
		return DB.Create(&models.Tutor{
			UserID:               user.ID,
			LanguagesSpecialised: strings.Join(fixture.LanguagesSpecialised, ", "),
		}).Error
	}
	if !fixture.IsStaff {
		return DB.Create(&models.Tutee{UserID: user.ID}).Error
	}
	return nil
}

// Unseed removes the fixture users and everything cascading from them.
func Unseed() {
	for _, fixture := range userFixtures {
		var user models.User
		if err := DB.Where("username = ?", fixture.Username).First(&user).Error; err != nil {
			continue
		}

		DB.Where("user_id = ?", user.ID).Delete(&models.Tutor{})
		DB.Where("user_id = ?", user.ID).Delete(&models.Tutee{})
		if err := DB.Delete(&user).Error; err != nil {
			log.Printf("🔥 Failed to unseed user %s: %v", fixture.Username, err)
		}
	}
	log.Println("✅ Sample data removed")
}
