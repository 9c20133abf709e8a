package usecase_test

import (
	"time"

	"bands-console/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

var pngData = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func testLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

func testRoles() []domain.RoleSnapshot {
	return []domain.RoleSnapshot{
		{ID: "president", Name: "president", DisplayName: "Président", Weight: 100, MaxUsers: intPtr(1), UserCount: 1},
		{ID: "treasurer", Name: "treasurer", DisplayName: "Trésorier", Weight: 50, MaxUsers: intPtr(2), UserCount: 1},
		{ID: "member", Name: "member", DisplayName: "Membre", Weight: 1},
	}
}

func testBadges() []domain.BadgeDefinition {
	return []domain.BadgeDefinition{
		{ID: "founder", Name: "Founder", Color: "#ffcc00"},
		{ID: "sound", Name: "Sound engineer", Color: "#00aaff"},
	}
}

func testCatalog() domain.Catalog {
	return domain.Catalog{Roles: testRoles(), Badges: testBadges()}
}

func personalInfo() domain.PersonalInfo {
	return domain.PersonalInfo{
		FirstName: "Alice",
		LastName:  "Martin",
		Email:     "Alice.Martin@ISEP.fr ",
		BirthDate: "2002-05-17",
		Promotion: "2026",
	}
}

func reviewWizard() *domain.Wizard {
	w := &domain.Wizard{
		ID:   "w1",
		Step: domain.StepReview,
		Form: domain.UserFormData{
			Profile: domain.Profile{
				PersonalInfo: personalInfo(),
				Status:       domain.StatusCurrent,
				Instruments:  domain.InstrumentList{},
				Roles:        domain.RoleSelection{"member"},
				Badges:       domain.BadgeList{},
				Preferences:  domain.Preferences{EmailNotifications: true},
			},
			TemporaryPassword: "Ab3dEf7h",
		},
		Catalog: testCatalog(),
	}
	return w
}

func testUser(id string, status domain.MemberStatus) *domain.User {
	return &domain.User{
		ID: id,
		Profile: domain.Profile{
			PersonalInfo: personalInfo(),
			Status:       status,
			Avatar:       strPtr("https://cdn.example.com/old.png"),
			Instruments:  domain.InstrumentList{},
			Roles:        domain.RoleSelection{"treasurer"},
			Badges: domain.BadgeList{
				{ID: "b1", BadgeDefinitionID: strPtr("founder"), Name: "Founder"},
			},
			Preferences: domain.Preferences{EmailNotifications: true},
		},
	}
}

func editSession(userID, currentUserID string, status domain.MemberStatus) *domain.EditSession {
	s := &domain.EditSession{ID: "s1", UserID: userID, CurrentUserID: currentUserID, Catalog: testCatalog()}
	s.Saved(*testUser(userID, status), s.UpdatedAt)
	return s
}
