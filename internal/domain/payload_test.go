package domain_test

import (
	"encoding/json"
	"testing"

	"bands-console/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreatePayload_StripsEmptyOptionals(t *testing.T) {
	form := domain.UserFormData{
		Profile: domain.Profile{
			PersonalInfo: domain.PersonalInfo{
				FirstName:   " Jean ",
				LastName:    "Dupont",
				Email:       " Jean@ISEP.fr ",
				PhoneNumber: "06 12-34.56 78",
				BirthDate:   "2000-01-31",
				Promotion:   "I1",
			},
			Instruments: domain.InstrumentList{{Instrument: "guitar", Level: domain.LevelIntermediate, IsPrimary: true}},
			Badges: domain.BadgeList{
				{ID: "tmp-1", Name: "Rookie"},
			},
		},
		TemporaryPassword: "abcd1234",
	}

	p, err := domain.BuildCreatePayload(form, nil)
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "jean@isep.fr", raw["email"])
	assert.Equal(t, "0612345678", raw["phone"])
	assert.Equal(t, "2000-01-31", raw["birthDate"])
	assert.Equal(t, "CURRENT", raw["status"])
	assert.Contains(t, raw, "photoUrl")
	assert.Nil(t, raw["photoUrl"])
	assert.NotContains(t, raw, "biography")
	assert.NotContains(t, raw, "instagram")

	instruments := raw["instruments"].([]any)
	assert.Equal(t, "INTERMEDIATE", instruments[0].(map[string]any)["level"])

	badges := raw["badges"].([]any)
	assert.NotContains(t, badges[0].(map[string]any), "id")
	assert.Equal(t, []any{}, raw["roles"])
}

func TestBuildUpdatePayload_NullPhoto(t *testing.T) {
	empty := "  "
	p, err := domain.BuildUpdatePayload(domain.Profile{
		PersonalInfo: domain.PersonalInfo{FirstName: "A", LastName: "B", Email: "a@b.c"},
		Status:       domain.StatusSuspended,
		Avatar:       &empty,
		Roles:        domain.RoleSelection{"member"},
		Badges: domain.BadgeList{
			{ID: "srv-42", BadgeDefinitionID: strPtr("founder"), Name: "Founder"},
		},
	})
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Contains(t, raw, "photoUrl")
	assert.Nil(t, raw["photoUrl"])
	assert.Equal(t, "SUSPENDED", raw["status"])
	assert.Equal(t, []any{"member"}, raw["roles"])

	badge := raw["badges"].([]any)[0].(map[string]any)
	assert.Equal(t, "srv-42", badge["id"])
	assert.Equal(t, "founder", badge["badgeDefinitionId"])
	assert.NotContains(t, badge, "name")
}

func TestBuildCreatePayload_ClearedPhotoSendsNull(t *testing.T) {
	w := domain.NewWizard("w1", domain.Catalog{}, "abcd1234", wizardNow)
	fillPersonal(t, w, map[string]string{
		"firstName": "Jean", "lastName": "Dupont", "email": "jean@isep.fr",
		"birthDate": "2000-01-31", "promotion": "I1",
	})
	w.AttachPhoto(domain.PhotoFile{FileName: "jean.png", ContentType: "image/png", Data: []byte("png")}, wizardNow)
	require.NoError(t, w.Apply(domain.SetPhoto{URL: "https://cdn/jean.png"}, wizardNow))
	require.NoError(t, w.Apply(domain.ClearPhoto{}, wizardNow))

	p, err := domain.BuildCreatePayload(w.Form, w.Form.Avatar)
	require.NoError(t, err)
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "photoUrl")
	assert.Nil(t, raw["photoUrl"])
	assert.Nil(t, w.PendingPhoto)
}

func TestBuildUpdatePayload_ClearedPromotionSendsNull(t *testing.T) {
	p, err := domain.BuildUpdatePayload(domain.Profile{
		PersonalInfo: domain.PersonalInfo{FirstName: "A", LastName: "B", Email: "a@b.c", Promotion: " "},
		Status:       domain.StatusCurrent,
	})
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "promotion")
	assert.Nil(t, raw["promotion"])
}

func TestParseBirthDate(t *testing.T) {
	d, err := domain.ParseBirthDate("1999-12-24T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "1999-12-24", d.Time.Format("2006-01-02"))

	d, err = domain.ParseBirthDate(" ")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = domain.ParseBirthDate("24/12/1999")
	assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)

	assert.Equal(t, "1999-12-24", domain.FormatBirthDate("1999-12-24T00:00:00.000Z"))
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "+33612345678", domain.CleanPhone("0033 (6) 12 34 56 78"))
	assert.Equal(t, "+33612345678", domain.CleanPhone("+33 6.12.34.56.78"))
}

func TestToHTTPError(t *testing.T) {
	httpErr, ok := domain.ToHTTPError(&domain.ValidationError{Fields: map[string]string{"email": "required"}})
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", httpErr.Code)

	httpErr, ok = domain.ToHTTPError(domain.ErrRoleFull)
	require.True(t, ok)
	assert.Equal(t, "ROLE_FULL", httpErr.Code)

	_, ok = domain.ToHTTPError(assert.AnError)
	assert.False(t, ok)
}

func strPtr(v string) *string { return &v }
