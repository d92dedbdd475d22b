package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJob_SearchText(t *testing.T) {
	j := Job{Title: "Backend Engineer", CompanyName: "Acme", Skills: []string{"Go", "SQL"}}
	assert.Equal(t, "backend engineer acme go sql", j.SearchText())

	assert.Equal(t, "", Job{}.SearchText())
}

func TestJob_Location(t *testing.T) {
	assert.Equal(t, "Tunis, Tunisia", Job{LocationCity: "Tunis", LocationCountry: "Tunisia"}.Location())
	assert.Equal(t, "Tunis", Job{LocationCity: "Tunis"}.Location())
	assert.Equal(t, "Tunisia", Job{LocationCountry: "Tunisia"}.Location())
	assert.Equal(t, "", Job{}.Location())
}

func TestJobStatus_Valid(t *testing.T) {
	assert.True(t, JobPublished.Valid())
	assert.True(t, JobArchived.Valid())
	assert.False(t, JobStatus("open").Valid())
}

func TestApplication_CandidateName(t *testing.T) {
	a := Application{FirstName: "Amine", LastName: "Ben Salah"}
	assert.Equal(t, "Amine Ben Salah", a.CandidateName())
	assert.Equal(t, "Amine", Application{FirstName: "Amine"}.CandidateName())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "amine23", User{Username: "amine23", FullName: "Amine Ben Salah", Email: "amine@example.com"}.DisplayName())
	assert.Equal(t, "Amine Ben Salah", User{FullName: "Amine Ben Salah", Email: "amine@example.com"}.DisplayName())
	assert.Equal(t, "amine", User{Email: "amine@example.com"}.DisplayName())
	assert.Equal(t, "@example.com", User{Email: "@example.com"}.DisplayName())
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := &RegisterRequest{
		Email:       "amine@example.com",
		Password:    "hunter2hunter2",
		FirstName:   "Amine",
		LastName:    "Ben Salah",
		DateOfBirth: "1995-03-07",
		AccountType: AccountCandidate,
	}
	assert.NoError(t, valid.Validate())

	short := *valid
	short.Password = "short"
	assert.Error(t, short.Validate())

	badDate := *valid
	badDate.DateOfBirth = "07/03/1995"
	assert.Error(t, badDate.Validate())

	admin := *valid
	admin.AccountType = AccountAdmin
	assert.Error(t, admin.Validate(), "admin accounts cannot self-register")
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "a@b.com", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "not-an-email", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "a@b.com"}).Validate())
}

func TestChangePasswordRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ChangePasswordRequest{CurrentPassword: "old", NewPassword: "longenough"}).Validate())
	assert.Error(t, (&ChangePasswordRequest{CurrentPassword: "old", NewPassword: "short"}).Validate())
}
