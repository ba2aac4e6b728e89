package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("dev@example.com"))
	assert.NoError(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword("a much longer passphrase"))
}

func TestValidateRegister(t *testing.T) {
	errs := ValidateRegister(RegisterInput{})
	assert.Len(t, errs, 3)

	errs = ValidateRegister(RegisterInput{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "secret1",
	})
	assert.Empty(t, errs)

	errs = ValidateRegister(RegisterInput{
		Name:     "Ada Lovelace",
		Email:    "bad-email",
		Password: "secret1",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestValidateLogin(t *testing.T) {
	errs := ValidateLogin(LoginInput{})
	assert.Len(t, errs, 2)

	errs = ValidateLogin(LoginInput{Email: "dev@example.com", Password: "x"})
	assert.Empty(t, errs)
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"js", "go"}, SplitSkills("js, go"))
	assert.Equal(t, []string{"HTML", "CSS", "React"}, SplitSkills(" HTML ,CSS,  React"))
	assert.Equal(t, []string{"solo"}, SplitSkills("solo"))
	assert.Empty(t, SplitSkills(" , ,"))
}
