package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_USNumber(t *testing.T) {
	formatted, err := Normalize("(212) 555-0198", "US")
	assert.NoError(t, err)
	assert.Equal(t, "+12125550198", formatted)
}

func TestNormalize_AlreadyE164(t *testing.T) {
	formatted, err := Normalize("+442071838750", "US")
	assert.NoError(t, err)
	assert.Equal(t, "+442071838750", formatted)
}

func TestNormalize_InvalidKeptVerbatim(t *testing.T) {
	formatted, err := Normalize("not-a-phone", "US")
	assert.Error(t, err)
	assert.Equal(t, "not-a-phone", formatted)
}

func TestNormalize_EmptyInput(t *testing.T) {
	formatted, err := Normalize("", "US")
	assert.NoError(t, err)
	assert.Empty(t, formatted)
}

func TestNormalizeAll_SkipsFailures(t *testing.T) {
	phone := "212-555-0198"
	garbage := "ext. 44"
	var nilStr *string

	NormalizeAll("US", &phone, &garbage, nilStr)

	assert.Equal(t, "+12125550198", phone)
	assert.Equal(t, "ext. 44", garbage)
}
