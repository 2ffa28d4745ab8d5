package importer

import (
	"testing"

	"github.com/dialdesk/dialdesk/pkg/policy"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRow_AliasMatching(t *testing.T) {
	row := map[string]string{
		"Full Name":     "Jane Doe",
		"Company Name":  "Acme",
		"Email Address": "jane@acme.com",
		"Direct Number": "212-555-0198",
		"Job Title":     "VP Sales",
	}

	lead := NormalizeRow(row)

	assert.Equal(t, "Jane Doe", lead.Name)
	assert.Equal(t, "Acme", lead.Company)
	assert.Equal(t, "jane@acme.com", lead.Email)
	assert.Equal(t, "212-555-0198", lead.Phone)
	assert.Equal(t, "VP Sales", lead.Title)
}

func TestNormalizeRow_CaseAndWhitespaceInsensitive(t *testing.T) {
	row := map[string]string{
		"  NAME ":  "  Bob  ",
		"WEBSITE ": "https://example.com",
	}

	lead := NormalizeRow(row)

	assert.Equal(t, "Bob", lead.Name)
	assert.Equal(t, "https://example.com", lead.Website)
}

func TestNormalizeRow_FirstAliasWins(t *testing.T) {
	row := map[string]string{
		"name":      "Primary",
		"full name": "Secondary",
	}

	assert.Equal(t, "Primary", NormalizeRow(row).Name)
}

func TestNormalizeRow_Defaults(t *testing.T) {
	lead := NormalizeRow(map[string]string{"Company": "Acme"})

	assert.Equal(t, "Unknown", lead.Name)
	assert.Equal(t, policy.StatusNotInterested, lead.Status)
	assert.Equal(t, "Acme", lead.Company)
	assert.Empty(t, lead.Email)
}

func TestNormalizeRow_StatusPassedThrough(t *testing.T) {
	lead := NormalizeRow(map[string]string{"Status": "Follow-Up"})
	assert.Equal(t, policy.StatusFollowUp, lead.Status)

	// Unknown status values fall back to the default.
	lead = NormalizeRow(map[string]string{"Status": "Hot Lead!!"})
	assert.Equal(t, policy.StatusNotInterested, lead.Status)
}

func TestNormalizeRow_DealValue(t *testing.T) {
	assert.Equal(t, 2500.0, NormalizeRow(map[string]string{"Deal Value": "2500"}).DealValue)
	assert.Equal(t, 0.0, NormalizeRow(map[string]string{"Deal Value": "lots"}).DealValue)
}
