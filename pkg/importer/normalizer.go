package importer

import (
	"strconv"
	"strings"

	"github.com/dialdesk/dialdesk/pkg/policy"
)

// NormalizedLead is a CSV row mapped onto the canonical lead schema,
// ready for stamping and insertion.
type NormalizedLead struct {
	Name           string
	Company        string
	Email          string
	Phone          string
	Mobile         string
	CorporatePhone string
	Title          string
	Industry       string
	Revenue        string
	Employees      string
	State          string
	LinkedIn       string
	Website        string
	Notes          string
	Status         policy.Status
	DealValue      float64
}

// fieldAliases maps each canonical field to its accepted header
// aliases, in priority order. Matching is case-insensitive and
// whitespace-trimmed; the first alias present in the row wins.
var fieldAliases = map[string][]string{
	"name":           {"name", "prospect name", "full name"},
	"company":        {"company", "company name"},
	"email":          {"email", "email address"},
	"phone":          {"phone", "direct number", "phone number"},
	"mobile":         {"mobile", "mobile number"},
	"corporatePhone": {"corporate phone", "company phone"},
	"title":          {"title", "job title"},
	"industry":       {"industry"},
	"revenue":        {"revenue", "revenue size", "annual revenue"},
	"employees":      {"employees", "employee size", "company size"},
	"state":          {"state", "location"},
	"linkedin":       {"linkedin", "linkedin url"},
	"website":        {"website", "company website"},
	"notes":          {"notes", "call notes", "description"},
	"status":         {"status"},
	"dealValue":      {"deal value", "dealvalue"},
}

// NormalizeRow maps a row of arbitrary column names onto the canonical
// lead schema. Missing name defaults to "Unknown"; missing status
// defaults to "Not Interested"; an unknown status value falls back to
// the default rather than failing the row.
func NormalizeRow(row map[string]string) NormalizedLead {
	find := func(field string) string {
		for _, alias := range fieldAliases[field] {
			for key, value := range row {
				if strings.EqualFold(strings.TrimSpace(key), alias) {
					return strings.TrimSpace(value)
				}
			}
		}
		return ""
	}

	lead := NormalizedLead{
		Name:           find("name"),
		Company:        find("company"),
		Email:          find("email"),
		Phone:          find("phone"),
		Mobile:         find("mobile"),
		CorporatePhone: find("corporatePhone"),
		Title:          find("title"),
		Industry:       find("industry"),
		Revenue:        find("revenue"),
		Employees:      find("employees"),
		State:          find("state"),
		LinkedIn:       find("linkedin"),
		Website:        find("website"),
		Notes:          find("notes"),
	}

	if lead.Name == "" {
		lead.Name = "Unknown"
	}

	status := policy.Status(find("status"))
	if !policy.IsValidStatus(status) {
		status = policy.StatusNotInterested
	}
	lead.Status = status

	if raw := find("dealValue"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			lead.DealValue = v
		}
	}

	return lead
}
