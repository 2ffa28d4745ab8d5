package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterUpdate_AgentAllowList(t *testing.T) {
	pol := ForActor(agentActor(10))

	req := UpdateRequest{
		"status":          "Scheduled",
		"notes":           "left a voicemail",
		"nextFollowUp":    "2026-09-15T10:00:00Z",
		"assignedAgentId": float64(10),
		// Everything below is admin-only for agents.
		"name":           "New Name",
		"company":        "Acme",
		"email":          "x@example.com",
		"phone":          "555-0100",
		"dealValue":      float64(5000),
		"source":         "Referral",
		"title":          "CTO",
		"industry":       "SaaS",
		"revenue":        "10M",
		"employees":      "50",
		"mobile":         "555-0101",
		"corporatePhone": "555-0102",
		"state":          "TX",
		"linkedin":       "https://linkedin.com/in/x",
		"website":        "https://acme.com",
	}

	changes := FilterUpdate(pol, req)

	assert.Len(t, changes.Fields, 4)
	assert.Contains(t, changes.Fields, "status")
	assert.Contains(t, changes.Fields, "notes")
	assert.Contains(t, changes.Fields, "nextFollowUp")
	assert.Contains(t, changes.Fields, "assignedAgentId")

	for _, field := range []string{
		"name", "company", "email", "phone", "dealValue", "source", "title",
		"industry", "revenue", "employees", "mobile", "corporatePhone",
		"state", "linkedin", "website",
	} {
		assert.NotContains(t, changes.Fields, field)
		assert.Contains(t, changes.Rejected, field)
	}
}

func TestFilterUpdate_AdminKeepsAllFields(t *testing.T) {
	req := UpdateRequest{
		"name":      "Jane",
		"company":   "Acme",
		"status":    "Qualified",
		"dealValue": float64(1200.50),
	}

	for _, pol := range []Policy{ForActor(adminActor(1)), ForActor(superAdminActor())} {
		changes := FilterUpdate(pol, req)
		assert.Len(t, changes.Fields, 4)
		assert.Empty(t, changes.Rejected)
	}
}

func TestFilterUpdate_NeverTouchesIdentityOrLinkage(t *testing.T) {
	req := UpdateRequest{
		"id":          float64(99),
		"projectId":   float64(2),
		"workspaceId": float64(3),
		"createdAt":   "2020-01-01",
		"notes":       "ok",
	}

	changes := FilterUpdate(ForActor(superAdminActor()), req)

	assert.Len(t, changes.Fields, 1)
	assert.Contains(t, changes.Fields, "notes")
	assert.ElementsMatch(t, []string{"id", "projectId", "workspaceId", "createdAt"}, changes.Rejected)
}

func TestFilterUpdate_OnlyRequestedFieldsAppear(t *testing.T) {
	changes := FilterUpdate(ForActor(adminActor(1)), UpdateRequest{"notes": "only this"})
	assert.Len(t, changes.Fields, 1)
}

// Invalid dealValue input coerces to 0 instead of erroring. Inherited
// grid behavior kept on purpose; this test pins it down as intended.
func TestFilterUpdate_DealValueCoercion(t *testing.T) {
	pol := ForActor(adminActor(1))

	cases := []struct {
		name  string
		input any
		want  float64
	}{
		{"number", float64(2500), 2500},
		{"numeric string", "1234.5", 1234.5},
		{"garbage string", "not a number", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			changes := FilterUpdate(pol, UpdateRequest{"dealValue": tc.input})
			require.Contains(t, changes.Fields, "dealValue")
			assert.Equal(t, tc.want, changes.Fields["dealValue"])
		})
	}
}

func TestFilterUpdate_NextFollowUpParsing(t *testing.T) {
	pol := ForActor(agentActor(10))

	changes := FilterUpdate(pol, UpdateRequest{"nextFollowUp": "2026-09-15T10:00:00Z"})
	require.Contains(t, changes.Fields, "nextFollowUp")
	ts := changes.Fields["nextFollowUp"].(*time.Time)
	require.NotNil(t, ts)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), ts.UTC())

	// Empty value clears the follow-up.
	changes = FilterUpdate(pol, UpdateRequest{"nextFollowUp": ""})
	require.Contains(t, changes.Fields, "nextFollowUp")
	assert.Nil(t, changes.Fields["nextFollowUp"].(*time.Time))

	// Unparseable timestamps are dropped, not fatal.
	changes = FilterUpdate(pol, UpdateRequest{"nextFollowUp": "tomorrow-ish"})
	assert.NotContains(t, changes.Fields, "nextFollowUp")
	assert.Contains(t, changes.Rejected, "nextFollowUp")
}

func TestFilterUpdate_AssignedAgentDetach(t *testing.T) {
	pol := ForActor(agentActor(10))

	for _, empty := range []any{nil, "", float64(0)} {
		changes := FilterUpdate(pol, UpdateRequest{"assignedAgentId": empty})
		require.Contains(t, changes.Fields, "assignedAgentId")
		assert.Nil(t, changes.Fields["assignedAgentId"].(*int), "input %#v should detach", empty)
	}

	changes := FilterUpdate(pol, UpdateRequest{"assignedAgentId": float64(42)})
	require.Contains(t, changes.Fields, "assignedAgentId")
	assert.Equal(t, 42, *changes.Fields["assignedAgentId"].(*int))
}
