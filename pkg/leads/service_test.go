package leads

import (
	"context"
	"testing"
	"time"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/enttest"
	"github.com/dialdesk/dialdesk/pkg/activity"
	"github.com/dialdesk/dialdesk/pkg/domain"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/dialdesk/dialdesk/pkg/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

type fixture struct {
	client *ent.Client
	svc    *Service
	ws     *ent.Workspace
	proj   *ent.Project
	agent  *ent.User
}

func setupLeadTest(t *testing.T) *fixture {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	ws := client.Workspace.Create().SetName("Workspace").SaveX(ctx)
	agent := client.User.Create().
		SetName("Agent").
		SetEmail("agent@dialdesk.io").
		SetPasswordHash("x").
		SetRole("AGENT").
		SetWorkspaceID(ws.ID).
		SaveX(ctx)
	proj := client.Project.Create().
		SetName("Outbound").
		SetWorkspaceID(ws.ID).
		AddAgentIDs(agent.ID).
		SaveX(ctx)

	return &fixture{
		client: client,
		svc:    NewService(client, activity.NewService(client), "US"),
		ws:     ws,
		proj:   proj,
		agent:  agent,
	}
}

func (f *fixture) seedLead(t *testing.T, status string) *ent.Lead {
	t.Helper()
	return f.client.Lead.Create().
		SetName("Prospect").
		SetStatus(status).
		SetProjectID(f.proj.ID).
		SetWorkspaceID(f.ws.ID).
		SaveX(context.Background())
}

func (f *fixture) agentActor() policy.Actor {
	return policy.Actor{ID: f.agent.ID, Role: policy.RoleAgent, WorkspaceID: &f.ws.ID}
}

func (f *fixture) adminActor() policy.Actor {
	return policy.Actor{ID: 500, Role: policy.RoleAdmin, WorkspaceID: &f.ws.ID}
}

func TestUpdate_AgentFieldFilter(t *testing.T) {
	f := setupLeadTest(t)
	l := f.seedLead(t, string(policy.StatusNotInterested))

	updated, rejected, err := f.svc.Update(context.Background(), f.agentActor(), l.ID, policy.UpdateRequest{
		"notes":     "spoke to assistant",
		"status":    "Follow-Up",
		"dealValue": 9999.0,
		"company":   "Hijacked Inc",
	})
	require.NoError(t, err)

	assert.Equal(t, "spoke to assistant", updated.Notes)
	assert.Equal(t, "Follow-Up", updated.Status)
	assert.ElementsMatch(t, []string{"dealValue", "company"}, rejected)
	// Rejected fields left the record untouched.
	assert.Zero(t, updated.DealValue)
	assert.Empty(t, updated.Company)
}

func TestUpdate_AdminKeepsAllFields(t *testing.T) {
	f := setupLeadTest(t)
	l := f.seedLead(t, string(policy.StatusNotInterested))

	updated, rejected, err := f.svc.Update(context.Background(), f.adminActor(), l.ID, policy.UpdateRequest{
		"company":   "Acme",
		"dealValue": "2500",
		"status":    "Sales Complete",
	})
	require.NoError(t, err)
	assert.Empty(t, rejected)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, 2500.0, updated.DealValue)
	assert.Equal(t, "Sales Complete", updated.Status)
}

func TestUpdate_LockedLeadBlocksAgentEntirely(t *testing.T) {
	f := setupLeadTest(t)
	l := f.seedLead(t, string(policy.StatusSalesComplete))

	// Even a benign notes-only edit is rejected on a locked record.
	_, _, err := f.svc.Update(context.Background(), f.agentActor(), l.ID, policy.UpdateRequest{
		"notes": "just a note",
	})
	require.Error(t, err)
	assert.True(t, domain.IsForbidden(err))

	assert.Empty(t, f.client.Lead.GetX(context.Background(), l.ID).Notes)
}

func TestUpdate_LockedLeadOpenForAdmin(t *testing.T) {
	f := setupLeadTest(t)
	l := f.seedLead(t, string(policy.StatusNotQualified))

	updated, _, err := f.svc.Update(context.Background(), f.adminActor(), l.ID, policy.UpdateRequest{
		"status": "Follow-Up",
	})
	require.NoError(t, err)
	assert.Equal(t, "Follow-Up", updated.Status)
}

func TestUpdate_AgentDeniedTransition(t *testing.T) {
	f := setupLeadTest(t)
	l := f.seedLead(t, string(policy.StatusFollowUp))

	_, _, err := f.svc.Update(context.Background(), f.agentActor(), l.ID, policy.UpdateRequest{
		"status": "Sales Complete",
	})
	require.Error(t, err)
	assert.True(t, domain.IsForbidden(err))
	assert.Equal(t, "Follow-Up", f.client.Lead.GetX(context.Background(), l.ID).Status)
}

func TestUpdate_UnknownStatusRejected(t *testing.T) {
	f := setupLeadTest(t)
	l := f.seedLead(t, string(policy.StatusFollowUp))

	_, _, err := f.svc.Update(context.Background(), f.adminActor(), l.ID, policy.UpdateRequest{
		"status": "Closed Won",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestUpdate_StatusChangeWritesActivity(t *testing.T) {
	f := setupLeadTest(t)
	l := f.seedLead(t, string(policy.StatusNotInterested))
	ctx := context.Background()

	_, _, err := f.svc.Update(ctx, f.agentActor(), l.ID, policy.UpdateRequest{"status": "VM1"})
	require.NoError(t, err)

	entries := f.client.ActivityLog.Query().AllX(ctx)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].LeadID)
	assert.Equal(t, l.ID, *entries[0].LeadID)
	assert.Equal(t, f.agent.ID, entries[0].UserID)
	assert.Equal(t, "Not Interested", entries[0].PreviousStatus)
	assert.Equal(t, "VM1", entries[0].NewStatus)
}

func TestUpdate_SameStatusNoActivity(t *testing.T) {
	f := setupLeadTest(t)
	l := f.seedLead(t, string(policy.StatusFollowUp))
	ctx := context.Background()

	_, _, err := f.svc.Update(ctx, f.agentActor(), l.ID, policy.UpdateRequest{"status": "Follow-Up"})
	require.NoError(t, err)
	assert.Zero(t, f.client.ActivityLog.Query().CountX(ctx))
}

func TestUpdate_AssignedAgentDetach(t *testing.T) {
	f := setupLeadTest(t)
	ctx := context.Background()
	l := f.client.Lead.Create().
		SetName("Prospect").
		SetProjectID(f.proj.ID).
		SetWorkspaceID(f.ws.ID).
		SetAssignedAgentID(f.agent.ID).
		SaveX(ctx)

	updated, _, err := f.svc.Update(ctx, f.adminActor(), l.ID, policy.UpdateRequest{
		"assignedAgentId": nil,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.AssignedAgentID)
}

func TestUpdate_FollowUpSetAndClear(t *testing.T) {
	f := setupLeadTest(t)
	l := f.seedLead(t, string(policy.StatusFollowUp))
	ctx := context.Background()

	updated, _, err := f.svc.Update(ctx, f.agentActor(), l.ID, policy.UpdateRequest{
		"nextFollowUp": "2026-09-15",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.NextFollowUp)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), updated.NextFollowUp.UTC())

	updated, _, err = f.svc.Update(ctx, f.agentActor(), l.ID, policy.UpdateRequest{
		"nextFollowUp": "",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.NextFollowUp)
}

func TestUpdate_OutsideProjectAgentForbidden(t *testing.T) {
	f := setupLeadTest(t)
	ctx := context.Background()

	other := f.client.Project.Create().SetName("Other").SetWorkspaceID(f.ws.ID).SaveX(ctx)
	l := f.client.Lead.Create().
		SetName("Prospect").
		SetProjectID(other.ID).
		SetWorkspaceID(f.ws.ID).
		SaveX(ctx)

	_, _, err := f.svc.Update(ctx, f.agentActor(), l.ID, policy.UpdateRequest{"notes": "x"})
	require.Error(t, err)
	assert.True(t, domain.IsForbidden(err))
}

func TestUpdate_IndividualAssignmentGrantsAccess(t *testing.T) {
	f := setupLeadTest(t)
	ctx := context.Background()

	// Lead in a project the agent is not rostered on, but individually
	// assigned to them.
	other := f.client.Project.Create().SetName("Other").SetWorkspaceID(f.ws.ID).SaveX(ctx)
	l := f.client.Lead.Create().
		SetName("Prospect").
		SetProjectID(other.ID).
		SetWorkspaceID(f.ws.ID).
		SetAssignedAgentID(f.agent.ID).
		SaveX(ctx)

	updated, _, err := f.svc.Update(ctx, f.agentActor(), l.ID, policy.UpdateRequest{"notes": "reached dm"})
	require.NoError(t, err)
	assert.Equal(t, "reached dm", updated.Notes)
}

func TestListForProject_AgentSeesOnlyAssignedInForeignProject(t *testing.T) {
	f := setupLeadTest(t)
	ctx := context.Background()

	other := f.client.Project.Create().SetName("Other").SetWorkspaceID(f.ws.ID).SaveX(ctx)
	f.client.Lead.Create().SetName("Unassigned").SetProjectID(other.ID).SetWorkspaceID(f.ws.ID).SaveX(ctx)
	f.client.Lead.Create().SetName("Mine").SetProjectID(other.ID).SetWorkspaceID(f.ws.ID).SetAssignedAgentID(f.agent.ID).SaveX(ctx)

	leads, err := f.svc.ListForProject(ctx, f.agentActor(), other.ID)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Mine", leads[0].Name)
}

func TestDelete_RequiresCapability(t *testing.T) {
	f := setupLeadTest(t)
	ctx := context.Background()
	l := f.seedLead(t, string(policy.StatusNotInterested))

	err := f.svc.Delete(ctx, f.adminActor(), l.ID)
	require.Error(t, err)
	assert.True(t, domain.IsForbidden(err))

	// The delete_leads capability unlocks deletion regardless of role.
	holder := f.adminActor()
	holder.Capabilities = policy.NewCapabilitySet([]string{"delete_leads"})
	require.NoError(t, f.svc.Delete(ctx, holder, l.ID))
	assert.Zero(t, f.client.Lead.Query().CountX(ctx))
}

func TestDelete_SuperAdminAlwaysAllowed(t *testing.T) {
	f := setupLeadTest(t)
	l := f.seedLead(t, string(policy.StatusNotInterested))

	err := f.svc.Delete(context.Background(), policy.Actor{ID: 1, Role: policy.RoleSuperAdmin}, l.ID)
	require.NoError(t, err)
}

func TestCreate_AgentSelfAssigned(t *testing.T) {
	f := setupLeadTest(t)

	l, err := f.svc.Create(context.Background(), f.agentActor(), models.CreateLeadRequest{
		Name:      "New Prospect",
		ProjectID: f.proj.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, l.AssignedAgentID)
	assert.Equal(t, f.agent.ID, *l.AssignedAgentID)
	assert.Equal(t, f.ws.ID, l.WorkspaceID)
	assert.Equal(t, string(policy.StatusNotInterested), l.Status)
}

func TestCreate_NormalizesPhone(t *testing.T) {
	f := setupLeadTest(t)

	l, err := f.svc.Create(context.Background(), f.adminActor(), models.CreateLeadRequest{
		Name:      "Prospect",
		ProjectID: f.proj.ID,
		Phone:     "(212) 555-0198",
	})
	require.NoError(t, err)
	assert.Equal(t, "+12125550198", l.Phone)
}

func TestDueFollowUps_ExcludesLocked(t *testing.T) {
	f := setupLeadTest(t)
	ctx := context.Background()
	due := time.Now().Add(-time.Hour)

	f.client.Lead.Create().SetName("Due").SetStatus("Follow-Up").SetNextFollowUp(due).
		SetProjectID(f.proj.ID).SetWorkspaceID(f.ws.ID).SaveX(ctx)
	f.client.Lead.Create().SetName("Locked").SetStatus("Sales Complete").SetNextFollowUp(due).
		SetProjectID(f.proj.ID).SetWorkspaceID(f.ws.ID).SaveX(ctx)
	f.client.Lead.Create().SetName("Future").SetStatus("Follow-Up").SetNextFollowUp(time.Now().Add(48 * time.Hour)).
		SetProjectID(f.proj.ID).SetWorkspaceID(f.ws.ID).SaveX(ctx)

	leads, err := f.svc.DueFollowUps(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Due", leads[0].Name)
}
