package projects

import (
	"context"
	"testing"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/enttest"
	"github.com/dialdesk/dialdesk/pkg/domain"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/dialdesk/dialdesk/pkg/policy"
	"github.com/dialdesk/dialdesk/pkg/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupProjectTest(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	svc := NewService(client, workspace.NewService(client), nil)
	return client, svc
}

func seedWorkspace(t *testing.T, client *ent.Client, name string) *ent.Workspace {
	ws, err := client.Workspace.Create().SetName(name).Save(context.Background())
	require.NoError(t, err)
	return ws
}

func seedAgent(t *testing.T, client *ent.Client, workspaceID int, email string) *ent.User {
	agent, err := client.User.Create().
		SetName("Agent").
		SetEmail(email).
		SetPasswordHash("x").
		SetRole("AGENT").
		SetWorkspaceID(workspaceID).
		Save(context.Background())
	require.NoError(t, err)
	return agent
}

func TestList_VisibilityPerRole(t *testing.T) {
	client, svc := setupProjectTest(t)
	ctx := context.Background()

	wsA := seedWorkspace(t, client, "Workspace A")
	wsB := seedWorkspace(t, client, "Workspace B")
	agent := seedAgent(t, client, wsA.ID, "agent@dialdesk.io")

	client.Project.Create().SetName("A1").SetWorkspaceID(wsA.ID).AddAgentIDs(agent.ID).SaveX(ctx)
	client.Project.Create().SetName("A2").SetWorkspaceID(wsA.ID).SaveX(ctx)
	client.Project.Create().SetName("B1").SetWorkspaceID(wsB.ID).SaveX(ctx)

	// Super admin sees everything.
	all, err := svc.List(ctx, policy.Actor{ID: 99, Role: policy.RoleSuperAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Admin sees only their workspace.
	admin := policy.Actor{ID: 98, Role: policy.RoleAdmin, WorkspaceID: &wsA.ID}
	scoped, err := svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, scoped, 2)

	// Agent sees only assigned projects.
	mine, err := svc.List(ctx, policy.Actor{ID: agent.ID, Role: policy.RoleAgent, WorkspaceID: &wsA.ID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A1", mine[0].Name)
}

func TestList_AdminWithoutWorkspaceSeesNothing(t *testing.T) {
	client, svc := setupProjectTest(t)
	ws := seedWorkspace(t, client, "Workspace")
	client.Project.Create().SetName("P").SetWorkspaceID(ws.ID).SaveX(context.Background())

	out, err := svc.List(context.Background(), policy.Actor{ID: 1, Role: policy.RoleAdmin})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestList_IncludesLeadCount(t *testing.T) {
	client, svc := setupProjectTest(t)
	ctx := context.Background()

	ws := seedWorkspace(t, client, "Workspace")
	proj := client.Project.Create().SetName("P").SetWorkspaceID(ws.ID).SaveX(ctx)
	client.Lead.Create().SetName("L1").SetProjectID(proj.ID).SetWorkspaceID(ws.ID).SaveX(ctx)
	client.Lead.Create().SetName("L2").SetProjectID(proj.ID).SetWorkspaceID(ws.ID).SaveX(ctx)

	out, err := svc.List(ctx, policy.Actor{ID: 1, Role: policy.RoleSuperAdmin})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].LeadCount)
}

func TestCreate_AgentForbidden(t *testing.T) {
	_, svc := setupProjectTest(t)

	_, err := svc.Create(context.Background(), policy.Actor{ID: 1, Role: policy.RoleAgent}, models.CreateProjectRequest{Name: "X"})
	require.Error(t, err)
	assert.True(t, domain.IsForbidden(err))
}

func TestCreate_AdminLandsInOwnWorkspace(t *testing.T) {
	client, svc := setupProjectTest(t)
	ws := seedWorkspace(t, client, "Workspace")

	admin := policy.Actor{ID: 1, Role: policy.RoleAdmin, WorkspaceID: &ws.ID}
	proj, err := svc.Create(context.Background(), admin, models.CreateProjectRequest{Name: "Outbound"})
	require.NoError(t, err)
	assert.Equal(t, ws.ID, proj.WorkspaceID)
}

func TestCreate_FallsBackToDefaultWorkspace(t *testing.T) {
	client, svc := setupProjectTest(t)

	admin := policy.Actor{ID: 1, Role: policy.RoleAdmin, WorkspaceID: nil}
	// Creation provisions the default workspace when the actor has none.
	// Visibility for this admin remains empty, but the project exists.
	proj, err := svc.Create(context.Background(), admin, models.CreateProjectRequest{Name: "Orphan"})
	require.NoError(t, err)

	ws := client.Workspace.GetX(context.Background(), proj.WorkspaceID)
	assert.Equal(t, workspace.DefaultName, ws.Name)
}

func TestUpdate_ReplacesAgentRoster(t *testing.T) {
	client, svc := setupProjectTest(t)
	ctx := context.Background()

	ws := seedWorkspace(t, client, "Workspace")
	a1 := seedAgent(t, client, ws.ID, "a1@dialdesk.io")
	a2 := seedAgent(t, client, ws.ID, "a2@dialdesk.io")
	proj := client.Project.Create().SetName("P").SetWorkspaceID(ws.ID).AddAgentIDs(a1.ID).SaveX(ctx)

	admin := policy.Actor{ID: 1, Role: policy.RoleAdmin, WorkspaceID: &ws.ID}
	roster := []int{a2.ID}
	_, err := svc.Update(ctx, admin, proj.ID, models.UpdateProjectRequest{AgentIDs: &roster})
	require.NoError(t, err)

	agents := client.Project.GetX(ctx, proj.ID).QueryAgents().AllX(ctx)
	require.Len(t, agents, 1)
	assert.Equal(t, a2.ID, agents[0].ID)
}

func TestUpdate_NilRosterUntouched(t *testing.T) {
	client, svc := setupProjectTest(t)
	ctx := context.Background()

	ws := seedWorkspace(t, client, "Workspace")
	a1 := seedAgent(t, client, ws.ID, "a1@dialdesk.io")
	proj := client.Project.Create().SetName("P").SetWorkspaceID(ws.ID).AddAgentIDs(a1.ID).SaveX(ctx)

	admin := policy.Actor{ID: 1, Role: policy.RoleAdmin, WorkspaceID: &ws.ID}
	newName := "Renamed"
	_, err := svc.Update(ctx, admin, proj.ID, models.UpdateProjectRequest{Name: &newName})
	require.NoError(t, err)

	assert.Len(t, client.Project.GetX(ctx, proj.ID).QueryAgents().AllX(ctx), 1)
	assert.Equal(t, "Renamed", client.Project.GetX(ctx, proj.ID).Name)
}

func TestUpdate_OutsideWorkspaceForbidden(t *testing.T) {
	client, svc := setupProjectTest(t)
	ctx := context.Background()

	wsA := seedWorkspace(t, client, "Workspace A")
	wsB := seedWorkspace(t, client, "Workspace B")
	proj := client.Project.Create().SetName("P").SetWorkspaceID(wsB.ID).SaveX(ctx)

	admin := policy.Actor{ID: 1, Role: policy.RoleAdmin, WorkspaceID: &wsA.ID}
	name := "X"
	_, err := svc.Update(ctx, admin, proj.ID, models.UpdateProjectRequest{Name: &name})
	require.Error(t, err)
	assert.True(t, domain.IsForbidden(err))
}

func TestDelete_CascadesLeads(t *testing.T) {
	client, svc := setupProjectTest(t)
	ctx := context.Background()

	ws := seedWorkspace(t, client, "Workspace")
	proj := client.Project.Create().SetName("P").SetWorkspaceID(ws.ID).SaveX(ctx)
	client.Lead.Create().SetName("L1").SetProjectID(proj.ID).SetWorkspaceID(ws.ID).SaveX(ctx)
	client.Lead.Create().SetName("L2").SetProjectID(proj.ID).SetWorkspaceID(ws.ID).SaveX(ctx)

	admin := policy.Actor{ID: 1, Role: policy.RoleAdmin, WorkspaceID: &ws.ID}
	require.NoError(t, svc.Delete(ctx, admin, proj.ID))

	assert.Zero(t, client.Project.Query().CountX(ctx))
	assert.Zero(t, client.Lead.Query().CountX(ctx))
}

func TestDelete_AgentForbidden(t *testing.T) {
	client, svc := setupProjectTest(t)
	ws := seedWorkspace(t, client, "Workspace")
	proj := client.Project.Create().SetName("P").SetWorkspaceID(ws.ID).SaveX(context.Background())

	err := svc.Delete(context.Background(), policy.Actor{ID: 1, Role: policy.RoleAgent}, proj.ID)
	require.Error(t, err)
	assert.True(t, domain.IsForbidden(err))
}
