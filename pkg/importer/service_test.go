package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/enttest"
	"github.com/dialdesk/dialdesk/ent/lead"
	workspacepred "github.com/dialdesk/dialdesk/ent/workspace"
	"github.com/dialdesk/dialdesk/pkg/activity"
	"github.com/dialdesk/dialdesk/pkg/domain"
	"github.com/dialdesk/dialdesk/pkg/policy"
	"github.com/dialdesk/dialdesk/pkg/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupImportTest(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	svc := NewService(client, workspace.NewService(client), activity.NewService(client), "US")
	return client, svc
}

func seedProject(t *testing.T, client *ent.Client, agentIDs ...int) (*ent.Workspace, *ent.Project) {
	ctx := context.Background()

	ws, err := client.Workspace.Create().SetName("Acme Workspace").Save(ctx)
	require.NoError(t, err)

	create := client.Project.Create().
		SetName("Outbound Q3").
		SetWorkspaceID(ws.ID)
	if len(agentIDs) > 0 {
		create.AddAgentIDs(agentIDs...)
	}
	proj, err := create.Save(ctx)
	require.NoError(t, err)

	return ws, proj
}

func seedAgent(t *testing.T, client *ent.Client, workspaceID int) *ent.User {
	agent, err := client.User.Create().
		SetName("Agent Smith").
		SetEmail("agent@dialdesk.io").
		SetPasswordHash("x").
		SetRole("AGENT").
		SetWorkspaceID(workspaceID).
		Save(context.Background())
	require.NoError(t, err)
	return agent
}

func TestImport_InsertsNormalizedRows(t *testing.T) {
	client, svc := setupImportTest(t)
	ws, proj := seedProject(t, client)
	ctx := context.Background()

	actor := policy.Actor{ID: 1, Role: policy.RoleSuperAdmin}
	rows := []map[string]string{
		{"Full Name": "Jane Doe", "Company Name": "Acme", "Email Address": "jane@acme.com"},
		{"name": "Bob Roe", "Status": "Follow-Up", "Deal Value": "1200"},
	}

	result, err := svc.Import(ctx, actor, proj.ID, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.Count)

	leads := client.Lead.Query().Order(ent.Asc(lead.FieldID)).AllX(ctx)
	require.Len(t, leads, 2)

	assert.Equal(t, "Jane Doe", leads[0].Name)
	assert.Equal(t, "Acme", leads[0].Company)
	assert.Equal(t, "CSV Import", leads[0].Source)
	assert.Equal(t, string(policy.StatusNotInterested), leads[0].Status)
	assert.Equal(t, ws.ID, leads[0].WorkspaceID)

	assert.Equal(t, "Bob Roe", leads[1].Name)
	assert.Equal(t, string(policy.StatusFollowUp), leads[1].Status)
	assert.Equal(t, 1200.0, leads[1].DealValue)
}

func TestImport_AgentLeadsForceAssigned(t *testing.T) {
	client, svc := setupImportTest(t)
	ws, _ := seedProject(t, client)
	agent := seedAgent(t, client, ws.ID)

	// Rebuild the project with the agent on its roster.
	proj, err := client.Project.Create().
		SetName("Agent Project").
		SetWorkspaceID(ws.ID).
		AddAgentIDs(agent.ID).
		Save(context.Background())
	require.NoError(t, err)

	actor := policy.Actor{ID: agent.ID, Role: policy.RoleAgent, WorkspaceID: &ws.ID}
	rows := []map[string]string{
		{"name": "Lead One", "Assigned Agent": "999"},
		{"name": "Lead Two"},
	}

	_, err = svc.Import(context.Background(), actor, proj.ID, rows)
	require.NoError(t, err)

	leads := client.Lead.Query().AllX(context.Background())
	require.Len(t, leads, 2)
	for _, l := range leads {
		require.NotNil(t, l.AssignedAgentID)
		assert.Equal(t, agent.ID, *l.AssignedAgentID)
	}
}

func TestImport_AgentOutsideProjectForbidden(t *testing.T) {
	client, svc := setupImportTest(t)
	ws, proj := seedProject(t, client)
	agent := seedAgent(t, client, ws.ID)

	actor := policy.Actor{ID: agent.ID, Role: policy.RoleAgent, WorkspaceID: &ws.ID}
	rows := []map[string]string{{"name": "Lead"}}

	_, err := svc.Import(context.Background(), actor, proj.ID, rows)
	require.Error(t, err)
	assert.True(t, domain.IsForbidden(err))
	assert.Zero(t, client.Lead.Query().CountX(context.Background()))
}

func TestImport_EmptyBatchRejected(t *testing.T) {
	client, svc := setupImportTest(t)
	_, proj := seedProject(t, client)

	actor := policy.Actor{ID: 1, Role: policy.RoleSuperAdmin}

	_, err := svc.Import(context.Background(), actor, proj.ID, nil)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestImport_SuperAdminUsesProjectWorkspace(t *testing.T) {
	client, svc := setupImportTest(t)
	ws, proj := seedProject(t, client)

	actor := policy.Actor{ID: 42, Role: policy.RoleSuperAdmin, WorkspaceID: nil}

	_, err := svc.Import(context.Background(), actor, proj.ID, []map[string]string{{"name": "Lead"}})
	require.NoError(t, err)

	l := client.Lead.Query().OnlyX(context.Background())
	assert.Equal(t, ws.ID, l.WorkspaceID)
}

func TestImport_DefaultWorkspaceFallback(t *testing.T) {
	client, svc := setupImportTest(t)
	ws, _ := seedProject(t, client)
	agent := seedAgent(t, client, ws.ID)

	proj, err := client.Project.Create().
		SetName("Roster Project").
		SetWorkspaceID(ws.ID).
		AddAgentIDs(agent.ID).
		Save(context.Background())
	require.NoError(t, err)

	// Agent on the roster but with no workspace of their own: leads
	// land in the provisioned default workspace.
	actor := policy.Actor{ID: agent.ID, Role: policy.RoleAgent, WorkspaceID: nil}

	_, err = svc.Import(context.Background(), actor, proj.ID, []map[string]string{{"name": "Lead"}})
	require.NoError(t, err)

	def := client.Workspace.Query().Where(workspacepred.NameEQ(workspace.DefaultName)).OnlyX(context.Background())
	l := client.Lead.Query().OnlyX(context.Background())
	assert.Equal(t, def.ID, l.WorkspaceID)
}

func TestImport_WritesImportActivity(t *testing.T) {
	client, svc := setupImportTest(t)
	_, proj := seedProject(t, client)

	actor := policy.Actor{ID: 7, Role: policy.RoleSuperAdmin}
	_, err := svc.Import(context.Background(), actor, proj.ID, []map[string]string{
		{"name": "A"}, {"name": "B"},
	})
	require.NoError(t, err)

	entries := client.ActivityLog.Query().AllX(context.Background())
	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].UserID)
	assert.Nil(t, entries[0].LeadID)
	assert.Contains(t, entries[0].Details, "2")
}

func TestImportCSV_ParsesHeaderAndSkipsEmptyRows(t *testing.T) {
	client, svc := setupImportTest(t)
	_, proj := seedProject(t, client)

	csvData := strings.Join([]string{
		"Full Name,Company,Email Address",
		"Jane Doe,Acme,jane@acme.com",
		",,",
		"Bob Roe,Globex,bob@globex.com",
	}, "\n")

	actor := policy.Actor{ID: 1, Role: policy.RoleSuperAdmin}
	result, err := svc.ImportCSV(context.Background(), actor, proj.ID, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	names := []string{}
	for _, l := range client.Lead.Query().Order(ent.Asc(lead.FieldID)).AllX(context.Background()) {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"Jane Doe", "Bob Roe"}, names)
}

func TestImport_UnknownProject(t *testing.T) {
	_, svc := setupImportTest(t)

	actor := policy.Actor{ID: 1, Role: policy.RoleSuperAdmin}
	_, err := svc.Import(context.Background(), actor, 9999, []map[string]string{{"name": "Lead"}})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
