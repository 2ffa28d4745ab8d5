package export

import (
	"context"
	"encoding/csv"
	"os"
	"testing"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/enttest"
	"github.com/dialdesk/dialdesk/pkg/activity"
	"github.com/dialdesk/dialdesk/pkg/domain"
	"github.com/dialdesk/dialdesk/pkg/leads"
	"github.com/dialdesk/dialdesk/pkg/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	_ "github.com/mattn/go-sqlite3"
)

func setupExportTest(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	leadSvc := leads.NewService(client, activity.NewService(client), "US")
	return client, NewService(leadSvc, t.TempDir())
}

func seedExportData(t *testing.T, client *ent.Client) (*ent.Workspace, *ent.Project) {
	ctx := context.Background()
	ws := client.Workspace.Create().SetName("Workspace").SaveX(ctx)
	proj := client.Project.Create().SetName("Outbound").SetWorkspaceID(ws.ID).SaveX(ctx)

	client.Lead.Create().SetName("Jane Doe").SetCompany("Acme").SetStatus("Follow-Up").
		SetProjectID(proj.ID).SetWorkspaceID(ws.ID).SaveX(ctx)
	client.Lead.Create().SetName("Bob Roe").SetStatus("Scheduled").
		SetProjectID(proj.ID).SetWorkspaceID(ws.ID).SaveX(ctx)

	return ws, proj
}

func TestExportProject_CSV(t *testing.T) {
	client, svc := setupExportTest(t)
	_, proj := seedExportData(t, client)

	result, err := svc.ExportProject(context.Background(), policy.Actor{ID: 1, Role: policy.RoleSuperAdmin}, proj.ID, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 2, result.LeadCount)

	file, err := os.Open(result.FilePath)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 leads
	assert.Equal(t, "Name", rows[0][1])

	names := []string{rows[1][1], rows[2][1]}
	assert.ElementsMatch(t, []string{"Jane Doe", "Bob Roe"}, names)
}

func TestExportProject_XLSX(t *testing.T) {
	client, svc := setupExportTest(t)
	_, proj := seedExportData(t, client)

	result, err := svc.ExportProject(context.Background(), policy.Actor{ID: 1, Role: policy.RoleSuperAdmin}, proj.ID, FormatXLSX)
	require.NoError(t, err)

	f, err := excelize.OpenFile(result.FilePath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][1])
}

func TestExportProject_InvalidFormat(t *testing.T) {
	client, svc := setupExportTest(t)
	_, proj := seedExportData(t, client)

	_, err := svc.ExportProject(context.Background(), policy.Actor{ID: 1, Role: policy.RoleSuperAdmin}, proj.ID, "pdf")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestExportProject_AgentSeesOnlyAssigned(t *testing.T) {
	client, svc := setupExportTest(t)
	ws, proj := seedExportData(t, client)
	ctx := context.Background()

	agent := client.User.Create().
		SetName("Agent").SetEmail("agent@dialdesk.io").SetPasswordHash("x").
		SetRole("AGENT").SetWorkspaceID(ws.ID).SaveX(ctx)
	client.Lead.Create().SetName("Mine").SetProjectID(proj.ID).SetWorkspaceID(ws.ID).
		SetAssignedAgentID(agent.ID).SaveX(ctx)

	// Agent is not on the project roster: only the individually assigned
	// lead makes it into the export.
	actor := policy.Actor{ID: agent.ID, Role: policy.RoleAgent, WorkspaceID: &ws.ID}
	result, err := svc.ExportProject(ctx, actor, proj.ID, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 1, result.LeadCount)
}
