package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/project"
	"github.com/dialdesk/dialdesk/pkg/activity"
	"github.com/dialdesk/dialdesk/pkg/domain"
	"github.com/dialdesk/dialdesk/pkg/phone"
	"github.com/dialdesk/dialdesk/pkg/policy"
	"github.com/dialdesk/dialdesk/pkg/workspace"
)

// SourceCSVImport stamps every imported lead's source field.
const SourceCSVImport = "CSV Import"

// Service handles bulk import of leads
type Service struct {
	db          *ent.Client
	workspaces  *workspace.Service
	activities  *activity.Service
	phoneRegion string
}

// NewService creates a new import service
func NewService(db *ent.Client, workspaces *workspace.Service, activities *activity.Service, phoneRegion string) *Service {
	return &Service{
		db:          db,
		workspaces:  workspaces,
		activities:  activities,
		phoneRegion: phoneRegion,
	}
}

// Result holds the outcome of an import operation
type Result struct {
	TotalRows int    `json:"total_rows"`
	Count     int    `json:"count"`
	Duration  string `json:"duration"`
}

// Import normalizes and inserts the given rows into a project. The
// batch is atomic: either every normalized row is inserted or none is.
// Agents importing leads get them force-assigned to themselves.
func (s *Service) Import(ctx context.Context, actor policy.Actor, projectID int, rows []map[string]string) (*Result, error) {
	startTime := time.Now()

	if len(rows) == 0 {
		return nil, domain.NewValidationError("no leads provided")
	}
	if projectID == 0 {
		return nil, domain.NewValidationError("project id is required")
	}

	proj, err := s.db.Project.Query().
		Where(project.IDEQ(projectID)).
		WithAgents().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("project")
		}
		return nil, domain.NewInternalError(err)
	}

	pol := policy.ForActor(actor)
	if !pol.CanViewProject(projectSnapshot(proj)) {
		return nil, domain.NewForbiddenError("no access to this project")
	}

	// Imports from actors without a workspace land in the default one.
	workspaceID, err := s.resolveWorkspace(ctx, actor, proj)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	builders := make([]*ent.LeadCreate, 0, len(rows))
	for _, row := range rows {
		normalized := NormalizeRow(row)
		phone.NormalizeAll(s.phoneRegion, &normalized.Phone, &normalized.Mobile, &normalized.CorporatePhone)

		create := tx.Lead.Create().
			SetName(normalized.Name).
			SetStatus(string(normalized.Status)).
			SetSource(SourceCSVImport).
			SetProjectID(projectID).
			SetWorkspaceID(workspaceID)

		if normalized.Company != "" {
			create.SetCompany(normalized.Company)
		}
		if normalized.Email != "" {
			create.SetEmail(normalized.Email)
		}
		if normalized.Phone != "" {
			create.SetPhone(normalized.Phone)
		}
		if normalized.Mobile != "" {
			create.SetMobile(normalized.Mobile)
		}
		if normalized.CorporatePhone != "" {
			create.SetCorporatePhone(normalized.CorporatePhone)
		}
		if normalized.Title != "" {
			create.SetTitle(normalized.Title)
		}
		if normalized.Industry != "" {
			create.SetIndustry(normalized.Industry)
		}
		if normalized.Revenue != "" {
			create.SetRevenue(normalized.Revenue)
		}
		if normalized.Employees != "" {
			create.SetEmployees(normalized.Employees)
		}
		if normalized.State != "" {
			create.SetState(normalized.State)
		}
		if normalized.LinkedIn != "" {
			create.SetLinkedin(normalized.LinkedIn)
		}
		if normalized.Website != "" {
			create.SetWebsite(normalized.Website)
		}
		if normalized.Notes != "" {
			create.SetNotes(normalized.Notes)
		}
		if normalized.DealValue != 0 {
			create.SetDealValue(normalized.DealValue)
		}

		// Agents cannot import on someone else's behalf.
		if actor.Role == policy.RoleAgent {
			create.SetAssignedAgentID(actor.ID)
		}

		builders = append(builders, create)
	}

	created, err := tx.Lead.CreateBulk(builders...).Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(fmt.Errorf("bulk insert failed: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to commit import: %w", err))
	}

	// Audit trail is best effort: a failed log write never undoes a
	// committed import.
	if err := s.activities.LogImport(ctx, actor.ID, len(created)); err != nil {
		log.Printf("⚠️  Failed to log import activity: %v", err)
	}

	log.Printf("✅ CSV import completed: %d leads in %s", len(created), time.Since(startTime))

	return &Result{
		TotalRows: len(rows),
		Count:     len(created),
		Duration:  time.Since(startTime).String(),
	}, nil
}

// ImportCSV reads a raw CSV stream (header row first) and imports it.
func (s *Service) ImportCSV(ctx context.Context, actor policy.Actor, projectID int, r io.Reader) (*Result, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, domain.NewValidationError("failed to read CSV header")
	}

	var rows []map[string]string
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("CSV read error: %v", err))
		}

		row := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			if i >= len(record) {
				break
			}
			value := strings.TrimSpace(record[i])
			row[header] = value
			if value != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}

	return s.Import(ctx, actor, projectID, rows)
}

func projectSnapshot(proj *ent.Project) policy.ProjectSnapshot {
	snap := policy.ProjectSnapshot{ID: proj.ID, WorkspaceID: proj.WorkspaceID}
	for _, agent := range proj.Edges.Agents {
		snap.AgentIDs = append(snap.AgentIDs, agent.ID)
	}
	return snap
}

func (s *Service) resolveWorkspace(ctx context.Context, actor policy.Actor, proj *ent.Project) (int, error) {
	if actor.WorkspaceID != nil {
		return *actor.WorkspaceID, nil
	}
	if actor.Role == policy.RoleSuperAdmin {
		// Super admins import into the project's own workspace.
		return proj.WorkspaceID, nil
	}
	ws, err := s.workspaces.Default(ctx)
	if err != nil {
		return 0, domain.NewInternalError(err)
	}
	return ws.ID, nil
}
