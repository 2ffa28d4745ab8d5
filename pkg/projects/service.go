package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/lead"
	"github.com/dialdesk/dialdesk/ent/project"
	"github.com/dialdesk/dialdesk/ent/user"
	"github.com/dialdesk/dialdesk/pkg/cache"
	"github.com/dialdesk/dialdesk/pkg/domain"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/dialdesk/dialdesk/pkg/policy"
	"github.com/dialdesk/dialdesk/pkg/workspace"
)

const listCacheTTL = 5 * time.Minute

// Service handles project business logic
type Service struct {
	db         *ent.Client
	workspaces *workspace.Service
	cache      *cache.Client
}

// NewService creates a new project service. The cache client is
// optional; a nil cache disables list caching.
func NewService(db *ent.Client, workspaces *workspace.Service, cacheClient *cache.Client) *Service {
	return &Service{
		db:         db,
		workspaces: workspaces,
		cache:      cacheClient,
	}
}

// List returns the projects visible to the actor: all of them for super
// admins, the workspace's for admins, the assigned ones for agents.
func (s *Service) List(ctx context.Context, actor policy.Actor) ([]models.ProjectResponse, error) {
	cacheKey := fmt.Sprintf("projects:actor:%d", actor.ID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			var out []models.ProjectResponse
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return out, nil
			}
		}
	}

	query := s.db.Project.Query().
		WithAgents().
		Order(ent.Desc(project.FieldCreatedAt))

	switch actor.Role {
	case policy.RoleSuperAdmin:
		// Unscoped.
	case policy.RoleAdmin:
		if actor.WorkspaceID == nil {
			// An admin without a workspace sees nothing.
			return []models.ProjectResponse{}, nil
		}
		query = query.Where(project.WorkspaceIDEQ(*actor.WorkspaceID))
	default:
		query = query.Where(project.HasAgentsWith(user.IDEQ(actor.ID)))
	}

	projs, err := query.All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	out := make([]models.ProjectResponse, 0, len(projs))
	for _, proj := range projs {
		count, err := s.db.Lead.Query().Where(lead.ProjectIDEQ(proj.ID)).Count(ctx)
		if err != nil {
			return nil, domain.NewInternalError(err)
		}
		out = append(out, toResponse(proj, count))
	}

	if s.cache != nil {
		if payload, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, listCacheTTL); err != nil {
				log.Printf("⚠️  Failed to cache project list: %v", err)
			}
		}
	}

	return out, nil
}

// Get fetches a single project the actor may view.
func (s *Service) Get(ctx context.Context, actor policy.Actor, id int) (*ent.Project, error) {
	proj, err := s.db.Project.Query().
		Where(project.IDEQ(id)).
		WithAgents().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("project")
		}
		return nil, domain.NewInternalError(err)
	}

	if !policy.ForActor(actor).CanViewProject(snapshot(proj)) {
		return nil, domain.NewForbiddenError("no access to this project")
	}
	return proj, nil
}

// Create creates a project in the actor's workspace. Agents cannot
// create projects. Super admins may target any workspace; everyone else
// lands in their own, falling back to the default one.
func (s *Service) Create(ctx context.Context, actor policy.Actor, req models.CreateProjectRequest) (*ent.Project, error) {
	if actor.Role == policy.RoleAgent {
		return nil, domain.NewForbiddenError("agents cannot create projects")
	}
	if req.Name == "" {
		return nil, domain.NewValidationError("project name is required")
	}

	workspaceID, err := s.targetWorkspace(ctx, actor, req.WorkspaceID)
	if err != nil {
		return nil, err
	}

	create := s.db.Project.Create().
		SetName(req.Name).
		SetDescription(req.Description).
		SetWorkspaceID(workspaceID)
	if len(req.AgentIDs) > 0 {
		create.AddAgentIDs(req.AgentIDs...)
	}

	proj, err := create.Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	s.invalidateLists(ctx)
	return proj, nil
}

// Update changes a project's name, description, or agent roster. A nil
// AgentIDs leaves the roster untouched; an empty slice clears it.
func (s *Service) Update(ctx context.Context, actor policy.Actor, id int, req models.UpdateProjectRequest) (*ent.Project, error) {
	if actor.Role == policy.RoleAgent {
		return nil, domain.NewForbiddenError("agents cannot modify projects")
	}

	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	update := s.db.Project.UpdateOneID(id)
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.AgentIDs != nil {
		update.ClearAgents()
		if len(*req.AgentIDs) > 0 {
			update.AddAgentIDs(*req.AgentIDs...)
		}
	}

	proj, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("project")
		}
		return nil, domain.NewInternalError(err)
	}

	s.invalidateLists(ctx)
	return proj, nil
}

// Delete removes a project and all of its leads in one transaction.
func (s *Service) Delete(ctx context.Context, actor policy.Actor, id int) error {
	if actor.Role == policy.RoleAgent {
		return domain.NewForbiddenError("agents cannot delete projects")
	}

	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return domain.NewInternalError(err)
	}

	if _, err := tx.Lead.Delete().Where(lead.ProjectIDEQ(id)).Exec(ctx); err != nil {
		tx.Rollback()
		return domain.NewInternalError(fmt.Errorf("failed to delete project leads: %w", err))
	}
	if err := tx.Project.DeleteOneID(id).Exec(ctx); err != nil {
		tx.Rollback()
		return domain.NewInternalError(fmt.Errorf("failed to delete project: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return domain.NewInternalError(err)
	}

	s.invalidateLists(ctx)
	return nil
}

func (s *Service) targetWorkspace(ctx context.Context, actor policy.Actor, requested *int) (int, error) {
	if actor.Role == policy.RoleSuperAdmin && requested != nil {
		return *requested, nil
	}
	if actor.WorkspaceID != nil {
		return *actor.WorkspaceID, nil
	}
	ws, err := s.workspaces.Default(ctx)
	if err != nil {
		return 0, domain.NewInternalError(err)
	}
	return ws.ID, nil
}

// invalidateLists drops every cached project list. Visibility depends
// on the actor, so there is no narrower key to target.
func (s *Service) invalidateLists(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "projects:*"); err != nil {
		log.Printf("⚠️  Failed to invalidate project cache: %v", err)
	}
}

func snapshot(proj *ent.Project) policy.ProjectSnapshot {
	snap := policy.ProjectSnapshot{ID: proj.ID, WorkspaceID: proj.WorkspaceID}
	for _, agent := range proj.Edges.Agents {
		snap.AgentIDs = append(snap.AgentIDs, agent.ID)
	}
	return snap
}

func toResponse(proj *ent.Project, leadCount int) models.ProjectResponse {
	resp := models.ProjectResponse{
		ID:          proj.ID,
		Name:        proj.Name,
		Description: proj.Description,
		WorkspaceID: proj.WorkspaceID,
		LeadCount:   leadCount,
		CreatedAt:   proj.CreatedAt,
	}
	for _, agent := range proj.Edges.Agents {
		resp.Agents = append(resp.Agents, models.UserResponse{
			ID:    agent.ID,
			Name:  agent.Name,
			Email: agent.Email,
			Role:  string(agent.Role),
		})
	}
	return resp
}
