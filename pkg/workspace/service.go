package workspace

import (
	"context"
	"fmt"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/workspace"
)

// DefaultName is the workspace provisioned for actors without one.
const DefaultName = "Default Workspace"

// Service handles tenant provisioning. Workspaces are created through
// an explicit provisioning call (onboarding, seeding, import fallback),
// never as a side effect of arbitrary request handling.
type Service struct {
	db *ent.Client
}

// NewService creates a new workspace service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Provision creates a workspace with the given name, returning the
// existing one if the name is already taken.
func (s *Service) Provision(ctx context.Context, name string) (*ent.Workspace, error) {
	existing, err := s.db.Workspace.Query().
		Where(workspace.NameEQ(name)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query workspace: %w", err)
	}

	ws, err := s.db.Workspace.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return ws, nil
}

// Default returns the fallback workspace, provisioning it on first use.
func (s *Service) Default(ctx context.Context) (*ent.Workspace, error) {
	return s.Provision(ctx, DefaultName)
}

// Get fetches a workspace by id.
func (s *Service) Get(ctx context.Context, id int) (*ent.Workspace, error) {
	return s.db.Workspace.Get(ctx, id)
}
