package leads

import (
	"context"
	"log"
	"time"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/lead"
	"github.com/dialdesk/dialdesk/ent/project"
	"github.com/dialdesk/dialdesk/pkg/activity"
	"github.com/dialdesk/dialdesk/pkg/domain"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/dialdesk/dialdesk/pkg/phone"
	"github.com/dialdesk/dialdesk/pkg/policy"
)

// Service handles lead business logic. Every mutation runs the same
// pipeline: fetch a snapshot, check access, check the record lock,
// filter fields, guard the status transition, persist, then append the
// activity trail.
type Service struct {
	db          *ent.Client
	activities  *activity.Service
	phoneRegion string
}

// NewService creates a new lead service
func NewService(db *ent.Client, activities *activity.Service, phoneRegion string) *Service {
	return &Service{
		db:          db,
		activities:  activities,
		phoneRegion: phoneRegion,
	}
}

// ListForProject returns the leads of a project the actor may see.
// Agents without project-level assignment still see leads individually
// assigned to them inside the project.
func (s *Service) ListForProject(ctx context.Context, actor policy.Actor, projectID int) ([]*ent.Lead, error) {
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
	query := s.db.Lead.Query().
		Where(lead.ProjectIDEQ(projectID)).
		Order(ent.Desc(lead.FieldCreatedAt))

	if !pol.CanViewProject(snapshotProject(proj)) {
		if actor.Role != policy.RoleAgent {
			return nil, domain.NewForbiddenError("no access to this project")
		}
		query = query.Where(lead.AssignedAgentIDEQ(actor.ID))
	}

	return query.All(ctx)
}

// Get fetches a single lead the actor may access.
func (s *Service) Get(ctx context.Context, actor policy.Actor, id int) (*ent.Lead, error) {
	l, snap, err := s.fetchSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.ForActor(actor).CanAccessLead(snap) {
		return nil, domain.NewForbiddenError("no access to this lead")
	}
	return l, nil
}

// Create inserts a new lead into a project. Agents creating leads get
// them assigned to themselves.
func (s *Service) Create(ctx context.Context, actor policy.Actor, req models.CreateLeadRequest) (*ent.Lead, error) {
	if req.Name == "" {
		return nil, domain.NewValidationError("lead name is required")
	}
	if req.ProjectID == 0 {
		return nil, domain.NewValidationError("project id is required")
	}

	proj, err := s.db.Project.Query().
		Where(project.IDEQ(req.ProjectID)).
		WithAgents().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("project")
		}
		return nil, domain.NewInternalError(err)
	}

	pol := policy.ForActor(actor)
	if !pol.CanViewProject(snapshotProject(proj)) {
		return nil, domain.NewForbiddenError("no access to this project")
	}

	status := policy.Status(req.Status)
	if req.Status == "" {
		status = policy.StatusNotInterested
	} else if !policy.IsValidStatus(status) {
		return nil, domain.NewValidationError("unknown status: " + req.Status)
	}

	phone.NormalizeAll(s.phoneRegion, &req.Phone, &req.Mobile, &req.CorporatePhone)

	create := s.db.Lead.Create().
		SetName(req.Name).
		SetStatus(string(status)).
		SetProjectID(proj.ID).
		SetWorkspaceID(proj.WorkspaceID).
		SetCompany(req.Company).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		SetMobile(req.Mobile).
		SetCorporatePhone(req.CorporatePhone).
		SetTitle(req.Title).
		SetIndustry(req.Industry).
		SetRevenue(req.Revenue).
		SetEmployees(req.Employees).
		SetState(req.State).
		SetLinkedin(req.LinkedIn).
		SetWebsite(req.Website).
		SetNotes(req.Notes).
		SetSource(req.Source).
		SetDealValue(req.DealValue)

	switch {
	case actor.Role == policy.RoleAgent:
		create.SetAssignedAgentID(actor.ID)
	case req.AssignedAgentID != nil:
		create.SetAssignedAgentID(*req.AssignedAgentID)
	}

	l, err := create.Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return l, nil
}

// Update applies a field->value change set to a lead under the actor's
// policy. Unauthorized fields are dropped and reported back, never
// fatal; a locked record or a disallowed status transition rejects the
// whole update.
func (s *Service) Update(ctx context.Context, actor policy.Actor, id int, req policy.UpdateRequest) (*ent.Lead, []string, error) {
	_, snap, err := s.fetchSnapshot(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	pol := policy.ForActor(actor)
	if !pol.CanAccessLead(snap) {
		return nil, nil, domain.NewForbiddenError("no access to this lead")
	}

	// The record lock is evaluated before any field filtering: a locked
	// lead rejects the whole mutation, benign fields included.
	if err := pol.CanMutateLead(snap); err != nil {
		return nil, nil, err
	}

	changes := policy.FilterUpdate(pol, req)

	var requestedStatus policy.Status
	statusChanging := false
	if v, ok := changes.Fields["status"]; ok {
		requestedStatus = v.(policy.Status)
		if !policy.IsValidStatus(requestedStatus) {
			return nil, nil, domain.NewValidationError("unknown status: " + string(requestedStatus))
		}
		if err := pol.CanTransitionStatus(snap.Status, requestedStatus); err != nil {
			return nil, nil, err
		}
		statusChanging = requestedStatus != snap.Status
	}

	update := s.db.Lead.UpdateOneID(id)
	s.applyChanges(update, changes.Fields)

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, domain.NewNotFoundError("lead")
		}
		return nil, nil, domain.NewInternalError(err)
	}

	// The audit entry is written synchronously, but its failure never
	// rolls back the committed lead change.
	if statusChanging {
		if err := s.activities.LogStatusChange(ctx, id, actor.ID, string(snap.Status), string(requestedStatus)); err != nil {
			log.Printf("⚠️  Failed to log status change for lead %d: %v", id, err)
		}
	}

	return updated, changes.Rejected, nil
}

// Delete removes a lead. Allowed for super admins and holders of the
// delete_leads capability.
func (s *Service) Delete(ctx context.Context, actor policy.Actor, id int) error {
	_, snap, err := s.fetchSnapshot(ctx, id)
	if err != nil {
		return err
	}

	pol := policy.ForActor(actor)
	if !pol.CanAccessLead(snap) {
		return domain.NewForbiddenError("no access to this lead")
	}
	if !pol.CanDelete() {
		return domain.NewForbiddenError("insufficient permissions to delete leads")
	}

	if err := s.db.Lead.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("lead")
		}
		return domain.NewInternalError(err)
	}
	return nil
}

// DueFollowUps returns leads whose follow-up is due at or before the
// given time, excluding locked records.
func (s *Service) DueFollowUps(ctx context.Context, by time.Time) ([]*ent.Lead, error) {
	return s.db.Lead.Query().
		Where(
			lead.NextFollowUpNotNil(),
			lead.NextFollowUpLTE(by),
			lead.StatusNotIn(string(policy.StatusSalesComplete), string(policy.StatusNotQualified)),
		).
		Order(ent.Asc(lead.FieldNextFollowUp)).
		All(ctx)
}

// fetchSnapshot loads a lead with its project's agent set and builds
// the policy snapshot for it.
func (s *Service) fetchSnapshot(ctx context.Context, id int) (*ent.Lead, policy.LeadSnapshot, error) {
	l, err := s.db.Lead.Query().
		Where(lead.IDEQ(id)).
		WithProject(func(q *ent.ProjectQuery) {
			q.WithAgents()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, policy.LeadSnapshot{}, domain.NewNotFoundError("lead")
		}
		return nil, policy.LeadSnapshot{}, domain.NewInternalError(err)
	}

	snap := policy.LeadSnapshot{
		ID:              l.ID,
		ProjectID:       l.ProjectID,
		WorkspaceID:     l.WorkspaceID,
		Status:          policy.Status(l.Status),
		AssignedAgentID: l.AssignedAgentID,
	}
	if l.Edges.Project != nil {
		for _, agent := range l.Edges.Project.Edges.Agents {
			snap.ProjectAgentIDs = append(snap.ProjectAgentIDs, agent.ID)
		}
	}
	return l, snap, nil
}

// applyChanges maps filtered request fields onto the ent update builder.
func (s *Service) applyChanges(update *ent.LeadUpdateOne, fields map[string]any) {
	normalizePhone := func(raw string) string {
		formatted, err := phone.Normalize(raw, s.phoneRegion)
		if err != nil {
			return raw
		}
		return formatted
	}

	for field, value := range fields {
		switch field {
		case "name":
			update.SetName(value.(string))
		case "company":
			update.SetCompany(value.(string))
		case "email":
			update.SetEmail(value.(string))
		case "phone":
			update.SetPhone(normalizePhone(value.(string)))
		case "mobile":
			update.SetMobile(normalizePhone(value.(string)))
		case "corporatePhone":
			update.SetCorporatePhone(normalizePhone(value.(string)))
		case "title":
			update.SetTitle(value.(string))
		case "industry":
			update.SetIndustry(value.(string))
		case "revenue":
			update.SetRevenue(value.(string))
		case "employees":
			update.SetEmployees(value.(string))
		case "state":
			update.SetState(value.(string))
		case "linkedin":
			update.SetLinkedin(value.(string))
		case "website":
			update.SetWebsite(value.(string))
		case "notes":
			update.SetNotes(value.(string))
		case "source":
			update.SetSource(value.(string))
		case "status":
			update.SetStatus(string(value.(policy.Status)))
		case "dealValue":
			update.SetDealValue(value.(float64))
		case "nextFollowUp":
			if t := value.(*time.Time); t == nil {
				update.ClearNextFollowUp()
			} else {
				update.SetNextFollowUp(*t)
			}
		case "assignedAgentId":
			if agentID := value.(*int); agentID == nil {
				update.ClearAssignedAgentID()
			} else {
				update.SetAssignedAgentID(*agentID)
			}
		}
	}
}

func snapshotProject(proj *ent.Project) policy.ProjectSnapshot {
	snap := policy.ProjectSnapshot{ID: proj.ID, WorkspaceID: proj.WorkspaceID}
	for _, agent := range proj.Edges.Agents {
		snap.AgentIDs = append(snap.AgentIDs, agent.ID)
	}
	return snap
}
