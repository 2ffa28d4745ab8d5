package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/activitylog"
)

// Service handles the append-only activity trail. Entries are written
// as a side effect of status changes and imports and are never updated
// or deleted.
type Service struct {
	db *ent.Client
}

// NewService creates a new activity service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// LogStatusChange records a lead status transition.
func (s *Service) LogStatusChange(ctx context.Context, leadID, userID int, previous, next string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.ActivityLog.Create().
		SetLeadID(leadID).
		SetUserID(userID).
		SetAction(activitylog.ActionStatusChange).
		SetPreviousStatus(previous).
		SetNewStatus(next).
		SetDetails(fmt.Sprintf("Status changed from %s to %s", previous, next)).
		Save(ctx)
	return err
}

// LogImport records a bulk import. Batch entries carry no lead id.
func (s *Service) LogImport(ctx context.Context, userID, count int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.ActivityLog.Create().
		SetUserID(userID).
		SetAction(activitylog.ActionImport).
		SetDetails(fmt.Sprintf("Imported %d leads via CSV", count)).
		Save(ctx)
	return err
}

// ForLead returns the activity entries for a lead, newest first.
func (s *Service) ForLead(ctx context.Context, leadID int) ([]*ent.ActivityLog, error) {
	return s.db.ActivityLog.Query().
		Where(activitylog.LeadIDEQ(leadID)).
		Order(ent.Desc(activitylog.FieldCreatedAt)).
		All(ctx)
}
