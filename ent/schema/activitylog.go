package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityLog holds the schema definition for the ActivityLog entity.
// Append-only: entries are never updated or deleted. Lead and user are
// referenced by plain id so an entry survives deletion of either, and
// batch imports can log without a single lead id.
type ActivityLog struct {
	ent.Schema
}

// Fields of the ActivityLog.
func (ActivityLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Optional().
			Nillable().
			Comment("Lead the entry refers to (null for batch imports)"),
		field.Int("user_id").
			Comment("User who performed the action"),
		field.Enum("action").
			NamedValues(
				"StatusChange", "STATUS_CHANGE",
				"Import", "IMPORT",
			).
			Comment("Kind of activity"),
		field.String("previous_status").
			Optional().
			Comment("Status before the change"),
		field.String("new_status").
			Optional().
			Comment("Status after the change"),
		field.Text("details").
			Optional().
			Comment("Human-readable summary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the activity occurred"),
	}
}

// Indexes of the ActivityLog.
func (ActivityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at"),
		index.Fields("user_id"),
		index.Fields("action"),
	}
}
