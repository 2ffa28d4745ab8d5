package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
// Status is stored as a validated string rather than an enum: the
// canonical values carry spaces ("Sales Complete") and the allowed set
// is owned by pkg/policy.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Default("Unknown").
			Comment("Prospect name"),
		field.String("company").
			Optional().
			Comment("Company name"),
		field.String("email").
			Optional().
			Comment("Email address"),
		field.String("phone").
			Optional().
			Comment("Direct phone number"),
		field.String("mobile").
			Optional().
			Comment("Mobile number"),
		field.String("corporate_phone").
			Optional().
			Comment("Corporate phone number"),
		field.String("title").
			Optional().
			Comment("Job title"),
		field.String("industry").
			Optional().
			Comment("Industry"),
		field.String("revenue").
			Optional().
			Comment("Annual revenue"),
		field.String("employees").
			Optional().
			Comment("Company size"),
		field.String("state").
			Optional().
			Comment("State or location"),
		field.String("linkedin").
			Optional().
			Comment("LinkedIn URL"),
		field.String("website").
			Optional().
			Comment("Company website"),
		field.Text("notes").
			Optional().
			Comment("Call notes"),
		field.String("status").
			Default("Not Interested").
			Comment("Lead status (canonical set owned by pkg/policy)"),
		field.Time("next_follow_up").
			Optional().
			Nillable().
			Comment("Next scheduled follow-up"),
		field.Float("deal_value").
			Default(0).
			Comment("Deal value"),
		field.String("source").
			Optional().
			Comment("Lead source (e.g. CSV Import)"),
		field.Int("project_id").
			Comment("Owning project"),
		field.Int("workspace_id").
			Comment("Owning workspace, inherited from the project"),
		field.Int("assigned_agent_id").
			Optional().
			Nillable().
			Comment("Individually assigned agent"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("leads").
			Field("project_id").
			Unique().
			Required().
			Comment("Owning project"),
		edge.From("assigned_agent", User.Type).
			Ref("assigned_leads").
			Field("assigned_agent_id").
			Unique().
			Comment("Assigned agent, weak reference"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("workspace_id"),
		index.Fields("assigned_agent_id"),
		index.Fields("status"),
		index.Fields("next_follow_up"),
	}
}
