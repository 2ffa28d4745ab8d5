package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A project groups leads inside a workspace and carries the set of
// agents allowed to work on it.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Project name"),
		field.Text("description").
			Optional().
			Comment("Project description"),
		field.Int("workspace_id").
			Comment("Owning workspace"),
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

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("projects").
			Field("workspace_id").
			Unique().
			Required().
			Comment("Owning workspace"),
		edge.To("agents", User.Type).
			Comment("Agents assigned to this project"),
		edge.To("leads", Lead.Type).
			Comment("Leads belonging to this project"),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("created_at"),
	}
}
