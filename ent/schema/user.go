package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("Bcrypt hashed password"),
		field.String("name").
			NotEmpty().
			Comment("User full name"),
		field.Enum("role").
			NamedValues(
				"SuperAdmin", "SUPER_ADMIN",
				"Admin", "ADMIN",
				"Agent", "AGENT",
			).
			Default("AGENT").
			Comment("User role for access control"),
		field.JSON("permissions", []string{}).
			Optional().
			Comment("Capability tokens (e.g. delete_leads)"),
		field.Int("workspace_id").
			Optional().
			Nillable().
			Comment("Workspace the user belongs to (null for global super admins)"),
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

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("users").
			Field("workspace_id").
			Unique().
			Comment("Workspace membership"),
		edge.From("projects", Project.Type).
			Ref("agents").
			Comment("Projects this user is assigned to as agent"),
		edge.To("assigned_leads", Lead.Type).
			Comment("Leads individually assigned to this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("workspace_id"),
		index.Fields("role"),
	}
}
