// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityLogsColumns holds the columns for the "activity_logs" table.
	ActivityLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lead_id", Type: field.TypeInt, Nullable: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"STATUS_CHANGE", "IMPORT"}},
		{Name: "previous_status", Type: field.TypeString, Nullable: true},
		{Name: "new_status", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ActivityLogsTable holds the schema information for the "activity_logs" table.
	ActivityLogsTable = &schema.Table{
		Name:       "activity_logs",
		Columns:    ActivityLogsColumns,
		PrimaryKey: []*schema.Column{ActivityLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activitylog_lead_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[1], ActivityLogsColumns[7]},
			},
			{
				Name:    "activitylog_user_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[2]},
			},
			{
				Name:    "activitylog_action",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[3]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Default: "Unknown"},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "mobile", Type: field.TypeString, Nullable: true},
		{Name: "corporate_phone", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "revenue", Type: field.TypeString, Nullable: true},
		{Name: "employees", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "linkedin", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeString, Default: "Not Interested"},
		{Name: "next_follow_up", Type: field.TypeTime, Nullable: true},
		{Name: "deal_value", Type: field.TypeFloat64, Default: 0},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "workspace_id", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt},
		{Name: "assigned_agent_id", Type: field.TypeInt, Nullable: true},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_projects_leads",
				Columns:    []*schema.Column{LeadsColumns[22]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "leads_users_assigned_leads",
				Columns:    []*schema.Column{LeadsColumns[23]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_project_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[22]},
			},
			{
				Name:    "lead_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[19]},
			},
			{
				Name:    "lead_assigned_agent_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[23]},
			},
			{
				Name:    "lead_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[15]},
			},
			{
				Name:    "lead_next_follow_up",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[16]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_workspaces_projects",
				Columns:    []*schema.Column{ProjectsColumns[5]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[5]},
			},
			{
				Name:    "project_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"SUPER_ADMIN", "ADMIN", "AGENT"}, Default: "AGENT"},
		{Name: "permissions", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_workspaces_users",
				Columns:    []*schema.Column{UsersColumns[8]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[8]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workspace_name",
				Unique:  true,
				Columns: []*schema.Column{WorkspacesColumns[1]},
			},
		},
	}
	// ProjectAgentsColumns holds the columns for the "project_agents" table.
	ProjectAgentsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ProjectAgentsTable holds the schema information for the "project_agents" table.
	ProjectAgentsTable = &schema.Table{
		Name:       "project_agents",
		Columns:    ProjectAgentsColumns,
		PrimaryKey: []*schema.Column{ProjectAgentsColumns[0], ProjectAgentsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_agents_project_id",
				Columns:    []*schema.Column{ProjectAgentsColumns[0]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "project_agents_user_id",
				Columns:    []*schema.Column{ProjectAgentsColumns[1]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityLogsTable,
		LeadsTable,
		ProjectsTable,
		UsersTable,
		WorkspacesTable,
		ProjectAgentsTable,
	}
)

func init() {
	LeadsTable.ForeignKeys[0].RefTable = ProjectsTable
	LeadsTable.ForeignKeys[1].RefTable = UsersTable
	ProjectsTable.ForeignKeys[0].RefTable = WorkspacesTable
	UsersTable.ForeignKeys[0].RefTable = WorkspacesTable
	ProjectAgentsTable.ForeignKeys[0].RefTable = ProjectsTable
	ProjectAgentsTable.ForeignKeys[1].RefTable = UsersTable
}
