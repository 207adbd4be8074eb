package mcp

// Catalog is the static tool catalog: one definition per Sentry REST
// endpoint. Names follow the generated snake_case operation style of the
// source schema. Operations whose schema lacks a descriptive summary are
// named from method and path segments instead (see get_organizations_sessions).
//
// Pure data — the registry validates every entry at startup.
var Catalog = []ToolDef{
	// --- Organizations ---
	{
		Name:        "list_your_organizations",
		Description: "Return a list of organizations available to the authenticated session.",
		Method:      "GET",
		Path:        "/api/0/organizations/",
		Params: []Param{
			{Name: "owner", Type: "boolean", Description: "Restrict results to organizations in which you are an owner.", In: "query"},
			{Name: "query", Type: "string", Description: "Filter results by a query string.", In: "query"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "retrieve_an_organization",
		Description: "Return details on an individual organization, including various details such as membership access and teams.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "detailed", Type: "string", Description: "Specify '0' to omit teams and projects from the response.", In: "query"},
		},
	},
	{
		Name:        "update_an_organization",
		Description: "Update various attributes and configurable settings for the given organization.",
		Method:      "PUT",
		Path:        "/api/0/organizations/{organization_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "name", Type: "string", Description: "An optional new name for the organization.", In: "body"},
			{Name: "slug", Type: "string", Description: "An optional new slug for the organization.", In: "body"},
		},
	},

	// --- Teams ---
	{
		Name:        "list_an_organizations_teams",
		Description: "Return a list of teams bound to an organization.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/teams/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "detailed", Type: "string", Description: "Specify '0' to return team details that do not include projects.", In: "query"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "create_a_new_team",
		Description: "Create a new team bound to an organization.",
		Method:      "POST",
		Path:        "/api/0/organizations/{organization_id_or_slug}/teams/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "slug", Type: "string", Description: "Uniquely identifies a team. Required if name is not provided.", In: "body"},
			{Name: "name", Type: "string", Description: "The name of the team (deprecated in favor of slug).", In: "body"},
		},
	},
	{
		Name:        "retrieve_a_team",
		Description: "Return details on an individual team.",
		Method:      "GET",
		Path:        "/api/0/teams/{organization_id_or_slug}/{team_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the team belongs to.", Required: true, In: "path"},
			{Name: "team_id_or_slug", Type: "string", Description: "The ID or slug of the team.", Required: true, In: "path"},
		},
	},
	{
		Name:        "update_a_team",
		Description: "Update various attributes settings for the given team.",
		Method:      "PUT",
		Path:        "/api/0/teams/{organization_id_or_slug}/{team_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the team belongs to.", Required: true, In: "path"},
			{Name: "team_id_or_slug", Type: "string", Description: "The ID or slug of the team.", Required: true, In: "path"},
			{Name: "slug", Type: "string", Description: "Uniquely identifies a team.", In: "body"},
			{Name: "name", Type: "string", Description: "The new name for the team.", In: "body"},
		},
	},
	{
		Name:        "delete_a_team",
		Description: "Schedule a team for deletion. Deletion happens asynchronously and therefore is not immediate.",
		Method:      "DELETE",
		Path:        "/api/0/teams/{organization_id_or_slug}/{team_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the team belongs to.", Required: true, In: "path"},
			{Name: "team_id_or_slug", Type: "string", Description: "The ID or slug of the team.", Required: true, In: "path"},
		},
	},

	// --- Projects ---
	{
		Name:        "list_your_projects",
		Description: "Return a list of projects available to the authenticated session.",
		Method:      "GET",
		Path:        "/api/0/projects/",
		Params: []Param{
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "list_a_teams_projects",
		Description: "Return a list of projects bound to a team.",
		Method:      "GET",
		Path:        "/api/0/teams/{organization_id_or_slug}/{team_id_or_slug}/projects/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the team belongs to.", Required: true, In: "path"},
			{Name: "team_id_or_slug", Type: "string", Description: "The ID or slug of the team.", Required: true, In: "path"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "create_a_new_project",
		Description: "Create a new project bound to a team.",
		Method:      "POST",
		Path:        "/api/0/teams/{organization_id_or_slug}/{team_id_or_slug}/projects/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the team belongs to.", Required: true, In: "path"},
			{Name: "team_id_or_slug", Type: "string", Description: "The ID or slug of the team.", Required: true, In: "path"},
			{Name: "name", Type: "string", Description: "The name for the new project.", Required: true, In: "body"},
			{Name: "slug", Type: "string", Description: "Uniquely identifies a project.", In: "body"},
			{Name: "platform", Type: "string", Description: "The platform for the new project.", In: "body"},
			{Name: "default_rules", Type: "boolean", Description: "Defaults to true where the behavior is to alert the user on every new issue.", In: "body"},
		},
	},
	{
		Name:        "retrieve_a_project",
		Description: "Return details on an individual project.",
		Method:      "GET",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the project belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
		},
	},
	{
		Name:        "update_a_project",
		Description: "Update various attributes and configurable settings for the given project.",
		Method:      "PUT",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the project belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
			{Name: "name", Type: "string", Description: "The new name for the project.", In: "body"},
			{Name: "slug", Type: "string", Description: "The new slug for the project.", In: "body"},
			{Name: "platform", Type: "string", Description: "The new platform for the project.", In: "body"},
			{Name: "isBookmarked", Type: "boolean", Description: "Enables starring the project within the projects tab.", In: "body"},
			{Name: "options", Type: "object", Description: "Configure various project filters and settings.", In: "body"},
		},
	},
	{
		Name:        "delete_a_project",
		Description: "Schedule a project for deletion. Deletion happens asynchronously and therefore is not immediate.",
		Method:      "DELETE",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the project belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
		},
	},

	// --- Project client keys ---
	{
		Name:        "list_a_projects_client_keys",
		Description: "Return a list of client keys bound to a project.",
		Method:      "GET",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/keys/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the project belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
			{Name: "status", Type: "string", Description: "Filter client keys by 'active' or 'inactive'.", In: "query"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "create_a_new_client_key",
		Description: "Create a new client key bound to a project. The key's secret and public key are generated by the server.",
		Method:      "POST",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/keys/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the project belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
			{Name: "name", Type: "string", Description: "The optional name of the key.", In: "body"},
			{Name: "rateLimit", Type: "object", Description: "Applies a rate limit to cap the number of errors accepted during a given time window.", In: "body"},
		},
	},
	{
		Name:        "update_a_client_key",
		Description: "Update various settings for a client key.",
		Method:      "PUT",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/keys/{key_id}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the project belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
			{Name: "key_id", Type: "string", Description: "The ID of the client key.", Required: true, In: "path"},
			{Name: "name", Type: "string", Description: "The new name of the key.", In: "body"},
			{Name: "isActive", Type: "boolean", Description: "Activate or deactivate the key.", In: "body"},
			{Name: "rateLimit", Type: "object", Description: "Applies a rate limit to cap the number of errors accepted during a given time window.", In: "body"},
		},
	},
	{
		Name:        "delete_a_client_key",
		Description: "Delete a client key for a given project.",
		Method:      "DELETE",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/keys/{key_id}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the project belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
			{Name: "key_id", Type: "string", Description: "The ID of the client key.", Required: true, In: "path"},
		},
	},

	// --- Issues ---
	{
		Name:        "list_a_projects_issues",
		Description: "Return a list of issues bound to a project. Searchable with the Sentry search syntax via the query parameter.",
		Method:      "GET",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/issues/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the project belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
			{Name: "query", Type: "string", Description: "An optional Sentry structured search query. If not provided, defaults to 'is:unresolved'.", In: "query"},
			{Name: "statsPeriod", Type: "string", Description: "An optional stat period (one of '24h', '14d', or '').", In: "query"},
			{Name: "shortIdLookup", Type: "boolean", Description: "If this is set to true then short IDs are looked up by this function as well.", In: "query"},
			{Name: "hashes", Type: "string", Description: "A comma separated list of hashes of the issues to be looked up.", In: "query"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "retrieve_an_issue",
		Description: "Return details on an individual issue. This returns the basic stats for the issue (title, last seen, first seen), some overall numbers (number of comments, user reports) as well as the summarized event data.",
		Method:      "GET",
		Path:        "/api/0/issues/{issue_id}/",
		Params: []Param{
			{Name: "issue_id", Type: "string", Description: "The ID of the issue to retrieve.", Required: true, In: "path"},
		},
	},
	{
		Name:        "update_an_issue",
		Description: "Update an individual issue's attributes. Only the attributes submitted are modified.",
		Method:      "PUT",
		Path:        "/api/0/issues/{issue_id}/",
		Params: []Param{
			{Name: "issue_id", Type: "string", Description: "The ID of the issue to update.", Required: true, In: "path"},
			{Name: "status", Type: "string", Description: "The new status for the issue. Valid values are 'resolved', 'resolvedInNextRelease', 'unresolved', and 'ignored'.", In: "body"},
			{Name: "assignedTo", Type: "string", Description: "The actor ID (or username) of the user or team that should be assigned to this issue.", In: "body"},
			{Name: "hasSeen", Type: "boolean", Description: "In case this API call is invoked with a user context this allows changing of the flag that indicates if the user has seen the event.", In: "body"},
			{Name: "isBookmarked", Type: "boolean", Description: "In case this API call is invoked with a user context this allows changing of the bookmark flag.", In: "body"},
			{Name: "isSubscribed", Type: "boolean", Description: "In case this API call is invoked with a user context this allows the user to subscribe to workflow notifications for this issue.", In: "body"},
			{Name: "isPublic", Type: "boolean", Description: "Sets the issue to public or private.", In: "body"},
		},
	},
	{
		Name:        "remove_an_issue",
		Description: "Remove an individual issue. Removal happens asynchronously and therefore is not immediate.",
		Method:      "DELETE",
		Path:        "/api/0/issues/{issue_id}/",
		Params: []Param{
			{Name: "issue_id", Type: "string", Description: "The ID of the issue to remove.", Required: true, In: "path"},
		},
	},
	{
		Name:        "bulk_mutate_a_list_of_issues",
		Description: "Bulk mutate various attributes on issues. The list of issues to modify is given through the id query parameter; it is repeated for each issue.",
		Method:      "PUT",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/issues/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the issues belong to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project the issues belong to.", Required: true, In: "path"},
			{Name: "id", Type: "array", Description: "A list of IDs of the issues to be mutated. If not provided, all issues matching the status filter are modified.", In: "query"},
			{Name: "status", Type: "string", Description: "The new status for the issues. Valid values are 'resolved', 'resolvedInNextRelease', 'unresolved', and 'ignored'.", In: "body"},
			{Name: "isPublic", Type: "boolean", Description: "Sets the issues to public or private.", In: "body"},
			{Name: "merge", Type: "boolean", Description: "Allows to merge or unmerge different issues.", In: "body"},
		},
	},
	{
		Name:        "bulk_remove_a_list_of_issues",
		Description: "Permanently remove the given issues. The list of issues to modify is given through the id query parameter; it is repeated for each issue.",
		Method:      "DELETE",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/issues/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the issues belong to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project the issues belong to.", Required: true, In: "path"},
			{Name: "id", Type: "array", Description: "A list of IDs of the issues to be removed. This parameter shall be repeated for each issue.", In: "query"},
		},
	},

	// --- Issue events and hashes ---
	{
		Name:        "list_an_issues_events",
		Description: "Return a list of events bound to an issue.",
		Method:      "GET",
		Path:        "/api/0/issues/{issue_id}/events/",
		Params: []Param{
			{Name: "issue_id", Type: "string", Description: "The ID of the issue to retrieve.", Required: true, In: "path"},
			{Name: "full", Type: "boolean", Description: "If this is set to true then the event payload will include the full event body, including the stacktrace.", In: "query"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "retrieve_the_latest_event_for_an_issue",
		Description: "Retrieve the details of the latest event for an issue.",
		Method:      "GET",
		Path:        "/api/0/issues/{issue_id}/events/latest/",
		Params: []Param{
			{Name: "issue_id", Type: "string", Description: "The ID of the issue.", Required: true, In: "path"},
		},
	},
	{
		Name:        "retrieve_the_oldest_event_for_an_issue",
		Description: "Retrieve the details of the oldest event for an issue.",
		Method:      "GET",
		Path:        "/api/0/issues/{issue_id}/events/oldest/",
		Params: []Param{
			{Name: "issue_id", Type: "string", Description: "The ID of the issue.", Required: true, In: "path"},
		},
	},
	{
		Name:        "list_an_issues_hashes",
		Description: "Return a list of hashes associated with an issue.",
		Method:      "GET",
		Path:        "/api/0/issues/{issue_id}/hashes/",
		Params: []Param{
			{Name: "issue_id", Type: "string", Description: "The ID of the issue to retrieve.", Required: true, In: "path"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},

	// --- Project events ---
	{
		Name:        "list_a_projects_error_events",
		Description: "Return a list of error events bound to a project.",
		Method:      "GET",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/events/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the events belong to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
			{Name: "full", Type: "boolean", Description: "If this is set to true then the event payload will include the full event body, including the stacktrace.", In: "query"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "retrieve_an_event_for_a_project",
		Description: "Return details on an individual event.",
		Method:      "GET",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/events/{event_id}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the event belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
			{Name: "event_id", Type: "string", Description: "The ID of the event to retrieve. It is the hexadecimal ID as reported by the client.", Required: true, In: "path"},
		},
	},

	// --- Releases ---
	{
		Name:        "list_an_organizations_releases",
		Description: "Return a list of releases for a given organization.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/releases/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "query", Type: "string", Description: "A filter on the version of the releases to return.", In: "query"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "create_a_new_release_for_an_organization",
		Description: "Create a new release for the given organization. Releases are used by Sentry to improve its error reporting abilities by correlating first seen events with the release that might have introduced the problem.",
		Method:      "POST",
		Path:        "/api/0/organizations/{organization_id_or_slug}/releases/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "version", Type: "string", Description: "A version identifier for this release. Can be a version number, a commit hash, etc.", Required: true, In: "body"},
			{Name: "projects", Type: "array", Description: "A list of project slugs that are involved in this release.", Required: true, In: "body"},
			{Name: "ref", Type: "string", Description: "An optional commit reference. This is useful if a tagged version has been provided.", In: "body"},
			{Name: "url", Type: "string", Description: "A URL that points to the release. This can be the path to an online interface to the source code for instance.", In: "body"},
			{Name: "dateReleased", Type: "string", Description: "An optional date that indicates when the release went live. If not provided the current time is assumed.", In: "body"},
			{Name: "commits", Type: "array", Description: "An optional list of commit data to be associated with the release.", In: "body"},
			{Name: "refs", Type: "array", Description: "An optional way to indicate the start and end commits for each repository included in a release.", In: "body"},
		},
	},
	{
		Name:        "retrieve_an_organizations_release",
		Description: "Return details on an individual release.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/releases/{version}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "version", Type: "string", Description: "The version identifier of the release.", Required: true, In: "path"},
		},
	},
	{
		Name:        "update_an_organizations_release",
		Description: "Update a release for a given organization.",
		Method:      "PUT",
		Path:        "/api/0/organizations/{organization_id_or_slug}/releases/{version}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "version", Type: "string", Description: "The version identifier of the release.", Required: true, In: "path"},
			{Name: "ref", Type: "string", Description: "An optional commit reference.", In: "body"},
			{Name: "url", Type: "string", Description: "A URL that points to the release.", In: "body"},
			{Name: "dateReleased", Type: "string", Description: "An optional date that indicates when the release went live.", In: "body"},
			{Name: "commits", Type: "array", Description: "An optional list of commit data to be associated with the release.", In: "body"},
		},
	},
	{
		Name:        "delete_an_organizations_release",
		Description: "Permanently remove a release and all of its files.",
		Method:      "DELETE",
		Path:        "/api/0/organizations/{organization_id_or_slug}/releases/{version}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "version", Type: "string", Description: "The version identifier of the release.", Required: true, In: "path"},
		},
	},
	{
		Name:        "list_an_organizations_release_files",
		Description: "Return a list of files for a given release.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/releases/{version}/files/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "version", Type: "string", Description: "The version identifier of the release.", Required: true, In: "path"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "retrieve_an_organizations_release_file",
		Description: "Retrieve a file for a given release. Pass download=1 to stream the raw file contents instead of the file metadata.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/releases/{version}/files/{file_id}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "version", Type: "string", Description: "The version identifier of the release.", Required: true, In: "path"},
			{Name: "file_id", Type: "string", Description: "The ID of the file to retrieve.", Required: true, In: "path"},
			{Name: "download", Type: "boolean", Description: "If this is set to true, then the response is the raw file contents rather than the file metadata.", In: "query"},
		},
	},
	{
		Name:        "delete_an_organizations_release_file",
		Description: "Permanently remove a file from a release.",
		Method:      "DELETE",
		Path:        "/api/0/organizations/{organization_id_or_slug}/releases/{version}/files/{file_id}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "version", Type: "string", Description: "The version identifier of the release.", Required: true, In: "path"},
			{Name: "file_id", Type: "string", Description: "The ID of the file to delete.", Required: true, In: "path"},
		},
	},
	{
		Name:        "list_a_releases_deploys",
		Description: "Return a list of deploys for a given release.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/releases/{version}/deploys/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "version", Type: "string", Description: "The version identifier of the release.", Required: true, In: "path"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "create_a_new_deploy_for_an_organization",
		Description: "Create a deploy for a given release.",
		Method:      "POST",
		Path:        "/api/0/organizations/{organization_id_or_slug}/releases/{version}/deploys/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "version", Type: "string", Description: "The version identifier of the release.", Required: true, In: "path"},
			{Name: "environment", Type: "string", Description: "The environment you're deploying to.", Required: true, In: "body"},
			{Name: "name", Type: "string", Description: "The optional name of the deploy.", In: "body"},
			{Name: "url", Type: "string", Description: "The optional URL that points to the deploy.", In: "body"},
			{Name: "dateStarted", Type: "string", Description: "An optional date that indicates when the deploy started.", In: "body"},
			{Name: "dateFinished", Type: "string", Description: "An optional date that indicates when the deploy ended. If not provided, the current time is used.", In: "body"},
			{Name: "projects", Type: "array", Description: "The optional list of project slugs to restrict the deploy to.", In: "body"},
		},
	},
	{
		Name:        "list_an_organization_releases_commits",
		Description: "Return a list of commits for a given release.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/releases/{version}/commits/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "version", Type: "string", Description: "The version identifier of the release.", Required: true, In: "path"},
		},
	},

	// --- Organization members ---
	{
		Name:        "list_an_organizations_members",
		Description: "Return a list of members bound to an organization.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/members/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "retrieve_an_organization_member",
		Description: "Retrieve an organization member's details.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/members/{member_id}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "member_id", Type: "string", Description: "The ID of the organization member.", Required: true, In: "path"},
		},
	},
	{
		Name:        "add_a_member_to_an_organization",
		Description: "Add or invite a member to an organization.",
		Method:      "POST",
		Path:        "/api/0/organizations/{organization_id_or_slug}/members/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "email", Type: "string", Description: "The email address to send the invitation to.", Required: true, In: "body"},
			{Name: "orgRole", Type: "string", Description: "The organization-level role of the new member. Roles include 'billing', 'member', 'manager', and 'owner'.", In: "body"},
			{Name: "teamRoles", Type: "array", Description: "The team and team-roles assigned to the member.", In: "body"},
			{Name: "sendInvite", Type: "boolean", Description: "Whether or not to send an invite notification through email. Defaults to true.", In: "body"},
			{Name: "reinvite", Type: "boolean", Description: "Whether or not to re-invite a user who has already been invited to the organization.", In: "body"},
		},
	},
	{
		Name:        "update_an_organization_member",
		Description: "Update an organization member's organization-level and team-level roles.",
		Method:      "PUT",
		Path:        "/api/0/organizations/{organization_id_or_slug}/members/{member_id}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "member_id", Type: "string", Description: "The ID of the organization member.", Required: true, In: "path"},
			{Name: "orgRole", Type: "string", Description: "The new organization-level role of the member.", In: "body"},
			{Name: "teamRoles", Type: "array", Description: "The team and team-roles assigned to the member.", In: "body"},
		},
	},
	{
		Name:        "delete_an_organization_member",
		Description: "Remove an organization member.",
		Method:      "DELETE",
		Path:        "/api/0/organizations/{organization_id_or_slug}/members/{member_id}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "member_id", Type: "string", Description: "The ID of the organization member.", Required: true, In: "path"},
		},
	},
	{
		Name:        "add_an_organization_member_to_a_team",
		Description: "Add an organization member to a team. The response depends on the scopes of the requesting token and the team's open membership setting.",
		Method:      "POST",
		Path:        "/api/0/organizations/{organization_id_or_slug}/members/{member_id}/teams/{team_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "member_id", Type: "string", Description: "The ID of the organization member.", Required: true, In: "path"},
			{Name: "team_id_or_slug", Type: "string", Description: "The ID or slug of the team.", Required: true, In: "path"},
		},
	},
	{
		Name:        "delete_an_organization_member_from_a_team",
		Description: "Delete an organization member from a team.",
		Method:      "DELETE",
		Path:        "/api/0/organizations/{organization_id_or_slug}/members/{member_id}/teams/{team_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "member_id", Type: "string", Description: "The ID of the organization member.", Required: true, In: "path"},
			{Name: "team_id_or_slug", Type: "string", Description: "The ID or slug of the team.", Required: true, In: "path"},
		},
	},

	// --- Monitors (crons) ---
	{
		Name:        "list_an_organizations_monitors",
		Description: "List monitors, including nested monitor environments, for an organization. May be filtered to a project or environment.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/monitors/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "project", Type: "array", Description: "The IDs of projects to filter by. All projects from the organization are used by default.", In: "query"},
			{Name: "environment", Type: "array", Description: "The names of environments to filter by.", In: "query"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "retrieve_a_monitor",
		Description: "Retrieve details for a monitor.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/monitors/{monitor_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "monitor_id_or_slug", Type: "string", Description: "The ID or slug of the monitor.", Required: true, In: "path"},
			{Name: "environment", Type: "array", Description: "The names of environments to filter by.", In: "query"},
		},
	},
	{
		Name:        "update_a_monitor",
		Description: "Update a monitor.",
		Method:      "PUT",
		Path:        "/api/0/organizations/{organization_id_or_slug}/monitors/{monitor_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "monitor_id_or_slug", Type: "string", Description: "The ID or slug of the monitor.", Required: true, In: "path"},
			{Name: "name", Type: "string", Description: "The new name of the monitor.", In: "body"},
			{Name: "slug", Type: "string", Description: "The new slug of the monitor.", In: "body"},
			{Name: "status", Type: "string", Description: "Status of the monitor. Disabled monitors do not generate events and do not count towards the monitor quota.", In: "body"},
			{Name: "config", Type: "object", Description: "The configuration for the monitor's schedule and margins.", In: "body"},
			{Name: "isMuted", Type: "boolean", Description: "Disable creation of monitor incidents.", In: "body"},
		},
	},
	{
		Name:        "delete_a_monitor",
		Description: "Delete a monitor or monitor environments.",
		Method:      "DELETE",
		Path:        "/api/0/organizations/{organization_id_or_slug}/monitors/{monitor_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "monitor_id_or_slug", Type: "string", Description: "The ID or slug of the monitor.", Required: true, In: "path"},
			{Name: "environment", Type: "array", Description: "The names of environments to filter by.", In: "query"},
		},
	},
	{
		Name:        "retrieve_check_ins_for_a_monitor",
		Description: "Retrieve a list of check-ins for a monitor.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/monitors/{monitor_id_or_slug}/checkins/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "monitor_id_or_slug", Type: "string", Description: "The ID or slug of the monitor.", Required: true, In: "path"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},

	// --- Environments, tags, stats ---
	{
		Name:        "list_a_projects_environments",
		Description: "Lists a project's environments.",
		Method:      "GET",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/environments/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the project belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
			{Name: "visibility", Type: "string", Description: "The visibility of the environments to filter by: 'all', 'hidden', or 'visible'.", In: "query"},
		},
	},
	{
		Name:        "list_a_tags_values",
		Description: "Return a list of values associated with this key for an individual project. The values returned are limited to 1000 unique values.",
		Method:      "GET",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/tags/{key}/values/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
			{Name: "key", Type: "string", Description: "The tag key to look the values up for.", Required: true, In: "path"},
		},
	},
	{
		Name:        "retrieve_event_counts_for_an_organization",
		Description: "Query event counts for your organization. Select a field, define a date range, and group or filter by columns.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/stats_v2/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "field", Type: "array", Description: "The list of fields to query, e.g. 'sum(quantity)' or 'sum(times_seen)'.", Required: true, In: "query"},
			{Name: "groupBy", Type: "array", Description: "The list of columns to group by, e.g. 'outcome' and 'reason'.", Required: true, In: "query"},
			{Name: "statsPeriod", Type: "string", Description: "The period of time for the query, expressed as '<number><unit>', e.g. '1d' or '4w'.", In: "query"},
			{Name: "interval", Type: "string", Description: "The resolution of the time series, expressed in the same format as statsPeriod.", In: "query"},
			{Name: "start", Type: "string", Description: "The start of the period of time for the query, expected in ISO-8601 format.", In: "query"},
			{Name: "end", Type: "string", Description: "The end of the period of time for the query, expected in ISO-8601 format.", In: "query"},
			{Name: "project", Type: "array", Description: "The IDs of projects to filter by. All projects from the organization are used by default.", In: "query"},
			{Name: "category", Type: "string", Description: "Filter by data category, e.g. 'error' or 'transaction'.", In: "query"},
			{Name: "outcome", Type: "string", Description: "Filter by outcome, e.g. 'accepted' or 'rate_limited'.", In: "query"},
		},
	},
	{
		Name:        "query_discover_events_in_table_format",
		Description: "Retrieve a table of discover events matching a search query, with columns selected through the field parameter.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/events/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "field", Type: "array", Description: "The fields, functions, or equations to request for the query.", Required: true, In: "query"},
			{Name: "query", Type: "string", Description: "Filters results by using query syntax.", In: "query"},
			{Name: "sort", Type: "string", Description: "What to order the results of the query by.", In: "query"},
			{Name: "statsPeriod", Type: "string", Description: "The period of time for the query, expressed as '<number><unit>'.", In: "query"},
			{Name: "environment", Type: "array", Description: "The names of environments to filter by.", In: "query"},
			{Name: "project", Type: "array", Description: "The IDs of projects to filter by.", In: "query"},
			{Name: "per_page", Type: "number", Description: "Limit the number of rows to return in the result.", In: "query"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},

	// --- Resolution helpers ---
	{
		Name:        "resolve_a_short_id",
		Description: "Resolve a short ID to the project slug and group details.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/shortids/{short_id}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "short_id", Type: "string", Description: "The short ID to look up.", Required: true, In: "path"},
		},
	},
	{
		Name:        "resolve_an_event_id",
		Description: "Resolve an event ID to the project slug and internal issue ID and internal event ID.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/eventids/{event_id}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "event_id", Type: "string", Description: "The event ID to look up. It is the hexadecimal ID as reported by the client.", Required: true, In: "path"},
		},
	},

	// --- Debug information files ---
	{
		Name:        "list_a_projects_debug_information_files",
		Description: "Retrieve a list of debug information files for a specified project.",
		Method:      "GET",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/files/dsyms/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the file belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project to list the DIFs of.", Required: true, In: "path"},
			{Name: "cursor", Type: "string", Description: "Pagination cursor.", In: "query"},
		},
	},
	{
		Name:        "delete_a_specific_projects_debug_information_file",
		Description: "Delete a debug information file for a given project.",
		Method:      "DELETE",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/files/dsyms/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization the file belongs to.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project to delete the DIF from.", Required: true, In: "path"},
			{Name: "id", Type: "string", Description: "The ID of the DIF to delete.", Required: true, In: "query"},
		},
	},

	// --- Operations without a descriptive summary in the source schema;
	// named from method and path segments. ---
	{
		Name:        "get_organizations_sessions",
		Description: "GET /api/0/organizations/{organization_id_or_slug}/sessions/: release health session statistics for an organization.",
		Method:      "GET",
		Path:        "/api/0/organizations/{organization_id_or_slug}/sessions/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "field", Type: "array", Description: "The list of fields to query, e.g. 'sum(session)'.", Required: true, In: "query"},
			{Name: "statsPeriod", Type: "string", Description: "The period of time for the query, expressed as '<number><unit>'.", In: "query"},
			{Name: "interval", Type: "string", Description: "The resolution of the time series.", In: "query"},
			{Name: "groupBy", Type: "array", Description: "The list of properties to group by.", In: "query"},
			{Name: "project", Type: "array", Description: "The IDs of projects to filter by.", In: "query"},
		},
	},
	{
		Name:        "get_projects_users",
		Description: "GET /api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/users/: users who have been seen in events for a project.",
		Method:      "GET",
		Path:        "/api/0/projects/{organization_id_or_slug}/{project_id_or_slug}/users/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Description: "The ID or slug of the organization.", Required: true, In: "path"},
			{Name: "project_id_or_slug", Type: "string", Description: "The ID or slug of the project.", Required: true, In: "path"},
			{Name: "query", Type: "string", Description: "Limit results to users matching the given query, e.g. 'id:123' or 'email:{email}'.", In: "query"},
		},
	},
}
