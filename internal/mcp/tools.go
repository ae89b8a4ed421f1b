package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/domain/review"
	"github.com/eishan-studio/eishan/internal/domain/view"
)

// ListProjectsInput filters the project listing.
type ListProjectsInput struct {
	Query string `json:"query,omitempty" jsonschema:"case-sensitive substring filter on title"`
}

// ProjectListResult wraps the project listing.
type ProjectListResult struct {
	Projects []project.Record `json:"projects"`
}

// GetProjectInput selects one project.
type GetProjectInput struct {
	ID string `json:"id" jsonschema:"project identifier"`
}

// ProjectResult wraps a single project.
type ProjectResult struct {
	Project project.Record `json:"project"`
}

// ProjectFieldsInput carries the writable project fields.
type ProjectFieldsInput struct {
	Title    string `json:"title" jsonschema:"project title"`
	Category string `json:"category" jsonschema:"project category"`
	Desc     string `json:"desc" jsonschema:"short description"`
	FullDesc string `json:"full_desc,omitempty" jsonschema:"full description"`
	Image    string `json:"img,omitempty" jsonschema:"image URL"`
	Featured bool   `json:"featured,omitempty" jsonschema:"featured slider flag"`
	Year     string `json:"year,omitempty" jsonschema:"completion year"`
	Location string `json:"location,omitempty" jsonschema:"project location"`
	Client   string `json:"client,omitempty" jsonschema:"client name"`
	Area     string `json:"area,omitempty" jsonschema:"built area"`
}

// UpdateProjectInput edits one project.
type UpdateProjectInput struct {
	ID string `json:"id" jsonschema:"project identifier"`
	ProjectFieldsInput
}

// UpdateProjectByTitleInput edits the first project whose title matches.
type UpdateProjectByTitleInput struct {
	OriginalTitle string `json:"original_title" jsonschema:"current title of the project to edit; first match wins"`
	ProjectFieldsInput
}

// DeleteProjectsByTitleInput deletes every project matching a title.
type DeleteProjectsByTitleInput struct {
	Title   string `json:"title" jsonschema:"title to delete; all matches are removed"`
	Confirm bool   `json:"confirm,omitempty" jsonschema:"must be true; mirrors the dashboard confirmation step"`
}

// DeleteByTitleResult reports how many records a title delete removed.
type DeleteByTitleResult struct {
	Removed int `json:"removed"`
}

// DeleteProjectInput deletes one project.
type DeleteProjectInput struct {
	ID      string `json:"id" jsonschema:"project identifier"`
	Confirm bool   `json:"confirm,omitempty" jsonschema:"must be true; mirrors the dashboard confirmation step"`
}

// DeleteResult reports a completed delete.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// ListReviewsInput filters the review listing.
type ListReviewsInput struct {
	Query string `json:"query,omitempty" jsonschema:"case-sensitive substring filter on name"`
}

// ReviewListResult wraps the review listing.
type ReviewListResult struct {
	Reviews []review.Review `json:"reviews"`
}

// ReviewFieldsInput carries the writable review fields.
type ReviewFieldsInput struct {
	Name  string `json:"name" jsonschema:"reviewer name"`
	Role  string `json:"role" jsonschema:"reviewer role"`
	Text  string `json:"text" jsonschema:"testimonial text"`
	Image string `json:"img,omitempty" jsonschema:"avatar URL"`
}

// CreateReviewInput adds a review.
type CreateReviewInput struct {
	ID int64 `json:"id,omitempty" jsonschema:"numeric identifier; time-derived when omitted"`
	ReviewFieldsInput
}

// UpdateReviewInput edits one review.
type UpdateReviewInput struct {
	ID int64 `json:"id" jsonschema:"review identifier"`
	ReviewFieldsInput
}

// DeleteReviewInput deletes one review.
type DeleteReviewInput struct {
	ID      int64 `json:"id" jsonschema:"review identifier"`
	Confirm bool  `json:"confirm,omitempty" jsonschema:"must be true; mirrors the dashboard confirmation step"`
}

// ReviewResult wraps a single review.
type ReviewResult struct {
	Review review.Review `json:"review"`
}

// GetViewStateInput has no parameters.
type GetViewStateInput struct{}

// ViewStateResult describes the navigator snapshot.
type ViewStateResult struct {
	Screen  string `json:"screen"`
	Phase   string `json:"phase"`
	Label   string `json:"label,omitempty"`
	Project string `json:"project_id,omitempty"`
	Epoch   uint64 `json:"epoch"`
}

// NavigateInput requests a screen change.
type NavigateInput struct {
	Screen    string `json:"screen,omitempty" jsonschema:"target screen: home, oil, login, register, dashboard"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"project identifier for the detail screen; overrides screen"`
}

// NavigateResult reports whether the navigation was accepted.
type NavigateResult struct {
	Accepted bool `json:"accepted"`
}

func registerTools(server *sdkmcp.Server, svcs Services) {
	requireSession := func() error {
		if svcs.Sessions == nil || !svcs.Sessions.Present() {
			return MapError(errUnauthorized)
		}
		return nil
	}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List published projects, optionally filtered by a title substring",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ListProjectsInput) (*sdkmcp.CallToolResult, ProjectListResult, error) {
		recs, err := svcs.Projects.Search(ctx, input.Query)
		if err != nil {
			return nil, ProjectListResult{}, MapError(err)
		}
		return nil, ProjectListResult{Projects: recs}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get one project by ID",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input GetProjectInput) (*sdkmcp.CallToolResult, ProjectResult, error) {
		rec, err := svcs.Projects.Get(ctx, input.ID)
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: *rec}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Publish a new project at the head of the collection",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ProjectFieldsInput) (*sdkmcp.CallToolResult, ProjectResult, error) {
		if err := requireSession(); err != nil {
			return nil, ProjectResult{}, err
		}
		rec, err := svcs.Projects.Create(ctx, project.CreateRequest{
			Title:    input.Title,
			Category: input.Category,
			Desc:     input.Desc,
			FullDesc: input.FullDesc,
			Image:    input.Image,
			Featured: input.Featured,
			Year:     input.Year,
			Location: input.Location,
			Client:   input.Client,
			Area:     input.Area,
		})
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: *rec}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Replace a project's fields, keeping its position",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input UpdateProjectInput) (*sdkmcp.CallToolResult, ProjectResult, error) {
		if err := requireSession(); err != nil {
			return nil, ProjectResult{}, err
		}
		rec, err := svcs.Projects.Update(ctx, input.ID, project.UpdateRequest{
			Title:    input.Title,
			Category: input.Category,
			Desc:     input.Desc,
			FullDesc: input.FullDesc,
			Image:    input.Image,
			Featured: input.Featured,
			Year:     input.Year,
			Location: input.Location,
			Client:   input.Client,
			Area:     input.Area,
		})
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: *rec}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project_by_title",
		Description: "Replace the fields of the first project whose title matches",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input UpdateProjectByTitleInput) (*sdkmcp.CallToolResult, ProjectResult, error) {
		if err := requireSession(); err != nil {
			return nil, ProjectResult{}, err
		}
		rec, err := svcs.Projects.UpdateByTitle(ctx, input.OriginalTitle, project.UpdateRequest{
			Title:    input.Title,
			Category: input.Category,
			Desc:     input.Desc,
			FullDesc: input.FullDesc,
			Image:    input.Image,
			Featured: input.Featured,
			Year:     input.Year,
			Location: input.Location,
			Client:   input.Client,
			Area:     input.Area,
		})
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: *rec}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_projects_by_title",
		Description: "Delete every project matching a title after confirmation",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input DeleteProjectsByTitleInput) (*sdkmcp.CallToolResult, DeleteByTitleResult, error) {
		if err := requireSession(); err != nil {
			return nil, DeleteByTitleResult{}, err
		}
		if !input.Confirm {
			return nil, DeleteByTitleResult{}, MapError(errConfirmRequired)
		}
		removed, err := svcs.Projects.RemoveByTitle(ctx, input.Title)
		if err != nil {
			return nil, DeleteByTitleResult{}, MapError(err)
		}
		return nil, DeleteByTitleResult{Removed: removed}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project by ID after confirmation",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input DeleteProjectInput) (*sdkmcp.CallToolResult, DeleteResult, error) {
		if err := requireSession(); err != nil {
			return nil, DeleteResult{}, err
		}
		if !input.Confirm {
			return nil, DeleteResult{}, MapError(errConfirmRequired)
		}
		if err := svcs.Projects.Remove(ctx, input.ID); err != nil {
			return nil, DeleteResult{}, MapError(err)
		}
		return nil, DeleteResult{Deleted: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_reviews",
		Description: "List testimonials, optionally filtered by a name substring",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ListReviewsInput) (*sdkmcp.CallToolResult, ReviewListResult, error) {
		revs, err := svcs.Reviews.Search(ctx, input.Query)
		if err != nil {
			return nil, ReviewListResult{}, MapError(err)
		}
		return nil, ReviewListResult{Reviews: revs}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_review",
		Description: "Add a testimonial at the head of the collection",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input CreateReviewInput) (*sdkmcp.CallToolResult, ReviewResult, error) {
		if err := requireSession(); err != nil {
			return nil, ReviewResult{}, err
		}
		rev, err := svcs.Reviews.Create(ctx, review.CreateRequest{
			ID:    input.ID,
			Name:  input.Name,
			Role:  input.Role,
			Text:  input.Text,
			Image: input.Image,
		})
		if err != nil {
			return nil, ReviewResult{}, MapError(err)
		}
		return nil, ReviewResult{Review: *rev}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_review",
		Description: "Replace a testimonial's fields, keeping its position",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input UpdateReviewInput) (*sdkmcp.CallToolResult, ReviewResult, error) {
		if err := requireSession(); err != nil {
			return nil, ReviewResult{}, err
		}
		rev, err := svcs.Reviews.Update(ctx, input.ID, review.UpdateRequest{
			Name:  input.Name,
			Role:  input.Role,
			Text:  input.Text,
			Image: input.Image,
		})
		if err != nil {
			return nil, ReviewResult{}, MapError(err)
		}
		return nil, ReviewResult{Review: *rev}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_review",
		Description: "Delete a testimonial by ID after confirmation",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input DeleteReviewInput) (*sdkmcp.CallToolResult, DeleteResult, error) {
		if err := requireSession(); err != nil {
			return nil, DeleteResult{}, err
		}
		if !input.Confirm {
			return nil, DeleteResult{}, MapError(errConfirmRequired)
		}
		if err := svcs.Reviews.Remove(ctx, input.ID); err != nil {
			return nil, DeleteResult{}, MapError(err)
		}
		return nil, DeleteResult{Deleted: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_view_state",
		Description: "Get the active screen, transition phase, and overlay label",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ GetViewStateInput) (*sdkmcp.CallToolResult, ViewStateResult, error) {
		snap := svcs.Nav.Snapshot()
		out := ViewStateResult{
			Screen: string(snap.State.Screen),
			Phase:  string(snap.Phase),
			Epoch:  snap.Epoch,
		}
		if snap.Overlay != nil {
			out.Label = snap.Overlay.Label
		}
		if snap.State.Project != nil {
			out.Project = snap.State.Project.ID
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "navigate",
		Description: "Request a screen transition; dropped while one is in flight",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input NavigateInput) (*sdkmcp.CallToolResult, NavigateResult, error) {
		if input.ProjectID != "" {
			rec, err := svcs.Projects.Get(ctx, input.ProjectID)
			if err != nil {
				return nil, NavigateResult{}, MapError(err)
			}
			return nil, NavigateResult{Accepted: svcs.Nav.RequestProject(rec)}, nil
		}
		screen, err := view.ParseScreen(input.Screen)
		if err != nil {
			return nil, NavigateResult{}, MapError(err)
		}
		return nil, NavigateResult{Accepted: svcs.Nav.Request(screen)}, nil
	})
}
