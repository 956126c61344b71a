package linear

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/feedback-insights/internal/config"
)

// promotedMarker flags issues that were promoted to a project and left
// behind as annotated shells. They are not live work items.
const promotedMarker = "converted to project"

const issuesQuery = `
query($teamId: String!, $first: Int!, $after: String, $createdAfter: DateTimeOrDuration!) {
  team(id: $teamId) {
    issues(
      first: $first,
      after: $after,
      filter: {
        state: { type: { neq: "canceled" } },
        or: [
          { createdAt: { gte: $createdAfter } },
          { state: { name: { in: ["In Progress", "Todo", "In Review"] } } }
        ]
      }
    ) {
      nodes {
        id
        identifier
        title
        description
        state { name type }
        priority
        priorityLabel
        parent { identifier title }
        project { name }
        createdAt
        updatedAt
        completedAt
        creator { name email }
        labels { nodes { name } }
      }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

const projectsQuery = `
query($teamId: String!) {
  team(id: $teamId) {
    projects {
      nodes { id name description icon }
    }
  }
}`

// Fetcher retrieves all matching issues for one team via sequential
// cursor pagination.
type Fetcher struct {
	client   *Client
	teamID   string
	pageSize int
	maxPages int
	logger   *zap.Logger
}

// NewFetcher constructs a fetcher bound to the configured team.
func NewFetcher(client *Client, cfg config.LinearConfig, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client:   client,
		teamID:   cfg.TeamID,
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
		logger:   logger,
	}
}

type issuesData struct {
	Team struct {
		Issues struct {
			Nodes    []Issue  `json:"nodes"`
			PageInfo PageInfo `json:"pageInfo"`
		} `json:"issues"`
	} `json:"team"`
}

type projectsData struct {
	Team struct {
		Projects struct {
			Nodes []Project `json:"nodes"`
		} `json:"projects"`
	} `json:"team"`
}

// FetchIssues returns every non-canceled, non-promoted issue that was
// either created after the given lower bound or is currently in an active
// status. Pages are walked strictly in order; hitting the page ceiling is
// logged as truncation, not an error.
func (f *Fetcher) FetchIssues(ctx context.Context, createdAfter time.Time) ([]Issue, error) {
	var collected []Issue
	cursor := ""

	for page := 1; page <= f.maxPages; page++ {
		variables := map[string]any{
			"teamId":       f.teamID,
			"first":        f.pageSize,
			"createdAfter": createdAfter.UTC().Format(time.RFC3339),
		}
		if cursor != "" {
			variables["after"] = cursor
		}

		var data issuesData
		if err := f.client.Query(ctx, issuesQuery, variables, &data); err != nil {
			return nil, err
		}

		conn := data.Team.Issues
		for _, issue := range conn.Nodes {
			if excluded(issue) {
				continue
			}
			collected = append(collected, issue)
		}
		f.logger.Debug("fetched issue page",
			zap.Int("page", page),
			zap.Int("nodes", len(conn.Nodes)),
			zap.Bool("has_next", conn.PageInfo.HasNextPage),
		)

		if !conn.PageInfo.HasNextPage {
			return collected, nil
		}
		cursor = conn.PageInfo.EndCursor
	}

	f.logger.Warn("issue fetch truncated at page ceiling",
		zap.Int("max_pages", f.maxPages),
		zap.Int("collected", len(collected)),
	)
	return collected, nil
}

// FetchProjects returns the team's project list for the dashboard snapshot.
func (f *Fetcher) FetchProjects(ctx context.Context) ([]Project, error) {
	var data projectsData
	err := f.client.Query(ctx, projectsQuery, map[string]any{"teamId": f.teamID}, &data)
	if err != nil {
		return nil, err
	}
	return data.Team.Projects.Nodes, nil
}

// excluded drops canceled and promoted-epic records before normalization.
// The canceled check backstops the server-side filter.
func excluded(issue Issue) bool {
	if issue.State.Type == "canceled" {
		return true
	}
	if strings.Contains(strings.ToLower(issue.Title), promotedMarker) {
		return true
	}
	return strings.Contains(strings.ToLower(issue.Description), promotedMarker)
}
