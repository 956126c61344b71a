package linear

// Raw wire records returned by the tracker's GraphQL API. Timestamps stay
// strings here; parsing happens at normalization so one malformed date
// never fails a whole page decode.

// State is the workflow status of an issue plus its closed category.
type State struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ParentRef is the identifier+title snapshot of an issue's epic.
type ParentRef struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
}

// ProjectRef is the denormalized project reference carried by an issue.
type ProjectRef struct {
	Name string `json:"name"`
}

// User identifies the issue creator.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Label is a single issue label.
type Label struct {
	Name string `json:"name"`
}

// LabelConnection is the nested label list as returned on the wire.
type LabelConnection struct {
	Nodes []Label `json:"nodes"`
}

// Issue is one raw issue record from the tracker.
type Issue struct {
	ID            string          `json:"id"`
	Identifier    string          `json:"identifier"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	State         State           `json:"state"`
	Priority      *int            `json:"priority"`
	PriorityLabel string          `json:"priorityLabel"`
	Parent        *ParentRef      `json:"parent"`
	Project       *ProjectRef     `json:"project"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
	CompletedAt   string          `json:"completedAt"`
	Creator       *User           `json:"creator"`
	Labels        LabelConnection `json:"labels"`
}

// LabelNames flattens the label connection to plain names.
func (i Issue) LabelNames() []string {
	names := make([]string, 0, len(i.Labels.Nodes))
	for _, label := range i.Labels.Nodes {
		names = append(names, label.Name)
	}
	return names
}

// PageInfo is the continuation state of a paged query.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// Project is a raw tracker project record.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
