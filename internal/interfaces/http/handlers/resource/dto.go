package resource

// CreateComponentRequest represents the request body for creating a component.
type CreateComponentRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Owner       string `json:"owner"`
	Description string `json:"description"`
}

// UpdateComponentRequest represents the request body for updating a
// component. The name is taken from the URL and cannot be changed.
type UpdateComponentRequest struct {
	Owner       string `json:"owner"`
	Description string `json:"description"`
}

// CreateMilestoneRequest represents the request body for creating a
// milestone. Due and completed are unix millisecond timestamps.
type CreateMilestoneRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Due         *int64 `json:"due"`
	Completed   *int64 `json:"completed"`
	Description string `json:"description"`
}

// UpdateMilestoneRequest represents the request body for updating a
// milestone.
type UpdateMilestoneRequest struct {
	Due         *int64 `json:"due"`
	Completed   *int64 `json:"completed"`
	Description string `json:"description"`
}

// CreateVersionRequest represents the request body for creating a version.
// Time is the release time as a unix millisecond timestamp.
type CreateVersionRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Time        *int64 `json:"time"`
	Description string `json:"description"`
}

// UpdateVersionRequest represents the request body for updating a version.
type UpdateVersionRequest struct {
	Time        *int64 `json:"time"`
	Description string `json:"description"`
}

// CreateEnumRequest represents the request body for creating an
// enumeration row of a given type.
type CreateEnumRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Value string `json:"value"`
}

// UpdateEnumRequest represents the request body for updating an
// enumeration row. Only the ordering value can change.
type UpdateEnumRequest struct {
	Value string `json:"value"`
}
