// Package domain holds the gatekeeper DTOs and ports
package domain

// RefUpdate is one ref moved by a push
// an all-zero From is a new ref, an all-zero To a deleted one
type RefUpdate struct {
	Ref  string `json:"ref"  validate:"required,max=255" example:"refs/heads/main"`
	From string `json:"from" validate:"required,max=64"  example:"9fceb02d0ae598e95dc970b74767f19372d61af8"`
	To   string `json:"to"   validate:"required,max=64"  example:"e8c5f0c0b4cd3a7a0a1f7a2e1a2f0c1d9b8e7f6a"`
}

// PushInput asks whether a push may be accepted
type PushInput struct {
	Repository string      `json:"repository" validate:"required,max=200,repo"      example:"acme/platform"`
	Updates    []RefUpdate `json:"updates"    validate:"required,min=1,max=500,dive"`
}

// PullRequest identifies the pull request being merged
// FromCommit is the head of the source branch, ToCommit the head of the target
type PullRequest struct {
	Number     int    `json:"number"      validate:"min=0"                example:"42"`
	Version    int    `json:"version"     validate:"min=0"                example:"3"`
	Title      string `json:"title"       validate:"omitempty,max=512"    example:"Bump chart values"`
	Author     string `json:"author"      validate:"omitempty,max=200"    example:"octocat"`
	FromRef    string `json:"from_ref"    validate:"omitempty,max=255"    example:"refs/heads/feature"`
	ToRef      string `json:"to_ref"      validate:"omitempty,max=255"    example:"refs/heads/main"`
	FromCommit string `json:"from_commit" validate:"required,max=64"      example:"e8c5f0c0b4cd3a7a0a1f7a2e1a2f0c1d9b8e7f6a"`
	ToCommit   string `json:"to_commit"   validate:"required,max=64"      example:"9fceb02d0ae598e95dc970b74767f19372d61af8"`
}

// MergeInput asks whether a pull request may merge
type MergeInput struct {
	Repository  string      `json:"repository"   validate:"required,max=200,repo" example:"acme/platform"`
	PullRequest PullRequest `json:"pull_request" validate:"required"`
}

// InlineFile is a document submitted directly for a dry run
type InlineFile struct {
	Path    string `json:"path"           validate:"required,max=1024"                                     example:"deploy/values.yaml"`
	Content string `json:"content"        validate:"max=1048576"                                           example:"replicas: 3\n"`
	Kind    string `json:"kind,omitempty" validate:"omitempty,oneof=added modified removed renamed other" example:"added"`
}

// ValidateInput checks documents without a repository host
type ValidateInput struct {
	Files []InlineFile `json:"files" validate:"required,min=1,max=500,dive"`
}

// Decision statuses
const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
	StatusError    = "error"
	StatusAborted  = "aborted"
)

// Decision is what a hook returns to the host
// Message is the text to show the pusher, Comment the pull request comment when one was posted
type Decision struct {
	Allowed    bool   `json:"allowed"              example:"false"`
	Status     string `json:"status"               example:"rejected"`
	Summary    string `json:"summary,omitempty"    example:"Invalid YAML content detected"`
	Message    string `json:"message,omitempty"    example:"Invalid YAML content detected when reading file deploy/values.yaml: yaml: line 3: mapping values are not allowed in this context"`
	Comment    string `json:"comment,omitempty"`
	Ref        string `json:"ref,omitempty"        example:"refs/heads/main"`
	Path       string `json:"path,omitempty"       example:"deploy/values.yaml"`
	Grammar    string `json:"grammar,omitempty"    example:"YAML"`
	Diagnostic string `json:"diagnostic,omitempty" example:"yaml: line 3: mapping values are not allowed in this context"`
	Declined   bool   `json:"declined,omitempty"`
	Checked    int    `json:"checked"              example:"4"`
	Skipped    int    `json:"skipped"              example:"12"`
}

// Decision kinds recorded in the audit log
const (
	KindPush     = "push"
	KindMerge    = "merge"
	KindValidate = "validate"
)

// DecisionRecord is one audit log row
type DecisionRecord struct {
	ID          string `json:"id"                     example:"6f1c1f7e-3d2b-4c55-9a57-2b9b1f3c7d10"`
	Kind        string `json:"kind"                   example:"push"`
	Repository  string `json:"repository"             example:"acme/platform"`
	Ref         string `json:"ref,omitempty"          example:"refs/heads/main"`
	Revision    string `json:"revision,omitempty"     example:"e8c5f0c0b4cd3a7a0a1f7a2e1a2f0c1d9b8e7f6a"`
	PullNumber  int    `json:"pull_number,omitempty"  example:"42"`
	PullVersion int    `json:"pull_version,omitempty" example:"3"`
	Allowed     bool   `json:"allowed"                example:"false"`
	Status      string `json:"status"                 example:"rejected"`
	Path        string `json:"path,omitempty"         example:"deploy/values.yaml"`
	Grammar     string `json:"grammar,omitempty"      example:"YAML"`
	Diagnostic  string `json:"diagnostic,omitempty"`
	Message     string `json:"message,omitempty"`
	CreatedAt   string `json:"created_at"             example:"2025-09-03T13:05:00Z"`
}

// RecentInput filters the audit log
type RecentInput struct {
	Repository string `json:"repository,omitempty" validate:"omitempty,max=200,repo"                 example:"acme/platform"`
	Status     string `json:"status,omitempty"     validate:"omitempty,oneof=accepted rejected error aborted" example:"rejected"`
	Limit      int    `json:"limit,omitempty"      validate:"omitempty,min=1,max=200"                example:"50"`
}
