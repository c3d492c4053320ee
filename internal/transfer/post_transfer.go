package transfer

// PostTask is the snapshot of a workspace selection handed to the dispatcher
// when a post is accepted.
type PostTask struct {
	WorkspaceID string   `json:"workspace_id"`
	Platforms   []string `json:"platforms"`
	Files       []string `json:"files"`
	MediaIDs    []string `json:"media_ids"`
}

type PostAccepted struct {
	Message string `json:"message"`
	TaskID  string `json:"task_id"`
}
