package models

// Platform is a selectable cross-post target. Connected is presentation state
// only and says nothing about a real account.
type Platform struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Connected bool   `json:"connected"`
}
