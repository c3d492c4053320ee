package models

const (
	PrivacyPublic  = "public"
	PrivacyFriends = "friends"
	PrivacyPrivate = "private"
)

const DefaultDisplayName = "User"

type UserSettings struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	DefaultPlatform string `json:"defaultPlatform"`
	AutoSave        bool   `json:"autoSave"`
	Notifications   bool   `json:"notifications"`
	Privacy         string `json:"privacy"`
}

func DefaultSettings() *UserSettings {
	return &UserSettings{
		Name:          DefaultDisplayName,
		AutoSave:      true,
		Notifications: true,
		Privacy:       PrivacyPublic,
	}
}
