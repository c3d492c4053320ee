package transfer

type SettingsUpdate struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	DefaultPlatform string `json:"defaultPlatform" form:"defaultPlatform"`
	AutoSave        bool   `json:"autoSave" form:"autoSave"`
	Notifications   bool   `json:"notifications" form:"notifications"`
	Privacy         string `json:"privacy" form:"privacy"`
}
