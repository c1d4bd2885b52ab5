package apps

import "github.com/marcus-crane/steamwebapi/shared"

type AppList struct {
	AppList struct {
		Apps []App `json:"apps"`
	} `json:"applist"`
}

type App struct {
	AppID shared.AppID `json:"appid"`
	Name  string       `json:"name"`
}

type UpToDateCheck struct {
	Response UpToDateCheckResponse `json:"response"`
}

// UpToDateCheckResponse reports the state of a version. RequiredVersion and
// Message are only present when the version is out of date.
type UpToDateCheckResponse struct {
	Success           bool `json:"success"`
	UpToDate          bool `json:"up_to_date"`
	VersionIsListable bool `json:"version_is_listable"`
	// most current version available
	RequiredVersion *int64  `json:"required_version,omitempty"`
	Message         *string `json:"message,omitempty"`
}
