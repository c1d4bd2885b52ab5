package shared

import "strconv"

// AppID identifies a program on Steam.
type AppID uint64

func (a AppID) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// SteamID is a user's 64 bit ID in its decimal string form.
type SteamID string

// WebAPIKey is the credential issued at https://steamcommunity.com/dev/apikey.
// Without it, most endpoints answer with HTTP 403.
type WebAPIKey string

// Result is the status code some endpoints return in their body.
type Result int

const (
	ResultOK      Result = 1
	ResultNoMatch Result = 42
)

func (r Result) OK() bool {
	return r == ResultOK
}

// Ptr returns a pointer to v, for filling optional request fields.
func Ptr[T any](v T) *T {
	return &v
}
