package shared

const (
	BASE_API_URL = "https://api.steampowered.com"

	PARAM_KEY = "key"

	USER_AGENT = "steamwebapi/1.0 <github.com/marcus-crane/steamwebapi>"
)
