package news

import (
	"time"

	"github.com/marcus-crane/steamwebapi/shared"
)

type AppNews struct {
	AppNews struct {
		AppID     shared.AppID `json:"appid"`
		NewsItems []NewsItem   `json:"newsitems"`
		Count     *int         `json:"count,omitempty"`
	} `json:"appnews"`
}

type NewsItem struct {
	GID   string `json:"gid"`
	Title string `json:"title"`
	URL   string `json:"url"`
	// false when URL points at the Steam store
	IsExternalURL bool   `json:"is_external_url"`
	Author        string `json:"author"`
	// truncated with an ellipsis past the requested maxlength
	Contents  string       `json:"contents"`
	FeedLabel string       `json:"feedlabel"`
	Date      int64        `json:"date"`
	FeedName  string       `json:"feedname"`
	FeedType  int          `json:"feed_type"`
	AppID     shared.AppID `json:"appid"`
	Tags      []string     `json:"tags,omitempty"`
}

func (n NewsItem) Time() time.Time {
	return time.Unix(n.Date, 0).UTC()
}
