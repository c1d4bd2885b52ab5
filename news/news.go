// Package news wraps ISteamNews. It does not need a Web API key.
package news

import (
	"context"

	"github.com/marcus-crane/steamwebapi/shared"
	"github.com/marcus-crane/steamwebapi/webapi"
)

const (
	GET_NEWS_FOR_APP_ENDPOINT = "/ISteamNews/GetNewsForApp/v2"

	DefaultCount = 20
)

type Client struct {
	requester webapi.Requester
}

func New(requester webapi.Requester) *Client {
	return &Client{requester: requester}
}

// NewsForAppOptions narrows GetNewsForApp. Nil fields are left out of the
// request, except Count which falls back to DefaultCount.
type NewsForAppOptions struct {
	// 0 returns full contents, anything else truncates to a blurb
	MaxLength *int
	// unix timestamp; only posts before it are returned
	EndDate *int64
	Count   *int
	// comma separated feed names
	Feeds string
}

// GetNewsForApp returns the latest news of appID. opts may be nil.
func (c *Client) GetNewsForApp(ctx context.Context, appID shared.AppID, opts *NewsForAppOptions) (*AppNews, error) {
	if opts == nil {
		opts = &NewsForAppOptions{}
	}
	count := DefaultCount
	if opts.Count != nil {
		count = *opts.Count
	}
	params := webapi.Params{}.
		Set("appid", appID).
		Set("count", count)
	webapi.SetOptional(params, "maxlength", opts.MaxLength)
	webapi.SetOptional(params, "enddate", opts.EndDate)
	webapi.SetNonZero(params, "feeds", opts.Feeds)

	var news AppNews
	if err := c.requester.Get(ctx, GET_NEWS_FOR_APP_ENDPOINT, params, &news); err != nil {
		return nil, err
	}
	return &news, nil
}
