// Package apps wraps ISteamApps, used to access data about applications on
// Steam. None of its methods need a Web API key.
package apps

import (
	"context"

	"github.com/marcus-crane/steamwebapi/shared"
	"github.com/marcus-crane/steamwebapi/webapi"
)

const (
	GET_APP_LIST_ENDPOINT     = "/ISteamApps/GetAppList/v2"
	UP_TO_DATE_CHECK_ENDPOINT = "/ISteamApps/UpToDateCheck/v1"
)

type Client struct {
	requester webapi.Requester
}

func New(requester webapi.Requester) *Client {
	return &Client{requester: requester}
}

// GetAppList returns every publicly facing program in the store.
func (c *Client) GetAppList(ctx context.Context) (*AppList, error) {
	var appList AppList
	if err := c.requester.Get(ctx, GET_APP_LIST_ENDPOINT, webapi.Params{}, &appList); err != nil {
		return nil, err
	}
	return &appList, nil
}

// UpToDateCheck reports whether version is the most current one available
// for appID.
func (c *Client) UpToDateCheck(ctx context.Context, appID shared.AppID, version string) (*UpToDateCheck, error) {
	params := webapi.Params{}.
		Set("appid", appID).
		Set("version", version)

	var check UpToDateCheck
	if err := c.requester.Get(ctx, UP_TO_DATE_CHECK_ENDPOINT, params, &check); err != nil {
		return nil, err
	}
	return &check, nil
}
