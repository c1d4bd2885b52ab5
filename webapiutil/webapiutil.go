// Package webapiutil wraps ISteamWebAPIUtil, which describes the Web API
// itself.
package webapiutil

import (
	"context"

	"github.com/marcus-crane/steamwebapi/shared"
	"github.com/marcus-crane/steamwebapi/webapi"
)

const (
	GET_SERVER_INFO_ENDPOINT        = "/ISteamWebAPIUtil/GetServerInfo/v1"
	GET_SUPPORTED_API_LIST_ENDPOINT = "/ISteamWebAPIUtil/GetSupportedAPIList/v1"
)

type Client struct {
	requester webapi.Requester
}

func New(requester webapi.Requester) *Client {
	return &Client{requester: requester}
}

// GetServerInfo returns the Web API server time, doubling as a health check.
func (c *Client) GetServerInfo(ctx context.Context) (*ServerInfo, error) {
	var info ServerInfo
	if err := c.requester.Get(ctx, GET_SERVER_INFO_ENDPOINT, webapi.Params{}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetSupportedAPIList lists the available interfaces. With a non-empty
// apiKey the list also includes everything that key is allowed to call.
func (c *Client) GetSupportedAPIList(ctx context.Context, apiKey shared.WebAPIKey) (*SupportedAPIList, error) {
	params := webapi.SetNonZero(webapi.Params{}, shared.PARAM_KEY, apiKey)

	var list SupportedAPIList
	if err := c.requester.Get(ctx, GET_SUPPORTED_API_LIST_ENDPOINT, params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
