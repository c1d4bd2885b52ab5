// Package users wraps ISteamUser, used to access information about Steam
// users. Every method sends the Web API key.
package users

import (
	"context"

	"github.com/marcus-crane/steamwebapi/shared"
	"github.com/marcus-crane/steamwebapi/webapi"
)

const (
	GET_PLAYER_SUMMARIES_ENDPOINT = "/ISteamUser/GetPlayerSummaries/v2"
	GET_FRIEND_LIST_ENDPOINT      = "/ISteamUser/GetFriendList/v1"
	GET_PLAYER_BANS_ENDPOINT      = "/ISteamUser/GetPlayerBans/v1"
	GET_USER_GROUP_LIST_ENDPOINT  = "/ISteamUser/GetUserGroupList/v1"
	RESOLVE_VANITY_URL_ENDPOINT   = "/ISteamUser/ResolveVanityURL/v1"
)

type Client struct {
	apiKey    shared.WebAPIKey
	requester webapi.Requester
}

func New(apiKey shared.WebAPIKey, requester webapi.Requester) *Client {
	return &Client{apiKey: apiKey, requester: requester}
}

func (c *Client) params() webapi.Params {
	return webapi.Params{}.Set(shared.PARAM_KEY, c.apiKey)
}

// GetFriendList lists the friends of steamID with the given relationship.
func (c *Client) GetFriendList(ctx context.Context, steamID shared.SteamID, relationship FriendRelationship) (*FriendList, error) {
	params := c.params().
		Set("steamid", steamID).
		Set("relationship", relationship)

	var friends FriendList
	if err := c.requester.Get(ctx, GET_FRIEND_LIST_ENDPOINT, params, &friends); err != nil {
		return nil, err
	}
	return &friends, nil
}

// GetPlayerBans returns the ban and probation status of each player.
func (c *Client) GetPlayerBans(ctx context.Context, steamIDs []shared.SteamID) (*PlayerBans, error) {
	params, err := c.params().SetJSON("steamids", steamIDs)
	if err != nil {
		return nil, err
	}

	var bans PlayerBans
	if err := c.requester.Get(ctx, GET_PLAYER_BANS_ENDPOINT, params, &bans); err != nil {
		return nil, err
	}
	return &bans, nil
}

// GetPlayerSummaries returns profile data for each player.
func (c *Client) GetPlayerSummaries(ctx context.Context, steamIDs []shared.SteamID) (*PlayerSummaries, error) {
	params, err := c.params().SetJSON("steamids", steamIDs)
	if err != nil {
		return nil, err
	}

	var summaries PlayerSummaries
	if err := c.requester.Get(ctx, GET_PLAYER_SUMMARIES_ENDPOINT, params, &summaries); err != nil {
		return nil, err
	}
	return &summaries, nil
}

// GetUserGroupList lists the groups steamID belongs to.
func (c *Client) GetUserGroupList(ctx context.Context, steamID shared.SteamID) (*UserGroups, error) {
	params := c.params().Set("steamid", steamID)

	var groups UserGroups
	if err := c.requester.Get(ctx, GET_USER_GROUP_LIST_ENDPOINT, params, &groups); err != nil {
		return nil, err
	}
	return &groups, nil
}

// ResolveVanityURL resolves the custom part of a profile URL, e.g.
// "gabelogannewell" for https://steamcommunity.com/id/gabelogannewell, to a
// 64 bit ID. A failed match is not an error: check Response.Success.
func (c *Client) ResolveVanityURL(ctx context.Context, vanityURL string) (*VanityURLResolved, error) {
	params := c.params().Set("vanityurl", vanityURL)

	var resolved VanityURLResolved
	if err := c.requester.Get(ctx, RESOLVE_VANITY_URL_ENDPOINT, params, &resolved); err != nil {
		return nil, err
	}
	return &resolved, nil
}
