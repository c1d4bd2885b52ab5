// Package playerservice wraps IPlayerService, which provides additional
// methods for interacting with Steam users. Every method sends the Web API
// key.
package playerservice

import (
	"context"

	"github.com/marcus-crane/steamwebapi/shared"
	"github.com/marcus-crane/steamwebapi/webapi"
)

const (
	GET_RECENTLY_PLAYED_GAMES_ENDPOINT    = "/IPlayerService/GetRecentlyPlayedGames/v1"
	GET_OWNED_GAMES_ENDPOINT              = "/IPlayerService/GetOwnedGames/v1"
	GET_STEAM_LEVEL_ENDPOINT              = "/IPlayerService/GetSteamLevel/v1"
	GET_BADGES_ENDPOINT                   = "/IPlayerService/GetBadges/v1"
	GET_COMMUNITY_BADGE_PROGRESS_ENDPOINT = "/IPlayerService/GetCommunityBadgeProgress/v1"
	IS_PLAYING_SHARED_GAME_ENDPOINT       = "/IPlayerService/IsPlayingSharedGame/v1"
)

type Client struct {
	apiKey    shared.WebAPIKey
	requester webapi.Requester
}

func New(apiKey shared.WebAPIKey, requester webapi.Requester) *Client {
	return &Client{apiKey: apiKey, requester: requester}
}

func (c *Client) params(steamID shared.SteamID) webapi.Params {
	return webapi.Params{}.
		Set(shared.PARAM_KEY, c.apiKey).
		Set("steamid", steamID)
}

// GetRecentlyPlayedGames returns the games steamID played in the last two
// weeks. A count of zero returns all of them.
func (c *Client) GetRecentlyPlayedGames(ctx context.Context, steamID shared.SteamID, count int) (*RecentlyPlayedGames, error) {
	params := webapi.SetNonZero(c.params(steamID), "count", count)

	var games RecentlyPlayedGames
	if err := c.requester.Get(ctx, GET_RECENTLY_PLAYED_GAMES_ENDPOINT, params, &games); err != nil {
		return nil, err
	}
	return &games, nil
}

// OwnedGamesOptions narrows GetOwnedGames. The zero value asks for every
// owned game, without app info and without free games.
type OwnedGamesOptions struct {
	// include name and images of each game
	IncludeAppInfo bool
	// include free-to-play games that have been played
	IncludePlayedFreeGames bool
	// restrict results to these apps
	AppIDsFilter []shared.AppID
}

// GetOwnedGames returns the games owned by steamID. opts may be nil.
func (c *Client) GetOwnedGames(ctx context.Context, steamID shared.SteamID, opts *OwnedGamesOptions) (*OwnedGames, error) {
	if opts == nil {
		opts = &OwnedGamesOptions{}
	}
	params := c.params(steamID).
		Set("include_appinfo", opts.IncludeAppInfo).
		Set("include_played_free_games", opts.IncludePlayedFreeGames)
	webapi.SetList(params, "appids_filter", opts.AppIDsFilter)

	var games OwnedGames
	if err := c.requester.Get(ctx, GET_OWNED_GAMES_ENDPOINT, params, &games); err != nil {
		return nil, err
	}
	return &games, nil
}

// GetSteamLevel returns the Steam level of steamID.
func (c *Client) GetSteamLevel(ctx context.Context, steamID shared.SteamID) (*SteamLevel, error) {
	var level SteamLevel
	if err := c.requester.Get(ctx, GET_STEAM_LEVEL_ENDPOINT, c.params(steamID), &level); err != nil {
		return nil, err
	}
	return &level, nil
}

// GetBadges returns the badges owned by steamID along with its XP.
func (c *Client) GetBadges(ctx context.Context, steamID shared.SteamID) (*PlayerBadges, error) {
	var badges PlayerBadges
	if err := c.requester.Get(ctx, GET_BADGES_ENDPOINT, c.params(steamID), &badges); err != nil {
		return nil, err
	}
	return &badges, nil
}

// GetCommunityBadgeProgress returns the quests needed for a badge and which
// of them steamID has completed. badgeID is left out of the request when nil.
func (c *Client) GetCommunityBadgeProgress(ctx context.Context, steamID shared.SteamID, badgeID *int) (*BadgeProgress, error) {
	params := webapi.SetOptional(c.params(steamID), "badgeid", badgeID)

	var progress BadgeProgress
	if err := c.requester.Get(ctx, GET_COMMUNITY_BADGE_PROGRESS_ENDPOINT, params, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// IsPlayingSharedGame returns the lender's ID when appIDPlaying is borrowed
// through family sharing, "0" otherwise.
func (c *Client) IsPlayingSharedGame(ctx context.Context, steamID shared.SteamID, appIDPlaying shared.AppID) (*SharedGameDetails, error) {
	params := c.params(steamID).Set("appid_playing", appIDPlaying)

	var details SharedGameDetails
	if err := c.requester.Get(ctx, IS_PLAYING_SHARED_GAME_ENDPOINT, params, &details); err != nil {
		return nil, err
	}
	return &details, nil
}
