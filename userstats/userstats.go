// Package userstats wraps ISteamUserStats, used to access achievement and
// stat data for games and players.
package userstats

import (
	"context"

	"github.com/marcus-crane/steamwebapi/shared"
	"github.com/marcus-crane/steamwebapi/webapi"
)

const (
	GET_GLOBAL_ACHIEVEMENT_PERCENTAGES_FOR_APP_ENDPOINT = "/ISteamUserStats/GetGlobalAchievementPercentagesForApp/v2"
	GET_GLOBAL_STATS_FOR_GAME_ENDPOINT                  = "/ISteamUserStats/GetGlobalStatsForGame/v1"
	GET_NUMBER_OF_CURRENT_PLAYERS_ENDPOINT              = "/ISteamUserStats/GetNumberOfCurrentPlayers/v1"
	GET_PLAYER_ACHIEVEMENTS_ENDPOINT                    = "/ISteamUserStats/GetPlayerAchievements/v1"
	GET_SCHEMA_FOR_GAME_ENDPOINT                        = "/ISteamUserStats/GetSchemaForGame/v2"
	GET_USER_STATS_FOR_GAME_ENDPOINT                    = "/ISteamUserStats/GetUserStatsForGame/v2"
)

type Client struct {
	apiKey    shared.WebAPIKey
	requester webapi.Requester
}

func New(apiKey shared.WebAPIKey, requester webapi.Requester) *Client {
	return &Client{apiKey: apiKey, requester: requester}
}

func (c *Client) keyed() webapi.Params {
	return webapi.Params{}.Set(shared.PARAM_KEY, c.apiKey)
}

// GetGlobalAchievementPercentagesForApp returns the share of players that
// unlocked each achievement of gameID.
func (c *Client) GetGlobalAchievementPercentagesForApp(ctx context.Context, gameID shared.AppID) (*AchievementPercentages, error) {
	params := webapi.Params{}.Set("gameid", gameID)

	var percentages AchievementPercentages
	if err := c.requester.Get(ctx, GET_GLOBAL_ACHIEVEMENT_PERCENTAGES_FOR_APP_ENDPOINT, params, &percentages); err != nil {
		return nil, err
	}
	return &percentages, nil
}

// GetNumberOfCurrentPlayers returns how many players are active in appID.
func (c *Client) GetNumberOfCurrentPlayers(ctx context.Context, appID shared.AppID) (*CurrentPlayerCount, error) {
	params := webapi.Params{}.Set("appid", appID)

	var count CurrentPlayerCount
	if err := c.requester.Get(ctx, GET_NUMBER_OF_CURRENT_PLAYERS_ENDPOINT, params, &count); err != nil {
		return nil, err
	}
	return &count, nil
}

// GetPlayerAchievements lists the achievements of appID and whether steamID
// has unlocked them. An empty lang leaves the choice of language to Steam.
func (c *Client) GetPlayerAchievements(ctx context.Context, steamID shared.SteamID, appID shared.AppID, lang string) (*PlayerAchievements, error) {
	params := c.keyed().
		Set("steamid", steamID).
		Set("appid", appID)
	webapi.SetNonZero(params, "l", lang)

	var achievements PlayerAchievements
	if err := c.requester.Get(ctx, GET_PLAYER_ACHIEVEMENTS_ENDPOINT, params, &achievements); err != nil {
		return nil, err
	}
	return &achievements, nil
}

// GetSchemaForGame returns every stat and achievement defined for appID,
// localised to lang when it is set.
func (c *Client) GetSchemaForGame(ctx context.Context, appID shared.AppID, lang string) (*GameSchema, error) {
	params := c.keyed().Set("appid", appID)
	webapi.SetNonZero(params, "l", lang)

	var schema GameSchema
	if err := c.requester.Get(ctx, GET_SCHEMA_FOR_GAME_ENDPOINT, params, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// GetUserStatsForGame returns the stats steamID has set in appID.
func (c *Client) GetUserStatsForGame(ctx context.Context, steamID shared.SteamID, appID shared.AppID) (*UserStatsForGame, error) {
	params := c.keyed().
		Set("steamid", steamID).
		Set("appid", appID)

	var stats UserStatsForGame
	if err := c.requester.Get(ctx, GET_USER_STATS_FOR_GAME_ENDPOINT, params, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetGlobalStatsForGame returns aggregated totals for the named stats.
func (c *Client) GetGlobalStatsForGame(ctx context.Context, appID shared.AppID, count int, names []string) (*GlobalStatsForGame, error) {
	params := webapi.SetList(webapi.Params{}, "name", names).
		Set("appid", appID).
		Set("count", count)

	var stats GlobalStatsForGame
	if err := c.requester.Get(ctx, GET_GLOBAL_STATS_FOR_GAME_ENDPOINT, params, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
