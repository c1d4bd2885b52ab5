package playerservice

import (
	"fmt"

	"github.com/marcus-crane/steamwebapi/shared"
)

const (
	MEDIA_URL = "http://media.steampowered.com/steamcommunity/public/images/apps/%d/%s.jpg"
)

// Game is an entry of GetRecentlyPlayedGames. Playtimes are in minutes.
type Game struct {
	AppID                  shared.AppID `json:"appid"`
	Name                   string       `json:"name"`
	Playtime2Weeks         int          `json:"playtime_2weeks"`
	PlaytimeForever        int          `json:"playtime_forever"`
	ImgIconURL             string       `json:"img_icon_url"`
	ImgLogoURL             *string      `json:"img_logo_url,omitempty"`
	PlaytimeWindowsForever int          `json:"playtime_windows_forever"`
	PlaytimeMacForever     int          `json:"playtime_mac_forever"`
	PlaytimeLinuxForever   int          `json:"playtime_linux_forever"`
	PlaytimeDeckForever    *int         `json:"playtime_deck_forever,omitempty"`
}

func mediaURL(appID shared.AppID, hash string) string {
	if hash == "" {
		return ""
	}
	return fmt.Sprintf(MEDIA_URL, appID, hash)
}

func (g Game) IconURL() string {
	return mediaURL(g.AppID, g.ImgIconURL)
}

func (g Game) LogoURL() string {
	if g.ImgLogoURL == nil {
		return ""
	}
	return mediaURL(g.AppID, *g.ImgLogoURL)
}

type RecentlyPlayedGames struct {
	Response struct {
		TotalCount int    `json:"total_count"`
		Games      []Game `json:"games"`
	} `json:"response"`
}

// OwnedGame is an entry of GetOwnedGames. Name and the image hashes are only
// present when app info was requested.
type OwnedGame struct {
	AppID                    shared.AppID `json:"appid"`
	Name                     *string      `json:"name,omitempty"`
	Playtime2Weeks           *int         `json:"playtime_2weeks,omitempty"`
	PlaytimeForever          int          `json:"playtime_forever"`
	ImgIconURL               *string      `json:"img_icon_url,omitempty"`
	ImgLogoURL               *string      `json:"img_logo_url,omitempty"`
	HasCommunityVisibleStats *bool        `json:"has_community_visible_stats,omitempty"`
	PlaytimeWindowsForever   int          `json:"playtime_windows_forever"`
	PlaytimeMacForever       int          `json:"playtime_mac_forever"`
	PlaytimeLinuxForever     int          `json:"playtime_linux_forever"`
	PlaytimeDeckForever      *int         `json:"playtime_deck_forever,omitempty"`
	RTimeLastPlayed          *int64       `json:"rtime_last_played,omitempty"`
}

func (g OwnedGame) IconURL() string {
	if g.ImgIconURL == nil {
		return ""
	}
	return mediaURL(g.AppID, *g.ImgIconURL)
}

type OwnedGames struct {
	Response struct {
		GameCount int         `json:"game_count"`
		Games     []OwnedGame `json:"games"`
	} `json:"response"`
}

type SteamLevel struct {
	Response struct {
		PlayerLevel int `json:"player_level"`
	} `json:"response"`
}

// Badge fields marked optional are only present for badges tied to an app
// (trading cards).
type Badge struct {
	BadgeID        int           `json:"badgeid"`
	AppID          *shared.AppID `json:"appid,omitempty"`
	Level          int           `json:"level"`
	CompletionTime int64         `json:"completion_time"`
	XP             int           `json:"xp"`
	// minus 1 is the emoticon granted for crafting, minus 2 the background
	CommunityItemID *string `json:"communityitemid,omitempty"`
	BorderColor     *int    `json:"border_color,omitempty"`
	Scarcity        int     `json:"scarcity"`
}

type PlayerBadges struct {
	Response struct {
		Badges                     []Badge `json:"badges"`
		PlayerXP                   int     `json:"player_xp"`
		PlayerLevel                int     `json:"player_level"`
		PlayerXPNeededToLevelUp    int     `json:"player_xp_needed_to_level_up"`
		PlayerXPNeededCurrentLevel int     `json:"player_xp_needed_current_level"`
	} `json:"response"`
}

type BadgeProgress struct {
	Response struct {
		Quests []Quest `json:"quests"`
	} `json:"response"`
}

type Quest struct {
	QuestID   string `json:"questid"`
	Completed bool   `json:"completed"`
}

type SharedGameDetails struct {
	Response struct {
		LenderSteamID shared.SteamID `json:"lender_steamid"`
	} `json:"response"`
}
