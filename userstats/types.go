package userstats

import "github.com/marcus-crane/steamwebapi/shared"

type AchievementPercentages struct {
	AchievementPercentages struct {
		Achievements []GlobalAchievement `json:"achievements"`
	} `json:"achievementpercentages"`
}

type GlobalAchievement struct {
	// unlocalised token
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

type CurrentPlayerCount struct {
	Response struct {
		PlayerCount int           `json:"player_count"`
		Result      shared.Result `json:"result"`
	} `json:"response"`
}

type PlayerAchievements struct {
	PlayerStats PlayerStats `json:"playerstats"`
}

// PlayerStats carries Error instead of the achievements when the profile is
// private or the game has no stats.
type PlayerStats struct {
	SteamID      shared.SteamID      `json:"steamID"`
	GameName     string              `json:"gameName"`
	Achievements []PlayerAchievement `json:"achievements,omitempty"`
	Success      bool                `json:"success"`
	Error        *string             `json:"error,omitempty"`
}

type PlayerAchievement struct {
	APIName string `json:"apiname"`
	// 1 once unlocked
	Achieved   int   `json:"achieved"`
	UnlockTime int64 `json:"unlocktime"`
	// present when a language was requested
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (a PlayerAchievement) Unlocked() bool {
	return a.Achieved == 1
}

type GameSchema struct {
	Game struct {
		GameName           string             `json:"gameName"`
		GameVersion        string             `json:"gameVersion"`
		AvailableGameStats AvailableGameStats `json:"availableGameStats"`
	} `json:"game"`
}

// AvailableGameStats omits either list when the game defines none.
type AvailableGameStats struct {
	Achievements []SchemaAchievement `json:"achievements,omitempty"`
	Stats        []SchemaStat        `json:"stats,omitempty"`
}

type SchemaAchievement struct {
	Name         string `json:"name"`
	DefaultValue int    `json:"defaultvalue"`
	DisplayName  string `json:"displayName"`
	// 1 when hidden until earned
	Hidden      int     `json:"hidden"`
	Description *string `json:"description,omitempty"`
	Icon        string  `json:"icon"`
	IconGray    string  `json:"icongray"`
}

type SchemaStat struct {
	Name         string  `json:"name"`
	DefaultValue float64 `json:"defaultvalue"`
	DisplayName  string  `json:"displayName"`
}

type UserStatsForGame struct {
	PlayerStats struct {
		SteamID      shared.SteamID    `json:"steamID"`
		GameName     string            `json:"gameName"`
		Stats        []UserStat        `json:"stats,omitempty"`
		Achievements []UserAchievement `json:"achievements,omitempty"`
	} `json:"playerstats"`
}

type UserStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type UserAchievement struct {
	Name     string `json:"name"`
	Achieved int    `json:"achieved"`
}

type GlobalStatsForGame struct {
	Response struct {
		Result      shared.Result           `json:"result"`
		GlobalStats []map[string]GlobalStat `json:"globalstats"`
	} `json:"response"`
}

type GlobalStat struct {
	Total int64 `json:"total"`
}
