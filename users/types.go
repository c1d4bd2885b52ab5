package users

import (
	"time"

	"github.com/marcus-crane/steamwebapi/shared"
)

type PersonaState int

const (
	PersonaOffline PersonaState = iota
	PersonaOnline
	PersonaBusy
	PersonaAway
	PersonaSnooze
	PersonaLookingToTrade
	PersonaLookingToPlay
)

type CommunityVisibility int

const (
	VisibilityPrivate          CommunityVisibility = 1
	VisibilityFriendsOnly      CommunityVisibility = 2
	VisibilityFriendsOfFriends CommunityVisibility = 3
	VisibilityUsersOnly        CommunityVisibility = 4
	VisibilityPublic           CommunityVisibility = 5
)

type PlayerSummaries struct {
	Response struct {
		Players []PlayerSummary `json:"players"`
	} `json:"response"`
}

// PlayerSummary is a user's profile. The optional fields are only present
// for public profiles, or when the user is in game.
type PlayerSummary struct {
	SteamID                  shared.SteamID      `json:"steamid"`
	CommunityVisibilityState CommunityVisibility `json:"communityvisibilitystate"`
	// 1 when the user has configured their profile
	ProfileState int          `json:"profilestate"`
	PersonaName  string       `json:"personaname"`
	ProfileURL   string       `json:"profileurl"`
	Avatar       string       `json:"avatar"`       // 32x32
	AvatarMedium string       `json:"avatarmedium"` // 64x64
	AvatarFull   string       `json:"avatarfull"`   // 184x184
	AvatarHash   string       `json:"avatarhash"`
	PersonaState PersonaState `json:"personastate"`

	CommentPermission *int    `json:"commentpermission,omitempty"`
	RealName          *string `json:"realname,omitempty"`
	PrimaryClanID     *string `json:"primaryclanid,omitempty"`
	TimeCreated       *int64  `json:"timecreated,omitempty"`
	PersonaStateFlags *int    `json:"personastateflags,omitempty"`
	GameID            *string `json:"gameid,omitempty"`
	GameExtraInfo     *string `json:"gameextrainfo,omitempty"`
	// "ip:port", sometimes "0.0.0.0:0" when unavailable
	GameServerIP   *string `json:"gameserverip,omitempty"`
	LocCountryCode *string `json:"loccountrycode,omitempty"`
	LocStateCode   *string `json:"locstatecode,omitempty"`
	LocCityID      *int    `json:"loccityid,omitempty"`
}

// Playing reports whether the user is currently in game.
func (p PlayerSummary) Playing() bool {
	return p.GameID != nil && *p.GameID != ""
}

type FriendRelationship string

const (
	RelationshipAll    FriendRelationship = "all"
	RelationshipFriend FriendRelationship = "friend"
)

// FriendList is empty when the profile is not public or has no entries for
// the requested relationship.
type FriendList struct {
	FriendsList struct {
		Friends []Friend `json:"friends"`
	} `json:"friendslist"`
}

type Friend struct {
	SteamID      shared.SteamID     `json:"steamid"`
	Relationship FriendRelationship `json:"relationship"`
	FriendSince  int64              `json:"friend_since"`
}

func (f Friend) Since() time.Time {
	return time.Unix(f.FriendSince, 0).UTC()
}

type PlayerBans struct {
	Players []PlayerBan `json:"players"`
}

const (
	EconomyBanNone      = "none"
	EconomyBanProbation = "probation"
	EconomyBanBanned    = "banned"
)

type PlayerBan struct {
	SteamID          shared.SteamID `json:"SteamId"`
	CommunityBanned  bool           `json:"CommunityBanned"`
	VACBanned        bool           `json:"VACBanned"`
	NumberOfGameBans int            `json:"NumberOfGameBans"`
	EconomyBan       string         `json:"EconomyBan"`

	NumberOfVACBans  *int `json:"NumberOfVACBans,omitempty"`
	DaysSinceLastBan *int `json:"DaysSinceLastBan,omitempty"`
}

type UserGroups struct {
	Response struct {
		Success bool        `json:"success"`
		Groups  []UserGroup `json:"groups"`
	} `json:"response"`
}

type UserGroup struct {
	GID string `json:"gid"`
}

type VanityURLResolved struct {
	Response struct {
		Success shared.Result `json:"success"`
		// only set when the match succeeded
		SteamID *shared.SteamID `json:"steamid,omitempty"`
		// only set when the match failed
		Message *string `json:"message,omitempty"`
	} `json:"response"`
}
