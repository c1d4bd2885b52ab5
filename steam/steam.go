// Package steam is the entry point to the Steam Web API. A WebAPI binds one
// key to the interface groups that need it and shares a single transport
// between all of them.
package steam

import (
	"github.com/marcus-crane/steamwebapi/apps"
	"github.com/marcus-crane/steamwebapi/config"
	"github.com/marcus-crane/steamwebapi/news"
	"github.com/marcus-crane/steamwebapi/playerservice"
	"github.com/marcus-crane/steamwebapi/shared"
	"github.com/marcus-crane/steamwebapi/users"
	"github.com/marcus-crane/steamwebapi/userstats"
	"github.com/marcus-crane/steamwebapi/webapi"
	"github.com/marcus-crane/steamwebapi/webapiutil"
)

type WebAPI struct {
	apps          *apps.Client
	news          *news.Client
	playerService *playerservice.Client
	users         *users.Client
	userStats     *userstats.Client
	webAPIUtil    *webapiutil.Client
}

// New builds every group on top of requester. Groups that need a key get
// apiKey; the rest never see it.
func New(apiKey shared.WebAPIKey, requester webapi.Requester) *WebAPI {
	return &WebAPI{
		apps:          apps.New(requester),
		news:          news.New(requester),
		playerService: playerservice.New(apiKey, requester),
		users:         users.New(apiKey, requester),
		userStats:     userstats.New(apiKey, requester),
		webAPIUtil:    webapiutil.New(requester),
	}
}

// NewDefault talks to the public Steam Web API with default settings.
func NewDefault(apiKey shared.WebAPIKey) (*WebAPI, error) {
	client, err := webapi.NewClient(nil)
	if err != nil {
		return nil, err
	}
	return New(apiKey, client), nil
}

func NewFromConfig(cfg config.Config) (*WebAPI, error) {
	client, err := webapi.NewClient(cfg.ClientConfig())
	if err != nil {
		return nil, err
	}
	return New(cfg.APIKey(), client), nil
}

func (w *WebAPI) Apps() *apps.Client {
	return w.apps
}

func (w *WebAPI) News() *news.Client {
	return w.news
}

func (w *WebAPI) PlayerService() *playerservice.Client {
	return w.playerService
}

func (w *WebAPI) Users() *users.Client {
	return w.users
}

func (w *WebAPI) UserStats() *userstats.Client {
	return w.userStats
}

func (w *WebAPI) WebAPIUtil() *webapiutil.Client {
	return w.webAPIUtil
}
