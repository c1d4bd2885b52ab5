package steam

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marcus-crane/steamwebapi/config"
	"github.com/marcus-crane/steamwebapi/shared"
	"github.com/marcus-crane/steamwebapi/users"
	"github.com/marcus-crane/steamwebapi/webapi"
	"github.com/marcus-crane/steamwebapi/webapi/webapitest"
)

func TestNew_BindsKeyOnlyWhereNeeded(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		call    func(*WebAPI) error
		wantKey bool
	}{
		{"apps", func(w *WebAPI) error { _, err := w.Apps().GetAppList(ctx); return err }, false},
		{"news", func(w *WebAPI) error { _, err := w.News().GetNewsForApp(ctx, 570, nil); return err }, false},
		{"webapiutil", func(w *WebAPI) error { _, err := w.WebAPIUtil().GetServerInfo(ctx); return err }, false},
		{"users", func(w *WebAPI) error { _, err := w.Users().GetUserGroupList(ctx, "1"); return err }, true},
		{"userstats", func(w *WebAPI) error { _, err := w.UserStats().GetSchemaForGame(ctx, 570, ""); return err }, true},
		{"playerservice", func(w *WebAPI) error { _, err := w.PlayerService().GetSteamLevel(ctx, "1"); return err }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requester := &webapitest.Requester{}
			requester.On("Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

			require.NoError(t, tt.call(New("abc123", requester)))

			params := requester.Params(t)
			if tt.wantKey {
				assert.Equal(t, "abc123", params[shared.PARAM_KEY])
			} else {
				assert.NotContains(t, params, shared.PARAM_KEY)
			}
		})
	}
}

func TestNew_SharesOneRequester(t *testing.T) {
	requester := &webapitest.Requester{}
	requester.On("Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	api := New("abc123", requester)
	ctx := context.Background()

	_, err := api.Apps().GetAppList(ctx)
	require.NoError(t, err)
	_, err = api.Users().ResolveVanityURL(ctx, "gabelogannewell")
	require.NoError(t, err)
	_, err = api.PlayerService().GetBadges(ctx, "1")
	require.NoError(t, err)

	requester.AssertNumberOfCalls(t, "Get", 3)
}

func TestAccessorsAreStable(t *testing.T) {
	api := New("abc123", &webapitest.Requester{})

	assert.Same(t, api.Apps(), api.Apps())
	assert.Same(t, api.News(), api.News())
	assert.Same(t, api.PlayerService(), api.PlayerService())
	assert.Same(t, api.Users(), api.Users())
	assert.Same(t, api.UserStats(), api.UserStats())
	assert.Same(t, api.WebAPIUtil(), api.WebAPIUtil())
}

func TestFacadePassesTransportErrorsThrough(t *testing.T) {
	transportErr := &webapi.TransportError{Path: users.GET_PLAYER_BANS_ENDPOINT, StatusCode: 403, Err: webapi.ErrUnexpectedStatus}
	requester := &webapitest.Requester{}
	requester.Fail(users.GET_PLAYER_BANS_ENDPOINT, transportErr)

	_, err := New("abc123", requester).Users().GetPlayerBans(context.Background(), []shared.SteamID{"1"})
	assert.Same(t, transportErr, err)
	assert.True(t, errors.Is(err, webapi.ErrUnexpectedStatus))
}

func TestNewDefault_PlayerBansOnTheWire(t *testing.T) {
	defer gock.Off()

	gock.New(shared.BASE_API_URL).
		Get(users.GET_PLAYER_BANS_ENDPOINT).
		MatchParam("key", "abc123").
		MatchParam("steamids", regexp.QuoteMeta(`["1"]`)).
		Reply(200).
		File("../users/testdata/player_bans_minimal.json")

	api, err := NewDefault("abc123")
	require.NoError(t, err)

	got, err := api.Users().GetPlayerBans(context.Background(), []shared.SteamID{"1"})
	require.NoError(t, err)
	require.Len(t, got.Players, 1)
	assert.Equal(t, shared.SteamID("1"), got.Players[0].SteamID)
	assert.True(t, got.Players[0].VACBanned)
	assert.True(t, gock.IsDone())
}

func TestNewDefault_NewsOnTheWire(t *testing.T) {
	defer gock.Off()

	gock.New(shared.BASE_API_URL).
		Get("/ISteamNews/GetNewsForApp/v2").
		MatchParam("appid", "570").
		MatchParam("count", "20").
		Reply(200).
		File("../news/testdata/news_for_app.json")

	api, err := NewDefault("abc123")
	require.NoError(t, err)

	got, err := api.News().GetNewsForApp(context.Background(), 570, nil)
	require.NoError(t, err)
	assert.Equal(t, shared.AppID(570), got.AppNews.AppID)
	assert.NotEmpty(t, got.AppNews.NewsItems)
	assert.True(t, gock.IsDone())
}

func TestNewDefault_RemoteErrorStatus(t *testing.T) {
	defer gock.Off()

	gock.New(shared.BASE_API_URL).
		Get("/IPlayerService/GetSteamLevel/v1").
		Reply(403)

	api, err := NewDefault("wrong")
	require.NoError(t, err)

	_, err = api.PlayerService().GetSteamLevel(context.Background(), "1")
	var transportErr *webapi.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 403, transportErr.StatusCode)
	assert.ErrorIs(t, err, webapi.ErrUnexpectedStatus)
}

func TestNewFromConfig(t *testing.T) {
	defer gock.Off()

	gock.New("http://steam.internal:8080").
		Get("/ISteamWebAPIUtil/GetServerInfo/v1").
		Reply(200).
		JSON(map[string]any{"servertime": 1625396869, "servertimestring": "Sun Jul  4 04:07:49 2021"})

	api, err := NewFromConfig(config.Config{
		General: config.GeneralConfig{LogLevel: "error"},
		Steam:   config.SteamConfig{Token: "abc123", BaseURL: "http://steam.internal:8080", TimeoutSeconds: 2},
	})
	require.NoError(t, err)

	got, err := api.WebAPIUtil().GetServerInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1625396869), got.ServerTime)
	assert.True(t, gock.IsDone())
}

func TestNewFromConfig_InvalidBaseURL(t *testing.T) {
	_, err := NewFromConfig(config.Config{Steam: config.SteamConfig{BaseURL: "not a url"}})
	assert.Error(t, err)
}
