// Package webapi is the transport shared by every Steam Web API interface
// group.
//
// A Client issues GET requests against a fixed base URL, encodes a flat set
// of query parameters and decodes the JSON body into the value supplied by
// the caller. It never retries and never interprets error payloads: network
// failures, non-2xx statuses and undecodable bodies all surface as a
// *TransportError.
//
//	client, err := webapi.NewClient(&webapi.ClientConfig{Timeout: 5 * time.Second})
//	if err != nil {
//		return err
//	}
//
//	var out apps.AppList
//	err = client.Get(ctx, "/ISteamApps/GetAppList/v2", webapi.Params{}, &out)
//
// Interface groups depend on the Requester interface rather than on Client so
// they can be exercised against a stub.
package webapi
