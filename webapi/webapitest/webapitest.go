// Package webapitest provides doubles for code built on webapi.Requester.
package webapitest

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marcus-crane/steamwebapi/webapi"
)

// Requester records every Get call. Responses are configured with testify's
// On/Return, or with the Respond and Fail helpers.
type Requester struct {
	mock.Mock
}

var _ webapi.Requester = (*Requester)(nil)

func (r *Requester) Get(ctx context.Context, path string, params webapi.Params, out any) error {
	args := r.Called(ctx, path, params, out)
	return args.Error(0)
}

// Respond makes any Get on path decode body into the caller's value.
func (r *Requester) Respond(t *testing.T, path string, body []byte) *mock.Call {
	t.Helper()
	return r.On("Get", mock.Anything, path, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			require.NoError(t, json.Unmarshal(body, args.Get(3)))
		}).
		Return(nil)
}

// Fail makes any Get on path return err.
func (r *Requester) Fail(path string, err error) *mock.Call {
	return r.On("Get", mock.Anything, path, mock.Anything, mock.Anything).Return(err)
}

// Params returns the parameters of the only recorded call.
func (r *Requester) Params(t *testing.T) webapi.Params {
	t.Helper()
	require.Len(t, r.Calls, 1)
	return r.Calls[0].Arguments.Get(2).(webapi.Params)
}

// Fixture reads testdata/name.
func Fixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return b
}

// RoundTrip decodes fixture into a fresh T and encodes it again.
func RoundTrip[T any](t *testing.T, fixture []byte) []byte {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(fixture, &v))
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
