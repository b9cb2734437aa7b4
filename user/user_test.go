package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtisem/dracoon-go/client"
	"github.com/semtisem/dracoon-go/errs"
)

func testAdapter(t *testing.T, mux *http.ServeMux) *Adapter {
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"token-1","refresh_token":"refresh-1","token_type":"bearer","expires_in":3600}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := client.New(client.Config{BaseURL: srv.URL, ClientID: "id", ClientSecret: "secret"})
	require.NoError(t, err)
	require.NoError(t, c.Connect(context.Background(), client.PasswordFlow("user", "pass")))
	return NewAdapter(c)
}

func TestGetAccount(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/user/account", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":3,"userName":"octavio","firstName":"Octavio","lastName":"Simone",
			"hasManageableRooms":true,"userRoles":{"items":[{"id":1,"name":"CONFIG_MANAGER"}]}}`)
	})
	a := testAdapter(t, mux)

	account, err := a.GetAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), account.ID)
	assert.True(t, account.HasManageableRooms)
	require.NotNil(t, account.UserRoles)
	require.Len(t, account.UserRoles.Items, 1)
	assert.Equal(t, "CONFIG_MANAGER", account.UserRoles.Items[0].Name)
}

func TestUpdateAccount(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/user/account", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		var req UpdateAccountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "de", req.Language)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":3,"userName":"octavio","firstName":"Octavio","lastName":"Simone","language":"de"}`)
	})
	a := testAdapter(t, mux)

	account, err := a.UpdateAccount(context.Background(), UpdateAccountRequest{Language: "de"})
	require.NoError(t, err)
	assert.Equal(t, "de", account.Language)
}

func TestPing(t *testing.T) {
	var pinged bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/user/ping", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		pinged = true
		w.WriteHeader(http.StatusNoContent)
	})
	a := testAdapter(t, mux)

	require.NoError(t, a.Ping(context.Background()))
	assert.True(t, pinged)
}

func TestPingUnauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/user/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"code":403,"message":"Access denied"}`)
	})
	a := testAdapter(t, mux)

	err := a.Ping(context.Background())
	require.ErrorIs(t, err, errs.Forbidden)
}
