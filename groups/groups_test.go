package groups

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
	"github.com/semtisem/dracoon-go/models"
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

func TestCreateGroup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var req CreateGroupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "auditors", req.Name)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":7,"name":"auditors","cntUsers":0,"createdAt":"2021-11-02T09:00:00Z"}`)
	})
	a := testAdapter(t, mux)

	group, err := a.CreateGroup(context.Background(), CreateGroupRequest{Name: "auditors"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), group.ID)
	assert.Equal(t, "auditors", group.Name)
}

func TestGetGroupsQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		q := r.URL.Query()
		assert.Equal(t, "500", q.Get("offset"))
		assert.Equal(t, "name:cn:admin", q.Get("filter"))
		assert.Equal(t, "100", q.Get("limit"))
		assert.Equal(t, "name:asc", q.Get("sort"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"range":{"offset":500,"limit":100,"total":501},"items":[{"id":1,"name":"admins","cntUsers":3}]}`)
	})
	a := testAdapter(t, mux)

	list, err := a.GetGroups(context.Background(), models.ListParams{
		Offset: 500, Filter: "name:cn:admin", Limit: 100, Sort: "name:asc",
	})
	require.NoError(t, err)
	assert.Equal(t, 501, list.Range.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "admins", list.Items[0].Name)
}

func TestGetGroupNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups/99", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code":404,"message":"Group not found","errorCode":-60000}`)
	})
	a := testAdapter(t, mux)

	_, err := a.GetGroup(context.Background(), 99)
	assert.True(t, errs.IsNotFoundError(err))
}

func TestUpdateGroup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups/7", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		var req UpdateGroupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "auditors-renamed", req.Name)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":7,"name":"auditors-renamed","cntUsers":2}`)
	})
	a := testAdapter(t, mux)

	group, err := a.UpdateGroup(context.Background(), 7, UpdateGroupRequest{Name: "auditors-renamed"})
	require.NoError(t, err)
	assert.Equal(t, "auditors-renamed", group.Name)
}

func TestDeleteGroup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups/7", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	a := testAdapter(t, mux)

	assert.NoError(t, a.DeleteGroup(context.Background(), 7))
}

func TestAddGroupUsers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups/7/users", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var req models.IDList
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []int64{1, 2, 3}, req.IDs)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":7,"name":"auditors","cntUsers":3}`)
	})
	a := testAdapter(t, mux)

	group, err := a.AddGroupUsers(context.Background(), 7, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, group.CntUsers)
}

func TestDeleteGroupUsersSendsBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups/7/users", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		var req models.IDList
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []int64{2}, req.IDs)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":7,"name":"auditors","cntUsers":2}`)
	})
	a := testAdapter(t, mux)

	group, err := a.DeleteGroupUsers(context.Background(), 7, []int64{2})
	require.NoError(t, err)
	assert.Equal(t, 2, group.CntUsers)
}

func TestGetGroupLastAdminRooms(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups/7/last_admin_rooms", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[{"id":11,"name":"Finance","parentPath":"/"}]}`)
	})
	a := testAdapter(t, mux)

	list, err := a.GetGroupLastAdminRooms(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Finance", list.Items[0].Name)
}

func TestGetGroupRoles(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups/7/roles", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[{"id":1,"name":"ROOM_MANAGER"}]}`)
	})
	a := testAdapter(t, mux)

	list, err := a.GetGroupRoles(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "ROOM_MANAGER", list.Items[0].Name)
}
