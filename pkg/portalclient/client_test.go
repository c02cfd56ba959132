package portalclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsBearerAndDecodesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/events", r.URL.Path)
		_, _ = w.Write([]byte(`{"items":[{"id":"e-1","title":"Hackathon","rsvp_count":3,"is_rsvpd":true}]}`))
	}))
	defer server.Close()

	client, err := New(server.URL+"/", WithToken("tok-1"))
	require.NoError(t, err)

	events, err := client.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Hackathon", events[0].Title)
	assert.Equal(t, int64(3), events[0].RSVPCount)
	assert.True(t, events[0].IsRSVPd)
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"not_found","message":"event not found"}}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	_, err = client.ToggleRSVP(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "event not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestClientErrorWithoutEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	err = client.MarkNotificationRead(context.Background(), "n-1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad_gateway", apiErr.Code)
}

func TestSetTodoDoneSendsPatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/todos/t-1", r.URL.Path)
		var body map[string]bool
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]bool{"done": true}, body)
		_, _ = w.Write([]byte(`{"id":"t-1","done":true}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	done, err := client.SetTodoDone(context.Background(), "t-1", true)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestSetRoomStatusSendsPut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/rooms/r-1/status", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"status": "occupied"}, body)
		_, _ = w.Write([]byte(`{"id":"r-1","status_override":"occupied","occupied":true,"label":"Manual Override"}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	room, err := client.SetRoomStatus(context.Background(), "r-1", RoomOccupied)
	require.NoError(t, err)
	assert.True(t, room.Occupied)
	require.NotNil(t, room.Label)
	assert.Equal(t, manualOverrideLabel, *room.Label)
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New("  ")
	assert.ErrorIs(t, err, ErrBaseURLRequired)
}
