package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/internal/mock"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func readSnapshot(t *testing.T, conn *websocket.Conn) statusResponse {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var got statusResponse
	require.NoError(t, json.Unmarshal(msg, &got))
	return got
}

func TestHub_SendsCurrentThenBroadcasts(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mock.NewMockDialer(ctrl)
	d.EXPECT().Snapshot().Return(readySnapshot).AnyTimes()

	feed := make(chan models.DialerSnapshot, 1)
	d.EXPECT().Subscribe().Return((<-chan models.DialerSnapshot)(feed), func() {})

	h := NewHandler(d, models.AppBuildInfo{}, noLimit, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	hubDone := make(chan error, 1)
	go func() { hubDone <- h.Hub().Run(ctx) }()

	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	first := readSnapshot(t, conn)
	assert.Equal(t, "Ready to Call", first.Status.Text)

	feed <- models.DialerSnapshot{
		Status: models.NewStatus("Calling 5551234...", models.StatusBusy),
		State:  models.CallStateDialing,
	}

	next := readSnapshot(t, conn)
	assert.Equal(t, "Calling 5551234...", next.Status.Text)
	assert.Equal(t, "status-busy", next.Class)

	cancel()
	select {
	case err := <-hubDone:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}

	// the hub closes client connections on shutdown
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_StopsWhenFeedCloses(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mock.NewMockDialer(ctrl)

	feed := make(chan models.DialerSnapshot)
	d.EXPECT().Subscribe().Return((<-chan models.DialerSnapshot)(feed), func() {})
	close(feed)

	hub := NewHub(d, logger.Nop())

	assert.NoError(t, hub.Run(context.Background()))
}
