package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

// dialConnection stands up a websocket server that holds the socket open and
// returns a Connection wrapping the client side.
func dialConnection(t *testing.T) *Connection {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return NewConnection("acc-1", ws)
}

func TestConnection_SendDelivers(t *testing.T) {
	conn := dialConnection(t)
	conn.Start()
	defer conn.Close(websocket.CloseNormalClosure, "done")

	if err := conn.Send([]byte(`{"type":"newMessage"}`)); err != nil {
		t.Fatalf("send on live connection: %v", err)
	}
}

func TestConnection_SendAfterCloseReturnsError(t *testing.T) {
	conn := dialConnection(t)
	conn.Start()
	conn.Close(websocket.CloseNormalClosure, "done")

	for i := 0; i < 10; i++ {
		if err := conn.Send([]byte("late")); err == nil {
			t.Fatalf("send %d after close succeeded, want error", i)
		}
	}
}

func TestConnection_ConcurrentSendAndClose(t *testing.T) {
	conn := dialConnection(t)
	conn.Start()

	// A disconnect may race publishes from the ingestion pipeline. Sends may
	// fail, but none may panic, and closing twice must be safe.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = conn.Send([]byte("payload"))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		conn.Close(websocket.CloseNormalClosure, "client went away")
		conn.Close(websocket.CloseNormalClosure, "client went away")
	}()
	wg.Wait()

	if err := conn.Send([]byte("after")); err == nil {
		t.Fatal("send after concurrent close succeeded, want error")
	}
}
