package party_sdk

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cydxin/party-sdk/cons"
)

func TestSSEChannel_HeadersAndFrames(t *testing.T) {
	w := httptest.NewRecorder()
	ch := NewSSEChannel(w)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content-type=%q", ct)
	}
	if !w.Flushed {
		t.Fatal("headers should be flushed immediately")
	}

	if err := ch.Send(cons.EventNotification, "小王 申请加入你的组局"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := ch.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}

	want := "event:notification\ndata:小王 申请加入你的组局\n\n" + cons.SSEPingComment
	if got := w.Body.String(); got != want {
		t.Fatalf("body=%q want %q", got, want)
	}
}

func TestSSEChannel_Close(t *testing.T) {
	ch := NewSSEChannel(httptest.NewRecorder())
	if ch.ID() == "" {
		t.Fatal("empty id")
	}

	_ = ch.Close()
	_ = ch.Close()

	select {
	case <-ch.Done():
	default:
		t.Fatal("Done not closed")
	}
	if err := ch.Send("x", "y"); !errors.Is(err, ErrChannelClosed) {
		t.Fatalf("send after close: %v", err)
	}
	if err := ch.Ping(); !errors.Is(err, ErrChannelClosed) {
		t.Fatalf("ping after close: %v", err)
	}
}

// failingWriter 模拟客户端已断开
type failingWriter struct {
	*httptest.ResponseRecorder
}

func (f failingWriter) Write([]byte) (int, error)       { return 0, errBrokenPipe }
func (f failingWriter) WriteString(string) (int, error) { return 0, errBrokenPipe }
func (f failingWriter) FlushError() error               { return errBrokenPipe }

func TestSSEChannel_WriteErrorClosesChannel(t *testing.T) {
	ch := NewSSEChannel(failingWriter{httptest.NewRecorder()})

	if err := ch.Send(cons.EventNotification, "x"); err == nil {
		t.Fatal("expected write error")
	}
	select {
	case <-ch.Done():
	default:
		t.Fatal("write error should close the channel")
	}
}

func TestSSEChannel_DistinctIDs(t *testing.T) {
	a := NewSSEChannel(httptest.NewRecorder())
	b := NewSSEChannel(httptest.NewRecorder())
	if a.ID() == b.ID() || !strings.Contains(a.ID(), "-") {
		t.Fatalf("ids %q %q", a.ID(), b.ID())
	}
}
