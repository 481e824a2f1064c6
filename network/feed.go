package network

import (
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
)

const writeWait = 5 * time.Second

var spectatorIds int64 = 0
var spectators = hashmap.New()

// Message is what a spectator receives for every game event.
type Message struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}

type spectator struct {
	id    int64
	feed  *Feed
	conn  *websocket.Conn
	mu    sync.Mutex
	once  sync.Once
}

func (s *spectator) write(message Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(message)
}

// hangUp closes the connection once, however many times it is called.
func (s *spectator) hangUp() error {
	var err error
	s.once.Do(func() {
		err = s.conn.Close()
	})
	return err
}

// Feed streams a game to read-only websocket spectators. Anything a spectator
// sends is ignored.
type Feed struct {
	addr string
}

func NewFeed(addr string) *Feed {
	return &Feed{addr: addr}
}

func (f *Feed) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", f.serveWs)
	return mux
}

func (f *Feed) Serve() error {
	log.Infof("Spectator feed listener on %s\n", f.addr)
	return http.ListenAndServe(f.addr, f.Handler())
}

func (f *Feed) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	s := &spectator{
		id:   atomic.AddInt64(&spectatorIds, 1),
		feed: f,
		conn: conn,
	}
	spectators.Set(s.id, s)
	log.Infof("spectator %d connected from %s\n", s.id, r.RemoteAddr)

	defer func() {
		spectators.Del(s.id)
		if err := s.hangUp(); err != nil {
			log.Error(err)
		}
		log.Infof("spectator %d left\n", s.id)
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Spectators counts the connections watching this feed.
func (f *Feed) Spectators() int {
	return len(f.watchers())
}

func (f *Feed) watchers() []*spectator {
	list := make([]*spectator, 0)
	spectators.Foreach(func(e *hashmap.Entry) {
		if s := e.Value().(*spectator); s.feed == f {
			list = append(list, s)
		}
	})
	return list
}

func (f *Feed) Broadcast(event string, message string) {
	message = strings.TrimSuffix(message, "\n")
	for _, s := range f.watchers() {
		if err := s.write(Message{Event: event, Message: message}); err != nil {
			log.Error(err)
			// the reader in serveWs sees the closed connection and unregisters it
			_ = s.hangUp()
		}
	}
}
