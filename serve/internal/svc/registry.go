package svc

import (
	"sync"

	"github.com/HuXin0817/weiqi/pkg/models/game"
	"github.com/HuXin0817/weiqi/pkg/models/message"
)

// Session is a game being played on this instance. Callers hold the
// embedded mutex while reading or changing it.
type Session struct {
	sync.Mutex
	*game.Game
	Uid    message.GameUid
	Over   bool
	Winner string
	Reason string
}

type Registry struct {
	lock     sync.RWMutex
	sessions map[message.GameUid]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[message.GameUid]*Session)}
}

func (r *Registry) Add(s *Session) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.sessions[s.Uid] = s
}

// AddIfAbsent adds s unless a session with its uid is already loaded, and
// reports whether it did.
func (r *Registry) AddIfAbsent(s *Session) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.sessions[s.Uid]; ok {
		return false
	}
	r.sessions[s.Uid] = s
	return true
}

func (r *Registry) Get(uid message.GameUid) (*Session, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	s, ok := r.sessions[uid]
	return s, ok
}

func (r *Registry) Remove(uid message.GameUid) {
	r.lock.Lock()
	defer r.lock.Unlock()

	delete(r.sessions, uid)
}

func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.sessions)
}
