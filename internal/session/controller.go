package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/domain"
	"github.com/marcomarassi/note-keeper-service/internal/form"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// NoteLoader fetches the full note list of a user. It is the only
// thing the controller needs from the note layer, which keeps the
// dependency pointing one way.
type NoteLoader interface {
	List(ctx context.Context, uid int64) ([]*domain.Note, error)
}

// Session is the per-login state. All fields are guarded by the
// controller mutex.
type Session struct {
	User      *domain.SessionUser
	snapshot  []*domain.Note
	form      *form.Form
	banner    string
	bannerExp time.Time
	lastSeen  time.Time
}

// Controller owns the sessions. It reacts to auth events from the hub:
// a login provisions a session and loads the snapshot, a logout clears
// everything for that uid.
type Controller struct {
	loader    NoteLoader
	hub       *Hub
	logger    *zap.Logger
	bannerTTL time.Duration

	mu       sync.RWMutex
	sessions map[int64]*Session
	// gens invalidates in-flight reloads: a reload only lands if the
	// generation it started under is still current. An entry lives as
	// long as a reload that observed it can still be in flight.
	gens     map[int64]uint64
	inflight map[int64]int

	sf singleflight.Group
}

type Config struct {
	BannerTTL time.Duration
}

func NewController(loader NoteLoader, hub *Hub, conf *Config, logger *zap.Logger) *Controller {
	ttl := 5 * time.Second
	if conf != nil && conf.BannerTTL > 0 {
		ttl = conf.BannerTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		loader:    loader,
		hub:       hub,
		logger:    logger,
		bannerTTL: ttl,
		sessions:  make(map[int64]*Session),
		gens:      make(map[int64]uint64),
		inflight:  make(map[int64]int),
	}
}

// Run consumes auth events until ctx is done.
func (c *Controller) Run(ctx context.Context) {
	ch := c.hub.Subscribe()
	defer c.hub.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			c.handle(ctx, ev)
		}
	}
}

func (c *Controller) handle(ctx context.Context, ev StateEvent) {
	if ev.User == nil {
		c.Logout(ev.UID)
		return
	}

	c.login(ev.User)
	if _, err := c.Reload(ctx, ev.UID); err != nil {
		c.logger.Error("snapshot load after login failed",
			zap.Int64("uid", ev.UID), zap.Error(err))
		c.SetBanner(ev.UID, "Errore caricamento note: "+err.Error())
	}
}

func (c *Controller) login(user *domain.SessionUser) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[user.UID]
	if !ok {
		s = &Session{form: form.New()}
		c.sessions[user.UID] = s
	}
	s.User = user
	s.lastSeen = time.Now()
}

// Logout drops the session. The generation bump makes any reload that
// is still in flight discard its result instead of resurrecting the
// snapshot.
func (c *Controller) Logout(uid int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, uid)
	c.invalidateLocked(uid)
}

// invalidateLocked bumps the uid's generation, or drops the tracking
// entry entirely when no reload can still observe it.
func (c *Controller) invalidateLocked(uid int64) {
	if c.inflight[uid] > 0 {
		c.gens[uid]++
		return
	}
	delete(c.gens, uid)
}

// Ensure provisions a session for an authenticated user when none
// exists yet, for example after a restart invalidated the in-memory
// state but not the token. The snapshot is loaded synchronously.
func (c *Controller) Ensure(ctx context.Context, user *domain.SessionUser) error {
	if c.Has(user.UID) {
		return nil
	}
	c.login(user)
	_, err := c.Reload(ctx, user.UID)
	return err
}

// Reload fetches the note list and installs it as the new snapshot.
// Concurrent reloads for the same uid are coalesced into one query.
// Returns the number of notes installed.
func (c *Controller) Reload(ctx context.Context, uid int64) (int, error) {
	c.mu.Lock()
	gen := c.gens[uid]
	c.inflight[uid]++
	c.mu.Unlock()

	v, err, _ := c.sf.Do(strconv.FormatInt(uid, 10), func() (any, error) {
		return c.loader.List(ctx, uid)
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	c.inflight[uid]--
	if c.inflight[uid] <= 0 {
		delete(c.inflight, uid)
		if _, ok := c.sessions[uid]; !ok {
			delete(c.gens, uid)
		}
	}

	if err != nil {
		return 0, err
	}
	notes := v.([]*domain.Note)

	s, ok := c.sessions[uid]
	if !ok || c.gens[uid] != gen {
		return 0, nil
	}
	s.snapshot = notes
	return len(notes), nil
}

// Snapshot returns the cached note list. The second result is false
// when the uid has no live session.
func (c *Controller) Snapshot(uid int64) ([]*domain.Note, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sessions[uid]
	if !ok {
		return nil, false
	}
	return s.snapshot, true
}

// SnapshotNote looks a note up in the snapshot by id.
func (c *Controller) SnapshotNote(uid, id int64) (*domain.Note, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sessions[uid]
	if !ok {
		return nil, false
	}
	for _, n := range s.snapshot {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// Touch marks the session as active for idle accounting.
func (c *Controller) Touch(uid int64) {
	c.mu.Lock()
	if s, ok := c.sessions[uid]; ok {
		s.lastSeen = time.Now()
	}
	c.mu.Unlock()
}

// Has reports whether the uid has a live session.
func (c *Controller) Has(uid int64) bool {
	c.mu.RLock()
	_, ok := c.sessions[uid]
	c.mu.RUnlock()
	return ok
}

// SetBanner installs a transient message that expires after the
// configured TTL.
func (c *Controller) SetBanner(uid int64, msg string) {
	c.mu.Lock()
	s, ok := c.sessions[uid]
	if !ok {
		c.mu.Unlock()
		return
	}
	s.banner = msg
	exp := time.Now().Add(c.bannerTTL)
	s.bannerExp = exp
	c.mu.Unlock()

	time.AfterFunc(c.bannerTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if s, ok := c.sessions[uid]; ok && !s.bannerExp.After(exp) {
			s.banner = ""
		}
	})
}

// Banner returns the current banner, or empty once it has expired.
func (c *Controller) Banner(uid int64) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sessions[uid]
	if !ok || s.banner == "" || time.Now().After(s.bannerExp) {
		return ""
	}
	return s.banner
}

// WithForm runs fn with the uid's form under the controller lock.
// Returns false when the uid has no live session.
func (c *Controller) WithForm(uid int64, fn func(f *form.Form)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[uid]
	if !ok {
		return false
	}
	fn(s.form)
	return true
}

// CleanIdle drops sessions not touched within maxIdle and returns how
// many were removed.
func (c *Controller) CleanIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for uid, s := range c.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(c.sessions, uid)
			c.invalidateLocked(uid)
			removed++
		}
	}
	return removed
}

// Count returns the number of live sessions.
func (c *Controller) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sessions)
}
