package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/cydxin/party-sdk/models"
)

// fakeStore 内存版 Store：事务内的改动出错时整体回滚。
// 所有访问都在 mu 下串行，事务期间持锁，足够验证业务语义与并发不变量。
type fakeStore struct {
	db   *fakeDB
	inTx bool
}

type fakeDB struct {
	mu     sync.Mutex
	nextID uint64

	posts         map[uint64]models.PartyPost
	joins         map[uint64]models.PartyJoin
	notifications map[uint64]models.Notification
	comments      map[uint64]models.PartyComment

	// saveErr 非空时 Notifications().Save 失败
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{db: &fakeDB{
		posts:         make(map[uint64]models.PartyPost),
		joins:         make(map[uint64]models.PartyJoin),
		notifications: make(map[uint64]models.Notification),
		comments:      make(map[uint64]models.PartyComment),
	}}
}

func (s *fakeStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.db.mu.Lock()
	return s.db.mu.Unlock
}

func (s *fakeStore) id() uint64 {
	s.db.nextID++
	return s.db.nextID
}

func (s *fakeStore) Parties() PartyStore             { return fakeParties{s} }
func (s *fakeStore) Notifications() NotificationStore { return fakeNotifications{s} }
func (s *fakeStore) Comments() CommentStore           { return fakeComments{s} }

func (s *fakeStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	snap := s.db.snapshot()
	if err := fn(&fakeStore{db: s.db, inTx: true}); err != nil {
		s.db.restore(snap)
		return err
	}
	return nil
}

type fakeSnapshot struct {
	posts         map[uint64]models.PartyPost
	joins         map[uint64]models.PartyJoin
	notifications map[uint64]models.Notification
	comments      map[uint64]models.PartyComment
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (d *fakeDB) snapshot() fakeSnapshot {
	return fakeSnapshot{
		posts:         copyMap(d.posts),
		joins:         copyMap(d.joins),
		notifications: copyMap(d.notifications),
		comments:      copyMap(d.comments),
	}
}

func (d *fakeDB) restore(s fakeSnapshot) {
	d.posts, d.joins, d.notifications, d.comments = s.posts, s.joins, s.notifications, s.comments
}

// 测试断言用的只读视图

func (s *fakeStore) post(id uint64) (models.PartyPost, bool) {
	defer s.lock()()
	p, ok := s.db.posts[id]
	return p, ok
}

func (s *fakeStore) joinCount(postID uint64) int {
	defer s.lock()()
	n := 0
	for _, j := range s.db.joins {
		if j.PostID == postID {
			n++
		}
	}
	return n
}

func (s *fakeStore) notificationsFor(userID uint64) []models.Notification {
	defer s.lock()()
	var out []models.Notification
	for _, n := range s.db.notifications {
		if n.ReceiverID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *fakeStore) notificationsForPost(postID uint64) int {
	defer s.lock()()
	n := 0
	for _, v := range s.db.notifications {
		if v.RelatedPostID != nil && *v.RelatedPostID == postID {
			n++
		}
	}
	return n
}

func (s *fakeStore) setSaveErr(err error) {
	defer s.lock()()
	s.db.saveErr = err
}

type fakeParties struct{ s *fakeStore }

func (f fakeParties) CreatePost(ctx context.Context, post *models.PartyPost) error {
	defer f.s.lock()()
	post.ID = f.s.id()
	now := time.Now()
	post.CreatedAt, post.UpdatedAt = now, now
	f.s.db.posts[post.ID] = *post
	return nil
}

func (f fakeParties) GetPost(ctx context.Context, postID uint64, forUpdate bool) (*models.PartyPost, error) {
	defer f.s.lock()()
	p, ok := f.s.db.posts[postID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (f fakeParties) SaveCounters(ctx context.Context, post *models.PartyPost) error {
	defer f.s.lock()()
	p, ok := f.s.db.posts[post.ID]
	if !ok {
		return ErrNotFound
	}
	p.CurrentParticipants = post.CurrentParticipants
	p.IsClosed = post.IsClosed
	f.s.db.posts[post.ID] = p
	return nil
}

func (f fakeParties) DeletePost(ctx context.Context, postID uint64) error {
	defer f.s.lock()()
	if _, ok := f.s.db.posts[postID]; !ok {
		return ErrNotFound
	}
	for id, j := range f.s.db.joins {
		if j.PostID == postID {
			delete(f.s.db.joins, id)
		}
	}
	delete(f.s.db.posts, postID)
	return nil
}

func (f fakeParties) ListPosts(ctx context.Context, filter PostFilter) ([]models.PartyPost, error) {
	defer f.s.lock()()
	var all []models.PartyPost
	for _, p := range f.s.db.posts {
		if filter.IsClosed != nil && p.IsClosed != *filter.IsClosed {
			continue
		}
		if filter.Deadline != nil {
			y1, m1, d1 := filter.Deadline.Date()
			y2, m2, d2 := p.Deadline.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	start := filter.Page * filter.Size
	if start >= len(all) {
		return nil, nil
	}
	end := start + filter.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (f fakeParties) GetJoin(ctx context.Context, joinID uint64) (*models.PartyJoin, error) {
	defer f.s.lock()()
	j, ok := f.s.db.joins[joinID]
	if !ok {
		return nil, ErrNotFound
	}
	return &j, nil
}

func (f fakeParties) FindJoin(ctx context.Context, postID, userID uint64) (*models.PartyJoin, error) {
	defer f.s.lock()()
	for _, j := range f.s.db.joins {
		if j.PostID == postID && j.UserID == userID {
			return &j, nil
		}
	}
	return nil, ErrNotFound
}

func (f fakeParties) CreateJoin(ctx context.Context, join *models.PartyJoin) error {
	defer f.s.lock()()
	for _, j := range f.s.db.joins {
		if j.PostID == join.PostID && j.UserID == join.UserID {
			return ErrAlreadyJoined
		}
	}
	join.ID = f.s.id()
	now := time.Now()
	join.CreatedAt, join.UpdatedAt = now, now
	f.s.db.joins[join.ID] = *join
	return nil
}

func (f fakeParties) UpdateJoinStatus(ctx context.Context, joinID uint64, status models.JoinStatus) error {
	defer f.s.lock()()
	j, ok := f.s.db.joins[joinID]
	if !ok {
		return ErrNotFound
	}
	j.Status = status
	j.UpdatedAt = time.Now()
	f.s.db.joins[joinID] = j
	return nil
}

func (f fakeParties) DeleteJoin(ctx context.Context, joinID uint64) error {
	defer f.s.lock()()
	delete(f.s.db.joins, joinID)
	return nil
}

func (f fakeParties) listJoins(match func(models.PartyJoin) bool) []models.PartyJoin {
	var out []models.PartyJoin
	for _, j := range f.s.db.joins {
		if match(j) {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f fakeParties) ListJoinsByPost(ctx context.Context, postID uint64) ([]models.PartyJoin, error) {
	defer f.s.lock()()
	return f.listJoins(func(j models.PartyJoin) bool { return j.PostID == postID }), nil
}

func (f fakeParties) ListJoinsByWriter(ctx context.Context, writerID uint64) ([]models.PartyJoin, error) {
	defer f.s.lock()()
	return f.listJoins(func(j models.PartyJoin) bool {
		p, ok := f.s.db.posts[j.PostID]
		return ok && p.WriterID == writerID
	}), nil
}

func (f fakeParties) ListJoinsByUser(ctx context.Context, userID uint64, statuses ...models.JoinStatus) ([]models.PartyJoin, error) {
	defer f.s.lock()()
	return f.listJoins(func(j models.PartyJoin) bool {
		if j.UserID != userID {
			return false
		}
		if len(statuses) == 0 {
			return true
		}
		for _, st := range statuses {
			if j.Status == st {
				return true
			}
		}
		return false
	}), nil
}

type fakeNotifications struct{ s *fakeStore }

func (f fakeNotifications) Save(ctx context.Context, n *models.Notification) error {
	defer f.s.lock()()
	if f.s.db.saveErr != nil {
		return f.s.db.saveErr
	}
	n.ID = f.s.id()
	f.s.db.notifications[n.ID] = *n
	return nil
}

func (f fakeNotifications) FindByID(ctx context.Context, id uint64) (*models.Notification, error) {
	defer f.s.lock()()
	n, ok := f.s.db.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &n, nil
}

func (f fakeNotifications) FindByReceiver(ctx context.Context, userID uint64) ([]models.Notification, error) {
	defer f.s.lock()()
	var out []models.Notification
	for _, n := range f.s.db.notifications {
		if n.ReceiverID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f fakeNotifications) MarkRead(ctx context.Context, id uint64) error {
	defer f.s.lock()()
	n, ok := f.s.db.notifications[id]
	if !ok {
		return ErrNotFound
	}
	n.IsRead = true
	f.s.db.notifications[id] = n
	return nil
}

func (f fakeNotifications) MarkAllRead(ctx context.Context, userID uint64) error {
	defer f.s.lock()()
	for id, n := range f.s.db.notifications {
		if n.ReceiverID == userID {
			n.IsRead = true
			f.s.db.notifications[id] = n
		}
	}
	return nil
}

func (f fakeNotifications) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	defer f.s.lock()()
	var c int64
	for _, n := range f.s.db.notifications {
		if n.ReceiverID == userID && !n.IsRead {
			c++
		}
	}
	return c, nil
}

func (f fakeNotifications) DeleteByRelatedPost(ctx context.Context, postID uint64) error {
	defer f.s.lock()()
	for id, n := range f.s.db.notifications {
		if n.RelatedPostID != nil && *n.RelatedPostID == postID {
			delete(f.s.db.notifications, id)
		}
	}
	return nil
}

func (f fakeNotifications) DeleteByRelatedComment(ctx context.Context, commentIDs ...uint64) error {
	defer f.s.lock()()
	set := make(map[uint64]bool, len(commentIDs))
	for _, id := range commentIDs {
		set[id] = true
	}
	for id, n := range f.s.db.notifications {
		if n.RelatedCommentID != nil && set[*n.RelatedCommentID] {
			delete(f.s.db.notifications, id)
		}
	}
	return nil
}

type fakeComments struct{ s *fakeStore }

func (f fakeComments) Create(ctx context.Context, c *models.PartyComment) error {
	defer f.s.lock()()
	c.ID = f.s.id()
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	f.s.db.comments[c.ID] = *c
	return nil
}

func (f fakeComments) Get(ctx context.Context, id uint64) (*models.PartyComment, error) {
	defer f.s.lock()()
	c, ok := f.s.db.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (f fakeComments) ListByPost(ctx context.Context, postID uint64) ([]models.PartyComment, error) {
	defer f.s.lock()()
	var out []models.PartyComment
	for _, c := range f.s.db.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeComments) DeleteByIDs(ctx context.Context, ids ...uint64) error {
	defer f.s.lock()()
	for _, id := range ids {
		delete(f.s.db.comments, id)
	}
	return nil
}

func (f fakeComments) DeleteByPost(ctx context.Context, postID uint64) error {
	defer f.s.lock()()
	for id, c := range f.s.db.comments {
		if c.PostID == postID {
			delete(f.s.db.comments, id)
		}
	}
	return nil
}

// fakeDirectory 用户 + 主题目录
type fakeDirectory struct {
	users  map[uint64]*models.User
	themes map[uint64]*models.Theme
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		users: map[uint64]*models.User{
			1:  {ID: 1, Nickname: "发帖人", Role: models.RoleUser},
			2:  {ID: 2, Nickname: "小A", Role: models.RoleUser},
			3:  {ID: 3, Nickname: "小B", Role: models.RoleUser},
			4:  {ID: 4, Nickname: "小C", Role: models.RoleUser},
			99: {ID: 99, Nickname: "管理员", Role: models.RoleAdmin},
		},
		themes: map[uint64]*models.Theme{
			10: {ID: 10, Title: "古堡惊魂", Brand: "谜境", Location: "上海"},
		},
	}
}

func (d *fakeDirectory) FindUser(ctx context.Context, id uint64) (*models.User, error) {
	u, ok := d.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (d *fakeDirectory) FindTheme(ctx context.Context, id uint64) (*models.Theme, error) {
	t, ok := d.themes[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

// pushRecorder 记录在线推送；online 里的用户视为在线
type pushRecorder struct {
	mu     sync.Mutex
	online map[uint64]bool
	pushes []recordedPush
}

type recordedPush struct {
	UserID  uint64
	Message string
}

func (r *pushRecorder) push(userID uint64, message string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.online[userID] {
		return false
	}
	r.pushes = append(r.pushes, recordedPush{UserID: userID, Message: message})
	return true
}

func (r *pushRecorder) to(userID uint64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, p := range r.pushes {
		if p.UserID == userID {
			out = append(out, p.Message)
		}
	}
	return out
}

type testEnv struct {
	base     *Service
	store    *fakeStore
	dir      *fakeDirectory
	pushes   *pushRecorder
	parties  *PartyService
	comments *CommentService
}

func newTestEnv(online ...uint64) *testEnv {
	store := newFakeStore()
	dir := newFakeDirectory()
	rec := &pushRecorder{online: make(map[uint64]bool)}
	for _, uid := range online {
		rec.online[uid] = true
	}
	base := NewService(store, dir, dir, Config{NotifyUnchangedDecision: true})
	base.LivePush = rec.push
	return &testEnv{
		base:     base,
		store:    store,
		dir:      dir,
		pushes:   rec,
		parties:  NewPartyService(base),
		comments: NewCommentService(base),
	}
}

var errBoom = errors.New("boom")
