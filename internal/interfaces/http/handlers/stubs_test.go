package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
)

// In-memory repository stubs. They mirror the storage-level behavior the
// handlers depend on: idempotent follow edges, case-insensitive email
// lookups, newest-first listings and the user-only feed subquery.

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return domainerrors.ErrAlreadyExists
		}
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *userRepoStub) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (s *userRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *userRepoStub) List(_ context.Context, search string, limit, offset int) ([]*entities.User, int64, error) {
	var out []*entities.User
	for _, u := range s.users {
		if search == "" || strings.Contains(strings.ToLower(u.Name), strings.ToLower(search)) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), int64(len(out)), nil
}

type followEdge struct {
	follow entities.Follow
}

type followRepoStub struct {
	edges    map[string]*followEdge
	users    *userRepoStub
	startups *startupRepoStub
}

func newFollowRepoStub(users *userRepoStub, startups *startupRepoStub) *followRepoStub {
	return &followRepoStub{edges: map[string]*followEdge{}, users: users, startups: startups}
}

func edgeKey(followerID, followedID uuid.UUID, followedType entities.FollowableType) string {
	return followerID.String() + "|" + followedID.String() + "|" + string(followedType)
}

func (s *followRepoStub) Create(_ context.Context, follow *entities.Follow) error {
	key := edgeKey(follow.FollowerID, follow.FollowedID, follow.FollowedType)
	if _, ok := s.edges[key]; ok {
		return nil
	}
	s.edges[key] = &followEdge{follow: *follow}
	return nil
}

func (s *followRepoStub) Delete(_ context.Context, followerID uuid.UUID, target entities.FollowTarget) error {
	delete(s.edges, edgeKey(followerID, target.ID, target.Type))
	return nil
}

func (s *followRepoStub) Exists(_ context.Context, followerID uuid.UUID, target entities.FollowTarget) (bool, error) {
	_, ok := s.edges[edgeKey(followerID, target.ID, target.Type)]
	return ok, nil
}

func (s *followRepoStub) CountFollowed(_ context.Context, followerID uuid.UUID, followedType entities.FollowableType) (int64, error) {
	var n int64
	for _, e := range s.edges {
		if e.follow.FollowerID == followerID && e.follow.FollowedType == followedType {
			n++
		}
	}
	return n, nil
}

func (s *followRepoStub) CountFollowers(_ context.Context, target entities.FollowTarget) (int64, error) {
	var n int64
	for _, e := range s.edges {
		if e.follow.FollowedID == target.ID && e.follow.FollowedType == target.Type {
			n++
		}
	}
	return n, nil
}

func (s *followRepoStub) UsersFollowedBy(_ context.Context, followerID uuid.UUID) ([]*entities.User, error) {
	var out []*entities.User
	for _, e := range s.edges {
		if e.follow.FollowerID == followerID && e.follow.FollowedType == entities.FollowableTypeUser {
			if u, ok := s.users.users[e.follow.FollowedID]; ok {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (s *followRepoStub) StartupsFollowedBy(_ context.Context, followerID uuid.UUID) ([]*entities.Startup, error) {
	var out []*entities.Startup
	for _, e := range s.edges {
		if e.follow.FollowerID == followerID && e.follow.FollowedType == entities.FollowableTypeStartup {
			if st, ok := s.startups.startups[e.follow.FollowedID]; ok {
				out = append(out, st)
			}
		}
	}
	return out, nil
}

func (s *followRepoStub) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, e := range s.edges {
		if !e.follow.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type startupRepoStub struct {
	startups    map[uuid.UUID]*entities.Startup
	memberships []*entities.Entrepreneurship
}

func newStartupRepoStub() *startupRepoStub {
	return &startupRepoStub{startups: map[uuid.UUID]*entities.Startup{}}
}

func (s *startupRepoStub) Create(_ context.Context, startup *entities.Startup) error {
	cp := *startup
	s.startups[startup.ID] = &cp
	return nil
}

func (s *startupRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Startup, error) {
	st, ok := s.startups[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return st, nil
}

func (s *startupRepoStub) List(_ context.Context, search string, limit, offset int) ([]*entities.Startup, int64, error) {
	var out []*entities.Startup
	for _, st := range s.startups {
		if search == "" || strings.Contains(strings.ToLower(st.Name), strings.ToLower(search)) {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), int64(len(out)), nil
}

func (s *startupRepoStub) ListByFounder(_ context.Context, userID uuid.UUID) ([]*entities.Startup, error) {
	var out []*entities.Startup
	for _, m := range s.memberships {
		if m.UserID == userID {
			if st, ok := s.startups[m.StartupID]; ok {
				out = append(out, st)
			}
		}
	}
	return out, nil
}

func (s *startupRepoStub) CountByFounder(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, m := range s.memberships {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *startupRepoStub) AddEntrepreneurship(_ context.Context, e *entities.Entrepreneurship) error {
	for _, m := range s.memberships {
		if m.UserID == e.UserID && m.StartupID == e.StartupID {
			return domainerrors.ErrAlreadyExists
		}
	}
	cp := *e
	s.memberships = append(s.memberships, &cp)
	return nil
}

type investorRepoStub struct {
	byUser map[uuid.UUID]*entities.Investor
}

func newInvestorRepoStub() *investorRepoStub {
	return &investorRepoStub{byUser: map[uuid.UUID]*entities.Investor{}}
}

func (s *investorRepoStub) Create(_ context.Context, investor *entities.Investor) error {
	if _, ok := s.byUser[investor.UserID]; ok {
		return domainerrors.ErrAlreadyExists
	}
	cp := *investor
	s.byUser[investor.UserID] = &cp
	return nil
}

func (s *investorRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.Investor, error) {
	inv, ok := s.byUser[userID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return inv, nil
}

func (s *investorRepoStub) ExistsForUser(_ context.Context, userID uuid.UUID) (bool, error) {
	_, ok := s.byUser[userID]
	return ok, nil
}

type micropostRepoStub struct {
	posts   []*entities.MicroPost
	follows *followRepoStub
	users   *userRepoStub
}

func newMicropostRepoStub(follows *followRepoStub, users *userRepoStub) *micropostRepoStub {
	return &micropostRepoStub{follows: follows, users: users}
}

func (s *micropostRepoStub) Create(_ context.Context, post *entities.MicroPost) error {
	cp := *post
	s.posts = append(s.posts, &cp)
	return nil
}

func (s *micropostRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.MicroPost, error) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *micropostRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (s *micropostRepoStub) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entities.MicroPost, int64, error) {
	var out []*entities.MicroPost
	for i := len(s.posts) - 1; i >= 0; i-- {
		if s.posts[i].UserID == userID {
			out = append(out, s.posts[i])
		}
	}
	return paginate(out, limit, offset), int64(len(out)), nil
}

func (s *micropostRepoStub) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range s.posts {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *micropostRepoStub) FeedFor(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entities.MicroPost, int64, error) {
	include := map[uuid.UUID]bool{userID: true}
	for _, e := range s.follows.edges {
		if e.follow.FollowerID == userID && e.follow.FollowedType == entities.FollowableTypeUser {
			include[e.follow.FollowedID] = true
		}
	}

	var out []*entities.MicroPost
	for i := len(s.posts) - 1; i >= 0; i-- {
		if include[s.posts[i].UserID] {
			cp := *s.posts[i]
			if u, ok := s.users.users[cp.UserID]; ok {
				cp.Author = u
			}
			out = append(out, &cp)
		}
	}
	return paginate(out, limit, offset), int64(len(out)), nil
}

func (s *micropostRepoStub) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, p := range s.posts {
		if !p.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type commentRepoStub struct {
	comments []*entities.Comment
}

func newCommentRepoStub() *commentRepoStub {
	return &commentRepoStub{}
}

func (s *commentRepoStub) Create(_ context.Context, comment *entities.Comment) error {
	cp := *comment
	s.comments = append(s.comments, &cp)
	return nil
}

func (s *commentRepoStub) ListForTarget(_ context.Context, target entities.CommentTarget, limit, offset int) ([]*entities.Comment, int64, error) {
	var out []*entities.Comment
	for i := len(s.comments) - 1; i >= 0; i-- {
		c := s.comments[i]
		if c.CommentableID == target.ID && c.CommentableType == target.Type {
			out = append(out, c)
		}
	}
	return paginate(out, limit, offset), int64(len(out)), nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
