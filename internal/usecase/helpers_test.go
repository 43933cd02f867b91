package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	adapterrepo "marketdz/internal/adapter/repository"
	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/domain/service"
	"marketdz/internal/infrastructure/auth"
	"marketdz/internal/infrastructure/treedb"
)

// fakeStorage keeps uploaded URLs in memory.
type fakeStorage struct {
	uploads int
	deleted []string
}

func (s *fakeStorage) UploadImage(ctx context.Context, file io.Reader, contentType string) (string, error) {
	s.uploads++
	return fmt.Sprintf("https://img.example.com/%d", s.uploads), nil
}

func (s *fakeStorage) DeleteImage(ctx context.Context, url string) error {
	s.deleted = append(s.deleted, url)
	return nil
}

// fakeEmail records sent tokens by recipient.
type fakeEmail struct {
	sent map[string]string
}

func (s *fakeEmail) SendVerificationEmail(ctx context.Context, to string, token string) error {
	if s.sent == nil {
		s.sent = map[string]string{}
	}
	s.sent[to] = token
	return nil
}

// fakeGeocoder returns a fixed display name for every lookup.
type fakeGeocoder struct {
	name string
}

func (g *fakeGeocoder) Geocode(ctx context.Context, address string) (*entity.Location, error) {
	return &entity.Location{Latitude: 36.75, Longitude: 3.06}, nil
}

func (g *fakeGeocoder) ReverseGeocode(ctx context.Context, location entity.Location) (string, error) {
	return g.name, nil
}

type testEnv struct {
	db       *treedb.Client
	users    repository.UserRepository
	items    repository.ItemRepository
	photos   repository.PhotoRepository
	messages repository.MessageRepository
	tokens   repository.TokenRepository
	reports  repository.ReportRepository
	blocks   repository.BlockRepository
	hasher   service.PasswordHasher
	jwt      service.TokenService
	storage  *fakeStorage
	email    *fakeEmail
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := treedb.NewClient(treedb.NewMemoryTransport())
	users := adapterrepo.NewRTDBUserRepository(db)
	items := adapterrepo.NewRTDBItemRepository(db, users)

	jwt, err := auth.NewJWTService("test-secret", 3600)
	assert.NoError(t, err)

	return &testEnv{
		db:       db,
		users:    users,
		items:    items,
		photos:   adapterrepo.NewRTDBPhotoRepository(db),
		messages: adapterrepo.NewRTDBMessageRepository(db),
		tokens:   adapterrepo.NewRTDBTokenRepository(db, users),
		reports:  adapterrepo.NewRTDBReportRepository(db),
		blocks:   adapterrepo.NewRTDBBlockRepository(db),
		hasher:   auth.NewBcryptHasher(),
		jwt:      jwt,
		storage:  &fakeStorage{},
		email:    &fakeEmail{},
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *entity.User {
	t.Helper()
	user := &entity.User{Email: email, DisplayName: "User " + email}
	assert.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) createItem(t *testing.T, owner *entity.User, title string) *entity.Item {
	t.Helper()
	item := &entity.Item{Title: title, Category: entity.CategoryForSale, PostedByUserID: owner.ID}
	assert.NoError(t, e.items.Create(context.Background(), item))
	return item
}
