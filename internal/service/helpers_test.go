package service

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/repository"
	"github.com/sefazor/galbi-backend/pkg/artgen"
	"github.com/sefazor/galbi-backend/pkg/database"
	"github.com/sefazor/galbi-backend/pkg/email"
	jwtPkg "github.com/sefazor/galbi-backend/pkg/jwt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeMailer struct {
	mu       sync.Mutex
	welcomes []string
	receipts []email.Receipt
	done     chan struct{}
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{done: make(chan struct{}, 16)}
}

func (m *fakeMailer) SendWelcomeEmail(to, username string, free int) error {
	m.mu.Lock()
	m.welcomes = append(m.welcomes, to)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *fakeMailer) SendPremiumReceipt(to, username string, r email.Receipt) error {
	m.mu.Lock()
	m.receipts = append(m.receipts, r)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *fakeMailer) wait(t *testing.T) {
	t.Helper()
	select {
	case <-m.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for email")
	}
}

// memFiles is an in-memory FileStorage.
type memFiles struct {
	mu      sync.Mutex
	objects map[string][]byte
	failOn  string
}

func newMemFiles() *memFiles {
	return &memFiles{objects: map[string][]byte{}}
}

func (f *memFiles) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != "" && len(f.objects) >= 1 {
		return "", errors.New(f.failOn)
	}
	f.objects[key] = append([]byte(nil), data...)
	return "/files/" + key, nil
}

func (f *memFiles) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *memFiles) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

type testEnv struct {
	store  *repository.Store
	tokens *jwtPkg.Manager
	mailer *fakeMailer
	auth   *AuthService
	gen    *GenerationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	store := repository.NewStore(db)
	tokens := jwtPkg.NewManager("test-secret", "galbi", time.Hour)
	mailer := newFakeMailer()
	logger := zap.NewNop()

	return &testEnv{
		store:  store,
		tokens: tokens,
		mailer: mailer,
		auth:   NewAuthService(store, tokens, mailer, AuthConfig{FreeGenerations: 2, PasswordCost: bcrypt.MinCost}, logger),
		gen:    NewGenerationService(store, artgen.New(rand.NewSource(1)), nil, logger),
	}
}

func (e *testEnv) register(t *testing.T, username string) *models.UserResponse {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), models.RegisterRequest{
		Username: username,
		Password: "secret123",
		Email:    username + "@example.com",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	e.mailer.wait(t)
	return &resp.User
}

func fileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write(content)
	w.Close()

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File[field][0]
}

// pngBytes is a 1x1 transparent PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}
