package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"postboard/config"
	apimiddleware "postboard/internal/delivery/api/middleware"
	"postboard/internal/delivery/api/router"
	"postboard/internal/delivery/api/router/handler"
	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/errors"
	mockUsecase "postboard/internal/mocks/usecase"
	"postboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type testServer struct {
	echo       *echo.Echo
	authUC     *mockUsecase.MockAuthUsecase
	postUC     *mockUsecase.MockPostUsecase
	reactionUC *mockUsecase.MockReactionUsecase
	user       *entity.User
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Token: &config.TokenConfig{Algorithm: "HS256", AccessTTL: 30 * time.Minute},
		Auth:  &config.AuthConfig{BcryptCost: 4, LoginRateLimit: 100, LoginBurst: 100},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := &testServer{
		authUC:     mockUsecase.NewMockAuthUsecase(t),
		postUC:     mockUsecase.NewMockPostUsecase(t),
		reactionUC: mockUsecase.NewMockReactionUsecase(t),
		user: &entity.User{
			ID:       uuid.New(),
			Username: "alice",
			Email:    "a@x.com",
			Active:   true,
		},
	}

	ts.echo = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: ts.authUC, Logger: logger}),
		PostHandler:     handler.NewPostHandler(handler.PostHandlerParams{PostUC: ts.postUC, Logger: logger}),
		ReactionHandler: handler.NewReactionHandler(handler.ReactionHandlerParams{ReactionUC: ts.reactionUC, Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(ts.authUC),
		Config:          cfg,
	})

	return ts
}

// signedIn makes validToken resolve to ts.user.
func (ts *testServer) signedIn() {
	ts.authUC.EXPECT().Authenticate(mock.Anything, validToken).Return(ts.user, nil)
}

func (ts *testServer) do(method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func bearer() http.Header {
	return http.Header{echo.HeaderAuthorization: []string{"Bearer " + validToken}}
}

type envelope struct {
	Data  map[string]any `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealth_EchoesRequestID(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec := ts.do(http.MethodGet, "/health", "", http.Header{deliverycontext.HeaderXRequestID: []string{"req-42"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	env := decode(t, rec)
	assert.Equal(t, "ok", env.Data["status"])
	assert.Equal(t, "req-42", env.Meta.RequestID)
}

func TestHealth_ReplacesUnsafeRequestID(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec := ts.do(http.MethodGet, "/health", "", http.Header{deliverycontext.HeaderXRequestID: []string{"bad id"}})

	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEqual(t, "bad id", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestAuthInfo(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec := ts.do(http.MethodGet, "/auth", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec).Data["authenticated"])
}

func TestAuthGate_MissingOrMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header http.Header
	}{
		{name: "missing", header: nil},
		{name: "basic scheme", header: http.Header{echo.HeaderAuthorization: []string{"Basic abc"}}},
		{name: "empty bearer", header: http.Header{echo.HeaderAuthorization: []string{"Bearer   "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, testConfig())

			rec := ts.do(http.MethodGet, "/posts", "", tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
		})
	}
}

func TestAuthGate_RejectedToken(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.authUC.EXPECT().Authenticate(mock.Anything, "forged").
		Return(nil, errors.Wrap(domainerrors.ErrUnauthorized, "token rejected"))

	rec := ts.do(http.MethodGet, "/posts/mine", "", http.Header{echo.HeaderAuthorization: []string{"bearer forged"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestRegister_Created(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret"}).
		Return(&usecase.RegisterOutput{User: ts.user}, nil)

	rec := ts.do(http.MethodPost, "/auth/register", `{"username":"alice","email":"a@x.com","password":"secret"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "user registered", env.Data["message"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_PassesActivity(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.authUC.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Active != nil && !*in.Active
		})).
		Return(&usecase.RegisterOutput{User: ts.user}, nil)

	rec := ts.do(http.MethodPost, "/auth/register",
		`{"username":"alice","email":"a@x.com","password":"secret","activity":false}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegister_ValidationFailure(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec := ts.do(http.MethodPost, "/auth/register", `{"username":"  ","email":"not-an-email","password":"secret"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, rec.Body.String(), `"field":"username"`)
	assert.Contains(t, rec.Body.String(), `"field":"email"`)
}

func TestRegister_PasswordLimitIsInBytes(t *testing.T) {
	ts := newTestServer(t, testConfig())

	body, err := json.Marshal(map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": strings.Repeat("é", 72),
	})
	require.NoError(t, err)
	rec := ts.do(http.MethodPost, "/auth/register", string(body), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	assert.Contains(t, rec.Body.String(), `"rule":"maxbytes"`)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.authUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered"))

	rec := ts.do(http.MethodPost, "/auth/register", `{"username":"alice","email":"b@x.com","password":"secret"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USERNAME_TAKEN", decode(t, rec).Error.Code)
}

func TestLogin_JSONAndForm(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "secret"}).
		Return(&usecase.TokenOutput{AccessToken: "tok", TokenType: "Bearer", ExpiresIn: 30 * time.Minute}, nil).
		Twice()

	rec := ts.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"secret"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "tok", env.Data["access_token"])
	assert.Equal(t, "Bearer", env.Data["token_type"])
	assert.EqualValues(t, 1800, env.Data["expires_in"])

	form := url.Values{"username": {"alice"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login-form", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	formRec := httptest.NewRecorder()
	ts.echo.ServeHTTP(formRec, req)

	assert.Equal(t, http.StatusOK, formRec.Code)
	assert.Equal(t, "tok", decode(t, formRec).Data["access_token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	rec := ts.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
}

func TestLogin_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.LoginRateLimit = 0.001
	cfg.Auth.LoginBurst = 2
	ts := newTestServer(t, cfg)
	ts.authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).
		Times(2)

	for range 2 {
		rec := ts.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := ts.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode(t, rec).Error.Code)
}

func TestRefresh(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.signedIn()
	ts.authUC.EXPECT().Refresh(mock.Anything, ts.user).
		Return(&usecase.TokenOutput{AccessToken: "fresh", TokenType: "Bearer", ExpiresIn: time.Minute}, nil)

	rec := ts.do(http.MethodGet, "/auth/refresh", "", bearer())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fresh", decode(t, rec).Data["access_token"])
}

func TestPosts_CreateUsesAuthenticatedOwner(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.signedIn()
	post := &entity.Post{ID: uuid.New(), UserID: ts.user.ID, Username: ts.user.Username, Text: "hello"}
	ts.postUC.EXPECT().CreatePost(mock.Anything, ts.user, &usecase.CreatePostInput{Text: "hello"}).Return(post, nil)

	rec := ts.do(http.MethodPost, "/posts", `{"text":"hello","user_id":"someone-else"}`, bearer())

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "post published", env.Data["message"])
	assert.Equal(t, ts.user.ID.String(), env.Data["post"].(map[string]any)["user_id"])
}

func TestPosts_CreateRequiresToken(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec := ts.do(http.MethodPost, "/posts", `{"text":"hello"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
}

func TestPosts_Info(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec := ts.do(http.MethodGet, "/posts/info", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	ts.signedIn()
	rec = ts.do(http.MethodGet, "/posts/info", "", bearer())

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "posts service is reachable", env.Data["message"])
	assert.Equal(t, "alice", env.Data["username"])
}

func TestPosts_CreateRejectsBlankAndLongText(t *testing.T) {
	for name, text := range map[string]string{
		"blank": "   ",
		"long":  strings.Repeat("a", 2001),
	} {
		t.Run(name, func(t *testing.T) {
			ts := newTestServer(t, testConfig())
			ts.signedIn()

			body, err := json.Marshal(map[string]string{"text": text})
			require.NoError(t, err)
			rec := ts.do(http.MethodPost, "/posts", string(body), bearer())

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
		})
	}
}

func TestPosts_List(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.signedIn()
	ts.postUC.EXPECT().ListPosts(mock.Anything).Return([]*entity.Post{
		{ID: uuid.New(), Text: "b"},
		{ID: uuid.New(), Text: "a"},
	}, nil)

	rec := ts.do(http.MethodGet, "/posts", "", bearer())

	assert.Equal(t, http.StatusOK, rec.Code)
	posts := decode(t, rec).Data["posts"].([]any)
	require.Len(t, posts, 2)
	assert.Equal(t, "b", posts[0].(map[string]any)["text"])
}

func TestPosts_MineEmpty(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.signedIn()
	ts.postUC.EXPECT().ListUserPosts(mock.Anything, ts.user).Return(nil, nil)

	rec := ts.do(http.MethodGet, "/posts/mine", "", bearer())

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "user has not posted anything", env.Data["message"])
	assert.Empty(t, env.Data["posts"])
}

func TestPosts_EditForeignPostIsForbidden(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.signedIn()
	postID := uuid.New()
	ts.postUC.EXPECT().EditPost(mock.Anything, ts.user, &usecase.EditPostInput{PostID: postID, Text: "mine now"}).
		Return(nil, errors.Wrap(domainerrors.ErrPostOwnershipViolation, "post belongs to another user"))

	rec := ts.do(http.MethodPut, "/posts/"+postID.String(), `{"text":"mine now"}`, bearer())

	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "POST_OWNERSHIP_VIOLATION", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestPosts_DeleteMissingPost(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.signedIn()
	postID := uuid.New()
	ts.postUC.EXPECT().DeletePost(mock.Anything, ts.user, postID).
		Return(errors.Wrap(domainerrors.ErrPostNotFound, "failed to load post"))

	rec := ts.do(http.MethodDelete, "/posts/"+postID.String(), "", bearer())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "POST_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestPosts_InvalidID(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.signedIn()

	rec := ts.do(http.MethodDelete, "/posts/42", "", bearer())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "invalid post id", env.Error.Details)
}

func TestReactions_Like(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.signedIn()
	postID := uuid.New()
	ts.reactionUC.EXPECT().Like(mock.Anything, ts.user, postID).Return(&usecase.ReactionOutput{
		Message:  "post liked",
		State:    entity.StateLiked,
		Likes:    1,
		Dislikes: 0,
	}, nil)

	rec := ts.do(http.MethodPost, "/posts/"+postID.String()+"/like", "", bearer())

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "post liked", env.Data["message"])
	assert.Equal(t, "liked", env.Data["state"])
	assert.EqualValues(t, 1, env.Data["likes"])
}

func TestReactions_DislikeConflict(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.signedIn()
	postID := uuid.New()
	ts.reactionUC.EXPECT().Dislike(mock.Anything, ts.user, postID).
		Return(nil, errors.Wrap(domainerrors.ErrReactionConflict, "state changed concurrently"))

	rec := ts.do(http.MethodPost, "/posts/"+postID.String()+"/dislike", "", bearer())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "REACTION_CONFLICT", decode(t, rec).Error.Code)
}

func TestUnexpectedErrorIsHidden(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.signedIn()
	ts.postUC.EXPECT().ListPosts(mock.Anything).Return(nil, errors.New("pq: connection refused on 10.0.0.5"))

	rec := ts.do(http.MethodGet, "/posts", "", bearer())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec := ts.do(http.MethodGet, "/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decode(t, rec).Error.Code)
}
