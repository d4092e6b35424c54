package users_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	authtypes "github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/routers"
	"github.com/loopline/loopline-services-gateway/services"
	"github.com/loopline/loopline-services-gateway/store"
	"github.com/loopline/loopline-services-gateway/test"
	"github.com/loopline/loopline-services-gateway/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "test-secret"

type stubUserService struct {
	user       *authtypes.User
	updated    authtypes.ProfileUpdate
	updateErr  error
	friends    []*store.Friend
	friendAdds []string
}

func (s *stubUserService) Get(ctx context.Context, email string) (*authtypes.User, error) {
	return s.user, nil
}

func (s *stubUserService) UpdateProfile(ctx context.Context, email string, update authtypes.ProfileUpdate) (*authtypes.User, error) {
	if update.Username != "" && s.updateErr != nil {
		return nil, s.updateErr
	}
	s.updated = update
	return s.user, nil
}

func (s *stubUserService) Friends(ctx context.Context, email string) ([]*store.Friend, error) {
	return s.friends, nil
}

func (s *stubUserService) AddFriend(ctx context.Context, email, friendEmail string) error {
	s.friendAdds = append(s.friendAdds, friendEmail)
	return nil
}

func newUsersRouter(svc services.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routers.RegisterUserRoutes(users.NewUsersHandler(svc), jwtSecret, r)
	return r
}

func authCookie(t *testing.T) *http.Cookie {
	t.Helper()
	svc := services.NewAuthServiceImpl(nil, nil, jwtSecret)
	token, err := svc.GenerateToken(&authtypes.User{Email: "ada@example.com"})
	require.NoError(t, err)
	return &http.Cookie{Name: "authToken", Value: token}
}

func TestMe(t *testing.T) {
	svc := &stubUserService{user: &authtypes.User{Email: "ada@example.com", Username: "ada"}}
	r := newUsersRouter(svc)

	w := test.PerformRequest(r, t, "GET", "/api/user", nil, nil, authCookie(t))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada")
}

func TestMe_RequiresAuth(t *testing.T) {
	r := newUsersRouter(&stubUserService{})

	w := test.PerformRequest(r, t, "GET", "/api/user", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	svc := &stubUserService{user: &authtypes.User{Email: "ada@example.com"}}
	r := newUsersRouter(svc)

	body, _ := json.Marshal(authtypes.ProfileUpdate{Bio: "hello", Phone: "+15550100"})
	w := test.PerformRequest(r, t, "POST", "/api/profile/update", bytes.NewReader(body),
		[]string{"Content-Type: application/json"}, authCookie(t))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", svc.updated.Bio)
}

func TestUpdateProfile_RejectsBadPhone(t *testing.T) {
	r := newUsersRouter(&stubUserService{user: &authtypes.User{}})

	body, _ := json.Marshal(map[string]any{"phone": "not-a-phone"})
	w := test.PerformRequest(r, t, "POST", "/api/profile/update", bytes.NewReader(body),
		[]string{"Content-Type: application/json"}, authCookie(t))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfile_RejectsInvalidUsername(t *testing.T) {
	svc := &stubUserService{user: &authtypes.User{}, updateErr: services.ErrInvalidUsername}
	r := newUsersRouter(svc)

	body, _ := json.Marshal(map[string]any{"username": "Bad Name"})
	w := test.PerformRequest(r, t, "POST", "/api/profile/update", bytes.NewReader(body),
		[]string{"Content-Type: application/json"}, authCookie(t))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddFriend(t *testing.T) {
	svc := &stubUserService{user: &authtypes.User{}}
	r := newUsersRouter(svc)

	body, _ := json.Marshal(map[string]string{"email": "friend@example.com"})
	w := test.PerformRequest(r, t, "POST", "/api/friends", bytes.NewReader(body),
		[]string{"Content-Type: application/json"}, authCookie(t))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"friend@example.com"}, svc.friendAdds)
}

func TestFriends(t *testing.T) {
	svc := &stubUserService{friends: []*store.Friend{{UserEmail: "ada@example.com", FriendEmail: "friend@example.com"}}}
	r := newUsersRouter(svc)

	w := test.PerformRequest(r, t, "GET", "/api/friends", nil, nil, authCookie(t))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "friend@example.com")
}
