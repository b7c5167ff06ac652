package festival_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/apiclient/client"
	"github.com/viant/apiclient/festival"
	"github.com/viant/apiclient/festival/mock"
)

func newService(t *testing.T, opts ...mock.Option) (*festival.Service, *mock.Service) {
	api, err := mock.NewService(opts...)
	require.NoError(t, err)
	server := httptest.NewServer(&mock.Handler{Service: api})
	t.Cleanup(server.Close)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cli, err := client.New(client.WithOrigin(server.URL), client.WithLogger(logger))
	require.NoError(t, err)
	return festival.New(cli), api
}

func TestAuth(t *testing.T) {
	ctx := context.Background()
	svc, api := newService(t, mock.WithUser("alice", "secret"))

	_, err := svc.Auth.Me(ctx)
	assert.Equal(t, http.StatusUnauthorized, client.StatusCode(err))
	assert.False(t, svc.Auth.LoggedIn(ctx))

	_, err = svc.Auth.Login(ctx, "alice", "wrong")
	reqErr, ok := client.AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"error": "Invalid credentials"}, reqErr.Payload)
	assert.Equal(t, "", svc.Client().Token(ctx))

	response, err := svc.Auth.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_USER"}, response.Roles)
	assert.Equal(t, response.BearerToken(), svc.Client().Token(ctx))
	assert.True(t, svc.Auth.LoggedIn(ctx))
	_, body := api.Last()
	assert.JSONEq(t, `{"username":"alice","password":"secret"}`, body)

	claims, err := svc.Client().Tokens().Claims(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "festival-mock", claims.Issuer)

	me, err := svc.Auth.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)
	assert.True(t, me.HasRole("user"))
	assert.False(t, me.HasRole("ROLE_ADMIN"))

	require.NoError(t, svc.Auth.Logout(ctx))
	assert.False(t, svc.Auth.LoggedIn(ctx))
	_, err = svc.Auth.Me(ctx)
	assert.Equal(t, http.StatusUnauthorized, client.StatusCode(err))
}

func TestAuth_Register(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, mock.WithUser("alice", "secret"))

	var testCases = []struct {
		description string
		request     *festival.RegisterRequest
		expectErr   bool
		expectCode  int
	}{
		{description: "missing password", request: &festival.RegisterRequest{Username: "bob"}, expectErr: true},
		{description: "taken username", request: &festival.RegisterRequest{Username: "alice", Password: "x"}, expectErr: true, expectCode: http.StatusConflict},
		{description: "created", request: &festival.RegisterRequest{Username: "bob", Password: "x", Role: "artist"}},
	}
	for _, testCase := range testCases {
		response, err := svc.Auth.Register(ctx, testCase.request)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			assert.Equal(t, testCase.expectCode, client.StatusCode(err), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.NotEmpty(t, response.BearerToken(), testCase.description)
		assert.Equal(t, []string{"ROLE_ARTIST"}, response.Roles, testCase.description)
	}
	me, err := svc.Auth.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob@local", me.Email)
}

func TestAuth_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, mock.WithUser("alice", "secret"), mock.WithTokenTTL(-time.Hour))
	_, err := svc.Auth.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.False(t, svc.Auth.LoggedIn(ctx))
	_, err = svc.Auth.Me(ctx)
	assert.Equal(t, http.StatusUnauthorized, client.StatusCode(err))
}

func TestAuth_NoToken(t *testing.T) {
	ctx := context.Background()
	svc, api := newService(t)
	api.LoginHandler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"roles":[]}`))
	}
	_, err := svc.Auth.Login(ctx, "alice", "secret")
	assert.ErrorIs(t, err, festival.ErrNoToken)
}

func TestFestivals(t *testing.T) {
	ctx := context.Background()
	svc, api := newService(t, mock.WithUser("alice", "secret"))

	page, err := svc.Festivals.List(ctx, "", 0, 0)
	require.NoError(t, err)
	assert.True(t, page.Empty)
	query, _ := api.Last()
	assert.Equal(t, "page=0", query)

	missing, err := svc.Festivals.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, missing)

	request := &festival.CreateFestivalRequest{
		Name:      "Rockwave",
		Venue:     "Athens",
		StartDate: festival.NewDate(2025, time.July, 1),
		EndDate:   festival.NewDate(2025, time.July, 3),
	}
	_, err = svc.Festivals.Create(ctx, request)
	assert.Equal(t, http.StatusUnauthorized, client.StatusCode(err))

	_, err = svc.Auth.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	created, err := svc.Festivals.Create(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, festival.StateScheduling, created.State)
	assert.Equal(t, "2025-07-01", created.StartDate.String())
	_, body := api.Last()
	assert.Contains(t, body, `"startDate":"2025-07-01"`)

	_, err = svc.Festivals.Create(ctx, request)
	assert.Equal(t, http.StatusConflict, client.StatusCode(err))

	page, err = svc.Festivals.List(ctx, "rock & roll", 2, 5)
	require.NoError(t, err)
	query, _ = api.Last()
	assert.Equal(t, "q=rock+%26+roll&page=2&size=5", query)
	assert.True(t, page.Empty)

	page, err = svc.Festivals.List(ctx, "ROCK", 0, 5)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Rockwave", page.Content[0].Name)
	assert.Equal(t, int64(1), page.TotalElements)

	found, err := svc.Festivals.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Athens", found.Venue)
}

func TestFestivals_ServerFailure(t *testing.T) {
	svc, api := newService(t)
	api.FestivalsHandler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Failed to fetch festivals."))
	}
	_, err := svc.Festivals.List(context.Background(), "", 0, 10)
	reqErr, ok := client.AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, "Failed to fetch festivals.", reqErr.Payload)
}

func TestCreateFestivalRequest_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		request     festival.CreateFestivalRequest
		expect      error
	}{
		{
			description: "valid single day",
			request:     festival.CreateFestivalRequest{Name: "a", Venue: "b", StartDate: festival.NewDate(2025, 1, 1), EndDate: festival.NewDate(2025, 1, 1)},
		},
		{
			description: "blank name",
			request:     festival.CreateFestivalRequest{Name: " ", Venue: "b", StartDate: festival.NewDate(2025, 1, 1), EndDate: festival.NewDate(2025, 1, 1)},
			expect:      festival.ErrMissingField,
		},
		{
			description: "missing dates",
			request:     festival.CreateFestivalRequest{Name: "a", Venue: "b"},
			expect:      festival.ErrMissingField,
		},
		{
			description: "start after end",
			request:     festival.CreateFestivalRequest{Name: "a", Venue: "b", StartDate: festival.NewDate(2025, 1, 2), EndDate: festival.NewDate(2025, 1, 1)},
			expect:      festival.ErrInvalidDates,
		},
	}
	for _, testCase := range testCases {
		err := testCase.request.Validate()
		if testCase.expect == nil {
			assert.NoError(t, err, testCase.description)
			continue
		}
		assert.ErrorIs(t, err, testCase.expect, testCase.description)
	}
}

func TestFestivals_CreateInvalid(t *testing.T) {
	svc, api := newService(t)
	_, err := svc.Festivals.Create(context.Background(), &festival.CreateFestivalRequest{Name: "a"})
	assert.ErrorIs(t, err, festival.ErrMissingField)
	_, body := api.Last()
	assert.Equal(t, "", body, "invalid requests are not sent")
}

func TestPerformances_Create(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t,
		mock.WithUser("alice", "secret"),
		mock.WithFestival(&festival.Festival{Name: "Rockwave", Venue: "Athens"}))

	_, err := svc.Performances.Create(ctx, 1, &festival.Performance{Name: "Set"})
	assert.ErrorIs(t, err, festival.ErrMissingField)

	_, err = svc.Auth.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	created, err := svc.Performances.Create(ctx, 1, &festival.Performance{Name: "Set", Genre: "rock", DurationSeconds: 5400})
	require.NoError(t, err)
	assert.Equal(t, int64(101), created.ID)
	assert.Equal(t, festival.PerformanceCreated, created.Status)
	assert.Equal(t, 90*time.Minute, created.Duration())
	require.NotNil(t, created.MainArtist)
	assert.Equal(t, "alice", created.MainArtist.Username)

	_, err = svc.Performances.Create(ctx, 9, &festival.Performance{Name: "Set", Genre: "rock"})
	assert.Equal(t, http.StatusNotFound, client.StatusCode(err))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, mock.WithUser("alice", "secret"), mock.WithUser("bob", "secret"))

	users, err := svc.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	user, err := svc.Users.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@local", user.Email)

	user, err = svc.Users.Get(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)

	exists, err := svc.Users.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = svc.Users.UsernameExists(ctx, "carol")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = svc.Users.EmailExists(ctx, "bob@local")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDate_JSON(t *testing.T) {
	var festivalValue festival.Festival
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","startDate":"2025-07-01","endDate":null}`), &festivalValue))
	assert.Equal(t, "2025-07-01", festivalValue.StartDate.String())
	assert.True(t, festivalValue.EndDate.IsZero())

	_, err := festival.ParseDate("07/01/2025")
	assert.Error(t, err)
}
