package rest

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sportmeet-api/internal/application/ports"
	domain "sportmeet-api/internal/domain/user"
	jwtSvc "sportmeet-api/internal/infrastructure/jwt"
	"sportmeet-api/internal/interface/api/rest/dto/user"
)

type FakeUserService struct {
	RegisterFunc       func(ctx context.Context, u domain.User, password string) (*domain.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	FindPageFunc       func(ctx context.Context, page, size int) (domain.Users, int64, error)
	UpdateFunc         func(ctx context.Context, username string, up domain.Update) (*domain.User, error)
	DeleteSelfFunc     func(ctx context.Context, username string) error
}

func (f *FakeUserService) Register(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if f.RegisterFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RegisterFunc(ctx, u, password)
}
func (f *FakeUserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.FindByUsernameFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByUsernameFunc(ctx, username)
}
func (f *FakeUserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.FindByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByEmailFunc(ctx, email)
}
func (f *FakeUserService) FindPage(ctx context.Context, page, size int) (domain.Users, int64, error) {
	if f.FindPageFunc == nil {
		return nil, 0, errors.New("not used")
	}
	return f.FindPageFunc(ctx, page, size)
}
func (f *FakeUserService) Update(ctx context.Context, username string, up domain.Update) (*domain.User, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, username, up)
}
func (f *FakeUserService) DeleteSelf(ctx context.Context, username string) error {
	if f.DeleteSelfFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteSelfFunc(ctx, username)
}

func newTestJWT(t *testing.T) *jwtSvc.Service {
	t.Helper()
	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	j, err := jwtSvc.New(secret, time.Hour)
	require.NoError(t, err)
	return j
}

func setupUserRouter(t *testing.T, us ports.UserService) (*gin.Engine, *jwtSvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	j := newTestJWT(t)
	NewUserController(r, us, zap.NewNop(), j)

	return r, j
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func validRegisterBody() user.Request {
	return user.Request{
		Name:             "Joana Silva",
		Genero:           "FEMININO",
		Username:         "joana.silva",
		Email:            "joana@example.com",
		DataNascimento:   "1995-04-12",
		Password:         "supersecret",
		Phone:            "11999990000",
		Cep:              "01310-100",
		Uf:               "SP",
		Street:           "Av. Paulista",
		ModalidadesNomes: []string{"FUTEBOL"},
	}
}

func someDomainUser() *domain.User {
	return &domain.User{
		UUID:           uuid.New(),
		Name:           "Joana Silva",
		Genero:         "FEMININO",
		Username:       "joana.silva",
		Email:          "joana@example.com",
		DataNascimento: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		Phone:          "11999990000",
		Cep:            "01310100",
		Uf:             "SP",
		Street:         "Av. Paulista",
		Modalidades:    []string{"FUTEBOL"},
	}
}

// bearerFor issues a token for u and wires the auth middleware lookup so the
// request is treated as coming from that user.
func bearerFor(t *testing.T, j *jwtSvc.Service, u *domain.User) map[string]string {
	t.Helper()
	token, err := j.GenerateToken(u.Email)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestUserController_RegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		mockUS     func() ports.UserService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "400 invalid json",
			body:       "{not json",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "400 validation failure",
			body: func() user.Request {
				r := validRegisterBody()
				r.Password = "short"
				return r
			}(),
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "409 email taken",
			body: validRegisterBody(),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					RegisterFunc: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
						return nil, domain.ErrEmailTaken
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantCode:   "EMAIL_TAKEN",
		},
		{
			name: "409 username taken",
			body: validRegisterBody(),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					RegisterFunc: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
						return nil, domain.ErrUsernameTaken
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantCode:   "USERNAME_TAKEN",
		},
		{
			name: "201 created",
			body: validRegisterBody(),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					RegisterFunc: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
						assert.Equal(t, "supersecret", password)
						return someDomainUser(), nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupUserRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodPost, RouteUserRegister, tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantCode != "" {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp["code"])
			}
			if tt.wantStatus == http.StatusCreated {
				assert.Contains(t, rr.Header().Get("Location"), "/users/joana.silva")
				var resp user.User
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "joana.silva", resp.Username)
			}
		})
	}
}

func TestUserController_GetUsersHandler(t *testing.T) {
	t.Run("500 when service fails", func(t *testing.T) {
		r, _ := setupUserRouter(t, &FakeUserService{
			FindPageFunc: func(ctx context.Context, page, size int) (domain.Users, int64, error) {
				return nil, 0, errors.New("db error")
			},
		})
		rr := doReq(t, r, http.MethodGet, RouteUsers, nil, nil)
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("400 bad page", func(t *testing.T) {
		r, _ := setupUserRouter(t, &FakeUserService{})
		rr := doReq(t, r, http.MethodGet, RouteUsers+"?page=x", nil, nil)
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("200 page payload", func(t *testing.T) {
		r, _ := setupUserRouter(t, &FakeUserService{
			FindPageFunc: func(ctx context.Context, page, size int) (domain.Users, int64, error) {
				assert.Equal(t, 1, page)
				assert.Equal(t, 20, size)
				return domain.Users{someDomainUser()}, 21, nil
			},
		})
		rr := doReq(t, r, http.MethodGet, RouteUsers+"?page=1", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp user.PageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Content, 1)
		assert.Equal(t, 1, resp.CurrentPage)
		assert.Equal(t, int64(21), resp.TotalElements)
		assert.Equal(t, 2, resp.TotalPages)
	})
}

func TestUserController_GetUserHandler(t *testing.T) {
	t.Run("404 not found", func(t *testing.T) {
		r, _ := setupUserRouter(t, &FakeUserService{
			FindByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
				return nil, nil
			},
		})
		rr := doReq(t, r, http.MethodGet, RouteUsers+"/ghost", nil, nil)
		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("200 found", func(t *testing.T) {
		r, _ := setupUserRouter(t, &FakeUserService{
			FindByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
				assert.Equal(t, "joana.silva", username)
				return someDomainUser(), nil
			},
		})
		rr := doReq(t, r, http.MethodGet, RouteUsers+"/joana.silva", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestUserController_UpdateHandler(t *testing.T) {
	me := someDomainUser()

	t.Run("401 without token", func(t *testing.T) {
		r, _ := setupUserRouter(t, &FakeUserService{})
		rr := doReq(t, r, http.MethodPut, RouteUsers, user.UpdateRequest{}, nil)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("200 updates own profile", func(t *testing.T) {
		newPhone := "11888880000"
		us := &FakeUserService{
			FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return me, nil
			},
			UpdateFunc: func(ctx context.Context, username string, up domain.Update) (*domain.User, error) {
				assert.Equal(t, me.Username, username)
				require.NotNil(t, up.Phone)
				assert.Equal(t, newPhone, *up.Phone)
				return me, nil
			},
		}
		r, j := setupUserRouter(t, us)

		rr := doReq(t, r, http.MethodPut, RouteUsers, user.UpdateRequest{Phone: &newPhone}, bearerFor(t, j, me))
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("409 when the new email is taken", func(t *testing.T) {
		newEmail := "taken@example.com"
		us := &FakeUserService{
			FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return me, nil
			},
			UpdateFunc: func(ctx context.Context, username string, up domain.Update) (*domain.User, error) {
				return nil, domain.ErrEmailTaken
			},
		}
		r, j := setupUserRouter(t, us)

		rr := doReq(t, r, http.MethodPut, RouteUsers, user.UpdateRequest{Email: &newEmail}, bearerFor(t, j, me))
		require.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "EMAIL_TAKEN")
	})

	t.Run("409 when the new username is taken", func(t *testing.T) {
		newUsername := "pedro"
		us := &FakeUserService{
			FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return me, nil
			},
			UpdateFunc: func(ctx context.Context, username string, up domain.Update) (*domain.User, error) {
				return nil, domain.ErrUsernameTaken
			},
		}
		r, j := setupUserRouter(t, us)

		rr := doReq(t, r, http.MethodPut, RouteUsers, user.UpdateRequest{Username: &newUsername}, bearerFor(t, j, me))
		require.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "USERNAME_TAKEN")
	})
}

func TestUserController_DeleteMeHandler(t *testing.T) {
	me := someDomainUser()

	t.Run("401 without token", func(t *testing.T) {
		r, _ := setupUserRouter(t, &FakeUserService{})
		rr := doReq(t, r, http.MethodDelete, RouteUsers+"/me", nil, nil)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("204 deletes own account", func(t *testing.T) {
		us := &FakeUserService{
			FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return me, nil
			},
			DeleteSelfFunc: func(ctx context.Context, username string) error {
				assert.Equal(t, me.Username, username)
				return nil
			},
		}
		r, j := setupUserRouter(t, us)

		rr := doReq(t, r, http.MethodDelete, RouteUsers+"/me", nil, bearerFor(t, j, me))
		require.Equal(t, http.StatusNoContent, rr.Code)
	})
}
