package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-api/cache"
	"portfolio-api/config"
	"portfolio-api/models"
	"portfolio-api/testutil"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RouterTestSuite struct {
	suite.Suite
	db     *gorm.DB
	cfg    *config.Config
	router *gin.Engine
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *RouterTestSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.cfg = testutil.TestConfig()
	s.router = s.newRouter(s.cfg)
}

func (s *RouterTestSuite) newRouter(cfg *config.Config) *gin.Engine {
	log, _ := test.NewNullLogger()
	return New(cfg, s.db, log, cache.NewMemoryCache(time.Hour))
}

func (s *RouterTestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) decode(w *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *RouterTestSuite) register(name, email string) map[string]interface{} {
	w := s.do(http.MethodPost, "/api/auth/register", "", gin.H{"name": name, "email": email, "password": "secret123"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		User map[string]interface{} `json:"user"`
	}
	s.decode(w, &resp)
	return resp.User
}

func (s *RouterTestSuite) login(email string) string {
	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": "secret123"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp models.AuthResponse
	s.decode(w, &resp)
	s.Require().NotEmpty(resp.Token)
	return resp.Token
}

func (s *RouterTestSuite) adminToken() string {
	s.register("Owner", "owner@example.com")
	return s.login("owner@example.com")
}

func (s *RouterTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"healthy"}`, w.Body.String())
}

func (s *RouterTestSuite) TestRegisterAssignsRoles() {
	owner := s.register("Owner", "owner@example.com")
	visitor := s.register("Visitor", "visitor@example.com")

	s.Equal("admin", owner["role"])
	s.Equal("user", visitor["role"])
	s.Equal(owner["id"], owner["_id"])
	s.NotContains(owner, "password")

	w := s.do(http.MethodPost, "/api/auth/register", "", gin.H{"name": "Dup", "email": "owner@example.com", "password": "secret123"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "email already registered")
}

func (s *RouterTestSuite) TestLoginSetsCookieAndVerify() {
	s.register("Owner", "owner@example.com")

	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "owner@example.com", "password": "secret123"})
	s.Require().Equal(http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal("token", cookies[0].Name)
	s.True(cookies[0].HttpOnly)

	var resp models.AuthResponse
	s.decode(w, &resp)

	w = s.do(http.MethodGet, "/api/auth/verify", resp.Token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var verified struct {
		Valid bool                `json:"valid"`
		User  models.UserResponse `json:"user"`
	}
	s.decode(w, &verified)
	s.True(verified.Valid)
	s.Equal(resp.User.ID, verified.User.ID)

	w = s.do(http.MethodGet, "/api/auth/verify", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	w = s.do(http.MethodGet, "/api/auth/verify", "garbage", nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "owner@example.com", "password": "wrong-password"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.NotContains(w.Body.String(), "token")

	w = s.do(http.MethodPost, "/api/auth/logout", "", nil)
	s.Equal(http.StatusOK, w.Code)
	cookies = w.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.True(cookies[0].MaxAge < 0)
}

func (s *RouterTestSuite) TestFirstAdminUser() {
	w := s.do(http.MethodGet, "/api/auth/first-admin-user", "", nil)
	s.Equal(http.StatusNotFound, w.Code)

	owner := s.register("Owner", "owner@example.com")
	w = s.do(http.MethodGet, "/api/auth/first-admin-user", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp struct {
		Success bool                   `json:"success"`
		User    map[string]interface{} `json:"user"`
	}
	s.decode(w, &resp)
	s.True(resp.Success)
	s.Equal(owner["id"], resp.User["id"])
}

func (s *RouterTestSuite) TestProfileScenario() {
	token := s.adminToken()
	aboutMe := "Builder of small, sharp tools.\nLikes Go."

	w := s.do(http.MethodPut, "/api/profile/auth/profile", token, gin.H{"about_me": aboutMe, "title": "Engineer"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/profile/auth/profile", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var own struct {
		Profile models.ProfileResponse `json:"profile"`
	}
	s.decode(w, &own)
	s.Equal(aboutMe, own.Profile.AboutMe)

	w = s.do(http.MethodGet, "/api/profile/"+own.Profile.ID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var public struct {
		Profile models.ProfileResponse `json:"profile"`
	}
	s.decode(w, &public)
	s.Equal(aboutMe, public.Profile.AboutMe)
	s.Equal("Engineer", public.Profile.Title)

	w = s.do(http.MethodGet, "/api/profile/"+models.DynamicAdminID, "", nil)
	s.Equal(http.StatusOK, w.Code)
	w = s.do(http.MethodGet, "/api/profile/not-a-uuid", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestAdminRoutesRequireAdmin() {
	s.register("Owner", "owner@example.com")
	s.register("Visitor", "visitor@example.com")
	userToken := s.login("visitor@example.com")

	body := gin.H{"institution": "MIT", "degree": "BSc", "start_date": "2015-09-01"}
	w := s.do(http.MethodPost, "/api/education", "", body)
	s.Equal(http.StatusUnauthorized, w.Code)
	w = s.do(http.MethodPost, "/api/education", userToken, body)
	s.Equal(http.StatusForbidden, w.Code)
	w = s.do(http.MethodGet, "/api/profile/auth/profile", userToken, nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterTestSuite) TestCertificationSentinelScenario() {
	token := s.adminToken()
	w := s.do(http.MethodGet, "/api/auth/first-admin-user", "", nil)
	var first struct {
		User models.UserResponse `json:"user"`
	}
	s.decode(w, &first)
	owner := first.User

	w = s.do(http.MethodPost, "/api/certifications", token, gin.H{
		"user_id":    models.DynamicAdminID,
		"title":      "CKA",
		"issuer":     "CNCF",
		"issue_date": "2023-01-15",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created map[string]interface{}
	s.decode(w, &created)
	s.Equal(owner.ID, created["user_id"])
	s.Equal(created["id"], created["_id"])

	w = s.do(http.MethodGet, "/api/certifications?userId="+owner.ID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var list []map[string]interface{}
	s.decode(w, &list)
	s.Require().Len(list, 1)
	s.Equal("CKA", list[0]["title"])

	w = s.do(http.MethodPost, "/api/certifications", token, gin.H{"title": "No issuer"})
	s.Equal(http.StatusBadRequest, w.Code)
	var verr struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	s.decode(w, &verr)
	s.NotEmpty(verr.Error)
	s.Contains(verr.Fields, "issuer")
}

func (s *RouterTestSuite) TestEducationDeleteTwice() {
	token := s.adminToken()

	w := s.do(http.MethodPost, "/api/education", token, gin.H{"institution": "MIT", "degree": "BSc", "start_date": "2015-09-01"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created map[string]interface{}
	s.decode(w, &created)
	id := created["id"].(string)

	w = s.do(http.MethodPut, "/api/education/"+id, token, gin.H{"grade": "A"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated map[string]interface{}
	s.decode(w, &updated)
	s.Equal("A", updated["grade"])
	s.Equal("MIT", updated["institution"])

	w = s.do(http.MethodDelete, "/api/education/"+id, token, nil)
	s.Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, "/api/education/"+id, token, nil)
	s.Equal(http.StatusNotFound, w.Code)
	w = s.do(http.MethodDelete, "/api/education/not-a-uuid", token, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/education", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *RouterTestSuite) TestTestimonialModerationScenario() {
	token := s.adminToken()

	w := s.do(http.MethodPost, "/api/testimonials", token, gin.H{"name": "Ada", "content": "Great work", "rating": 5})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created map[string]interface{}
	s.decode(w, &created)
	s.Equal("pending", created["status"])
	id := created["id"].(string)

	w = s.do(http.MethodGet, "/api/testimonials", "", nil)
	s.JSONEq(`[]`, w.Body.String())

	w = s.do(http.MethodPut, "/api/testimonials/"+id+"/approve", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/testimonials", "", nil)
	var public []map[string]interface{}
	s.decode(w, &public)
	s.Require().Len(public, 1)
	s.Equal("approved", public[0]["status"])
	s.NotNil(public[0]["approved_at"])

	w = s.do(http.MethodPut, "/api/testimonials/"+id+"/reject", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/testimonials", "", nil)
	s.JSONEq(`[]`, w.Body.String())

	w = s.do(http.MethodGet, "/api/testimonials/admin?status=rejected", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var rejected []map[string]interface{}
	s.decode(w, &rejected)
	s.Len(rejected, 1)

	w = s.do(http.MethodGet, "/api/testimonials/admin?status=bogus", token, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestArticles() {
	token := s.adminToken()

	w := s.do(http.MethodPost, "/api/articles", token, gin.H{
		"title":     "Hello World",
		"content":   "Some **bold** text",
		"published": true,
		"tags":      []string{"go"},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var article models.ArticleResponse
	s.decode(w, &article)
	s.Equal("hello-world", article.Slug)
	s.Contains(article.ContentHTML, "<strong>bold</strong>")

	w = s.do(http.MethodPost, "/api/articles", token, gin.H{"title": "Draft", "kind": "project"})
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/articles", "", nil)
	var public []models.ArticleResponse
	s.decode(w, &public)
	s.Require().Len(public, 1)
	s.Equal([]string{"go"}, public[0].Tags)

	w = s.do(http.MethodGet, "/api/articles/slug/hello-world", "", nil)
	s.Equal(http.StatusOK, w.Code)
	w = s.do(http.MethodGet, "/api/articles/slug/draft", "", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/articles/admin?kind=project", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var projects []models.ArticleResponse
	s.decode(w, &projects)
	s.Require().Len(projects, 1)
	s.Equal("draft", projects[0].Slug)

	w = s.do(http.MethodPost, "/api/articles", token, gin.H{"title": "Bad", "kind": "essay"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestDevLoginOnlyInDevelopment() {
	w := s.do(http.MethodPost, "/api/auth/dev-login", "", nil)
	s.Equal(http.StatusNotFound, w.Code)

	cfg := testutil.TestConfig()
	cfg.Env = config.EnvProduction
	s.router = s.newRouter(cfg)
	s.register("Owner", "owner@example.com")
	w = s.do(http.MethodPost, "/api/auth/dev-login", "", nil)
	s.Equal(http.StatusNotFound, w.Code)

	cfg = testutil.TestConfig()
	cfg.Env = config.EnvDevelopment
	s.router = s.newRouter(cfg)

	w = s.do(http.MethodPost, "/api/auth/dev-login", "", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp models.AuthResponse
	s.decode(w, &resp)
	s.Equal(models.RoleAdmin, resp.User.Role)
}

func (s *RouterTestSuite) TestChangePassword() {
	token := s.adminToken()

	w := s.do(http.MethodPut, "/api/auth/password", token, gin.H{"current_password": "secret123", "new_password": "newsecret"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "owner@example.com", "password": "newsecret"})
	s.Equal(http.StatusOK, w.Code)
}
