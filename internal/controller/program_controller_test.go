package controller

import (
	"bytes"
	"encoding/json"
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/middleware"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"
	"lingua_edu_backend/pkg/database"
	"lingua_edu_backend/pkg/security"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	testJWTSecret  = "test-jwt-secret-test-jwt-secret-"
	testCSRFSecret = "test-csrf-secret-test-csrf-secre"
)

type programTestEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func newProgramTestEnv(t *testing.T) *programTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.ExpireTime = time.Hour
	cfg.CSRF.Secret = testCSRFSecret
	cfg.Storage.Type = util.StorageLocal
	cfg.Storage.LocalPath = t.TempDir()

	storage := service.NewStorageService(cfg)
	programService := service.NewProgramService(repository.NewProgramPageRepository(db), storage, db)
	programController := NewProgramController(programService)

	router := gin.New()
	programs := router.Group("/api/programs")
	{
		programs.GET("", programController.List)
		programs.GET("/:id", programController.Get)

		authorized := programs.Group("")
		authorized.Use(
			middleware.AuthMiddleware(cfg),
			middleware.RoleMiddleware(model.Editor),
			middleware.CSRFMiddleware(cfg),
		)
		{
			authorized.POST("", programController.Create)
			authorized.PATCH("/:id", programController.Update)
			authorized.DELETE("/:id", programController.Delete)
		}
	}

	return &programTestEnv{router: router, db: db, cfg: cfg}
}

func (e *programTestEnv) token(t *testing.T, role model.UserRole) string {
	t.Helper()
	user := &model.User{Email: "user@test.example", Role: role}
	user.ID = 1
	token, err := util.GenerateJWT(user, e.cfg.JWT.Secret, e.cfg.JWT.ExpireTime)
	require.NoError(t, err)
	return token
}

func (e *programTestEnv) csrf(t *testing.T) string {
	t.Helper()
	token, err := security.GenerateCSRFToken(e.cfg.CSRF.Secret)
	require.NoError(t, err)
	return token
}

func (e *programTestEnv) request(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func createBody() map[string]interface{} {
	return map[string]interface{}{
		"name": "IELTS Advanced",
		"type": "ielts",
		"levels": []map[string]interface{}{
			{"title": "Band 7+", "duration": "8 weeks"},
		},
		"features": []map[string]interface{}{
			{"icon": "book", "title": "Mock exams"},
		},
	}
}

func TestCreateProgramWithoutCSRFToken(t *testing.T) {
	env := newProgramTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/programs", createBody(), map[string]string{
		"Authorization": "Bearer " + env.token(t, model.Editor),
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.ProgramPage{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "rejected request must not write")
}

func TestCreateProgramWithoutToken(t *testing.T) {
	env := newProgramTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/programs", createBody(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateProgramAsViewer(t *testing.T) {
	env := newProgramTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/programs", createBody(), map[string]string{
		"Authorization": "Bearer " + env.token(t, model.Viewer),
		"X-CSRF-Token":  env.csrf(t),
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateProgramAsEditor(t *testing.T) {
	env := newProgramTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/programs", createBody(), map[string]string{
		"Authorization": "Bearer " + env.token(t, model.Editor),
		"X-CSRF-Token":  env.csrf(t),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp util.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	page := resp.Data.(map[string]interface{})
	assert.Equal(t, "ielts-advanced", page["slug"])

	var stored model.ProgramPage
	require.NoError(t, env.db.Preload("Levels").Preload("Features").First(&stored).Error)
	assert.Len(t, stored.Levels, 1)
	assert.Len(t, stored.Features, 1)
}

func TestCreateProgramAsAdminPassesRoleCheck(t *testing.T) {
	env := newProgramTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/programs", createBody(), map[string]string{
		"Authorization": "Bearer " + env.token(t, model.Admin),
		"X-CSRF-Token":  env.csrf(t),
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateProgramValidation(t *testing.T) {
	env := newProgramTestEnv(t)

	body := createBody()
	delete(body, "name")

	rec := env.request(t, http.MethodPost, "/api/programs", body, map[string]string{
		"Authorization": "Bearer " + env.token(t, model.Editor),
		"X-CSRF-Token":  env.csrf(t),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProgramPublic(t *testing.T) {
	env := newProgramTestEnv(t)

	env.request(t, http.MethodPost, "/api/programs", createBody(), map[string]string{
		"Authorization": "Bearer " + env.token(t, model.Editor),
		"X-CSRF-Token":  env.csrf(t),
	})

	rec := env.request(t, http.MethodGet, "/api/programs", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/programs/1", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/programs/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/programs/not-a-number", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProgram(t *testing.T) {
	env := newProgramTestEnv(t)

	env.request(t, http.MethodPost, "/api/programs", createBody(), map[string]string{
		"Authorization": "Bearer " + env.token(t, model.Editor),
		"X-CSRF-Token":  env.csrf(t),
	})

	rec := env.request(t, http.MethodDelete, "/api/programs/1", nil, map[string]string{
		"Authorization": "Bearer " + env.token(t, model.Editor),
		"X-CSRF-Token":  env.csrf(t),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.ProgramPage{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
