package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lareserve-backend/configs"
	"lareserve-backend/entity"
	"lareserve-backend/pkg/storage"
	"lareserve-backend/ws"
)

type env struct {
	r  *gin.Engine
	db *gorm.DB
}

func setupEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	cfg := &configs.Config{
		JWTSecret: "test-secret", SessionTTL: time.Hour,
		AdminEmail: "admin@lareserve.bj", AdminPassword: "s3cret",
		PublicBaseURL: "http://localhost:8000",
	}
	require.NoError(t, configs.SeedAdmin(db, cfg))
	require.NoError(t, configs.SeedRestaurantInfo(db))

	store, err := storage.NewLocal(t.TempDir(), cfg.PublicBaseURL)
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, db, cfg, store, ws.NewSessionHub())
	return &env{r: r, db: db}
}

func (e *env) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func (e *env) login(t *testing.T) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/admin/login", "", gin.H{
		"email": "admin@lareserve.bj", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		OK   bool            `json:"ok"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.OK)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestAdminRoutesRequireSession(t *testing.T) {
	e := setupEnv(t)

	for _, path := range []string{"/admin/dashboard", "/admin/menu", "/admin/reviews", "/admin/reservations", "/admin/gallery", "/admin/session"} {
		w := e.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	// Login itself is open, and a bad password stays out.
	w := e.do(t, http.MethodPost, "/admin/login", "", gin.H{"email": "admin@lareserve.bj", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := e.login(t)
	w = e.do(t, http.MethodGet, "/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReservationEndToEnd(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodPost, "/api/reservations", "", gin.H{
		"customer_name":    "Jean Dupont",
		"customer_email":   "jean@example.com",
		"customer_phone":   "90000000",
		"reservation_date": "2025-03-01",
		"reservation_time": "19:30",
		"number_of_guests": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created entity.Reservation
	decodeData(t, w, &created)
	assert.Equal(t, entity.ReservationPending, created.Status)
	assert.NotZero(t, created.ID)

	// Appears under the pending filter.
	w = e.do(t, http.MethodGet, "/admin/reservations?status=pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pending []entity.Reservation
	decodeData(t, w, &pending)
	require.Len(t, pending, 1)
	assert.Equal(t, "Jean Dupont", pending[0].CustomerName)

	// Admin confirms.
	w = e.do(t, http.MethodPatch, fmt.Sprintf("/admin/reservations/%d/status", created.ID), token,
		gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)
	var confirmed entity.Reservation
	decodeData(t, w, &confirmed)
	assert.Equal(t, entity.ReservationConfirmed, confirmed.Status)

	// Gone from the pending filter, present under confirmed.
	w = e.do(t, http.MethodGet, "/admin/reservations?status=pending", token, nil)
	decodeData(t, w, &pending)
	assert.Empty(t, pending)

	var confirmedList []entity.Reservation
	w = e.do(t, http.MethodGet, "/admin/reservations?status=confirmed", token, nil)
	decodeData(t, w, &confirmedList)
	assert.Len(t, confirmedList, 1)
}

func TestReservationValidation(t *testing.T) {
	e := setupEnv(t)

	// Unfilled required fields never reach the database.
	w := e.do(t, http.MethodPost, "/api/reservations", "", gin.H{"customer_name": "Jean Dupont"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPost, "/api/reservations", "", gin.H{
		"customer_name":    "Jean Dupont",
		"customer_email":   "not-an-email",
		"customer_phone":   "90000000",
		"reservation_date": "2025-03-01",
		"reservation_time": "19:30",
		"number_of_guests": 4,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	e.db.Model(&entity.Reservation{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestReviewModerationEndToEnd(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodPost, "/api/reviews", "", gin.H{
		"author_name": "Jean", "rating": 5, "comment": "Excellent",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created entity.Review
	decodeData(t, w, &created)
	assert.False(t, created.IsApproved)

	// Invisible on the public list.
	w = e.do(t, http.MethodGet, "/api/reviews", "", nil)
	var public []entity.Review
	decodeData(t, w, &public)
	assert.Empty(t, public)

	// Visible on the moderation list, then approved.
	w = e.do(t, http.MethodGet, "/admin/reviews", token, nil)
	var all []entity.Review
	decodeData(t, w, &all)
	require.Len(t, all, 1)

	w = e.do(t, http.MethodPatch, fmt.Sprintf("/admin/reviews/%d/approve", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/api/reviews", "", nil)
	decodeData(t, w, &public)
	require.Len(t, public, 1)
	assert.Equal(t, "Jean", public[0].AuthorName)
}

func TestMenuCRUDAndPublicFilter(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodPost, "/admin/menu", token, gin.H{
		"name": "Poulet DG", "description": "Poulet frit", "price": 9500,
		"category": "mains", "is_available": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var item entity.MenuItem
	decodeData(t, w, &item)

	// Bad category is a validation error.
	w = e.do(t, http.MethodPost, "/admin/menu", token, gin.H{
		"name": "X", "price": 100, "category": "breakfast",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Hide it; the public card no longer shows it, the admin list does.
	w = e.do(t, http.MethodPatch, fmt.Sprintf("/admin/menu/%d", item.ID), token, gin.H{"is_available": false})
	require.Equal(t, http.StatusOK, w.Code)

	var publicItems []entity.MenuItem
	w = e.do(t, http.MethodGet, "/api/menu", "", nil)
	decodeData(t, w, &publicItems)
	assert.Empty(t, publicItems)

	var adminItems []entity.MenuItem
	w = e.do(t, http.MethodGet, "/admin/menu", token, nil)
	decodeData(t, w, &adminItems)
	assert.Len(t, adminItems, 1)

	// Deleting twice: the second call is an error.
	w = e.do(t, http.MethodDelete, fmt.Sprintf("/admin/menu/%d", item.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = e.do(t, http.MethodDelete, fmt.Sprintf("/admin/menu/%d", item.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsUpdate(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodGet, "/api/restaurant", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var info entity.RestaurantInfo
	decodeData(t, w, &info)
	assert.Equal(t, "La Réserve", info.Name)

	w = e.do(t, http.MethodPut, "/admin/settings", token, gin.H{
		"phone":        "97 00 00 00",
		"social_media": gin.H{"instagram": "@lareserve.bj"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/api/restaurant", "", nil)
	decodeData(t, w, &info)
	assert.Equal(t, "97 00 00 00", info.Phone)
	assert.Equal(t, "@lareserve.bj", info.SocialMedia.Instagram)
	// Untouched fields kept their values.
	assert.Equal(t, "contact@lareserve.bj", info.Email)
}

func TestUploadToBucket(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "poulet-dg.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpegdata"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/uploads/menu-images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var out struct {
		Bucket    string `json:"bucket"`
		Path      string `json:"path"`
		PublicURL string `json:"public_url"`
	}
	decodeData(t, w, &out)
	assert.Equal(t, "menu-images", out.Bucket)
	assert.Contains(t, out.PublicURL, "/storage/menu-images/")

	// Unknown bucket is rejected before anything is stored.
	req = httptest.NewRequest(http.MethodPost, "/admin/uploads/secrets", bytes.NewReader(nil))
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGalleryFeatured(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodPost, "/admin/gallery", token, gin.H{
		"title": "Salle principale", "category": "interior",
		"image_url": "/storage/gallery-images/salle.jpg", "is_featured": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = e.do(t, http.MethodPost, "/admin/gallery", token, gin.H{
		"title": "Notre cave", "category": "ambiance",
		"image_url": "/storage/gallery-images/cave.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var featured []entity.GalleryItem
	w = e.do(t, http.MethodGet, "/api/gallery/featured", "", nil)
	decodeData(t, w, &featured)
	require.Len(t, featured, 1)
	assert.Equal(t, "Salle principale", featured[0].Title)

	var byCategory []entity.GalleryItem
	w = e.do(t, http.MethodGet, "/api/gallery?category=ambiance", "", nil)
	decodeData(t, w, &byCategory)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Notre cave", byCategory[0].Title)
}

func TestLogoutEndsSession(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodGet, "/admin/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/admin/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/admin/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReservationDayView(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t)

	for _, res := range []gin.H{
		{"customer_name": "Jean Dupont", "customer_email": "jean@example.com", "customer_phone": "90000000",
			"reservation_date": "2025-03-01", "reservation_time": "19:30", "number_of_guests": 4},
		{"customer_name": "Awa Sossou", "customer_email": "awa@example.com", "customer_phone": "91000000",
			"reservation_date": "2025-03-02", "reservation_time": "20:00", "number_of_guests": 2},
	} {
		w := e.do(t, http.MethodPost, "/api/reservations", "", res)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var day []entity.Reservation
	w := e.do(t, http.MethodGet, "/admin/reservations/day?date=2025-03-01", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &day)
	require.Len(t, day, 1)
	assert.Equal(t, "Jean Dupont", day[0].CustomerName)

	// The date parameter is not optional.
	w = e.do(t, http.MethodGet, "/admin/reservations/day", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewAdminUpdate(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodPost, "/api/reviews", "", gin.H{
		"author_name": "Laura M", "rating": 3, "comment": "Correct",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created entity.Review
	decodeData(t, w, &created)

	w = e.do(t, http.MethodPatch, fmt.Sprintf("/admin/reviews/%d", created.ID), token, gin.H{
		"rating": 4, "comment": "Finalement très bien",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated entity.Review
	decodeData(t, w, &updated)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "Finalement très bien", updated.Comment)
	assert.Equal(t, "Laura M", updated.AuthorName)

	// An empty patch is rejected rather than touching the row.
	w = e.do(t, http.MethodPatch, fmt.Sprintf("/admin/reviews/%d", created.ID), token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
