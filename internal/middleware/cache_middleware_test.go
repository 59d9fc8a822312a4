package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func newCachedRouter(store *cache.Cache) (*gin.Engine, *int) {
	hits := 0
	router := gin.New()
	router.Use(CacheGET(store, time.Minute))
	router.GET("/plans", func(ctx *gin.Context) {
		hits++
		ctx.String(http.StatusOK, "plan "+strconv.Itoa(hits))
	})
	router.DELETE("/plans/1", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return router, &hits
}

func TestCacheGET_ServesRepeatedReadsFromCache(t *testing.T) {
	store := cache.New(time.Minute, time.Minute)
	router, hits := newCachedRouter(store)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/plans", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/plans", nil))

	assert.Equal(t, 1, *hits)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCacheGET_MutationFlushesCache(t *testing.T) {
	store := cache.New(time.Minute, time.Minute)
	router, hits := newCachedRouter(store)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plans", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/plans/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plans", nil))

	assert.Equal(t, 2, *hits, "delete must invalidate cached reads")
}

func TestFlushOnWrite_InvalidatesCacheAcrossGroups(t *testing.T) {
	// A student rename must not leave a cached seating plan serving the
	// old name until TTL expiry.
	store := cache.New(time.Minute, time.Minute)
	router, hits := newCachedRouter(store)
	students := router.Group("/students")
	students.Use(FlushOnWrite(store))
	students.PUT("/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plans", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/students/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plans", nil))

	assert.Equal(t, 2, *hits, "student edit must invalidate cached plan views")
}

func TestFlushOnWrite_KeepsCacheOnFailedMutation(t *testing.T) {
	store := cache.New(time.Minute, time.Minute)
	router, hits := newCachedRouter(store)
	students := router.Group("/students")
	students.Use(FlushOnWrite(store))
	students.PUT("/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plans", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/students/9", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plans", nil))

	assert.Equal(t, 1, *hits, "rejected mutation must leave the cache intact")
}

func TestRateLimit_RejectsBurstOverflow(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(1, 2))
	router.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
