package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status int
	header http.Header
	body   []byte
}

type bodyCapturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCapturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// FlushOnWrite clears the store after any successful mutating request.
// Mounted on route groups whose rows feed cached views served elsewhere,
// such as student and staff records joined into stored seating plans.
func FlushOnWrite(store *cache.Cache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if ctx.Request.Method != http.MethodGet && ctx.Writer.Status() < 400 {
			store.Flush()
		}
	}
}

// CacheGET serves repeated GET requests for read-heavy views (seating
// plans do not change between generation and deletion) from memory.
// Mutating requests through the same store flush it, so a regenerated
// allocation is never masked by a stale entry.
func CacheGET(store *cache.Cache, ttl time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet {
			ctx.Next()
			if ctx.Writer.Status() < 400 {
				store.Flush()
			}
			return
		}

		key := ctx.Request.RequestURI
		if entry, found := store.Get(key); found {
			cached := entry.(cachedResponse)
			for k, v := range cached.header {
				ctx.Writer.Header()[k] = v
			}
			ctx.Writer.WriteHeader(cached.status)
			ctx.Writer.Write(cached.body)
			ctx.Abort()
			return
		}

		writer := &bodyCapturingWriter{body: bytes.NewBuffer(nil), ResponseWriter: ctx.Writer}
		ctx.Writer = writer

		ctx.Next()

		if writer.Status() >= 200 && writer.Status() < 300 {
			store.Set(key, cachedResponse{
				status: writer.Status(),
				header: writer.Header().Clone(),
				body:   writer.body.Bytes(),
			}, ttl)
		}
	}
}
