package middleware

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"slime-shop/config"
	"slime-shop/models"

	"github.com/gin-gonic/gin"
)

// A 503 here is deliberately distinct from a 404: "the store is down" must
// never look like "the record is gone".
const storeUnavailableMessage = "The database is currently unavailable. Please try again later."

var (
	dbCheckMu   sync.Mutex
	dbLastOK    time.Time
	dbCheckTTL  = 5 * time.Second
	dbPingLimit = 2 * time.Second
)

// DBCheckMiddleware rejects requests with 503 while the database is
// unreachable. A successful ping is cached briefly so the check does not
// add a round trip to every request.
func DBCheckMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !databaseAvailable(c.Request.Context()) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Message:    storeUnavailableMessage,
				RetryAfter: 30,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func databaseAvailable(ctx context.Context) bool {
	if config.DB == nil {
		return false
	}

	dbCheckMu.Lock()
	defer dbCheckMu.Unlock()

	if time.Since(dbLastOK) < dbCheckTTL {
		return true
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingLimit)
	defer cancel()

	if err := config.DB.Ping(pingCtx); err != nil {
		log.Printf("Database not reachable, returning 503: %v", err)
		return false
	}

	dbLastOK = time.Now()
	return true
}
