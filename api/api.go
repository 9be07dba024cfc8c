package api

import (
	"errors"
	"fmt"

	"stockalloc/internal/app"
	"stockalloc/internal/domain"
	"stockalloc/internal/logger"
	"stockalloc/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	AllocatorHandler   app.AllocatorHandler
	UniverseRepository repository.UniverseRepository
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(requestLogMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stockalloc"})
	})
	router.POST("/allocate", m.allocate)
	router.GET("/universe", m.universe)

	return router.Run(fmt.Sprintf(":%d", port))
}

// every request gets its own sugared logger carrying a request id, so
// resolver logs can be correlated
func requestLogMiddleware(c *gin.Context) {
	requestID := uuid.NewString()
	log := logger.New().With(
		"requestID", requestID,
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	c.Set(logger.ContextKey, log)
	c.Writer.Header().Set("X-Request-Id", requestID)
	c.Next()
}

func returnErrorJson(err error, c *gin.Context) {
	var invalidInput domain.InvalidInputError
	var priceUnavailable domain.PriceUnavailableError

	code := 500
	if errors.As(err, &invalidInput) {
		code = 400
	} else if errors.As(err, &priceUnavailable) {
		code = 502
	}
	returnErrorJsonCode(err, c, code)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c)
	log.Errorf("request failed: %v", err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
