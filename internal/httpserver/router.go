package httpserver

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"driver-registry/internal/domain"
	personsvc "driver-registry/internal/service/person"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// PersonService is the registry the handlers drive.
type PersonService interface {
	Register(p domain.Person) (personsvc.View, error)
	Get(id string) (personsvc.View, error)
	Update(id string, next domain.Person) (personsvc.View, error)
	AddDemeritPoints(id, offenseDate string, points int) (string, personsvc.View, error)
}

// ReadyChecker reports whether backing storage is usable.
type ReadyChecker interface {
	Ready() error
}

// Deps bundles what the router needs.
type Deps struct {
	PersonSvc        PersonService
	Storage          ReadyChecker
	CORSAllowOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	// Person ids may contain an escaped "/".
	router.UseRawPath = true
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(deps.CORSAllowOrigins) > 0 {
		corsCfg := cors.Config{
			AllowOrigins: deps.CORSAllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		}
		if err := corsCfg.Validate(); err != nil {
			return nil, fmt.Errorf("cors config: %w", err)
		}
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Storage))

	h := &personHandler{svc: deps.PersonSvc, logger: logger}
	persons := router.Group("/persons")
	persons.POST("", h.register)
	persons.GET("/:personId", h.get)
	persons.PUT("/:personId", h.update)
	persons.POST("/:personId/demerits", h.addDemerits)

	return router, nil
}
