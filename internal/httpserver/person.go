package httpserver

import (
	"errors"
	"log"
	"net/http"

	"driver-registry/internal/domain"
	personsvc "driver-registry/internal/service/person"
	"github.com/gin-gonic/gin"
)

type personRequest struct {
	PersonID  string `json:"personId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Birthdate string `json:"birthdate"`
}

func (r personRequest) toDomain() domain.Person {
	return domain.Person{
		ID:        r.PersonID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		Birthdate: r.Birthdate,
	}
}

type demeritRequest struct {
	OffenseDate string `json:"offenseDate" binding:"required"`
	Points      *int   `json:"points" binding:"required"`
}

type personResponse struct {
	PersonID      string         `json:"personId"`
	FirstName     string         `json:"firstName"`
	LastName      string         `json:"lastName"`
	Address       string         `json:"address"`
	Birthdate     string         `json:"birthdate"`
	DemeritPoints map[string]int `json:"demeritPoints"`
	TotalPoints   int            `json:"totalPoints"`
	IsSuspended   bool           `json:"isSuspended"`
}

type demeritResponse struct {
	Result string          `json:"result"`
	Person *personResponse `json:"person,omitempty"`
}

func toPersonResponse(v personsvc.View) personResponse {
	points := make(map[string]int, len(v.Demerits))
	for _, d := range v.Demerits {
		points[d.OffenseDate] = d.Points
	}
	return personResponse{
		PersonID:      v.Person.ID,
		FirstName:     v.Person.FirstName,
		LastName:      v.Person.LastName,
		Address:       v.Person.Address,
		Birthdate:     v.Person.Birthdate,
		DemeritPoints: points,
		TotalPoints:   v.TotalPoints,
		IsSuspended:   v.Suspended,
	}
}

type personHandler struct {
	svc    PersonService
	logger *log.Logger
}

func (h *personHandler) register(c *gin.Context) {
	var req personRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := h.svc.Register(req.toDomain())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPersonResponse(view))
}

func (h *personHandler) get(c *gin.Context) {
	view, err := h.svc.Get(c.Param("personId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPersonResponse(view))
}

func (h *personHandler) update(c *gin.Context) {
	var req personRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := h.svc.Update(c.Param("personId"), req.toDomain())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPersonResponse(view))
}

func (h *personHandler) addDemerits(c *gin.Context) {
	var req demeritRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	result, view, err := h.svc.AddDemeritPoints(c.Param("personId"), req.OffenseDate, *req.Points)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp := toPersonResponse(view)
	if result != personsvc.Success {
		c.JSON(http.StatusUnprocessableEntity, demeritResponse{Result: result, Person: &resp})
		return
	}
	c.JSON(http.StatusOK, demeritResponse{Result: result, Person: &resp})
}

func (h *personHandler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, http.StatusNotFound, "person not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(c, http.StatusConflict, "person id already registered")
	case errors.Is(err, personsvc.ErrRejected):
		writeError(c, http.StatusUnprocessableEntity, "person rejected")
	default:
		h.logger.Printf("person handler: %s %s err=%v", c.Request.Method, c.FullPath(), err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"statusCode": status, "message": message})
}
