package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/mazrooa/fatoora/apperr"
	"github.com/mazrooa/fatoora/gateway"
	"github.com/mazrooa/fatoora/models"
	"github.com/mazrooa/fatoora/store"
)

// Resource is one CRUD surface, instantiated per entity. The handlers are the
// same for all six resources; per-entity behavior lives in the validation tags
// and the optional hooks.
type Resource[T any, PT models.Entity[T]] struct {
	// Name appears in log lines and not-found messages, e.g. "user".
	Name string
	// WrapKey, when set, wraps write responses as {"message": ..., <key>: record}.
	WrapKey string
	Repo    store.Repository[T, PT]
	Logger  *logrus.Logger
	// BeforeSave runs after validation and before the persistence call on
	// create and replace. Returning an error aborts the request.
	BeforeSave func(c *gin.Context, rec *T) error
	// Sanitize strips write-only fields before a record is rendered.
	Sanitize func(rec *T)
}

// Register mounts the five operations on the resource's route group.
func (rs *Resource[T, PT]) Register(g *gin.RouterGroup) {
	g.GET("", rs.List)
	g.GET("/", rs.List)
	g.GET("/:id", rs.GetByID)
	g.POST("", rs.Create)
	g.POST("/", rs.Create)
	g.PUT("/:id", rs.Replace)
	g.DELETE("/:id", rs.Delete)
}

// List returns every record of the resource.
func (rs *Resource[T, PT]) List(c *gin.Context) {
	records, err := rs.Repo.FindAll(c.Request.Context())
	if err != nil {
		rs.fail(c, err)
		return
	}
	if rs.Sanitize != nil {
		for i := range records {
			rs.Sanitize(&records[i])
		}
	}
	c.JSON(http.StatusOK, records)
}

// GetByID returns the record with the given identifier.
func (rs *Resource[T, PT]) GetByID(c *gin.Context) {
	id, ok := rs.paramID(c)
	if !ok {
		return
	}
	record, err := rs.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		rs.fail(c, err)
		return
	}
	if rs.Sanitize != nil {
		rs.Sanitize(record)
	}
	c.JSON(http.StatusOK, record)
}

// Create validates the payload, runs the BeforeSave hook, and persists a new
// record with a store-assigned identifier.
func (rs *Resource[T, PT]) Create(c *gin.Context) {
	var record T
	if !rs.bindJSON(c, &record) {
		return
	}
	if rs.BeforeSave != nil {
		if err := rs.BeforeSave(c, &record); err != nil {
			rs.fail(c, err)
			return
		}
	}
	if err := rs.Repo.Create(c.Request.Context(), &record); err != nil {
		rs.fail(c, err)
		return
	}
	if rs.Sanitize != nil {
		rs.Sanitize(&record)
	}
	rs.rendered(c, http.StatusCreated, &record, rs.Name+" created successfully")
}

// Replace validates the payload, then overwrites every mutable field of the
// stored record. Omitted required fields are a validation error, never an
// implicit wipe.
func (rs *Resource[T, PT]) Replace(c *gin.Context) {
	id, ok := rs.paramID(c)
	if !ok {
		return
	}
	var record T
	if !rs.bindJSON(c, &record) {
		return
	}
	// an absent target is a 404 before any hook runs, so a valid payload
	// never surfaces a hook error for an id that does not exist
	if _, err := rs.Repo.FindByID(c.Request.Context(), id); err != nil {
		rs.fail(c, err)
		return
	}
	// expose the target id to the hook so lookups can exclude the record itself
	PT(&record).Meta().ID = id
	if rs.BeforeSave != nil {
		if err := rs.BeforeSave(c, &record); err != nil {
			rs.fail(c, err)
			return
		}
	}
	if err := rs.Repo.Replace(c.Request.Context(), id, &record); err != nil {
		rs.fail(c, err)
		return
	}
	if rs.Sanitize != nil {
		rs.Sanitize(&record)
	}
	rs.rendered(c, http.StatusOK, &record, rs.Name+" updated successfully")
}

// Delete removes the record with the given identifier. Deleting an absent or
// already-deleted id is a 404, not a 204.
func (rs *Resource[T, PT]) Delete(c *gin.Context) {
	id, ok := rs.paramID(c)
	if !ok {
		return
	}
	if err := rs.Repo.Delete(c.Request.Context(), id); err != nil {
		rs.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *Resource[T, PT]) rendered(c *gin.Context, status int, record *T, message string) {
	if rs.WrapKey != "" {
		c.JSON(status, gin.H{"message": message, rs.WrapKey: record})
		return
	}
	c.JSON(status, record)
}

// bindJSON decodes and validates the payload, collecting every field
// violation rather than stopping at the first.
func (rs *Resource[T, PT]) bindJSON(c *gin.Context, record *T) bool {
	if err := c.ShouldBindJSON(record); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			c.JSON(apperr.ErrValidation.Status, gin.H{
				"message": apperr.ErrValidation.Message,
				"code":    apperr.ErrValidation.Code,
				"errors":  models.ValidationDetails(verr),
			})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "code": "parsing_error"})
		return false
	}
	return true
}

func (rs *Resource[T, PT]) paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(apperr.ErrBadRequest.Status, gin.H{"message": "invalid id", "code": apperr.ErrBadRequest.Code})
		return 0, false
	}
	return uint(id), true
}

// fail maps a repository or hook error to its response. Internal detail never
// reaches the caller.
func (rs *Resource[T, PT]) fail(c *gin.Context, err error) {
	if errors.Is(err, apperr.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": rs.Name + " not found", "code": "not_found"})
		return
	}
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError && rs.Logger != nil {
		rs.Logger.Printf("error in %s handler (request %s): %v", rs.Name, gateway.RequestIDFromCtx(c), err)
	}
	c.JSON(status, gin.H{"message": apperr.Message(err), "code": apperr.Code(err)})
}
