package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mazrooa/fatoora/apperr"
	"github.com/mazrooa/fatoora/models"
)

var errDuplicateEmail = apperr.New("duplicate_email", http.StatusBadRequest, "user with this email already exists")

// userBeforeSave normalizes and hashes the candidate user. The email must be
// unique across all other users; on replace the record itself is excluded
// from the check.
func (s *Service) userBeforeSave(c *gin.Context, u *models.User) error {
	u.SanitizeEmail()

	var existing models.User
	query := s.Db.WithContext(c.Request.Context()).Where("email = ?", u.Email)
	if u.ID != 0 {
		query = query.Where("id <> ?", u.ID)
	}
	if result := query.First(&existing); result.Error == nil {
		return errDuplicateEmail
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return apperr.Wrap(result.Error, apperr.ErrDatabase, "")
	}

	if u.ID == 0 {
		u.IsActive = true
	}
	if err := u.HashPassword(); err != nil {
		return apperr.Wrap(err, apperr.ErrInternal, "")
	}
	return nil
}

// sanitizeUser blanks the password digest so the omitempty tag drops the key
// from the response body.
func sanitizeUser(u *models.User) {
	u.Password = ""
}

// Profile returns the authenticated caller's record.
func (s *Service) Profile(c *gin.Context) {
	email := c.GetString("email")
	user, err := models.GetUserByEmail(email, s.Db)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found", "code": "not_found"})
		return
	}
	sanitizeUser(&user)
	c.JSON(http.StatusOK, user)
}
