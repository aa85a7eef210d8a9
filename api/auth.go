package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mazrooa/fatoora/apperr"
	"github.com/mazrooa/fatoora/models"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler checks the candidate credentials and issues a signed token.
func (s *Service) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			c.JSON(apperr.ErrValidation.Status, gin.H{
				"message": apperr.ErrValidation.Message,
				"code":    apperr.ErrValidation.Code,
				"errors":  models.ValidationDetails(verr),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "code": "parsing_error"})
		return
	}

	user, err := models.GetUserByEmail(req.Email, s.Db)
	if err != nil {
		s.Logger.Printf("login: no user for email %s", req.Email)
		c.JSON(http.StatusBadRequest, gin.H{"message": "user not found", "code": "not_found"})
		return
	}
	if err := user.CheckPassword(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "wrong password entered", "code": "wrong_password"})
		return
	}

	token, err := s.Auth.GenerateJWT(user.ID, user.Email)
	if err != nil {
		s.Logger.Printf("login: unable to sign token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "code": "internal_error"})
		return
	}
	sanitizeUser(&user)
	c.Header("Authorization", token)
	c.JSON(http.StatusOK, gin.H{"authorization": token, "user": user})
}
