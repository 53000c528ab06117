package handlers

import (
	"net/http"

	"library/internal/services"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Password string `json:"user_password"`
}

// POST /signup
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	id, err := h.auth(c).Signup(c.Request.Context(), services.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Contact:  req.Contact,
		Password: req.Password,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully!",
		"success": true,
		"user_id": id,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	sess, err := h.auth(c).Login(c.Request.Context(), services.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful",
		"success":   true,
		"user_id":   sess.UserID,
		"userEmail": sess.Email,
	})
}
