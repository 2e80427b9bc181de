package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/appointment-booking-backend/auth"
	usr "github.com/hanksha/appointment-booking-backend/user"
)

type UserService interface {
	Register(ctx context.Context, name, email, password string) (usr.User, error)
	Login(ctx context.Context, email, password string) (usr.User, error)
	GetUser(ctx context.Context, id string) (usr.User, error)
}

type UserHandler struct {
	service UserService
	tokens  *auth.TokenManager
}

func NewUserHandler(service UserService, tokens *auth.TokenManager) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

// Register wires the public endpoints; Me requires the session middleware
// on the group passed as authed.
func (h *UserHandler) Register(rg, authed *gin.RouterGroup) {
	rg.POST("/register", h.SignUp)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	authed.GET("/me", h.Me)
}

type credentialsBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) SignUp(c *gin.Context) {
	var body credentialsBody

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	u, err := h.service.Register(c.Request.Context(), body.Name, body.Email, body.Password)

	if err != nil {
		c.Error(err)

		var validationErr *usr.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation failed.",
				"errors":  validationErr.Fields,
			})
		} else if errors.Is(err, usr.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		}

		return
	}

	if err := h.setSessionCookie(c, u); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) Login(c *gin.Context) {
	var body credentialsBody

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	u, err := h.service.Login(c.Request.Context(), body.Email, body.Password)

	if err != nil {
		c.Error(err)

		var validationErr *usr.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation failed.",
				"errors":  validationErr.Fields,
			})
		} else if errors.Is(err, usr.ErrInvalidCredentials) {
			// same message for unknown email and wrong password
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		}

		return
	}

	if err := h.setSessionCookie(c, u); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.IndentedJSON(http.StatusOK, u)
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.IndentedJSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *UserHandler) Me(c *gin.Context) {
	identity := c.MustGet("identity").(auth.Identity)

	u, err := h.service.GetUser(c.Request.Context(), identity.UserID)

	if err != nil {
		c.Error(err)

		if errors.Is(err, usr.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, u)
}

func (h *UserHandler) setSessionCookie(c *gin.Context, u usr.User) error {
	token, err := h.tokens.Sign(u.ID, u.Email)

	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(h.tokens.TTL().Seconds()), "/", "", false, true)

	return nil
}
