package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/DadoBotGaming/voluntary-association/internal/config"
	"github.com/DadoBotGaming/voluntary-association/internal/middleware"
	"github.com/DadoBotGaming/voluntary-association/internal/models"
	"github.com/DadoBotGaming/voluntary-association/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves registration, login, logout and session checks.
type AuthHandler struct {
	DB      *gorm.DB
	Session config.SessionConfig
	Cost    int
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		DB:      db,
		Session: cfg.Session,
		Cost:    cfg.Security.BcryptCost,
	}
}

type registerReq struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"nome"`
	LastName  string `json:"cognome"`
	Role      string `json:"ruolo"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "Email e password sono obbligatori")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleVolunteer
	}
	if !models.ValidRole(role) {
		util.Error(c, http.StatusBadRequest, "Ruolo non valido")
		return
	}

	var count int64
	if err := h.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		util.ServerError(c)
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, "Utente già registrato")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.Cost)
	if err != nil {
		util.ServerError(c)
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		// unique index race: two concurrent registrations with the same email
		if strings.Contains(err.Error(), "UNIQUE") {
			util.Error(c, http.StatusConflict, "Utente già registrato")
			return
		}
		util.ServerError(c)
		return
	}

	util.Message(c, http.StatusCreated, "Utente registrato con successo")
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}
	if req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "Email e password sono obbligatori")
		return
	}

	// unknown email and wrong password answer identically
	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusUnauthorized, "Credenziali non valide")
		} else {
			util.ServerError(c)
		}
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, "Credenziali non valide")
		return
	}

	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(time.Duration(h.Session.ExpireHours) * time.Hour),
	}
	if err := h.DB.Create(&sess).Error; err != nil {
		util.ServerError(c)
		return
	}

	c.SetCookie(h.Session.CookieName, sess.ID, h.Session.ExpireHours*3600, "/", "", h.Session.Secure, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login effettuato con successo",
		"user_id": user.ID,
		"ruolo":   user.Role,
	})
}

// Logout destroys the current session. Idempotent: succeeds with or
// without an active session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.Session.CookieName); err == nil && token != "" {
		_ = h.DB.Delete(&models.Session{}, "id = ?", token).Error
	}
	c.SetCookie(h.Session.CookieName, "", -1, "/", "", h.Session.Secure, true)
	util.Message(c, http.StatusOK, "Logout effettuato con successo")
}

// CheckSession reports whether a session is active. Never fails.
func (h *AuthHandler) CheckSession(c *gin.Context) {
	sess, _, err := middleware.LoadSession(c, h.DB, h.Session.CookieName)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"logged_in": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"logged_in": true,
		"user_id":   sess.UserID,
		"user_role": sess.Role,
	})
}
