package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/DadoBotGaming/voluntary-association/internal/models"
	"github.com/DadoBotGaming/voluntary-association/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Context keys set by the session middleware.
const (
	CtxUser    = "currentUser"
	CtxSession = "currentSession"
)

// ErrNoSession is returned when no valid session accompanies the request.
var ErrNoSession = errors.New("no active session")

// LoadSession resolves the session cookie against the sessions table.
// Expired rows are treated as absent and removed opportunistically.
func LoadSession(c *gin.Context, db *gorm.DB, cookieName string) (*models.Session, *models.User, error) {
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		return nil, nil, ErrNoSession
	}

	var sess models.Session
	if err := db.First(&sess, "id = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNoSession
		}
		return nil, nil, err
	}

	if !sess.Active(time.Now()) {
		_ = db.Delete(&sess).Error
		return nil, nil, ErrNoSession
	}

	var user models.User
	if err := db.First(&user, sess.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNoSession
		}
		return nil, nil, err
	}

	return &sess, &user, nil
}

// RequireLogin rejects requests without an active session (401).
func RequireLogin(db *gorm.DB, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, user, err := LoadSession(c, db, cookieName)
		if err != nil {
			if errors.Is(err, ErrNoSession) {
				util.Error(c, http.StatusUnauthorized, "Autenticazione richiesta")
			} else {
				util.ServerError(c)
			}
			c.Abort()
			return
		}
		c.Set(CtxUser, user)
		c.Set(CtxSession, sess)
		c.Next()
	}
}

// RequireAdmin rejects requests without a session (401) and sessions whose
// role is not Admin (403).
func RequireAdmin(db *gorm.DB, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, user, err := LoadSession(c, db, cookieName)
		if err != nil {
			if errors.Is(err, ErrNoSession) {
				util.Error(c, http.StatusUnauthorized, "Autenticazione richiesta")
			} else {
				util.ServerError(c)
			}
			c.Abort()
			return
		}
		if sess.Role != models.RoleAdmin {
			util.Error(c, http.StatusForbidden, "Accesso non autorizzato: richiesto ruolo Admin")
			c.Abort()
			return
		}
		c.Set(CtxUser, user)
		c.Set(CtxSession, sess)
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireLogin/RequireAdmin.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(CtxUser); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
