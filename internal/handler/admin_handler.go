package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/petitspas/backend/internal/db"
	"github.com/petitspas/backend/internal/service"
)

type loginPayload struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	CaptchaToken string `json:"captcha_token"`
}

// Login authenticates an admin and opens a cookie session.
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "Requête invalide") {
		return
	}

	user, err := a.auth.Login(c.Request.Context(), payload.Email, payload.Password, payload.CaptchaToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaTokenMissing):
			respondError(c, http.StatusBadRequest, "Veuillez valider le captcha")
		case errors.Is(err, service.ErrCaptchaRejected):
			respondError(c, http.StatusForbidden, "Vérification anti-robot échouée")
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "Email ou mot de passe incorrect")
		default:
			respondError(c, http.StatusInternalServerError, "Connexion impossible, réessayez plus tard")
		}
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("email", user.Email)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "Impossible d'enregistrer la session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": user.Email})
}

// Register creates an admin account. The response tells the caller to
// check the mailbox; there is no automated verification afterwards.
func (a *API) Register(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "Requête invalide") {
		return
	}

	if err := a.auth.Register(c.Request.Context(), payload.Email, payload.Password, payload.CaptchaToken); err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaTokenMissing):
			respondError(c, http.StatusBadRequest, "Veuillez valider le captcha")
		case errors.Is(err, service.ErrCaptchaRejected):
			respondError(c, http.StatusForbidden, "Vérification anti-robot échouée")
		case errors.Is(err, service.ErrEmailInvalid):
			respondError(c, http.StatusBadRequest, "Adresse email invalide")
		case errors.Is(err, service.ErrPasswordTooShort):
			respondError(c, http.StatusBadRequest, "Le mot de passe doit contenir au moins 6 caractères")
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusConflict, "Un compte existe déjà pour cet email")
		default:
			respondError(c, http.StatusInternalServerError, "Inscription impossible, réessayez plus tard")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Compte créé ! Vérifiez votre boîte mail pour confirmer votre adresse."})
}

// Logout clears the session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

// Session reports whether the caller holds an active admin session. The
// dashboard calls this on load and redirects to the login page on 401.
func (a *API) Session(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") == nil {
		respondError(c, http.StatusUnauthorized, "Session expirée")
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": session.Get("email")})
}

// Stats returns the entity counts shown on the dashboard home.
func (a *API) Stats(c *gin.Context) {
	var childCount, storyCount, mediaCount, contentCount int64
	a.db.Model(&db.ChildProfile{}).Count(&childCount)
	a.db.Model(&db.Story{}).Count(&storyCount)
	a.db.Model(&db.MediaItem{}).Count(&mediaCount)
	a.db.Model(&db.ContentEntry{}).Count(&contentCount)

	c.JSON(http.StatusOK, gin.H{
		"children": childCount,
		"stories":  storyCount,
		"media":    mediaCount,
		"content":  contentCount,
	})
}

// AuthRequired guards the admin API group.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			respondError(c, http.StatusUnauthorized, "Authentification requise")
			c.Abort()
			return
		}
		c.Next()
	}
}
