package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petitspas/backend/internal/db"
	"github.com/petitspas/backend/internal/service"
)

type contentUpdatePayload struct {
	Content string `json:"content"`
}

// ListContent returns the editable entries of one section for the admin
// editor.
func (a *API) ListContent(c *gin.Context) {
	section := c.DefaultQuery("section", db.SectionHome)

	entries, err := a.content.List(section)
	if err != nil {
		if errors.Is(err, service.ErrContentSectionInvalid) {
			respondError(c, http.StatusBadRequest, "Section inconnue")
			return
		}
		respondError(c, http.StatusInternalServerError, "Impossible de charger les textes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// UpdateContent overwrites the value of one fixed key. Keys are never
// created or deleted through the editor.
func (a *API) UpdateContent(c *gin.Context) {
	key := c.Param("key")

	var payload contentUpdatePayload
	if !bindJSON(c, &payload, "Requête invalide") {
		return
	}

	entry, err := a.content.Update(key, payload.Content)
	if err != nil {
		if errors.Is(err, service.ErrContentKeyUnknown) {
			respondError(c, http.StatusNotFound, "Texte inconnu")
			return
		}
		respondError(c, http.StatusInternalServerError, "Erreur de sauvegarde")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// PublicContent serves the texts of one section to the public pages.
// A store failure or an empty section falls back to the versioned
// default data set; read errors are logged only.
func (a *API) PublicContent(c *gin.Context) {
	section := c.DefaultQuery("section", db.SectionHome)
	if !db.IsValidSection(section) {
		respondError(c, http.StatusBadRequest, "Section inconnue")
		return
	}

	entries, err := a.content.List(section)
	if err != nil {
		c.Error(err)
		entries = nil
	}
	fallback := false
	if len(entries) == 0 {
		entries = service.DefaultContentEntries(section)
		fallback = true
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":  entries,
		"fallback": fallback,
	})
}
