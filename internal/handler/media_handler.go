package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petitspas/backend/internal/service"
)

type captionPayload struct {
	Caption string `json:"caption"`
}

// ListMedia returns media records, optionally narrowed to a section and
// a story.
func (a *API) ListMedia(c *gin.Context) {
	storyID, err := parseOptionalUintQuery(c, "story_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant de story invalide")
		return
	}

	items, err := a.media.List(c.Query("section"), storyID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Impossible de charger les médias")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UploadMedia stores a batch of files and reports per-file outcomes.
// Files are pushed to the bucket concurrently; a failed file no longer
// hides the ones that made it.
func (a *API) UploadMedia(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Fichiers manquants")
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		respondError(c, http.StatusBadRequest, "Fichiers manquants")
		return
	}

	storyID, err := parseOptionalUintQuery(c, "story_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant de story invalide")
		return
	}
	section := c.DefaultQuery("section", c.PostForm("section"))

	files := make([]service.UploadFile, 0, len(headers))
	for _, header := range headers {
		h := header
		files = append(files, service.UploadFile{
			Name:        h.Filename,
			ContentType: h.Header.Get("Content-Type"),
			Open: func() (io.ReadCloser, error) {
				return h.Open()
			},
		})
	}

	result, err := a.media.UploadBatch(c.Request.Context(), files, section, storyID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Fichiers manquants")
		return
	}

	status := http.StatusOK
	switch {
	case len(result.Items) == 0:
		status = http.StatusBadGateway
	case len(result.Failed) > 0:
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}

// DeleteMedia removes the database record only; the stored object stays
// in its bucket.
func (a *API) DeleteMedia(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := a.media.Delete(id); err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			respondError(c, http.StatusNotFound, "Média introuvable")
			return
		}
		respondError(c, http.StatusInternalServerError, "Suppression impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Média supprimé"})
}

// UpdateMediaCaption saves a caption. The admin UI commits on blur and
// shows no confirmation, so the success body stays empty.
func (a *API) UpdateMediaCaption(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var payload captionPayload
	if !bindJSON(c, &payload, "Requête invalide") {
		return
	}

	if err := a.media.UpdateCaption(id, payload.Caption); err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			respondError(c, http.StatusNotFound, "Média introuvable")
			return
		}
		respondError(c, http.StatusInternalServerError, "Erreur de sauvegarde")
		return
	}

	c.Status(http.StatusNoContent)
}
