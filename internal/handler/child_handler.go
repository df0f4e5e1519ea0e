package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/petitspas/backend/internal/service"
	"github.com/petitspas/backend/internal/storage"
)

type childPayload struct {
	Name          string `json:"name"`
	Age           string `json:"age"`
	Story         string `json:"story"`
	ImageURL      string `json:"image_url"`
	ImagePosition string `json:"image_position"`
	VideoURL      string `json:"video_url"`
}

func (p childPayload) toInput() service.ChildInput {
	return service.ChildInput{
		Name:          p.Name,
		Age:           p.Age,
		Story:         p.Story,
		ImageURL:      p.ImageURL,
		ImagePosition: p.ImagePosition,
		VideoURL:      p.VideoURL,
	}
}

const degradedSaveMessage = "Sauvegardé ! Certaines options avancées n'ont pas pu être appliquées car la base de données n'est pas à jour."

// ListChildren returns all profiles for the admin panel, newest first.
func (a *API) ListChildren(c *gin.Context) {
	children, err := a.children.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Impossible de charger les fiches")
		return
	}
	c.JSON(http.StatusOK, gin.H{"children": children})
}

// CreateChild inserts a profile. A schema-drift failure on the optional
// columns degrades to the safe field subset and says so in the message.
func (a *API) CreateChild(c *gin.Context) {
	var payload childPayload
	if !bindJSON(c, &payload, "Requête invalide") {
		return
	}

	result, err := a.children.Create(payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrChildNameMissing) {
			respondError(c, http.StatusBadRequest, "Le prénom est obligatoire")
			return
		}
		respondError(c, http.StatusInternalServerError, "Erreur de sauvegarde")
		return
	}

	message := "Enfant ajouté avec succès !"
	if result.Degraded {
		message = degradedSaveMessage
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "child": result.Child, "degraded": result.Degraded})
}

// UpdateChild overwrites a profile with the same degraded fallback as
// CreateChild.
func (a *API) UpdateChild(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var payload childPayload
	if !bindJSON(c, &payload, "Requête invalide") {
		return
	}

	result, err := a.children.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChildNotFound):
			respondError(c, http.StatusNotFound, "Fiche introuvable")
		case errors.Is(err, service.ErrChildNameMissing):
			respondError(c, http.StatusBadRequest, "Le prénom est obligatoire")
		default:
			respondError(c, http.StatusInternalServerError, "Erreur de sauvegarde")
		}
		return
	}

	message := "Modifications enregistrées !"
	if result.Degraded {
		message = degradedSaveMessage
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "child": result.Child, "degraded": result.Degraded})
}

// DeleteChild removes a profile. The confirmation prompt lives in the
// admin UI; the API deletes unconditionally.
func (a *API) DeleteChild(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := a.children.Delete(id); err != nil {
		if errors.Is(err, service.ErrChildNotFound) {
			respondError(c, http.StatusNotFound, "Fiche introuvable")
			return
		}
		respondError(c, http.StatusInternalServerError, "Suppression impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fiche supprimée"})
}

// UploadChildPhoto stores one portrait in the children-photos bucket and
// returns its public URL. HEIC files are rejected before anything is
// stored, naming the formats to use instead.
func (a *API) UploadChildPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Photo manquante")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if isUnsupportedImageFormat(file.Filename, contentType) {
		respondError(c, http.StatusBadRequest, "Le format HEIC n'est pas supporté par les navigateurs web. Veuillez utiliser JPG ou PNG.")
		return
	}
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Seules les images sont acceptées")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Lecture du fichier impossible")
		return
	}
	defer src.Close()

	url, err := a.store.Save(storage.BucketChildrenPhotos, storage.NewObjectName(file.Filename), src)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Envoi de la photo impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// isUnsupportedImageFormat spots the one legacy format browsers cannot
// display.
func isUnsupportedImageFormat(filename, contentType string) bool {
	return contentType == "image/heic" ||
		strings.HasSuffix(strings.ToLower(filename), ".heic")
}
