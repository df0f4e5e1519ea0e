package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petitspas/backend/internal/db"
	"github.com/petitspas/backend/internal/service"
)

type storyCreatePayload struct {
	Title string `json:"title"`
}

type storyUpdatePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type storyWithMedia struct {
	db.Story
	Media []db.MediaItem `json:"media"`
}

// ListStories returns all stories with their attached media. Attachments
// come from a filtered media query per story, not a client-side join.
func (a *API) ListStories(c *gin.Context) {
	stories, err := a.stories.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Impossible de charger les stories")
		return
	}

	items := make([]storyWithMedia, 0, len(stories))
	for _, story := range stories {
		id := story.ID
		media, err := a.media.List("", &id)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Impossible de charger les médias")
			return
		}
		items = append(items, storyWithMedia{Story: story, Media: media})
	}

	c.JSON(http.StatusOK, gin.H{"stories": items})
}

// CreateStory inserts a story from a title alone. The admin UI expands
// the new story right away and seeds its edit buffer from the response.
func (a *API) CreateStory(c *gin.Context) {
	var payload storyCreatePayload
	if !bindJSON(c, &payload, "Requête invalide") {
		return
	}

	story, err := a.stories.Create(payload.Title)
	if err != nil {
		if errors.Is(err, service.ErrStoryTitleMissing) {
			respondError(c, http.StatusBadRequest, "Le titre est obligatoire")
			return
		}
		respondError(c, http.StatusInternalServerError, "Création impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"story": story})
}

// UpdateStory saves title and description.
func (a *API) UpdateStory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var payload storyUpdatePayload
	if !bindJSON(c, &payload, "Requête invalide") {
		return
	}

	story, err := a.stories.Update(id, payload.Title, payload.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoryNotFound):
			respondError(c, http.StatusNotFound, "Story introuvable")
		case errors.Is(err, service.ErrStoryTitleMissing):
			respondError(c, http.StatusBadRequest, "Le titre est obligatoire")
		default:
			respondError(c, http.StatusInternalServerError, "Erreur de sauvegarde")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"story": story})
}

// DeleteStory removes a story. Its media rows stay behind with a
// dangling story reference; neither the rows nor the stored objects are
// cleaned up.
func (a *API) DeleteStory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := a.stories.Delete(id); err != nil {
		if errors.Is(err, service.ErrStoryNotFound) {
			respondError(c, http.StatusNotFound, "Story introuvable")
			return
		}
		respondError(c, http.StatusInternalServerError, "Suppression impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Story supprimée"})
}
