package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/petitspas/backend/internal/db"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderRichText converts admin-entered long-form text to sanitized HTML.
func renderRichText(text string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(text), &buf); err != nil {
		return ""
	}
	return sanitizer.Sanitize(buf.String())
}

type publicChild struct {
	db.ChildProfile
	StoryHTML string `json:"story_html"`
}

type publicStory struct {
	db.Story
	DescriptionHTML string `json:"description_html"`
	Media           []db.MediaItem `json:"media"`
}

// PublicChildren serves the home timeline, newest first. A read failure
// is logged and answered with an empty list; the frontend keeps its
// fallback content.
func (a *API) PublicChildren(c *gin.Context) {
	children, err := a.children.List()
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusOK, gin.H{"children": []publicChild{}})
		return
	}

	items := make([]publicChild, 0, len(children))
	for _, child := range children {
		child.ImagePosition = db.NormalizeImagePosition(child.ImagePosition)
		items = append(items, publicChild{
			ChildProfile: child,
			StoryHTML:    renderRichText(child.Story),
		})
	}

	c.JSON(http.StatusOK, gin.H{"children": items})
}

// PublicStories serves the transparency narratives with their media.
func (a *API) PublicStories(c *gin.Context) {
	stories, err := a.stories.List()
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusOK, gin.H{"stories": []publicStory{}})
		return
	}

	items := make([]publicStory, 0, len(stories))
	for _, story := range stories {
		id := story.ID
		media, err := a.media.List("", &id)
		if err != nil {
			c.Error(err)
			media = nil
		}
		items = append(items, publicStory{
			Story:           story,
			DescriptionHTML: renderRichText(story.Description),
			Media:           media,
		})
	}

	c.JSON(http.StatusOK, gin.H{"stories": items})
}

// PublicMedia serves the gallery of one section, newest first.
func (a *API) PublicMedia(c *gin.Context) {
	items, err := a.media.List(c.DefaultQuery("section", db.SectionHome), nil)
	if err != nil {
		c.Error(err)
		items = nil
	}
	if items == nil {
		items = []db.MediaItem{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
