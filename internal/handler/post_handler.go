package handler

import (
	"net/http"
	"strconv"

	"ripple/internal/middleware"
	"ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

type createPostRequest struct {
	Content string `json:"content" binding:"max=280"`
}

// Create stores a new post owned by the caller. Content may be empty;
// any client-supplied owner field is ignored.
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}
	view, err := h.svc.Create(middleware.GetUserID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *PostHandler) List(c *gin.Context) {
	p := parsePage(c)
	views, total, err := h.svc.List(middleware.GetUserID(c), p.Size, p.Offset())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginated(c, total, p, views))
}

func (h *PostHandler) Feed(c *gin.Context) {
	p := parsePage(c)
	views, total, err := h.svc.Feed(middleware.GetUserID(c), p.Size, p.Offset())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginated(c, total, p, views))
}

func (h *PostHandler) ByUser(c *gin.Context) {
	p := parsePage(c)
	views, total, err := h.svc.ByUser(c.Param("username"), middleware.GetUserID(c), p.Size, p.Offset())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginated(c, total, p, views))
}

func (h *PostHandler) Bookmarked(c *gin.Context) {
	p := parsePage(c)
	views, total, err := h.svc.Bookmarked(middleware.GetUserID(c), p.Size, p.Offset())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginated(c, total, p, views))
}

// ToggleLike flips the caller's like on the post. Status-only response.
func (h *PostHandler) ToggleLike(c *gin.Context) {
	postID, ok := postParam(c)
	if !ok {
		return
	}
	if _, err := h.svc.ToggleLike(middleware.GetUserID(c), postID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleBookmark flips the caller's bookmark on the post.
func (h *PostHandler) ToggleBookmark(c *gin.Context) {
	postID, ok := postParam(c)
	if !ok {
		return
	}
	if _, err := h.svc.ToggleBookmark(middleware.GetUserID(c), postID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleRepost creates the caller's repost of the target (201) or
// removes an existing one (204).
func (h *PostHandler) ToggleRepost(c *gin.Context) {
	postID, ok := postParam(c)
	if !ok {
		return
	}
	created, err := h.svc.ToggleRepost(middleware.GetUserID(c), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"detail": "Repost created"})
		return
	}
	c.Status(http.StatusNoContent)
}

// MostLiked returns the top 4 posts by like count.
func (h *PostHandler) MostLiked(c *gin.Context) {
	views, err := h.svc.MostLiked(middleware.GetUserID(c), 4)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func postParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
		return 0, false
	}
	return uint(id), true
}
