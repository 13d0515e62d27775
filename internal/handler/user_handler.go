package handler

import (
	"net/http"
	"strconv"
	"strings"

	"ripple/internal/middleware"
	"ripple/internal/service"
	"ripple/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	svc   *service.UserService
	cloud cloudinary.Client
}

func NewUserHandler(svc *service.UserService, cloud cloudinary.Client) *UserHandler {
	return &UserHandler{svc: svc, cloud: cloud}
}

func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.svc.Me(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
	Avatar    *string `json:"avatar"`
}

// UpdateMe applies a partial profile update. JSON bodies patch the text
// fields; multipart bodies may additionally carry an avatar image, which
// is uploaded to media storage.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var in service.UpdateProfileInput

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if v, ok := c.GetPostForm("first_name"); ok {
			in.FirstName = &v
		}
		if v, ok := c.GetPostForm("last_name"); ok {
			in.LastName = &v
		}
		if v, ok := c.GetPostForm("username"); ok {
			in.Username = &v
		}
		if file, err := c.FormFile("avatar"); err == nil {
			if h.cloud == nil {
				c.JSON(http.StatusBadRequest, gin.H{"avatar": []string{"avatar uploads are not enabled"}})
				return
			}
			f, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"avatar": []string{"could not read uploaded file"}})
				return
			}
			defer f.Close()
			url, err := h.cloud.UploadImage(c.Request.Context(), f, "avatars", uuid.NewString())
			if err != nil {
				respondError(c, err)
				return
			}
			in.AvatarURL = &url
		}
	} else {
		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, bindingErrors(err))
			return
		}
		in.FirstName = req.FirstName
		in.LastName = req.LastName
		in.Username = req.Username
		in.AvatarURL = req.Avatar
	}

	profile, err := h.svc.UpdateMe(userID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) PublicProfile(c *gin.Context) {
	profile, err := h.svc.PublicProfile(c.Param("username"), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) Followers(c *gin.Context) {
	list, err := h.svc.Followers(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *UserHandler) Following(c *gin.Context) {
	list, err := h.svc.Following(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ToggleFollow flips the follow edge toward the target user: 201 when
// the edge was created, 204 when it was removed.
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
		return
	}
	followed, err := h.svc.ToggleFollow(middleware.GetUserID(c), uint(targetID))
	if err != nil {
		respondError(c, err)
		return
	}
	if followed {
		c.JSON(http.StatusCreated, gin.H{"detail": "Followed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// RandomProfiles returns 4 random users for the discovery sidebar.
func (h *UserHandler) RandomProfiles(c *gin.Context) {
	list, err := h.svc.RandomProfiles(4)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
