package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Community_Hub/internal/service"
)

type UploadHandler struct {
	svc *service.UploadService
}

func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload accepts one multipart image and relays it to the media host.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "file required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "file unreadable"})
		return
	}
	defer file.Close()

	folder := c.PostForm("folder")
	res, err := h.svc.Upload(c.Request.Context(), fileHeader.Filename, file, folder)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	c.JSON(http.StatusOK, res)
}
