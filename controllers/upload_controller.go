package controllers

import (
	"strings"

	"slime-shop/libs"
	"slime-shop/models"
	"slime-shop/utils"

	"github.com/gin-gonic/gin"
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// @Summary Upload product image
// @Description Upload an image for use in a product's images list (admin). Pushed to Cloudinary when configured, kept on local disk otherwise.
// @Tags Admin - Uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Router /api/uploads [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, models.ErrorResponse{Message: "Image file is required"})
		return
	}

	localPath, err := utils.UploadFile(c, file, "products")
	if err != nil {
		c.JSON(400, models.ErrorResponse{Message: err.Error()})
		return
	}

	url := "/" + strings.TrimPrefix(localPath, "./")
	if libs.Configured() {
		hosted, err := libs.UploadToCloudinary(c.Request.Context(), localPath)
		if err != nil {
			c.JSON(502, models.ErrorResponse{Message: "Image upload to host failed"})
			return
		}
		url = hosted
	}

	c.JSON(201, gin.H{"url": url})
}
