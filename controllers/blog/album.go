package blog

import (
	"pet-blog-api/inout"
	"pet-blog-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetAlbums 获取公开相册分页列表
func GetAlbums(c *gin.Context) {
	page := parseIntQuery(c, "page")
	limit := parseIntQuery(c, "limit")

	data, err := albumService.List(c.Request.Context(), page, limit)
	if err != nil {
		response.FromError(c, err, "Album not found")
		return
	}
	response.JSON(c, data)
}

// GetAlbum 获取相册详情
func GetAlbum(c *gin.Context) {
	album, err := albumService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "Album not found")
		return
	}
	response.JSON(c, album)
}

// CreateAlbum 创建相册
func CreateAlbum(c *gin.Context) {
	var req inout.CreateAlbumReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindError(err))
		return
	}

	album, err := albumService.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err, "Album not found")
		return
	}
	response.Created(c, album)
}

// UpdateAlbum 更新相册
func UpdateAlbum(c *gin.Context) {
	var req inout.UpdateAlbumReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindError(err))
		return
	}

	album, err := albumService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err, "Album not found")
		return
	}
	response.JSON(c, album)
}

// DeleteAlbum 删除相册
func DeleteAlbum(c *gin.Context) {
	if err := albumService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err, "Album not found")
		return
	}
	response.Message(c, "Album deleted successfully")
}

// AddAlbumImage 向相册追加图片
func AddAlbumImage(c *gin.Context) {
	var req inout.AddAlbumImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindError(err))
		return
	}

	album, err := albumService.AppendImage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err, "Album not found")
		return
	}
	response.JSON(c, album)
}

// RemoveAlbumImage 从相册移除图片
func RemoveAlbumImage(c *gin.Context) {
	album, err := albumService.RemoveImage(c.Request.Context(), c.Param("id"), c.Param("imageId"))
	if err != nil {
		response.FromError(c, err, "Album not found")
		return
	}
	response.JSON(c, album)
}
