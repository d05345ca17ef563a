package controllers

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lareserve-backend/pkg/resp"
	"lareserve-backend/pkg/storage"
)

type UploadController struct {
	Store storage.Store
}

func NewUploadController(store storage.Store) *UploadController {
	return &UploadController{Store: store}
}

// POST /admin/uploads/:bucket takes a multipart form with a "file" part and an
// optional "path". Size and MIME type are not checked here; the UI documents
// the limits but nothing enforces them yet.
// TODO: enforce upload size/type limits once the policy is decided.
func (ctl *UploadController) Upload(c *gin.Context) {
	bucket := c.Param("bucket")
	if !storage.ValidBucket(bucket) {
		resp.BadRequest(c, "unknown bucket")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "missing file")
		return
	}

	path := c.PostForm("path")
	if path == "" {
		path = uuid.NewString() + filepath.Ext(fileHeader.Filename)
	}

	f, err := fileHeader.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	key, err := ctl.Store.Save(c.Request.Context(), bucket, path, f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"bucket":     bucket,
		"path":       key,
		"public_url": ctl.Store.PublicURL(bucket, key),
	})
}
