package http

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/polyplus/inventory-api/internal/application/dto"
	"github.com/polyplus/inventory-api/internal/application/images"
)

// ImageHandler serves the product-image routes: upload, listing, deletion,
// signed URLs and photo-reference resolution. Storage is the S3 adapter in
// production.
type ImageHandler struct {
	storage  images.Storage
	resolver *images.Resolver
	prefix   string
}

// NewImageHandler builds the handler. prefix scopes the file listing, e.g.
// "uploads/".
func NewImageHandler(storage images.Storage, resolver *images.Resolver, prefix string) *ImageHandler {
	return &ImageHandler{storage: storage, resolver: resolver, prefix: prefix}
}

// FileURL handles GET /images/file-url?key= — a 1-hour signed GET URL for a
// key in the private bucket.
func (h *ImageHandler) FileURL(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "missing 'key' query param"})
	}
	signed, err := h.storage.SignedGetURL(c.Context(), key)
	if err != nil {
		return respondError(c, err, "generate signed URL")
	}
	return c.JSON(fiber.Map{"url": signed})
}

// ResolveRef handles GET /images/resolve?ref= — maps a stored photo
// reference (public URL, private bucket URL or bare key) to a displayable
// URL.
func (h *ImageHandler) ResolveRef(c *fiber.Ctx) error {
	ref := c.Query("ref")
	if ref == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "missing 'ref' query param"})
	}
	resolved, err := h.resolver.Resolve(c.Context(), ref)
	if err != nil {
		return respondError(c, err, "resolve image reference")
	}
	return c.JSON(fiber.Map{"url": resolved})
}

// Files handles GET /images/files — lists uploaded images.
func (h *ImageHandler) Files(c *fiber.Ctx) error {
	files, err := h.storage.List(c.Context(), h.prefix)
	if err != nil {
		return respondError(c, err, "list files")
	}
	return c.JSON(fiber.Map{"files": files})
}

// Upload handles POST /images/upload/:storeId with a multipart "image" part.
// Keys are namespaced per store and timestamped to stay unique.
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no file provided"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err, "upload image")
	}
	defer file.Close()

	key := fmt.Sprintf("%s/uploads/%d-%s", c.Params("storeId"), time.Now().UnixMilli(), fileHeader.Filename)
	publicURL, err := h.storage.Upload(c.Context(), key, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return respondError(c, err, "upload image")
	}
	return c.JSON(fiber.Map{"message": "Uploaded", "key": key, "url": publicURL})
}

// Delete handles DELETE /images/file/:key (key percent-encoded).
func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	key, err := url.QueryUnescape(c.Params("key"))
	if err != nil || key == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid key"})
	}
	if err := h.storage.Delete(c.Context(), key); err != nil {
		return respondError(c, err, "delete file")
	}
	return c.JSON(fiber.Map{"message": "Deleted", "key": key})
}
