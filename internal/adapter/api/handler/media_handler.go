package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"mediavault/internal/domain/entity"
	"mediavault/internal/domain/service"
	"mediavault/internal/infrastructure/storage"
	"mediavault/internal/usecase"
	"mediavault/pkg/errors"
	"mediavault/pkg/logger"
	"mediavault/pkg/response"
)

type MediaHandler struct {
	mediaUseCase   *usecase.MediaUseCase
	storageService service.MediaStorageService
	maxUploadSize  int64
}

func NewMediaHandler(mediaUseCase *usecase.MediaUseCase, storageService service.MediaStorageService, maxUploadSize int64) *MediaHandler {
	return &MediaHandler{
		mediaUseCase:   mediaUseCase,
		storageService: storageService,
		maxUploadSize:  maxUploadSize,
	}
}

func (h *MediaHandler) UploadMedia(c echo.Context) error {
	logger.Debug("Starting media upload handler")

	file, err := c.FormFile("file")
	if err != nil {
		logger.Error("Error getting file from form: %v", err)
		return response.Error(c, errors.BadRequest("File upload failed", err))
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	if title == "" || description == "" {
		return response.Error(c, errors.BadRequest("Title and description are required", nil))
	}

	if file.Size > h.maxUploadSize {
		logger.Warn("File too large: %d bytes (max: %d)", file.Size, h.maxUploadSize)
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxUploadSize/(1024*1024)), nil))
	}

	contentType := file.Header.Get("Content-Type")
	mediaType, ok := mediaTypeFor(contentType)
	if !ok {
		logger.Warn("Rejected upload with content type: %s", contentType)
		return response.Error(c, errors.BadRequest("Only audio and video uploads are supported", nil))
	}

	logger.Debug("Received file: %s, size: %d bytes, type: %s", file.Filename, file.Size, contentType)

	src, err := file.Open()
	if err != nil {
		logger.Error("Error opening file: %v", err)
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	objectName := storage.ObjectKey(file.Filename)

	url, err := h.storageService.UploadMedia(c.Request().Context(), src, contentType, objectName)
	if err != nil {
		logger.Error("Error from storage client: %v", err)
		return response.Error(c, errors.Internal("Failed to upload file", err))
	}
	logger.Debug("Storage client returned URL: %s, objectName: %s", url, objectName)

	media, err := h.mediaUseCase.CreateMedia(c.Request().Context(), usecase.CreateMediaInput{
		Title:       title,
		Description: description,
		URL:         url,
		ObjectName:  objectName,
		Type:        mediaType,
		UploadedBy:  getUserIDFromContext(c),
	})
	if err != nil {
		// The object stays in storage with no compensating delete; the
		// orphan is logged rather than masked.
		logger.Error("Failed to save media metadata for object %s: %v", objectName, err)
		return response.Error(c, err)
	}

	return response.Success(c, media)
}

func (h *MediaHandler) ListMedia(c echo.Context) error {
	mediaList, err := h.mediaUseCase.ListMedia(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list media: %v", err)
		return response.Error(c, err)
	}

	return response.Success(c, mediaList)
}

func (h *MediaHandler) ListMyMedia(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	mediaList, err := h.mediaUseCase.ListMediaByUploader(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list media for user %s: %v", userID, err)
		return response.Error(c, err)
	}

	return response.Success(c, mediaList)
}

func (h *MediaHandler) GetMedia(c echo.Context) error {
	mediaID := c.Param("id")
	if mediaID == "" {
		return response.Error(c, errors.BadRequest("Media ID is required", nil))
	}

	media, err := h.mediaUseCase.GetMedia(c.Request().Context(), mediaID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, media)
}

func (h *MediaHandler) StreamMedia(c echo.Context) error {
	mediaID := c.Param("id")
	if mediaID == "" {
		return response.Error(c, errors.BadRequest("Media ID is required", nil))
	}

	media, err := h.mediaUseCase.GetMedia(c.Request().Context(), mediaID)
	if err != nil {
		return response.Error(c, err)
	}

	contentType, size, err := h.storageService.StatMedia(c.Request().Context(), media.ObjectName)
	if err != nil {
		logger.Error("Failed to stat object %s: %v", media.ObjectName, err)
		return response.Error(c, errors.Internal("Failed to retrieve file", err))
	}

	c.Response().Header().Set("Content-Type", contentType)
	c.Response().Header().Set("Accept-Ranges", "bytes")

	if rangeHeader := c.Request().Header.Get("Range"); rangeHeader != "" {
		if start, end, ok := resolveRange(rangeHeader, size); ok {
			if start < 0 {
				c.Response().Header().Set("Content-Range", fmt.Sprintf("bytes */%d", size))
				return c.NoContent(http.StatusRequestedRangeNotSatisfiable)
			}
			return h.streamRange(c, media, start, end, size)
		}
		// Malformed or multi-part ranges fall through to a full response.
	}

	reader, err := h.storageService.GetMedia(c.Request().Context(), media.ObjectName)
	if err != nil {
		logger.Error("Failed to get object %s: %v", media.ObjectName, err)
		return response.Error(c, errors.Internal("Failed to retrieve file", err))
	}
	defer reader.Close()

	c.Response().Header().Set("Content-Length", strconv.FormatInt(size, 10))
	c.Response().WriteHeader(http.StatusOK)

	if _, err := io.Copy(c.Response().Writer, reader); err != nil {
		logger.Error("Failed to stream media content: %v", err)
		return err
	}

	return nil
}

func (h *MediaHandler) streamRange(c echo.Context, media *entity.Media, start, end, size int64) error {
	length := end - start + 1

	reader, err := h.storageService.GetMediaRange(c.Request().Context(), media.ObjectName, start, length)
	if err != nil {
		logger.Error("Failed to get object range %s [%d-%d]: %v", media.ObjectName, start, end, err)
		return response.Error(c, errors.Internal("Failed to retrieve file", err))
	}
	defer reader.Close()

	c.Response().Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, size))
	c.Response().Header().Set("Content-Length", strconv.FormatInt(length, 10))
	c.Response().WriteHeader(http.StatusPartialContent)

	if _, err := io.Copy(c.Response().Writer, reader); err != nil {
		logger.Error("Failed to stream media range: %v", err)
		return err
	}

	return nil
}

func (h *MediaHandler) LikeMedia(c echo.Context) error {
	mediaID := c.Param("id")
	if mediaID == "" {
		return response.Error(c, errors.BadRequest("Media ID is required", nil))
	}

	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	likes, err := h.mediaUseCase.LikeMedia(c.Request().Context(), mediaID, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Liked successfully",
		"likes":   likes,
	})
}

func (h *MediaHandler) UnlikeMedia(c echo.Context) error {
	mediaID := c.Param("id")
	if mediaID == "" {
		return response.Error(c, errors.BadRequest("Media ID is required", nil))
	}

	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	likes, err := h.mediaUseCase.UnlikeMedia(c.Request().Context(), mediaID, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Unliked successfully",
		"likes":   likes,
	})
}

func getUserIDFromContext(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

// mediaTypeFor classifies a declared MIME type. Anything that is neither audio
// nor video is rejected instead of being lumped into audio.
func mediaTypeFor(contentType string) (entity.MediaType, bool) {
	switch {
	case strings.HasPrefix(contentType, "video"):
		return entity.MediaTypeVideo, true
	case strings.HasPrefix(contentType, "audio"):
		return entity.MediaTypeAudio, true
	default:
		return "", false
	}
}

// resolveRange parses a single "bytes=start-end" Range header against the
// object size. ok reports a well-formed single range; a well-formed but
// unsatisfiable range yields start == -1.
func resolveRange(header string, size int64) (start, end int64, ok bool) {
	const prefix = "bytes="
	if !strings.HasPrefix(header, prefix) {
		return 0, 0, false
	}

	spec := strings.TrimPrefix(header, prefix)
	if strings.Contains(spec, ",") {
		// Multi-part ranges are not supported.
		return 0, 0, false
	}

	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	if parts[0] == "" {
		// Suffix range: last N bytes.
		n, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil || n <= 0 {
			return 0, 0, false
		}
		if size == 0 {
			return -1, -1, true
		}
		if n > size {
			n = size
		}
		return size - n, size - 1, true
	}

	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || start < 0 {
		return 0, 0, false
	}

	if parts[1] == "" {
		end = size - 1
	} else {
		end, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil || end < start {
			return 0, 0, false
		}
		if end > size-1 {
			end = size - 1
		}
	}

	if start >= size {
		return -1, -1, true
	}

	return start, end, true
}
