package handler

import (
	"mediavault/internal/domain/service"
	"mediavault/internal/usecase"
)

var (
	mediaHandler  *MediaHandler
	healthHandler *HealthHandler
)

func Setup(
	mediaUseCase *usecase.MediaUseCase,
	storageService service.MediaStorageService,
	maxUploadSize int64,
) {
	mediaHandler = NewMediaHandler(mediaUseCase, storageService, maxUploadSize)
	healthHandler = NewHealthHandler()
}

func GetMediaHandler() *MediaHandler {
	return mediaHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
