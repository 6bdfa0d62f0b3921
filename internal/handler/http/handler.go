package http

import (
	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/internal/service"
	"github.com/MKhiriev/go-help-crypt/internal/store"
)

type Handler struct {
	services *service.Services
	oplog    store.OperationLogRepository

	version string
	chainID uint64

	logger *logger.Logger
}

func NewHandler(services *service.Services, oplog store.OperationLogRepository, version string, chainID uint64, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		oplog:    oplog,
		version:  version,
		chainID:  chainID,
		logger:   logger,
	}
}
