package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-desk.com/task-desk/internal/data_models"
	middleware "task-desk.com/task-desk/internal/http/middlewares"
	"task-desk.com/task-desk/internal/http/validators"
	"task-desk.com/task-desk/internal/services"
)

type FileHandler struct {
	fileService *services.FileService
}

func NewFileHandler(fileService *services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

func (h *FileHandler) RegisterFile(c echo.Context) error {
	var req dto.RegisterFileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateRegisterFileRequest(&req); err != nil {
		return err
	}

	actor := middleware.CurrentUserFrom(c)

	resp, err := h.fileService.Register(c.Request().Context(), actor, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, resp)
}
