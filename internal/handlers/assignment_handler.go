package handlers

import (
	"errors"
	"log"
	"time"

	"assignments/internal/models"
	"assignments/internal/repositories"
	"assignments/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AssignmentHandler handles HTTP requests for assignments. The service it
// wraps was wired with one of the two store variants at startup; the handler
// cannot tell which.
type AssignmentHandler struct {
	service  *services.AssignmentService
	validate *validator.Validate
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(service *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the assignment CRUD routes with the Fiber app.
func (h *AssignmentHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/assignments")
	routes.Get("/", h.HandleList)
	routes.Get("/:id", h.HandleGet)
	routes.Post("/", h.HandleCreate)
	routes.Put("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

// CreateAssignmentRequest represents the request body for creation.
type CreateAssignmentRequest struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description"`
	CreationDate *time.Time `json:"creation_date"`
	DueDate      *time.Time `json:"due_date"`
	Status       string     `json:"status"`
}

// UpdateAssignmentRequest represents the request body for a partial update.
type UpdateAssignmentRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
}

// HandleList retrieves all assignments. Zero rows is a 200 with an empty array.
func (h *AssignmentHandler) HandleList(c *fiber.Ctx) error {
	assignments, err := h.service.GetAll(c.Context())
	if err != nil {
		log.Printf("Error getting all assignments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve assignments",
		})
	}
	return c.JSON(assignments)
}

// HandleGet retrieves a single assignment by its id.
func (h *AssignmentHandler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Assignment id must be an integer",
		})
	}

	assignment, err := h.service.GetByID(c.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Assignment not found",
		})
	}
	if err != nil {
		log.Printf("Error getting assignment %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve assignment",
		})
	}
	return c.JSON(assignment)
}

// HandleCreate creates a new assignment. A missing or empty title is rejected
// with field-level detail.
func (h *AssignmentHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create assignment body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	assignment := models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
	}
	if req.CreationDate != nil {
		assignment.CreationDate = *req.CreationDate
	}

	created, err := h.service.Create(c.Context(), &assignment)
	if err != nil {
		log.Printf("Error creating assignment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create assignment",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdate applies a partial update: empty title/description/status leave
// the stored values untouched, while the due date is always written through.
func (h *AssignmentHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Assignment id must be an integer",
		})
	}

	var req UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update assignment body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	update := services.AssignmentUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	}

	err = h.service.Update(c.Context(), id, update)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Assignment not found",
		})
	}
	if err != nil {
		log.Printf("Error updating assignment %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update assignment",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDelete removes an assignment by its id.
func (h *AssignmentHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Assignment id must be an integer",
		})
	}

	err = h.service.Delete(c.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Assignment not found",
		})
	}
	if err != nil {
		log.Printf("Error deleting assignment %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete assignment",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
