package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bikeshop-api/internal/application/dto"
	"github.com/jhoicas/bikeshop-api/internal/application/usecase"
)

// BikeHandler maneja el catálogo de bicicletas.
type BikeHandler struct {
	uc *usecase.BikeUseCase
}

// NewBikeHandler construye el handler.
func NewBikeHandler(uc *usecase.BikeUseCase) *BikeHandler {
	return &BikeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear bicicleta
// @Tags         bikes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBikeRequest  true  "type (standard|electric), color"
// @Success      201   {object}  dto.BikeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/create-bike [post]
func (h *BikeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBikeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateBike(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener bicicleta por ID
// @Tags         bikes
// @Produce      json
// @Param        id   path  string  true  "ID de la bicicleta"
// @Success      200  {object}  dto.BikeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bikes/{id} [get]
func (h *BikeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "bicicleta")
	}
	return c.JSON(out)
}
