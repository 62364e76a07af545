package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/userhub/user-management-api/internal/api/metrics"
	"github.com/userhub/user-management-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the user resource.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// pathID validates the :id path parameter against the store's identifier
// format before any service call.
func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if !primitive.IsValidObjectID(id) {
		return "", &ValidationError{Fields: []FieldError{
			{Field: "id", Message: "Invalid user ID format"},
		}}
	}
	return id, nil
}

// Create handles POST /users.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.Inc()

	return success(c, http.StatusCreated, "User created successfully", echo.Map{
		"user": toUserResponse(user),
	})
}

// List handles GET /users with pagination, filtering, and sorting.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size, 1-100 (default 10)"
// @Param        ageMin     query     int     false  "Minimum age, inclusive"
// @Param        ageMax     query     int     false  "Maximum age, inclusive"
// @Param        search     query     string  false  "Substring match on name or email"
// @Param        sortBy     query     string  false  "name | email | age | createdAt"
// @Param        sortOrder  query     string  false  "asc | desc"
// @Success      200        {object}  Envelope
// @Failure      400        {object}  Envelope
// @Failure      401        {object}  Envelope
// @Failure      403        {object}  Envelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	input, verr := parseListQuery(c)
	if verr != nil {
		return verr
	}

	result, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Users retrieved successfully", echo.Map{
		"users":      toUserSummaries(result.Users),
		"pagination": result.Pagination,
		"filters":    toListFilters(input),
	})
}

// Get handles GET /users/:id.
//
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "User retrieved successfully", echo.Map{
		"user": toUserResponse(user),
	})
}

// Update handles PUT /users/:id with partial update semantics.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "User updated successfully", echo.Map{
		"user": toUserResponse(user),
	})
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "User deleted successfully", echo.Map{
		"deletedUser": deletedUserResponse{ID: deleted.ID, Name: deleted.Name, Email: deleted.Email},
	})
}

// Stats handles GET /users/stats.
//
// @Summary      Get user statistics
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Router       /users/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "User statistics retrieved successfully", echo.Map{
		"overview":        stats.Overview,
		"ageDistribution": stats.AgeDistribution,
	})
}
