package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/api/metrics"
	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// TodoHandler handles the todo CRUD endpoints. All routes sit behind the Auth
// middleware; the caller's identity comes from the context, never the body.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// todoID validates the :id path parameter before any storage work. Non-UUID
// ids are a 400, keeping "bad id" distinct from "no such row".
func todoID(c echo.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", domain.Validationf("invalid todo id")
	}
	return id, nil
}

// List returns the caller's todos, newest first.
//
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listTodosResponse
// @Failure      401  {object}  errorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	todos, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}

	data := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		data = append(data, toTodoResponse(t))
	}
	return c.JSON(http.StatusOK, listTodosResponse{Data: data, Count: len(data)})
}

// Create adds a todo owned by the caller.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTodoRequest  true  "Todo details"
// @Success      201   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	todo, err := h.service.Create(c.Request().Context(), user, req.Title, req.Description)
	if err != nil {
		return err
	}

	metrics.TodosCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTodoResponse(todo))
}

// Get returns a single todo owned by the caller.
//
// @Summary      Get a todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo id (UUID)"
// @Success      200  {object}  todoResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := todoID(c)
	if err != nil {
		return err
	}

	todo, err := h.service.Get(c.Request().Context(), user, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Update applies a partial update to a todo owned by the caller.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Todo id (UUID)"
// @Param        body  body      updateTodoRequest  true  "Fields to change"
// @Success      200   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /todos/{id} [patch]
func (h *TodoHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := todoID(c)
	if err != nil {
		return err
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	todo, err := h.service.Update(c.Request().Context(), user, id, ports.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		IsComplete:  req.IsComplete,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Toggle flips a todo's completion state.
//
// @Summary      Toggle completion
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo id (UUID)"
// @Success      200  {object}  todoResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /todos/{id}/toggle [post]
func (h *TodoHandler) Toggle(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := todoID(c)
	if err != nil {
		return err
	}

	todo, err := h.service.Toggle(c.Request().Context(), user, id)
	if err != nil {
		return err
	}

	state := "incomplete"
	if todo.IsComplete {
		state = "complete"
	}
	metrics.TodosToggledTotal.WithLabelValues(state).Inc()
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Delete removes a todo owned by the caller.
//
// @Summary      Delete a todo
// @Tags         todos
// @Security     BearerAuth
// @Param        id  path  string  true  "Todo id (UUID)"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := todoID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user, id); err != nil {
		return err
	}

	metrics.TodosDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
