package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"courseboard/core"
	"courseboard/core/assignment"
)

var assignmentSortColumns = []string{"title", "due_date", "created_at", "updated_at"}

func registerAssignmentAPI(g *echo.Group, svc *assignment.Service) {
	h := assignmentHandler{svc: svc}
	g.Any("/assignments", h.dispatch)
}

type assignmentHandler struct {
	svc *assignment.Service
}

func (h *assignmentHandler) dispatch(ctx echo.Context) error {
	resource := ctx.QueryParam("resource")
	switch resource {
	case "", "assignments":
		return h.dispatchAssignments(ctx)
	case "comments":
		return h.dispatchComments(ctx)
	}
	return errInvalidResource
}

func (h *assignmentHandler) dispatchAssignments(ctx echo.Context) error {
	switch ctx.Request().Method {
	case http.MethodGet:
		if raw := ctx.QueryParam("id"); raw != "" {
			return h.get(ctx, raw)
		}
		return h.list(ctx)
	case http.MethodPost:
		return h.create(ctx)
	case http.MethodPut:
		return h.update(ctx)
	case http.MethodDelete:
		return h.delete(ctx)
	}
	return errMethodNotAllowed
}

func (h *assignmentHandler) dispatchComments(ctx echo.Context) error {
	switch ctx.Request().Method {
	case http.MethodGet:
		return h.listComments(ctx)
	case http.MethodPost:
		return h.createComment(ctx)
	case http.MethodDelete:
		return h.deleteComment(ctx)
	}
	return errMethodNotAllowed
}

func (h *assignmentHandler) list(ctx echo.Context) error {
	filter := bindFilter(ctx,
		core.DBOrdering{Field: "created_at", Ascending: true},
		assignmentSortColumns...,
	)
	assignments, err := h.svc.Query(filter)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, assignments)
}

func (h *assignmentHandler) get(ctx echo.Context, raw string) error {
	id := intParam(raw)
	if id == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	a, err := h.svc.GetByID(id)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, a)
}

func (h *assignmentHandler) create(ctx echo.Context) error {
	var na assignment.NewAssignment
	if err := ctx.Bind(&na); err != nil {
		return err
	}
	if err := na.Validate(); err != nil {
		return err
	}
	a, err := h.svc.Create(na)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusCreated, a)
}

func (h *assignmentHandler) update(ctx echo.Context) error {
	var ua assignment.UpdateAssignment
	if err := ctx.Bind(&ua); err != nil {
		return err
	}
	if err := ua.Validate(); err != nil {
		return err
	}
	a, err := h.svc.Update(ua)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, a)
}

func (h *assignmentHandler) delete(ctx echo.Context) error {
	id := intParam(queryOrBodyParam(ctx, "id"))
	if id == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	if err := h.svc.Delete(id); err != nil {
		return err
	}
	return respondMessage(ctx, http.StatusOK, "Assignment deleted")
}

func (h *assignmentHandler) listComments(ctx echo.Context) error {
	assignmentID := intParam(ctx.QueryParam("assignment_id"))
	if assignmentID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "assignment_id is required")
	}
	comments, err := h.svc.QueryComments(assignmentID)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, comments)
}

func (h *assignmentHandler) createComment(ctx echo.Context) error {
	var nc assignment.NewComment
	if err := ctx.Bind(&nc); err != nil {
		return err
	}
	if err := nc.Validate(); err != nil {
		return err
	}
	c, err := h.svc.CreateComment(nc)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusCreated, c)
}

func (h *assignmentHandler) deleteComment(ctx echo.Context) error {
	id := intParam(queryOrBodyParam(ctx, "id"))
	if id == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	if err := h.svc.DeleteComment(id); err != nil {
		return err
	}
	return respondMessage(ctx, http.StatusOK, "Comment deleted")
}
