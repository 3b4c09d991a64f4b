package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"courseboard/core"
	"courseboard/core/student"
)

var studentSortColumns = []string{"student_id", "name", "email", "created_at"}

func registerStudentAPI(g *echo.Group, svc *student.Service) {
	h := studentHandler{svc: svc}
	g.Any("/students", h.dispatch)
}

type studentHandler struct {
	svc *student.Service
}

func (h *studentHandler) dispatch(ctx echo.Context) error {
	switch ctx.Request().Method {
	case http.MethodGet:
		if id := ctx.QueryParam("student_id"); id != "" {
			return h.get(ctx, id)
		}
		return h.list(ctx)
	case http.MethodPost:
		if ctx.QueryParam("action") == "change_password" {
			return h.changePassword(ctx)
		}
		return h.create(ctx)
	case http.MethodPut:
		return h.update(ctx)
	case http.MethodDelete:
		return h.delete(ctx)
	}
	return errMethodNotAllowed
}

func (h *studentHandler) list(ctx echo.Context) error {
	filter := bindFilter(ctx,
		core.DBOrdering{Field: "created_at", Ascending: true},
		studentSortColumns...,
	)
	students, err := h.svc.Query(filter)
	if err != nil {
		return err
	}
	// admin pages show a total alongside the rows
	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    students,
		"count":   len(students),
	})
}

func (h *studentHandler) get(ctx echo.Context, id string) error {
	stu, err := h.svc.GetByID(id)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, stu)
}

func (h *studentHandler) create(ctx echo.Context) error {
	var ns student.NewStudent
	if err := ctx.Bind(&ns); err != nil {
		return err
	}
	if err := ns.Validate(); err != nil {
		return err
	}
	stu, err := h.svc.Create(ns)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusCreated, stu)
}

func (h *studentHandler) update(ctx echo.Context) error {
	var us student.UpdateStudent
	if err := ctx.Bind(&us); err != nil {
		return err
	}
	if err := us.Validate(); err != nil {
		return err
	}
	stu, err := h.svc.Update(us)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, stu)
}

func (h *studentHandler) delete(ctx echo.Context) error {
	id := queryOrBodyParam(ctx, "student_id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "student_id is required")
	}
	if err := h.svc.Delete(id); err != nil {
		return err
	}
	return respondMessage(ctx, http.StatusOK, "Student deleted")
}

func (h *studentHandler) changePassword(ctx echo.Context) error {
	var cp student.ChangePassword
	if err := ctx.Bind(&cp); err != nil {
		return err
	}
	if err := cp.Validate(); err != nil {
		return err
	}
	if err := h.svc.ChangePassword(cp); err != nil {
		return err
	}
	return respondMessage(ctx, http.StatusOK, "Password updated")
}
