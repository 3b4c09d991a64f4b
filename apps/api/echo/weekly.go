package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"courseboard/core"
	"courseboard/core/weekly"
)

var weekSortColumns = []string{"title", "start_date", "created_at", "updated_at"}

func registerWeeklyAPI(g *echo.Group, svc *weekly.Service) {
	h := weeklyHandler{svc: svc}
	g.Any("/weekly", h.dispatch)
}

type weeklyHandler struct {
	svc *weekly.Service
}

func (h *weeklyHandler) dispatch(ctx echo.Context) error {
	switch ctx.QueryParam("resource") {
	case "", "weeks":
		return h.dispatchWeeks(ctx)
	case "comments":
		return h.dispatchComments(ctx)
	}
	return errInvalidResource
}

func (h *weeklyHandler) dispatchWeeks(ctx echo.Context) error {
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

func (h *weeklyHandler) dispatchComments(ctx echo.Context) error {
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

func (h *weeklyHandler) list(ctx echo.Context) error {
	filter := bindFilter(ctx,
		core.DBOrdering{Field: "start_date", Ascending: true},
		weekSortColumns...,
	)
	weeks, err := h.svc.Query(filter)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, weeks)
}

func (h *weeklyHandler) get(ctx echo.Context, raw string) error {
	id := intParam(raw)
	if id == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	w, err := h.svc.GetByID(id)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, w)
}

func (h *weeklyHandler) create(ctx echo.Context) error {
	var nw weekly.NewWeek
	if err := ctx.Bind(&nw); err != nil {
		return err
	}
	if err := nw.Validate(); err != nil {
		return err
	}
	w, err := h.svc.Create(nw)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusCreated, w)
}

func (h *weeklyHandler) update(ctx echo.Context) error {
	var uw weekly.UpdateWeek
	if err := ctx.Bind(&uw); err != nil {
		return err
	}
	if err := uw.Validate(); err != nil {
		return err
	}
	w, err := h.svc.Update(uw)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, w)
}

func (h *weeklyHandler) delete(ctx echo.Context) error {
	id := intParam(queryOrBodyParam(ctx, "id"))
	if id == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	if err := h.svc.Delete(id); err != nil {
		return err
	}
	return respondMessage(ctx, http.StatusOK, "Week deleted")
}

func (h *weeklyHandler) listComments(ctx echo.Context) error {
	weekID := intParam(ctx.QueryParam("week_id"))
	if weekID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "week_id is required")
	}
	comments, err := h.svc.QueryComments(weekID)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, comments)
}

func (h *weeklyHandler) createComment(ctx echo.Context) error {
	var nc weekly.NewComment
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

func (h *weeklyHandler) deleteComment(ctx echo.Context) error {
	id := intParam(queryOrBodyParam(ctx, "id"))
	if id == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	if err := h.svc.DeleteComment(id); err != nil {
		return err
	}
	return respondMessage(ctx, http.StatusOK, "Comment deleted")
}
