package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"courseboard/core"
	"courseboard/core/discussion"
)

var topicSortColumns = []string{"subject", "author", "created_at"}

func registerDiscussionAPI(g *echo.Group, svc *discussion.Service) {
	h := discussionHandler{svc: svc}
	g.Any("/discussion", h.dispatch)
}

type discussionHandler struct {
	svc *discussion.Service
}

func (h *discussionHandler) dispatch(ctx echo.Context) error {
	switch ctx.QueryParam("resource") {
	case "", "topics":
		return h.dispatchTopics(ctx)
	case "replies":
		return h.dispatchReplies(ctx)
	}
	return errInvalidResource
}

func (h *discussionHandler) dispatchTopics(ctx echo.Context) error {
	switch ctx.Request().Method {
	case http.MethodGet:
		if id := ctx.QueryParam("topic_id"); id != "" {
			return h.getTopic(ctx, id)
		}
		return h.listTopics(ctx)
	case http.MethodPost:
		return h.createTopic(ctx)
	case http.MethodPut:
		return h.updateTopic(ctx)
	case http.MethodDelete:
		return h.deleteTopic(ctx)
	}
	return errMethodNotAllowed
}

func (h *discussionHandler) dispatchReplies(ctx echo.Context) error {
	switch ctx.Request().Method {
	case http.MethodGet:
		return h.listReplies(ctx)
	case http.MethodPost:
		return h.createReply(ctx)
	case http.MethodDelete:
		return h.deleteReply(ctx)
	}
	return errMethodNotAllowed
}

func (h *discussionHandler) listTopics(ctx echo.Context) error {
	// boards show newest topics first
	filter := bindFilter(ctx,
		core.DBOrdering{Field: "created_at", Ascending: false},
		topicSortColumns...,
	)
	topics, err := h.svc.QueryTopics(filter)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, topics)
}

func (h *discussionHandler) getTopic(ctx echo.Context, id string) error {
	t, err := h.svc.GetTopic(id)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, t)
}

func (h *discussionHandler) createTopic(ctx echo.Context) error {
	var nt discussion.NewTopic
	if err := ctx.Bind(&nt); err != nil {
		return err
	}
	if err := nt.Validate(); err != nil {
		return err
	}
	t, err := h.svc.CreateTopic(nt)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusCreated, t)
}

func (h *discussionHandler) updateTopic(ctx echo.Context) error {
	var ut discussion.UpdateTopic
	if err := ctx.Bind(&ut); err != nil {
		return err
	}
	if err := ut.Validate(); err != nil {
		return err
	}
	t, err := h.svc.UpdateTopic(ut)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, t)
}

func (h *discussionHandler) deleteTopic(ctx echo.Context) error {
	id := queryOrBodyParam(ctx, "topic_id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "topic_id is required")
	}
	if err := h.svc.DeleteTopic(id); err != nil {
		return err
	}
	return respondMessage(ctx, http.StatusOK, "Topic deleted")
}

func (h *discussionHandler) listReplies(ctx echo.Context) error {
	topicID := ctx.QueryParam("topic_id")
	if topicID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "topic_id is required")
	}
	replies, err := h.svc.QueryReplies(topicID)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusOK, replies)
}

func (h *discussionHandler) createReply(ctx echo.Context) error {
	var nr discussion.NewReply
	if err := ctx.Bind(&nr); err != nil {
		return err
	}
	if err := nr.Validate(); err != nil {
		return err
	}
	r, err := h.svc.CreateReply(nr)
	if err != nil {
		return err
	}
	return respondData(ctx, http.StatusCreated, r)
}

func (h *discussionHandler) deleteReply(ctx echo.Context) error {
	id := queryOrBodyParam(ctx, "reply_id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reply_id is required")
	}
	if err := h.svc.DeleteReply(id); err != nil {
		return err
	}
	return respondMessage(ctx, http.StatusOK, "Reply deleted")
}
