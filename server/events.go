package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/existflow/ironcal/internal/db"
	"github.com/existflow/ironcal/internal/logger"
	"github.com/existflow/ironcal/internal/model"
	"github.com/existflow/ironcal/internal/schedule"
	"github.com/existflow/ironcal/internal/validate"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const overlapMessage = "Event overlaps with existing event"

// eventFromInput builds a storable event from a normalized payload,
// applying defaults for the optional fields.
func eventFromInput(id string, in validate.Input) model.Event {
	color := in.Color
	if color == "" {
		color = model.DefaultColor
	}

	return model.Event{
		ID:             id,
		Title:          in.Title,
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Description:    in.Description,
		Location:       in.Location,
		Color:          color,
		IsRecurring:    in.IsRecurring,
		RecurrenceRule: in.RecurrenceRule,
	}
}

func warnOverlap(c echo.Context) bool {
	return strings.ToLower(c.QueryParam("warn_overlap")) == "true"
}

// handleListEvents returns all events, optionally filtered by an
// inclusive date range - GET /api/events?start_date=&end_date=
func (s *Server) handleListEvents(c echo.Context) error {
	ctx := c.Request().Context()
	startDate := c.QueryParam("start_date")
	endDate := c.QueryParam("end_date")

	var events []model.Event
	var err error
	if startDate != "" && endDate != "" {
		events, err = s.db.ListEventsInRange(ctx, startDate, endDate)
	} else {
		events, err = s.db.ListEvents(ctx)
	}
	if err != nil {
		logger.Error("Failed to list events", logger.F("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list events"})
	}

	return c.JSON(http.StatusOK, events)
}

// handleGetEvent - GET /api/events/:id
func (s *Server) handleGetEvent(c echo.Context) error {
	event, err := s.db.GetEvent(c.Request().Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found"})
	}
	if err != nil {
		logger.Error("Failed to get event", logger.F("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get event"})
	}

	return c.JSON(http.StatusOK, event)
}

// handleCreateEvent - POST /api/events?warn_overlap=true
func (s *Server) handleCreateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	var in validate.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	in, err := validate.Normalize(in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if warnOverlap(c) {
		conflict, err := schedule.HasConflict(ctx, s.db, in.Date, in.StartTime, in.EndTime, "")
		if err != nil {
			logger.Error("Conflict check failed", logger.F("error", err))
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "conflict check failed"})
		}
		if conflict {
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"error":   overlapMessage,
				"warning": true,
			})
		}
	}

	event := eventFromInput(uuid.New().String(), in)
	if err := s.db.CreateEvent(ctx, &event); err != nil {
		logger.Error("Failed to create event", logger.F("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create event"})
	}

	logger.Info("Event created", logger.F("id", event.ID), logger.F("date", event.Date))
	return c.JSON(http.StatusCreated, event)
}

// handleUpdateEvent - PUT /api/events/:id?warn_overlap=true
// Checks run in the same order as create: validation, then overlap
// (excluding the event itself), then existence.
func (s *Server) handleUpdateEvent(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var in validate.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	in, err := validate.Normalize(in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if warnOverlap(c) {
		conflict, err := schedule.HasConflict(ctx, s.db, in.Date, in.StartTime, in.EndTime, id)
		if err != nil {
			logger.Error("Conflict check failed", logger.F("error", err))
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "conflict check failed"})
		}
		if conflict {
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"error":   overlapMessage,
				"warning": true,
			})
		}
	}

	existing, err := s.db.GetEvent(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found"})
	}
	if err != nil {
		logger.Error("Failed to get event", logger.F("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get event"})
	}

	event := eventFromInput(id, in)
	event.CreatedAt = existing.CreatedAt
	if err := s.db.UpdateEvent(ctx, &event); err != nil {
		logger.Error("Failed to update event", logger.F("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update event"})
	}

	logger.Info("Event updated", logger.F("id", id))
	return c.JSON(http.StatusOK, event)
}

// handleDeleteEvent - DELETE /api/events/:id
func (s *Server) handleDeleteEvent(c echo.Context) error {
	id := c.Param("id")

	err := s.db.DeleteEvent(c.Request().Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found"})
	}
	if err != nil {
		logger.Error("Failed to delete event", logger.F("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete event"})
	}

	logger.Info("Event deleted", logger.F("id", id))
	return c.JSON(http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}

// handleEventsByDate - GET /api/events/date/:date
func (s *Server) handleEventsByDate(c echo.Context) error {
	events, err := s.db.EventsOnDate(c.Request().Context(), c.Param("date"), "")
	if err != nil {
		logger.Error("Failed to list events by date", logger.F("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list events"})
	}

	return c.JSON(http.StatusOK, events)
}

// handleCheckConflicts - POST /api/events/conflicts
func (s *Server) handleCheckConflicts(c echo.Context) error {
	var in validate.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	in, err := validate.Normalize(in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	conflict, err := schedule.HasConflict(c.Request().Context(), s.db, in.Date, in.StartTime, in.EndTime, in.EventID)
	if err != nil {
		logger.Error("Conflict check failed", logger.F("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "conflict check failed"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"has_conflict": conflict})
}

// handleStats - GET /api/stats
func (s *Server) handleStats(c echo.Context) error {
	today := s.now().Format(model.DateLayout)

	stats, err := s.db.Stats(c.Request().Context(), today)
	if err != nil {
		logger.Error("Failed to compute stats", logger.F("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute stats"})
	}

	return c.JSON(http.StatusOK, stats)
}
