package http

import (
	"errors"
	"net/http"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/generated/servers"
	"scheduling/internal/jobs"
	"scheduling/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitScheduleHandler commands.SubmitScheduleCommandHandler

	// Query handlers
	getScheduleStatusHandler queries.GetScheduleStatusQueryHandler
	getScheduleResultHandler queries.GetScheduleResultQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitScheduleHandler commands.SubmitScheduleCommandHandler,
	getScheduleStatusHandler queries.GetScheduleStatusQueryHandler,
	getScheduleResultHandler queries.GetScheduleResultQueryHandler,
) *Server {
	return &Server{
		submitScheduleHandler:    submitScheduleHandler,
		getScheduleStatusHandler: getScheduleStatusHandler,
		getScheduleResultHandler: getScheduleResultHandler,
	}
}

// CreateSchedule handles POST /api/v1/schedules - accepts a schedule job.
func (s *Server) CreateSchedule(ctx echo.Context) error {
	var newSchedule servers.NewSchedule
	if err := ctx.Bind(&newSchedule); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	staffGroupID, err := kernel.UUIDFromBytes(newSchedule.StaffGroupId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid staff group ID: " + err.Error(),
		})
	}

	period, err := kernel.NewPeriod(newSchedule.PeriodStart.Time)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid period start: " + err.Error(),
		})
	}

	jobID := kernel.NewUUID()

	cmd, err := commands.NewSubmitScheduleCommand(jobID, staffGroupID, period)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid schedule request: " + err.Error(),
		})
	}

	if handleErr := s.submitScheduleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, jobs.ErrQueueFull) {
			return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
				Code:    http.StatusServiceUnavailable,
				Message: "Job queue is full, retry later",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to accept schedule job",
		})
	}

	return ctx.JSON(http.StatusAccepted, servers.ScheduleAccepted{
		JobId:  jobID.Bytes(),
		Status: servers.PENDING,
	})
}

// GetScheduleStatus handles GET /api/v1/schedules/{jobId}/status - retrieves job status.
func (s *Server) GetScheduleStatus(ctx echo.Context, jobId openapi_types.UUID) error {
	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetScheduleStatusQuery(jobID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job ID: " + err.Error(),
		})
	}

	status, err := s.getScheduleStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Schedule job not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve job status",
		})
	}

	response := servers.ScheduleStatus{
		JobId:       status.ID.Bytes(),
		Status:      servers.JobStatus(status.Status.String()),
		CreatedAt:   status.CreatedAt,
		UpdatedAt:   status.UpdatedAt,
		CompletedAt: status.CompletedAt,
	}
	if status.ErrorMessage != "" {
		message := status.ErrorMessage
		response.ErrorMessage = &message
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSchedule handles GET /api/v1/schedules/{jobId} - retrieves a completed schedule.
func (s *Server) GetSchedule(ctx echo.Context, jobId openapi_types.UUID) error {
	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetScheduleResultQuery(jobID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job ID: " + err.Error(),
		})
	}

	result, err := s.getScheduleResultHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Schedule job not found",
			})
		case errors.Is(err, queries.ErrScheduleNotCompleted):
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "Schedule job is not completed",
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, servers.Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to retrieve schedule",
			})
		}
	}

	assignments := make([]servers.ScheduleAssignment, len(result.Assignments))
	for i, assignment := range result.Assignments {
		assignments[i] = servers.ScheduleAssignment{
			StaffId: assignment.StaffID.Bytes(),
			Date:    openapi_types.Date{Time: assignment.Date},
			Shift:   servers.ShiftType(assignment.Shift.String()),
		}
	}

	return ctx.JSON(http.StatusOK, servers.Schedule{
		JobId:        result.ID.Bytes(),
		StaffGroupId: result.StaffGroupID.Bytes(),
		PeriodStart:  openapi_types.Date{Time: result.PeriodStart},
		PeriodEnd:    openapi_types.Date{Time: result.PeriodEnd},
		Assignments:  assignments,
	})
}
