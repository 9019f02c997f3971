package enrollment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/campuslex/campuslex/internal/auth"
	"github.com/campuslex/campuslex/internal/platform/httpx"
	"github.com/campuslex/campuslex/internal/shared"
)

// ServicePort defines the operations the handler needs.
type ServicePort interface {
	AddStudent(ctx context.Context, username, password string) error
	AddAdmin(ctx context.Context, username, password string) error
	RemoveAdmin(ctx context.Context, username string) error
	AddCourse(ctx context.Context, name string) error
	Courses(ctx context.Context) ([]Course, error)
	Students(ctx context.Context) ([]Student, error)
	Enroll(ctx context.Context, studentID, courseID int64) error
	StudentCourses(ctx context.Context, studentID int64) ([]string, error)
}

// Handler manages enrollment endpoints.
type Handler struct {
	logger    *slog.Logger
	service   ServicePort
	auth      auth.Middleware
	validator *validator.Validate
	devMode   bool
}

// NewHandler builds a Handler instance. devMode additionally mounts the
// unauthenticated admin bootstrap endpoints.
func NewHandler(logger *slog.Logger, service ServicePort, authmw auth.Middleware, devMode bool) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		auth:      authmw,
		validator: validator.New(),
		devMode:   devMode,
	}
}

// MountRoutes registers enrollment routes. Paths match the original API.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth.Authenticate)

		r.Group(func(r chi.Router) {
			r.Use(h.auth.RequireAdmin)
			r.Post("/add_student", h.addStudent)
			r.Post("/add_admin", h.addAdmin)
			r.Post("/add_course", h.addCourse)
			r.Get("/get_students", h.listStudents)
		})

		r.Get("/get_courses", h.listCourses)
		r.Post("/student/courses", h.studentCourses)

		r.Group(func(r chi.Router) {
			r.Use(h.auth.RequireStudent)
			r.Post("/enroll_course", h.enroll)
		})
	})

	if h.devMode {
		r.Post("/add_admin_dev", h.addAdminDev)
		r.Delete("/delete_admin_dev", h.deleteAdminDev)
	}
}

func (h *Handler) addStudent(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeUser(w, r)
	if !ok {
		return
	}
	if err := h.service.AddStudent(r.Context(), req.Username, req.Password); err != nil {
		h.logger.Error("add student", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Student added successfully"})
}

func (h *Handler) addAdmin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeUser(w, r)
	if !ok {
		return
	}
	if err := h.service.AddAdmin(r.Context(), req.Username, req.Password); err != nil {
		h.logger.Error("add admin", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Admin added successfully"})
}

func (h *Handler) addCourse(w http.ResponseWriter, r *http.Request) {
	var req CreateCourseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.AddCourse(r.Context(), req.Name); err != nil {
		h.logger.Error("add course", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Course added successfully"})
}

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.Courses(r.Context())
	if err != nil {
		h.logger.Error("list courses", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if courses == nil {
		courses = []Course{}
	}
	httpx.JSON(w, http.StatusOK, courses)
}

func (h *Handler) listStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.service.Students(r.Context())
	if err != nil {
		h.logger.Error("list students", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if students == nil {
		students = []Student{}
	}
	httpx.JSON(w, http.StatusOK, students)
}

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	principal := shared.PrincipalFromContext(r.Context())
	if principal == nil {
		httpx.RespondError(w, shared.ErrInvalidToken)
		return
	}
	var req EnrollRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Enroll(r.Context(), principal.ID, req.CourseID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "Course not found")
			return
		}
		h.logger.Error("enroll course", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Enrolled in course successfully"})
}

// studentCourses resolves courses for the calling principal. The original API
// accepted a username in the body but always answered for the caller; the
// body is ignored here for the same behavior.
func (h *Handler) studentCourses(w http.ResponseWriter, r *http.Request) {
	principal := shared.PrincipalFromContext(r.Context())
	if principal == nil {
		httpx.RespondError(w, shared.ErrInvalidToken)
		return
	}
	names, err := h.service.StudentCourses(r.Context(), principal.ID)
	if err != nil {
		h.logger.Error("student courses", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, names)
}

func (h *Handler) addAdminDev(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeUser(w, r)
	if !ok {
		return
	}
	if err := h.service.AddAdmin(r.Context(), req.Username, req.Password); err != nil {
		h.logger.Error("add admin dev", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Admin added successfully"})
}

func (h *Handler) deleteAdminDev(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeUser(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveAdmin(r.Context(), req.Username); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Admin deleted successfully"})
}

func (h *Handler) decodeUser(w http.ResponseWriter, r *http.Request) (CreateUserRequest, bool) {
	var req CreateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed request body")
		return req, false
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return req, false
	}
	return req, true
}
