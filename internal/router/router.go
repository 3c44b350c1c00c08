package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/personal-lambda/internal/achievement"
	"github.com/saulo-duarte/personal-lambda/internal/backlog"
	"github.com/saulo-duarte/personal-lambda/internal/calendar"
	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/container"
	"github.com/saulo-duarte/personal-lambda/internal/dates"
	_ "github.com/saulo-duarte/personal-lambda/internal/docs"
	"github.com/saulo-duarte/personal-lambda/internal/kpi"
	"github.com/saulo-duarte/personal-lambda/internal/list"
	"github.com/saulo-duarte/personal-lambda/internal/middlewares"
	"github.com/saulo-duarte/personal-lambda/internal/project"
	"github.com/saulo-duarte/personal-lambda/internal/routine"
	"github.com/saulo-duarte/personal-lambda/internal/workout"
)

type RouterConfig struct {
	AllowedOrigins     []string
	BacklogHandler     *backlog.Handler
	CalendarHandler    *calendar.Handler
	RoutineHandler     *routine.Handler
	ListHandler        *list.Handler
	AchievementHandler *achievement.Handler
	WorkoutHandler     *workout.Handler
	ProjectHandler     *project.Handler
	KPIHandler         *kpi.Handler
	DatesHandler       *dates.Handler
}

// FromContainer collects the handlers of c.
func FromContainer(c *container.Container) RouterConfig {
	return RouterConfig{
		AllowedOrigins:     c.Settings.AllowedOrigins,
		BacklogHandler:     c.BacklogContainer.Handler,
		CalendarHandler:    c.CalendarContainer.Handler,
		RoutineHandler:     c.RoutineContainer.Handler,
		ListHandler:        c.ListContainer.Handler,
		AchievementHandler: c.AchievementContainer.Handler,
		WorkoutHandler:     c.WorkoutContainer.Handler,
		ProjectHandler:     c.ProjectContainer.Handler,
		KPIHandler:         c.KPIContainer.Handler,
		DatesHandler:       c.DatesHandler,
	}
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/backlog", backlog.Routes(cfg.BacklogHandler))
	r.Mount("/calendar", calendar.Routes(cfg.CalendarHandler))
	r.Mount("/routines", routine.Routes(cfg.RoutineHandler))
	r.Mount("/lists", list.Routes(cfg.ListHandler))
	r.Mount("/achievements", achievement.Routes(cfg.AchievementHandler))
	r.Mount("/workouts", workout.Routes(cfg.WorkoutHandler))
	r.Mount("/projects", project.Routes(cfg.ProjectHandler))
	r.Mount("/kpis", kpi.Routes(cfg.KPIHandler))
	r.Mount("/dates", dates.Routes(cfg.DatesHandler))

	return r
}
