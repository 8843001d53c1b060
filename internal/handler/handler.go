package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/smallbiz-dev/business-manager/backend/internal/config"
	"github.com/smallbiz-dev/business-manager/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/", h.Root)
	h.Mux.Get("/dashboard", h.GetDashboard)

	h.Mux.Route("/employees", func(r chi.Router) {
		r.Post("/", h.CreateEmployee)
		r.Get("/", h.GetAllEmployees)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.employeeInfo)
			r.Get("/", h.GetEmployee)
		})
	})

	h.Mux.Route("/roster", func(r chi.Router) {
		r.Post("/shifts", h.CreateShift)
		r.Get("/week", h.GetRosterWeek)
		r.Post("/generate", h.GenerateRoster)
	})

	h.Mux.Route("/payroll", func(r chi.Router) {
		r.Post("/calc", h.CalculatePayroll)
		r.Post("/payslips", h.RenderPayslips)
	})

	h.Mux.Route("/taxsuper/rules", func(r chi.Router) {
		r.Get("/", h.GetTaxSuperRule)
		r.Post("/", h.UpdateTaxSuperRule)
	})

	h.Mux.Route("/cashflow", func(r chi.Router) {
		r.Post("/tx", h.CreateTransaction)
		r.Get("/summary", h.GetCashflowSummary)
	})
}
