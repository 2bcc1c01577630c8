package handler

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/ab-jewelery/storefront/backend/internal/config"
	"github.com/ab-jewelery/storefront/backend/internal/mail"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	translator ut.Translator
	renderer   *mail.Renderer
	notifier   mail.Notifier
	registry   *prometheus.Registry
	metrics    *metrics
	log        *slog.Logger

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, notifier mail.Notifier, registry *prometheus.Registry, logger *slog.Logger) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// 校验错误中使用 json 字段名
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	renderer, err := mail.NewRenderer(cfg.BrandName, cfg.Email.User)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		translator: trans,
		renderer:   renderer,
		notifier:   notifier,
		registry:   registry,
		metrics:    newMetrics(registry),
		log:        logger,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.NotFound(h.notFound)
	h.Mux.MethodNotAllowed(h.methodNotAllowed)

	h.Mux.Get("/healthz", h.Healthz)
	h.Mux.Method("GET", "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	h.Mux.Get("/api/products", h.GetProducts)
	h.Mux.Post("/api/send-confirmation-email", h.SendConfirmationEmail)
}
