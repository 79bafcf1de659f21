package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/home-affordability/internal/affordability"
	"github.com/Dan9191/home-affordability/internal/config"
	"github.com/Dan9191/home-affordability/internal/logging"
	"github.com/Dan9191/home-affordability/internal/metrics"
	"github.com/Dan9191/home-affordability/internal/models"
)

// ReportSender delivers a finished calculation to a borrower
type ReportSender interface {
	SendAffordabilityReport(to string, in models.PolicyInputs, res models.AffordabilityResult) error
}

// Service handles business logic
type Service struct {
	solver   *affordability.Solver
	policy   config.Policy
	rates    *RateService
	mailer   ReportSender
	validate *validator.Validate
	log      *logrus.Logger
}

// NewService initializes a new service. mailer may be nil, which disables
// report delivery.
func NewService(cfg *config.Config, rates *RateService, mailer ReportSender, log *logrus.Logger) *Service {
	return &Service{
		solver:   affordability.NewSolver(cfg.SearchUpperBound),
		policy:   cfg.Policy,
		rates:    rates,
		mailer:   mailer,
		validate: NewValidator(),
		log:      log,
	}
}

// Calculate validates req and returns the breakdown at the maximum
// affordable price.
func (s *Service) Calculate(ctx context.Context, req models.CalculateRequest) (models.PolicyInputs, models.AffordabilityResult, error) {
	entry := logging.FromContext(ctx, s.log)

	in, err := ParseInputs(req, s.policy, s.validate)
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		entry.WithError(err).Info("Rejected affordability request")
		return models.PolicyInputs{}, models.AffordabilityResult{}, err
	}

	res := s.solver.Calculate(in)
	metrics.ObserveCalculation(res.PurchasePrice)

	entry.WithFields(logrus.Fields{
		"purchase_price": res.PurchasePrice,
		"dti":            res.DebtToIncomeRatio,
		"ltv":            res.LTVRatio,
	}).Info("Affordability calculated")
	return in, res, nil
}

// SendReport calculates req and mails the result to req.Email
func (s *Service) SendReport(ctx context.Context, req models.ReportRequest) (models.AffordabilityResult, error) {
	if s.mailer == nil {
		return models.AffordabilityResult{}, ErrMailDisabled
	}
	if err := s.validate.Var(req.Email, "required,email"); err != nil {
		return models.AffordabilityResult{}, &InputError{Field: "email", Err: ErrInvalidEmail}
	}

	in, res, err := s.Calculate(ctx, req.CalculateRequest)
	if err != nil {
		return models.AffordabilityResult{}, err
	}

	if err := s.mailer.SendAffordabilityReport(req.Email, in, res); err != nil {
		return models.AffordabilityResult{}, fmt.Errorf("failed to send report: %w", err)
	}

	logging.FromContext(ctx, s.log).Infof("Affordability report sent to %s", req.Email)
	return res, nil
}

// KeyRate returns the current reference rate
func (s *Service) KeyRate(ctx context.Context) (models.KeyRate, error) {
	if s.rates == nil {
		return models.KeyRate{}, errors.New("key rate source is not configured")
	}
	return s.rates.KeyRate(ctx)
}
