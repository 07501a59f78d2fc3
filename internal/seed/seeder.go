package seed

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sportapp/internal/models/request_models"
	"sportapp/internal/repositories"
	"sportapp/internal/services"
)

type Result struct {
	OwnerID uint
	Created int
	Skipped int
}

type Seeder struct {
	accounts    services.AccountServiceInterface
	accountRepo repositories.AccountRepository
	plans       services.PlanServiceInterface
	planRepo    repositories.IPlanRepository
	log         *zap.Logger
}

func NewSeeder(
	accounts services.AccountServiceInterface,
	accountRepo repositories.AccountRepository,
	plans services.PlanServiceInterface,
	planRepo repositories.IPlanRepository,
	log *zap.Logger,
) *Seeder {
	return &Seeder{
		accounts:    accounts,
		accountRepo: accountRepo,
		plans:       plans,
		planRepo:    planRepo,
		log:         log.Named("seed"),
	}
}

// Apply creates the owner when missing, then every workout the owner does not
// already have as a public plan of the same name. Private workouts are not
// matched and get created again on every run.
func (s *Seeder) Apply(ctx context.Context, c *Catalog) (Result, error) {
	var res Result

	ownerID, err := s.ensureOwner(ctx, c.Owner)
	if err != nil {
		return res, err
	}
	res.OwnerID = ownerID

	existing, err := s.planRepo.ListPublic(ctx, repositories.PlanFilter{})
	if err != nil {
		return res, fmt.Errorf("list existing plans: %w", err)
	}
	owned := make(map[string]bool)
	for _, p := range existing {
		if p.UserID == ownerID {
			owned[p.Name] = true
		}
	}

	for _, w := range c.Workouts {
		if owned[w.Name] {
			s.log.Debug("workout already seeded", zap.String("name", w.Name))
			res.Skipped++
			continue
		}
		plan, err := s.plans.CreatePlan(ctx, ownerID, w.Request())
		if err != nil {
			return res, fmt.Errorf("seed workout %q: %w", w.Name, err)
		}
		s.log.Info("workout seeded", zap.String("name", w.Name), zap.Uint("plan_id", plan.ID))
		owned[w.Name] = true
		res.Created++
	}
	return res, nil
}

func (s *Seeder) ensureOwner(ctx context.Context, o Owner) (uint, error) {
	user, err := s.accountRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(o.Email)))
	if err != nil {
		return 0, fmt.Errorf("find seed owner: %w", err)
	}
	if user != nil {
		return user.ID, nil
	}

	account, err := s.accounts.Register(ctx, request_models.SignUpRequest{
		Username: o.Username,
		Email:    o.Email,
		Password: o.Password,
	})
	if err != nil {
		return 0, fmt.Errorf("register seed owner: %w", err)
	}
	s.log.Info("seed owner registered", zap.Uint("user_id", account.ID))
	return account.ID, nil
}
