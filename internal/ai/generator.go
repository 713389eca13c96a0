package ai

import (
	"context"

	"github.com/sirupsen/logrus"

	"myfitness/server/internal/catalog"
	"myfitness/server/internal/domain"
)

// PlanClient is the outbound call the generator depends on. Satisfied by
// *Client; tests substitute a stub.
type PlanClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator runs the plan-generation pipeline: prompt construction, one
// provider call, envelope unwrapping, plan materialization. The stages are
// strictly sequential and share no state across invocations apart from the
// read-only catalog, so concurrent generations are independent.
type Generator struct {
	catalog *catalog.Catalog
	client  PlanClient
	log     *logrus.Entry
}

// NewGenerator creates a Generator over the shared catalog and client.
func NewGenerator(cat *catalog.Catalog, client PlanClient) *Generator {
	return &Generator{
		catalog: cat,
		client:  client,
		log:     logrus.WithField("component", "plan-generator"),
	}
}

// GeneratePlan produces a fresh set of day plans for the profile. Any stage
// failure short-circuits the pipeline; the caller gets no partial plan.
func (g *Generator) GeneratePlan(ctx context.Context, profile domain.Profile) ([]domain.DayPlan, error) {
	records, err := g.catalog.All()
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(profile, records)

	raw, err := g.client.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cleaned, err := Unwrap(raw)
	if err != nil {
		// Keep the offending body around; parse failures are otherwise
		// impossible to diagnose after the fact.
		g.log.WithField("raw", truncate(raw, 500)).WithError(err).Error("failed to unwrap response")
		return nil, err
	}

	days, err := Materialize(cleaned)
	if err != nil {
		g.log.WithField("text", truncate(cleaned, 500)).WithError(err).Error("failed to materialize plan")
		return nil, err
	}

	g.log.WithField("days", len(days)).Info("generated workout plan")
	return days, nil
}
