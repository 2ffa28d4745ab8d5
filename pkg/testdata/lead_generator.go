package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/pkg/policy"
)

// LeadGeneratorConfig configures lead generation parameters
type LeadGeneratorConfig struct {
	Count          int
	ProjectID      int
	WorkspaceID    int
	AgentIDs       []int   // leads are assigned round-robin when non-empty
	EmailChance    float64 // 0.0-1.0
	PhoneChance    float64
	FollowUpChance float64
}

var jobTitles = []string{
	"CEO", "Founder", "VP Sales", "VP Marketing", "Head of Growth",
	"Sales Director", "Marketing Manager", "Operations Manager",
	"Business Development Manager", "Account Executive",
}

var revenueBands = []string{
	"<$1M", "$1M-$5M", "$5M-$10M", "$10M-$50M", "$50M-$100M", ">$100M",
}

var employeeBands = []string{
	"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+",
}

// statusWeights skews generated data towards early-funnel statuses the
// way real dialing campaigns look.
var statusWeights = []struct {
	status policy.Status
	weight int
}{
	{policy.StatusNotInterested, 30},
	{policy.StatusFollowUp, 20},
	{policy.StatusVM1, 10},
	{policy.StatusVM2, 8},
	{policy.StatusVM3, 5},
	{policy.StatusScheduled, 8},
	{policy.StatusMeetingComplete, 5},
	{policy.StatusInQC, 4},
	{policy.StatusClientFollowUp, 4},
	{policy.StatusSalesComplete, 3},
	{policy.StatusNotQualified, 3},
}

func randomStatus(r *rand.Rand) policy.Status {
	total := 0
	for _, sw := range statusWeights {
		total += sw.weight
	}
	pick := r.Intn(total)
	for _, sw := range statusWeights {
		pick -= sw.weight
		if pick < 0 {
			return sw.status
		}
	}
	return policy.StatusNotInterested
}

// GenerateLeads inserts fake leads into a project for local development
// and demos.
func GenerateLeads(ctx context.Context, db *ent.Client, cfg LeadGeneratorConfig) (int, error) {
	if cfg.Count <= 0 {
		return 0, fmt.Errorf("count must be positive")
	}
	if cfg.EmailChance == 0 {
		cfg.EmailChance = 0.8
	}
	if cfg.PhoneChance == 0 {
		cfg.PhoneChance = 0.9
	}
	if cfg.FollowUpChance == 0 {
		cfg.FollowUpChance = 0.3
	}

	faker := gofakeit.New(0)
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	builders := make([]*ent.LeadCreate, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		status := randomStatus(r)

		create := db.Lead.Create().
			SetName(faker.Name()).
			SetCompany(faker.Company()).
			SetTitle(jobTitles[r.Intn(len(jobTitles))]).
			SetIndustry(faker.BuzzWord()).
			SetRevenue(revenueBands[r.Intn(len(revenueBands))]).
			SetEmployees(employeeBands[r.Intn(len(employeeBands))]).
			SetState(faker.StateAbr()).
			SetStatus(string(status)).
			SetSource("Generated").
			SetProjectID(cfg.ProjectID).
			SetWorkspaceID(cfg.WorkspaceID)

		if r.Float64() < cfg.EmailChance {
			create.SetEmail(faker.Email())
		}
		if r.Float64() < cfg.PhoneChance {
			create.SetPhone(faker.Phone())
		}
		if status == policy.StatusSalesComplete {
			create.SetDealValue(float64(r.Intn(90)+10) * 1000)
		}
		if status == policy.StatusFollowUp && r.Float64() < cfg.FollowUpChance {
			create.SetNextFollowUp(time.Now().AddDate(0, 0, r.Intn(14)+1))
		}
		if len(cfg.AgentIDs) > 0 {
			create.SetAssignedAgentID(cfg.AgentIDs[i%len(cfg.AgentIDs)])
		}

		builders = append(builders, create)
	}

	created, err := db.Lead.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to generate leads: %w", err)
	}
	return len(created), nil
}
