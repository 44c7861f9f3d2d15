package llm

import (
	"context"
	"log"
	"sync"

	"github.com/icewatch/icewatch/internal/classify"
	"github.com/icewatch/icewatch/internal/model"
)

// Classifier wraps a rule classifier and refines its incident type and
// affected count with a model-backed Provider. Relevance and location
// always come from the rules: the model never widens what gets ingested,
// and coordinates require the gazetteer.
type Classifier struct {
	rules    classify.Classifier
	provider Provider
	ctx      context.Context
	verbose  bool

	mu       sync.Mutex
	lastText string
	lastResp *AnnotateResponse
	lastErr  error
	haveLast bool
}

// NewClassifier builds a model-refined classifier. The context bounds
// every annotation call for the life of the classifier; pass the run
// context.
func NewClassifier(ctx context.Context, rules classify.Classifier, provider Provider, verbose bool) *Classifier {
	return &Classifier{rules: rules, provider: provider, ctx: ctx, verbose: verbose}
}

func (c *Classifier) Relevant(text string) bool {
	return c.rules.Relevant(text)
}

func (c *Classifier) Location(text string) classify.Location {
	return c.rules.Location(text)
}

func (c *Classifier) TypeOf(text string) model.IncidentType {
	resp, err := c.annotate(text)
	if err != nil {
		return c.rules.TypeOf(text)
	}
	return model.IncidentType(resp.IncidentType)
}

// AffectedCount uses the model's answer only when it passes the same
// sanity bound the rules enforce; out-of-range answers fall back.
func (c *Classifier) AffectedCount(text string) (int, bool) {
	resp, err := c.annotate(text)
	if err != nil || resp.NumAffected <= 0 || resp.NumAffected >= classify.MaxAffected {
		return c.rules.AffectedCount(text)
	}
	return resp.NumAffected, true
}

// annotate memoizes the last answer so that TypeOf and AffectedCount on
// the same text cost one API call, not two.
func (c *Classifier) annotate(text string) (*AnnotateResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.haveLast && c.lastText == text {
		return c.lastResp, c.lastErr
	}

	resp, err := c.provider.Annotate(c.ctx, AnnotateRequest{
		Text:  text,
		Types: typeLabels(),
	})
	if err != nil && c.verbose {
		log.Printf("llm annotation failed, using rules: %v", err)
	}

	c.lastText = text
	c.lastResp = resp
	c.lastErr = err
	c.haveLast = true
	return resp, err
}

func typeLabels() []string {
	types := []model.IncidentType{
		model.TypeWorkplaceRaid,
		model.TypeHomeArrest,
		model.TypeTrafficStop,
		model.TypeCourthouseArrest,
		model.TypeSchoolVicinity,
		model.TypeHospitalClinic,
		model.TypeChurchWorship,
		model.TypeOther,
	}
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = string(t)
	}
	return labels
}
