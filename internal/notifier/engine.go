package notifier

import (
	"context"
	"log"
	"sync"
	"time"
)

// CategoryResult is one category's outcome within a pass.
type CategoryResult struct {
	Category   Category
	Candidates int
	Err        error
}

// PassReport aggregates what one evaluation pass did, per category, so the
// caller can see partial failures instead of grepping logs.
type PassReport struct {
	StartedAt time.Time
	Elders    int
	Results   []CategoryResult
}

// Engine drives periodic evaluation: one pass immediately on Start, then
// one per tick until Stop. Each pass walks the elders, fetches the four
// resource snapshots independently and feeds them to the rules; a fetch
// failure in one category is recorded and the other categories proceed.
type Engine struct {
	src    Source
	sink   *Sink
	policy Policy
	now    func() time.Time

	mu      sync.Mutex
	stopCh  chan struct{}
	running bool
	wg      sync.WaitGroup
}

func NewEngine(src Source, sink *Sink, policy Policy) *Engine {
	return &Engine{
		src:    src,
		sink:   sink,
		policy: policy,
		now:    time.Now,
	}
}

// Start runs one pass immediately, then re-arms on the policy interval.
// Starting a running engine is a no-op.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.stopCh = make(chan struct{})
	stopCh := e.stopCh
	e.mu.Unlock()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		e.RunPass(ctx)

		ticker := time.NewTicker(e.policy.CheckInterval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.RunPass(ctx)
			}
		}
	}()
}

// Stop cancels the recurring timer and waits for an in-flight pass to
// finish. Idempotent; the timer cannot re-arm afterwards.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	close(e.stopCh)
	e.mu.Unlock()

	e.wg.Wait()
}

// RunPass executes one evaluation pass over all elders and returns the
// per-category outcomes. Passes run back-to-back on the ticker goroutine,
// so they never overlap.
func (e *Engine) RunPass(ctx context.Context) PassReport {
	now := e.now()
	report := PassReport{StartedAt: now}

	elders, err := e.src.Elders(ctx)
	if err != nil {
		log.Printf("notifier: elder listing failed, skipping pass: %v", err)
		report.Results = append(report.Results, CategoryResult{Category: CategoryReminder, Err: err})
		return report
	}
	report.Elders = len(elders)

	var (
		mu      sync.Mutex
		results = map[Category]*CategoryResult{
			CategoryMedication:  {Category: CategoryMedication},
			CategoryMeal:        {Category: CategoryMeal},
			CategoryAppointment: {Category: CategoryAppointment},
			CategoryHealth:      {Category: CategoryHealth},
		}
	)

	record := func(cat Category, candidates int, err error) {
		mu.Lock()
		defer mu.Unlock()
		r := results[cat]
		r.Candidates += candidates
		if err != nil {
			r.Err = err
			log.Printf("notifier: %s check failed: %v", cat, err)
		}
	}

	for _, elder := range elders {
		recipients := []int64{elder.UserID}
		if elder.CaretakerUserID != nil {
			recipients = append(recipients, *elder.CaretakerUserID)
		}

		// The four categories are independent; run them concurrently and
		// let each fail on its own.
		var wg sync.WaitGroup
		wg.Add(4)

		go func(elderID int64) {
			defer wg.Done()
			meds, err := e.src.Medications(ctx, elderID)
			if err != nil {
				record(CategoryMedication, 0, err)
				return
			}
			cands := EvaluateMedications(meds, now, e.policy)
			e.send(ctx, recipients, cands)
			record(CategoryMedication, len(cands), nil)
		}(elder.ProfileID)

		go func(elderID int64) {
			defer wg.Done()
			meals, err := e.src.MealsForDay(ctx, elderID, now)
			if err != nil {
				record(CategoryMeal, 0, err)
				return
			}
			cands := EvaluateMeals(meals, now, e.policy)
			e.send(ctx, recipients, cands)
			record(CategoryMeal, len(cands), nil)
		}(elder.ProfileID)

		go func(elderID int64) {
			defer wg.Done()
			apts, err := e.src.Appointments(ctx, elderID)
			if err != nil {
				record(CategoryAppointment, 0, err)
				return
			}
			cands := EvaluateAppointments(apts, now)
			e.send(ctx, recipients, cands)
			record(CategoryAppointment, len(cands), nil)
		}(elder.ProfileID)

		go func(elderID int64) {
			defer wg.Done()
			records, err := e.src.HealthRecordsSince(ctx, elderID, now.AddDate(0, 0, -1))
			if err != nil {
				record(CategoryHealth, 0, err)
				return
			}
			cands := EvaluateHealth(records, now, e.policy)
			e.send(ctx, recipients, cands)
			record(CategoryHealth, len(cands), nil)
		}(elder.ProfileID)

		wg.Wait()
	}

	for _, cat := range []Category{CategoryMedication, CategoryMeal, CategoryAppointment, CategoryHealth} {
		report.Results = append(report.Results, *results[cat])
	}
	return report
}

func (e *Engine) send(ctx context.Context, recipients []int64, cands []Candidate) {
	for _, c := range cands {
		e.sink.Send(ctx, recipients, c)
	}
}
