package services

import (
	"context"
	"errors"
	"testing"

	"github.com/GregMSThompson/bank-closures/internal/models"
	"github.com/GregMSThompson/bank-closures/pkg/helpers"
)

type refreshCalls struct {
	calls []string
}

type fakeUpdater struct {
	*refreshCalls
	n   int
	err error
}

func (f fakeUpdater) UpdateComments(context.Context) (int, error) {
	f.calls = append(f.calls, "scrape")
	return f.n, f.err
}

type fakeExtractor struct {
	*refreshCalls
	n   int
	err error
}

func (f fakeExtractor) ExtractNew(context.Context) (int, error) {
	f.calls = append(f.calls, "extract")
	return f.n, f.err
}

type fakeAggregator struct {
	*refreshCalls
	changed bool
	err     error
}

func (f fakeAggregator) Aggregate(context.Context) (models.BankData, bool, error) {
	f.calls = append(f.calls, "aggregate")
	if f.err != nil {
		return nil, false, f.err
	}
	return models.BankData{"Chase": nil, "Ally": nil}, f.changed, nil
}

type fakeStamper struct {
	*refreshCalls
	err error
}

func (f fakeStamper) Stamp(context.Context) (models.Metadata, error) {
	f.calls = append(f.calls, "stamp")
	return models.Metadata{LastUpdated: 99}, f.err
}

func TestRefreshRunStampsWhenChanged(t *testing.T) {
	rc := &refreshCalls{}
	svc := NewRefreshService(fakeUpdater{rc, 4, nil}, fakeExtractor{rc, 3, nil},
		fakeAggregator{rc, true, nil}, fakeStamper{rc, nil}, false)

	res, err := svc.Run(helpers.TestCtx())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := len(rc.calls); got != 4 || rc.calls[3] != "stamp" {
		t.Fatalf("unexpected call order: %#v", rc.calls)
	}
	if res.NewComments != 4 || res.NewExtractions != 3 || res.Banks != 2 || !res.Changed || !res.Stamped || res.LastUpdated != 99 {
		t.Fatalf("unexpected result: %#v", res)
	}
}

func TestRefreshRunSkipsStampWhenUnchanged(t *testing.T) {
	rc := &refreshCalls{}
	svc := NewRefreshService(fakeUpdater{rc, 0, nil}, fakeExtractor{rc, 0, nil},
		fakeAggregator{rc, false, nil}, fakeStamper{rc, nil}, false)

	res, err := svc.Run(helpers.TestCtx())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Stamped || len(rc.calls) != 3 {
		t.Fatalf("stamp should be skipped: res=%#v calls=%#v", res, rc.calls)
	}
}

func TestRefreshRunForceStamp(t *testing.T) {
	rc := &refreshCalls{}
	svc := NewRefreshService(fakeUpdater{rc, 0, nil}, fakeExtractor{rc, 0, nil},
		fakeAggregator{rc, false, nil}, fakeStamper{rc, nil}, true)

	res, err := svc.Run(helpers.TestCtx())
	if err != nil || !res.Stamped {
		t.Fatalf("Run = %#v, %v; want stamped", res, err)
	}
}

func TestRefreshRunAbortsOnStepError(t *testing.T) {
	stepErr := errors.New("boom")
	rc := &refreshCalls{}
	svc := NewRefreshService(fakeUpdater{rc, 1, nil}, fakeExtractor{rc, 0, stepErr},
		fakeAggregator{rc, true, nil}, fakeStamper{rc, nil}, true)

	if _, err := svc.Run(helpers.TestCtx()); err != stepErr {
		t.Fatalf("Run error = %v, want %v", err, stepErr)
	}
	if len(rc.calls) != 2 {
		t.Fatalf("pipeline should stop after extract, calls=%#v", rc.calls)
	}
}
