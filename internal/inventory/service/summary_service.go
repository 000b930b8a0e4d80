package service

import (
	"context"
	"time"

	"github.com/madhawadiyanath/daycare-core/internal/inventory/entity"
)

// SummaryService aggregates the issuance log on demand. Nothing is cached or
// precomputed: every call folds over the full log so the result is always a
// pure function of current state.
type SummaryService struct {
	items  ItemStore
	issues IssueStore
}

func NewSummaryService(items ItemStore, issues IssueStore) *SummaryService {
	return &SummaryService{items: items, issues: issues}
}

// IssueSummary is one aggregated row keyed by product name and category.
type IssueSummary struct {
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	TotalIssued   int64     `json:"totalIssued"`
	LastIssueDate time.Time `json:"lastIssueDate"`
}

// DetailedIssueSummary joins a summary row with catalog fields. The catalog
// fields are pointers because an issued product need not exist in the catalog;
// a missing match leaves them null without dropping the row.
type DetailedIssueSummary struct {
	IssueSummary
	Stock    *int64     `json:"stock"`
	Expiry   *time.Time `json:"expiry"`
	Supplier *string    `json:"supplier"`
}

// Summarize groups the log by (name, category). Rows come out in the order
// each key first appears in the log.
func (s *SummaryService) Summarize(ctx context.Context) ([]IssueSummary, error) {
	events, err := s.issues.FindAll(ctx)
	if err != nil {
		return nil, storeErr("summary.Summarize", "", err)
	}

	index := make(map[string]int, len(events))
	out := make([]IssueSummary, 0, len(events))
	for _, ev := range events {
		key := itemKey(ev.Name, ev.Category)
		i, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, IssueSummary{
				Name:          ev.Name,
				Category:      ev.Category,
				TotalIssued:   ev.Quantity,
				LastIssueDate: ev.IssueDate,
			})
			continue
		}
		out[i].TotalIssued += ev.Quantity
		if ev.IssueDate.After(out[i].LastIssueDate) {
			out[i].LastIssueDate = ev.IssueDate
		}
	}
	return out, nil
}

// SummarizeDetailed enriches summary rows with catalog data in one bulk pass:
// the whole catalog is fetched once and reduced to the best row per key, so a
// key with several catalog rows resolves to the same winner a single-key
// lookup would pick.
func (s *SummaryService) SummarizeDetailed(ctx context.Context) ([]DetailedIssueSummary, error) {
	summaries, err := s.Summarize(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, storeErr("summary.SummarizeDetailed", "", err)
	}
	best := make(map[string]*entity.CatalogItem, len(items))
	for i := range items {
		it := &items[i]
		key := itemKey(it.Name, it.Category)
		cur, ok := best[key]
		if !ok || it.ModifiedOn.After(cur.ModifiedOn) ||
			(it.ModifiedOn.Equal(cur.ModifiedOn) && it.ID > cur.ID) {
			best[key] = it
		}
	}

	out := make([]DetailedIssueSummary, 0, len(summaries))
	for _, sum := range summaries {
		row := DetailedIssueSummary{IssueSummary: sum}
		if it, ok := best[itemKey(sum.Name, sum.Category)]; ok {
			stock := it.Stock
			row.Stock = &stock
			row.Expiry = it.Expiry
			row.Supplier = it.Supplier
		}
		out = append(out, row)
	}
	return out, nil
}
