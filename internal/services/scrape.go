package services

import (
	"context"
	"sort"

	"github.com/GregMSThompson/bank-closures/internal/models"
	"github.com/GregMSThompson/bank-closures/pkg/logger"
)

type commentPager interface {
	// LoadOlderComments returns the page of top-level comments after
	// lastParentID, newest first. An empty lastParentID is the first page.
	LoadOlderComments(ctx context.Context, lastParentID string) ([]models.Comment, error)
}

type commentDump interface {
	List(ctx context.Context) ([]models.Comment, error)
	Replace(ctx context.Context, comments []models.Comment) error
}

type scrapeService struct {
	pager commentPager
	dump  commentDump
}

func NewScrapeService(pager commentPager, dump commentDump) *scrapeService {
	return &scrapeService{pager: pager, dump: dump}
}

// UpdateComments pages back from the newest comment until it reaches one
// already in the dump, then rewrites the dump in chronological order.
func (s *scrapeService) UpdateComments(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	existing, err := s.dump.List(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[c.ID] = true
	}
	log.Info("loaded comment dump", "comments", len(existing))

	var fresh []models.Comment
	// ids fetched this run; a page overlapping an earlier one is deduped
	// but only ids already in the dump end paging
	fetched := make(map[string]bool)
	lastID := ""
	for page := 1; ; page++ {
		batch, err := s.pager.LoadOlderComments(ctx, lastID)
		if err != nil {
			return 0, err
		}
		if len(batch) == 0 {
			log.Info("no more comments to fetch", "page", page)
			break
		}

		reachedSeen := false
		for _, c := range batch {
			if seen[c.ID] {
				reachedSeen = true
				continue
			}
			if fetched[c.ID] {
				continue
			}
			fetched[c.ID] = true
			fresh = append(fresh, c)
		}
		log.Debug("fetched comment page", "page", page, "comments", len(batch))

		if reachedSeen {
			log.Info("reached previously scraped comments", "page", page)
			break
		}

		next := batch[len(batch)-1].ID
		if next == lastID {
			break
		}
		lastID = next
	}

	if len(fresh) == 0 {
		log.Info("comment dump up to date", "comments", len(existing))
		return 0, nil
	}

	all := append(append(make([]models.Comment, 0, len(existing)+len(fresh)), existing...), fresh...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Timestamp < all[j].Timestamp })
	if err := s.dump.Replace(ctx, all); err != nil {
		return 0, err
	}

	log.Info("comment dump updated", "comments", len(all), "new", len(fresh))
	return len(fresh), nil
}
