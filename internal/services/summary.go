package services

import (
	"sort"

	"github.com/GregMSThompson/bank-closures/internal/dto"
	"github.com/GregMSThompson/bank-closures/internal/models"
)

// SummarizeBanks folds the attempts of every bank into per-method counts,
// ordered by bank name. Methods keep the canonical order, unknown methods
// follow alphabetically.
func SummarizeBanks(banks models.BankData) []dto.BankSummary {
	names := make([]string, 0, len(banks))
	for name := range banks {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]dto.BankSummary, 0, len(names))
	for _, name := range names {
		attempts := banks[name]
		summary := dto.BankSummary{Bank: name, Attempts: len(attempts)}

		byMethod := make(map[string]*dto.MethodSummary)
		for _, a := range attempts {
			ms, ok := byMethod[a.Method]
			if !ok {
				ms = &dto.MethodSummary{Method: a.Method}
				byMethod[a.Method] = ms
			}
			if a.Success {
				ms.Succeeded++
				summary.Succeeded++
			} else {
				ms.Failed++
			}
			if a.Timestamp > summary.LastSeen {
				summary.LastSeen = a.Timestamp
			}
		}

		for _, m := range models.ClosureMethods {
			if ms, ok := byMethod[m]; ok {
				summary.Methods = append(summary.Methods, *ms)
				delete(byMethod, m)
			}
		}
		extra := make([]string, 0, len(byMethod))
		for m := range byMethod {
			extra = append(extra, m)
		}
		sort.Strings(extra)
		for _, m := range extra {
			summary.Methods = append(summary.Methods, *byMethod[m])
		}

		out = append(out, summary)
	}
	return out
}
