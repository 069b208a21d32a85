package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/iudanet/listkeeper/internal/models"
)

// RunList выводит живые записи коллекции, отсортированные по времени
// создания
func RunList(ctx context.Context, deps *Deps, entityType string) error {
	if !models.KnownEntityType(entityType) {
		return fmt.Errorf("unknown entity type %q, expected task, list or note", entityType)
	}

	records, err := deps.Store.ListActive(ctx, deps.OwnerID, entityType)
	if err != nil {
		return fmt.Errorf("list %s records: %w", entityType, err)
	}

	if len(records) == 0 {
		fmt.Printf("no %s records\n", entityType)
		return nil
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	for _, record := range records {
		marker := " "
		if entityType == models.EntityTypeTask && record.Done {
			marker = "x"
		}
		fmt.Printf("[%s] %s  %s\n", marker, record.ID, record.Title)
		if record.Body != "" {
			fmt.Printf("       %s\n", record.Body)
		}
	}

	return nil
}
