package jobs

import (
	"context"
	"log"
	"time"

	"motor-kita.backend/internal/domain/repositories"
)

// CatalogWarmJob keeps the brand/model cache warm so the wizard's reference
// data endpoints rarely touch the database.
type CatalogWarmJob struct {
	catalog  repositories.CatalogRepository
	interval time.Duration
	stop     chan struct{}
}

func NewCatalogWarmJob(catalog repositories.CatalogRepository) *CatalogWarmJob {
	return &CatalogWarmJob{
		catalog:  catalog,
		interval: 5 * time.Minute,
		stop:     make(chan struct{}),
	}
}

func (j *CatalogWarmJob) Start(ctx context.Context) {
	log.Println("Starting catalog warm job...")

	// Warm once at startup, then on the ticker.
	j.warm(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Catalog warm job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("Catalog warm job stopped")
			return
		case <-ticker.C:
			j.warm(ctx)
		}
	}
}

func (j *CatalogWarmJob) Stop() {
	close(j.stop)
}

func (j *CatalogWarmJob) warm(ctx context.Context) {
	brands, err := j.catalog.ListBrands(ctx)
	if err != nil {
		log.Printf("Error warming brand catalog: %v", err)
		return
	}
	for _, brand := range brands {
		if _, err := j.catalog.ListModels(ctx, brand); err != nil {
			log.Printf("Error warming models for %s: %v", brand, err)
		}
	}
}
