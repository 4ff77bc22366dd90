package utils

import (
	"log"

	"lms/database"
	courseModels "lms/models/course"

	"github.com/robfig/cron/v3"
)

// InitializeVideoCountScheduler starts the nightly job that repairs the
// denormalized TotalVideoCount on modules.
func InitializeVideoCountScheduler() *cron.Cron {
	c := cron.New()

	// Run daily at 02:30, after the admin working day
	c.AddFunc("30 2 * * *", func() {
		log.Println("[VIDEO-COUNT] Running video count reconcile...")
		ReconcileVideoCounts()
	})

	c.Start()
	log.Println("[VIDEO-COUNT] Scheduler started - runs daily at 02:30")
	return c
}

// ReconcileVideoCounts recounts the videos of every module and fixes rows
// whose stored TotalVideoCount drifted.
func ReconcileVideoCounts() {
	db := database.Database.Db

	var modules []courseModels.Module
	if err := db.Find(&modules).Error; err != nil {
		log.Printf("[VIDEO-COUNT] Error fetching modules: %v", err)
		return
	}

	fixed := 0
	for _, mod := range modules {
		var count int64
		if err := db.Model(&courseModels.Video{}).Where("module_id = ?", mod.ID).Count(&count).Error; err != nil {
			log.Printf("[VIDEO-COUNT] Error counting videos for module %d: %v", mod.ID, err)
			continue
		}
		if int(count) != mod.TotalVideoCount {
			if err := db.Model(&courseModels.Module{}).Where("id = ?", mod.ID).
				UpdateColumn("total_video_count", count).Error; err != nil {
				log.Printf("[VIDEO-COUNT] Error updating module %d: %v", mod.ID, err)
				continue
			}
			fixed++
		}
	}

	log.Printf("[VIDEO-COUNT] Reconcile done, %d of %d modules fixed", fixed, len(modules))
}
