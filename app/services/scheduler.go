package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 2:00 AM
			if now.Hour() == 2 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [02:00]...")

				if err := PurgeExpiredSessions(db); err != nil {
					log.Printf("Error purging expired auth sessions: %v", err)
				}
			}
		}
	}()
}

// PurgeExpiredSessions deletes auth session rows past their expiry so the
// table does not grow without bound.
func PurgeExpiredSessions(db *sql.DB) error {
	res, err := db.Exec(`DELETE FROM auth_sessions WHERE expires_at < NOW()`)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Printf("Purged %d expired auth sessions", n)
	}
	return nil
}
