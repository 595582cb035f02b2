// Package services keeps the scanner's local data in step with the
// authority: QueueService uploads offline redemptions, SyncService
// downloads the catalog and Scheduler runs both in the background.
package services
