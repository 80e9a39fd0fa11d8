package helper

import (
	"errors"
	"log"
	"time"

	"reservation_manager/constants"
	"reservation_manager/database"
	"reservation_manager/model"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	schedulerTick     = 5 * time.Second
	expireWorkerCount = 4
	expireQueueSize   = 256
	// Job đã pick mà quá lease vẫn chưa xong thì tick sau được pick lại.
	// At-least-once, nhưng ExpireReservation idempotent nên chấp nhận được.
	pickLease         = 30 * time.Second
	maxExpireAttempts = 5
)

var (
	expirationScheduler gocron.Scheduler
	expireQueue         chan string
)

// ScheduleExpiration ghi job bền key theo reservation id, gọi lại không tạo trùng
func ScheduleExpiration(db *gorm.DB, reservationId string, firesAt time.Time) error {
	job := model.ExpirationJob{
		ReservationId: reservationId,
		FiresAt:       firesAt,
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&job).Error
}

func StartExpirationScheduler() {
	expireQueue = make(chan string, expireQueueSize)
	for i := 0; i < expireWorkerCount; i++ {
		go expireWorker()
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}
	expirationScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(schedulerTick),
		gocron.NewTask(DispatchDueExpirations),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Expiration scheduler started")
}

func StopExpirationScheduler() {
	if expirationScheduler != nil {
		_ = expirationScheduler.Shutdown()
	}
}

// DispatchDueExpirations quét job đến hạn, claim qua picked_at rồi đẩy vào worker pool
func DispatchDueExpirations() {
	db := database.DB
	now := time.Now()

	var jobs []model.ExpirationJob
	if err := db.
		Where("fires_at <= ? AND (picked_at IS NULL OR picked_at < ?)", now, now.Add(-pickLease)).
		Limit(expireQueueSize).
		Find(&jobs).Error; err != nil {
		log.Printf("[CRON] Lỗi quét expiration jobs: %v", err)
		return
	}

	for _, job := range jobs {
		result := db.Model(&model.ExpirationJob{}).
			Where("reservation_id = ? AND (picked_at IS NULL OR picked_at < ?)",
				job.ReservationId, now.Add(-pickLease)).
			Updates(map[string]any{
				"picked_at": now,
				"attempts":  gorm.Expr("attempts + 1"),
			})
		if result.Error != nil || result.RowsAffected == 0 {
			// Tick khác đã claim job này
			continue
		}

		if job.Attempts >= maxExpireAttempts {
			// Job kẹt làm leak kho vé, phải nổi lên đường alert chứ không drop
			log.Printf("[ALERT] Expiration job %s đã fail %d lần, lỗi gần nhất: %s",
				job.ReservationId, job.Attempts, job.LastError)
		}

		expireQueue <- job.ReservationId
	}
}

func expireWorker() {
	for reservationId := range expireQueue {
		err := ExpireReservation(reservationId)
		if err != nil && !errors.Is(err, ErrReservationNotFound) {
			// Giữ job lại để tick sau retry
			log.Printf("Lỗi expire reservation %s: %v", reservationId, err)
			database.DB.Model(&model.ExpirationJob{}).
				Where("reservation_id = ?", reservationId).
				Update("last_error", err.Error())
			continue
		}

		if err := database.DB.
			Delete(&model.ExpirationJob{}, "reservation_id = ?", reservationId).Error; err != nil {
			log.Printf("Lỗi xoá expiration job %s: %v", reservationId, err)
		}
	}
}

// ReconcileOnStartup chạy một lần trước khi nhận traffic:
// 1. đánh dấu reservation ACTIVE đã quá hạn thành EXPIRED, không cộng kho từng dòng
// 2. tính lại number_available từ tập reservation, không tin counter thô sau crash
// 3. đăng ký lại job expire cho mọi reservation còn ACTIVE
func ReconcileOnStartup() error {
	db := database.DB
	now := time.Now()

	stale := db.Model(&model.Reservation{}).
		Where("status = ? AND expire_at <= ?", constants.ReservationActive, now).
		Update("status", constants.ReservationExpired)
	if stale.Error != nil {
		return stale.Error
	}

	if err := db.Exec(`
		UPDATE tickets
		SET number_available = capacity - (
			SELECT COUNT(*) FROM reservations r
			WHERE r.event_id = tickets.event_id
			  AND r.ticket_type = tickets.ticket_type
			  AND r.status IN ?
		)`, []string{constants.ReservationActive, constants.ReservationPaid}).Error; err != nil {
		return err
	}

	var active []model.Reservation
	if err := db.Where("status = ?", constants.ReservationActive).Find(&active).Error; err != nil {
		return err
	}
	for _, reservation := range active {
		if err := ScheduleExpiration(db, reservation.Id, reservation.ExpireAt); err != nil {
			return err
		}
	}

	log.Printf("Reconcile xong: %d reservation quá hạn, re-arm %d expiration jobs",
		stale.RowsAffected, len(active))
	return nil
}
