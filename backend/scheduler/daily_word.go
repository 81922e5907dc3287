package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"

	"lingua/backend/models"
)

// DailyWordPicker selects the word of the day deterministically from the
// word table (day number modulo word count) and caches the pick so the
// endpoint never hits the database on the hot path. A gocron job refreshes
// the cache at midnight UTC.
type DailyWordPicker struct {
	db        *gorm.DB
	logger    *log.Logger
	scheduler *gocron.Scheduler

	mu   sync.RWMutex
	word *models.DailyWord
	day  string // date the cached word was picked for, "2006-01-02"
}

func NewDailyWordPicker(db *gorm.DB, logger *log.Logger) *DailyWordPicker {
	return &DailyWordPicker{
		db:        db,
		logger:    logger,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start refreshes immediately and then once per day at midnight UTC.
func (p *DailyWordPicker) Start() {
	p.refresh()
	p.scheduler.Every(1).Day().At("00:00").Do(p.refresh)
	p.scheduler.StartAsync()
}

func (p *DailyWordPicker) Stop() {
	p.scheduler.Stop()
}

// WordOfDay returns today's word, or nil when the word table is empty.
// Falls back to a synchronous refresh if the cached pick is stale (for
// example when the process slept across midnight).
func (p *DailyWordPicker) WordOfDay() *models.DailyWord {
	today := time.Now().UTC().Format("2006-01-02")

	p.mu.RLock()
	word, day := p.word, p.day
	p.mu.RUnlock()

	if word != nil && day == today {
		return word
	}

	p.refresh()

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.word
}

func (p *DailyWordPicker) refresh() {
	var count int64
	if err := p.db.Model(&models.DailyWord{}).Count(&count).Error; err != nil {
		p.logger.Printf("daily word refresh failed: %v", err)
		return
	}
	if count == 0 {
		return
	}

	now := time.Now().UTC()
	dayNumber := now.Unix() / 86400
	offset := int(dayNumber % count)

	var word models.DailyWord
	if err := p.db.Order("id").Offset(offset).First(&word).Error; err != nil {
		p.logger.Printf("daily word refresh failed: %v", err)
		return
	}

	p.mu.Lock()
	p.word = &word
	p.day = now.Format("2006-01-02")
	p.mu.Unlock()
}
