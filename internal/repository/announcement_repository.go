package repository

import (
	"rudasumbwa_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	DB *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{DB: db}
}

func (r *AnnouncementRepository) Create(a *model.Announcement) error {
	return r.DB.Create(a).Error
}

func (r *AnnouncementRepository) FindByID(id uint) (*model.Announcement, error) {
	var a model.Announcement
	err := r.DB.Preload("Author").First(&a, id).Error
	return &a, err
}

func (r *AnnouncementRepository) Update(a *model.Announcement) error {
	return r.DB.Save(a).Error
}

func (r *AnnouncementRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Announcement{}, id).Error
}

func (r *AnnouncementRepository) List(audience string, page, limit int) ([]model.Announcement, int64, error) {
	query := r.DB.Model(&model.Announcement{})
	if audience != "" {
		query = query.Where("audience IN ?", []string{"all", audience})
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.Announcement
	offset := (page - 1) * limit
	err := query.Preload("Author").
		Order("is_pinned desc, created_at desc").
		Offset(offset).Limit(limit).Find(&items).Error
	return items, total, err
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(e *model.Event) error {
	return r.DB.Create(e).Error
}

func (r *EventRepository) FindByID(id uint) (*model.Event, error) {
	var e model.Event
	err := r.DB.First(&e, id).Error
	return &e, err
}

func (r *EventRepository) Update(e *model.Event) error {
	return r.DB.Save(e).Error
}

func (r *EventRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Event{}, id).Error
}

func (r *EventRepository) ListUpcoming(limit int) ([]model.Event, error) {
	var events []model.Event
	err := r.DB.Where("starts_at >= ?", time.Now()).
		Order("starts_at asc").Limit(limit).Find(&events).Error
	return events, err
}

func (r *EventRepository) List(page, limit int) ([]model.Event, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []model.Event
	offset := (page - 1) * limit
	err := r.DB.Order("starts_at desc").Offset(offset).Limit(limit).Find(&events).Error
	return events, total, err
}
