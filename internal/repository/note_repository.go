package repository

import (
	"rudasumbwa_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) FindByID(id uint) (*model.Note, error) {
	var note model.Note
	err := r.DB.Preload("Author").First(&note, id).Error
	return &note, err
}

func (r *NoteRepository) Update(note *model.Note) error {
	return r.DB.Save(note).Error
}

func (r *NoteRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Note{}, id).Error
}

func (r *NoteRepository) List(className, subject string, page, limit int) ([]model.Note, int64, error) {
	query := r.DB.Model(&model.Note{})
	if className != "" {
		query = query.Where("class_name = ?", className)
	}
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notes []model.Note
	offset := (page - 1) * limit
	err := query.Preload("Author").Order("created_at desc").
		Offset(offset).Limit(limit).Find(&notes).Error
	return notes, total, err
}
