package repository

import (
	"rudasumbwa_backend/internal/model"

	"gorm.io/gorm"
)

type ClubRepository struct {
	DB *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{DB: db}
}

func (r *ClubRepository) Create(club *model.Club) error {
	return r.DB.Create(club).Error
}

func (r *ClubRepository) FindByID(id uint) (*model.Club, error) {
	var club model.Club
	err := r.DB.Preload("Patron").First(&club, id).Error
	return &club, err
}

func (r *ClubRepository) Update(club *model.Club) error {
	return r.DB.Save(club).Error
}

func (r *ClubRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", id).Delete(&model.ClubMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Club{}, id).Error
	})
}

func (r *ClubRepository) List(page, limit int) ([]model.Club, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Club{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clubs []model.Club
	offset := (page - 1) * limit
	err := r.DB.Preload("Patron").Order("name asc").
		Offset(offset).Limit(limit).Find(&clubs).Error
	return clubs, total, err
}

func (r *ClubRepository) FindMember(clubID, studentID uint) (*model.ClubMember, error) {
	var m model.ClubMember
	err := r.DB.Where("club_id = ? AND student_id = ?", clubID, studentID).First(&m).Error
	return &m, err
}

func (r *ClubRepository) AddMember(m *model.ClubMember) error {
	return r.DB.Create(m).Error
}

func (r *ClubRepository) RemoveMember(clubID, studentID uint) error {
	return r.DB.Where("club_id = ? AND student_id = ?", clubID, studentID).
		Delete(&model.ClubMember{}).Error
}

func (r *ClubRepository) ListMembers(clubID uint) ([]model.ClubMember, error) {
	var members []model.ClubMember
	err := r.DB.Preload("Student").Where("club_id = ?", clubID).
		Order("created_at asc").Find(&members).Error
	return members, err
}
