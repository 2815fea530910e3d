package service

import (
	"errors"

	"rudasumbwa_backend/internal/model"
	"rudasumbwa_backend/internal/repository"
	"rudasumbwa_backend/internal/util"

	"gorm.io/gorm"
)

type ClubService struct {
	ClubRepo *repository.ClubRepository
}

func NewClubService(clubRepo *repository.ClubRepository) *ClubService {
	return &ClubService{ClubRepo: clubRepo}
}

type ClubRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PatronID    uint   `json:"patronId"`
}

func (s *ClubService) CreateClub(req ClubRequest) (*model.Club, error) {
	club := &model.Club{
		Name:        req.Name,
		Description: req.Description,
		PatronID:    req.PatronID,
	}
	if err := s.ClubRepo.Create(club); err != nil {
		return nil, err
	}
	return club, nil
}

func (s *ClubService) GetClub(id uint) (*model.Club, error) {
	club, err := s.ClubRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrClubNotFound
		}
		return nil, err
	}
	return club, nil
}

func (s *ClubService) UpdateClub(id uint, req ClubRequest) (*model.Club, error) {
	club, err := s.GetClub(id)
	if err != nil {
		return nil, err
	}
	club.Name = req.Name
	club.Description = req.Description
	if req.PatronID != 0 {
		club.PatronID = req.PatronID
	}
	if err := s.ClubRepo.Update(club); err != nil {
		return nil, err
	}
	return club, nil
}

func (s *ClubService) DeleteClub(id uint) error {
	if _, err := s.GetClub(id); err != nil {
		return err
	}
	return s.ClubRepo.Delete(id)
}

func (s *ClubService) ListClubs(page, limit int) ([]model.Club, int64, error) {
	return s.ClubRepo.List(page, limit)
}

// Join adds a student once; joining twice is an error, not a second row.
func (s *ClubService) Join(clubID, studentID uint) (*model.ClubMember, error) {
	if _, err := s.GetClub(clubID); err != nil {
		return nil, err
	}
	if _, err := s.ClubRepo.FindMember(clubID, studentID); err == nil {
		return nil, util.ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	member := &model.ClubMember{ClubID: clubID, StudentID: studentID}
	if err := s.ClubRepo.AddMember(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *ClubService) Leave(clubID, studentID uint) error {
	if _, err := s.GetClub(clubID); err != nil {
		return err
	}
	return s.ClubRepo.RemoveMember(clubID, studentID)
}

func (s *ClubService) ListMembers(clubID uint) ([]model.ClubMember, error) {
	if _, err := s.GetClub(clubID); err != nil {
		return nil, err
	}
	return s.ClubRepo.ListMembers(clubID)
}
