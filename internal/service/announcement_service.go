package service

import (
	"rudasumbwa_backend/internal/model"
	"rudasumbwa_backend/internal/repository"
	"rudasumbwa_backend/internal/util"
)

type AnnouncementService struct {
	Repo *repository.AnnouncementRepository
}

func NewAnnouncementService(repo *repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{Repo: repo}
}

type AnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Audience string `json:"audience" binding:"omitempty,oneof=all students teachers"`
	IsPinned bool   `json:"isPinned"`
}

func (s *AnnouncementService) Create(authorID uint, req AnnouncementRequest) (*model.Announcement, error) {
	if req.Audience == "" {
		req.Audience = "all"
	}
	a := &model.Announcement{
		Title:    req.Title,
		Body:     req.Body,
		Audience: req.Audience,
		AuthorID: authorID,
		IsPinned: req.IsPinned,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnnouncementService) Get(id uint) (*model.Announcement, error) {
	return s.Repo.FindByID(id)
}

func (s *AnnouncementService) Update(id, editorID uint, role model.UserRole, req AnnouncementRequest) (*model.Announcement, error) {
	a, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if role != model.Admin && a.AuthorID != editorID {
		return nil, util.ErrPermissionDenied
	}

	a.Title = req.Title
	a.Body = req.Body
	if req.Audience != "" {
		a.Audience = req.Audience
	}
	a.IsPinned = req.IsPinned

	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnnouncementService) Delete(id, editorID uint, role model.UserRole) error {
	a, err := s.Get(id)
	if err != nil {
		return err
	}
	if role != model.Admin && a.AuthorID != editorID {
		return util.ErrPermissionDenied
	}
	return s.Repo.Delete(id)
}

// ListFor filters to announcements visible to the caller's role, pinned first.
func (s *AnnouncementService) ListFor(role model.UserRole, page, limit int) ([]model.Announcement, int64, error) {
	audience := ""
	switch role {
	case model.Student:
		audience = "students"
	case model.Teacher:
		audience = "teachers"
	}
	return s.Repo.List(audience, page, limit)
}

type EventService struct {
	Repo *repository.EventRepository
}

func NewEventService(repo *repository.EventRepository) *EventService {
	return &EventService{Repo: repo}
}

func (s *EventService) Create(creatorID uint, e *model.Event) (*model.Event, error) {
	e.CreatorID = creatorID
	if err := s.Repo.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventService) Update(id, editorID uint, role model.UserRole, e *model.Event) (*model.Event, error) {
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if role != model.Admin && existing.CreatorID != editorID {
		return nil, util.ErrPermissionDenied
	}

	existing.Title = e.Title
	existing.Description = e.Description
	existing.Location = e.Location
	existing.StartsAt = e.StartsAt
	existing.EndsAt = e.EndsAt

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *EventService) Delete(id, editorID uint, role model.UserRole) error {
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if role != model.Admin && existing.CreatorID != editorID {
		return util.ErrPermissionDenied
	}
	return s.Repo.Delete(id)
}

func (s *EventService) ListUpcoming(limit int) ([]model.Event, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.Repo.ListUpcoming(limit)
}

func (s *EventService) List(page, limit int) ([]model.Event, int64, error) {
	return s.Repo.List(page, limit)
}
