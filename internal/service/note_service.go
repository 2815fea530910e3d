package service

import (
	"errors"

	"rudasumbwa_backend/internal/model"
	"rudasumbwa_backend/internal/repository"
	"rudasumbwa_backend/internal/util"

	"gorm.io/gorm"
)

type NoteService struct {
	NoteRepo *repository.NoteRepository
}

func NewNoteService(noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{NoteRepo: noteRepo}
}

type NoteRequest struct {
	Title         string `json:"title" binding:"required"`
	Content       string `json:"content" binding:"required"`
	Subject       string `json:"subject"`
	ClassName     string `json:"className"`
	AttachmentURL string `json:"attachmentUrl"`
}

func (s *NoteService) CreateNote(authorID uint, req NoteRequest) (*model.Note, error) {
	note := &model.Note{
		Title:         req.Title,
		Content:       req.Content,
		Subject:       req.Subject,
		ClassName:     req.ClassName,
		AttachmentURL: req.AttachmentURL,
		AuthorID:      authorID,
	}
	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) GetNote(id uint) (*model.Note, error) {
	note, err := s.NoteRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (s *NoteService) UpdateNote(id, editorID uint, role model.UserRole, req NoteRequest) (*model.Note, error) {
	note, err := s.GetNote(id)
	if err != nil {
		return nil, err
	}
	if role != model.Admin && note.AuthorID != editorID {
		return nil, util.ErrPermissionDenied
	}

	note.Title = req.Title
	note.Content = req.Content
	note.Subject = req.Subject
	note.ClassName = req.ClassName
	note.AttachmentURL = req.AttachmentURL

	if err := s.NoteRepo.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) DeleteNote(id, editorID uint, role model.UserRole) error {
	note, err := s.GetNote(id)
	if err != nil {
		return err
	}
	if role != model.Admin && note.AuthorID != editorID {
		return util.ErrPermissionDenied
	}
	return s.NoteRepo.Delete(id)
}

func (s *NoteService) ListNotes(className, subject string, page, limit int) ([]model.Note, int64, error) {
	return s.NoteRepo.List(className, subject, page, limit)
}
