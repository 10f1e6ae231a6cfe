package services

import (
	"strings"

	"Shelved/internal/apierror"
	"Shelved/internal/models"
	"Shelved/internal/repository"
)

type ShelfInput struct {
	SystemID uint   `json:"system_id"`
	Label    string `json:"label"`
	LengthMM int    `json:"length_mm"`
	WidthMM  int    `json:"width_mm"`
	HeightMM int    `json:"height_mm"`
	Ordinal  int    `json:"ordinal"`
}

type ShelfService interface {
	CreateShelf(input ShelfInput) (*models.Shelf, error)
	GetShelfByID(id uint) (*models.Shelf, error)
	UpdateShelf(id uint, input ShelfInput) (*models.Shelf, error)
	DeleteShelf(id uint) error
	RestoreShelf(id uint) (*models.Shelf, error)
	GetShelves(systemID *uint, includeDeleted bool) ([]models.Shelf, error)
}

type shelfServiceImpl struct {
	shelfRepo  repository.ShelfRepository
	systemRepo repository.SystemRepository
}

func NewShelfService(shelfRepository repository.ShelfRepository, systemRepository repository.SystemRepository) ShelfService {
	return &shelfServiceImpl{shelfRepo: shelfRepository, systemRepo: systemRepository}
}

func (s *shelfServiceImpl) CreateShelf(input ShelfInput) (*models.Shelf, error) {
	label, err := s.validate(input, 0)
	if err != nil {
		return nil, err
	}
	if input.Ordinal < 1 {
		input.Ordinal = 1
	}
	shelf := &models.Shelf{
		SystemID: input.SystemID,
		Label:    label,
		LengthMM: input.LengthMM,
		WidthMM:  input.WidthMM,
		HeightMM: input.HeightMM,
		Ordinal:  input.Ordinal,
	}
	if err := s.shelfRepo.Create(shelf); err != nil {
		return nil, err
	}
	return shelf, nil
}

func (s *shelfServiceImpl) GetShelfByID(id uint) (*models.Shelf, error) {
	shelf, err := s.shelfRepo.FindByID(id)
	if err != nil {
		return nil, apierror.NotFound("shelf not found")
	}
	return shelf, nil
}

func (s *shelfServiceImpl) UpdateShelf(id uint, input ShelfInput) (*models.Shelf, error) {
	shelf, err := s.shelfRepo.FindByID(id)
	if err != nil {
		return nil, apierror.NotFound("shelf not found")
	}
	label, err := s.validate(input, id)
	if err != nil {
		return nil, err
	}
	shelf.SystemID = input.SystemID
	shelf.Label = label
	shelf.LengthMM = input.LengthMM
	shelf.WidthMM = input.WidthMM
	shelf.HeightMM = input.HeightMM
	if input.Ordinal >= 1 {
		shelf.Ordinal = input.Ordinal
	}
	if err := s.shelfRepo.Update(shelf); err != nil {
		return nil, err
	}
	return shelf, nil
}

// DeleteShelf archives the shelf and every item on it.
func (s *shelfServiceImpl) DeleteShelf(id uint) error {
	shelf, err := s.shelfRepo.FindByID(id)
	if err != nil {
		return apierror.NotFound("shelf not found")
	}
	if shelf.IsDeleted == 1 {
		return nil
	}
	return s.shelfRepo.DeleteCascade(id)
}

func (s *shelfServiceImpl) RestoreShelf(id uint) (*models.Shelf, error) {
	if _, err := s.shelfRepo.FindByID(id); err != nil {
		return nil, apierror.NotFound("shelf not found")
	}
	if err := s.shelfRepo.Restore(id); err != nil {
		return nil, err
	}
	return s.shelfRepo.FindByID(id)
}

func (s *shelfServiceImpl) GetShelves(systemID *uint, includeDeleted bool) ([]models.Shelf, error) {
	return s.shelfRepo.FindForList(systemID, includeDeleted)
}

func (s *shelfServiceImpl) validate(input ShelfInput, excludeID uint) (string, error) {
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return "", apierror.BadRequest("label is required")
	}
	system, err := s.systemRepo.FindByID(input.SystemID)
	if err != nil || system == nil {
		return "", apierror.NotFound("system not found")
	}
	taken, err := s.shelfRepo.LabelExists(input.SystemID, label, excludeID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", apierror.Conflict("label already exists in this system")
	}
	return label, nil
}
