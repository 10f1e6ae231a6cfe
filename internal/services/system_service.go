package services

import (
	"strings"

	"Shelved/internal/apierror"
	"Shelved/internal/models"
	"Shelved/internal/repository"
)

type SystemService interface {
	CreateSystem(code, notes string) (*models.System, error)
	GetSystemByID(id uint) (*models.System, error)
	UpdateSystem(id uint, code, notes string) (*models.System, error)
	DeleteSystem(id uint) error
	RestoreSystem(id uint) (*models.System, error)
	GetSystems(includeDeleted bool) ([]models.System, error)
}

type systemServiceImpl struct {
	systemRepo repository.SystemRepository
}

func NewSystemService(systemRepository repository.SystemRepository) SystemService {
	return &systemServiceImpl{systemRepo: systemRepository}
}

func (s *systemServiceImpl) CreateSystem(code, notes string) (*models.System, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apierror.BadRequest("code is required")
	}
	existing, err := s.systemRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.Conflict("code already exists")
	}
	system := &models.System{Code: code, Notes: notes}
	if err := s.systemRepo.Create(system); err != nil {
		return nil, err
	}
	return system, nil
}

func (s *systemServiceImpl) GetSystemByID(id uint) (*models.System, error) {
	system, err := s.systemRepo.FindByID(id)
	if err != nil {
		return nil, apierror.NotFound("system not found")
	}
	return system, nil
}

func (s *systemServiceImpl) UpdateSystem(id uint, code, notes string) (*models.System, error) {
	system, err := s.systemRepo.FindByID(id)
	if err != nil {
		return nil, apierror.NotFound("system not found")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apierror.BadRequest("code is required")
	}
	taken, err := s.systemRepo.CodeExists(code, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apierror.Conflict("code already exists")
	}
	system.Code = code
	system.Notes = notes
	if err := s.systemRepo.Update(system); err != nil {
		return nil, err
	}
	return system, nil
}

// DeleteSystem cascades: shelves under the system and items on those
// shelves are archived together.
func (s *systemServiceImpl) DeleteSystem(id uint) error {
	system, err := s.systemRepo.FindByID(id)
	if err != nil {
		return apierror.NotFound("system not found")
	}
	if system.IsDeleted == 1 {
		return nil
	}
	return s.systemRepo.DeleteCascade(id)
}

func (s *systemServiceImpl) RestoreSystem(id uint) (*models.System, error) {
	if _, err := s.systemRepo.FindByID(id); err != nil {
		return nil, apierror.NotFound("system not found")
	}
	if err := s.systemRepo.Restore(id); err != nil {
		return nil, err
	}
	return s.systemRepo.FindByID(id)
}

func (s *systemServiceImpl) GetSystems(includeDeleted bool) ([]models.System, error) {
	return s.systemRepo.FindAll(includeDeleted)
}
