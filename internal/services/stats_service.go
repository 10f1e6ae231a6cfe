package services

import (
	"Shelved/internal/dto"
	"Shelved/internal/repository"
)

type StatsService interface {
	Summary(maxClearance *int) (dto.StatsSummary, error)
	Dashboard(maxClearance *int) (*dto.Dashboard, error)
}

type statsServiceImpl struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
}

func NewStatsService(itemRepository repository.ItemRepository, movementRepository repository.MovementRepository) StatsService {
	return &statsServiceImpl{itemRepo: itemRepository, movementRepo: movementRepository}
}

func (s *statsServiceImpl) Summary(maxClearance *int) (dto.StatsSummary, error) {
	return s.itemRepo.CountsSummary(maxClearance)
}

func (s *statsServiceImpl) Dashboard(maxClearance *int) (*dto.Dashboard, error) {
	summary, err := s.itemRepo.CountsSummary(maxClearance)
	if err != nil {
		return nil, err
	}
	bySystem, err := s.itemRepo.BySystem(maxClearance)
	if err != nil {
		return nil, err
	}
	recent, err := s.movementRepo.FindRecent(10)
	if err != nil {
		return nil, err
	}
	return &dto.Dashboard{
		Summary:         summary,
		BySystem:        bySystem,
		RecentMovements: recent,
	}, nil
}
