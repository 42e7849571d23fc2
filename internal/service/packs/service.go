package packs

import (
	"context"
	"errors"
	"fmt"

	packRepo "github.com/younesAM01/StayFit-BookingService/internal/infra/storage/clientpack"
	"github.com/younesAM01/StayFit-BookingService/internal/service/packs/models"
)

// Service сервис чтения пакетов занятий
// Остатком занятий управляют book_session (списание) и сервис сессий (возврат);
// создание пакетов - зона ответственности платёжного коллаборатора
type Service struct {
	packRepo     ClientPackRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса пакетов
func NewService(packRepo ClientPackRepository, logger Logger) *Service {
	return &Service{
		packRepo:     packRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает пакет по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PackResponse, error) {
	s.logger.Info("GetByID: fetching pack id=%d", id)

	pack, err := s.packRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packRepo.ErrPackNotFound) {
			s.logger.Warn("GetByID: pack id=%d not found", id)
			return nil, ErrPackNotFound
		}
		s.logger.Error("GetByID: repository error for pack id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPack(pack, s.timeProvider.Now()), nil
}

// GetClientPacks получает пакеты клиента с вычисленной пригодностью каждого
// UI использует причину непригодности для сообщения "купите новый пакет"
func (s *Service) GetClientPacks(ctx context.Context, clientID int64, onlyActive bool) (*models.PackListResponse, error) {
	s.logger.Info("GetClientPacks: fetching packs for client=%d, onlyActive=%v", clientID, onlyActive)

	packs, err := s.packRepo.GetByClientID(ctx, clientID, onlyActive)
	if err != nil {
		s.logger.Error("GetClientPacks: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientPacks - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientPacks: fetched %d packs for client=%d", len(packs), clientID)
	return models.FromDomainPackList(packs, s.timeProvider.Now()), nil
}
