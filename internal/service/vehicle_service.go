package service

import (
	"context"
	"strings"

	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/repository"
	"github.com/google/uuid"
)

// VehicleService определяет интерфейс бизнес-логики для транспортных средств
type VehicleService interface {
	Create(ctx context.Context, req *dto.CreateVehicleRequest) (*domain.Vehicle, error)
	GetByLocalUnitID(ctx context.Context, localUnitID int64) ([]domain.Vehicle, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Update(ctx context.Context, id int64, req *dto.UpdateVehicleRequest) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	unitRepo    repository.LocalUnitRepository
	hrRepo      repository.HRRepository
}

// NewVehicleService создаёт новый экземпляр сервиса
func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	unitRepo repository.LocalUnitRepository,
	hrRepo repository.HRRepository,
) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		unitRepo:    unitRepo,
		hrRepo:      hrRepo,
	}
}

func (s *vehicleService) Create(ctx context.Context, req *dto.CreateVehicleRequest) (*domain.Vehicle, error) {
	if _, err := s.unitRepo.GetByID(ctx, req.LocalUnitID); err != nil {
		return nil, err
	}
	if req.HRID != nil {
		if _, err := s.hrRepo.GetByID(ctx, *req.HRID); err != nil {
			return nil, err
		}
	}

	vehicle := &domain.Vehicle{
		UUID:        uuid.NewString(),
		LocalUnitID: req.LocalUnitID,
		Version:     1,
	}
	if err := applyVehicleFields(vehicle, req); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) GetByLocalUnitID(ctx context.Context, localUnitID int64) ([]domain.Vehicle, error) {
	if _, err := s.unitRepo.GetByID(ctx, localUnitID); err != nil {
		return nil, err
	}
	return s.vehicleRepo.GetByLocalUnitID(ctx, localUnitID)
}

func (s *vehicleService) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Vehicle, error) {
	return s.vehicleRepo.GetByCompanyID(ctx, companyID)
}

func (s *vehicleService) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) Update(ctx context.Context, id int64, req *dto.UpdateVehicleRequest) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.HRID != nil {
		if _, err := s.hrRepo.GetByID(ctx, *req.HRID); err != nil {
			return nil, err
		}
	}

	if err := applyVehicleFields(vehicle, req); err != nil {
		return nil, err
	}
	vehicle.Version++

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.vehicleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.vehicleRepo.Delete(ctx, id)
}

// applyVehicleFields переносит полный заменяющий набор полей запроса
func applyVehicleFields(vehicle *domain.Vehicle, req *dto.CreateVehicleRequest) error {
	registrationDate, err := parseDate(req.RegistrationDate)
	if err != nil {
		return err
	}

	vehicle.HRID = req.HRID
	vehicle.Name = strings.TrimSpace(req.Name)
	vehicle.Brand = req.Brand
	vehicle.Model = req.Model
	vehicle.LicensePlate = req.LicensePlate
	vehicle.SerialNumber = req.SerialNumber
	vehicle.RegistrationDate = registrationDate
	vehicle.Category = req.Category
	vehicle.Owner = req.Owner
	return nil
}
