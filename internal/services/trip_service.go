package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"tripmood/internal/models/db_models"
	"tripmood/internal/models/request_models"
	"tripmood/internal/models/response_models"
	"tripmood/internal/repositories"
	"tripmood/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, accountID string, req request_models.SaveTripRequest) (string, error)
	ListTrips(ctx context.Context, accountID, role string, page, pageSize int) (*response_models.PageResult[response_models.TripSummary], error)
	GetTrip(ctx context.Context, accountID, role, tripID string) (*response_models.TripDetail, error)
	UpdateTrip(ctx context.Context, accountID, role string, req request_models.UpdateTripRequest) error
	DeleteTrip(ctx context.Context, accountID, role, tripID string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (t *TripService) SaveTrip(ctx context.Context, accountID string, req request_models.SaveTripRequest) (string, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		AccountID:      ownerID,
		TravelerName:   req.Name,
		TravelerAge:    req.Age,
		TravelerGender: req.Gender,
		Country:        req.Country,
		State:          req.State,
		City:           req.City,
		Destination:    req.Destination,
		StartDate:      req.StartDate,
		Days:           req.Days,
		Mood:           req.Mood,
		BudgetRange:    req.BudgetRange,
		Interests:      req.Interests,
		TotalBudgetINR: int(req.TotalBudgetINR),
	}

	trip.POIs = marshalDocument(req.POIs)
	trip.Hotels = marshalDocument(req.Hotels)
	trip.Itinerary = marshalDocument(req.Itinerary)
	trip.PackingList = marshalDocument(req.PackingList)
	trip.Weather = marshalDocument(req.Weather)
	trip.Events = marshalDocument(req.Events)
	trip.MapData = marshalDocument(req.MapData)

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return "", utils.ErrDatabaseError
	}
	return trip.ID.String(), nil
}

func marshalDocument(v any) []byte {
	if v == nil {
		return []byte("null")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	return data
}

func (t *TripService) ListTrips(ctx context.Context, accountID, role string, page, pageSize int) (*response_models.PageResult[response_models.TripSummary], error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	var (
		trips []db_models.Trip
		total int64
		err   error
	)
	if role == db_models.RoleAdmin || role == db_models.RoleRoot {
		trips, total, err = t.tripRepo.ListAll(ctx, page, pageSize)
	} else {
		trips, total, err = t.tripRepo.ListByAccount(ctx, accountID, page, pageSize)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.TripSummary, 0, len(trips))
	for _, trip := range trips {
		items = append(items, tripSummary(trip))
	}

	return &response_models.PageResult[response_models.TripSummary]{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (t *TripService) GetTrip(ctx context.Context, accountID, role, tripID string) (*response_models.TripDetail, error) {
	trip, err := t.findAccessible(ctx, accountID, role, tripID)
	if err != nil {
		return nil, err
	}

	detail := &response_models.TripDetail{
		TripSummary:    tripSummary(*trip),
		TravelerName:   trip.TravelerName,
		TravelerAge:    trip.TravelerAge,
		TravelerGender: trip.TravelerGender,
		City:           trip.City,
		BudgetRange:    trip.BudgetRange,
		POIs:           json.RawMessage(trip.POIs),
		Hotels:         json.RawMessage(trip.Hotels),
		Itinerary:      json.RawMessage(trip.Itinerary),
		PackingList:    json.RawMessage(trip.PackingList),
		Weather:        json.RawMessage(trip.Weather),
		Events:         json.RawMessage(trip.Events),
		MapData:        json.RawMessage(trip.MapData),
	}
	return detail, nil
}

func (t *TripService) UpdateTrip(ctx context.Context, accountID, role string, req request_models.UpdateTripRequest) error {
	trip, err := t.findAccessible(ctx, accountID, role, req.TripID)
	if err != nil {
		return err
	}

	if req.Destination != "" {
		trip.Destination = req.Destination
	}
	if req.StartDate != "" {
		trip.StartDate = req.StartDate
	}
	if req.Days > 0 {
		trip.Days = req.Days
	}
	if req.Mood != "" {
		trip.Mood = req.Mood
	}
	if req.Interests != nil {
		trip.Interests = req.Interests
	}

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) DeleteTrip(ctx context.Context, accountID, role, tripID string) error {
	if _, err := t.findAccessible(ctx, accountID, role, tripID); err != nil {
		return err
	}
	if err := t.tripRepo.Delete(ctx, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// findAccessible loads a trip and enforces ownership. Admin and root roles
// can reach any trip.
func (t *TripService) findAccessible(ctx context.Context, accountID, role, tripID string) (*db_models.Trip, error) {
	if _, err := uuid.Parse(tripID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := t.tripRepo.FindById(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if role != db_models.RoleAdmin && role != db_models.RoleRoot && trip.AccountID.String() != accountID {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}

func tripSummary(trip db_models.Trip) response_models.TripSummary {
	return response_models.TripSummary{
		ID:             trip.ID.String(),
		Country:        trip.Country,
		State:          trip.State,
		Destination:    trip.Destination,
		StartDate:      trip.StartDate,
		Days:           trip.Days,
		Mood:           trip.Mood,
		Interests:      trip.Interests,
		TotalBudgetINR: trip.TotalBudgetINR,
		CreatedAt:      trip.CreatedAt,
	}
}
